package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-library-backend/internal/logger"
	"github.com/sbilibin2017/gw-library-backend/internal/models"
)

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

func (r *UserReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID retrieves a user by ID. Returns nil without error when the user
// does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, name, role, password_hash, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// GetByUsernameOrEmail retrieves a user matching the given username and/or
// email. Returns nil without error when no user matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, name, role, password_hash, created_at, updated_at
		FROM users
		WHERE ($1::VARCHAR IS NULL OR username = $1)
		  AND ($2::VARCHAR IS NULL OR email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, username, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// List retrieves all users ordered by username.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, name, role, password_hash, created_at, updated_at
		FROM users
		ORDER BY username
	`

	users := []models.UserDB{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new user and returns the stored record.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, name, role, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (user_id, username, email, name, role, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING user_id, username, email, name, role, password_hash, created_at, updated_at
	`
	args := []any{uuid.New(), username, email, name, role, passwordHash}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email, name, role},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Update overwrites the mutable attributes of a user. Returns nil without
// error when the user does not exist.
func (r *UserWriteRepository) Update(ctx context.Context, userID uuid.UUID, email, name, role string) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET email = $2, name = $3, role = $4, updated_at = NOW()
		WHERE user_id = $1
		RETURNING user_id, username, email, name, role, password_hash, created_at, updated_at
	`
	args := []any{userID, email, name, role}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// Delete removes a user. Returns sql.ErrNoRows when the user does not exist.
func (r *UserWriteRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	const query = `
		DELETE FROM users
		WHERE user_id = $1
		RETURNING user_id
	`

	var deleted uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &deleted, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	return err
}
