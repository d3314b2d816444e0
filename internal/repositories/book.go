package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-library-backend/internal/logger"
	"github.com/sbilibin2017/gw-library-backend/internal/models"
)

const dialectPostgres = "postgres"

// BookReadRepository handles book read operations.
type BookReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBookReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BookReadRepository {
	return &BookReadRepository{db: db, txGetter: txGetter}
}

func (r *BookReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID retrieves a book by its ID. Returns nil without error when the
// book does not exist.
func (r *BookReadRepository) GetByID(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error) {
	const query = `
		SELECT book_id, title, author, isbn, available_quantity, shelf_location, created_at, updated_at
		FROM books
		WHERE book_id = $1
	`

	var book models.BookDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &book, query, bookID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &book, nil
}

// GetByIDForUpdate retrieves a book by its ID and locks the row for the
// duration of the surrounding transaction. Returns nil without error when
// the book does not exist.
func (r *BookReadRepository) GetByIDForUpdate(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error) {
	const query = `
		SELECT book_id, title, author, isbn, available_quantity, shelf_location, created_at, updated_at
		FROM books
		WHERE book_id = $1
		FOR UPDATE
	`

	var book models.BookDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &book, query, bookID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &book, nil
}

// Search retrieves books matching the filter: case-insensitive prefix match
// on title and author, exact match on ISBN, paginated by offset/limit.
func (r *BookReadRepository) Search(ctx context.Context, filter models.BookSearchFilter) ([]models.BookDB, error) {
	ds := goqu.Dialect(dialectPostgres).
		From("books").
		Select("book_id", "title", "author", "isbn", "available_quantity", "shelf_location", "created_at", "updated_at")

	expressions := make([]goqu.Expression, 0)
	if filter.Title != nil {
		expressions = append(expressions, goqu.I("title").ILike(*filter.Title+"%"))
	}
	if filter.Author != nil {
		expressions = append(expressions, goqu.I("author").ILike(*filter.Author+"%"))
	}
	if filter.ISBN != nil {
		expressions = append(expressions, goqu.I("isbn").Eq(*filter.ISBN))
	}

	query, args, err := ds.
		Where(expressions...).
		Order(goqu.I("title").Asc(), goqu.I("book_id").Asc()).
		Offset(uint(filter.Offset)).
		Limit(uint(filter.Limit)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, err
	}

	books := []models.BookDB{}
	err = sqlx.SelectContext(ctx, r.executor(ctx), &books, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(books),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return books, nil
}

// BookWriteRepository handles book write operations.
type BookWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBookWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BookWriteRepository {
	return &BookWriteRepository{db: db, txGetter: txGetter}
}

func (r *BookWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new book and returns the stored record.
func (r *BookWriteRepository) Save(ctx context.Context, title, author, isbn string, availableQuantity int, shelfLocation string) (*models.BookDB, error) {
	const query = `
		INSERT INTO books (book_id, title, author, isbn, available_quantity, shelf_location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING book_id, title, author, isbn, available_quantity, shelf_location, created_at, updated_at
	`
	args := []any{uuid.New(), title, author, isbn, availableQuantity, shelfLocation}

	var book models.BookDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &book, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &book, nil
}

// Update overwrites the mutable attributes of a book. Returns nil without
// error when the book does not exist.
func (r *BookWriteRepository) Update(ctx context.Context, bookID uuid.UUID, title, author, isbn string, availableQuantity int, shelfLocation string) (*models.BookDB, error) {
	const query = `
		UPDATE books
		SET title = $2, author = $3, isbn = $4, available_quantity = $5, shelf_location = $6, updated_at = NOW()
		WHERE book_id = $1
		RETURNING book_id, title, author, isbn, available_quantity, shelf_location, created_at, updated_at
	`
	args := []any{bookID, title, author, isbn, availableQuantity, shelfLocation}

	var book models.BookDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &book, query, args...)

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

	return &book, nil
}

// Delete removes a book. Returns sql.ErrNoRows when the book does not exist.
func (r *BookWriteRepository) Delete(ctx context.Context, bookID uuid.UUID) error {
	const query = `
		DELETE FROM books
		WHERE book_id = $1
		RETURNING book_id
	`

	var deleted uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &deleted, query, bookID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID},
		"error", err,
	)

	return err
}

// DecrementAvailability atomically takes one copy off the shelf. The guard
// in the WHERE clause keeps available_quantity from ever dropping below
// zero; sql.ErrNoRows means no copy was available.
func (r *BookWriteRepository) DecrementAvailability(ctx context.Context, bookID uuid.UUID) error {
	const query = `
		UPDATE books
		SET available_quantity = available_quantity - 1, updated_at = NOW()
		WHERE book_id = $1 AND available_quantity >= 1
		RETURNING available_quantity
	`

	var quantity int
	err := sqlx.GetContext(ctx, r.executor(ctx), &quantity, query, bookID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID},
		"result", quantity,
		"error", err,
	)

	return err
}

// IncrementAvailability puts one copy back on the shelf.
func (r *BookWriteRepository) IncrementAvailability(ctx context.Context, bookID uuid.UUID) error {
	const query = `
		UPDATE books
		SET available_quantity = available_quantity + 1, updated_at = NOW()
		WHERE book_id = $1
		RETURNING available_quantity
	`

	var quantity int
	err := sqlx.GetContext(ctx, r.executor(ctx), &quantity, query, bookID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID},
		"result", quantity,
		"error", err,
	)

	return err
}
