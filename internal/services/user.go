package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-library-backend/internal/logger"
	"github.com/sbilibin2017/gw-library-backend/internal/models"
)

// UserService handles user administration.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Get retrieves a user by ID.
func (svc *UserService) Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List retrieves all users.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// Update overwrites the mutable attributes of a user.
func (svc *UserService) Update(ctx context.Context, userID uuid.UUID, email, name, role string) (*models.UserDB, error) {
	user, err := svc.writer.Update(ctx, userID, email, name, role)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Delete removes a user.
func (svc *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := svc.writer.Delete(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		logger.Log.Errorw("failed to delete user", "userID", userID, "error", err)
		return err
	}
	return nil
}
