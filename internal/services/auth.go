package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/gw-library-backend/internal/logger"
	"github.com/sbilibin2017/gw-library-backend/internal/models"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, name, role, passwordHash string) (*models.UserDB, error)
	Update(ctx context.Context, userID uuid.UUID, email, name, role string) (*models.UserDB, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, role string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register registers a new user with a hashed password.
func (svc *AuthService) Register(ctx context.Context, username, password, email, name, role string) (*models.UserDB, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	if role == "" {
		role = models.RoleMember
	}

	created, err := svc.writer.Save(ctx, username, email, name, role, string(hashedPassword))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return created, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
