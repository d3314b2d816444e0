package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-library-backend/internal/logger"
	"github.com/sbilibin2017/gw-library-backend/internal/models"
	"github.com/sbilibin2017/gw-library-backend/internal/services"
)

// UserReader defines the read operations the handlers need.
type UserReader interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines the write operations the handlers need.
type UserWriter interface {
	Update(ctx context.Context, userID uuid.UUID, email, name, role string) (*models.UserDB, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// UserUpdateRequest represents the JSON body for updating a user
// swagger:model UserUpdateRequest
type UserUpdateRequest struct {
	// Email
	// default: jane@example.com
	Email string `json:"email"`

	// Display name
	// default: Jane Doe
	Name string `json:"name"`

	// Role, member or librarian
	// default: member
	Role string `json:"role"`
}

// UserErrorResponse represents an error response for user operations
// swagger:model UserErrorResponse
type UserErrorResponse struct {
	// Error message
	// default: User does not exist
	Error string `json:"error"`
}

// NewListUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.UserDB "Users"
// @Failure 500 {object} handlers.UserErrorResponse "Internal server error"
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}

// NewGetUserHandler returns an HTTP handler fetching a user by ID.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} models.UserDB "User"
// @Failure 404 {object} handlers.UserErrorResponse "User does not exist"
// @Router /users/{userID} [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Invalid user ID"})
			return
		}

		user, err := svc.Get(r.Context(), userID)
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: "User does not exist"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}

// NewUpdateUserHandler returns an HTTP handler updating a user's attributes.
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param userUpdateRequest body handlers.UserUpdateRequest true "User attributes"
// @Success 200 {object} models.UserDB "Updated user"
// @Failure 400 {object} handlers.UserErrorResponse "Email already exists / invalid request"
// @Failure 404 {object} handlers.UserErrorResponse "User does not exist"
// @Router /users/{userID} [put]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Invalid user ID"})
			return
		}

		var req UserUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Role != "" && req.Role != models.RoleMember && req.Role != models.RoleLibrarian {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Invalid role"})
			return
		}

		user, err := svc.Update(r.Context(), userID, req.Email, req.Name, req.Role)
		if err != nil {
			switch err {
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: "User does not exist"})
			case services.ErrUserAlreadyExists:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: "Email already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting a user.
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 204 "User deleted"
// @Failure 404 {object} handlers.UserErrorResponse "User does not exist"
// @Router /users/{userID} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "userID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UserErrorResponse{Error: "Invalid user ID"})
			return
		}

		if err := svc.Delete(r.Context(), userID); err != nil {
			switch err {
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: "User does not exist"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UserErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
