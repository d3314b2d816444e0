package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-library-backend/internal/logger"
	"github.com/sbilibin2017/gw-library-backend/internal/models"
	"github.com/sbilibin2017/gw-library-backend/internal/services"
)

// Borrower defines the borrow operation the handler needs.
type Borrower interface {
	Borrow(ctx context.Context, bookID, userID uuid.UUID, borrowedAt, dueDate time.Time) (*models.BorrowingTransactionDB, error)
}

// Returner defines the return operation the handler needs.
type Returner interface {
	Return(ctx context.Context, bookID, userID uuid.UUID) (*models.BorrowingTransactionDB, error)
}

// BorrowRequest represents the JSON body for borrowing a book
// swagger:model BorrowRequest
type BorrowRequest struct {
	// Borrowing user
	// required: true
	UserID uuid.UUID `json:"userId"`

	// When the loan starts, defaults to now
	BorrowedAt *time.Time `json:"borrowedAt"`

	// When the book is due back, must be after borrowedAt
	// required: true
	DueDate time.Time `json:"dueDate"`
}

// ReturnRequest represents the JSON body for returning a book
// swagger:model ReturnRequest
type ReturnRequest struct {
	// Returning user
	// required: true
	UserID uuid.UUID `json:"userId"`
}

// LoanErrorResponse represents an error response for loan operations
// swagger:model LoanErrorResponse
type LoanErrorResponse struct {
	// Error message
	// default: Book has no available copies
	Error string `json:"error"`
}

// NewBorrowBookHandler returns an HTTP handler for borrowing a book.
// @Summary Borrow a book
// @Description Lends one copy to the user. Fails when no copy is available, the user does not exist, or the user already holds an open loan for this book.
// @Tags loans
// @Accept json
// @Produce json
// @Param bookID path string true "Book ID"
// @Param borrowRequest body handlers.BorrowRequest true "Borrow request"
// @Success 201 {object} models.BorrowingTransactionDB "Open borrowing transaction"
// @Failure 400 {object} handlers.LoanErrorResponse "No copies available / already borrowed / invalid due date"
// @Failure 404 {object} handlers.LoanErrorResponse "User does not exist"
// @Router /books/{bookID}/borrow [post]
// @Security BearerAuth
func NewBorrowBookHandler(svc Borrower, clock services.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoanErrorResponse{Error: "Invalid book ID"})
			return
		}

		var req BorrowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoanErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.UserID == uuid.Nil || req.DueDate.IsZero() {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoanErrorResponse{Error: "User ID and due date are required"})
			return
		}

		borrowedAt := clock()
		if req.BorrowedAt != nil {
			borrowedAt = *req.BorrowedAt
		}

		txn, err := svc.Borrow(r.Context(), bookID, req.UserID, borrowedAt, req.DueDate)
		if err != nil {
			switch err {
			case services.ErrBookNotAvailable:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LoanErrorResponse{Error: "Book has no available copies"})
			case services.ErrAlreadyBorrowed:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LoanErrorResponse{Error: "User has already borrowed this book"})
			case services.ErrInvalidDueDate:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LoanErrorResponse{Error: "Due date must be after borrow date"})
			case services.ErrUserNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(LoanErrorResponse{Error: "User does not exist"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoanErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(txn)
	}
}

// NewReturnBookHandler returns an HTTP handler for returning a book.
// @Summary Return a book
// @Description Closes the user's open loan for this book and puts the copy back on the shelf.
// @Tags loans
// @Accept json
// @Produce json
// @Param bookID path string true "Book ID"
// @Param returnRequest body handlers.ReturnRequest true "Return request"
// @Success 200 {object} models.BorrowingTransactionDB "Closed borrowing transaction"
// @Failure 400 {object} handlers.LoanErrorResponse "No open loan for this book and user"
// @Router /books/{bookID}/return [post]
// @Security BearerAuth
func NewReturnBookHandler(svc Returner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoanErrorResponse{Error: "Invalid book ID"})
			return
		}

		var req ReturnRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoanErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.UserID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoanErrorResponse{Error: "User ID is required"})
			return
		}

		txn, err := svc.Return(r.Context(), bookID, req.UserID)
		if err != nil {
			switch err {
			case services.ErrNotBorrowed:
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LoanErrorResponse{Error: "User has no open loan for this book"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoanErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(txn)
	}
}
