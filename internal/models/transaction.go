package models

import (
	"time"

	"github.com/google/uuid"
)

// BorrowingTransactionDB represents a borrowing transaction record.
// A transaction is open while ReturnedAt is nil and is closed exactly once,
// by a return; no other field is ever mutated and rows are never deleted.
type BorrowingTransactionDB struct {
	TransactionID uuid.UUID  `json:"id" db:"transaction_id"`      // Primary key
	BookID        uuid.UUID  `json:"bookId" db:"book_id"`         // Borrowed book
	UserID        uuid.UUID  `json:"userId" db:"user_id"`         // Borrower
	BorrowedAt    time.Time  `json:"borrowedAt" db:"borrowed_at"` // When the loan was created
	DueDate       time.Time  `json:"dueDate" db:"due_date"`       // Strictly after BorrowedAt
	ReturnedAt    *time.Time `json:"returnedAt" db:"returned_at"` // Nil while the loan is open
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`  // Creation timestamp
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`  // Last update timestamp
}

// Returned reports whether the loan has been closed.
func (t *BorrowingTransactionDB) Returned() bool {
	return t.ReturnedAt != nil
}

// Overdue reports whether the loan is past due at the given time:
// still open past the due date, or returned after it.
func (t *BorrowingTransactionDB) Overdue(now time.Time) bool {
	if !now.After(t.DueDate) {
		return false
	}
	return t.ReturnedAt == nil || t.ReturnedAt.After(t.DueDate)
}
