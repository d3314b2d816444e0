package models

import (
	"time"

	"github.com/google/uuid"
)

// PopularBook is a book joined with its total borrow count.
type PopularBook struct {
	BookDB
	BorrowCount int `json:"borrowCount" db:"borrow_count"`
}

// PopularAuthor is an author with borrow counts summed across all their books.
type PopularAuthor struct {
	Author      string `json:"author" db:"author"`
	BorrowCount int    `json:"borrowCount" db:"borrow_count"`
}

// ExtendedTransaction is a transaction with its derived flags materialized
// at read time.
type ExtendedTransaction struct {
	BorrowingTransactionDB
	Returned bool `json:"returned"`
	Overdue  bool `json:"overdue"`
}

// TransactionsAnalysis is the aggregate view over a date range.
// BorrowedCount counts still-open loans, overdue ones included.
type TransactionsAnalysis struct {
	Transactions  []ExtendedTransaction `json:"transactions"`
	ReturnedCount int                   `json:"returnedCount"`
	OverdueCount  int                   `json:"overdueCount"`
	BorrowedCount int                   `json:"borrowedCount"`
}

// BorrowedBook is a book joined with the open loan that holds it.
type BorrowedBook struct {
	BookDB
	BorrowerID uuid.UUID `json:"borrowerId" db:"borrower_id"`
	BorrowedAt time.Time `json:"borrowedAt" db:"borrowed_at"`
	DueDate    time.Time `json:"dueDate" db:"due_date"`
}

// LoanEvent is published to Kafka after a successful borrow or return.
type LoanEvent struct {
	EventID       string `json:"event_id"`       // Unique event identifier
	Timestamp     int64  `json:"timestamp"`      // Unix timestamp of the operation
	TransactionID string `json:"transaction_id"` // Affected borrowing transaction
	BookID        string `json:"book_id"`        // Affected book
	UserID        string `json:"user_id"`        // Borrower
	Operation     string `json:"operation"`      // "borrow" or "return"
}
