package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-library-backend/internal/logger"
	"github.com/sbilibin2017/gw-library-backend/internal/models"
)

// Error variables
var (
	ErrBookNotAvailable = errors.New("book has no available copies")
	ErrUserNotFound     = errors.New("user does not exist")
	ErrAlreadyBorrowed  = errors.New("user has already borrowed this book")
	ErrNotBorrowed      = errors.New("user has no open loan for this book")
	ErrInvalidDueDate   = errors.New("due date must be after borrow date")
)

// Clock supplies the current time. Injected so overdue computation and
// return timestamping stay deterministic in tests.
type Clock func() time.Time

// BookLockReader reads a book row and locks it for the surrounding
// transaction.
type BookLockReader interface {
	GetByIDForUpdate(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error)
}

// InventoryWriter mutates a book's available quantity.
type InventoryWriter interface {
	DecrementAvailability(ctx context.Context, bookID uuid.UUID) error
	IncrementAvailability(ctx context.Context, bookID uuid.UUID) error
}

// BorrowerReader checks that the borrowing user exists.
type BorrowerReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// OpenLoanReader finds the open loan for a (book, user) pair.
type OpenLoanReader interface {
	GetOpenByBookAndUser(ctx context.Context, bookID, userID uuid.UUID) (*models.BorrowingTransactionDB, error)
}

// LoanWriter creates and closes borrowing transactions.
type LoanWriter interface {
	Insert(ctx context.Context, bookID, userID uuid.UUID, borrowedAt, dueDate time.Time) (*models.BorrowingTransactionDB, error)
	Close(ctx context.Context, transactionID uuid.UUID, returnedAt time.Time) (*models.BorrowingTransactionDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LoanService orchestrates the borrow/return workflow. All repository calls
// run against the caller's transaction (via the tx-aware repositories), so
// the check-then-mutate sequence is atomic: either every effect lands or
// none do.
type LoanService struct {
	bookReader  BookLockReader
	inventory   InventoryWriter
	userReader  BorrowerReader
	loanReader  OpenLoanReader
	loanWriter  LoanWriter
	kafkaWriter KafkaWriter
	clock       Clock
}

// NewLoanService creates a new LoanService.
func NewLoanService(
	bookReader BookLockReader,
	inventory InventoryWriter,
	userReader BorrowerReader,
	loanReader OpenLoanReader,
	loanWriter LoanWriter,
	kafkaWriter KafkaWriter,
	clock Clock,
) *LoanService {
	return &LoanService{
		bookReader:  bookReader,
		inventory:   inventory,
		userReader:  userReader,
		loanReader:  loanReader,
		loanWriter:  loanWriter,
		kafkaWriter: kafkaWriter,
		clock:       clock,
	}
}

// publishLoanEvent publishes a loan event to Kafka. Failures are logged,
// never surfaced: event delivery is best effort and must not fail a loan
// that already committed its effects.
func (s *LoanService) publishLoanEvent(ctx context.Context, txn *models.BorrowingTransactionDB, operation string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", txn.TransactionID)
		return
	}

	event := models.LoanEvent{
		EventID:       uuid.NewString(),
		Timestamp:     s.clock().Unix(),
		TransactionID: txn.TransactionID.String(),
		BookID:        txn.BookID.String(),
		UserID:        txn.UserID.String(),
		Operation:     operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal loan event for Kafka", "transaction_id", txn.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish loan event to Kafka", "transaction_id", txn.TransactionID, "error", err)
	} else {
		logger.Log.Infow("loan event published to Kafka", "transaction_id", txn.TransactionID, "operation", operation)
	}
}

// Borrow lends one copy of a book to a user. Preconditions, in order: the
// book exists with at least one available copy, the user exists, and the
// pair has no open loan. Effects: the availability decrement and the open
// transaction insert, all-or-nothing within the request transaction.
func (s *LoanService) Borrow(ctx context.Context, bookID, userID uuid.UUID, borrowedAt, dueDate time.Time) (*models.BorrowingTransactionDB, error) {
	if !dueDate.After(borrowedAt) {
		return nil, ErrInvalidDueDate
	}

	book, err := s.bookReader.GetByIDForUpdate(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to check book availability", "bookID", bookID, "error", err)
		return nil, err
	}
	if book == nil || book.AvailableQuantity < 1 {
		return nil, ErrBookNotAvailable
	}

	user, err := s.userReader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	open, err := s.loanReader.GetOpenByBookAndUser(ctx, bookID, userID)
	if err != nil {
		logger.Log.Errorw("failed to check open loan", "bookID", bookID, "userID", userID, "error", err)
		return nil, err
	}
	if open != nil {
		return nil, ErrAlreadyBorrowed
	}

	if err := s.inventory.DecrementAvailability(ctx, bookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookNotAvailable
		}
		logger.Log.Errorw("failed to decrement availability", "bookID", bookID, "error", err)
		return nil, err
	}

	txn, err := s.loanWriter.Insert(ctx, bookID, userID, borrowedAt, dueDate)
	if err != nil {
		// The partial unique index on open loans backstops the duplicate
		// check under concurrent borrows for the same pair.
		if isUniqueViolation(err) {
			return nil, ErrAlreadyBorrowed
		}
		logger.Log.Errorw("failed to insert borrowing transaction", "bookID", bookID, "userID", userID, "error", err)
		return nil, err
	}

	s.publishLoanEvent(ctx, txn, "borrow")

	return txn, nil
}

// Return closes the open loan for a (book, user) pair, stamping returnedAt
// with the current time and putting the copy back on the shelf.
func (s *LoanService) Return(ctx context.Context, bookID, userID uuid.UUID) (*models.BorrowingTransactionDB, error) {
	open, err := s.loanReader.GetOpenByBookAndUser(ctx, bookID, userID)
	if err != nil {
		logger.Log.Errorw("failed to find open loan", "bookID", bookID, "userID", userID, "error", err)
		return nil, err
	}
	if open == nil {
		return nil, ErrNotBorrowed
	}

	closed, err := s.loanWriter.Close(ctx, open.TransactionID, s.clock())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotBorrowed
		}
		logger.Log.Errorw("failed to close borrowing transaction", "transactionID", open.TransactionID, "error", err)
		return nil, err
	}

	if err := s.inventory.IncrementAvailability(ctx, bookID); err != nil {
		logger.Log.Errorw("failed to increment availability", "bookID", bookID, "error", err)
		return nil, err
	}

	s.publishLoanEvent(ctx, closed, "return")

	return closed, nil
}

// IsOverdue reports whether the transaction is overdue right now.
func (s *LoanService) IsOverdue(txn *models.BorrowingTransactionDB) bool {
	return txn.Overdue(s.clock())
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
