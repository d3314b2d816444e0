package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-library-backend/internal/models"
)

func seedBookAndUser(t *testing.T, db *sqlx.DB) (uuid.UUID, uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	book, err := NewBookWriteRepository(db, nil).Save(ctx, "Dune", "Frank Herbert", "isbn-"+uuid.NewString(), 3, "")
	assert.NoError(t, err)

	suffix := uuid.NewString()[:8]
	user, err := NewUserWriteRepository(db, nil).Save(ctx, "reader-"+suffix, suffix+"@example.com", "Reader", "member", "hash")
	assert.NoError(t, err)

	return book.BookID, user.UserID
}

func TestTransactionWriteRepository_InsertAndClose(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewTransactionWriteRepository(db, nil)
	readRepo := NewTransactionReadRepository(db, nil)
	ctx := context.Background()

	bookID, userID := seedBookAndUser(t, db)
	borrowedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	dueDate := borrowedAt.AddDate(0, 0, 14)

	txn, err := writeRepo.Insert(ctx, bookID, userID, borrowedAt, dueDate)
	assert.NoError(t, err)
	assert.NotNil(t, txn)
	assert.Equal(t, bookID, txn.BookID)
	assert.Equal(t, userID, txn.UserID)
	assert.Nil(t, txn.ReturnedAt)

	open, err := readRepo.GetOpenByBookAndUser(ctx, bookID, userID)
	assert.NoError(t, err)
	assert.NotNil(t, open)
	assert.Equal(t, txn.TransactionID, open.TransactionID)

	returnedAt := borrowedAt.AddDate(0, 0, 7)
	closed, err := writeRepo.Close(ctx, txn.TransactionID, returnedAt)
	assert.NoError(t, err)
	assert.NotNil(t, closed)
	assert.NotNil(t, closed.ReturnedAt)

	// Closing twice finds no open loan
	_, err = writeRepo.Close(ctx, txn.TransactionID, returnedAt)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	open, err = readRepo.GetOpenByBookAndUser(ctx, bookID, userID)
	assert.NoError(t, err)
	assert.Nil(t, open)
}

func TestTransactionWriteRepository_DuplicateOpenLoan(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewTransactionWriteRepository(db, nil)
	ctx := context.Background()

	bookID, userID := seedBookAndUser(t, db)
	borrowedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	dueDate := borrowedAt.AddDate(0, 0, 14)

	_, err := writeRepo.Insert(ctx, bookID, userID, borrowedAt, dueDate)
	assert.NoError(t, err)

	// The partial unique index rejects a second open loan for the same pair
	_, err = writeRepo.Insert(ctx, bookID, userID, borrowedAt.AddDate(0, 0, 1), dueDate)
	assert.Error(t, err)

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
	assert.Equal(t, "23505", pgErr.Code)

	// After returning, the same pair can borrow again
	txns := []models.BorrowingTransactionDB{}
	assert.NoError(t, db.Select(&txns, "SELECT transaction_id, book_id, user_id, borrowed_at, due_date, returned_at, created_at, updated_at FROM borrowing_transactions"))
	assert.Len(t, txns, 1)

	_, err = writeRepo.Close(ctx, txns[0].TransactionID, borrowedAt.AddDate(0, 0, 2))
	assert.NoError(t, err)

	_, err = writeRepo.Insert(ctx, bookID, userID, borrowedAt.AddDate(0, 0, 3), dueDate)
	assert.NoError(t, err)
}

func TestTransactionReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewTransactionWriteRepository(db, nil)
	readRepo := NewTransactionReadRepository(db, nil)
	ctx := context.Background()

	bookID, userID := seedBookAndUser(t, db)
	borrowedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	txn, err := writeRepo.Insert(ctx, bookID, userID, borrowedAt, borrowedAt.AddDate(0, 0, 14))
	assert.NoError(t, err)

	got, err := readRepo.GetByID(ctx, txn.TransactionID)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, txn.TransactionID, got.TransactionID)

	missing, err := readRepo.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTransactionReadRepository_ListByDateRange(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewTransactionWriteRepository(db, nil)
	readRepo := NewTransactionReadRepository(db, nil)
	ctx := context.Background()

	userRepo := NewUserWriteRepository(db, nil)
	bookRepo := NewBookWriteRepository(db, nil)

	book, err := bookRepo.Save(ctx, "Dune", "Frank Herbert", "isbn-range", 10, "")
	assert.NoError(t, err)

	dates := []time.Time{
		time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	for i, borrowedAt := range dates {
		user, err := userRepo.Save(ctx, "reader"+string(rune('a'+i)), string(rune('a'+i))+"@example.com", "Reader", "member", "hash")
		assert.NoError(t, err)
		_, err = writeRepo.Insert(ctx, book.BookID, user.UserID, borrowedAt, borrowedAt.AddDate(0, 0, 14))
		assert.NoError(t, err)
	}

	t.Run("Unbounded", func(t *testing.T) {
		txns, err := readRepo.ListByDateRange(ctx, models.DateRange{})
		assert.NoError(t, err)
		assert.Len(t, txns, 3)
		// Ordered by borrowedAt ascending
		assert.True(t, txns[0].BorrowedAt.Before(txns[1].BorrowedAt))
		assert.True(t, txns[1].BorrowedAt.Before(txns[2].BorrowedAt))
	})

	t.Run("BoundsInclusive", func(t *testing.T) {
		from := dates[0]
		to := dates[1]
		txns, err := readRepo.ListByDateRange(ctx, models.DateRange{From: &from, To: &to})
		assert.NoError(t, err)
		assert.Len(t, txns, 2)
	})

	t.Run("FromOnly", func(t *testing.T) {
		from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		txns, err := readRepo.ListByDateRange(ctx, models.DateRange{From: &from})
		assert.NoError(t, err)
		assert.Len(t, txns, 2)
	})

	t.Run("EmptyRange", func(t *testing.T) {
		from := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
		txns, err := readRepo.ListByDateRange(ctx, models.DateRange{From: &from})
		assert.NoError(t, err)
		assert.Empty(t, txns)
	})
}

func TestTransactionReadRepository_ListBorrowedAndOverdue(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewTransactionWriteRepository(db, nil)
	readRepo := NewTransactionReadRepository(db, nil)
	ctx := context.Background()

	userRepo := NewUserWriteRepository(db, nil)
	bookRepo := NewBookWriteRepository(db, nil)

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	bookOpen, err := bookRepo.Save(ctx, "Open Loan", "Author A", "isbn-open", 1, "")
	assert.NoError(t, err)
	bookOverdue, err := bookRepo.Save(ctx, "Overdue Loan", "Author B", "isbn-overdue", 1, "")
	assert.NoError(t, err)
	bookReturned, err := bookRepo.Save(ctx, "Returned Loan", "Author C", "isbn-returned", 1, "")
	assert.NoError(t, err)

	user, err := userRepo.Save(ctx, "reader", "reader@example.com", "Reader", "member", "hash")
	assert.NoError(t, err)

	// Open loan, due date still ahead
	_, err = writeRepo.Insert(ctx, bookOpen.BookID, user.UserID, now.AddDate(0, 0, -3), now.AddDate(0, 0, 11))
	assert.NoError(t, err)

	// Open loan, due date passed
	_, err = writeRepo.Insert(ctx, bookOverdue.BookID, user.UserID, now.AddDate(0, 0, -20), now.AddDate(0, 0, -6))
	assert.NoError(t, err)

	// Closed loan
	returnedTxn, err := writeRepo.Insert(ctx, bookReturned.BookID, user.UserID, now.AddDate(0, 0, -10), now.AddDate(0, 0, 4))
	assert.NoError(t, err)
	_, err = writeRepo.Close(ctx, returnedTxn.TransactionID, now.AddDate(0, 0, -1))
	assert.NoError(t, err)

	t.Run("Borrowed", func(t *testing.T) {
		books, err := readRepo.ListBorrowed(ctx, models.DateRange{})
		assert.NoError(t, err)
		assert.Len(t, books, 2)
		titles := []string{books[0].Title, books[1].Title}
		assert.Contains(t, titles, "Open Loan")
		assert.Contains(t, titles, "Overdue Loan")
		assert.Equal(t, user.UserID, books[0].BorrowerID)
	})

	t.Run("Overdue", func(t *testing.T) {
		books, err := readRepo.ListOverdue(ctx, models.DateRange{}, now)
		assert.NoError(t, err)
		assert.Len(t, books, 1)
		assert.Equal(t, "Overdue Loan", books[0].Title)
	})

	t.Run("OverdueRespectsRange", func(t *testing.T) {
		from := now.AddDate(0, 0, -5)
		books, err := readRepo.ListOverdue(ctx, models.DateRange{From: &from}, now)
		assert.NoError(t, err)
		assert.Empty(t, books)
	})
}
