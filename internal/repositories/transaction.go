package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-library-backend/internal/logger"
	"github.com/sbilibin2017/gw-library-backend/internal/models"
)

const transactionColumns = "transaction_id, book_id, user_id, borrowed_at, due_date, returned_at, created_at, updated_at"

// TransactionReadRepository handles borrowing transaction read operations.
type TransactionReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionReadRepository {
	return &TransactionReadRepository{db: db, txGetter: txGetter}
}

func (r *TransactionReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID retrieves a transaction by ID. Returns nil without error when the
// transaction does not exist.
func (r *TransactionReadRepository) GetByID(ctx context.Context, transactionID uuid.UUID) (*models.BorrowingTransactionDB, error) {
	const query = `
		SELECT ` + transactionColumns + `
		FROM borrowing_transactions
		WHERE transaction_id = $1
	`

	var txn models.BorrowingTransactionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &txn, query, transactionID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &txn, nil
}

// GetOpenByBookAndUser retrieves the open loan for a (book, user) pair.
// The partial unique index on open loans guarantees at most one row.
// Returns nil without error when there is no open loan.
func (r *TransactionReadRepository) GetOpenByBookAndUser(ctx context.Context, bookID, userID uuid.UUID) (*models.BorrowingTransactionDB, error) {
	const query = `
		SELECT ` + transactionColumns + `
		FROM borrowing_transactions
		WHERE book_id = $1 AND user_id = $2 AND returned_at IS NULL
		LIMIT 1
	`

	var txn models.BorrowingTransactionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &txn, query, bookID, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID, userID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &txn, nil
}

func rangeExpressions(dateRange models.DateRange) []goqu.Expression {
	expressions := make([]goqu.Expression, 0, 2)
	if dateRange.From != nil {
		expressions = append(expressions, goqu.I("t.borrowed_at").Gte(*dateRange.From))
	}
	if dateRange.To != nil {
		expressions = append(expressions, goqu.I("t.borrowed_at").Lte(*dateRange.To))
	}
	return expressions
}

// ListByDateRange retrieves transactions whose borrowedAt falls within the
// range, both bounds inclusive and optional.
func (r *TransactionReadRepository) ListByDateRange(ctx context.Context, dateRange models.DateRange) ([]models.BorrowingTransactionDB, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(goqu.T("borrowing_transactions").As("t")).
		Select("transaction_id", "book_id", "user_id", "borrowed_at", "due_date", "returned_at", "created_at", "updated_at").
		Where(rangeExpressions(dateRange)...).
		Order(goqu.I("t.borrowed_at").Asc(), goqu.I("t.transaction_id").Asc())

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	txns := []models.BorrowingTransactionDB{}
	err = sqlx.SelectContext(ctx, r.executor(ctx), &txns, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(txns),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return txns, nil
}

func (r *TransactionReadRepository) listBookJoin(ctx context.Context, expressions []goqu.Expression) ([]models.BorrowedBook, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(goqu.T("borrowing_transactions").As("t")).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("t.book_id").Eq(goqu.I("b.book_id")))).
		Select(
			goqu.I("b.book_id"), goqu.I("b.title"), goqu.I("b.author"), goqu.I("b.isbn"),
			goqu.I("b.available_quantity"), goqu.I("b.shelf_location"),
			goqu.I("b.created_at"), goqu.I("b.updated_at"),
			goqu.I("t.user_id").As("borrower_id"), goqu.I("t.borrowed_at"), goqu.I("t.due_date"),
		).
		Where(expressions...).
		Order(goqu.I("t.borrowed_at").Asc(), goqu.I("t.transaction_id").Asc())

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	books := []models.BorrowedBook{}
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

// ListBorrowed retrieves books held by open loans within the range, joined
// with book attributes and the borrower's loan metadata.
func (r *TransactionReadRepository) ListBorrowed(ctx context.Context, dateRange models.DateRange) ([]models.BorrowedBook, error) {
	expressions := append(rangeExpressions(dateRange), goqu.I("t.returned_at").IsNull())
	return r.listBookJoin(ctx, expressions)
}

// ListOverdue retrieves books held by open loans whose due date has passed.
func (r *TransactionReadRepository) ListOverdue(ctx context.Context, dateRange models.DateRange, now time.Time) ([]models.BorrowedBook, error) {
	expressions := append(rangeExpressions(dateRange),
		goqu.I("t.returned_at").IsNull(),
		goqu.I("t.due_date").Lt(now),
	)
	return r.listBookJoin(ctx, expressions)
}

// TransactionWriteRepository handles borrowing transaction write operations.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

func (r *TransactionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Insert creates a new open loan and returns the stored record. A unique
// violation on the open-loan index surfaces as a pgconn error for the
// service to translate.
func (r *TransactionWriteRepository) Insert(ctx context.Context, bookID, userID uuid.UUID, borrowedAt, dueDate time.Time) (*models.BorrowingTransactionDB, error) {
	const query = `
		INSERT INTO borrowing_transactions (transaction_id, book_id, user_id, borrowed_at, due_date, returned_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULL, NOW(), NOW())
		RETURNING ` + transactionColumns + `
	`
	args := []any{uuid.New(), bookID, userID, borrowedAt, dueDate}

	var txn models.BorrowingTransactionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &txn, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &txn, nil
}

// Close stamps returnedAt on the open loan, transitioning it to its
// terminal state. Only open loans match, so a second close attempt returns
// sql.ErrNoRows.
func (r *TransactionWriteRepository) Close(ctx context.Context, transactionID uuid.UUID, returnedAt time.Time) (*models.BorrowingTransactionDB, error) {
	const query = `
		UPDATE borrowing_transactions
		SET returned_at = $2, updated_at = NOW()
		WHERE transaction_id = $1 AND returned_at IS NULL
		RETURNING ` + transactionColumns + `
	`
	args := []any{transactionID, returnedAt}

	var txn models.BorrowingTransactionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &txn, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &txn, nil
}
