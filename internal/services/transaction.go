package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-library-backend/internal/logger"
	"github.com/sbilibin2017/gw-library-backend/internal/models"
)

// ErrTransactionNotFound is returned when a transaction ID does not exist.
var ErrTransactionNotFound = errors.New("transaction does not exist")

// TransactionGetter reads a single transaction by ID.
type TransactionGetter interface {
	GetByID(ctx context.Context, transactionID uuid.UUID) (*models.BorrowingTransactionDB, error)
}

// TransactionService exposes the durable loan history. Transactions are
// never deleted and only the return workflow mutates them.
type TransactionService struct {
	getter TransactionGetter
	lister TransactionLister
}

// NewTransactionService creates a new TransactionService instance.
func NewTransactionService(getter TransactionGetter, lister TransactionLister) *TransactionService {
	return &TransactionService{
		getter: getter,
		lister: lister,
	}
}

// Get retrieves a transaction by ID.
func (svc *TransactionService) Get(ctx context.Context, transactionID uuid.UUID) (*models.BorrowingTransactionDB, error) {
	txn, err := svc.getter.GetByID(ctx, transactionID)
	if err != nil {
		logger.Log.Errorw("failed to get transaction", "transactionID", transactionID, "error", err)
		return nil, err
	}
	if txn == nil {
		return nil, ErrTransactionNotFound
	}
	return txn, nil
}

// List retrieves transactions whose borrowedAt falls within the range.
func (svc *TransactionService) List(ctx context.Context, dateRange models.DateRange) ([]models.BorrowingTransactionDB, error) {
	txns, err := svc.lister.ListByDateRange(ctx, dateRange)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "error", err)
		return nil, err
	}
	return txns, nil
}
