package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-library-backend/internal/logger"
	"github.com/sbilibin2017/gw-library-backend/internal/models"
)

// PopularityReader derives popularity rankings from the transaction store.
type PopularityReader interface {
	PopularBooks(ctx context.Context) ([]models.PopularBook, error)
	PopularAuthors(ctx context.Context) ([]models.PopularAuthor, error)
}

// PopularityCacheReader caches popularity rankings.
type PopularityCacheReader interface {
	GetPopularBooks(ctx context.Context) ([]models.PopularBook, error)
	SetPopularBooks(ctx context.Context, books []models.PopularBook) error
	GetPopularAuthors(ctx context.Context) ([]models.PopularAuthor, error)
	SetPopularAuthors(ctx context.Context, authors []models.PopularAuthor) error
}

// TransactionLister reads transactions and open-loan views by date range.
type TransactionLister interface {
	ListByDateRange(ctx context.Context, dateRange models.DateRange) ([]models.BorrowingTransactionDB, error)
	ListBorrowed(ctx context.Context, dateRange models.DateRange) ([]models.BorrowedBook, error)
	ListOverdue(ctx context.Context, dateRange models.DateRange, now time.Time) ([]models.BorrowedBook, error)
}

// AnalyticsService computes popularity rankings and overdue/returned
// classification. Read only; rankings go through the Redis cache first.
type AnalyticsService struct {
	reader    PopularityReader
	cacheRepo PopularityCacheReader
	txns      TransactionLister
	clock     Clock
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(reader PopularityReader, cacheRepo PopularityCacheReader, txns TransactionLister, clock Clock) *AnalyticsService {
	return &AnalyticsService{
		reader:    reader,
		cacheRepo: cacheRepo,
		txns:      txns,
		clock:     clock,
	}
}

// PopularBooks returns the top 10 most borrowed books joined with their
// current attributes.
func (s *AnalyticsService) PopularBooks(ctx context.Context) ([]models.PopularBook, error) {
	books, err := s.cacheRepo.GetPopularBooks(ctx)
	if err == nil {
		return books, nil
	}

	books, err = s.reader.PopularBooks(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get popular books", "error", err)
		return nil, err
	}

	if err := s.cacheRepo.SetPopularBooks(ctx, books); err != nil {
		logger.Log.Errorw("failed to cache popular books", "error", err)
	}

	return books, nil
}

// PopularAuthors returns the top 10 most borrowed authors, counts summed
// across each author's books.
func (s *AnalyticsService) PopularAuthors(ctx context.Context) ([]models.PopularAuthor, error) {
	authors, err := s.cacheRepo.GetPopularAuthors(ctx)
	if err == nil {
		return authors, nil
	}

	authors, err = s.reader.PopularAuthors(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get popular authors", "error", err)
		return nil, err
	}

	if err := s.cacheRepo.SetPopularAuthors(ctx, authors); err != nil {
		logger.Log.Errorw("failed to cache popular authors", "error", err)
	}

	return authors, nil
}

// TransactionsAnalysis classifies every transaction borrowed within the
// range. The returned/overdue flags are derived at read time against the
// injected clock; borrowedCount counts still-open loans, overdue included.
func (s *AnalyticsService) TransactionsAnalysis(ctx context.Context, dateRange models.DateRange) (*models.TransactionsAnalysis, error) {
	txns, err := s.txns.ListByDateRange(ctx, dateRange)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "error", err)
		return nil, err
	}

	now := s.clock()

	extended := make([]models.ExtendedTransaction, 0, len(txns))
	returnedCount := 0
	overdueCount := 0
	for _, txn := range txns {
		e := models.ExtendedTransaction{
			BorrowingTransactionDB: txn,
			Returned:               txn.Returned(),
			Overdue:                txn.Overdue(now),
		}
		if e.Returned {
			returnedCount++
		}
		if e.Overdue {
			overdueCount++
		}
		extended = append(extended, e)
	}

	return &models.TransactionsAnalysis{
		Transactions:  extended,
		ReturnedCount: returnedCount,
		OverdueCount:  overdueCount,
		BorrowedCount: len(extended) - returnedCount,
	}, nil
}

// BorrowedBooks returns books held by open loans within the range.
func (s *AnalyticsService) BorrowedBooks(ctx context.Context, dateRange models.DateRange) ([]models.BorrowedBook, error) {
	books, err := s.txns.ListBorrowed(ctx, dateRange)
	if err != nil {
		logger.Log.Errorw("failed to list borrowed books", "error", err)
		return nil, err
	}
	return books, nil
}

// OverdueBooks returns books held by open loans whose due date has passed.
func (s *AnalyticsService) OverdueBooks(ctx context.Context, dateRange models.DateRange) ([]models.BorrowedBook, error) {
	books, err := s.txns.ListOverdue(ctx, dateRange, s.clock())
	if err != nil {
		logger.Log.Errorw("failed to list overdue books", "error", err)
		return nil, err
	}
	return books, nil
}
