package repositories

import (
	"context"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-library-backend/internal/logger"
	"github.com/sbilibin2017/gw-library-backend/internal/models"
)

// Rankings return at most this many entries.
const popularLimit = 10

// AnalyticsReadRepository derives popularity rankings from the transaction
// history. It never mutates state and takes no locks.
type AnalyticsReadRepository struct {
	db *sqlx.DB
}

func NewAnalyticsReadRepository(db *sqlx.DB) *AnalyticsReadRepository {
	return &AnalyticsReadRepository{db: db}
}

// PopularBooks returns the top borrowed books joined with their current
// attributes. Ties break by book ID ascending so repeated calls over the
// same data produce the same order.
func (r *AnalyticsReadRepository) PopularBooks(ctx context.Context) ([]models.PopularBook, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(goqu.T("books").As("b")).
		Join(goqu.T("borrowing_transactions").As("t"), goqu.On(goqu.I("b.book_id").Eq(goqu.I("t.book_id")))).
		Select(
			goqu.I("b.book_id"), goqu.I("b.title"), goqu.I("b.author"), goqu.I("b.isbn"),
			goqu.I("b.available_quantity"), goqu.I("b.shelf_location"),
			goqu.I("b.created_at"), goqu.I("b.updated_at"),
			goqu.COUNT(goqu.Star()).As("borrow_count"),
		).
		GroupBy(goqu.I("b.book_id")).
		Order(goqu.I("borrow_count").Desc(), goqu.I("b.book_id").Asc()).
		Limit(popularLimit)

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	books := []models.PopularBook{}
	err = sqlx.SelectContext(ctx, r.db, &books, query, args...)

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

// PopularAuthors returns the top borrowed authors, counts summed across all
// of an author's books. Ties break by author name ascending.
func (r *AnalyticsReadRepository) PopularAuthors(ctx context.Context) ([]models.PopularAuthor, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(goqu.T("books").As("b")).
		Join(goqu.T("borrowing_transactions").As("t"), goqu.On(goqu.I("b.book_id").Eq(goqu.I("t.book_id")))).
		Select(
			goqu.I("b.author"),
			goqu.COUNT(goqu.Star()).As("borrow_count"),
		).
		GroupBy(goqu.I("b.author")).
		Order(goqu.I("borrow_count").Desc(), goqu.I("b.author").Asc()).
		Limit(popularLimit)

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	authors := []models.PopularAuthor{}
	err = sqlx.SelectContext(ctx, r.db, &authors, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(authors),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return authors, nil
}
