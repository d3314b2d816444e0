package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-library-backend/internal/csvutil"
	"github.com/sbilibin2017/gw-library-backend/internal/logger"
	"github.com/sbilibin2017/gw-library-backend/internal/models"
	"github.com/sbilibin2017/gw-library-backend/internal/services"
)

// PopularityGetter defines the ranking reads the handlers need.
type PopularityGetter interface {
	PopularBooks(ctx context.Context) ([]models.PopularBook, error)
	PopularAuthors(ctx context.Context) ([]models.PopularAuthor, error)
}

// TransactionsAnalyzer defines the aggregate view the handler needs.
type TransactionsAnalyzer interface {
	TransactionsAnalysis(ctx context.Context, dateRange models.DateRange) (*models.TransactionsAnalysis, error)
}

// AnalyticsErrorResponse represents an error response for analytics reads
// swagger:model AnalyticsErrorResponse
type AnalyticsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

var (
	analysisCSVHeader       = []string{"id", "bookId", "userId", "borrowedAt", "dueDate", "returnedAt", "returned", "overdue", "returnedCount", "overdueCount", "borrowedCount"}
	popularBooksCSVHeader   = []string{"id", "title", "author", "ISBN", "borrowCount"}
	popularAuthorsCSVHeader = []string{"author", "borrowCount"}
)

// NewPopularBooksHandler returns an HTTP handler for the top borrowed books.
// Pass export=csv for a CSV attachment.
// @Summary Top 10 most borrowed books
// @Tags analytics
// @Produce json
// @Produce text/csv
// @Param export query string false "Set to csv for a CSV attachment"
// @Success 200 {array} models.PopularBook "Popular books"
// @Failure 500 {object} handlers.AnalyticsErrorResponse "Internal server error"
// @Router /analytics/popular-books [get]
// @Security BearerAuth
func NewPopularBooksHandler(svc PopularityGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := svc.PopularBooks(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AnalyticsErrorResponse{Error: "Internal server error"})
			return
		}

		if wantsCSV(r) {
			rows := make([]map[string]any, 0, len(books))
			for _, b := range books {
				rows = append(rows, map[string]any{
					"id":          b.BookID,
					"title":       b.Title,
					"author":      b.Author,
					"ISBN":        b.ISBN,
					"borrowCount": b.BorrowCount,
				})
			}
			writeCSV(w, csvutil.FileName("popular-books", models.DateRange{}), csvutil.Convert(rows, popularBooksCSVHeader))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(books)
	}
}

// NewPopularAuthorsHandler returns an HTTP handler for the top borrowed authors.
// Pass export=csv for a CSV attachment.
// @Summary Top 10 most borrowed authors
// @Tags analytics
// @Produce json
// @Produce text/csv
// @Param export query string false "Set to csv for a CSV attachment"
// @Success 200 {array} models.PopularAuthor "Popular authors"
// @Failure 500 {object} handlers.AnalyticsErrorResponse "Internal server error"
// @Router /analytics/popular-authors [get]
// @Security BearerAuth
func NewPopularAuthorsHandler(svc PopularityGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authors, err := svc.PopularAuthors(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AnalyticsErrorResponse{Error: "Internal server error"})
			return
		}

		if wantsCSV(r) {
			rows := make([]map[string]any, 0, len(authors))
			for _, a := range authors {
				rows = append(rows, map[string]any{
					"author":      a.Author,
					"borrowCount": a.BorrowCount,
				})
			}
			writeCSV(w, csvutil.FileName("popular-authors", models.DateRange{}), csvutil.Convert(rows, popularAuthorsCSVHeader))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(authors)
	}
}

// NewTransactionsAnalysisHandler returns an HTTP handler classifying every
// transaction in the range as returned, overdue or still borrowed. Pass
// export=csv for a CSV attachment of the classified transactions.
// @Summary Analyze borrowing transactions
// @Tags analytics
// @Produce json
// @Produce text/csv
// @Param from query string false "Lower bound, ISO date"
// @Param to query string false "Upper bound, ISO date"
// @Param since query string false "Shorthand lower bound: yesterday, lastweek, lastmonth, lastyear"
// @Param export query string false "Set to csv for a CSV attachment"
// @Success 200 {object} models.TransactionsAnalysis "Classified transactions with counts"
// @Failure 400 {object} handlers.AnalyticsErrorResponse "Invalid date range"
// @Router /analytics/transactions [get]
// @Security BearerAuth
func NewTransactionsAnalysisHandler(svc TransactionsAnalyzer, clock services.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dateRange, err := parseDateRange(r, clock())
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AnalyticsErrorResponse{Error: "Invalid date range"})
			return
		}

		analysis, err := svc.TransactionsAnalysis(r.Context(), dateRange)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AnalyticsErrorResponse{Error: "Internal server error"})
			return
		}

		if wantsCSV(r) {
			rows := analysisToRows(analysis.Transactions)
			// Aggregate counts ride on the first data row
			if len(rows) == 0 {
				rows = append(rows, map[string]any{})
			}
			rows[0]["returnedCount"] = analysis.ReturnedCount
			rows[0]["overdueCount"] = analysis.OverdueCount
			rows[0]["borrowedCount"] = analysis.BorrowedCount

			lines := csvutil.Convert(rows, analysisCSVHeader)
			writeCSV(w, csvutil.FileName("transactions-analysis", dateRange), lines)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(analysis)
	}
}

func analysisToRows(txns []models.ExtendedTransaction) []map[string]any {
	rows := make([]map[string]any, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, map[string]any{
			"id":         t.TransactionID,
			"bookId":     t.BookID,
			"userId":     t.UserID,
			"borrowedAt": t.BorrowedAt,
			"dueDate":    t.DueDate,
			"returnedAt": t.ReturnedAt,
			"returned":   t.Returned,
			"overdue":    t.Overdue,
		})
	}
	return rows
}
