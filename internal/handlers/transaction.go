package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-library-backend/internal/csvutil"
	"github.com/sbilibin2017/gw-library-backend/internal/logger"
	"github.com/sbilibin2017/gw-library-backend/internal/models"
	"github.com/sbilibin2017/gw-library-backend/internal/services"
)

// TransactionReader defines the transaction views the handlers need.
type TransactionReader interface {
	Get(ctx context.Context, transactionID uuid.UUID) (*models.BorrowingTransactionDB, error)
	List(ctx context.Context, dateRange models.DateRange) ([]models.BorrowingTransactionDB, error)
}

// TransactionErrorResponse represents an error response for transaction reads
// swagger:model TransactionErrorResponse
type TransactionErrorResponse struct {
	// Error message
	// default: Transaction does not exist
	Error string `json:"error"`
}

var transactionCSVHeader = []string{"id", "bookId", "userId", "borrowedAt", "dueDate", "returnedAt"}

// NewListTransactionsHandler returns an HTTP handler listing borrowing
// transactions by date range. Pass export=csv for a CSV attachment.
// @Summary List borrowing transactions
// @Tags transactions
// @Produce json
// @Produce text/csv
// @Param from query string false "Lower bound, ISO date"
// @Param to query string false "Upper bound, ISO date"
// @Param since query string false "Shorthand lower bound: yesterday, lastweek, lastmonth, lastyear"
// @Param export query string false "Set to csv for a CSV attachment"
// @Success 200 {array} models.BorrowingTransactionDB "Transactions"
// @Failure 400 {object} handlers.TransactionErrorResponse "Invalid date range"
// @Router /transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionReader, clock services.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dateRange, err := parseDateRange(r, clock())
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid date range"})
			return
		}

		txns, err := svc.List(r.Context(), dateRange)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			return
		}

		if wantsCSV(r) {
			lines := csvutil.Convert(transactionsToRows(txns), transactionCSVHeader)
			writeCSV(w, csvutil.FileName("transactions", dateRange), lines)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(txns)
	}
}

// NewGetTransactionHandler returns an HTTP handler fetching one transaction.
// @Summary Get a borrowing transaction
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} models.BorrowingTransactionDB "Transaction"
// @Failure 404 {object} handlers.TransactionErrorResponse "Transaction does not exist"
// @Router /transactions/{transactionID} [get]
// @Security BearerAuth
func NewGetTransactionHandler(svc TransactionReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transactionID, err := uuid.Parse(chi.URLParam(r, "transactionID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Invalid transaction ID"})
			return
		}

		txn, err := svc.Get(r.Context(), transactionID)
		if err != nil {
			switch err {
			case services.ErrTransactionNotFound:
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Transaction does not exist"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TransactionErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(txn)
	}
}

func transactionsToRows(txns []models.BorrowingTransactionDB) []map[string]any {
	rows := make([]map[string]any, 0, len(txns))
	for _, t := range txns {
		rows = append(rows, map[string]any{
			"id":         t.TransactionID,
			"bookId":     t.BookID,
			"userId":     t.UserID,
			"borrowedAt": t.BorrowedAt,
			"dueDate":    t.DueDate,
			"returnedAt": t.ReturnedAt,
		})
	}
	return rows
}
