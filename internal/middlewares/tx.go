package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-library-backend/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction. The
// transaction is committed only when the handler responds with a success
// status; any 4xx/5xx response rolls back every write made inside it, so a
// partially executed borrow or return leaves no trace.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			ctx := setTxToContext(r.Context(), tx)
			r = r.WithContext(ctx)

			sw := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(sw, r)

			if sw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.statusCode = code
	sw.ResponseWriter.WriteHeader(code)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
