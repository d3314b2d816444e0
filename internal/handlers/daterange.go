package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-library-backend/internal/models"
	"github.com/sbilibin2017/gw-library-backend/internal/timeutil"
)

const dateLayout = "2006-01-02"

var errSinceConflict = errors.New("since cannot be combined with from")

// parseDateRange builds a date range from the from/to/since query
// parameters. from and to are ISO dates, since is a shorthand resolved
// against now and mutually exclusive with from.
func parseDateRange(r *http.Request, now time.Time) (models.DateRange, error) {
	var dateRange models.DateRange

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	since := r.URL.Query().Get("since")

	if since != "" {
		if from != "" {
			return dateRange, errSinceConflict
		}
		resolved, err := timeutil.ConvertSinceToDate(since, now)
		if err != nil {
			return dateRange, err
		}
		dateRange.From = &resolved
	}

	if from != "" {
		parsed, err := time.Parse(dateLayout, from)
		if err != nil {
			return dateRange, err
		}
		dateRange.From = &parsed
	}

	if to != "" {
		parsed, err := time.Parse(dateLayout, to)
		if err != nil {
			return dateRange, err
		}
		dateRange.To = &parsed
	}

	return dateRange, nil
}

// wantsCSV reports whether the request asked for a CSV export.
func wantsCSV(r *http.Request) bool {
	return r.URL.Query().Get("export") == "csv"
}

// writeCSV sends lines as a CSV attachment.
func writeCSV(w http.ResponseWriter, filename string, lines []string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(strings.Join(lines, "\r\n")))
}
