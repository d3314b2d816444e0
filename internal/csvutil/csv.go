package csvutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-library-backend/internal/models"
)

// Convert renders rows into CSV lines using the given header order.
// Fields absent from a row and nil values render as empty strings, time
// values render as ISO dates without the time part. The first line is the
// header itself; an empty header yields no lines.
func Convert(rows []map[string]any, header []string) []string {
	lines := []string{}
	if len(header) == 0 {
		return lines
	}

	lines = append(lines, strings.Join(header, ","))

	for _, row := range rows {
		values := make([]string, 0, len(header))
		for _, column := range header {
			v, ok := row[column]
			if !ok || v == nil {
				values = append(values, "")
				continue
			}
			values = append(values, formatValue(v))
		}
		lines = append(lines, strings.Join(values, ","))
	}

	return lines
}

func formatValue(v any) string {
	switch val := v.(type) {
	case time.Time:
		return val.UTC().Format("2006-01-02")
	case *time.Time:
		if val == nil {
			return ""
		}
		return val.UTC().Format("2006-01-02")
	default:
		return fmt.Sprint(val)
	}
}

// FileName builds a CSV attachment name, prefixed with the bounds of the
// exported date range when present.
func FileName(prefix string, dateRange models.DateRange) string {
	var b strings.Builder
	if dateRange.From != nil {
		b.WriteString("from-" + dateRange.From.UTC().Format("2006-01-02") + "-")
	}
	if dateRange.To != nil {
		b.WriteString("to-" + dateRange.To.UTC().Format("2006-01-02") + "-")
	}
	b.WriteString(prefix + ".csv")
	return b.String()
}
