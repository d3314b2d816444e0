package csvutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-library-backend/internal/models"
)

func TestConvert(t *testing.T) {
	id := uuid.New()
	borrowedAt := time.Date(2026, 3, 12, 15, 30, 0, 0, time.UTC)
	returnedAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	header := []string{"id", "title", "borrowedAt", "returnedAt"}
	rows := []map[string]any{
		{
			"id":         id,
			"title":      "Dune",
			"borrowedAt": borrowedAt,
			"returnedAt": &returnedAt,
		},
		{
			"id":         id,
			"title":      "Dune Messiah",
			"borrowedAt": borrowedAt,
			"returnedAt": (*time.Time)(nil),
		},
		{
			// borrowedAt deliberately absent
			"id":    id,
			"title": "Children of Dune",
		},
	}

	lines := Convert(rows, header)

	assert.Len(t, lines, 4)
	assert.Equal(t, "id,title,borrowedAt,returnedAt", lines[0])
	assert.Equal(t, id.String()+",Dune,2026-03-12,2026-03-14", lines[1])
	assert.Equal(t, id.String()+",Dune Messiah,2026-03-12,", lines[2])
	assert.Equal(t, id.String()+",Children of Dune,,", lines[3])
}

func TestConvert_TimeRenderedInUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	// 2026-03-13 02:00 +05:00 is still 2026-03-12 in UTC
	local := time.Date(2026, 3, 13, 2, 0, 0, 0, loc)

	lines := Convert([]map[string]any{{"borrowedAt": local}}, []string{"borrowedAt"})

	assert.Len(t, lines, 2)
	assert.Equal(t, "2026-03-12", lines[1])
}

func TestConvert_EmptyHeader(t *testing.T) {
	lines := Convert([]map[string]any{{"id": 1}}, nil)
	assert.Empty(t, lines)
}

func TestConvert_NoRows(t *testing.T) {
	lines := Convert(nil, []string{"id", "title"})
	assert.Equal(t, []string{"id,title"}, lines)
}

func TestFileName(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		dateRange models.DateRange
		want      string
	}{
		{
			name:      "no bounds",
			dateRange: models.DateRange{},
			want:      "transactions.csv",
		},
		{
			name:      "from only",
			dateRange: models.DateRange{From: &from},
			want:      "from-2026-03-01-transactions.csv",
		},
		{
			name:      "to only",
			dateRange: models.DateRange{To: &to},
			want:      "to-2026-03-15-transactions.csv",
		},
		{
			name:      "both bounds",
			dateRange: models.DateRange{From: &from, To: &to},
			want:      "from-2026-03-01-to-2026-03-15-transactions.csv",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileName("transactions", tt.dateRange))
		})
	}
}
