package timeutil

import (
	"fmt"
	"time"
)

// Since-shorthand values accepted by date-range queries.
const (
	SinceYesterday = "yesterday"
	SinceLastWeek  = "lastweek"
	SinceLastMonth = "lastmonth"
	SinceLastYear  = "lastyear"
)

// ConvertSinceToDate resolves a symbolic since value to a concrete lower
// bound relative to now.
func ConvertSinceToDate(since string, now time.Time) (time.Time, error) {
	switch since {
	case SinceYesterday:
		return now.AddDate(0, 0, -1), nil
	case SinceLastWeek:
		return now.AddDate(0, 0, -7), nil
	case SinceLastMonth:
		return now.AddDate(0, -1, 0), nil
	case SinceLastYear:
		return now.AddDate(-1, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("invalid since value provided: %s", since)
	}
}
