package models

import "time"

// DateRange bounds a query by borrowedAt. Both bounds are optional and
// inclusive when present.
type DateRange struct {
	From *time.Time
	To   *time.Time
}
