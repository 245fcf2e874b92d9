package domain

import "time"

// QuotaRecord tracks phrase requests for one user within a rolling window
type QuotaRecord struct {
	Count   int
	ResetAt time.Time
}

// Expired reports whether the record's window has lapsed at the given time
func (r QuotaRecord) Expired(now time.Time) bool {
	return !now.Before(r.ResetAt)
}
