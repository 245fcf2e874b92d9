package service

import (
	"sync"
	"time"

	"phrasebot/internal/domain"

	"go.uber.org/zap"
)

const (
	// requestLimit is the number of free phrase requests per window
	requestLimit = 3
	// quotaWindow is the rolling period after which counters reset
	quotaWindow = 24 * time.Hour
)

// QuotaTracker gates phrase requests by a sliding daily cap.
// Subscribers to the companion channel bypass the cap; everyone else,
// including the administrator, is counted the same way.
type QuotaTracker struct {
	mu      sync.Mutex
	records map[int64]*domain.QuotaRecord
	logger  *zap.Logger
}

// NewQuotaTracker creates a new quota tracker
func NewQuotaTracker(logger *zap.Logger) *QuotaTracker {
	return &QuotaTracker{
		records: make(map[int64]*domain.QuotaRecord),
		logger:  logger,
	}
}

// Evaluate reports whether a phrase request from userID is allowed at the
// given time. A record is created on first sight and lazily reset once its
// window lapses. Allowed requests increment the counter; denied ones do not.
func (t *QuotaTracker) Evaluate(userID int64, subscribed bool, now time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[userID]
	if !ok || rec.Expired(now) {
		rec = &domain.QuotaRecord{ResetAt: now.Add(quotaWindow)}
		t.records[userID] = rec
	}

	if rec.Count >= requestLimit && !subscribed {
		t.logger.Info("Request denied by quota",
			zap.Int64("user_id", userID),
			zap.Int("count", rec.Count),
			zap.Time("reset_at", rec.ResetAt),
		)
		return false
	}

	rec.Count++
	return true
}

// PruneExpired removes records whose window has lapsed and returns the
// number removed. Live windows are untouched, so pruning never changes
// the outcome of a subsequent Evaluate.
func (t *QuotaTracker) PruneExpired(now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for userID, rec := range t.records {
		if rec.Expired(now) {
			delete(t.records, userID)
			removed++
		}
	}
	return removed
}
