package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AdminOnly drops updates from anyone but the configured administrator.
// Non-admin callers get no response at all: for them the handler simply
// does not exist.
func AdminOnly(adminID int64, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil || sender.ID != adminID {
				if sender != nil {
					logger.Debug("Ignoring admin action from non-admin",
						zap.Int64("user_id", sender.ID),
					)
				}
				return nil
			}
			return next(c)
		}
	}
}
