package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// errorKind classifies Telegram API errors into recovery strategies
type errorKind int

const (
	errNone errorKind = iota
	// errBenign: stale edits, already-deleted messages - flow continues
	// as if the render succeeded
	errBenign
	// errPlatform: API/auth/rate errors - logged with context, swallowed
	errPlatform
	// errUnknown: anything else - logged, edit falls back to a new message
	errUnknown
)

var benignErrors = []string{
	"message is not modified",
	"message to delete not found",
	"message can't be deleted",
	"message text is empty",
	"message to edit not found",
}

var platformErrors = []string{
	"unauthorized",
	"retry after",
	"can't parse entities",
	"query is too old",
	"bot was blocked",
}

// classify maps a telebot error to an errorKind by message content;
// telebot does not expose sentinel values for most of these
func classify(err error) errorKind {
	if err == nil {
		return errNone
	}
	msg := strings.ToLower(err.Error())
	for _, s := range benignErrors {
		if strings.Contains(msg, s) {
			return errBenign
		}
	}
	for _, s := range platformErrors {
		if strings.Contains(msg, s) {
			return errPlatform
		}
	}
	return errUnknown
}

// edit updates the callback's message in place. Benign and platform errors
// are swallowed per their kind; on unknown errors a new message is sent
// instead. For non-callback contexts it just sends.
func (h *Handler) edit(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	err := c.Edit(text, markup)
	switch classify(err) {
	case errNone:
		return c.Respond()
	case errBenign:
		h.logger.Debug("Edit skipped",
			zap.Error(err),
			zap.Int64("user_id", c.Sender().ID),
		)
		return c.Respond()
	case errPlatform:
		h.logger.Warn("Telegram API error on edit",
			zap.Error(err),
			zap.Int64("user_id", c.Sender().ID),
		)
		return c.Respond()
	default:
		h.logger.Warn("Failed to edit message, sending new",
			zap.Error(err),
			zap.Int64("user_id", c.Sender().ID),
		)
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return c.Send(text, markup)
	}
}
