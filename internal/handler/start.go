package handler

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.ResetState(userID)
	return c.Send(welcomeText, h.mainMenuMarkup(userID))
}

// handleGetPhrase serves a random phrase, gated by the daily quota.
// Channel subscribers bypass the cap; the admin does not.
func (h *Handler) handleGetPhrase(c tele.Context) error {
	userID := c.Sender().ID

	subscribed := h.subs.IsSubscribed(userID)
	if !h.quota.Evaluate(userID, subscribed, time.Now()) {
		markup := &tele.ReplyMarkup{}
		markup.Inline(markup.Row(btnCheckSub))
		text := fmt.Sprintf(
			"Вы достигли лимита запросов. Подпишитесь на наш канал %s для неограниченного доступа.",
			h.channel,
		)
		return h.edit(c, text, markup)
	}

	phrase, err := h.phrases.Random()
	if err != nil {
		h.logger.Error("Failed to pick random phrase", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Произошла ошибка. Попробуйте позже."})
	}

	return h.edit(c, phrase, h.mainMenuMarkup(userID))
}

// handleCheckSubscription re-checks membership after the user claims to
// have subscribed
func (h *Handler) handleCheckSubscription(c tele.Context) error {
	userID := c.Sender().ID

	if h.subs.IsSubscribed(userID) {
		return h.handleGetPhrase(c)
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnCheckSub))
	text := fmt.Sprintf(
		"Вы не подписались. Подпишитесь на канал %s и попробуйте снова.",
		h.channel,
	)
	return h.edit(c, text, markup)
}

// handleBackToMain discards any active flow and shows the main menu
func (h *Handler) handleBackToMain(c tele.Context) error {
	userID := c.Sender().ID

	h.ResetState(userID)
	return h.edit(c, welcomeText, h.mainMenuMarkup(userID))
}
