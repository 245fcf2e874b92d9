package handler

import (
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleCallback dispatches dynamic callbacks (per-phrase delete buttons
// and paging). All of them are admin-only; anyone else is silently ignored.
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	sender := c.Sender()
	if sender == nil || sender.ID != h.adminID {
		return nil
	}

	data := cleanCallbackData(callback.Data)

	switch {
	case strings.HasPrefix(data, "nav_delete_"):
		start, err := strconv.Atoi(strings.TrimPrefix(data, "nav_delete_"))
		if err != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Неверная страница"})
		}
		return h.showDeletePage(c, start)

	case strings.HasPrefix(data, "confirm_delete_"):
		id, err := strconv.Atoi(strings.TrimPrefix(data, "confirm_delete_"))
		if err != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Ошибка: фраза не найдена."})
		}
		return h.handleConfirmDelete(c, id)

	case strings.HasPrefix(data, "delete_"):
		id, err := strconv.Atoi(strings.TrimPrefix(data, "delete_"))
		if err != nil {
			return c.Respond(&tele.CallbackResponse{Text: "Ошибка: фраза не найдена."})
		}
		return h.handleDeletePick(c, id)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
