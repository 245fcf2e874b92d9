package handler

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"phrasebot/internal/domain"
	"phrasebot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	adminPanelText = "Админ панель\nЗдесь вы можете просматривать фразы, которые используются, а также добавлять фразы или удалять их."
	deleteMenuText = "Удаление фраз\nВыберите опцию:"

	// captionLimit is the longest phrase prefix shown on a delete button
	captionLimit = 30
)

// handleAdminPanel shows the admin panel, finishing any active flow
func (h *Handler) handleAdminPanel(c tele.Context) error {
	h.ResetState(c.Sender().ID)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnAddPhrases, btnDeletePhrases),
		markup.Row(btnListPhrases, btnUploadPhrases),
		markup.Row(btnBackToMain),
	)
	return h.edit(c, adminPanelText, markup)
}

// handleAddPhrases enters the add-phrase flow
func (h *Handler) handleAddPhrases(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingPhrase})
	return h.edit(c, "Напишите вашу фразу для добавления", backToPanelMarkup())
}

// handleText stages the admin's typed phrase for confirmation. Any other
// text, from anyone, is ignored.
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(userID)
	if userID != h.adminID || state.State != domain.StateWaitingPhrase {
		return nil
	}

	h.SetState(userID, &domain.StateData{
		State:         domain.StateWaitingPhrase,
		PendingPhrase: text,
	})

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnConfirmAdd, btnBackToPanel))
	return c.Send(fmt.Sprintf("Ваша новая фраза: \"%s\"", text), markup)
}

// handleConfirmAdd persists the staged phrase
func (h *Handler) handleConfirmAdd(c tele.Context) error {
	userID := c.Sender().ID

	state := h.GetState(userID)
	if state.State != domain.StateWaitingPhrase || state.PendingPhrase == "" {
		h.ResetState(userID)
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка: фраза не найдена."})
	}

	phrase := state.PendingPhrase
	if _, err := h.phrases.Add(phrase); err != nil {
		h.logger.Error("Failed to add phrase",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Произошла ошибка. Попробуйте позже."})
	}

	h.logger.Info("Phrase added", zap.Int64("user_id", userID))
	h.ResetState(userID)

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnAddMore, btnBackToPanel))
	return h.edit(c, fmt.Sprintf("Ваша новая добавленная фраза - %s", phrase), markup)
}

// handleAddMore re-enters the add-phrase flow after a successful add
func (h *Handler) handleAddMore(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingPhrase})
	return h.edit(c, "Напишите вашу новую фразу для добавления", backToPanelMarkup())
}

// handleDeleteMenu shows the delete options (all vs selective)
func (h *Handler) handleDeleteMenu(c tele.Context) error {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnDeleteAll),
		markup.Row(btnSelectDelete),
		markup.Row(btnBackToPanel),
	)
	return h.edit(c, deleteMenuText, markup)
}

// handleDeleteAllPrompt asks for confirmation before wiping the store
func (h *Handler) handleDeleteAllPrompt(c tele.Context) error {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnConfirmDeleteAll, btnNoKeepPhrases))
	return h.edit(c, "Вы уверены, что хотите удалить все фразы? Это действие нельзя отменить.", markup)
}

// handleConfirmDeleteAll deletes every phrase
func (h *Handler) handleConfirmDeleteAll(c tele.Context) error {
	if err := h.phrases.DeleteAll(); err != nil {
		h.logger.Error("Failed to delete all phrases", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Произошла ошибка. Попробуйте позже."})
	}

	h.logger.Info("All phrases deleted", zap.Int64("user_id", c.Sender().ID))
	if err := c.Respond(&tele.CallbackResponse{Text: "Все фразы были удалены!"}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.handleDeleteMenu(c)
}

// handleSelectDelete opens the first page of the selective-deletion listing
func (h *Handler) handleSelectDelete(c tele.Context) error {
	return h.showDeletePage(c, 0)
}

// showDeletePage renders one page of phrases as delete buttons with
// prev/next navigation
func (h *Handler) showDeletePage(c tele.Context, start int) error {
	page, err := h.phrases.DeletePage(start)
	if err != nil {
		h.logger.Error("Failed to load delete page", zap.Error(err), zap.Int("start", start))
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке данных"})
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, p := range page.Phrases {
		btn := markup.Data(phraseCaption(p.Text), fmt.Sprintf("delete_%d", p.ID))
		rows = append(rows, markup.Row(btn))
	}

	nav := tele.Row{}
	if page.HasPrev {
		nav = append(nav, markup.Data("⬅️", fmt.Sprintf("nav_delete_%d", page.Start-service.DeletePageSize)))
	}
	if page.HasNext {
		nav = append(nav, markup.Data("➡️", fmt.Sprintf("nav_delete_%d", page.Start+service.DeletePageSize)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, markup.Row(btnBackToPanel))
	markup.Inline(rows...)

	return h.edit(c, "Удаление фраз\nВыберите фразу из кнопок, которую вы хотите удалить:", markup)
}

// handleDeletePick asks for confirmation before deleting one phrase
func (h *Handler) handleDeletePick(c tele.Context, id int) error {
	phrase, err := h.phrases.Get(id)
	if err != nil {
		h.logger.Error("Failed to look up phrase", zap.Error(err), zap.Int("phrase_id", id))
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке данных"})
	}
	if phrase == nil {
		// transient notice, displayed state does not change
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка: фраза не найдена."})
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("Да", fmt.Sprintf("confirm_delete_%d", id)),
			btnNoKeepPhrases,
		),
		markup.Row(btnBackToPanel),
	)
	return h.edit(c, fmt.Sprintf("Вы уверены, что хотите удалить фразу \"%s\"?", phrase.Text), markup)
}

// handleConfirmDelete deletes the confirmed phrase and returns to the menu
func (h *Handler) handleConfirmDelete(c tele.Context, id int) error {
	if err := h.phrases.Delete(id); err != nil {
		h.logger.Error("Failed to delete phrase", zap.Error(err), zap.Int("phrase_id", id))
		return c.Respond(&tele.CallbackResponse{Text: "Произошла ошибка. Попробуйте позже."})
	}

	h.logger.Info("Phrase deleted", zap.Int("phrase_id", id))
	if err := c.Respond(&tele.CallbackResponse{Text: "Фраза удалена!"}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.handleDeleteMenu(c)
}

// handleListPhrases shows the numbered listing, split into several
// messages when it exceeds the Telegram message limit
func (h *Handler) handleListPhrases(c tele.Context) error {
	phrases, err := h.phrases.List()
	if err != nil {
		h.logger.Error("Failed to list phrases", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке данных"})
	}

	text := service.FormatList(phrases)
	if utf8.RuneCountInString(text) > service.MaxMessageLen {
		for _, chunk := range service.SplitMessage(text, service.MaxMessageLen) {
			if err := c.Send(chunk); err != nil {
				h.logger.Warn("Failed to send listing chunk", zap.Error(err))
			}
		}
		return c.Respond()
	}

	return h.edit(c, text, backToPanelMarkup())
}

// phraseCaption trims a phrase to a button-sized preview
func phraseCaption(text string) string {
	if utf8.RuneCountInString(text) <= captionLimit {
		return text
	}
	return string([]rune(text)[:captionLimit]) + "..."
}
