package handler

import (
	"fmt"
	"io"
	"strings"

	"phrasebot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const uploadInstructions = "Пожалуйста, отправьте текстовый файл (.txt) с фразами.\n\n" +
	"Пример как должно быть оформлено в txt:\n" +
	"    \"Люди, побывавшие в «...», что вы думаете\",\n" +
	"    \"Один из самых курьёзных случаев в моей практике:\","

// handleUploadPhrases enters the file-upload flow
func (h *Handler) handleUploadPhrases(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingFile})
	return h.edit(c, uploadInstructions, backToPanelMarkup())
}

// handleDocument imports phrases from an uploaded .txt file. Only the
// admin in the upload flow is served; everything else is ignored.
func (h *Handler) handleDocument(c tele.Context) error {
	userID := c.Sender().ID
	if userID != h.adminID {
		return nil
	}

	state := h.GetState(userID)
	if state.State != domain.StateWaitingFile {
		return nil
	}

	doc := c.Message().Document
	if doc == nil {
		return nil
	}

	if !strings.HasSuffix(strings.ToLower(doc.FileName), ".txt") {
		// stay in the upload flow so the admin can retry
		return c.Reply("Пожалуйста, отправьте файл с расширением .txt")
	}

	rc, err := h.bot.File(&doc.File)
	if err != nil {
		h.logger.Error("Failed to download document",
			zap.Error(err),
			zap.String("file_name", doc.FileName),
		)
		return c.Reply("Произошла ошибка. Попробуйте позже.")
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		h.logger.Error("Failed to read document", zap.Error(err))
		return c.Reply("Произошла ошибка. Попробуйте позже.")
	}

	added, err := h.phrases.ImportText(string(content))
	if err != nil {
		h.logger.Error("Failed to import phrases",
			zap.Error(err),
			zap.Int("added", added),
		)
		return c.Reply("Произошла ошибка. Попробуйте позже.")
	}

	h.logger.Info("Phrases imported from file",
		zap.Int("added", added),
		zap.String("file_name", doc.FileName),
	)
	h.ResetState(userID)

	if err := c.Reply(fmt.Sprintf("Добавлено %d фраз из файла.", added)); err != nil {
		h.logger.Warn("Failed to send import report", zap.Error(err))
	}
	return h.handleAdminPanel(c)
}
