package handler

import (
	"sync"

	"phrasebot/internal/domain"
	"phrasebot/internal/middleware"
	"phrasebot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot     *tele.Bot
	quota   *service.QuotaTracker
	phrases *service.PhraseService
	subs    *service.SubscriptionService
	logger  *zap.Logger
	adminID int64
	channel string

	// Conversation states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	quota *service.QuotaTracker,
	phrases *service.PhraseService,
	subs *service.SubscriptionService,
	adminID int64,
	channelUsername string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:     bot,
		quota:   quota,
		phrases: phrases,
		subs:    subs,
		logger:  logger,
		adminID: adminID,
		channel: channelUsername,
		states:  make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	adminOnly := middleware.AdminOnly(h.adminID, h.logger)

	// Commands and raw content
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnDocument, h.handleDocument)

	// User-facing inline buttons
	h.bot.Handle(&btnGetPhrase, h.handleGetPhrase)
	h.bot.Handle(&btnCheckSub, h.handleCheckSubscription)
	h.bot.Handle(&btnBackToMain, h.handleBackToMain)

	// Admin panel buttons
	h.bot.Handle(&btnAdminPanel, h.handleAdminPanel, adminOnly)
	h.bot.Handle(&btnAddPhrases, h.handleAddPhrases, adminOnly)
	h.bot.Handle(&btnConfirmAdd, h.handleConfirmAdd, adminOnly)
	h.bot.Handle(&btnAddMore, h.handleAddMore, adminOnly)
	h.bot.Handle(&btnDeletePhrases, h.handleDeleteMenu, adminOnly)
	h.bot.Handle(&btnDeleteAll, h.handleDeleteAllPrompt, adminOnly)
	h.bot.Handle(&btnConfirmDeleteAll, h.handleConfirmDeleteAll, adminOnly)
	h.bot.Handle(&btnSelectDelete, h.handleSelectDelete, adminOnly)
	h.bot.Handle(&btnListPhrases, h.handleListPhrases, adminOnly)
	h.bot.Handle(&btnUploadPhrases, h.handleUploadPhrases, adminOnly)

	// Generic callback handler for dynamic data (per-phrase delete, paging)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current conversation state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's conversation state, replacing any active flow
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState returns the user to the idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// Inline keyboard buttons
var (
	btnGetPhrase = tele.Btn{
		Unique: "get_phrase",
		Text:   "Получить фразу",
	}
	btnAdminPanel = tele.Btn{
		Unique: "admin_panel",
		Text:   "Админ панель",
	}
	btnCheckSub = tele.Btn{
		Unique: "check_subscription",
		Text:   "Я подписался",
	}
	btnBackToMain = tele.Btn{
		Unique: "back_to_main",
		Text:   "Назад",
	}
	btnAddPhrases = tele.Btn{
		Unique: "add_phrases",
		Text:   "Добавить фразы",
	}
	btnConfirmAdd = tele.Btn{
		Unique: "confirm_add",
		Text:   "Добавить",
	}
	btnAddMore = tele.Btn{
		Unique: "add_more",
		Text:   "Добавить еще фразу",
	}
	btnDeletePhrases = tele.Btn{
		Unique: "delete_phrases",
		Text:   "Удалить фразы",
	}
	btnDeleteAll = tele.Btn{
		Unique: "delete_all_phrases",
		Text:   "Удалить все фразы",
	}
	btnConfirmDeleteAll = tele.Btn{
		Unique: "confirm_delete_all",
		Text:   "Да",
	}
	btnSelectDelete = tele.Btn{
		Unique: "select_delete_phrases",
		Text:   "Выбрать фразы для удаления",
	}
	btnListPhrases = tele.Btn{
		Unique: "list_phrases",
		Text:   "Список фраз",
	}
	btnUploadPhrases = tele.Btn{
		Unique: "upload_phrases",
		Text:   "Загрузить фразы из файла",
	}

	// Aliases sharing a registered unique but showing different captions
	btnBackToPanel = tele.Btn{
		Unique: "admin_panel",
		Text:   "Назад",
	}
	btnNoKeepPhrases = tele.Btn{
		Unique: "delete_phrases",
		Text:   "Нет",
	}
)

const welcomeText = "Привет! Я бот, который поможет тебе начать день с вдохновляющей фразы."

// mainMenuMarkup returns the main menu keyboard; the admin additionally
// sees the panel entry
func (h *Handler) mainMenuMarkup(userID int64) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	rows := []tele.Row{menu.Row(btnGetPhrase)}
	if userID == h.adminID {
		rows = append(rows, menu.Row(btnAdminPanel))
	}
	menu.Inline(rows...)
	return menu
}

// backToPanelMarkup returns a keyboard with a single "back to panel" button
func backToPanelMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnBackToPanel))
	return markup
}
