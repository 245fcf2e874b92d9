package domain

// ConversationState represents the admin-flow step a chat is currently in
type ConversationState string

const (
	StateIdle          ConversationState = "idle"
	StateWaitingPhrase ConversationState = "waiting_for_phrase"
	StateConfirmDelete ConversationState = "confirm_delete"
	StateWaitingEdit   ConversationState = "waiting_for_edit"
	StateWaitingFile   ConversationState = "waiting_for_file"
)

// StateData holds the conversation state and its staged data for one user.
// Exactly one state is active per user; entering a new flow replaces it.
type StateData struct {
	State         ConversationState
	PendingPhrase string // phrase staged between input and confirmation
}
