package testutil

import (
	"phrasebot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestPhrase creates a test phrase
func NewTestPhrase(id int, text string) domain.Phrase {
	return domain.Phrase{
		ID:   id,
		Text: text,
	}
}

// NewTestPhrases creates n sequential test phrases
func NewTestPhrases(n int) []domain.Phrase {
	phrases := make([]domain.Phrase, 0, n)
	for i := 1; i <= n; i++ {
		phrases = append(phrases, domain.Phrase{ID: i, Text: "фраза"})
	}
	return phrases
}
