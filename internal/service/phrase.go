package service

import (
	"fmt"
	"regexp"
	"strings"

	"phrasebot/internal/domain"
	"phrasebot/internal/repository"
)

const (
	// DeletePageSize is the number of phrases shown per selective-deletion page
	DeletePageSize = 3
	// MaxMessageLen is the Telegram single-message length limit
	MaxMessageLen = 4096

	// EmptyStoreText is served when no phrases exist yet
	EmptyStoreText = "Нет доступных фраз"
)

// quotedPhrase matches every substring between a pair of double quotes
var quotedPhrase = regexp.MustCompile(`"([^"]*)"`)

// PhrasePage is one window of the selective-deletion listing
type PhrasePage struct {
	Phrases []domain.Phrase
	Start   int
	HasPrev bool
	HasNext bool
}

// PhraseService handles phrase-related business logic
type PhraseService struct {
	repo repository.PhraseRepository
}

// NewPhraseService creates a new phrase service
func NewPhraseService(repo repository.PhraseRepository) *PhraseService {
	return &PhraseService{repo: repo}
}

// Add persists a phrase and returns its id. Empty text is accepted:
// file imports insert every quoted match, empty strings included.
func (s *PhraseService) Add(text string) (int, error) {
	return s.repo.Save(text)
}

// Get returns a phrase by id, nil if it does not exist
func (s *PhraseService) Get(id int) (*domain.Phrase, error) {
	return s.repo.GetByID(id)
}

// List returns all phrases in insertion order
func (s *PhraseService) List() ([]domain.Phrase, error) {
	return s.repo.GetAll()
}

// Random returns a random phrase text, or the empty-store fallback
func (s *PhraseService) Random() (string, error) {
	phrase, err := s.repo.GetRandom()
	if err != nil {
		return "", err
	}
	if phrase == nil {
		return EmptyStoreText, nil
	}
	return phrase.Text, nil
}

// Delete removes a phrase by id
func (s *PhraseService) Delete(id int) error {
	return s.repo.DeleteByID(id)
}

// DeleteAll removes every phrase
func (s *PhraseService) DeleteAll() error {
	return s.repo.DeleteAll()
}

// DeletePage returns the window [start, start+DeletePageSize) of phrases
// together with navigation availability
func (s *PhraseService) DeletePage(start int) (*PhrasePage, error) {
	phrases, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	if start < 0 {
		start = 0
	}

	end := start + DeletePageSize
	if end > len(phrases) {
		end = len(phrases)
	}
	if start > len(phrases) {
		start = len(phrases)
	}

	return &PhrasePage{
		Phrases: phrases[start:end],
		Start:   start,
		HasPrev: start > 0,
		HasNext: start+DeletePageSize < len(phrases),
	}, nil
}

// ImportText extracts every double-quoted substring from the content and
// persists each as a phrase, returning how many were added
func (s *PhraseService) ImportText(content string) (int, error) {
	matches := quotedPhrase.FindAllStringSubmatch(content, -1)

	added := 0
	for _, m := range matches {
		if _, err := s.repo.Save(m[1]); err != nil {
			return added, err
		}
		added++
	}

	return added, nil
}

// FormatList renders phrases as a 1-indexed numbered listing
func FormatList(phrases []domain.Phrase) string {
	var b strings.Builder
	b.WriteString("Список ваших фраз:\n")
	for i, p := range phrases {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, p.Text))
	}
	return b.String()
}

// SplitMessage splits text into chunks of at most limit runes, breaking on
// line boundaries. A single line longer than the limit is hard-split.
// Concatenating the chunks reproduces the input exactly.
func SplitMessage(text string, limit int) []string {
	var chunks []string
	var cur []rune

	for _, line := range strings.SplitAfter(text, "\n") {
		r := []rune(line)
		if len(cur)+len(r) > limit {
			if len(cur) > 0 {
				chunks = append(chunks, string(cur))
				cur = cur[:0]
			}
			for len(r) > limit {
				chunks = append(chunks, string(r[:limit]))
				r = r[limit:]
			}
		}
		cur = append(cur, r...)
	}

	if len(cur) > 0 || len(chunks) == 0 {
		chunks = append(chunks, string(cur))
	}
	return chunks
}
