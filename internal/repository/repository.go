package repository

import (
	"phrasebot/internal/domain"
)

// PhraseRepository defines phrase data operations
type PhraseRepository interface {
	Save(text string) (int, error)
	GetByID(id int) (*domain.Phrase, error)
	GetAll() ([]domain.Phrase, error)
	GetRandom() (*domain.Phrase, error)
	DeleteByID(id int) error
	DeleteAll() error
}
