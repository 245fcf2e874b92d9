package postgres

import (
	"database/sql"

	"phrasebot/internal/domain"
)

// PhraseRepo implements repository.PhraseRepository
type PhraseRepo struct {
	db *sql.DB
}

// NewPhraseRepo creates a new phrase repository
func NewPhraseRepo(db *sql.DB) *PhraseRepo {
	return &PhraseRepo{db: db}
}

// Save inserts a phrase and returns its assigned id
func (r *PhraseRepo) Save(text string) (int, error) {
	var id int
	query := `INSERT INTO phrases (text) VALUES ($1) RETURNING id`
	err := r.db.QueryRow(query, text).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID returns a phrase by id, nil if it does not exist
func (r *PhraseRepo) GetByID(id int) (*domain.Phrase, error) {
	var p domain.Phrase
	query := `SELECT id, text FROM phrases WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&p.ID, &p.Text)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// GetAll returns all phrases in insertion order
func (r *PhraseRepo) GetAll() ([]domain.Phrase, error) {
	query := `SELECT id, text FROM phrases ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var phrases []domain.Phrase
	for rows.Next() {
		var p domain.Phrase
		if err := rows.Scan(&p.ID, &p.Text); err != nil {
			return nil, err
		}
		phrases = append(phrases, p)
	}

	return phrases, rows.Err()
}

// GetRandom returns a random phrase, nil if the table is empty
func (r *PhraseRepo) GetRandom() (*domain.Phrase, error) {
	var p domain.Phrase
	query := `SELECT id, text FROM phrases ORDER BY RANDOM() LIMIT 1`
	err := r.db.QueryRow(query).Scan(&p.ID, &p.Text)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// DeleteByID deletes a phrase by id
func (r *PhraseRepo) DeleteByID(id int) error {
	query := `DELETE FROM phrases WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}

// DeleteAll deletes all phrases
func (r *PhraseRepo) DeleteAll() error {
	query := `DELETE FROM phrases`
	_, err := r.db.Exec(query)
	return err
}
