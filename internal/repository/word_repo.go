package repository

import (
	"database/sql"
	"fmt"

	"guessword/internal/database"
	"guessword/internal/models"
)

// WordRepository handles database operations for the word list
type WordRepository struct {
	db *database.DB
}

// NewWordRepository creates a new word repository
func NewWordRepository(db *database.DB) *WordRepository {
	return &WordRepository{db: db}
}

// Create inserts a new word. Text must already be normalized to uppercase
func (r *WordRepository) Create(text string) (*models.Word, error) {
	query := `
		INSERT INTO words (text)
		VALUES (?)
	`
	id, err := r.db.ExecReturningID(query, text)
	if err != nil {
		return nil, fmt.Errorf("failed to create word: %w", err)
	}

	return &models.Word{ID: id, Text: text}, nil
}

// GetByText retrieves a word by its text
func (r *WordRepository) GetByText(text string) (*models.Word, error) {
	query := "SELECT id, text FROM words WHERE text = ?"
	word := &models.Word{}
	err := r.db.QueryRow(query, text).Scan(&word.ID, &word.Text)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word: %w", err)
	}
	return word, nil
}

// GetAll retrieves all words ordered alphabetically
func (r *WordRepository) GetAll() ([]*models.Word, error) {
	query := "SELECT id, text FROM words ORDER BY text"
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list words: %w", err)
	}
	defer rows.Close()

	var words []*models.Word
	for rows.Next() {
		word := &models.Word{}
		if err := rows.Scan(&word.ID, &word.Text); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, word)
	}

	return words, rows.Err()
}

// Count returns the number of words available
func (r *WordRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM words").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return count, nil
}

// Delete removes a word by ID. Fails if any game references it
func (r *WordRepository) Delete(id int64) error {
	query := "DELETE FROM words WHERE id = ?"
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}
	return nil
}

// Random retrieves a uniformly random word, or nil if no words exist.
// Accepts a DBTX so the pick can happen inside a game-start transaction
func (r *WordRepository) Random(dbtx database.DBTX) (*models.Word, error) {
	query := "SELECT id, text FROM words ORDER BY " + dbtx.GetDialect().RandomFunction() + " LIMIT 1"
	word := &models.Word{}
	err := dbtx.QueryRow(query).Scan(&word.ID, &word.Text)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to pick random word: %w", err)
	}
	return word, nil
}

// Seed inserts the given words, skipping any that already exist
func (r *WordRepository) Seed(words []string) (int, error) {
	inserted := 0
	for _, text := range words {
		existing, err := r.GetByText(text)
		if err != nil {
			return inserted, err
		}
		if existing != nil {
			continue
		}
		if _, err := r.Create(text); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
