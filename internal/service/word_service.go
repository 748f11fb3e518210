package service

import (
	"errors"
	"fmt"

	"guessword/internal/models"
	"guessword/internal/repository"
	"guessword/internal/validation"
)

var (
	ErrWordExists   = errors.New("word already exists")
	ErrWordNotFound = errors.New("word not found")
	ErrWordInUse    = errors.New("word is used by existing games")
)

// DefaultWords is the stock word list installed by the seed command
var DefaultWords = []string{
	"APPLE", "BRAVE", "CLOUD", "DELTA", "EAGER",
	"FAITH", "GRAPH", "HONEY", "IONIC", "JELLY",
	"KNIFE", "LEMON", "MAGIC", "NINJA", "OPERA",
	"PRIZE", "QUILT", "ROBIN", "SOLAR", "TANGO",
}

// WordService handles curation of the word list
type WordService struct {
	wordRepo *repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo *repository.WordRepository) *WordService {
	return &WordService{wordRepo: wordRepo}
}

// AddWord normalizes and stores a new target word
func (s *WordService) AddWord(text string) (*models.Word, error) {
	normalized, err := validation.NormalizeWord(text)
	if err != nil {
		return nil, err
	}

	existing, err := s.wordRepo.GetByText(normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrWordExists
	}

	return s.wordRepo.Create(normalized)
}

// DeleteWord removes a word. Words referenced by past games are kept so
// finished boards stay renderable
func (s *WordService) DeleteWord(id int64) error {
	if err := s.wordRepo.Delete(id); err != nil {
		// Foreign key violation from games.word_id
		return fmt.Errorf("%w: %v", ErrWordInUse, err)
	}
	return nil
}

// ListWords returns all words ordered alphabetically
func (s *WordService) ListWords() ([]*models.Word, error) {
	return s.wordRepo.GetAll()
}

// CountWords returns the number of available words
func (s *WordService) CountWords() (int, error) {
	return s.wordRepo.Count()
}

// SeedDefaults installs the stock word list, skipping words that
// already exist. Returns the number of words inserted
func (s *WordService) SeedDefaults() (int, error) {
	return s.wordRepo.Seed(DefaultWords)
}
