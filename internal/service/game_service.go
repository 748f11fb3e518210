package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"guessword/internal/database"
	"guessword/internal/game"
	"guessword/internal/models"
	"guessword/internal/repository"
	"guessword/internal/validation"
)

var (
	// ErrQuotaExceeded is returned when a user has already started the
	// maximum number of games for the current date
	ErrQuotaExceeded = errors.New("daily game quota exceeded")

	// ErrGameAlreadyActive is returned when a user tries to start a game
	// while another game of theirs is unfinished
	ErrGameAlreadyActive = errors.New("a game is already in progress")

	// ErrNoWordsAvailable is returned when the word list is empty
	ErrNoWordsAvailable = errors.New("no words available")

	// ErrGameNotFound is returned when a game does not exist or belongs
	// to a different user
	ErrGameNotFound = errors.New("game not found")

	// ErrGameFinished is returned when a guess is submitted to a
	// finished game
	ErrGameFinished = errors.New("game is already finished")

	// ErrInvalidGuess is returned when a guess is not exactly five
	// letters
	ErrInvalidGuess = errors.New("invalid guess")
)

// WordSource picks the target word for a new game. The default picks a
// uniformly random row from the words table; tests substitute a
// deterministic source
type WordSource interface {
	PickWord(dbtx database.DBTX) (*models.Word, error)
}

// RandomWordSource picks a random word from the word repository
type RandomWordSource struct {
	words *repository.WordRepository
}

// NewRandomWordSource creates the default word source
func NewRandomWordSource(words *repository.WordRepository) *RandomWordSource {
	return &RandomWordSource{words: words}
}

// PickWord returns a uniformly random word, or nil if none exist
func (s *RandomWordSource) PickWord(dbtx database.DBTX) (*models.Word, error) {
	return s.words.Random(dbtx)
}

// GuessResult describes the outcome of a submitted guess
type GuessResult struct {
	Guess      string
	Index      int
	Marks      []game.LetterMark
	Won        bool
	Lost       bool
	TargetWord string // revealed only when the game is lost
}

// BoardRow is one scored guess on the game board
type BoardRow struct {
	Guess string
	Marks []game.LetterMark
}

// GameBoard is the full state of a game as shown to its owner
type GameBoard struct {
	Game             *models.Game
	Rows             []BoardRow
	RemainingGuesses int
	TargetWord       string // revealed only once the game is finished
}

// GameService implements the game rules: starting games against the
// daily quota, scoring guesses, and finishing games
type GameService struct {
	db       *database.DB
	games    *repository.GameRepository
	quotas   *repository.QuotaRepository
	words    WordSource
	now      func() time.Time
	locksMu  sync.Mutex
	userLock map[int64]*sync.Mutex
}

// NewGameService creates a new game service
func NewGameService(db *database.DB, games *repository.GameRepository, quotas *repository.QuotaRepository, words WordSource) *GameService {
	return &GameService{
		db:       db,
		games:    games,
		quotas:   quotas,
		words:    words,
		now:      time.Now,
		userLock: make(map[int64]*sync.Mutex),
	}
}

// lockUser returns the per-user mutex, creating it on first use.
// Serializing each user's game mutations in-process keeps the
// quota/active-game checks atomic even on SQLite
func (s *GameService) lockUser(userID int64) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	mu, ok := s.userLock[userID]
	if !ok {
		mu = &sync.Mutex{}
		s.userLock[userID] = mu
	}
	return mu
}

// today returns the current date as YYYY-MM-DD in server-local time
func (s *GameService) today() string {
	return s.now().Format("2006-01-02")
}

// StartGame starts a new game for the user, consuming one unit of the
// daily quota. The quota check, active-game check, word pick, game
// insert, and quota increment all happen in one transaction: either a
// game exists and the quota is incremented, or neither happened
func (s *GameService) StartGame(userID int64) (*models.Game, error) {
	mu := s.lockUser(userID)
	mu.Lock()
	defer mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	quota, err := s.quotas.GetOrCreateForUpdate(tx, userID, s.today())
	if err != nil {
		return nil, err
	}
	if quota.Exhausted() {
		return nil, ErrQuotaExceeded
	}

	active, err := s.games.GetActiveGame(tx, userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrGameAlreadyActive
	}

	word, err := s.words.PickWord(tx)
	if err != nil {
		return nil, err
	}
	if word == nil {
		return nil, ErrNoWordsAvailable
	}

	gameID, err := s.games.Create(tx, userID, word.ID)
	if err != nil {
		return nil, err
	}

	if err := s.quotas.Increment(tx, quota.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.Game{
		ID:         gameID,
		UserID:     userID,
		WordID:     word.ID,
		TargetWord: word.Text,
		StartedAt:  s.now(),
	}, nil
}

// SubmitGuess records and scores a guess against the user's game. The
// fifth guess, or an exact match, finishes the game in the same
// transaction that stores the guess
func (s *GameService) SubmitGuess(userID, gameID int64, guessText string) (*GuessResult, error) {
	normalized, err := validation.NormalizeWord(guessText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGuess, err)
	}

	mu := s.lockUser(userID)
	mu.Lock()
	defer mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	g, err := s.games.GetByIDForUser(tx, gameID, userID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGameNotFound
	}
	if g.IsFinished() {
		return nil, ErrGameFinished
	}

	count, err := s.games.CountGuesses(tx, gameID)
	if err != nil {
		return nil, err
	}
	if count >= models.MaxGuesses {
		// Shouldn't happen while finished_at is NULL, but guard anyway
		return nil, ErrGameFinished
	}

	index := count + 1
	marks := game.Classify(normalized, g.TargetWord)
	won := game.AllGreen(marks)
	lost := !won && index == models.MaxGuesses

	if _, err := s.games.CreateGuess(tx, gameID, normalized, index); err != nil {
		return nil, err
	}

	if won || lost {
		if err := s.games.FinishGame(tx, gameID, won); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	result := &GuessResult{
		Guess: normalized,
		Index: index,
		Marks: marks,
		Won:   won,
		Lost:  lost,
	}
	if lost {
		result.TargetWord = g.TargetWord
	}

	return result, nil
}

// GetBoard loads a game with all its guesses scored for display
func (s *GameService) GetBoard(userID, gameID int64) (*GameBoard, error) {
	g, err := s.games.GetByIDForUser(s.db, gameID, userID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGameNotFound
	}

	guesses, err := s.games.GetGuesses(s.db, gameID)
	if err != nil {
		return nil, err
	}

	board := &GameBoard{
		Game:             g,
		RemainingGuesses: models.MaxGuesses - len(guesses),
	}
	for _, guess := range guesses {
		board.Rows = append(board.Rows, BoardRow{
			Guess: guess.Text,
			Marks: game.Classify(guess.Text, g.TargetWord),
		})
	}
	if g.IsFinished() {
		board.TargetWord = g.TargetWord
		board.RemainingGuesses = 0
	}

	return board, nil
}

// GetActiveGame returns the user's unfinished game, or nil if none
func (s *GameService) GetActiveGame(userID int64) (*models.Game, error) {
	return s.games.GetActiveGame(s.db, userID)
}

// GamesRemainingToday returns how many games the user may still start
// on the current date
func (s *GameService) GamesRemainingToday(userID int64) (int, error) {
	quota, err := s.quotas.Get(userID, s.today())
	if err != nil {
		return 0, err
	}
	if quota == nil {
		return models.MaxGamesPerDay, nil
	}
	remaining := models.MaxGamesPerDay - quota.GamesStarted
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// GetGameHistory returns the user's games, newest first
func (s *GameService) GetGameHistory(userID int64) ([]*models.Game, error) {
	return s.games.GetGamesByUser(userID)
}
