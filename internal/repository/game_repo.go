package repository

import (
	"database/sql"
	"fmt"
	"time"

	"guessword/internal/database"
	"guessword/internal/models"
)

// GameRepository handles database operations for games and guesses.
// Methods take a DBTX so the game-start and guess-submit flows can run
// inside a single transaction
type GameRepository struct {
	db *database.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *database.DB) *GameRepository {
	return &GameRepository{db: db}
}

const gameColumns = `g.id, g.user_id, g.word_id, w.text, g.started_at, g.finished_at, g.won`

func scanGame(row *sql.Row) (*models.Game, error) {
	game := &models.Game{}
	var finishedAt sql.NullTime
	err := row.Scan(
		&game.ID,
		&game.UserID,
		&game.WordID,
		&game.TargetWord,
		&game.StartedAt,
		&finishedAt,
		&game.Won,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if finishedAt.Valid {
		game.FinishedAt = &finishedAt.Time
	}

	return game, nil
}

// Create inserts a new game for a user with the given target word
func (r *GameRepository) Create(dbtx database.DBTX, userID, wordID int64) (int64, error) {
	query := `
		INSERT INTO games (user_id, word_id)
		VALUES (?, ?)
	`
	id, err := dbtx.ExecReturningID(query, userID, wordID)
	if err != nil {
		return 0, fmt.Errorf("failed to create game: %w", err)
	}
	return id, nil
}

// GetByIDForUser retrieves a game by ID, scoped to its owner.
// Returns nil if the game does not exist or belongs to another user
func (r *GameRepository) GetByIDForUser(dbtx database.DBTX, gameID, userID int64) (*models.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games g
		JOIN words w ON w.id = g.word_id
		WHERE g.id = ? AND g.user_id = ?
	`
	return scanGame(dbtx.QueryRow(query, gameID, userID))
}

// GetActiveGame retrieves the user's unfinished game, or nil if none
func (r *GameRepository) GetActiveGame(dbtx database.DBTX, userID int64) (*models.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games g
		JOIN words w ON w.id = g.word_id
		WHERE g.user_id = ? AND g.finished_at IS NULL
		ORDER BY g.started_at DESC
		LIMIT 1
	`
	return scanGame(dbtx.QueryRow(query, userID))
}

// GetGamesByUser retrieves all of a user's games, newest first
func (r *GameRepository) GetGamesByUser(userID int64) ([]*models.Game, error) {
	query := `
		SELECT ` + gameColumns + `
		FROM games g
		JOIN words w ON w.id = g.word_id
		WHERE g.user_id = ?
		ORDER BY g.started_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	var games []*models.Game
	for rows.Next() {
		game := &models.Game{}
		var finishedAt sql.NullTime
		err := rows.Scan(
			&game.ID,
			&game.UserID,
			&game.WordID,
			&game.TargetWord,
			&game.StartedAt,
			&finishedAt,
			&game.Won,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		if finishedAt.Valid {
			game.FinishedAt = &finishedAt.Time
		}
		games = append(games, game)
	}

	return games, rows.Err()
}

// FinishGame marks a game as finished, recording whether it was won
func (r *GameRepository) FinishGame(dbtx database.DBTX, gameID int64, won bool) error {
	query := `
		UPDATE games
		SET finished_at = ?, won = ?
		WHERE id = ? AND finished_at IS NULL
	`
	_, err := dbtx.Exec(query, time.Now(), won, gameID)
	if err != nil {
		return fmt.Errorf("failed to finish game: %w", err)
	}
	return nil
}

// CreateGuess inserts a guess at the given 1-based index
func (r *GameRepository) CreateGuess(dbtx database.DBTX, gameID int64, text string, index int) (int64, error) {
	query := `
		INSERT INTO guesses (game_id, text, guess_index)
		VALUES (?, ?, ?)
	`
	id, err := dbtx.ExecReturningID(query, gameID, text, index)
	if err != nil {
		return 0, fmt.Errorf("failed to create guess: %w", err)
	}
	return id, nil
}

// GetGuesses retrieves a game's guesses in submission order
func (r *GameRepository) GetGuesses(dbtx database.DBTX, gameID int64) ([]*models.Guess, error) {
	query := `
		SELECT id, game_id, text, guess_index, created_at
		FROM guesses
		WHERE game_id = ?
		ORDER BY guess_index
	`
	rows, err := dbtx.Query(query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guesses: %w", err)
	}
	defer rows.Close()

	var guesses []*models.Guess
	for rows.Next() {
		guess := &models.Guess{}
		err := rows.Scan(
			&guess.ID,
			&guess.GameID,
			&guess.Text,
			&guess.Index,
			&guess.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan guess: %w", err)
		}
		guesses = append(guesses, guess)
	}

	return guesses, rows.Err()
}

// CountGuesses returns the number of guesses recorded for a game
func (r *GameRepository) CountGuesses(dbtx database.DBTX, gameID int64) (int, error) {
	var count int
	err := dbtx.QueryRow("SELECT COUNT(*) FROM guesses WHERE game_id = ?", gameID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count guesses: %w", err)
	}
	return count, nil
}
