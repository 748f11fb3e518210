package repository

import (
	"database/sql"
	"fmt"

	"guessword/internal/database"
	"guessword/internal/models"
)

// QuotaRepository handles database operations for daily game quotas
type QuotaRepository struct {
	db *database.DB
}

// NewQuotaRepository creates a new quota repository
func NewQuotaRepository(db *database.DB) *QuotaRepository {
	return &QuotaRepository{db: db}
}

// GetOrCreateForUpdate loads the quota row for (userID, day), creating it
// with a zero count if missing, and locks it for the rest of the
// transaction on dialects that support row locks. SQLite serializes
// writers at the transaction level so no lock clause is needed there
func (r *QuotaRepository) GetOrCreateForUpdate(tx *database.Tx, userID int64, day string) (*models.DailyQuota, error) {
	selectQuery := `
		SELECT id, user_id, day, games_started
		FROM daily_quotas
		WHERE user_id = ? AND day = ?
	` + tx.GetDialect().ForUpdateClause()

	quota := &models.DailyQuota{}
	err := tx.QueryRow(selectQuery, userID, day).Scan(
		&quota.ID,
		&quota.UserID,
		&quota.Day,
		&quota.GamesStarted,
	)

	if err == sql.ErrNoRows {
		insertQuery := `
			INSERT INTO daily_quotas (user_id, day, games_started)
			VALUES (?, ?, 0)
		`
		id, insertErr := tx.ExecReturningID(insertQuery, userID, day)
		if insertErr != nil {
			return nil, fmt.Errorf("failed to create quota: %w", insertErr)
		}
		return &models.DailyQuota{
			ID:           id,
			UserID:       userID,
			Day:          day,
			GamesStarted: 0,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quota: %w", err)
	}

	return quota, nil
}

// Increment bumps the games-started count for a quota row
func (r *QuotaRepository) Increment(tx *database.Tx, quotaID int64) error {
	query := `
		UPDATE daily_quotas
		SET games_started = games_started + 1
		WHERE id = ?
	`
	_, err := tx.Exec(query, quotaID)
	if err != nil {
		return fmt.Errorf("failed to increment quota: %w", err)
	}
	return nil
}

// Get retrieves the quota for (userID, day) without locking, or nil if
// the user has not started a game that day
func (r *QuotaRepository) Get(userID int64, day string) (*models.DailyQuota, error) {
	query := `
		SELECT id, user_id, day, games_started
		FROM daily_quotas
		WHERE user_id = ? AND day = ?
	`
	quota := &models.DailyQuota{}
	err := r.db.QueryRow(query, userID, day).Scan(
		&quota.ID,
		&quota.UserID,
		&quota.Day,
		&quota.GamesStarted,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quota: %w", err)
	}

	return quota, nil
}
