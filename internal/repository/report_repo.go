package repository

import (
	"fmt"

	"guessword/internal/database"
)

// DailyStats aggregates play activity for a single calendar date
type DailyStats struct {
	Date          string
	DistinctUsers int
	GamesPlayed   int
	GamesWon      int
}

// UserDailyStats aggregates one user's activity for a single calendar date
type UserDailyStats struct {
	Date           string
	WordsTried     int
	CorrectGuesses int
}

// ReportRepository handles the aggregate queries behind admin reports
type ReportRepository struct {
	db *database.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *database.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// GetDailyStats returns site-wide stats for games started on the given
// date (YYYY-MM-DD). Games are attributed to the date they started
func (r *ReportRepository) GetDailyStats(date string) (*DailyStats, error) {
	query := `
		SELECT
			COUNT(DISTINCT user_id),
			COUNT(*),
			COALESCE(SUM(CASE WHEN won = ` + r.db.Dialect.BoolValue(true) + ` THEN 1 ELSE 0 END), 0)
		FROM games
		WHERE ` + r.db.Dialect.DateFunction("started_at") + ` = ?
	`
	stats := &DailyStats{Date: date}
	err := r.db.QueryRow(query, date).Scan(
		&stats.DistinctUsers,
		&stats.GamesPlayed,
		&stats.GamesWon,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}

	return stats, nil
}

// GetUserStatsByDate returns one row per date the user played, newest
// first. Words tried counts games started that day; correct guesses
// counts games won
func (r *ReportRepository) GetUserStatsByDate(userID int64) ([]*UserDailyStats, error) {
	dateExpr := r.db.Dialect.DateFunction("started_at")
	query := `
		SELECT
			` + dateExpr + `,
			COUNT(*),
			COALESCE(SUM(CASE WHEN won = ` + r.db.Dialect.BoolValue(true) + ` THEN 1 ELSE 0 END), 0)
		FROM games
		WHERE user_id = ?
		GROUP BY ` + dateExpr + `
		ORDER BY ` + dateExpr + ` DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	defer rows.Close()

	var stats []*UserDailyStats
	for rows.Next() {
		s := &UserDailyStats{}
		if err := rows.Scan(&s.Date, &s.WordsTried, &s.CorrectGuesses); err != nil {
			return nil, fmt.Errorf("failed to scan user stats: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, rows.Err()
}
