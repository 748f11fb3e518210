package models

import "time"

// MaxGuesses is the number of guesses a player gets per game
const MaxGuesses = 5

// MaxGamesPerDay is the number of games a user may start per calendar date
const MaxGamesPerDay = 3

// Word is a 5-letter uppercase word that can be used as a game target
type Word struct {
	ID   int64
	Text string
}

// Game represents a single game session for a user
type Game struct {
	ID         int64
	UserID     int64
	WordID     int64
	TargetWord string // joined from the words table, always uppercase
	StartedAt  time.Time
	FinishedAt *time.Time
	Won        bool
}

// IsFinished checks if the game is finished
func (g *Game) IsFinished() bool {
	return g.FinishedAt != nil
}

// Guess represents a single guess in a game, 1-based index
type Guess struct {
	ID        int64
	GameID    int64
	Text      string
	Index     int
	CreatedAt time.Time
}

// DailyQuota tracks the number of games started by a user on a calendar date.
// Day is formatted YYYY-MM-DD in server-local time
type DailyQuota struct {
	ID           int64
	UserID       int64
	Day          string
	GamesStarted int
}

// Exhausted checks if the quota for the day has been used up
func (q *DailyQuota) Exhausted() bool {
	return q.GamesStarted >= MaxGamesPerDay
}
