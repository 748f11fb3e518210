package models

import (
	"testing"
	"time"
)

func TestGameIsFinished(t *testing.T) {
	game := &Game{}
	if game.IsFinished() {
		t.Error("Game with no finished_at should not be finished")
	}

	now := time.Now()
	game.FinishedAt = &now
	if !game.IsFinished() {
		t.Error("Game with finished_at should be finished")
	}
}

func TestDailyQuotaExhausted(t *testing.T) {
	tests := []struct {
		name         string
		gamesStarted int
		exhausted    bool
	}{
		{"no games", 0, false},
		{"one game", 1, false},
		{"two games", 2, false},
		{"at limit", 3, true},
		{"over limit", 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quota := &DailyQuota{GamesStarted: tt.gamesStarted}
			if got := quota.Exhausted(); got != tt.exhausted {
				t.Errorf("Exhausted() with %d games = %v, want %v", tt.gamesStarted, got, tt.exhausted)
			}
		})
	}
}

func TestSessionIsExpired(t *testing.T) {
	session := &Session{ExpiresAt: time.Now().Add(time.Hour)}
	if session.IsExpired() {
		t.Error("Session expiring in the future should not be expired")
	}

	session.ExpiresAt = time.Now().Add(-time.Minute)
	if !session.IsExpired() {
		t.Error("Session past its expiry should be expired")
	}
}

func TestPasswordResetTokenIsExpired(t *testing.T) {
	token := &PasswordResetToken{ExpiresAt: time.Now().Add(time.Hour)}
	if token.IsExpired() {
		t.Error("Token expiring in the future should not be expired")
	}

	token.ExpiresAt = time.Now().Add(-time.Minute)
	if !token.IsExpired() {
		t.Error("Token past its expiry should be expired")
	}
}
