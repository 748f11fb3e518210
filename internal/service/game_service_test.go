package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guessword/internal/database"
	"guessword/internal/game"
	"guessword/internal/models"
	"guessword/internal/repository"
)

// fixedWordSource always picks the same word so tests can score guesses
// deterministically
type fixedWordSource struct {
	word *models.Word
}

func (s *fixedWordSource) PickWord(dbtx database.DBTX) (*models.Word, error) {
	return s.word, nil
}

// emptyWordSource simulates an empty word list
type emptyWordSource struct{}

func (s *emptyWordSource) PickWord(dbtx database.DBTX) (*models.Word, error) {
	return nil, nil
}

type gameServiceFixture struct {
	db    *database.DB
	svc   *GameService
	users *repository.UserRepository
	words *repository.WordRepository
}

func newGameServiceFixture(t *testing.T, target string) *gameServiceFixture {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "game_service_test.db")
	db, err := database.Initialize(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.RunMigrations("../../migrations"))

	userRepo := repository.NewUserRepository(db)
	wordRepo := repository.NewWordRepository(db)
	gameRepo := repository.NewGameRepository(db)
	quotaRepo := repository.NewQuotaRepository(db)

	word, err := wordRepo.Create(target)
	require.NoError(t, err)

	svc := NewGameService(db, gameRepo, quotaRepo, &fixedWordSource{word: word})

	return &gameServiceFixture{
		db:    db,
		svc:   svc,
		users: userRepo,
		words: wordRepo,
	}
}

func (f *gameServiceFixture) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := f.users.CreateUser(username, username+"@example.com", "hash")
	require.NoError(t, err)
	return user
}

func TestStartGame(t *testing.T) {
	f := newGameServiceFixture(t, "LEMON")
	user := f.createUser(t, "PlayerOne")

	remaining, err := f.svc.GamesRemainingToday(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, remaining)

	g, err := f.svc.StartGame(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, g.UserID)
	assert.Equal(t, "LEMON", g.TargetWord)
	assert.False(t, g.IsFinished())

	remaining, err = f.svc.GamesRemainingToday(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)

	active, err := f.svc.GetActiveGame(user.ID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, g.ID, active.ID)
}

func TestStartGameRejectsSecondActiveGame(t *testing.T) {
	f := newGameServiceFixture(t, "LEMON")
	user := f.createUser(t, "PlayerOne")

	_, err := f.svc.StartGame(user.ID)
	require.NoError(t, err)

	_, err = f.svc.StartGame(user.ID)
	assert.ErrorIs(t, err, ErrGameAlreadyActive)

	// The failed start must not consume quota
	remaining, err := f.svc.GamesRemainingToday(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, remaining)
}

func TestStartGameQuotaExceeded(t *testing.T) {
	f := newGameServiceFixture(t, "LEMON")
	user := f.createUser(t, "PlayerOne")

	// Win three games in a row, one guess each
	for i := 0; i < 3; i++ {
		g, err := f.svc.StartGame(user.ID)
		require.NoError(t, err)

		result, err := f.svc.SubmitGuess(user.ID, g.ID, "LEMON")
		require.NoError(t, err)
		require.True(t, result.Won)
	}

	_, err := f.svc.StartGame(user.ID)
	assert.ErrorIs(t, err, ErrQuotaExceeded)

	remaining, err := f.svc.GamesRemainingToday(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
}

func TestStartGameNoWordsAvailable(t *testing.T) {
	f := newGameServiceFixture(t, "LEMON")
	user := f.createUser(t, "PlayerOne")
	f.svc.words = &emptyWordSource{}

	_, err := f.svc.StartGame(user.ID)
	assert.ErrorIs(t, err, ErrNoWordsAvailable)

	// The failed start must not consume quota
	remaining, err := f.svc.GamesRemainingToday(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, remaining)
}

func TestQuotaResetsOnNewDate(t *testing.T) {
	f := newGameServiceFixture(t, "LEMON")
	user := f.createUser(t, "PlayerOne")

	day := time.Date(2026, 3, 14, 22, 0, 0, 0, time.Local)
	f.svc.now = func() time.Time { return day }

	for i := 0; i < 3; i++ {
		g, err := f.svc.StartGame(user.ID)
		require.NoError(t, err)
		_, err = f.svc.SubmitGuess(user.ID, g.ID, "LEMON")
		require.NoError(t, err)
	}

	_, err := f.svc.StartGame(user.ID)
	require.ErrorIs(t, err, ErrQuotaExceeded)

	// Two hours later it is the next calendar date
	f.svc.now = func() time.Time { return day.Add(2 * time.Hour) }

	_, err = f.svc.StartGame(user.ID)
	assert.NoError(t, err)
}

func TestQuotaIsPerUser(t *testing.T) {
	f := newGameServiceFixture(t, "LEMON")
	alice := f.createUser(t, "AliceA")
	bob := f.createUser(t, "BobbyB")

	for i := 0; i < 3; i++ {
		g, err := f.svc.StartGame(alice.ID)
		require.NoError(t, err)
		_, err = f.svc.SubmitGuess(alice.ID, g.ID, "LEMON")
		require.NoError(t, err)
	}

	_, err := f.svc.StartGame(alice.ID)
	require.ErrorIs(t, err, ErrQuotaExceeded)

	// Bob's quota is untouched
	_, err = f.svc.StartGame(bob.ID)
	assert.NoError(t, err)
}

func TestSubmitGuessScoring(t *testing.T) {
	f := newGameServiceFixture(t, "LEMON")
	user := f.createUser(t, "PlayerOne")

	g, err := f.svc.StartGame(user.ID)
	require.NoError(t, err)

	result, err := f.svc.SubmitGuess(user.ID, g.ID, "melon")
	require.NoError(t, err)

	assert.Equal(t, "MELON", result.Guess)
	assert.Equal(t, 1, result.Index)
	assert.False(t, result.Won)
	assert.False(t, result.Lost)
	assert.Empty(t, result.TargetWord)

	colors := make([]game.Color, len(result.Marks))
	for i, m := range result.Marks {
		colors[i] = m.Color
	}
	assert.Equal(t, []game.Color{
		game.ColorOrange, game.ColorGreen, game.ColorOrange, game.ColorGreen, game.ColorGreen,
	}, colors)
}

func TestSubmitGuessWinFinishesGame(t *testing.T) {
	f := newGameServiceFixture(t, "LEMON")
	user := f.createUser(t, "PlayerOne")

	g, err := f.svc.StartGame(user.ID)
	require.NoError(t, err)

	result, err := f.svc.SubmitGuess(user.ID, g.ID, "LEMON")
	require.NoError(t, err)
	assert.True(t, result.Won)
	assert.False(t, result.Lost)

	// No further guesses accepted
	_, err = f.svc.SubmitGuess(user.ID, g.ID, "APPLE")
	assert.ErrorIs(t, err, ErrGameFinished)

	board, err := f.svc.GetBoard(user.ID, g.ID)
	require.NoError(t, err)
	assert.True(t, board.Game.IsFinished())
	assert.True(t, board.Game.Won)
	assert.Equal(t, 0, board.RemainingGuesses)
}

func TestSubmitGuessLossOnFifthGuess(t *testing.T) {
	f := newGameServiceFixture(t, "LEMON")
	user := f.createUser(t, "PlayerOne")

	g, err := f.svc.StartGame(user.ID)
	require.NoError(t, err)

	wrong := []string{"APPLE", "BRAVE", "CLOUD", "DELTA", "EAGER"}
	for i, guess := range wrong {
		result, err := f.svc.SubmitGuess(user.ID, g.ID, guess)
		require.NoError(t, err)
		assert.Equal(t, i+1, result.Index)
		assert.False(t, result.Won)

		if i < len(wrong)-1 {
			assert.False(t, result.Lost, "game must stay open until the fifth guess")
			assert.Empty(t, result.TargetWord)
		} else {
			assert.True(t, result.Lost)
			assert.Equal(t, "LEMON", result.TargetWord)
		}
	}

	_, err = f.svc.SubmitGuess(user.ID, g.ID, "HONEY")
	assert.ErrorIs(t, err, ErrGameFinished)
}

func TestSubmitGuessInvalid(t *testing.T) {
	f := newGameServiceFixture(t, "LEMON")
	user := f.createUser(t, "PlayerOne")

	g, err := f.svc.StartGame(user.ID)
	require.NoError(t, err)

	for _, guess := range []string{"", "CAT", "DRAGON", "AB1DE", "AB-DE"} {
		_, err := f.svc.SubmitGuess(user.ID, g.ID, guess)
		assert.ErrorIs(t, err, ErrInvalidGuess, "guess %q", guess)
	}

	// Invalid guesses are not recorded
	board, err := f.svc.GetBoard(user.ID, g.ID)
	require.NoError(t, err)
	assert.Empty(t, board.Rows)
	assert.Equal(t, models.MaxGuesses, board.RemainingGuesses)
}

func TestSubmitGuessGameNotFound(t *testing.T) {
	f := newGameServiceFixture(t, "LEMON")
	alice := f.createUser(t, "AliceA")
	bob := f.createUser(t, "BobbyB")

	g, err := f.svc.StartGame(alice.ID)
	require.NoError(t, err)

	// Unknown game ID
	_, err = f.svc.SubmitGuess(alice.ID, g.ID+999, "APPLE")
	assert.ErrorIs(t, err, ErrGameNotFound)

	// Another user's game looks the same as a missing one
	_, err = f.svc.SubmitGuess(bob.ID, g.ID, "APPLE")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestGetBoard(t *testing.T) {
	f := newGameServiceFixture(t, "LEMON")
	user := f.createUser(t, "PlayerOne")

	g, err := f.svc.StartGame(user.ID)
	require.NoError(t, err)

	_, err = f.svc.SubmitGuess(user.ID, g.ID, "MELON")
	require.NoError(t, err)
	_, err = f.svc.SubmitGuess(user.ID, g.ID, "HONEY")
	require.NoError(t, err)

	board, err := f.svc.GetBoard(user.ID, g.ID)
	require.NoError(t, err)

	require.Len(t, board.Rows, 2)
	assert.Equal(t, "MELON", board.Rows[0].Guess)
	assert.Equal(t, "HONEY", board.Rows[1].Guess)
	assert.Equal(t, 3, board.RemainingGuesses)

	// Target stays hidden while the game is open
	assert.Empty(t, board.TargetWord)

	_, err = f.svc.GetBoard(user.ID, g.ID+999)
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestGetGameHistory(t *testing.T) {
	f := newGameServiceFixture(t, "LEMON")
	user := f.createUser(t, "PlayerOne")

	first, err := f.svc.StartGame(user.ID)
	require.NoError(t, err)
	_, err = f.svc.SubmitGuess(user.ID, first.ID, "LEMON")
	require.NoError(t, err)

	second, err := f.svc.StartGame(user.ID)
	require.NoError(t, err)

	history, err := f.svc.GetGameHistory(user.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	ids := []int64{history[0].ID, history[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
}
