package handlers

import (
	"guessword/internal/models"
	"guessword/internal/repository"
	"guessword/internal/service"
)

// HomePageData is the view model for the player dashboard
type HomePageData struct {
	Title          string
	User           *models.User
	ActiveGame     *models.Game
	RemainingGames int
	History        []*models.Game
	CSRFToken      string
	Error          string
}

// GamePageData is the view model for the game board page
type GamePageData struct {
	Title     string
	User      *models.User
	Board     *service.GameBoard
	CSRFToken string
	Error     string
}

// AdminWordsPageData is the view model for the word curation page
type AdminWordsPageData struct {
	Title     string
	User      *models.User
	Words     []*models.Word
	CSRFToken string
	Error     string
	Message   string
}

// AdminUsersPageData is the view model for the user list page
type AdminUsersPageData struct {
	Title string
	User  *models.User
	Users []*models.User
}

// DailyReportPageData is the view model for the daily activity report
type DailyReportPageData struct {
	Title string
	User  *models.User
	Date  string
	Stats *repository.DailyStats
}

// UserReportPageData is the view model for the per-user activity report
type UserReportPageData struct {
	Title   string
	User    *models.User
	Player  *models.User
	Players []*models.User
	Stats   []*repository.UserDailyStats
}
