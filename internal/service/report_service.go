package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"guessword/internal/models"
	"guessword/internal/repository"
)

// ReportService produces the admin activity reports
type ReportService struct {
	reportRepo *repository.ReportRepository
	userRepo   *repository.UserRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo *repository.ReportRepository, userRepo *repository.UserRepository) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		userRepo:   userRepo,
	}
}

// DailyReport returns site-wide stats for games started on the given
// date (YYYY-MM-DD)
func (s *ReportService) DailyReport(date string) (*repository.DailyStats, error) {
	return s.reportRepo.GetDailyStats(date)
}

// UserReport returns per-date stats for the named user
func (s *ReportService) UserReport(username string) (*models.User, []*repository.UserDailyStats, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, fmt.Errorf("user %q not found", username)
	}

	stats, err := s.reportRepo.GetUserStatsByDate(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, stats, nil
}

// ListPlayers returns all users for the report picker
func (s *ReportService) ListPlayers() ([]*models.User, error) {
	return s.userRepo.GetAllUsers()
}

// WriteDailyReportCSV writes the daily report as CSV
func (s *ReportService) WriteDailyReportCSV(w io.Writer, stats *repository.DailyStats) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Distinct Users", "Games Played", "Games Won"}); err != nil {
		return err
	}
	record := []string{
		stats.Date,
		strconv.Itoa(stats.DistinctUsers),
		strconv.Itoa(stats.GamesPlayed),
		strconv.Itoa(stats.GamesWon),
	}
	if err := cw.Write(record); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteUserReportCSV writes a user's per-date report as CSV
func (s *ReportService) WriteUserReportCSV(w io.Writer, stats []*repository.UserDailyStats) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Words Tried", "Correct Guesses"}); err != nil {
		return err
	}
	for _, row := range stats {
		record := []string{
			row.Date,
			strconv.Itoa(row.WordsTried),
			strconv.Itoa(row.CorrectGuesses),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
