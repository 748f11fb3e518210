package handlers

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"guessword/internal/service"
)

// ReportHandler handles the admin activity reports
type ReportHandler struct {
	reportService *service.ReportService
	templates     *template.Template
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService, templates *template.Template) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		templates:     templates,
	}
}

// DailyReport renders the site-wide daily report. ?date=YYYY-MM-DD picks
// the date (default today); ?format=csv downloads it as CSV
func (h *ReportHandler) DailyReport(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	stats, err := h.reportService.DailyReport(date)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error building daily report", err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=daily_report_%s.csv", date))
		if err := h.reportService.WriteDailyReportCSV(w, stats); err != nil {
			log.Printf("Error writing daily report CSV: %v", err)
		}
		return
	}

	data := DailyReportPageData{
		Title: "Daily Report - GuessWord",
		User:  user,
		Date:  date,
		Stats: stats,
	}

	if err := h.templates.ExecuteTemplate(w, "daily_report.tmpl", data); err != nil {
		log.Printf("Error rendering daily report template: %v", err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

// UserReport renders a per-user report. ?username= picks the player;
// with no username it shows the player picker. ?format=csv downloads
// the selected player's report as CSV
func (h *ReportHandler) UserReport(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	username := r.URL.Query().Get("username")

	players, err := h.reportService.ListPlayers()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error listing players", err)
		return
	}

	data := UserReportPageData{
		Title:   "User Report - GuessWord",
		User:    user,
		Players: players,
	}

	if username != "" {
		player, stats, err := h.reportService.UserReport(username)
		if err != nil {
			respondWithError(w, http.StatusNotFound, "Player not found", "Error building user report", err)
			return
		}

		if r.URL.Query().Get("format") == "csv" {
			w.Header().Set("Content-Type", "text/csv")
			w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=user_report_%s.csv", player.Username))
			if err := h.reportService.WriteUserReportCSV(w, stats); err != nil {
				log.Printf("Error writing user report CSV: %v", err)
			}
			return
		}

		data.Player = player
		data.Stats = stats
	}

	if err := h.templates.ExecuteTemplate(w, "user_report.tmpl", data); err != nil {
		log.Printf("Error rendering user report template: %v", err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}
