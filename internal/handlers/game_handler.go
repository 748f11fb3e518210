package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"guessword/internal/service"
)

// GameHandler handles game HTTP requests
type GameHandler struct {
	gameService *service.GameService
	middleware  *Middleware
	templates   *template.Template
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *service.GameService, middleware *Middleware, templates *template.Template) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		middleware:  middleware,
		templates:   templates,
	}
}

// Dashboard renders the player dashboard with quota and game history
func (h *GameHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		http.Error(w, ErrUnauthorized, http.StatusUnauthorized)
		return
	}

	remaining, err := h.gameService.GamesRemainingToday(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading quota", err)
		return
	}

	active, err := h.gameService.GetActiveGame(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading active game", err)
		return
	}

	history, err := h.gameService.GetGameHistory(user.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading game history", err)
		return
	}

	data := HomePageData{
		Title:          "Play - GuessWord",
		User:           user,
		ActiveGame:     active,
		RemainingGames: remaining,
		History:        history,
		CSRFToken:      h.getCSRFToken(r),
		Error:          r.URL.Query().Get("error"),
	}

	if err := h.templates.ExecuteTemplate(w, "dashboard.tmpl", data); err != nil {
		log.Printf("Error rendering dashboard template: %v", err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

// StartGame starts a new game and redirects to its board
func (h *GameHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		http.Error(w, ErrUnauthorized, http.StatusUnauthorized)
		return
	}

	game, err := h.gameService.StartGame(user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuotaExceeded):
			h.redirectWithError(w, r, "You have already played 3 games today. Come back tomorrow!")
		case errors.Is(err, service.ErrGameAlreadyActive):
			// Send the player back to their open game
			active, activeErr := h.gameService.GetActiveGame(user.ID)
			if activeErr == nil && active != nil {
				http.Redirect(w, r, fmt.Sprintf("/play/game/%d", active.ID), http.StatusSeeOther)
				return
			}
			h.redirectWithError(w, r, "You already have a game in progress.")
		case errors.Is(err, service.ErrNoWordsAvailable):
			h.redirectWithError(w, r, "No words are available right now. Please try again later.")
		default:
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error starting game", err)
		}
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/play/game/%d", game.ID), http.StatusSeeOther)
}

// ShowGame renders the game board
func (h *GameHandler) ShowGame(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		http.Error(w, ErrUnauthorized, http.StatusUnauthorized)
		return
	}

	gameID, err := parseGameID(r)
	if err != nil {
		http.Error(w, "Invalid game ID", http.StatusBadRequest)
		return
	}

	board, err := h.gameService.GetBoard(user.ID, gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			http.NotFound(w, r)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading game", err)
		return
	}

	data := GamePageData{
		Title:     "Game - GuessWord",
		User:      user,
		Board:     board,
		CSRFToken: h.getCSRFToken(r),
		Error:     r.URL.Query().Get("error"),
	}

	if err := h.templates.ExecuteTemplate(w, "game.tmpl", data); err != nil {
		log.Printf("Error rendering game template: %v", err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

// SubmitGuess handles a guess form submission and redirects back to the board
func (h *GameHandler) SubmitGuess(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		http.Error(w, ErrUnauthorized, http.StatusUnauthorized)
		return
	}

	gameID, err := parseGameID(r)
	if err != nil {
		http.Error(w, "Invalid game ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	guess := r.FormValue("guess")

	_, err = h.gameService.SubmitGuess(user.ID, gameID, guess)
	if err != nil {
		gameURL := fmt.Sprintf("/play/game/%d", gameID)
		switch {
		case errors.Is(err, service.ErrGameNotFound):
			http.NotFound(w, r)
		case errors.Is(err, service.ErrGameFinished):
			http.Redirect(w, r, gameURL, http.StatusSeeOther)
		case errors.Is(err, service.ErrInvalidGuess):
			http.Redirect(w, r, gameURL+"?error=Guesses+must+be+exactly+5+letters", http.StatusSeeOther)
		default:
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error submitting guess", err)
		}
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/play/game/%d", gameID), http.StatusSeeOther)
}

func (h *GameHandler) redirectWithError(w http.ResponseWriter, r *http.Request, message string) {
	q := "?error=" + template.URLQueryEscaper(message)
	http.Redirect(w, r, "/play"+q, http.StatusSeeOther)
}

// getCSRFToken is a helper to get CSRF token from session
func (h *GameHandler) getCSRFToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	token, _ := h.middleware.GetCSRFToken(cookie.Value)
	return token
}

func parseGameID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
