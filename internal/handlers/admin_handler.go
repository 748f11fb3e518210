package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"guessword/internal/service"
)

// AdminHandler handles the word curation and user admin pages
type AdminHandler struct {
	wordService *service.WordService
	authService *service.AuthService
	middleware  *Middleware
	templates   *template.Template
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(wordService *service.WordService, authService *service.AuthService, middleware *Middleware, templates *template.Template) *AdminHandler {
	return &AdminHandler{
		wordService: wordService,
		authService: authService,
		middleware:  middleware,
		templates:   templates,
	}
}

// ShowWords renders the word curation page
func (h *AdminHandler) ShowWords(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	words, err := h.wordService.ListWords()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error listing words", err)
		return
	}

	data := AdminWordsPageData{
		Title:     "Words - GuessWord Admin",
		User:      user,
		Words:     words,
		CSRFToken: h.getCSRFToken(r),
		Error:     r.URL.Query().Get("error"),
		Message:   r.URL.Query().Get("message"),
	}

	if err := h.templates.ExecuteTemplate(w, "admin_words.tmpl", data); err != nil {
		log.Printf("Error rendering admin words template: %v", err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

// AddWord handles the add-word form submission
func (h *AdminHandler) AddWord(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	text := r.FormValue("word")

	if _, err := h.wordService.AddWord(text); err != nil {
		message := "Could not add word"
		if errors.Is(err, service.ErrWordExists) {
			message = "That word is already in the list"
		} else {
			log.Printf("Error adding word %q: %v", text, err)
			message = err.Error()
		}
		http.Redirect(w, r, "/admin/words?error="+template.URLQueryEscaper(message), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/words?message=Word+added", http.StatusSeeOther)
}

// DeleteWord handles the delete-word form submission
func (h *AdminHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid word ID", http.StatusBadRequest)
		return
	}

	if err := h.wordService.DeleteWord(id); err != nil {
		log.Printf("Error deleting word %d: %v", id, err)
		http.Redirect(w, r, "/admin/words?error=Cannot+delete+a+word+that+has+been+played", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin/words?message=Word+deleted", http.StatusSeeOther)
}

// SeedWords installs the stock word list
func (h *AdminHandler) SeedWords(w http.ResponseWriter, r *http.Request) {
	inserted, err := h.wordService.SeedDefaults()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error seeding words", err)
		return
	}

	log.Printf("Seeded %d stock words", inserted)
	http.Redirect(w, r, "/admin/words?message=Stock+words+installed", http.StatusSeeOther)
}

// ShowUsers renders the user list page
func (h *AdminHandler) ShowUsers(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	users, err := h.authService.ListUsers()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error listing users", err)
		return
	}

	data := AdminUsersPageData{
		Title: "Users - GuessWord Admin",
		User:  user,
		Users: users,
	}

	if err := h.templates.ExecuteTemplate(w, "admin_users.tmpl", data); err != nil {
		log.Printf("Error rendering admin users template: %v", err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

// getCSRFToken is a helper to get CSRF token from session
func (h *AdminHandler) getCSRFToken(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	token, _ := h.middleware.GetCSRFToken(cookie.Value)
	return token
}
