package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/cvapp9594-svg/salao225/services/salon-api/internal/session"
)

const adminCookie = "admin_session"

// AuthHandler gates the admin console behind an explicit Redis-held session:
// absent at startup, created on login, destroyed on logout.
type AuthHandler struct {
	sessions     *session.Store
	username     string
	passwordHash []byte
	logger       *slog.Logger
}

func NewAuthHandler(sessions *session.Store, username string, passwordHash []byte, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions:     sessions,
		username:     username,
		passwordHash: passwordHash,
		logger:       logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username != h.username ||
		bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := h.sessions.Create(r.Context(), req.Username)
	if err != nil {
		h.logger.Error("session create failed", "err", err)
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     adminCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"username": req.Username})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	if cookie, err := r.Cookie(adminCookie); err == nil {
		if err := h.sessions.Destroy(r.Context(), cookie.Value); err != nil {
			h.logger.Warn("session destroy failed", "err", err)
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     adminCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}

// RequireAdmin rejects requests without a live admin session.
func (h *AuthHandler) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(adminCookie)
		if err != nil {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
		if _, err := h.sessions.Check(r.Context(), cookie.Value); err != nil {
			if errors.Is(err, session.ErrNotFound) {
				http.Error(w, "authentication required", http.StatusUnauthorized)
				return
			}
			h.logger.Error("session check failed", "err", err)
			http.Error(w, "session check failed", http.StatusInternalServerError)
			return
		}
		next(w, r)
	}
}
