package auth

import (
	"context"
	"net/http"

	"github.com/saulo-duarte/devops-exam/internal/config"
)

type SessionClearer interface {
	Clear(ctx context.Context, scope string) error
}

type Handler struct {
	sessions SessionClearer
	secure   bool
}

func NewHandler(sessions SessionClearer, secure bool) *Handler {
	return &Handler{sessions: sessions, secure: secure}
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if scope, err := ScopeFromContext(r.Context()); err == nil {
		if err := h.sessions.Clear(r.Context(), scope); err != nil {
			log.WithError(err).Warn("Failed to clear session state on logout")
		}
	}

	clearCookie(w, h.secure)
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
