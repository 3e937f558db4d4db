package exam

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetExam)
	r.Post("/start", h.StartExam)
	r.Post("/submit", h.SubmitAnswers)
	return r
}
