package result

import (
	"net/http"

	"github.com/saulo-duarte/devops-exam/internal/config"
)

type Handler struct {
	repo ResultRepository
}

func NewHandler(repo ResultRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) ListResults(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	results, err := h.repo.ListAll(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list results")
		config.Error(w, http.StatusInternalServerError, "database error occurred")
		return
	}

	out := make([]ResultResponse, 0, len(results))
	for _, res := range results {
		out = append(out, toResponse(res))
	}
	config.JSON(w, http.StatusOK, out)
}
