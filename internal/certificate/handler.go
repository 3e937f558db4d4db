package certificate

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/saulo-duarte/devops-exam/internal/auth"
	"github.com/saulo-duarte/devops-exam/internal/config"
)

type Handler struct {
	assembler *Assembler
	renderer  Renderer
}

func NewHandler(a *Assembler, r Renderer) *Handler {
	return &Handler{assembler: a, renderer: r}
}

func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	scope, _ := auth.ScopeFromContext(r.Context())
	rec := h.assembler.Assemble(r.Context(), scope)

	doc, err := h.renderer.Render(r.Context(), rec)
	if err != nil {
		log.WithError(err).Error("Certificate generation error")
		config.Error(w, http.StatusInternalServerError, "An error occurred while generating your certificate")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": FileName(rec.Name),
	}))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		log.WithError(err).Warn("Failed to write certificate")
	}
}
