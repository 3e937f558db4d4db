package exam

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/saulo-duarte/devops-exam/internal/auth"
	"github.com/saulo-duarte/devops-exam/internal/config"
)

const (
	answerFieldPrefix = "question_"
	maxFormMemory     = 1 << 20
)

type Handler struct {
	service ExamService
}

func NewHandler(s ExamService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) StartExam(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	scope, err := auth.ScopeFromContext(r.Context())
	if err != nil {
		log.Warn("Request without session scope")
		config.Error(w, http.StatusUnauthorized, "session required")
		return
	}

	var req StartRequest
	if isJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.WithError(err).Warn("Invalid start request body")
			config.Error(w, http.StatusBadRequest, "invalid request body")
			return
		}
	} else {
		if err := parseForm(r); err != nil {
			config.Error(w, http.StatusBadRequest, "invalid form")
			return
		}
		req = StartRequest{
			Name:   r.PostFormValue("name"),
			Gender: r.PostFormValue("gender"),
			Email:  r.PostFormValue("email"),
		}
	}

	res, err := h.service.StartExam(r.Context(), scope, req.Name, req.Gender, req.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, res)
}

func (h *Handler) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	scope, err := auth.ScopeFromContext(r.Context())
	if err != nil {
		log.Warn("Request without session scope")
		config.Error(w, http.StatusUnauthorized, "session required")
		return
	}

	answers, err := parseAnswers(r)
	if err != nil {
		log.WithError(err).Warn("Invalid submission body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.SubmitAnswers(r.Context(), scope, answers)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, res)
}

func (h *Handler) GetExam(w http.ResponseWriter, r *http.Request) {
	scope, err := auth.ScopeFromContext(r.Context())
	if err != nil {
		config.Error(w, http.StatusUnauthorized, "session required")
		return
	}

	view, err := h.service.Current(r.Context(), scope)
	if err != nil {
		writeError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, view)
}

func parseAnswers(r *http.Request) (map[int]string, error) {
	if isJSON(r) {
		var req SubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, err
		}
		if req.Answers == nil {
			req.Answers = map[int]string{}
		}
		return req.Answers, nil
	}

	if err := parseForm(r); err != nil {
		return nil, err
	}
	answers := map[int]string{}
	for key, values := range r.PostForm {
		if !strings.HasPrefix(key, answerFieldPrefix) || len(values) == 0 {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimPrefix(key, answerFieldPrefix))
		if err != nil {
			return nil, fmt.Errorf("bad answer field %q", key)
		}
		answers[idx] = values[0]
	}
	return answers, nil
}

// parseForm fills r.PostForm from urlencoded or multipart bodies.
func parseForm(r *http.Request) error {
	if mediaType(r) == "multipart/form-data" {
		return r.ParseMultipartForm(maxFormMemory)
	}
	return r.ParseForm()
}

func isJSON(r *http.Request) bool {
	return mediaType(r) == "application/json"
}

func mediaType(r *http.Request) string {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mt
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		config.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrIncompleteSubmission):
		config.Error(w, http.StatusBadRequest, ErrIncompleteSubmission.Error())
	case errors.Is(err, ErrNoActiveSession):
		config.Error(w, http.StatusConflict, ErrNoActiveSession.Error())
	case errors.Is(err, ErrAlreadySubmitted):
		config.Error(w, http.StatusConflict, ErrAlreadySubmitted.Error())
	default:
		config.Error(w, http.StatusInternalServerError, "an error occurred while processing your exam")
	}
}
