package exam

import (
	"github.com/saulo-duarte/devops-exam/internal/question"
	"github.com/saulo-duarte/devops-exam/internal/session"
)

type StartRequest struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Email  string `json:"email"`
}

type SubmitRequest struct {
	Answers map[int]string `json:"answers"`
}

type StartResult struct {
	Name      string                    `json:"name"`
	Gender    string                    `json:"gender"`
	Email     string                    `json:"email"`
	Questions []question.PublicQuestion `json:"questions"`
}

type Grade struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Total int    `json:"total"`
}

type SessionView struct {
	Name      string                    `json:"name"`
	Status    session.Status            `json:"status"`
	Questions []question.PublicQuestion `json:"questions"`
	Score     *int                      `json:"score,omitempty"`
	Total     int                       `json:"total"`
}
