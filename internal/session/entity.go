package session

import (
	"time"

	"github.com/saulo-duarte/devops-exam/internal/question"
)

type Status string

const (
	StatusActive Status = "active"
	StatusGraded Status = "graded"
)

type Identity struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Email  string `json:"email"`
}

// Session is one participant's attempt. Answers and Score are only set once
// the session is graded.
type Session struct {
	Identity
	Questions []question.Question `json:"questions"`
	Answers   map[int]string      `json:"answers,omitempty"`
	Score     int                 `json:"score"`
	Status    Status              `json:"status"`
	StartedAt time.Time           `json:"started_at"`
	GradedAt  *time.Time          `json:"graded_at,omitempty"`
}

func (s *Session) Graded() bool {
	return s.Status == StatusGraded
}

func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Questions = make([]question.Question, len(s.Questions))
	for i, q := range s.Questions {
		q.Choices = append([]string(nil), q.Choices...)
		c.Questions[i] = q
	}
	if s.Answers != nil {
		c.Answers = make(map[int]string, len(s.Answers))
		for k, v := range s.Answers {
			c.Answers[k] = v
		}
	}
	if s.GradedAt != nil {
		t := *s.GradedAt
		c.GradedAt = &t
	}
	return &c
}
