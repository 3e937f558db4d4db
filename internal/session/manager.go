package session

import (
	"context"
	"time"

	"github.com/saulo-duarte/devops-exam/internal/config"
	"github.com/saulo-duarte/devops-exam/internal/question"
)

type Manager struct {
	store Store
	now   func() time.Time
}

func NewManager(store Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// Start replaces whatever the scope held with a fresh active session.
func (m *Manager) Start(ctx context.Context, scope string, id Identity, selection []question.Question) (*Session, error) {
	s := &Session{
		Identity:  id,
		Questions: selection,
		Status:    StatusActive,
		StartedAt: m.now(),
	}
	if err := m.store.Set(ctx, scope, s); err != nil {
		return nil, err
	}
	config.WithContext(ctx).WithField("questions", len(selection)).Info("Exam session started")
	return s.Clone(), nil
}

func (m *Manager) Get(ctx context.Context, scope string) (*Session, error) {
	return m.store.Get(ctx, scope)
}

func (m *Manager) RecordSubmission(ctx context.Context, scope string, answers map[int]string, score int) (*Session, error) {
	s, err := m.store.Get(ctx, scope)
	if err != nil {
		return nil, err
	}

	graded := m.now()
	s.Answers = make(map[int]string, len(answers))
	for k, v := range answers {
		s.Answers[k] = v
	}
	s.Score = score
	s.Status = StatusGraded
	s.GradedAt = &graded

	if err := m.store.Set(ctx, scope, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (m *Manager) Clear(ctx context.Context, scope string) error {
	return m.store.Clear(ctx, scope)
}
