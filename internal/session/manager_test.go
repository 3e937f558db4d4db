package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/saulo-duarte/devops-exam/internal/question"
	"github.com/saulo-duarte/devops-exam/internal/session"
)

func selection() []question.Question {
	return []question.Question{
		{ID: "q1", Text: "one", Choices: []string{"A", "B"}, Answer: "A", Index: 0},
		{ID: "q2", Text: "two", Choices: []string{"A", "B"}, Answer: "B", Index: 1},
	}
}

func TestManagerLifecycle(t *testing.T) {
	ctx := context.Background()
	m := session.NewManager(session.NewMemoryStore(0))

	if _, err := m.Get(ctx, "scope-1"); !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected ErrNoSession before start, got %v", err)
	}

	id := session.Identity{Name: "Alice", Gender: "F", Email: "a@x.com"}
	if _, err := m.Start(ctx, "scope-1", id, selection()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	s, err := m.Get(ctx, "scope-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s.Status != session.StatusActive || s.Name != "Alice" || len(s.Questions) != 2 {
		t.Fatalf("unexpected active session: %+v", s)
	}
	if s.Answers != nil || s.Score != 0 {
		t.Fatalf("active session should have no answers or score: %+v", s)
	}

	graded, err := m.RecordSubmission(ctx, "scope-1", map[int]string{0: "A", 1: "A"}, 1)
	if err != nil {
		t.Fatalf("RecordSubmission failed: %v", err)
	}
	if !graded.Graded() || graded.Score != 1 || graded.GradedAt == nil {
		t.Fatalf("unexpected graded session: %+v", graded)
	}

	if err := m.Clear(ctx, "scope-1"); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := m.Get(ctx, "scope-1"); !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected ErrNoSession after clear, got %v", err)
	}
}

func TestManagerStartOverwrites(t *testing.T) {
	ctx := context.Background()
	m := session.NewManager(session.NewMemoryStore(0))

	_, _ = m.Start(ctx, "s", session.Identity{Name: "Alice"}, selection())
	_, _ = m.RecordSubmission(ctx, "s", map[int]string{0: "A", 1: "B"}, 2)
	_, _ = m.Start(ctx, "s", session.Identity{Name: "Bob"}, selection()[:1])

	s, err := m.Get(ctx, "s")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s.Name != "Bob" || s.Status != session.StatusActive || s.Score != 0 || s.Answers != nil || len(s.Questions) != 1 {
		t.Fatalf("start should replace prior state, got %+v", s)
	}
}

func TestRecordSubmissionWithoutSession(t *testing.T) {
	m := session.NewManager(session.NewMemoryStore(0))
	_, err := m.RecordSubmission(context.Background(), "missing", map[int]string{}, 0)
	if !errors.Is(err, session.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestScopesAreIsolated(t *testing.T) {
	ctx := context.Background()
	m := session.NewManager(session.NewMemoryStore(0))

	_, _ = m.Start(ctx, "alice", session.Identity{Name: "Alice"}, selection())
	_, _ = m.Start(ctx, "bob", session.Identity{Name: "Bob"}, selection())

	a, _ := m.Get(ctx, "alice")
	b, _ := m.Get(ctx, "bob")
	if a.Name != "Alice" || b.Name != "Bob" {
		t.Fatalf("scopes leaked: %q %q", a.Name, b.Name)
	}
}
