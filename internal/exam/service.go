package exam

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/devops-exam/internal/config"
	"github.com/saulo-duarte/devops-exam/internal/question"
	"github.com/saulo-duarte/devops-exam/internal/session"
	"github.com/sirupsen/logrus"
)

const ExamLength = 15

type ResubmissionPolicy string

const (
	// AllowRegrade grades every submission and records each one.
	AllowRegrade ResubmissionPolicy = "allow"
	// RejectResubmission refuses a second submission for a graded session.
	RejectResubmission ResubmissionPolicy = "reject"
)

func ParseResubmissionPolicy(s string) (ResubmissionPolicy, error) {
	switch p := ResubmissionPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "", AllowRegrade:
		return AllowRegrade, nil
	case RejectResubmission:
		return p, nil
	default:
		return "", fmt.Errorf("unknown resubmission policy %q", s)
	}
}

type Sampler interface {
	Sample(n int) ([]question.Question, error)
}

type ResultWriter interface {
	Insert(ctx context.Context, name, gender, email string, score int) error
}

type Options struct {
	Length       int
	Resubmission ResubmissionPolicy
}

type ExamService interface {
	StartExam(ctx context.Context, scope, name, gender, email string) (*StartResult, error)
	SubmitAnswers(ctx context.Context, scope string, answers map[int]string) (*Grade, error)
	Current(ctx context.Context, scope string) (*SessionView, error)
}

type examService struct {
	bank     Sampler
	sessions *session.Manager
	results  ResultWriter
	opts     Options
}

func NewService(bank Sampler, sessions *session.Manager, results ResultWriter, opts Options) ExamService {
	if opts.Length <= 0 {
		opts.Length = ExamLength
	}
	if opts.Resubmission == "" {
		opts.Resubmission = AllowRegrade
	}
	return &examService{
		bank:     bank,
		sessions: sessions,
		results:  results,
		opts:     opts,
	}
}

func (s *examService) StartExam(ctx context.Context, scope, name, gender, email string) (*StartResult, error) {
	log := config.WithContext(ctx)

	id := session.Identity{
		Name:   strings.TrimSpace(name),
		Gender: strings.TrimSpace(gender),
		Email:  strings.TrimSpace(email),
	}
	if err := validateIdentity(id); err != nil {
		log.WithError(err).Warn("Rejected exam start")
		return nil, err
	}

	selection, err := s.bank.Sample(s.opts.Length)
	if err != nil {
		log.WithError(err).Error("Failed to sample questions")
		return nil, err
	}

	if _, err := s.sessions.Start(ctx, scope, id, selection); err != nil {
		log.WithError(err).Error("Failed to store exam session")
		return nil, err
	}

	return &StartResult{
		Name:      id.Name,
		Gender:    id.Gender,
		Email:     id.Email,
		Questions: question.PublicList(selection),
	}, nil
}

// SubmitAnswers grades answers keyed by position index. The score is fully
// computed before the result row is written; if that write fails the session
// is left as it was.
func (s *examService) SubmitAnswers(ctx context.Context, scope string, answers map[int]string) (*Grade, error) {
	log := config.WithContext(ctx)

	sess, err := s.sessions.Get(ctx, scope)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			log.Warn("Submission without an active session")
			return nil, ErrNoActiveSession
		}
		log.WithError(err).Error("Failed to load exam session")
		return nil, err
	}

	if sess.Graded() && s.opts.Resubmission == RejectResubmission {
		log.Warn("Rejected resubmission of a graded exam")
		return nil, ErrAlreadySubmitted
	}

	score, err := grade(sess.Questions, answers)
	if err != nil {
		log.WithError(err).Warn("Rejected incomplete submission")
		return nil, err
	}

	if err := s.results.Insert(ctx, sess.Name, sess.Gender, sess.Email, score); err != nil {
		log.WithError(err).Error("Failed to persist exam result")
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if _, err := s.sessions.RecordSubmission(ctx, scope, answers, score); err != nil {
		log.WithError(err).Error("Failed to record graded session")
		return nil, fmt.Errorf("record submission: %w", err)
	}

	log.WithFields(logrus.Fields{
		"score": score,
		"total": len(sess.Questions),
	}).Info("Exam graded")

	return &Grade{Name: sess.Name, Score: score, Total: len(sess.Questions)}, nil
}

func (s *examService) Current(ctx context.Context, scope string) (*SessionView, error) {
	sess, err := s.sessions.Get(ctx, scope)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, ErrNoActiveSession
		}
		return nil, err
	}

	view := &SessionView{
		Name:      sess.Name,
		Status:    sess.Status,
		Questions: question.PublicList(sess.Questions),
		Total:     len(sess.Questions),
	}
	if sess.Graded() {
		score := sess.Score
		view.Score = &score
	}
	return view, nil
}

// grade requires an answer for every position and counts exact matches.
func grade(questions []question.Question, answers map[int]string) (int, error) {
	for i := range questions {
		if _, ok := answers[i]; !ok {
			return 0, ErrIncompleteSubmission
		}
	}

	score := 0
	for i, q := range questions {
		if answers[i] == q.Answer {
			score++
		}
	}
	return score, nil
}

func validateIdentity(id session.Identity) error {
	switch {
	case id.Name == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case id.Gender == "":
		return fmt.Errorf("%w: gender is required", ErrValidation)
	case id.Email == "":
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	return nil
}
