package exam

import (
	"errors"

	"github.com/saulo-duarte/devops-exam/internal/question"
)

var (
	ErrValidation           = errors.New("invalid participant details")
	ErrNoActiveSession      = errors.New("please start the exam first")
	ErrIncompleteSubmission = errors.New("please answer all questions")
	ErrPersistence          = errors.New("failed to record exam result")
	ErrAlreadySubmitted     = errors.New("exam already submitted")
	ErrInsufficientBank     = question.ErrInsufficientBank
)
