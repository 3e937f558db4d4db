package exam

import (
	"github.com/saulo-duarte/devops-exam/internal/session"
)

type ExamContainer struct {
	Handler *Handler
	Service ExamService
}

func NewExamContainer(bank Sampler, sessions *session.Manager, results ResultWriter, opts Options) *ExamContainer {
	service := NewService(bank, sessions, results, opts)
	handler := NewHandler(service)

	return &ExamContainer{
		Handler: handler,
		Service: service,
	}
}
