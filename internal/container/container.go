package container

import (
	"context"
	"log"
	"net/http"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/saulo-duarte/devops-exam/internal/auth"
	"github.com/saulo-duarte/devops-exam/internal/certificate"
	"github.com/saulo-duarte/devops-exam/internal/config"
	"github.com/saulo-duarte/devops-exam/internal/exam"
	"github.com/saulo-duarte/devops-exam/internal/metrics"
	"github.com/saulo-duarte/devops-exam/internal/question"
	"github.com/saulo-duarte/devops-exam/internal/result"
	"github.com/saulo-duarte/devops-exam/internal/router"
	"github.com/saulo-duarte/devops-exam/internal/session"
	util "github.com/saulo-duarte/devops-exam/internal/utils"
)

type Container struct {
	Config               config.Config
	ResultContainer      *result.ResultContainer
	SessionContainer     *session.SessionContainer
	ExamContainer        *exam.ExamContainer
	CertificateContainer *certificate.CertificateContainer
	AuthHandler          *auth.Handler
	Metrics              *metrics.Metrics
}

func New() *Container {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	config.Init()
	auth.Init()
	config.InitCrypto()

	if err := util.SetLocation(cfg.DisplayTimezone); err != nil {
		log.Fatalf("invalid DISPLAY_TIMEZONE: %v", err)
	}

	questions, err := loadQuestions(cfg.QuestionBankPath)
	if err != nil {
		log.Fatalf("failed to load question bank: %v", err)
	}

	policy, err := exam.ParseResubmissionPolicy(cfg.Resubmission)
	if err != nil {
		log.Fatalf("invalid EXAM_RESUBMISSION: %v", err)
	}

	if err := config.Connect(context.Background(), cfg.DBDriver, cfg.DatabaseDSN); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if cfg.DBAutoMigrate {
		if err := migrate(config.DB, cfg.SessionStore == "db"); err != nil {
			log.Fatalf("failed to migrate DB: %v", err)
		}
	}

	var sessionDB *gorm.DB
	if cfg.SessionStore == "db" {
		sessionDB = config.DB
	}

	resultContainer := result.NewResultContainer(config.DB)
	sessionContainer := session.NewSessionContainer(sessionDB, cfg.SessionTTL)
	bank := question.NewBank(questions, question.NewRand())
	examContainer := exam.NewExamContainer(bank, sessionContainer.Manager, resultContainer.Repo, exam.Options{
		Length:       exam.ExamLength,
		Resubmission: policy,
	})
	certificateContainer := certificate.NewCertificateContainer(sessionContainer.Manager, exam.ExamLength)

	config.Log.WithFields(logrus.Fields{
		"questions":     bank.Len(),
		"session_store": cfg.SessionStore,
		"resubmission":  policy,
	}).Info("Exam service ready")

	return &Container{
		Config:               cfg,
		ResultContainer:      resultContainer,
		SessionContainer:     sessionContainer,
		ExamContainer:        examContainer,
		CertificateContainer: certificateContainer,
		AuthHandler:          auth.NewHandler(sessionContainer.Manager, cfg.CookieSecure),
		Metrics:              metrics.New(),
	}
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		ExamHandler:        c.ExamContainer.Handler,
		CertificateHandler: c.CertificateContainer.Handler,
		ResultHandler:      c.ResultContainer.Handler,
		AuthHandler:        c.AuthHandler,
		Metrics:            c.Metrics,
		Cookie: auth.CookieOptions{
			TTL:    c.Config.SessionTTL,
			Secure: c.Config.CookieSecure,
		},
		AllowedOrigins: c.Config.CORSAllowedOrigins,
	})
}

func loadQuestions(path string) ([]question.Question, error) {
	if path == "" {
		return question.Default()
	}
	return question.LoadFile(path)
}

func migrate(db *gorm.DB, sessions bool) error {
	if err := result.AutoMigrate(db); err != nil {
		return err
	}
	if sessions {
		return db.AutoMigrate(&session.Record{})
	}
	return nil
}
