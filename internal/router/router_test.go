package router_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/saulo-duarte/devops-exam/internal/auth"
	"github.com/saulo-duarte/devops-exam/internal/certificate"
	"github.com/saulo-duarte/devops-exam/internal/config"
	"github.com/saulo-duarte/devops-exam/internal/exam"
	"github.com/saulo-duarte/devops-exam/internal/metrics"
	"github.com/saulo-duarte/devops-exam/internal/question"
	"github.com/saulo-duarte/devops-exam/internal/result"
	"github.com/saulo-duarte/devops-exam/internal/router"
	"github.com/saulo-duarte/devops-exam/internal/session"
)

type memResults struct {
	mu   sync.Mutex
	rows []*result.Result
}

func (m *memResults) Insert(_ context.Context, name, gender, email string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, &result.Result{Username: name, Gender: gender, Email: email, Score: score, CreatedAt: time.Now()})
	return nil
}

func (m *memResults) ListAll(context.Context) ([]*result.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows, nil
}

// Every question's first option is the correct one.
func easyBank(n int) []question.Question {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID:      fmt.Sprintf("q%d", i),
			Text:    fmt.Sprintf("question %d", i),
			Choices: []string{"right", "wrong"},
			Answer:  "right",
		}
	}
	return qs
}

func newServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	prev := config.Cfg.SessionSecret
	config.Cfg.SessionSecret = "router-test-secret"
	t.Cleanup(func() { config.Cfg.SessionSecret = prev })
	auth.Init()

	results := &memResults{}
	sessions := session.NewSessionContainer(nil, time.Hour)
	bank := question.NewBank(easyBank(20), question.NewSeededRand(1))
	examC := exam.NewExamContainer(bank, sessions.Manager, results, exam.Options{})
	certC := certificate.NewCertificateContainer(sessions.Manager, exam.ExamLength)

	srv := httptest.NewServer(router.New(router.RouterConfig{
		ExamHandler:        examC.Handler,
		CertificateHandler: certC.Handler,
		ResultHandler:      result.NewHandler(results),
		AuthHandler:        auth.NewHandler(sessions.Manager, false),
		Metrics:            metrics.New(),
		Cookie:             auth.CookieOptions{TTL: time.Hour},
		AllowedOrigins:     []string{"http://localhost:3000"},
	}))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return srv, &http.Client{Jar: jar}
}

func post(t *testing.T, c *http.Client, url, body string) *http.Response {
	t.Helper()
	resp, err := c.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, c *http.Client, url string) *http.Response {
	t.Helper()
	resp, err := c.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestExamFlow(t *testing.T) {
	srv, client := newServer(t)

	resp := post(t, client, srv.URL+"/exam/start", `{"name":"Ada Lovelace","gender":"F","email":"ada@x.com"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("start: expected 201, got %d", resp.StatusCode)
	}
	var started exam.StartResult
	if err := json.NewDecoder(resp.Body).Decode(&started); err != nil {
		t.Fatalf("decode start: %v", err)
	}

	answers := map[int]string{}
	for _, q := range started.Questions {
		answers[q.Index] = "right"
	}
	body, _ := json.Marshal(exam.SubmitRequest{Answers: answers})

	resp = post(t, client, srv.URL+"/exam/submit", string(body))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d", resp.StatusCode)
	}
	var grade exam.Grade
	_ = json.NewDecoder(resp.Body).Decode(&grade)
	if grade.Score != 15 || grade.Total != 15 {
		t.Fatalf("expected 15/15, got %+v", grade)
	}

	resp = get(t, client, srv.URL+"/certificate")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("certificate: expected 200, got %d", resp.StatusCode)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "devops_certificate_Ada_Lovelace.pdf") {
		t.Fatalf("unexpected disposition %q", cd)
	}
	pdf, _ := io.ReadAll(resp.Body)
	if !strings.HasPrefix(string(pdf), "%PDF-") {
		t.Fatal("certificate is not a PDF")
	}

	resp = get(t, client, srv.URL+"/admin/results")
	var rows []map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&rows)
	if len(rows) != 1 || rows[0]["score"] != float64(15) {
		t.Fatalf("unexpected results listing: %v", rows)
	}

	resp = post(t, client, srv.URL+"/auth/logout", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", resp.StatusCode)
	}
	resp = get(t, client, srv.URL+"/exam")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 after logout, got %d", resp.StatusCode)
	}
}

func TestScopesAreIsolated(t *testing.T) {
	srv, alice := newServer(t)
	jar, _ := cookiejar.New(nil)
	bob := &http.Client{Jar: jar}

	post(t, alice, srv.URL+"/exam/start", `{"name":"Alice","gender":"F","email":"a@x.com"}`)

	resp := get(t, bob, srv.URL+"/exam")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("second participant should have no session, got %d", resp.StatusCode)
	}
	resp = get(t, alice, srv.URL+"/exam")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("first participant should see their exam, got %d", resp.StatusCode)
	}
}

func TestMetricsAndHealth(t *testing.T) {
	srv, client := newServer(t)

	get(t, client, srv.URL+"/healthz")
	get(t, client, srv.URL+"/exam")

	resp := get(t, client, srv.URL+"/metrics")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(raw), "app_requests_total 3") {
		t.Fatalf("expected three counted requests:\n%s", raw)
	}
	if len(resp.Cookies()) != 0 {
		t.Fatal("metrics endpoint must not issue session cookies")
	}
}
