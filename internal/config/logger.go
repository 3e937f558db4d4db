package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type ctxKey string

const scopeKey ctxKey = "session_scope"

var Log = logrus.New()

func Init() {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(Cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
}

// WithScope stores the session scope so WithContext can tag log lines with it.
func WithScope(ctx context.Context, scope string) context.Context {
	return context.WithValue(ctx, scopeKey, scope)
}

func WithContext(ctx context.Context) logrus.FieldLogger {
	fields := logrus.Fields{}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		fields["request_id"] = reqID
	}
	if scope, ok := ctx.Value(scopeKey).(string); ok && scope != "" {
		fields["scope"] = scope
	}
	if len(fields) == 0 {
		return Log
	}
	return Log.WithFields(fields)
}
