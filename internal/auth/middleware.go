package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/devops-exam/internal/config"
)

const CookieName = "exam_session"

type contextKey string

const scopeContextKey contextKey = "scope"

var ErrNoScope = errors.New("no session scope in context")

type CookieOptions struct {
	TTL    time.Duration
	Secure bool
}

// SessionMiddleware makes sure every request carries a signed scope cookie.
// A missing or invalid cookie gets a new scope; a valid one past half its
// lifetime is re-signed for the same scope so an active participant keeps it.
func SessionMiddleware(opts CookieOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scope := ""
			renew := true
			if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
				if claims, err := ValidateJWT(c.Value); err == nil {
					scope = claims.Scope
					renew = needsRenewal(claims, opts.TTL)
				} else {
					config.WithContext(r.Context()).WithError(err).Debug("Discarding invalid session cookie")
				}
			}

			if scope == "" {
				scope = uuid.NewString()
			}
			if renew {
				token, err := GenerateJWT(scope, opts.TTL)
				if err != nil {
					config.WithContext(r.Context()).WithError(err).Error("Failed to sign session token")
					config.Error(w, http.StatusInternalServerError, "internal server error")
					return
				}
				setCookie(w, token, opts)
			}

			ctx := context.WithValue(r.Context(), scopeContextKey, scope)
			ctx = config.WithScope(ctx, scope)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func needsRenewal(claims *Claims, ttl time.Duration) bool {
	if claims.ExpiresAt == nil {
		return true
	}
	return time.Until(claims.ExpiresAt.Time) < ttl/2
}

func ScopeFromContext(ctx context.Context) (string, error) {
	scope, ok := ctx.Value(scopeContextKey).(string)
	if !ok || scope == "" {
		return "", ErrNoScope
	}
	return scope, nil
}

// WithScope is used by tests and by callers that carry their own scope.
func WithScope(ctx context.Context, scope string) context.Context {
	return context.WithValue(ctx, scopeContextKey, scope)
}

func setCookie(w http.ResponseWriter, token string, opts CookieOptions) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(opts.TTL.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
