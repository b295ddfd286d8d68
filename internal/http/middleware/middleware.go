package middleware

import (
	"net/http"
	"time"

	"github.com/bookshelf/bookshelf-api/internal/http/response"
	"github.com/bookshelf/bookshelf-api/internal/repository"
	"github.com/bookshelf/bookshelf-api/internal/session"
	"github.com/bookshelf/bookshelf-api/pkg/logger"
)

// RateLimiter throttles repeated requests per session: a session gets one
// admitted request per interval.
type RateLimiter struct {
	access   repository.AccessRepository
	interval time.Duration
}

func NewRateLimiter(access repository.AccessRepository, interval time.Duration) *RateLimiter {
	return &RateLimiter{access: access, interval: interval}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromContext(r.Context())
		if sess == nil {
			response.Unauthorized(w, "invalid session, please login again")
			return
		}

		admitted, err := rl.access.Admit(r.Context(), sess.ID, rl.interval)
		if err != nil {
			logger.ErrorContext(r.Context(), "Rate limit check failed", "error", err)
			response.StoreError(w, err)
			return
		}
		if !admitted {
			response.RateLimited(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAuth denies the request unless the session has authenticated.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.FromContext(r.Context())
		if sess == nil || !sess.Authenticated {
			response.Unauthorized(w, "invalid session, please login again")
			return
		}

		next.ServeHTTP(w, r)
	})
}
