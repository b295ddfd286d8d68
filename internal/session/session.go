package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bookshelf/bookshelf-api/internal/http/response"
	"github.com/bookshelf/bookshelf-api/pkg/logger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type contextKey string

const sessionKey contextKey = "session"

// Session is the server-side record behind the client-held cookie. Anonymous
// sessions exist only as a stable ID for rate limiting; they are persisted
// the first time Save is called.
type Session struct {
	ID            string `json:"-"`
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	UserID        int64  `json:"user_id"`
}

type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, sess *Session) error
}

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	payload, err := s.client.Get(ctx, redisKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	sess := &Session{ID: id}
	if err := json.Unmarshal(payload, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *RedisStore) Save(ctx context.Context, sess *Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKey(sess.ID), payload, s.ttl).Err()
}

func redisKey(id string) string {
	return "session:" + id
}

// Manager loads sessions from the cookie and writes them back.
type Manager struct {
	store      Store
	cookieName string
	secure     bool
}

func NewManager(store Store, cookieName string, secure bool) *Manager {
	return &Manager{
		store:      store,
		cookieName: cookieName,
		secure:     secure,
	}
}

// Middleware attaches the request's session to the context, creating a fresh
// anonymous one (and its cookie) when none exists.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, isNew, err := m.load(r)
		if err != nil {
			logger.ErrorContext(r.Context(), "Failed to load session", "error", err)
			response.StoreError(w, err)
			return
		}

		if isNew {
			http.SetCookie(w, &http.Cookie{
				Name:     m.cookieName,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				Secure:   m.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionKey, sess)
		ctx = context.WithValue(ctx, logger.SessionIDKey, sess.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Manager) load(r *http.Request) (sess *Session, isNew bool, err error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		if !errors.Is(err, http.ErrNoCookie) {
			return nil, false, err
		}
		return &Session{ID: uuid.NewString()}, true, nil
	}

	sess, err = m.store.Get(r.Context(), cookie.Value)
	if err != nil {
		return nil, false, err
	}
	if sess == nil {
		// cookie is present but the record expired; keep the ID so the
		// rate limiter sees a stable key
		return &Session{ID: cookie.Value}, false, nil
	}
	return sess, false, nil
}

// Save persists the session state.
func (m *Manager) Save(ctx context.Context, sess *Session) error {
	return m.store.Save(ctx, sess)
}

// FromContext returns the session attached by Middleware, or nil.
func FromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionKey).(*Session)
	return sess
}
