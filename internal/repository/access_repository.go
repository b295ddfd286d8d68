package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AccessRepository tracks the last admitted request per session and decides
// whether a new one may pass.
type AccessRepository interface {
	Admit(ctx context.Context, sessionID string, minInterval time.Duration) (bool, error)
	CleanupStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

type accessRepository struct {
	pool *pgxpool.Pool
}

func NewAccessRepository(pool *pgxpool.Pool) AccessRepository {
	return &accessRepository{pool: pool}
}

// Admit records the access and reports whether the session may proceed. The
// lookup, the elapsed-time comparison, and the timestamp update are a single
// statement, so concurrent requests on one session cannot all slip through
// the interval window.
func (r *accessRepository) Admit(ctx context.Context, sessionID string, minInterval time.Duration) (bool, error) {
	const q = `
		INSERT INTO session_access (session_id, last_access)
		VALUES ($1, $2)
		ON CONFLICT (session_id) DO UPDATE
			SET last_access = EXCLUDED.last_access
			WHERE session_access.last_access <= $3
		RETURNING last_access`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	now := time.Now()
	var lastAccess time.Time
	err := r.pool.QueryRow(ctx, q, sessionID, now, now.Add(-minInterval)).Scan(&lastAccess)
	if err == pgx.ErrNoRows {
		// conflict row exists but the interval has not elapsed; nothing was
		// written
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *accessRepository) CleanupStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	const q = `DELETE FROM session_access WHERE last_access < $1`

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, time.Now().Add(-olderThan))
	if err != nil {
		return 0, err
	}

	return result.RowsAffected(), nil
}
