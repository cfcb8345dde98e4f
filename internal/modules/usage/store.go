// README: Usage ledger persistence; Postgres rows for history, Redis counters for live reads.
package usage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Store writes one ledger row per handled request and keeps a live per-kind
// counter for the current month. Either backend may be nil, in which case its
// half is skipped.
type Store struct {
	db  *pgxpool.Pool
	rdb *redis.Client
}

func NewStore(db *pgxpool.Pool, rdb *redis.Client) *Store {
	return &Store{db: db, rdb: rdb}
}

// counterKey groups live counters by month so a reset needs no maintenance
// job; stale months simply stop being read.
func counterKey(kind string, t time.Time) string {
	return fmt.Sprintf("usage:%s:%s", kind, t.Format("2006-01"))
}

// Insert appends one ledger row.
func (s *Store) Insert(ctx context.Context, kind, status string) error {
	if s.db == nil {
		return nil
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO assistant_requests (kind, status, created_at)
		VALUES ($1, $2, NOW())
	`, kind, status)
	return err
}

// Bump increments the live counter for kind in the current month.
func (s *Store) Bump(ctx context.Context, kind string) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.Incr(ctx, counterKey(kind, time.Now())).Err()
}

// Counter reads the live counter for kind in the current month. A missing
// key reads as zero.
func (s *Store) Counter(ctx context.Context, kind string) (int64, error) {
	if s.rdb == nil {
		return 0, nil
	}
	n, err := s.rdb.Get(ctx, counterKey(kind, time.Now())).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}
