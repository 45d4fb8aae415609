package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/masaishi/wakalyze/internal/domain"
)

// SQLiteHeartbeatCacheRepo implements HeartbeatCacheRepo using a SQLite
// database.
type SQLiteHeartbeatCacheRepo struct {
	db *sql.DB
}

// NewSQLiteHeartbeatCacheRepo creates a new SQLiteHeartbeatCacheRepo.
func NewSQLiteHeartbeatCacheRepo(db *sql.DB) *SQLiteHeartbeatCacheRepo {
	return &SQLiteHeartbeatCacheRepo{db: db}
}

func (r *SQLiteHeartbeatCacheRepo) Get(ctx context.Context, user string, date time.Time) ([]domain.RawHeartbeat, error) {
	query := `SELECT payload FROM heartbeat_cache WHERE user = ? AND date = ?`
	var payload string
	err := r.db.QueryRowContext(ctx, query, user, date.Format(dateKey)).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("heartbeat cache %s/%s: %w", user, date.Format(dateKey), ErrNotFound)
		}
		return nil, fmt.Errorf("querying heartbeat cache: %w", err)
	}

	var heartbeats []domain.RawHeartbeat
	if err := json.Unmarshal([]byte(payload), &heartbeats); err != nil {
		return nil, fmt.Errorf("decoding cached heartbeats: %w", err)
	}
	return heartbeats, nil
}

func (r *SQLiteHeartbeatCacheRepo) Put(ctx context.Context, user string, date time.Time, heartbeats []domain.RawHeartbeat) error {
	payload, err := json.Marshal(heartbeats)
	if err != nil {
		return fmt.Errorf("encoding heartbeats: %w", err)
	}

	query := `INSERT INTO heartbeat_cache (id, user, date, payload, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user, date) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`
	_, err = r.db.ExecContext(ctx, query,
		uuid.New().String(),
		user,
		date.Format(dateKey),
		string(payload),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting heartbeat cache row: %w", err)
	}
	return nil
}

func (r *SQLiteHeartbeatCacheRepo) Purge(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM heartbeat_cache WHERE date < ?`
	result, err := r.db.ExecContext(ctx, query, before.Format(dateKey))
	if err != nil {
		return 0, fmt.Errorf("purging heartbeat cache: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting purged rows: %w", err)
	}
	return deleted, nil
}
