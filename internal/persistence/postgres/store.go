// Package postgres provides the pgx-backed activity store.
package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/presence/internal/domain"
	"example.com/presence/internal/observability"
)

// Store persists presence records in the append-only user_activities table.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore constructs a Store backed by the provided pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Append inserts a single activity record. Records are never updated or
// deleted afterwards.
func (s *Store) Append(ctx context.Context, record domain.ActivityRecord) error {
	if s.pool == nil {
		return domain.ErrStoreNotReady
	}

	const stmt = `INSERT INTO user_activities (player_id, player_name, action, timestamp)
        VALUES ($1,$2,$3,$4)`

	_, err := s.pool.Exec(ctx, stmt,
		record.PlayerID,
		record.PlayerName,
		string(record.Action),
		record.Timestamp.UTC(),
	)
	if err != nil {
		return err
	}
	observability.RecordActivityPersisted(record.Timestamp)
	return nil
}

// QueryRange returns records with start <= timestamp <= end, ordered by
// timestamp then insertion order. Both boundaries are inclusive to match the
// window semantics of the report queries.
func (s *Store) QueryRange(ctx context.Context, start, end time.Time) ([]domain.ActivityRecord, error) {
	if s.pool == nil {
		return nil, domain.ErrStoreNotReady
	}

	const query = `SELECT player_id, player_name, action, timestamp
        FROM user_activities
        WHERE timestamp >= $1 AND timestamp <= $2
        ORDER BY timestamp ASC, id ASC`

	rows, err := s.pool.Query(ctx, query, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.ActivityRecord, 0)
	for rows.Next() {
		var record domain.ActivityRecord
		var action string
		if err := rows.Scan(&record.PlayerID, &record.PlayerName, &action, &record.Timestamp); err != nil {
			return nil, err
		}
		record.Action = domain.Action(action)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
