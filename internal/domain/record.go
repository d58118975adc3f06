// Package domain defines the presence data contracts and the session
// aggregation engine that turns raw enter/exit records into per-user
// occupancy totals.
package domain

import (
	"context"
	"errors"
	"time"
)

// ErrStoreNotReady is returned when the activity store is used before its
// backing connection has been established.
var ErrStoreNotReady = errors.New("activity store is not initialized")

// Action is the kind of presence transition a record captures.
type Action string

const (
	ActionJoin Action = "join"
	ActionExit Action = "exit"
)

// ActivityRecord is an immutable presence fact appended to the activity log.
type ActivityRecord struct {
	PlayerID   string
	PlayerName string
	Action     Action
	Timestamp  time.Time
}

// ActivityStore captures persistence operations for the append-only activity
// log. Implementations must return records orderable by timestamp; the
// aggregator sorts defensively either way.
type ActivityStore interface {
	Append(ctx context.Context, record ActivityRecord) error
	QueryRange(ctx context.Context, start, end time.Time) ([]ActivityRecord, error)
}
