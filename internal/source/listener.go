// Package source consumes presence events from the space server over a
// websocket and turns them into activity records.
package source

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"example.com/presence/internal/domain"
	"example.com/presence/internal/notify"
)

const (
	eventPlayerJoins = "playerJoins"
	eventPlayerExits = "playerExits"
)

// spaceEvent is the JSON frame the space server delivers per presence
// transition.
type spaceEvent struct {
	Type       string `json:"type"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName,omitempty"`
}

// authFrame is sent once after connecting.
type authFrame struct {
	Type    string `json:"type"`
	SpaceID string `json:"spaceId"`
	APIKey  string `json:"apiKey"`
}

// NameCache is the name-resolution contract the listener needs.
type NameCache interface {
	Set(playerID, name string)
	Resolve(playerID string) string
}

// RecordPublisher mirrors appended records to a downstream transport.
type RecordPublisher interface {
	Publish(ctx context.Context, record domain.ActivityRecord) error
}

// Config carries the space connection settings.
type Config struct {
	ServerURL        string
	SpaceID          string
	APIKey           string
	DebounceInterval time.Duration
	ReconnectDelay   time.Duration
}

// Option configures optional behaviour for the Listener.
type Option func(*Listener)

// WithLogger overrides the logger used to report errors.
func WithLogger(logger *log.Logger) Option {
	return func(l *Listener) {
		l.logger = logger
	}
}

// WithClock overrides the arrival-time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Listener) {
		l.now = now
	}
}

// WithRelay attaches a publisher that mirrors each appended record.
func WithRelay(relay RecordPublisher) Option {
	return func(l *Listener) {
		l.relay = relay
	}
}

// Listener maintains the space connection and ingests presence events.
type Listener struct {
	cfg      Config
	store    domain.ActivityStore
	names    NameCache
	notifier notify.Notifier
	relay    RecordPublisher
	gate     *Gate
	now      func() time.Time
	logger   *log.Logger

	mu     sync.Mutex
	roster map[string]struct{}
}

// NewListener constructs a Listener.
func NewListener(cfg Config, store domain.ActivityStore, cache NameCache, notifier notify.Notifier, opts ...Option) *Listener {
	if cfg.DebounceInterval <= 0 {
		cfg.DebounceInterval = time.Second
	}
	if cfg.ReconnectDelay <= 0 {
		cfg.ReconnectDelay = 5 * time.Second
	}

	l := &Listener{
		cfg:      cfg,
		store:    store,
		names:    cache,
		notifier: notifier,
		gate:     NewGate(cfg.DebounceInterval),
		now:      time.Now,
		logger:   log.New(log.Writer(), "[listener] ", log.LstdFlags),
		roster:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run connects to the space server and consumes events until the context is
// cancelled, reconnecting after connection failures.
func (l *Listener) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		connID := uuid.NewString()
		if err := l.consume(ctx, connID); err != nil && ctx.Err() == nil {
			l.logger.Printf("connection lost (conn=%s): %v", connID, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.cfg.ReconnectDelay):
		}
	}
}

func (l *Listener) consume(ctx context.Context, connID string) error {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(ctx, l.cfg.ServerURL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.WriteJSON(authFrame{Type: "auth", SpaceID: l.cfg.SpaceID, APIKey: l.cfg.APIKey}); err != nil {
		return err
	}

	l.logger.Printf("connected to space %s (conn=%s)", l.cfg.SpaceID, connID)

	// Unblock ReadJSON when the context is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		var event spaceEvent
		if err := conn.ReadJSON(&event); err != nil {
			return err
		}
		l.HandleEvent(ctx, event.Type, event.PlayerID, event.PlayerName)
	}
}

// HandleEvent processes a single presence notification. Anomalies are logged
// and dropped; the listener never stops because of a bad event.
func (l *Listener) HandleEvent(ctx context.Context, eventType, playerID, playerName string) {
	var action domain.Action
	switch eventType {
	case eventPlayerJoins:
		action = domain.ActionJoin
	case eventPlayerExits:
		action = domain.ActionExit
	default:
		recordEventDropped("unknown_type")
		return
	}

	if !l.gate.TryAcquire(eventType) {
		recordEventDropped("debounced")
		return
	}

	if playerID == "" {
		l.logger.Printf("dropping %s event with no player id", eventType)
		recordEventDropped("missing_player_id")
		return
	}

	if playerName != "" {
		l.names.Set(playerID, playerName)
	}

	record := domain.ActivityRecord{
		PlayerID:   playerID,
		PlayerName: l.names.Resolve(playerID),
		Action:     action,
		Timestamp:  l.now().UTC(),
	}

	if err := l.store.Append(ctx, record); err != nil {
		// The room notification below does not depend on the log insert.
		l.logger.Printf("failed to append %s record (player=%s): %v", action, playerID, err)
		recordAppendFailure()
	} else {
		recordEventIngested(string(action))
	}

	if l.relay != nil {
		if err := l.relay.Publish(ctx, record); err != nil {
			l.logger.Printf("relay publish failed (player=%s): %v", playerID, err)
		}
	}

	l.updateRoster(playerID, action)

	if err := l.notifier.Send(ctx, l.roomMessage(record)); err != nil {
		l.logger.Printf("room notification failed (player=%s): %v", playerID, err)
		recordNotifyFailure()
	}
}

func (l *Listener) updateRoster(playerID string, action domain.Action) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if action == domain.ActionJoin {
		l.roster[playerID] = struct{}{}
	} else {
		delete(l.roster, playerID)
	}
	recordOccupancy(len(l.roster))
}

func (l *Listener) roomMessage(record domain.ActivityRecord) string {
	verb := "入室しました"
	if record.Action == domain.ActionExit {
		verb = "退出しました"
	}
	return "「" + record.PlayerName + "」が" + verb + "。\nルームにいるプレイヤー: " + l.rosterNames()
}

func (l *Listener) rosterNames() string {
	l.mu.Lock()
	ids := make([]string, 0, len(l.roster))
	for id := range l.roster {
		ids = append(ids, id)
	}
	l.mu.Unlock()

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, l.names.Resolve(id))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
