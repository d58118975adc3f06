package relay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"example.com/presence/internal/domain"
)

type stubWriter struct {
	messages []kafka.Message
	err      error
}

func (w *stubWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *stubWriter) Close() error { return nil }

func TestPublishEncodesRecord(t *testing.T) {
	writer := &stubWriter{}
	publisher := &Publisher{writer: writer, topic: "presence_activity"}

	ts := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	err := publisher.Publish(context.Background(), domain.ActivityRecord{
		PlayerID:   "u1",
		PlayerName: "Alice",
		Action:     domain.ActionJoin,
		Timestamp:  ts,
	})
	require.NoError(t, err)

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	require.Equal(t, []byte("u1"), msg.Key)
	require.JSONEq(t, `{"player_id":"u1","player_name":"Alice","action":"join","timestamp":"2026-03-02T10:00:00Z"}`, string(msg.Value))
	require.Len(t, msg.Headers, 1)
	require.Equal(t, "event_type", msg.Headers[0].Key)
	require.Equal(t, []byte("presence.join"), msg.Headers[0].Value)
}

func TestPublishReturnsWriterError(t *testing.T) {
	publisher := &Publisher{writer: &stubWriter{err: errors.New("broker down")}, topic: "presence_activity"}

	err := publisher.Publish(context.Background(), domain.ActivityRecord{PlayerID: "u1", Action: domain.ActionExit})
	require.Error(t, err)
}
