// Package relay mirrors appended activity records onto a Kafka topic for
// downstream consumers. It is optional; the bot runs without brokers.
package relay

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"example.com/presence/internal/domain"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes presence records to a single topic.
type Publisher struct {
	writer messageWriter
	topic  string
}

// NewPublisher constructs a Publisher for the given brokers and topic.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		},
		topic: topic,
	}
}

// activityPayload is the JSON body published per record.
type activityPayload struct {
	PlayerID   string    `json:"player_id"`
	PlayerName string    `json:"player_name"`
	Action     string    `json:"action"`
	Timestamp  time.Time `json:"timestamp"`
}

// Publish writes one record, keyed by player so per-player ordering is
// preserved across partitions.
func (p *Publisher) Publish(ctx context.Context, record domain.ActivityRecord) error {
	body, err := json.Marshal(activityPayload{
		PlayerID:   record.PlayerID,
		PlayerName: record.PlayerName,
		Action:     string(record.Action),
		Timestamp:  record.Timestamp,
	})
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(record.PlayerID),
		Value: body,
		Time:  record.Timestamp,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("presence." + string(record.Action))},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		recordPublishFailed()
		return err
	}
	recordPublished(string(record.Action))
	return nil
}

// Close releases the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
