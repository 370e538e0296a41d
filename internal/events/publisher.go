package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill-kafka/v2/pkg/kafka"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/lshigami/quizreview/config"
	"github.com/rs/zerolog/log"
)

type Publisher interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}

// WatermillPublisher adapts any watermill message.Publisher (Kafka, Go channel).
type WatermillPublisher struct {
	publisher message.Publisher
	topic     string
}

func NewWatermillPublisher(publisher message.Publisher, topic string) *WatermillPublisher {
	return &WatermillPublisher{publisher: publisher, topic: topic}
}

func (p *WatermillPublisher) Publish(ctx context.Context, event *Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(event.ID, body)
	msg.SetContext(ctx)
	msg.Metadata.Set("event_type", string(event.Type))
	msg.Metadata.Set("source", event.Source)
	msg.Metadata.Set("version", event.Version)
	msg.Metadata.Set("timestamp", event.Timestamp.Format(time.RFC3339))

	if err := p.publisher.Publish(p.topic, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	log.Debug().Str("event_id", event.ID).Str("event_type", string(event.Type)).Str("topic", p.topic).Msg("Published event")
	return nil
}

func (p *WatermillPublisher) Close() error {
	return p.publisher.Close()
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *Event) error { return nil }
func (NopPublisher) Close() error                          { return nil }

// NewPublisher builds the publisher selected by EVENTS_PUBLISHER. Unknown
// values fall back to the no-op publisher.
func NewPublisher(cfg config.Events) (Publisher, error) {
	logger := NewZerologAdapter()

	switch cfg.Publisher {
	case "kafka":
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.Topic).Msg("Creating Kafka event publisher")
		pub, err := kafka.NewPublisher(kafka.PublisherConfig{
			Brokers:   cfg.KafkaBrokers,
			Marshaler: kafka.DefaultMarshaler{},
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create Kafka publisher: %w", err)
		}
		return NewWatermillPublisher(pub, cfg.Topic), nil
	case "gochannel":
		log.Info().Str("topic", cfg.Topic).Msg("Using in-process event publisher")
		pubSub := gochannel.NewGoChannel(gochannel.Config{}, logger)
		return NewWatermillPublisher(pubSub, cfg.Topic), nil
	case "none", "":
		return NopPublisher{}, nil
	default:
		log.Warn().Str("publisher", cfg.Publisher).Msg("Unknown event publisher type, events disabled")
		return NopPublisher{}, nil
	}
}

// PublishBestEffort builds and publishes an event, logging instead of
// returning failures so the calling request is never affected.
func PublishBestEffort(ctx context.Context, p Publisher, t Type, userID string, data any) {
	if p == nil {
		return
	}
	event, err := New(t, userID, data)
	if err != nil {
		log.Warn().Err(err).Str("event_type", string(t)).Msg("Failed to build event")
		return
	}
	if err := p.Publish(ctx, event); err != nil {
		log.Warn().Err(err).Str("event_type", string(t)).Msg("Failed to publish event")
	}
}
