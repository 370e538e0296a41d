package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/lshigami/quizreview/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillPublisher_DeliversOverGoChannel(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, NewZerologAdapter())
	t.Cleanup(func() { _ = pubSub.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	messages, err := pubSub.Subscribe(ctx, "test.events")
	require.NoError(t, err)

	publisher := NewWatermillPublisher(pubSub, "test.events")
	PublishBestEffort(ctx, publisher, TypeAttemptRecorded, "user-1", AttemptRecordedData{
		AttemptID:  7,
		QuestionID: 3,
		IsCorrect:  false,
		TimeSpent:  42,
	})

	select {
	case msg := <-messages:
		msg.Ack()
		assert.Equal(t, string(TypeAttemptRecorded), msg.Metadata.Get("event_type"))

		var event Event
		require.NoError(t, json.Unmarshal(msg.Payload, &event))
		assert.Equal(t, msg.UUID, event.ID)
		assert.Equal(t, "user-1", event.UserID)

		var data AttemptRecordedData
		require.NoError(t, json.Unmarshal(event.Data, &data))
		assert.Equal(t, uint(7), data.AttemptID)
		assert.Equal(t, 42, data.TimeSpent)
	case <-ctx.Done():
		t.Fatal("timed out waiting for event")
	}
}

func TestNewPublisher_Fallbacks(t *testing.T) {
	for _, kind := range []string{"", "none", "smoke-signals"} {
		p, err := NewPublisher(config.Events{Publisher: kind})
		require.NoError(t, err)
		assert.IsType(t, NopPublisher{}, p)
		assert.NoError(t, p.Publish(context.Background(), &Event{}))
	}
}

func TestPublishBestEffort_NilPublisher(t *testing.T) {
	assert.NotPanics(t, func() {
		PublishBestEffort(context.Background(), nil, TypeAttemptsCleared, "u", AttemptsClearedData{DeletedCount: 1})
	})
}
