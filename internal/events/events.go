// Package events publishes domain events (attempt recorded, explanation
// generated) to a message bus. Publishing is best effort.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeAttemptRecorded      Type = "attempt.recorded"
	TypeAttemptsCleared      Type = "attempts.cleared"
	TypeExplanationGenerated Type = "explanation.generated"
)

const (
	sourceName   = "quizreview"
	eventVersion = "1"
)

type Event struct {
	ID        string          `json:"id"`
	Type      Type            `json:"type"`
	Source    string          `json:"source"`
	Version   string          `json:"version"`
	Timestamp time.Time       `json:"timestamp"`
	UserID    string          `json:"user_id,omitempty"`
	Data      json.RawMessage `json:"data"`
}

type AttemptRecordedData struct {
	AttemptID  uint `json:"attempt_id"`
	QuestionID uint `json:"question_id"`
	IsCorrect  bool `json:"is_correct"`
	TimeSpent  int  `json:"time_spent"`
}

type AttemptsClearedData struct {
	DeletedCount int64 `json:"deleted_count"`
}

type ExplanationGeneratedData struct {
	QuestionID   uint `json:"question_id"`
	KeywordCount int  `json:"keyword_count"`
	Fallback     bool `json:"keywords_fallback"`
}

func New(t Type, userID string, data any) (*Event, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", t, err)
	}
	return &Event{
		ID:        uuid.NewString(),
		Type:      t,
		Source:    sourceName,
		Version:   eventVersion,
		Timestamp: time.Now().UTC(),
		UserID:    userID,
		Data:      payload,
	}, nil
}
