package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type answerPayload struct {
	Selected []int `json:"selectedAnswers" validate:"required,min=1,answer_indices"`
}

func TestAnswerIndices(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		selected []int
		valid    bool
	}{
		{"single", []int{0}, true},
		{"several", []int{3, 1, 5}, true},
		{"negative", []int{-1}, false},
		{"out of range", []int{6}, false},
		{"duplicate", []int{2, 2}, false},
		{"empty", []int{}, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(answerPayload{Selected: tt.selected})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	v := New()
	err := v.Struct(answerPayload{Selected: []int{9}})
	require.Error(t, err)

	msg := Describe(err, "bad")
	assert.Contains(t, msg, "selectedAnswers")
	assert.Contains(t, msg, "answer_indices")

	assert.Equal(t, "bad", Describe(errors.New("EOF"), "bad"))
}
