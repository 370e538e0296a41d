package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionOptions(t *testing.T) {
	e, f, blank := "e", "f", ""

	q := Question{Option1: "a", Option2: "b", Option3: "c", Option4: "d"}
	assert.Equal(t, []string{"a", "b", "c", "d"}, q.Options())

	q.Option5, q.Option6 = &e, &f
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, q.Options())

	q.Option5 = &blank
	assert.Equal(t, []string{"a", "b", "c", "d"}, q.Options())

	q.Option5 = nil
	assert.Equal(t, []string{"a", "b", "c", "d"}, q.Options())
}
