package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCorrect(t *testing.T) {
	tests := []struct {
		name     string
		selected []int
		correct  []int
		want     bool
	}{
		{"same order", []int{1, 3}, []int{1, 3}, true},
		{"reordered", []int{1, 3}, []int{3, 1}, true},
		{"extra selection", []int{1, 3, 2}, []int{1, 3}, false},
		{"missing selection", []int{1}, []int{1, 3}, false},
		{"wrong member", []int{0, 3}, []int{1, 3}, false},
		{"duplicate selection", []int{1, 1}, []int{1, 3}, false},
		{"single correct", []int{2}, []int{2}, true},
		{"empty selection", []int{}, []int{0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCorrect(tt.selected, tt.correct))
		})
	}
}
