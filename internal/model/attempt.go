package model

import (
	"time"

	"gorm.io/datatypes"
)

// Attempt is one answer submission. Rows are append-only: there is no
// UpdatedAt and no soft delete.
type Attempt struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	UserID          string         `json:"user_id" gorm:"not null;index:idx_attempts_user_created,priority:1"`
	QuestionID      uint           `json:"question_id" gorm:"not null;index"`
	Question        Question       `json:"question" gorm:"foreignKey:QuestionID"`
	SelectedAnswers datatypes.JSON `json:"selected_answers" gorm:"not null"` // encoded []int, 0-based
	IsCorrect       bool           `json:"is_correct" gorm:"not null"`
	TimeSpent       int            `json:"time_spent" gorm:"not null;default:0"` // seconds
	CreatedAt       time.Time      `json:"created_at" gorm:"index:idx_attempts_user_created,priority:2"`
}
