package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Question struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Prompt         string         `json:"question" gorm:"type:text;not null"`
	Option1        string         `json:"option1" gorm:"type:text;not null"`
	Option2        string         `json:"option2" gorm:"type:text;not null"`
	Option3        string         `json:"option3" gorm:"type:text;not null"`
	Option4        string         `json:"option4" gorm:"type:text;not null"`
	Option5        *string        `json:"option5,omitempty" gorm:"type:text"`
	Option6        *string        `json:"option6,omitempty" gorm:"type:text"`
	CorrectAnswers datatypes.JSON `json:"correct_answers" gorm:"not null"` // encoded []int, 0-based
	Explanation    *string        `json:"explanation,omitempty" gorm:"type:text"`
	Keywords       datatypes.JSON `json:"keywords,omitempty"` // encoded []string
	Topic          string         `json:"topic" gorm:"index"`
	Difficulty     string         `json:"difficulty" gorm:"index"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// Options returns the four mandatory options followed by the optional ones.
// Option6 is ignored when Option5 is empty so answer indices never shift.
func (q *Question) Options() []string {
	opts := []string{q.Option1, q.Option2, q.Option3, q.Option4}
	if q.Option5 == nil || *q.Option5 == "" {
		return opts
	}
	opts = append(opts, *q.Option5)
	if q.Option6 != nil && *q.Option6 != "" {
		opts = append(opts, *q.Option6)
	}
	return opts
}

// SetOptions spreads opts over the option columns. Callers validate the
// 4..6 range beforehand.
func (q *Question) SetOptions(opts []string) {
	get := func(i int) string {
		if i < len(opts) {
			return opts[i]
		}
		return ""
	}
	q.Option1, q.Option2, q.Option3, q.Option4 = get(0), get(1), get(2), get(3)
	q.Option5, q.Option6 = nil, nil
	if len(opts) > 4 {
		v := opts[4]
		q.Option5 = &v
	}
	if len(opts) > 5 {
		v := opts[5]
		q.Option6 = &v
	}
}
