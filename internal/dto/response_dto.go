package dto

import "time"

type QuestionResponse struct {
	ID             uint      `json:"id"`
	Question       string    `json:"question" copier:"-"`
	Option1        string    `json:"option1"`
	Option2        string    `json:"option2"`
	Option3        string    `json:"option3"`
	Option4        string    `json:"option4"`
	Option5        *string   `json:"option5,omitempty"`
	Option6        *string   `json:"option6,omitempty"`
	CorrectAnswers []int     `json:"correctAnswers" copier:"-"`
	Explanation    *string   `json:"explanation,omitempty"`
	Keywords       []string  `json:"keywords" copier:"-"`
	Topic          string    `json:"topic"`
	Difficulty     string    `json:"difficulty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type AttemptResponse struct {
	ID              uint             `json:"id"`
	UserID          string           `json:"userId"`
	QuestionID      uint             `json:"questionId"`
	SelectedAnswers []int            `json:"selectedAnswers" copier:"-"`
	IsCorrect       bool             `json:"isCorrect"`
	TimeSpent       int              `json:"timeSpent"`
	CreatedAt       time.Time        `json:"createdAt"`
	Question        QuestionResponse `json:"question" copier:"-"`
}

// IncorrectGroupResponse is one review-page bucket: still-incorrect attempts
// whose latest submission fell on Date.
type IncorrectGroupResponse struct {
	Date     string            `json:"date"`
	Attempts []AttemptResponse `json:"attempts"`
}

type ClearResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

type StatsResponse struct {
	UserID             string  `json:"userId"`
	TotalAttempts      int     `json:"totalAttempts"`
	CorrectAttempts    int     `json:"correctAttempts"`
	Accuracy           float64 `json:"accuracy"` // 0..1
	TotalTimeSpent     int     `json:"totalTimeSpent"`
	QuestionsAttempted int     `json:"questionsAttempted"`
	StillIncorrect     int     `json:"stillIncorrect"`
}

type ExplanationResponse struct {
	Explanation string   `json:"explanation"`
	Keywords    []string `json:"keywords"`
}

type SessionResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
