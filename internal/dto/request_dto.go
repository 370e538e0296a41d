package dto

// UserQuery carries the explicit user identity for clients without a session.
type UserQuery struct {
	UserID string `form:"userId" binding:"omitempty,max=128"`
}

type RecordAttemptRequest struct {
	QuestionID      uint   `json:"questionId" binding:"required"`
	UserID          string `json:"userId" binding:"omitempty,max=128"`
	SelectedAnswers []int  `json:"selectedAnswers" binding:"required,min=1,answer_indices"`
	// IsCorrect is the client's own verdict. When omitted the server verdict is stored.
	IsCorrect *bool `json:"isCorrect"`
	TimeSpent int   `json:"timeSpent" binding:"min=0"` // seconds
}

type RandomQuestionsQuery struct {
	Count      int    `form:"count"`
	Topic      string `form:"topic"`
	Difficulty string `form:"difficulty"`
}

type ExplanationRequest struct {
	QuestionID     uint     `json:"questionId" binding:"required"`
	Question       string   `json:"question" binding:"required"`
	Options        []string `json:"options" binding:"required,min=2,max=6,dive,required"`
	CorrectAnswers []int    `json:"correctAnswers" binding:"required,min=1,answer_indices"`
}

type SessionRequest struct {
	UserID string `json:"userId" binding:"required,max=128"`
}
