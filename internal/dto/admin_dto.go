package dto

// CreateQuestionRequest is used by admins to add a single question.
type CreateQuestionRequest struct {
	Question       string   `json:"question" binding:"required"`
	Options        []string `json:"options" binding:"required,min=4,max=6,dive,required"`
	CorrectAnswers []int    `json:"correctAnswers" binding:"required,min=1,answer_indices"`
	Explanation    *string  `json:"explanation"`
	Topic          string   `json:"topic" binding:"omitempty,max=100"`
	Difficulty     string   `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
}

type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportSummary reports the outcome of a spreadsheet import.
type ImportSummary struct {
	Created int              `json:"created"`
	Skipped int              `json:"skipped"`
	Errors  []ImportRowError `json:"errors"`
}
