package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/quizreview/internal/codec"
	"github.com/lshigami/quizreview/internal/dto"
	"github.com/lshigami/quizreview/internal/model"
)

// toQuestionResponse copies scalar fields and decodes the stored arrays.
func toQuestionResponse(q *model.Question) (dto.QuestionResponse, error) {
	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, q); err != nil {
		return resp, fmt.Errorf("copy question %d: %w", q.ID, err)
	}
	resp.Question = q.Prompt

	correct, err := codec.DecodeIndices(q.CorrectAnswers)
	if err != nil {
		return resp, fmt.Errorf("question %d correct answers: %w", q.ID, err)
	}
	keywords, err := codec.DecodeStrings(q.Keywords)
	if err != nil {
		return resp, fmt.Errorf("question %d keywords: %w", q.ID, err)
	}
	resp.CorrectAnswers = correct
	resp.Keywords = keywords
	return resp, nil
}

func toAttemptResponse(a *model.Attempt) (dto.AttemptResponse, error) {
	var resp dto.AttemptResponse
	if err := copier.Copy(&resp, a); err != nil {
		return resp, fmt.Errorf("copy attempt %d: %w", a.ID, err)
	}
	selected, err := codec.DecodeIndices(a.SelectedAnswers)
	if err != nil {
		return resp, fmt.Errorf("attempt %d selected answers: %w", a.ID, err)
	}
	resp.SelectedAnswers = selected

	question, err := toQuestionResponse(&a.Question)
	if err != nil {
		return resp, err
	}
	resp.Question = question
	return resp, nil
}

func toAttemptResponses(attempts []model.Attempt) ([]dto.AttemptResponse, error) {
	out := make([]dto.AttemptResponse, 0, len(attempts))
	for i := range attempts {
		resp, err := toAttemptResponse(&attempts[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
