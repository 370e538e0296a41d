package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/quizreview/internal/codec"
	"github.com/lshigami/quizreview/internal/dto"
	"github.com/lshigami/quizreview/internal/importer"
	"github.com/lshigami/quizreview/internal/model"
	"github.com/lshigami/quizreview/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	DefaultQuestionCount = 10
	MaxQuestionCount     = 100
	minOptions           = 4
	maxOptions           = 6
)

var difficulties = map[string]bool{"easy": true, "medium": true, "hard": true}

type QuestionService interface {
	RandomQuestions(ctx context.Context, query dto.RandomQuestionsQuery) ([]dto.QuestionResponse, error)
	GetQuestion(ctx context.Context, id uint) (*dto.QuestionResponse, error)
	CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	ImportQuestions(ctx context.Context, result *importer.Result) (*dto.ImportSummary, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

// ClampCount maps a requested question count onto [1, MaxQuestionCount];
// zero or negative means the default.
func ClampCount(count int) int {
	switch {
	case count <= 0:
		return DefaultQuestionCount
	case count > MaxQuestionCount:
		return MaxQuestionCount
	default:
		return count
	}
}

func (s *questionService) RandomQuestions(ctx context.Context, query dto.RandomQuestionsQuery) ([]dto.QuestionResponse, error) {
	filter := repository.QuestionFilter{
		Topic:      strings.TrimSpace(query.Topic),
		Difficulty: strings.ToLower(strings.TrimSpace(query.Difficulty)),
	}
	questions, err := s.questionRepo.FindRandom(ctx, ClampCount(query.Count), filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load random questions")
		return nil, persistenceError("find random questions", err)
	}

	out := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		resp, err := toQuestionResponse(&questions[i])
		if err != nil {
			return nil, persistenceError("map question", err)
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id uint) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question %d", ErrNotFound, id)
		}
		return nil, persistenceError("find question", err)
	}
	resp, err := toQuestionResponse(question)
	if err != nil {
		return nil, persistenceError("map question", err)
	}
	return &resp, nil
}

func (s *questionService) CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	question, err := buildQuestion(req)
	if err != nil {
		return nil, err
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, persistenceError("create question", err)
	}
	log.Info().Uint("questionId", question.ID).Str("topic", question.Topic).Msg("Question created")

	resp, err := toQuestionResponse(question)
	if err != nil {
		return nil, persistenceError("map question", err)
	}
	return &resp, nil
}

// ImportQuestions stores every valid parsed row. Rows that fail validation
// are reported, rows whose prompt already exists are skipped.
func (s *questionService) ImportQuestions(ctx context.Context, result *importer.Result) (*dto.ImportSummary, error) {
	summary := &dto.ImportSummary{Errors: []dto.ImportRowError{}}
	if result == nil {
		return summary, nil
	}
	summary.Errors = append(summary.Errors, result.Errors...)

	batch := make([]model.Question, 0, len(result.Rows))
	inBatch := make(map[string]bool)
	for _, row := range result.Rows {
		question, err := buildQuestion(row.Request)
		if err != nil {
			summary.Errors = append(summary.Errors, dto.ImportRowError{Row: row.Number, Message: err.Error()})
			continue
		}
		if inBatch[question.Prompt] {
			summary.Skipped++
			continue
		}
		exists, err := s.questionRepo.ExistsByPrompt(ctx, question.Prompt)
		if err != nil {
			return nil, persistenceError("check duplicate question", err)
		}
		if exists {
			summary.Skipped++
			continue
		}
		inBatch[question.Prompt] = true
		batch = append(batch, *question)
	}

	if err := s.questionRepo.CreateBatch(ctx, batch); err != nil {
		log.Error().Err(err).Int("rows", len(batch)).Msg("Failed to import questions")
		return nil, persistenceError("import questions", err)
	}
	summary.Created = len(batch)
	log.Info().
		Int("created", summary.Created).
		Int("skipped", summary.Skipped).
		Int("errors", len(summary.Errors)).
		Msg("Question import finished")
	return summary, nil
}

func buildQuestion(req dto.CreateQuestionRequest) (*model.Question, error) {
	prompt := strings.TrimSpace(req.Question)
	if prompt == "" {
		return nil, validationError("question text is required")
	}
	if len(req.Options) < minOptions || len(req.Options) > maxOptions {
		return nil, validationError("a question needs %d to %d options, got %d", minOptions, maxOptions, len(req.Options))
	}
	options := make([]string, len(req.Options))
	for i, opt := range req.Options {
		options[i] = strings.TrimSpace(opt)
		if options[i] == "" {
			return nil, validationError("option %d is empty", i+1)
		}
	}
	if len(req.CorrectAnswers) == 0 {
		return nil, validationError("at least one correct answer is required")
	}
	if err := checkIndices(req.CorrectAnswers, len(options)); err != nil {
		return nil, err
	}
	difficulty := strings.ToLower(strings.TrimSpace(req.Difficulty))
	if difficulty != "" && !difficulties[difficulty] {
		return nil, validationError("unknown difficulty %q", req.Difficulty)
	}

	correct, err := codec.EncodeIndices(req.CorrectAnswers)
	if err != nil {
		return nil, validationError("correctAnswers: %v", err)
	}
	question := &model.Question{
		Prompt:         prompt,
		CorrectAnswers: correct,
		Topic:          strings.TrimSpace(req.Topic),
		Difficulty:     difficulty,
	}
	question.SetOptions(options)
	if req.Explanation != nil && strings.TrimSpace(*req.Explanation) != "" {
		explanation := strings.TrimSpace(*req.Explanation)
		question.Explanation = &explanation
	}
	return question, nil
}
