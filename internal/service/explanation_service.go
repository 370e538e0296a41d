package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lshigami/quizreview/config"
	"github.com/lshigami/quizreview/internal/codec"
	"github.com/lshigami/quizreview/internal/dto"
	"github.com/lshigami/quizreview/internal/events"
	"github.com/lshigami/quizreview/internal/llm"
	"github.com/lshigami/quizreview/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PlaceholderExplanation is returned when no usable credential is configured.
const PlaceholderExplanation = "AI explanations need a valid API key for the language model provider. Please contact the administrator."

var (
	PlaceholderKeywords = []string{"AWS", "SAA-C03"}
	DefaultKeywords     = []string{"AWS", "Cloud Architecture"}
)

type ExplanationService interface {
	GenerateAndCache(ctx context.Context, req dto.ExplanationRequest) (*dto.ExplanationResponse, error)
}

type explanationService struct {
	provider     llm.Provider
	questionRepo repository.QuestionRepository
	publisher    events.Publisher
	timeout      time.Duration
	exam         string
}

// NewExplanationService accepts a nil provider, meaning no usable credential.
func NewExplanationService(
	provider llm.Provider,
	questionRepo repository.QuestionRepository,
	publisher events.Publisher,
	cfg *config.Config,
) ExplanationService {
	timeout := cfg.LLM.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	exam := cfg.LLM.ExamName
	if exam == "" {
		exam = "AWS SAA-C03"
	}
	return &explanationService{
		provider:     provider,
		questionRepo: questionRepo,
		publisher:    publisher,
		timeout:      timeout,
		exam:         exam,
	}
}

func (s *explanationService) GenerateAndCache(ctx context.Context, req dto.ExplanationRequest) (*dto.ExplanationResponse, error) {
	if req.QuestionID == 0 {
		return nil, validationError("questionId is required")
	}
	if strings.TrimSpace(req.Question) == "" {
		return nil, validationError("question text is required")
	}
	if len(req.Options) == 0 {
		return nil, validationError("options are required")
	}
	if len(req.CorrectAnswers) == 0 {
		return nil, validationError("correctAnswers are required")
	}
	if err := checkIndices(req.CorrectAnswers, len(req.Options)); err != nil {
		return nil, err
	}

	if s.provider == nil {
		log.Warn().Uint("questionId", req.QuestionID).Msg("No usable LLM credential, returning placeholder explanation")
		return &dto.ExplanationResponse{
			Explanation: PlaceholderExplanation,
			Keywords:    append([]string(nil), PlaceholderKeywords...),
		}, nil
	}

	if _, err := s.questionRepo.FindByID(ctx, req.QuestionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question %d", ErrNotFound, req.QuestionID)
		}
		return nil, persistenceError("find question", err)
	}

	explanation, err := s.explain(ctx, req)
	if err != nil {
		log.Error().Err(err).Uint("questionId", req.QuestionID).Msg("Explanation generation failed")
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	keywords, fallback := s.keywords(ctx, req)

	encoded, err := codec.EncodeStrings(keywords)
	if err != nil {
		return nil, persistenceError("encode keywords", err)
	}
	if err := s.questionRepo.UpdateExplanation(ctx, req.QuestionID, explanation, encoded); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question %d", ErrNotFound, req.QuestionID)
		}
		log.Error().Err(err).Uint("questionId", req.QuestionID).Msg("Failed to cache explanation")
		return nil, persistenceError("update explanation", err)
	}

	events.PublishBestEffort(ctx, s.publisher, events.TypeExplanationGenerated, "", events.ExplanationGeneratedData{
		QuestionID:   req.QuestionID,
		KeywordCount: len(keywords),
		Fallback:     fallback,
	})
	return &dto.ExplanationResponse{Explanation: explanation, Keywords: keywords}, nil
}

// Each stage runs under its own timeout.
func (s *explanationService) explain(ctx context.Context, req dto.ExplanationRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.provider.Generate(llm.WithPurpose(ctx, "explanation"), llm.UserPrompt(
		fmt.Sprintf(explanationSystem, s.exam),
		explanationPrompt(s.exam, req.Question, req.Options, req.CorrectAnswers),
		explanationMaxTokens,
		explanationTemperature,
	))
	if err != nil {
		return "", err
	}
	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return "", &llm.ErrInvalidResponse{Content: resp.Content, Err: errors.New("empty explanation")}
	}
	return content, nil
}

// keywords never fails: any error yields DefaultKeywords and fallback=true.
func (s *explanationService) keywords(ctx context.Context, req dto.ExplanationRequest) ([]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.provider.Generate(llm.WithPurpose(ctx, "keywords"), llm.UserPrompt(
		fmt.Sprintf(keywordSystem, s.exam),
		keywordPrompt(s.exam, req.Question, req.Options, req.CorrectAnswers),
		keywordMaxTokens,
		keywordTemperature,
	))
	if err != nil {
		log.Warn().Err(err).Uint("questionId", req.QuestionID).Msg("Keyword extraction failed, using defaults")
		return append([]string(nil), DefaultKeywords...), true
	}
	keywords, err := llm.ParseKeywords(resp.Content)
	if err != nil {
		log.Warn().Err(err).Uint("questionId", req.QuestionID).Msg("Failed to parse keywords, using defaults")
		return append([]string(nil), DefaultKeywords...), true
	}
	return keywords, false
}
