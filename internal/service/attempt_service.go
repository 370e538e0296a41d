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
	"github.com/lshigami/quizreview/internal/model"
	"github.com/lshigami/quizreview/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AttemptService interface {
	RecordAttempt(ctx context.Context, userID string, req dto.RecordAttemptRequest) (*dto.AttemptResponse, error)
	IncorrectAttempts(ctx context.Context, userID string) ([]dto.AttemptResponse, error)
	IncorrectAttemptsByDate(ctx context.Context, userID string) ([]dto.IncorrectGroupResponse, error)
	ClearAttempts(ctx context.Context, userID string) (int64, error)
	Stats(ctx context.Context, userID string) (*dto.StatsResponse, error)
}

type attemptService struct {
	attemptRepo  repository.AttemptRepository
	questionRepo repository.QuestionRepository
	publisher    events.Publisher
	verify       bool
	location     *time.Location
}

func NewAttemptService(
	attemptRepo repository.AttemptRepository,
	questionRepo repository.QuestionRepository,
	publisher events.Publisher,
	cfg *config.Config,
) AttemptService {
	loc, err := time.LoadLocation(cfg.Server.ReviewTimezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", cfg.Server.ReviewTimezone).Msg("Unknown review timezone, grouping by UTC")
		loc = time.UTC
	}
	return &attemptService{
		attemptRepo:  attemptRepo,
		questionRepo: questionRepo,
		publisher:    publisher,
		verify:       cfg.Grading.Verify,
		location:     loc,
	}
}

func requireUser(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", validationError("userId is required")
	}
	return userID, nil
}

func (s *attemptService) RecordAttempt(ctx context.Context, userID string, req dto.RecordAttemptRequest) (*dto.AttemptResponse, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return nil, err
	}
	if req.QuestionID == 0 {
		return nil, validationError("questionId is required")
	}
	if len(req.SelectedAnswers) == 0 {
		return nil, validationError("selectedAnswers must not be empty")
	}
	if req.TimeSpent < 0 {
		return nil, validationError("timeSpent must not be negative")
	}

	question, err := s.questionRepo.FindByID(ctx, req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question %d", ErrNotFound, req.QuestionID)
		}
		return nil, persistenceError("find question", err)
	}
	if err := checkIndices(req.SelectedAnswers, len(question.Options())); err != nil {
		return nil, err
	}

	correct, err := codec.DecodeIndices(question.CorrectAnswers)
	if err != nil {
		return nil, persistenceError("decode correct answers", err)
	}
	serverVerdict := IsCorrect(req.SelectedAnswers, correct)
	isCorrect := serverVerdict
	if req.IsCorrect != nil {
		isCorrect = *req.IsCorrect
		if isCorrect != serverVerdict {
			log.Warn().
				Str("userId", userID).
				Uint("questionId", question.ID).
				Bool("client", isCorrect).
				Bool("server", serverVerdict).
				Bool("override", s.verify).
				Msg("Client correctness flag disagrees with server grading")
			if s.verify {
				isCorrect = serverVerdict
			}
		}
	}

	selected, err := codec.EncodeIndices(req.SelectedAnswers)
	if err != nil {
		return nil, validationError("selectedAnswers: %v", err)
	}
	attempt := model.Attempt{
		UserID:          userID,
		QuestionID:      question.ID,
		SelectedAnswers: selected,
		IsCorrect:       isCorrect,
		TimeSpent:       req.TimeSpent,
	}
	if err := s.attemptRepo.Create(ctx, &attempt); err != nil {
		log.Error().Err(err).Str("userId", userID).Uint("questionId", question.ID).Msg("Failed to store attempt")
		return nil, persistenceError("create attempt", err)
	}
	attempt.Question = *question

	events.PublishBestEffort(ctx, s.publisher, events.TypeAttemptRecorded, userID, events.AttemptRecordedData{
		AttemptID:  attempt.ID,
		QuestionID: attempt.QuestionID,
		IsCorrect:  attempt.IsCorrect,
		TimeSpent:  attempt.TimeSpent,
	})

	resp, err := toAttemptResponse(&attempt)
	if err != nil {
		return nil, persistenceError("map attempt", err)
	}
	return &resp, nil
}

// checkIndices rejects indices outside the question's options and repeats.
func checkIndices(indices []int, optionCount int) error {
	seen := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= optionCount {
			return validationError("answer index %d out of range for %d options", idx, optionCount)
		}
		if _, dup := seen[idx]; dup {
			return validationError("answer index %d repeated", idx)
		}
		seen[idx] = struct{}{}
	}
	return nil
}

func (s *attemptService) stillIncorrect(ctx context.Context, userID string) ([]model.Attempt, error) {
	attempts, err := s.attemptRepo.FindByUserWithQuestions(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("Failed to load attempts")
		return nil, persistenceError("find attempts", err)
	}
	return ReduceToStillIncorrect(attempts), nil
}

func (s *attemptService) IncorrectAttempts(ctx context.Context, userID string) ([]dto.AttemptResponse, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return nil, err
	}
	latest, err := s.stillIncorrect(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp, err := toAttemptResponses(latest)
	if err != nil {
		return nil, persistenceError("map attempts", err)
	}
	return resp, nil
}

func (s *attemptService) IncorrectAttemptsByDate(ctx context.Context, userID string) ([]dto.IncorrectGroupResponse, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return nil, err
	}
	latest, err := s.stillIncorrect(ctx, userID)
	if err != nil {
		return nil, err
	}

	groups := GroupByDate(latest, s.location)
	out := make([]dto.IncorrectGroupResponse, 0, len(groups))
	for _, group := range groups {
		attempts, err := toAttemptResponses(group.Attempts)
		if err != nil {
			return nil, persistenceError("map attempts", err)
		}
		out = append(out, dto.IncorrectGroupResponse{Date: group.Date, Attempts: attempts})
	}
	return out, nil
}

func (s *attemptService) ClearAttempts(ctx context.Context, userID string) (int64, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return 0, err
	}
	deleted, err := s.attemptRepo.DeleteByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("Failed to clear attempts")
		return 0, persistenceError("delete attempts", err)
	}
	log.Info().Str("userId", userID).Int64("deleted", deleted).Msg("Cleared attempt history")

	events.PublishBestEffort(ctx, s.publisher, events.TypeAttemptsCleared, userID, events.AttemptsClearedData{
		DeletedCount: deleted,
	})
	return deleted, nil
}

func (s *attemptService) Stats(ctx context.Context, userID string) (*dto.StatsResponse, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return nil, err
	}
	attempts, err := s.attemptRepo.FindByUserWithQuestions(ctx, userID)
	if err != nil {
		return nil, persistenceError("find attempts", err)
	}

	stats := &dto.StatsResponse{UserID: userID, TotalAttempts: len(attempts)}
	questions := make(map[uint]struct{})
	for _, a := range attempts {
		if a.IsCorrect {
			stats.CorrectAttempts++
		}
		stats.TotalTimeSpent += a.TimeSpent
		questions[a.QuestionID] = struct{}{}
	}
	stats.QuestionsAttempted = len(questions)
	stats.StillIncorrect = len(ReduceToStillIncorrect(attempts))
	if stats.TotalAttempts > 0 {
		stats.Accuracy = float64(stats.CorrectAttempts) / float64(stats.TotalAttempts)
	}
	return stats, nil
}
