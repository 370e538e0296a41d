package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/quizreview/internal/dto"
	"github.com/lshigami/quizreview/internal/importer"
	"github.com/lshigami/quizreview/internal/model"
	"github.com/lshigami/quizreview/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClampCount(t *testing.T) {
	assert.Equal(t, 10, ClampCount(0))
	assert.Equal(t, 10, ClampCount(-5))
	assert.Equal(t, 1, ClampCount(1))
	assert.Equal(t, 42, ClampCount(42))
	assert.Equal(t, 100, ClampCount(100))
	assert.Equal(t, 100, ClampCount(5000))
}

func TestRandomQuestions(t *testing.T) {
	questions := new(MockQuestionRepository)
	ctx := context.Background()
	filter := repository.QuestionFilter{Topic: "storage", Difficulty: "easy"}
	questions.On("FindRandom", ctx, 100, filter).Return([]model.Question{*testQuestion(1, "[1]")}, nil)

	svc := NewQuestionService(questions)
	got, err := svc.RandomQuestions(ctx, dto.RandomQuestionsQuery{Count: 500, Topic: " storage ", Difficulty: "EASY"})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []int{1}, got[0].CorrectAnswers)
	assert.Equal(t, []string{}, got[0].Keywords)
	assert.Equal(t, "S3", got[0].Option2)
	questions.AssertExpectations(t)
}

func TestGetQuestion(t *testing.T) {
	questions := new(MockQuestionRepository)
	ctx := context.Background()
	questions.On("FindByID", ctx, uint(1)).Return(testQuestion(1, "[0,2]"), nil)
	questions.On("FindByID", ctx, uint(2)).Return(nil, gorm.ErrRecordNotFound)
	questions.On("FindByID", ctx, uint(3)).Return(nil, errors.New("timeout"))

	svc := NewQuestionService(questions)

	got, err := svc.GetQuestion(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, got.CorrectAnswers)

	_, err = svc.GetQuestion(ctx, 2)
	assert.True(t, IsNotFound(err))

	_, err = svc.GetQuestion(ctx, 3)
	assert.True(t, IsPersistence(err))
}

func TestCreateQuestion(t *testing.T) {
	questions := new(MockQuestionRepository)
	ctx := context.Background()
	questions.On("Create", ctx, mock.AnythingOfType("*model.Question")).
		Run(func(args mock.Arguments) { args.Get(1).(*model.Question).ID = 11 }).
		Return(nil)

	svc := NewQuestionService(questions)
	got, err := svc.CreateQuestion(ctx, dto.CreateQuestionRequest{
		Question:       "Pick two",
		Options:        []string{"a", "b", "c", "d", "e"},
		CorrectAnswers: []int{4, 0},
		Difficulty:     "Hard",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(11), got.ID)
	require.NotNil(t, got.Option5)
	assert.Equal(t, "e", *got.Option5)
	assert.Nil(t, got.Option6)
	assert.Equal(t, []int{4, 0}, got.CorrectAnswers)
	assert.Equal(t, "hard", got.Difficulty)
}

func TestCreateQuestion_Validation(t *testing.T) {
	svc := NewQuestionService(new(MockQuestionRepository))
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreateQuestionRequest
	}{
		{"blank text", dto.CreateQuestionRequest{Question: " ", Options: []string{"a", "b", "c", "d"}, CorrectAnswers: []int{0}}},
		{"three options", dto.CreateQuestionRequest{Question: "q", Options: []string{"a", "b", "c"}, CorrectAnswers: []int{0}}},
		{"seven options", dto.CreateQuestionRequest{Question: "q", Options: []string{"a", "b", "c", "d", "e", "f", "g"}, CorrectAnswers: []int{0}}},
		{"empty option", dto.CreateQuestionRequest{Question: "q", Options: []string{"a", "", "c", "d"}, CorrectAnswers: []int{0}}},
		{"no answer", dto.CreateQuestionRequest{Question: "q", Options: []string{"a", "b", "c", "d"}}},
		{"answer out of range", dto.CreateQuestionRequest{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswers: []int{4}}},
		{"bad difficulty", dto.CreateQuestionRequest{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswers: []int{0}, Difficulty: "extreme"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateQuestion(ctx, tt.req)
			assert.True(t, IsValidation(err), "got %v", err)
		})
	}
}

func TestImportQuestions(t *testing.T) {
	questions := new(MockQuestionRepository)
	ctx := context.Background()
	questions.On("ExistsByPrompt", ctx, "new one").Return(false, nil)
	questions.On("ExistsByPrompt", ctx, "already there").Return(true, nil)
	questions.On("CreateBatch", ctx, mock.MatchedBy(func(batch []model.Question) bool {
		return len(batch) == 1 && batch[0].Prompt == "new one"
	})).Return(nil)

	opts := []string{"a", "b", "c", "d"}
	result := &importer.Result{
		Rows: []importer.Row{
			{Number: 2, Request: dto.CreateQuestionRequest{Question: "new one", Options: opts, CorrectAnswers: []int{0}}},
			{Number: 3, Request: dto.CreateQuestionRequest{Question: "already there", Options: opts, CorrectAnswers: []int{1}}},
			{Number: 4, Request: dto.CreateQuestionRequest{Question: "new one", Options: opts, CorrectAnswers: []int{0}}},
			{Number: 5, Request: dto.CreateQuestionRequest{Question: "bad", Options: opts[:2], CorrectAnswers: []int{0}}},
		},
		Errors: []dto.ImportRowError{{Row: 6, Message: "correct answers are empty"}},
	}

	svc := NewQuestionService(questions)
	summary, err := svc.ImportQuestions(ctx, result)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 2, summary.Skipped)
	require.Len(t, summary.Errors, 2)
	assert.Equal(t, 6, summary.Errors[0].Row)
	assert.Equal(t, 5, summary.Errors[1].Row)
	questions.AssertExpectations(t)
}
