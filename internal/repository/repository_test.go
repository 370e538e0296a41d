package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/quizreview/database"
	"github.com/lshigami/quizreview/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedQuestion(t *testing.T, repo QuestionRepository, prompt, topic, difficulty string) *model.Question {
	t.Helper()
	q := &model.Question{
		Prompt:         prompt,
		CorrectAnswers: datatypes.JSON("[1]"),
		Topic:          topic,
		Difficulty:     difficulty,
	}
	q.SetOptions([]string{"a", "b", "c", "d"})
	require.NoError(t, repo.Create(context.Background(), q))
	return q
}

func TestAttemptRepository_FindByUserWithQuestions(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	questions := NewQuestionRepository(db)
	attempts := NewAttemptRepository(db)
	q := seedQuestion(t, questions, "q1", "storage", "easy")

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, offset := range []int{1, 3, 2} {
		require.NoError(t, attempts.Create(ctx, &model.Attempt{
			UserID:          "u1",
			QuestionID:      q.ID,
			SelectedAnswers: datatypes.JSON("[0]"),
			IsCorrect:       i == 1,
			CreatedAt:       base.Add(time.Duration(offset) * time.Minute),
		}))
	}
	require.NoError(t, attempts.Create(ctx, &model.Attempt{
		UserID: "u2", QuestionID: q.ID, SelectedAnswers: datatypes.JSON("[1]"), IsCorrect: true,
	}))

	got, err := attempts.FindByUserWithQuestions(ctx, "u1")

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))
	assert.True(t, got[1].CreatedAt.After(got[2].CreatedAt))
	assert.Equal(t, "q1", got[0].Question.Prompt)
	assert.True(t, got[0].IsCorrect)
}

func TestAttemptRepository_DeleteByUser(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	q := seedQuestion(t, NewQuestionRepository(db), "q1", "", "")
	attempts := NewAttemptRepository(db)

	for _, user := range []string{"u1", "u1", "u2"} {
		require.NoError(t, attempts.Create(ctx, &model.Attempt{UserID: user, QuestionID: q.ID, SelectedAnswers: datatypes.JSON("[0]")}))
	}
	before, err := attempts.CountByUser(ctx, "u1")
	require.NoError(t, err)

	deleted, err := attempts.DeleteByUser(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, before, deleted)
	remaining, err := attempts.FindByUserWithQuestions(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, remaining)
	others, err := attempts.CountByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), others)
}

func TestQuestionRepository_FindRandom(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewQuestionRepository(db)
	for i, topic := range []string{"storage", "storage", "network", "storage"} {
		seedQuestion(t, repo, "q"+string(rune('a'+i)), topic, "easy")
	}

	all, err := repo.FindRandom(ctx, 10, QuestionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	limited, err := repo.FindRandom(ctx, 2, QuestionFilter{Topic: "storage"})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	for _, q := range limited {
		assert.Equal(t, "storage", q.Topic)
	}

	none, err := repo.FindRandom(ctx, 5, QuestionFilter{Difficulty: "hard"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestQuestionRepository_UpdateExplanation(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewQuestionRepository(db)
	q := seedQuestion(t, repo, "q1", "", "")

	require.NoError(t, repo.UpdateExplanation(ctx, q.ID, "first", datatypes.JSON(`["a"]`)))
	require.NoError(t, repo.UpdateExplanation(ctx, q.ID, "second", datatypes.JSON(`["b","c"]`)))

	got, err := repo.FindByID(ctx, q.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Explanation)
	assert.Equal(t, "second", *got.Explanation)
	assert.JSONEq(t, `["b","c"]`, string(got.Keywords))

	err = repo.UpdateExplanation(ctx, 9999, "x", datatypes.JSON(`[]`))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestQuestionRepository_CreateBatchAndExists(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewQuestionRepository(db)

	batch := make([]model.Question, 2)
	for i, prompt := range []string{"first", "second"} {
		batch[i] = model.Question{Prompt: prompt, CorrectAnswers: datatypes.JSON("[0]")}
		batch[i].SetOptions([]string{"a", "b", "c", "d", "e"})
	}
	require.NoError(t, repo.CreateBatch(ctx, batch))
	require.NoError(t, repo.CreateBatch(ctx, nil))

	exists, err := repo.ExistsByPrompt(ctx, "second")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByPrompt(ctx, "third")
	require.NoError(t, err)
	assert.False(t, exists)

	stored, err := repo.FindByID(ctx, batch[0].ID)
	require.NoError(t, err)
	assert.Len(t, stored.Options(), 5)
}
