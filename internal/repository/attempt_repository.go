package repository

import (
	"context"

	"github.com/lshigami/quizreview/internal/model"
	"gorm.io/gorm"
)

// AttemptRepository is append-only: there is intentionally no Update.
type AttemptRepository interface {
	Create(ctx context.Context, attempt *model.Attempt) error
	FindByID(ctx context.Context, id uint) (*model.Attempt, error)
	FindByUserWithQuestions(ctx context.Context, userID string) ([]model.Attempt, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *model.Attempt) error {
	// Omit the association so a preloaded Question is never re-saved.
	return r.db.WithContext(ctx).Omit("Question").Create(attempt).Error
}

func (r *attemptRepository) FindByID(ctx context.Context, id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	if err := r.db.WithContext(ctx).Preload("Question").First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

// FindByUserWithQuestions returns every attempt of the user, latest first.
// Callers must not rely on the order of rows sharing a timestamp.
func (r *attemptRepository) FindByUserWithQuestions(ctx context.Context, userID string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.WithContext(ctx).
		Preload("Question", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Attempt{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *attemptRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Attempt{})
	return result.RowsAffected, result.Error
}
