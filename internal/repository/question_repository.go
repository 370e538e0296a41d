package repository

import (
	"context"

	"github.com/lshigami/quizreview/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionFilter struct {
	Topic      string
	Difficulty string
}

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	CreateBatch(ctx context.Context, questions []model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	FindRandom(ctx context.Context, count int, filter QuestionFilter) ([]model.Question, error)
	ExistsByPrompt(ctx context.Context, prompt string) (bool, error)
	UpdateExplanation(ctx context.Context, id uint, explanation string, keywords datatypes.JSON) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) CreateBatch(ctx context.Context, questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(questions, 100).Error
	})
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// FindRandom relies on RANDOM(), which both Postgres and SQLite provide.
func (r *questionRepository) FindRandom(ctx context.Context, count int, filter QuestionFilter) ([]model.Question, error) {
	var questions []model.Question
	query := r.db.WithContext(ctx).Model(&model.Question{})
	if filter.Topic != "" {
		query = query.Where("topic = ?", filter.Topic)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if err := query.Order("RANDOM()").Limit(count).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) ExistsByPrompt(ctx context.Context, prompt string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Question{}).Where("prompt = ?", prompt).Count(&count).Error
	return count > 0, err
}

// UpdateExplanation overwrites the cached explanation and keywords; the last
// writer wins.
func (r *questionRepository) UpdateExplanation(ctx context.Context, id uint, explanation string, keywords datatypes.JSON) error {
	result := r.db.WithContext(ctx).
		Model(&model.Question{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"explanation": explanation,
			"keywords":    keywords,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
