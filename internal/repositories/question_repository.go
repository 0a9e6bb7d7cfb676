package repositories

import (
	"github.com/aequiz/quizbot/internal/models"
	"github.com/aequiz/quizbot/pkg/errors"
	"gorm.io/gorm"
)

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// ReadAll returns the configured questions in ordinal order.
func (r *QuestionRepository) ReadAll() ([]models.Question, error) {
	var questions []models.Question
	result := r.db.Order("ordinal ASC").Find(&questions)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodePersistence, "failed to read questions")
	}
	return questions, nil
}

// ReplaceAll swaps the stored question set for the given one in a single
// transaction, so concurrent readers never see a partial set.
func (r *QuestionRepository) ReplaceAll(questions []models.Question) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Question{}).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].ID = 0
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrCodePersistence, "failed to replace questions")
	}
	return nil
}

// Clear deletes every stored question.
func (r *QuestionRepository) Clear() error {
	result := r.db.Where("1 = 1").Delete(&models.Question{})
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodePersistence, "failed to clear questions")
	}
	return nil
}
