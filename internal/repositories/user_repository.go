package repositories

import (
	"github.com/aequiz/quizbot/internal/models"
	"github.com/aequiz/quizbot/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert creates the user with a zero score on first contact. An existing
// user is left untouched.
func (r *UserRepository) Upsert(telegramID int64) error {
	user := models.User{TelegramID: telegramID, Score: 0}
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "telegram_id"}},
		DoNothing: true,
	}).Create(&user)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodePersistence, "failed to upsert user")
	}
	return nil
}

// Get retrieves a user by Telegram ID.
func (r *UserRepository) Get(telegramID int64) (*models.User, error) {
	var user models.User
	result := r.db.Where("telegram_id = ?", telegramID).First(&user)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "user not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodePersistence, "failed to get user")
	}

	return &user, nil
}

// SetScore writes the user's persisted game score.
func (r *UserRepository) SetScore(telegramID int64, score int) error {
	result := r.db.Model(&models.User{}).Where("telegram_id = ?", telegramID).Update("score", score)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodePersistence, "failed to set score")
	}
	return nil
}

// SetAdmin flips the user's admin flag.
func (r *UserRepository) SetAdmin(telegramID int64, admin bool) error {
	result := r.db.Model(&models.User{}).Where("telegram_id = ?", telegramID).Update("is_admin", admin)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodePersistence, "failed to set admin flag")
	}
	return nil
}
