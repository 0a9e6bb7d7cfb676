package repositories

import (
	"github.com/aequiz/quizbot/internal/models"
	"github.com/aequiz/quizbot/pkg/errors"
	"gorm.io/gorm"
)

type GameStateRepository struct {
	db *gorm.DB
}

func NewGameStateRepository(db *gorm.DB) *GameStateRepository {
	return &GameStateRepository{db: db}
}

// Get returns the current toggle value, creating the row as OFF on first use.
func (r *GameStateRepository) Get() (string, error) {
	var state models.GameState
	result := r.db.First(&state)

	if result.Error == gorm.ErrRecordNotFound {
		state = models.GameState{State: models.GameOff}
		if err := r.db.Create(&state).Error; err != nil {
			return "", errors.Wrap(err, errors.ErrCodePersistence, "failed to init game state")
		}
		return state.State, nil
	}
	if result.Error != nil {
		return "", errors.Wrap(result.Error, errors.ErrCodePersistence, "failed to read game state")
	}

	return state.State, nil
}

// Set stores the toggle value.
func (r *GameStateRepository) Set(value string) error {
	if value != models.GameOn && value != models.GameOff {
		return errors.New(errors.ErrCodeInternalError, "invalid game state value")
	}

	// Make sure the row exists before updating it
	if _, err := r.Get(); err != nil {
		return err
	}

	result := r.db.Model(&models.GameState{}).Where("1 = 1").Update("state", value)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodePersistence, "failed to set game state")
	}
	return nil
}
