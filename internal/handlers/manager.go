package handlers

import (
	"github.com/aequiz/quizbot/internal/config"
	"github.com/aequiz/quizbot/internal/models"
)

// UserStore is the persistence surface the controllers need for users.
type UserStore interface {
	Upsert(telegramID int64) error
	Get(telegramID int64) (*models.User, error)
	SetScore(telegramID int64, score int) error
	SetAdmin(telegramID int64, admin bool) error
}

// QuestionStore holds the ordered five-question set.
type QuestionStore interface {
	ReadAll() ([]models.Question, error)
	ReplaceAll(questions []models.Question) error
	Clear() error
}

// GameToggle is the process-wide ON/OFF flag gating game entry and authoring.
type GameToggle interface {
	Get() (string, error)
	Set(value string) error
}

// Bot interface to avoid circular dependency with the telegram package.
type BotInterface interface {
	SendMessage(chatID int64, text string, keyboard interface{}) int
	GetAnswerKeyboard(options []string) interface{}
	GetRemoveKeyboard() interface{}
}

type HandlerManager struct {
	Config    *config.Config
	Users     UserStore
	Questions QuestionStore
	Toggle    GameToggle
	Sessions  *SessionStore
}

func NewHandlerManager(
	cfg *config.Config,
	users UserStore,
	questions QuestionStore,
	toggle GameToggle,
	sessions *SessionStore,
) *HandlerManager {
	return &HandlerManager{
		Config:    cfg,
		Users:     users,
		Questions: questions,
		Toggle:    toggle,
		Sessions:  sessions,
	}
}
