package telegram

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/aequiz/quizbot/internal/config"
	"github.com/aequiz/quizbot/internal/handlers"
	"github.com/aequiz/quizbot/internal/middleware"
	"github.com/aequiz/quizbot/internal/models"
	"github.com/aequiz/quizbot/internal/repositories"
	apperrors "github.com/aequiz/quizbot/pkg/errors"
	"github.com/aequiz/quizbot/pkg/logger"
	"gorm.io/gorm"
)

const workerCount = 10

type Bot struct {
	api      *tgbotapi.BotAPI
	config   *config.Config
	handlers *handlers.HandlerManager
	limiter  *middleware.RateLimiter

	// Worker pool; updates are hashed by user ID so each user's messages
	// are processed in order, one at a time
	workerChans []chan tgbotapi.Update
}

func InitBot(cfg *config.Config, db *gorm.DB) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	if cfg.AppEnv == "development" {
		api.Debug = true
	}

	logger.Info("Authorized on account", "username", api.Self.UserName)

	userRepo := repositories.NewUserRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	stateRepo := repositories.NewGameStateRepository(db)
	sessions := handlers.NewSessionStore()

	handlerMgr := handlers.NewHandlerManager(cfg, userRepo, questionRepo, stateRepo, sessions)

	bot := &Bot{
		api:         api,
		config:      cfg,
		handlers:    handlerMgr,
		limiter:     middleware.NewRateLimiter(cfg.RateLimitPerUser, cfg.GetRateLimitWindow()),
		workerChans: make([]chan tgbotapi.Update, workerCount),
	}

	for i := 0; i < workerCount; i++ {
		bot.workerChans[i] = make(chan tgbotapi.Update, 100)
		go bot.startWorker(bot.workerChans[i])
	}

	go bot.startUpdateListener()

	return bot, nil
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

func (b *Bot) startUpdateListener() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	logger.Info("Starting update listener...")
	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || update.Message.From == nil {
			continue
		}

		userID := update.Message.From.ID
		workerIdx := userID % int64(len(b.workerChans))
		if workerIdx < 0 {
			workerIdx = -workerIdx
		}
		b.workerChans[workerIdx] <- update
	}
}

func (b *Bot) startWorker(updates <-chan tgbotapi.Update) {
	for update := range updates {
		b.handleUpdate(update)
	}
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic in handleUpdate", "error", r)
		}
	}()

	b.handleMessage(update.Message)
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	userID := message.From.ID

	if !b.limiter.Allow(userID) {
		logger.Warn("Rate limit exceeded", "user_id", userID)
		return
	}

	logger.Debug("Received message",
		"user_id", userID,
		"text", message.Text,
		"rate_remaining", b.limiter.Remaining(userID))

	if message.IsCommand() {
		b.handleCommand(message)
		return
	}

	// Route free text by the user's current conversation state: an open
	// authoring draft wins, then an active quiz session
	if _, ok := b.handlers.Sessions.Draft(userID); ok {
		if err := b.handlers.HandleQuestionInput(userID, message.Text, b); err != nil {
			logger.Debug("Question input rejected", "user_id", userID, "error", err)
		}
		return
	}

	if err := b.handlers.HandleAnswer(userID, message.Text, b); err != nil {
		if apperrors.Code(err) == apperrors.ErrCodeNoActiveSession {
			b.sendMessage(userID, handlers.MsgNoSession, nil)
			return
		}
		logger.Debug("Answer rejected", "user_id", userID, "error", err)
	}
}

func (b *Bot) handleCommand(message *tgbotapi.Message) {
	userID := message.From.ID

	switch message.Command() {
	case "start":
		b.handlers.AnnounceGame(userID, b)

	case "game":
		b.handlers.BeginGame(userID, b)

	case "managers":
		secret := strings.TrimSpace(message.CommandArguments())
		b.handlers.GrantAdmin(userID, secret, b)

	case "questions":
		b.handlers.StartAuthoring(userID, b)

	case "game_on":
		b.handlers.SetGameState(userID, models.GameOn, b)

	case "game_off":
		b.handlers.SetGameState(userID, models.GameOff, b)

	default:
		b.sendMessage(userID, "🤷 Unknown command", nil)
	}
}

func (b *Bot) sendMessage(chatID int64, text string, keyboard interface{}) int {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	switch kb := keyboard.(type) {
	case tgbotapi.ReplyKeyboardMarkup:
		msg.ReplyMarkup = kb
	case tgbotapi.InlineKeyboardMarkup:
		msg.ReplyMarkup = kb
	case tgbotapi.ReplyKeyboardRemove:
		msg.ReplyMarkup = kb
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		sentMsg, err := b.api.Send(msg)
		if err != nil {
			logger.Error("Failed to send message", "error", err, "chat_id", chatID, "attempt", i+1)

			if strings.Contains(err.Error(), "connection reset") ||
				strings.Contains(err.Error(), "timeout") ||
				strings.Contains(err.Error(), "network is unreachable") {
				time.Sleep(time.Duration(i+1) * time.Second)
				continue
			}
			return 0
		}
		return sentMsg.MessageID
	}
	return 0
}

// SendMessage implements handlers.BotInterface.
func (b *Bot) SendMessage(chatID int64, text string, keyboard interface{}) int {
	return b.sendMessage(chatID, text, keyboard)
}

// GetAnswerKeyboard implements handlers.BotInterface.
func (b *Bot) GetAnswerKeyboard(options []string) interface{} {
	return AnswerKeyboard(options)
}

// GetRemoveKeyboard implements handlers.BotInterface.
func (b *Bot) GetRemoveKeyboard() interface{} {
	return tgbotapi.NewRemoveKeyboard(false)
}
