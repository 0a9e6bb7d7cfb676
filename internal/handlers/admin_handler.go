package handlers

import (
	"fmt"
	"strings"

	"github.com/aequiz/quizbot/internal/models"
	"github.com/aequiz/quizbot/internal/security"
	apperrors "github.com/aequiz/quizbot/pkg/errors"
	"github.com/aequiz/quizbot/pkg/logger"
)

// questionFieldCount is the number of hyphen-separated fields in an
// authored question line: text, four options, correct answer.
const questionFieldCount = models.OptionCount + 2

// GrantAdmin compares the supplied secret verbatim against the configured
// one and flips the user's admin flag on a match. A mismatch mutates
// nothing.
func (h *HandlerManager) GrantAdmin(userID int64, suppliedSecret string, bot BotInterface) error {
	if suppliedSecret != h.Config.AdminSecret {
		logger.Warn("Admin secret mismatch", "user_id", userID)
		bot.SendMessage(userID, MsgAdminDenied, nil)
		return apperrors.New(apperrors.ErrCodeUnauthorized, "wrong admin secret")
	}

	if err := h.Users.Upsert(userID); err != nil {
		bot.SendMessage(userID, MsgGenericError, nil)
		return err
	}
	if err := h.Users.SetAdmin(userID, true); err != nil {
		bot.SendMessage(userID, MsgGenericError, nil)
		return err
	}

	bot.SendMessage(userID, MsgAdminGranted, nil)
	logger.Info("Admin granted", "user_id", userID)
	return nil
}

// SetGameState flips the global toggle. Admin only.
func (h *HandlerManager) SetGameState(userID int64, value string, bot BotInterface) error {
	if err := h.requireAdmin(userID, bot); err != nil {
		return err
	}

	if err := h.Toggle.Set(value); err != nil {
		bot.SendMessage(userID, MsgGenericError, nil)
		return err
	}

	if value == models.GameOn {
		bot.SendMessage(userID, MsgGameOn, nil)
	} else {
		bot.SendMessage(userID, MsgGameOff, nil)
	}
	logger.Info("Game toggle changed", "user_id", userID, "state", value)
	return nil
}

// StartAuthoring clears the question store and begins the five-step
// authoring flow. Refused while a game is live.
func (h *HandlerManager) StartAuthoring(userID int64, bot BotInterface) error {
	if err := h.requireAdmin(userID, bot); err != nil {
		return err
	}

	state, err := h.Toggle.Get()
	if err != nil {
		bot.SendMessage(userID, MsgGenericError, nil)
		return err
	}
	if state == models.GameOn {
		bot.SendMessage(userID, MsgStopGameFirst, nil)
		return apperrors.New(apperrors.ErrCodeGameInProgress, "cannot author while game is running")
	}

	if err := h.Questions.Clear(); err != nil {
		bot.SendMessage(userID, MsgGenericError, nil)
		return err
	}

	h.Sessions.StartDraft(userID)
	bot.SendMessage(userID, fmt.Sprintf(MsgAskQuestion, 1), nil)

	logger.Info("Question authoring started", "user_id", userID)
	return nil
}

// HandleQuestionInput consumes one authored question line. Malformed input
// re-issues the same prompt without advancing the draft; the fifth accepted
// question commits the full set to the store.
func (h *HandlerManager) HandleQuestionInput(userID int64, rawText string, bot BotInterface) error {
	draft, ok := h.Sessions.Draft(userID)
	if !ok {
		return apperrors.New(apperrors.ErrCodeNoActiveSession, "no authoring draft")
	}

	question, err := ParseQuestionSpec(draft.Ordinal, rawText)
	if err != nil {
		bot.SendMessage(userID, MsgBadQuestion, nil)
		bot.SendMessage(userID, fmt.Sprintf(MsgAskQuestion, draft.Ordinal), nil)
		return err
	}

	if draft.Ordinal < models.QuizLength {
		draft.Questions = append(draft.Questions, question)
		draft.Ordinal++
		bot.SendMessage(userID, fmt.Sprintf(MsgAskQuestion, draft.Ordinal), nil)
		return nil
	}

	full := make([]models.Question, 0, models.QuizLength)
	full = append(full, draft.Questions...)
	full = append(full, question)

	if err := h.Questions.ReplaceAll(full); err != nil {
		// Draft untouched so resending the fifth question is safe
		logger.Error("Failed to store question set", "user_id", userID, "error", err)
		bot.SendMessage(userID, MsgGenericError, nil)
		return err
	}

	h.Sessions.EndDraft(userID)
	bot.SendMessage(userID, MsgQuestionsSaved, nil)

	logger.Info("Question set replaced", "user_id", userID)
	return nil
}

// ParseQuestionSpec parses one authored line of the form
// "question-answer1-answer2-answer3-answer4-correct answer" into a question
// at the given ordinal.
func ParseQuestionSpec(ordinal int, rawText string) (models.Question, error) {
	rawText = security.SanitizeHTML(security.SanitizeString(rawText))

	fields := strings.Split(rawText, "-")
	if len(fields) != questionFieldCount {
		return models.Question{}, apperrors.New(apperrors.ErrCodeMalformedQuestion,
			fmt.Sprintf("expected %d fields, got %d", questionFieldCount, len(fields)))
	}

	var options [models.OptionCount]string
	copy(options[:], fields[1:1+models.OptionCount])
	correct := fields[questionFieldCount-1]

	question := models.NewQuestion(ordinal, fields[0], options, correct)
	if err := question.Validate(); err != nil {
		return models.Question{}, apperrors.Wrap(err, apperrors.ErrCodeMalformedQuestion,
			"correct answer must match one of four non-empty distinct options")
	}

	return question, nil
}

func (h *HandlerManager) requireAdmin(userID int64, bot BotInterface) error {
	user, err := h.Users.Get(userID)
	if err != nil || !user.IsAdmin {
		bot.SendMessage(userID, MsgAdminsOnly, nil)
		return apperrors.New(apperrors.ErrCodeUnauthorized, "admin access required")
	}
	return nil
}
