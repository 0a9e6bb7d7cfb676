package handlers

import (
	"fmt"

	"github.com/aequiz/quizbot/internal/models"
	apperrors "github.com/aequiz/quizbot/pkg/errors"
	"github.com/aequiz/quizbot/pkg/logger"
)

// AnnounceGame greets a user on first contact and registers them with a
// zero score. It never creates a quiz session; that happens on explicit
// game entry via BeginGame.
func (h *HandlerManager) AnnounceGame(userID int64, bot BotInterface) error {
	if err := h.Users.Upsert(userID); err != nil {
		logger.Error("Failed to register user", "user_id", userID, "error", err)
		bot.SendMessage(userID, MsgGenericError, nil)
		return err
	}

	bot.SendMessage(userID, MsgWelcome, nil)
	return nil
}

// BeginGame creates the user's quiz session and asks question 1. It refuses
// while the toggle is OFF or while fewer than five questions are stored.
func (h *HandlerManager) BeginGame(userID int64, bot BotInterface) error {
	state, err := h.Toggle.Get()
	if err != nil {
		bot.SendMessage(userID, MsgGenericError, nil)
		return err
	}
	if state != models.GameOn {
		bot.SendMessage(userID, MsgGameNotRunning, nil)
		return apperrors.New(apperrors.ErrCodeGameOff, "game is not running")
	}

	questions, err := h.Questions.ReadAll()
	if err != nil {
		bot.SendMessage(userID, MsgGenericError, nil)
		return err
	}
	if len(questions) < models.QuizLength {
		bot.SendMessage(userID, MsgNoQuestions, nil)
		return apperrors.New(apperrors.ErrCodeNoQuestions, "fewer than five questions configured")
	}

	first := questions[0]
	h.Sessions.StartQuiz(userID, first.CorrectAnswer)

	bot.SendMessage(userID,
		fmt.Sprintf(MsgQuestion, 1, first.QuestionText),
		bot.GetAnswerKeyboard(RenderOptions(first)))

	logger.Info("Game started", "user_id", userID)
	return nil
}

// HandleAnswer scores one answer and advances the session. The answer is
// compared byte-for-byte against the expected value; text that matches none
// of the offered options is simply a wrong answer.
//
// On the fifth answer the full score is persisted, and the message reports
// the points as they stood before that last comparison.
func (h *HandlerManager) HandleAnswer(userID int64, answerText string, bot BotInterface) error {
	session, ok := h.Sessions.Quiz(userID)
	if !ok {
		return apperrors.New(apperrors.ErrCodeNoActiveSession, "no active quiz session")
	}

	points := session.Points
	if answerText == session.Expected {
		points++
	}

	if session.Ordinal == models.QuizLength {
		if err := h.Users.SetScore(userID, points); err != nil {
			// Session untouched so resending the answer is safe
			logger.Error("Failed to persist score", "user_id", userID, "error", err)
			bot.SendMessage(userID, MsgGenericError, nil)
			return err
		}

		reported := session.Points
		h.Sessions.EndQuiz(userID)
		bot.SendMessage(userID, fmt.Sprintf(MsgQuizResult, reported), bot.GetRemoveKeyboard())

		logger.Info("Game finished", "user_id", userID, "score", points)
		return nil
	}

	questions, err := h.Questions.ReadAll()
	if err != nil {
		bot.SendMessage(userID, MsgGenericError, nil)
		return err
	}
	if len(questions) <= session.Ordinal {
		bot.SendMessage(userID, MsgNoQuestions, nil)
		return apperrors.New(apperrors.ErrCodeNoQuestions, "question set shrank mid-game")
	}

	next := questions[session.Ordinal]
	session.Points = points
	session.Ordinal++
	session.Expected = next.CorrectAnswer

	bot.SendMessage(userID,
		fmt.Sprintf(MsgQuestion, session.Ordinal, next.QuestionText),
		bot.GetAnswerKeyboard(RenderOptions(next)))

	return nil
}
