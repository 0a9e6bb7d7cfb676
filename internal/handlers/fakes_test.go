package handlers

import (
	"fmt"
	"sync"

	"github.com/aequiz/quizbot/internal/config"
	"github.com/aequiz/quizbot/internal/models"
	apperrors "github.com/aequiz/quizbot/pkg/errors"
)

// In-memory store fakes backing the controller tests.

type memUserStore struct {
	mu           sync.Mutex
	users        map[int64]*models.User
	failSetScore bool
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[int64]*models.User)}
}

func (s *memUserStore) Upsert(telegramID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[telegramID]; !ok {
		s.users[telegramID] = &models.User{TelegramID: telegramID}
	}
	return nil
}

func (s *memUserStore) Get(telegramID int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[telegramID]
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeNotFound, "user not found")
	}
	return user, nil
}

func (s *memUserStore) SetScore(telegramID int64, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSetScore {
		return apperrors.New(apperrors.ErrCodePersistence, "user store unavailable")
	}
	user, ok := s.users[telegramID]
	if !ok {
		return apperrors.New(apperrors.ErrCodeNotFound, "user not found")
	}
	user.Score = score
	return nil
}

func (s *memUserStore) SetAdmin(telegramID int64, admin bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[telegramID]
	if !ok {
		return apperrors.New(apperrors.ErrCodeNotFound, "user not found")
	}
	user.IsAdmin = admin
	return nil
}

type memQuestionStore struct {
	questions   []models.Question
	failReplace bool
}

func (s *memQuestionStore) ReadAll() ([]models.Question, error) {
	out := make([]models.Question, len(s.questions))
	copy(out, s.questions)
	return out, nil
}

func (s *memQuestionStore) ReplaceAll(questions []models.Question) error {
	if s.failReplace {
		return apperrors.New(apperrors.ErrCodePersistence, "question store unavailable")
	}
	s.questions = make([]models.Question, len(questions))
	copy(s.questions, questions)
	return nil
}

func (s *memQuestionStore) Clear() error {
	s.questions = nil
	return nil
}

type memToggle struct {
	state string
}

func (t *memToggle) Get() (string, error) {
	if t.state == "" {
		return models.GameOff, nil
	}
	return t.state, nil
}

func (t *memToggle) Set(value string) error {
	t.state = value
	return nil
}

// fakeBot records outbound messages instead of talking to Telegram.

type sentMessage struct {
	chatID   int64
	text     string
	keyboard interface{}
}

type fakeBot struct {
	sent []sentMessage
}

func (b *fakeBot) SendMessage(chatID int64, text string, keyboard interface{}) int {
	b.sent = append(b.sent, sentMessage{chatID: chatID, text: text, keyboard: keyboard})
	return len(b.sent)
}

func (b *fakeBot) GetAnswerKeyboard(options []string) interface{} {
	return options
}

func (b *fakeBot) GetRemoveKeyboard() interface{} {
	return "remove_keyboard"
}

func (b *fakeBot) lastText() string {
	if len(b.sent) == 0 {
		return ""
	}
	return b.sent[len(b.sent)-1].text
}

// fiveQuestions builds a full valid question set; the correct answer for
// question N is "Right N".
func fiveQuestions() []models.Question {
	questions := make([]models.Question, 0, models.QuizLength)
	for i := 1; i <= models.QuizLength; i++ {
		options := [models.OptionCount]string{
			fmt.Sprintf("Right %d", i),
			fmt.Sprintf("Wrong %d-a", i),
			fmt.Sprintf("Wrong %d-b", i),
			fmt.Sprintf("Wrong %d-c", i),
		}
		questions = append(questions,
			models.NewQuestion(i, fmt.Sprintf("Question text %d", i), options, options[0]))
	}
	return questions
}

func newTestManager() (*HandlerManager, *memUserStore, *memQuestionStore, *memToggle) {
	users := newMemUserStore()
	questions := &memQuestionStore{questions: fiveQuestions()}
	toggle := &memToggle{state: models.GameOn}

	cfg := &config.Config{AdminSecret: "sesame"}
	mgr := NewHandlerManager(cfg, users, questions, toggle, NewSessionStore())
	return mgr, users, questions, toggle
}
