package handlers

import (
	"sync"

	"github.com/aequiz/quizbot/internal/models"
)

// QuizSession is one user's in-flight game. It lives in memory only; a
// process restart drops every in-flight game.
type QuizSession struct {
	UserID   int64
	Ordinal  int // 1-based ordinal of the question currently pending
	Points   int
	Expected string // correct answer for the pending question
}

// AdminDraft collects the five questions an admin is authoring before they
// are committed to the question store.
type AdminDraft struct {
	UserID    int64
	Ordinal   int // 1-based ordinal of the question being asked for
	Questions []models.Question
}

// SessionStore keys quiz sessions and admin drafts by Telegram user ID.
// The dispatcher processes each user's messages one at a time, so only the
// map itself needs locking; the session values are single-owner.
type SessionStore struct {
	mu     sync.RWMutex
	quiz   map[int64]*QuizSession
	drafts map[int64]*AdminDraft
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		quiz:   make(map[int64]*QuizSession),
		drafts: make(map[int64]*AdminDraft),
	}
}

// StartQuiz creates the user's quiz session, discarding any prior in-flight
// session or draft for the same user.
func (s *SessionStore) StartQuiz(userID int64, expected string) *QuizSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, userID)
	session := &QuizSession{
		UserID:   userID,
		Ordinal:  1,
		Points:   0,
		Expected: expected,
	}
	s.quiz[userID] = session
	return session
}

func (s *SessionStore) Quiz(userID int64) (*QuizSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.quiz[userID]
	return session, ok
}

func (s *SessionStore) EndQuiz(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.quiz, userID)
}

// StartDraft creates the user's authoring draft, discarding any prior draft
// or quiz session for the same user.
func (s *SessionStore) StartDraft(userID int64) *AdminDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.quiz, userID)
	draft := &AdminDraft{
		UserID:  userID,
		Ordinal: 1,
	}
	s.drafts[userID] = draft
	return draft
}

func (s *SessionStore) Draft(userID int64) (*AdminDraft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[userID]
	return draft, ok
}

func (s *SessionStore) EndDraft(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, userID)
}
