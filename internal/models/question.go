package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// OptionCount is the number of answer options on every question.
const OptionCount = 4

// QuizLength is the number of questions in one game.
const QuizLength = 5

type Question struct {
	ID            uint      `gorm:"primaryKey"`
	Ordinal       int       `gorm:"uniqueIndex;not null"` // 1-based position in the quiz
	QuestionText  string    `gorm:"type:text;not null"`
	Options       string    `gorm:"type:jsonb;not null"` // JSON array of four labels
	CorrectAnswer string    `gorm:"type:text;not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Question) TableName() string {
	return "questions"
}

// NewQuestion builds a question at the given ordinal from its four option
// labels and the correct answer value.
func NewQuestion(ordinal int, text string, options [OptionCount]string, correct string) Question {
	encoded, _ := json.Marshal(options[:])
	return Question{
		Ordinal:       ordinal,
		QuestionText:  text,
		Options:       string(encoded),
		CorrectAnswer: correct,
	}
}

// OptionLabels decodes the stored option labels. A question that fails to
// decode yields nil.
func (q *Question) OptionLabels() []string {
	var labels []string
	if err := json.Unmarshal([]byte(q.Options), &labels); err != nil {
		return nil
	}
	return labels
}

// Validate checks the question invariants: non-empty text, exactly four
// non-empty distinct option labels, and a correct answer equal to one of
// them.
func (q *Question) Validate() error {
	if q.QuestionText == "" {
		return gorm.ErrInvalidData
	}

	labels := q.OptionLabels()
	if len(labels) != OptionCount {
		return gorm.ErrInvalidData
	}

	seen := make(map[string]bool, OptionCount)
	correctFound := false
	for _, label := range labels {
		if label == "" || seen[label] {
			return gorm.ErrInvalidData
		}
		seen[label] = true
		if label == q.CorrectAnswer {
			correctFound = true
		}
	}
	if !correctFound {
		return gorm.ErrInvalidData
	}

	return nil
}

// BeforeSave hook keeps invalid questions out of the store.
func (q *Question) BeforeSave(tx *gorm.DB) error {
	return q.Validate()
}
