package handlers

import "github.com/aequiz/quizbot/internal/models"

// RenderOptions projects a question onto its four quick-reply labels. It is
// called by outbound message construction only, never by the state
// transitions themselves.
func RenderOptions(q models.Question) []string {
	return q.OptionLabels()
}
