package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// AnswerKeyboard lays the four option labels out as two rows of two
// quick-reply buttons.
func AnswerKeyboard(options []string) tgbotapi.ReplyKeyboardMarkup {
	var rows [][]tgbotapi.KeyboardButton
	var currentRow []tgbotapi.KeyboardButton

	for _, label := range options {
		currentRow = append(currentRow, tgbotapi.NewKeyboardButton(label))
		if len(currentRow) == 2 {
			rows = append(rows, tgbotapi.NewKeyboardButtonRow(currentRow...))
			currentRow = []tgbotapi.KeyboardButton{}
		}
	}
	if len(currentRow) > 0 {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(currentRow...))
	}

	keyboard := tgbotapi.NewReplyKeyboard(rows...)
	keyboard.OneTimeKeyboard = true
	keyboard.ResizeKeyboard = true
	return keyboard
}
