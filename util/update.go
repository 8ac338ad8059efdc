package util

import (
	"strings"

	"github.com/go-telegram/bot/models"
)

func IsCommand(str string) bool {
	return strings.HasPrefix(str, "/")
}

// EffectId resolves the acting user of any update shape.
func EffectId(update *models.Update) int64 {
	if update == nil {
		return 0
	}

	if update.Message != nil {
		return update.Message.From.ID
	}

	if update.CallbackQuery != nil {
		return update.CallbackQuery.From.ID
	}

	if update.InlineQuery != nil {
		return update.InlineQuery.From.ID
	}

	if update.ChannelPost != nil {
		return update.ChannelPost.From.ID
	}

	if update.EditedMessage != nil {
		return update.EditedMessage.From.ID
	}

	return 0
}

// EffectMessageId resolves the message a callback points at, 0 otherwise.
func EffectMessageId(update *models.Update) int {
	if update == nil || update.CallbackQuery == nil {
		return 0
	}
	if update.CallbackQuery.Message.Message != nil {
		return update.CallbackQuery.Message.Message.ID
	}
	return 0
}
