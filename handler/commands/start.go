package commands

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/xcp/xcpdex.com/store"
	"github.com/xcp/xcpdex.com/template"
	"github.com/xcp/xcpdex.com/util"
)

func StartHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := util.EffectId(update)

	// /start is a clean slate: forget the tracked list position and message
	store.DeleteChatView(chatID)

	store.BotMessageAdd()
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        template.StartText,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: template.StartKeyboard(),
		LinkPreviewOptions: &models.LinkPreviewOptions{
			IsDisabled: bot.True(),
		},
	})
}

func HelpHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := util.EffectId(update)
	util.QuickMessage(ctx, b, chatID, template.HelpText)
}
