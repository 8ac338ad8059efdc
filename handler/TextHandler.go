package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/xcp/xcpdex.com/handler/commands"
	"github.com/xcp/xcpdex.com/util"
)

func TextHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	if update.Message.Chat.Type != "private" {
		return
	}

	// check if it is command
	if util.IsCommand(update.Message.Text) {
		CommandHandler(ctx, b, update)
		return
	}

	// anything else gets the start screen
	commands.StartHandler(ctx, b, update)
}
