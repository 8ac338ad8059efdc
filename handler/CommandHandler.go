package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/xcp/xcpdex.com/handler/commands"
	"github.com/xcp/xcpdex.com/util"
)

func CommandHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	cmd := strings.Fields(update.Message.Text)[0]
	// commands may arrive as /orders@BotName in groups
	cmd, _, _ = strings.Cut(cmd, "@")

	switch cmd {
	case "/start":
		commands.StartHandler(ctx, b, update)
	case "/orders":
		commands.OrdersHandler(ctx, b, update)
	case "/help":
		commands.HelpHandler(ctx, b, update)
	default:
		util.QuickMessage(ctx, b, util.EffectId(update), "Unknown command. Try /orders or /help.")
	}
}
