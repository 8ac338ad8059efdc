package handler

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"

	"github.com/xcp/xcpdex.com/entity"
	"github.com/xcp/xcpdex.com/handler/callback"
	"github.com/xcp/xcpdex.com/store"
)

func DebugMiddlewares(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, bot *bot.Bot, update *models.Update) {
		log.Debug().
			Interface("new update", update).
			Send()
		next(ctx, bot, update)
	}
}

var limitCount = int64(25)

// Limit backs off when too many messages went out in the current second;
// Telegram throttles bots that push past its rate cap.
func Limit(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, bot *bot.Bot, update *models.Update) {
		count, err := store.BotMessageCount()
		if err == nil && count >= limitCount {
			time.Sleep(1 * time.Second)
		}

		next(ctx, bot, update)
	}
}

// GetCallbackHandler wires every callback and command route as bot options.
func GetCallbackHandler() []bot.Option {
	botOptions := []bot.Option{
		bot.WithMiddlewares(Limit),
		// // debug update msg
		// bot.WithMiddlewares(DebugMiddlewares),

		bot.WithCallbackQueryDataHandler(entity.ORDERS, bot.MatchTypeExact, callback.OrdersHandler),
		bot.WithCallbackQueryDataHandler(entity.ORDERS_REFRESH, bot.MatchTypeExact, callback.OrdersRefreshHandler),
		bot.WithCallbackQueryDataHandler(entity.HELP, bot.MatchTypeExact, callback.HelpHandler),
		bot.WithCallbackQueryDataHandler(entity.NOOP, bot.MatchTypeExact, callback.NoopHandler),
		bot.WithCallbackQueryDataHandler(entity.OrdersNavPrefix, bot.MatchTypePrefix, callback.OrdersNavHandler),
		bot.WithCallbackQueryDataHandler(entity.OrderViewPrefix, bot.MatchTypePrefix, callback.OrderViewHandler),
	}

	return botOptions
}

// SetBotCommand publishes the command menu.
func SetBotCommand(ctx context.Context, bots []*bot.Bot) {
	cmds := []models.BotCommand{
		{Command: "orders", Description: "Browse DEX orders"},
		{Command: "help", Description: "How this works"},
	}
	for _, b := range bots {
		b.SetMyCommands(ctx, &bot.SetMyCommandsParams{Commands: cmds})
	}
}
