package bot

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"

	cfg "github.com/xcp/xcpdex.com/config"
	"github.com/xcp/xcpdex.com/handler"
	"github.com/xcp/xcpdex.com/logger"
	"github.com/xcp/xcpdex.com/router"
	"github.com/xcp/xcpdex.com/store"
)

func InitBot(ctx context.Context) (*bot.Bot, error) {
	log.Info().Msg("initializing bot...")

	b, err := bot.New(cfg.YmlConfig.Env.BotApiKey, botOptions()...)
	if err != nil {
		log.Error().Err(err).Msg("failed to create bot")
		return nil, err
	}

	operation := func() (*models.User, error) {
		m, err := b.GetMe(ctx)
		if err != nil {
			return nil, errors.New("get me failed")
		}
		logger.StdLogger().Info().Msg("GetMe ok")
		return m, nil
	}
	attemptCount := 0
	notifyFunc := func(err error, backoffDelay time.Duration) {
		attemptCount++
		logger.StdLogger().Error().Msgf("attempt %d failed: %v. next retry in %v", attemptCount, err, backoffDelay)
	}
	back := backoff.NewConstantBackOff(500 * time.Millisecond)
	me, err := backoff.Retry(
		ctx,
		operation,
		backoff.WithMaxTries(50),
		backoff.WithBackOff(back),
		backoff.WithNotify(notifyFunc),
	)
	if err != nil {
		logger.StdLogger().Error().Msgf("giving up after 50 attempts: %v", err)
		return nil, err
	}

	botId := cast.ToString(me.ID)
	if err := store.NewEnv(store.BOT_ID, botId); err != nil {
		log.Error().Err(err).Msg("failed to record bot id")
		return nil, err
	}
	if err := store.NewEnv(store.BOT_USERNAME, me.Username); err != nil {
		log.Error().Err(err).Msg("failed to record bot username")
		return nil, err
	}
	log.Debug().Str("bot id", botId).Str("bot username", me.Username).Send()

	return b, nil
}

func StartBot(ctx context.Context, b *bot.Bot) {
	handler.SetBotCommand(ctx, []*bot.Bot{b})

	b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{
		DropPendingUpdates: true,
	})

	if cfg.YmlConfig.Env.WebHookOpen {
		go router.SetWebhook(ctx, b)
		log.Info().Msg("starting with webhook")
	} else {
		go b.Start(ctx)
		log.Info().Msg("starting with long poll")
	}
}

func botOptions() []bot.Option {
	var allOptions []bot.Option

	chOpt := bot.WithUpdatesChannelCap(1024)
	workerOpt := bot.WithWorkers(5)

	mainBotOptions := handler.GetCallbackHandler()
	textHandlerOpt := bot.WithDefaultHandler(handler.TextHandler)
	mainBotOptions = append(mainBotOptions, textHandlerOpt)
	botTokenOptions := bot.WithWebhookSecretToken(cfg.YmlConfig.Env.TgHookToken)

	allOptions = append(allOptions, chOpt, workerOpt, botTokenOptions, bot.WithSkipGetMe())
	allOptions = append(allOptions, mainBotOptions...)

	return allOptions
}
