package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xcp/xcpdex.com/bot"
	"github.com/xcp/xcpdex.com/config"
	_ "github.com/xcp/xcpdex.com/handler"
	"github.com/xcp/xcpdex.com/store"
)

var _ = func() any {
	zerolog.TimeFieldFormat = "2006-01-02 15:04:05"
	if config.YmlConfig.Env.Debug == "true" {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	return nil
}()

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	rc := config.YmlConfig.Redis
	store.InitRedis(rc.Ip, rc.Port, rc.Username, rc.Passwd, rc.Db)

	b, err := bot.InitBot(ctx)
	if err != nil {
		log.Error().Err(err).Msg("bot init failed")
		return
	}
	bot.StartBot(ctx, b)

	log.Info().Msg("bot is up, Ctrl + c to stop")

	// wait
	<-ctx.Done()
	log.Info().Msg("bye")
}
