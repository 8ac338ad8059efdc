package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	CategoryField = "category"
)

const (
	CategoryNetwork = "network"
	CategoryOrder   = "order"
	CategoryMarket  = "market"
	CategoryChat    = "chat"
)

func WithCategory(category string) func(e *zerolog.Event) {
	return func(e *zerolog.Event) {
		e.Str(CategoryField, category)
	}
}

func WithOrderCategory(e *zerolog.Event) *zerolog.Event {
	return e.Str(CategoryField, CategoryOrder)
}

func WithNetworkCategory(e *zerolog.Event) *zerolog.Event {
	return e.Str(CategoryField, CategoryNetwork)
}

func StdLogger() *zerolog.Logger {
	outPut := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		NoColor:    false,
		TimeFormat: time.DateTime,
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s: ", i)
		},
		FieldsOrder: []string{"route", "params", "result"},
	}
	log := zerolog.New(outPut).With().Timestamp().Logger()

	return &log
}

func NewStdLog(endpoint string, result []byte) {
	log := StdLogger()
	log.Info().Str("route", endpoint).RawJSON("result", result).Send()
}
