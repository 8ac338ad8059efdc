package entity

import (
	"fmt"
	"strings"

	"github.com/go-telegram/bot/models"
)

type BOT_CALLBACK_DATA_CODE = string

const (
	ORDERS         BOT_CALLBACK_DATA_CODE = "code::orders"
	ORDERS_REFRESH BOT_CALLBACK_DATA_CODE = "code::orders_refresh"
	HELP           BOT_CALLBACK_DATA_CODE = "code::help"
	NOOP           BOT_CALLBACK_DATA_CODE = "code::noop"

	_BOT_CALLBACK_DATA_CODE_COUNT = iota
)

// Prefixed callbacks carry a payload after "::".
const (
	OrdersNavPrefix = "orders_nav::" // payload: status=<s>&page=<p>
	OrderViewPrefix = "order::"      // payload: tx index of a row on the cached page
)

var CallbackTextMap = map[BOT_CALLBACK_DATA_CODE]string{
	ORDERS:         "📋 Orders",
	ORDERS_REFRESH: "♻️ Refresh",
	HELP:           "Help",
	NOOP:           "…",
}

// check text map and code count
var _ = func() any {
	if len(CallbackTextMap) != _BOT_CALLBACK_DATA_CODE_COUNT {
		panic(fmt.Sprintf(
			"CallbackTextMap size mismatch: got %d, want %d",
			len(CallbackTextMap),
			_BOT_CALLBACK_DATA_CODE_COUNT,
		))
	}
	return nil
}()

type CallbackButton = models.InlineKeyboardButton

// build callback button
func GetCallbackButton(code BOT_CALLBACK_DATA_CODE) CallbackButton {
	return CallbackButton{
		CallbackData: code,
		Text:         CallbackTextMap[code],
	}
}

// split callback data
func SplitCallbackData(code BOT_CALLBACK_DATA_CODE) []string {
	return strings.Split(code, "::")
}
