package template

import (
	"github.com/go-telegram/bot/models"

	"github.com/xcp/xcpdex.com/entity"
)

var StartText = `<b>XCP DEX order browser</b>

Browse the decentralized exchange order book right here.

/orders — the order list, newest first
/help — how this works`

var HelpText = `<b>How to use this bot</b>

/orders opens the DEX order list, 100 orders per page.
Use the page numbers to jump around, the status row to filter
(open, filled, expired, cancelled), and ♻️ Refresh to re-fetch
the current page. Tapping a row's hash opens the order detail.`

func StartKeyboard() models.InlineKeyboardMarkup {
	return models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				entity.GetCallbackButton(entity.ORDERS),
				entity.GetCallbackButton(entity.HELP),
			},
		},
	}
}
