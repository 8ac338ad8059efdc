package template

import (
	"github.com/flosch/pongo2/v6"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"

	"github.com/xcp/xcpdex.com/entity"
	"github.com/xcp/xcpdex.com/model"
	"github.com/xcp/xcpdex.com/util"
)

var orderDetailTemplate = `{{ order.Status|statusBadge }} <b>{{ pair }}</b> · <b>{{ direction }}</b>

Amount: <b>{{ amount }} {{ base }}</b>
Price: <b>{{ price }} {{ quote }}</b>
Status: <b>{{ order.Status|statusLabel }}</b>
Source: <code>{{ order.Source }}</code>
Block: <b>{{ order.BlockIndex }}</b> · {{ order.BlockTime|formatTime }} UTC
Expires at block: <b>{{ order.ExpireIndex }}</b>
Tx: <code>{{ order.TxHash }}</code>`

// RenderOrderDetail renders the single-order view.
func RenderOrderDetail(o model.Order) (string, error) {
	tpl, err := pongo2.FromString(orderDetailTemplate)
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRender
	}

	trade := util.DeriveTrade(o)
	out, err := tpl.Execute(pongo2.Context{
		"order":     o,
		"pair":      trade.Pair(),
		"direction": trade.Direction,
		"amount":    trade.Amount,
		"price":     trade.Price,
		"base":      trade.Base,
		"quote":     trade.Quote,
	})
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRender
	}

	return out, nil
}

// OrderDetailKeyboard links back to the list plus out to the site.
func OrderDetailKeyboard(siteURL, context string, o model.Order) models.InlineKeyboardMarkup {
	trade := util.DeriveTrade(o)
	return models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				util.UrlButton("🌐 View order", util.RowURL(siteURL, context, trade.Slug(), o.TxHash)),
				util.UrlButton("📈 Market", util.MarketURL(siteURL, trade.Slug())),
				util.UrlButton("👤 Source", util.AddressURL(siteURL, o.Source)),
			},
			{
				entity.GetCallbackButton(entity.ORDERS),
			},
		},
	}
}
