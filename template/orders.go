package template

import (
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/xcp/xcpdex.com/entity"
	"github.com/xcp/xcpdex.com/fetcher"
	"github.com/xcp/xcpdex.com/model"
	"github.com/xcp/xcpdex.com/pagination"
	"github.com/xcp/xcpdex.com/util"
)

// DisplayRows caps how many of the fetched page's rows fit in one Telegram
// message; the full page stays reachable through the site link.
const DisplayRows = 10

var orderListTemplate = `<b>📊 DEX orders</b>{% if statusLabel %} · <b>{{ statusLabel }}</b>{% endif %}
{% if loading %}
⏳ Fetching orders…{% elif rows %}{% for row in rows %}
{{ row.Status|statusBadge }} <a href="{{ row.URL }}">{{ row.Pair }}</a> <b>{{ row.Direction }}</b> {{ row.Amount }} @ {{ row.Price }} {{ row.Quote }}
<code>{{ row.TxHash|shortAddress }}</code> · {{ row.Source|shortAddress }} · {{ row.BlockTime|timeAgo }} · {{ row.Status|statusLabel }}
{% endfor %}
Page <b>{{ page }}</b> of <b>{{ totalPages }}</b> · {{ total }} orders{% if clipped %} · first {{ shown }} shown{% endif %}{% else %}
No orders found{% endif %}`

// ListView is the presentation context of the order list for one chat.
type ListView struct {
	SiteURL string
	Context string // "trade" links rows to markets, anything else to orders
	Status  string
	Page    int
}

// OrderRow is one rendered list row. Market fields come from DeriveTrade;
// the rest is formatted by template filters.
type OrderRow struct {
	URL       string
	Pair      string
	Direction string
	Amount    string
	Price     string
	Quote     string
	TxHash    string
	Source    string
	BlockTime int64
	Status    string
}

func buildRow(o model.Order, v ListView) OrderRow {
	trade := util.DeriveTrade(o)
	return OrderRow{
		URL:       util.RowURL(v.SiteURL, v.Context, trade.Slug(), o.TxHash),
		Pair:      trade.Pair(),
		Direction: trade.Direction,
		Amount:    trade.Amount,
		Price:     trade.Price,
		Quote:     trade.Quote,
		TxHash:    o.TxHash,
		Source:    o.Source,
		BlockTime: o.BlockTime,
		Status:    o.Status,
	}
}

// RenderOrderList renders the message body for a snapshot: a loading line, a
// page of rows, or the no-orders fallback (which also covers failed fetches).
func RenderOrderList(snap fetcher.Snapshot, v ListView) (string, error) {
	tpl, err := pongo2.FromString(orderListTemplate)
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRender
	}

	shown := snap.Orders
	clipped := false
	if len(shown) > DisplayRows {
		shown = shown[:DisplayRows]
		clipped = true
	}

	rows := lo.Map(shown, func(o model.Order, _ int) OrderRow {
		return buildRow(o, v)
	})

	statusLabel := ""
	if v.Status != "" && v.Status != "all" {
		statusLabel = v.Status
	}

	out, err := tpl.Execute(pongo2.Context{
		"loading":     snap.Loading(),
		"rows":        rows,
		"statusLabel": statusLabel,
		"page":        v.Page,
		"totalPages":  pagination.TotalPages(snap.Total, pagination.PageLimit),
		"total":       snap.Total,
		"shown":       len(rows),
		"clipped":     clipped,
	})
	if err != nil {
		log.Error().Err(err).Send()
		return "", ErrRender
	}

	return out, nil
}

// OrderListKeyboard builds the pagination controls for a loaded snapshot.
// No rows, no controls: the empty and failed presentations render bare.
func OrderListKeyboard(snap fetcher.Snapshot, v ListView) models.InlineKeyboardMarkup {
	kb := models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{}}
	if snap.Loading() || len(snap.Orders) == 0 {
		return kb
	}

	totalPages := pagination.TotalPages(snap.Total, pagination.PageLimit)
	offset := pagination.Offset(v.Page, pagination.PageLimit)

	window := pagination.Window(v.Page, totalPages, pagination.DefaultRadius)
	pageButtons := lo.Map(window, func(e pagination.Entry, _ int) models.InlineKeyboardButton {
		if e.Gap {
			return util.NewCallbackDataButton(entity.CallbackTextMap[entity.NOOP], entity.NOOP)
		}
		text := cast.ToString(e.Page)
		if e.Page == v.Page {
			text = "· " + text + " ·"
		}
		target := pagination.PageTarget(e.Page, v.Status)
		return util.NewCallbackDataButton(text, entity.OrdersNavPrefix+target.Query())
	})
	for _, chunk := range lo.Chunk(pageButtons, 8) {
		kb.InlineKeyboard = append(kb.InlineKeyboard, chunk)
	}

	navRow := []models.InlineKeyboardButton{}
	if prev := pagination.PreviousTarget(offset, v.Page, v.Status); prev != nil {
		navRow = append(navRow, util.NewCallbackDataButton("⬅️ Prev", entity.OrdersNavPrefix+prev.Query()))
	}
	navRow = append(navRow, entity.GetCallbackButton(entity.ORDERS_REFRESH))
	if next := pagination.NextTarget(offset, pagination.PageLimit, snap.Total, v.Page, v.Status); next != nil {
		navRow = append(navRow, util.NewCallbackDataButton("Next ➡️", entity.OrdersNavPrefix+next.Query()))
	}
	kb.InlineKeyboard = append(kb.InlineKeyboard, navRow)

	kb.InlineKeyboard = append(kb.InlineKeyboard, statusFilterRow(v.Status))

	// callback data is capped at 64 bytes, too small for a tx hash; rows
	// are addressed by tx_index and resolved against the cached page
	detailButtons := lo.Map(lo.Slice(snap.Orders, 0, DisplayRows), func(o model.Order, _ int) models.InlineKeyboardButton {
		return util.NewCallbackDataButton(util.ShortAddress(o.TxHash), entity.OrderViewPrefix+cast.ToString(o.TxIndex))
	})
	for _, chunk := range lo.Chunk(detailButtons, 5) {
		kb.InlineKeyboard = append(kb.InlineKeyboard, chunk)
	}

	kb.InlineKeyboard = append(kb.InlineKeyboard, []models.InlineKeyboardButton{
		util.UrlButton("🌐 Open on site", listURL(v)),
	})

	return kb
}

// StatusFilters are the selectable status values, "all" meaning no filter.
var StatusFilters = []string{"all", "open", "filled", "expired", "cancelled"}

func statusFilterRow(current string) []models.InlineKeyboardButton {
	return lo.Map(StatusFilters, func(status string, _ int) models.InlineKeyboardButton {
		text := status
		if status == current || (current == "" && status == "all") {
			text = "✓ " + text
		}
		target := pagination.PageTarget(1, status)
		return util.NewCallbackDataButton(text, entity.OrdersNavPrefix+target.Query())
	})
}

func listURL(v ListView) string {
	target := pagination.PageTarget(v.Page, v.Status)
	return strings.TrimRight(v.SiteURL, "/") + "/orders?" + target.Query()
}
