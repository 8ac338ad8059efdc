package callback

import (
	"context"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/cast"

	"github.com/xcp/xcpdex.com/api"
	"github.com/xcp/xcpdex.com/config"
	"github.com/xcp/xcpdex.com/entity"
	"github.com/xcp/xcpdex.com/fetcher"
	"github.com/xcp/xcpdex.com/model"
	"github.com/xcp/xcpdex.com/pagination"
	"github.com/xcp/xcpdex.com/session"
	"github.com/xcp/xcpdex.com/store"
	"github.com/xcp/xcpdex.com/template"
	"github.com/xcp/xcpdex.com/util"
)

// key of the displayed page in the in-process cache, for detail lookups
var ordersPageCache = "orders_page"

// ChatFetcher returns the chat's order fetcher, creating it on first use.
// One fetcher per chat is the concurrency model: its state is only ever
// written by the trigger/response logic inside the fetcher itself.
func ChatFetcher(b *bot.Bot, chatID int64) *fetcher.OrderFetcher {
	sm := session.GetSessionManager()
	v := sm.GetOrSet(chatID, session.ChatFetcherCache, func() any {
		return fetcher.New(api.ListOrders, notifyFunc(b, chatID))
	})
	return v.(*fetcher.OrderFetcher)
}

// ShowOrders points the chat's view at target and triggers the fetch. The
// rendering happens in the fetcher's notify callback, so the bot stays
// responsive while the request is in flight.
func ShowOrders(ctx context.Context, b *bot.Bot, chatID int64, target pagination.Target) {
	view, _ := store.GetChatView(chatID)
	view.Status = target.Status
	view.Page = target.Page
	store.SetChatView(chatID, view)

	f := ChatFetcher(b, chatID)
	f.Request(api.OrderQuery{
		Endpoint: config.YmlConfig.Env.ApiEndpoint,
		Status:   target.Status,
		Limit:    pagination.PageLimit,
		Offset:   pagination.Offset(target.Page, pagination.PageLimit),
	})
}

func notifyFunc(b *bot.Bot, chatID int64) fetcher.NotifyFunc {
	return func(snap fetcher.Snapshot) {
		renderSnapshot(context.Background(), b, chatID, snap)
	}
}

// renderSnapshot draws a snapshot into the chat's list message. Status and
// page come from the snapshot's own query tuple, never from stored state, so
// the message always reflects the most recently requested tuple.
func renderSnapshot(ctx context.Context, b *bot.Bot, chatID int64, snap fetcher.Snapshot) {
	lv := template.ListView{
		SiteURL: config.YmlConfig.Env.SiteUrl,
		Context: config.YmlConfig.Env.LinkContext,
		Status:  snap.Query.Status,
		Page:    snap.Query.Offset/pagination.PageLimit + 1,
	}

	text, err := template.RenderOrderList(snap, lv)
	if err != nil {
		util.QuickMessage(ctx, b, chatID, err.Error())
		return
	}

	if snap.State == fetcher.StateLoaded {
		store.Set(chatID, ordersPageCache, snap.Orders, 30*time.Minute)
	}

	view, _ := store.GetChatView(chatID)
	if view.MessageID == 0 {
		sendListMessage(ctx, b, chatID, view, text, snap, lv)
		return
	}

	params := &bot.EditMessageTextParams{
		ChatID:    chatID,
		MessageID: view.MessageID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
		LinkPreviewOptions: &models.LinkPreviewOptions{
			IsDisabled: bot.True(),
		},
	}
	if !snap.Loading() {
		kb := template.OrderListKeyboard(snap, lv)
		params.ReplyMarkup = kb
	}

	if _, err := b.EditMessageText(ctx, params); err != nil {
		// the tracked message may be gone (cleared chat); fall back to a
		// fresh one
		log.Debug().Err(err).Int64("chatID", chatID).Msg("edit failed, sending new list message")
		sendListMessage(ctx, b, chatID, view, text, snap, lv)
	}
}

func sendListMessage(ctx context.Context, b *bot.Bot, chatID int64, view store.ChatView, text string, snap fetcher.Snapshot, lv template.ListView) {
	params := &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
		LinkPreviewOptions: &models.LinkPreviewOptions{
			IsDisabled: bot.True(),
		},
	}
	if !snap.Loading() {
		params.ReplyMarkup = template.OrderListKeyboard(snap, lv)
	}

	store.BotMessageAdd()
	msg, err := b.SendMessage(ctx, params)
	if err != nil {
		log.Error().Err(err).Int64("chatID", chatID).Send()
		return
	}

	view.MessageID = msg.ID
	store.SetChatView(chatID, view)
}

// adoptMessage tracks the message the callback button lives on when no list
// message is tracked yet, so navigation edits in place instead of re-sending.
func adoptMessage(chatID int64, update *models.Update) {
	mid := util.EffectMessageId(update)
	if mid == 0 {
		return
	}
	if view, ok := store.GetChatView(chatID); !ok || view.MessageID == 0 {
		view.MessageID = mid
		store.SetChatView(chatID, view)
	}
}

// OrdersHandler opens the list at the chat's remembered position, or at the
// configured defaults for a fresh chat.
func OrdersHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := util.EffectId(update)
	answerCallback(ctx, b, update)

	target := pagination.Target{Status: config.YmlConfig.Env.DefaultStatus, Page: 1}
	if view, ok := store.GetChatView(chatID); ok && view.Page >= 1 {
		target = pagination.Target{Status: view.Status, Page: view.Page}
	}
	adoptMessage(chatID, update)

	ShowOrders(ctx, b, chatID, target)
}

// OrdersNavHandler follows a page/status navigation target from callback
// data shaped like "orders_nav::status=open&page=2".
func OrdersNavHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := util.EffectId(update)
	answerCallback(ctx, b, update)

	data := update.CallbackQuery.Data
	target := pagination.ParseTarget(strings.TrimPrefix(data, entity.OrdersNavPrefix))

	// double taps on the same button while its fetch is in flight are noise
	sm := session.GetSessionManager()
	if last, ok := sm.Get(chatID, session.ChatLastCallback); ok && last == data {
		if ChatFetcher(b, chatID).Snapshot().Loading() {
			return
		}
	}
	sm.Set(chatID, session.ChatLastCallback, data)

	adoptMessage(chatID, update)
	ShowOrders(ctx, b, chatID, target)
}

// OrdersRefreshHandler re-fetches the current tuple in place.
func OrdersRefreshHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := util.EffectId(update)
	answerCallback(ctx, b, update)

	ChatFetcher(b, chatID).Refresh()
}

// NoopHandler swallows taps on gap markers.
func NoopHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	answerCallback(ctx, b, update)
}

// OrderViewHandler shows the detail of one row of the cached page, addressed
// by tx index ("order::12345").
func OrderViewHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := util.EffectId(update)
	answerCallback(ctx, b, update)

	parts := entity.SplitCallbackData(update.CallbackQuery.Data)
	if len(parts) != 2 {
		return
	}
	txIndex := cast.ToInt64(parts[1])

	cached, ok := store.Get(chatID, ordersPageCache)
	if !ok {
		// page cache expired; the list itself is the way back
		OrdersHandler(ctx, b, update)
		return
	}
	orders, ok := cached.([]model.Order)
	if !ok {
		OrdersHandler(ctx, b, update)
		return
	}

	order, found := lo.Find(orders, func(o model.Order) bool {
		return o.TxIndex == txIndex
	})
	if !found {
		OrdersHandler(ctx, b, update)
		return
	}

	// the cached row may be stale; prefer the live order when reachable
	if live, err := api.GetOrder(config.YmlConfig.Env.ApiEndpoint, order.TxHash); err == nil {
		order = *live
	}
	normalizeQuantities(&order)

	text, err := template.RenderOrderDetail(order)
	if err != nil {
		util.QuickMessage(ctx, b, chatID, err.Error())
		return
	}

	store.BotMessageAdd()
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: template.OrderDetailKeyboard(config.YmlConfig.Env.SiteUrl, config.YmlConfig.Env.LinkContext, order),
		LinkPreviewOptions: &models.LinkPreviewOptions{
			IsDisabled: bot.True(),
		},
	})
}

// HelpHandler answers the help callback.
func HelpHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := util.EffectId(update)
	answerCallback(ctx, b, update)
	util.QuickMessage(ctx, b, chatID, template.HelpText)
}

// normalizeQuantities backfills the verbose-only normalized quantities when
// the endpoint answered without them, using each asset's divisibility.
func normalizeQuantities(o *model.Order) {
	if o.GiveQuantityNormalized == "" {
		o.GiveQuantityNormalized = normalizedFor(o.GiveAsset, o.GiveQuantity)
	}
	if o.GetQuantityNormalized == "" {
		o.GetQuantityNormalized = normalizedFor(o.GetAsset, o.GetQuantity)
	}
}

func normalizedFor(asset string, raw int64) string {
	// unknown assets read as divisible, same as the list rows assume
	divisible := true
	if info, err := api.GetAssetInfo(config.YmlConfig.Env.AssetEndpoint, asset); err == nil {
		divisible = info.Divisible
	}
	return util.FormatQuantity("", raw, divisible)
}

func answerCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.CallbackQuery == nil {
		return
	}
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
	})
}
