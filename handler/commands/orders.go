package commands

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"

	"github.com/xcp/xcpdex.com/config"
	"github.com/xcp/xcpdex.com/handler/callback"
	"github.com/xcp/xcpdex.com/pagination"
	"github.com/xcp/xcpdex.com/store"
	"github.com/xcp/xcpdex.com/template"
	"github.com/xcp/xcpdex.com/util"
)

// OrdersHandler serves "/orders" and "/orders <status>". A bare /orders
// resumes the chat's last position; naming a status jumps to its first page.
func OrdersHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID := util.EffectId(update)

	args := strings.Fields(update.Message.Text)
	if len(args) > 1 {
		status := strings.ToLower(args[1])
		if !lo.Contains(template.StatusFilters, status) {
			util.QuickMessage(ctx, b, chatID, "Unknown status. Try one of: "+strings.Join(template.StatusFilters, ", "))
			return
		}
		callback.ShowOrders(ctx, b, chatID, pagination.Target{Status: status, Page: 1})
		return
	}

	target := pagination.Target{Status: config.YmlConfig.Env.DefaultStatus, Page: 1}
	if view, ok := store.GetChatView(chatID); ok && view.Page >= 1 {
		target = pagination.Target{Status: view.Status, Page: view.Page}
	}
	callback.ShowOrders(ctx, b, chatID, target)
}
