package template

import (
	"strings"
	"testing"
	"time"

	"github.com/go-telegram/bot/models"

	"github.com/xcp/xcpdex.com/api"
	"github.com/xcp/xcpdex.com/entity"
	"github.com/xcp/xcpdex.com/fetcher"
	"github.com/xcp/xcpdex.com/model"
)

func sampleOrder(txIndex int64, txHash, status string) model.Order {
	return model.Order{
		TxIndex:                txIndex,
		TxHash:                 txHash,
		Status:                 status,
		BlockTime:              time.Now().Add(-2 * time.Hour).Unix(),
		Source:                 "1CounterpartyXXXXXXXXXXXXXXXUWLpVr",
		GiveAsset:              "XCP",
		GiveQuantityNormalized: "1",
		GetAsset:               "PEPECASH",
		GetQuantityNormalized:  "500",
	}
}

func loadedSnapshot(orders []model.Order, total int) fetcher.Snapshot {
	return fetcher.Snapshot{
		State:  fetcher.StateLoaded,
		Query:  api.OrderQuery{Endpoint: "http://dex/api/orders", Status: "all", Limit: 100},
		Orders: orders,
		Total:  total,
	}
}

func listView(status string, page int) ListView {
	return ListView{SiteURL: "https://xcpdex.com", Status: status, Page: page}
}

func TestRenderOrderListRows(t *testing.T) {
	snap := loadedSnapshot([]model.Order{sampleOrder(7, "abcdef0123456789abcdef", "open:partial")}, 250)

	out, err := RenderOrderList(snap, listView("all", 1))
	if err != nil {
		t.Fatalf("RenderOrderList: %v", err)
	}

	for _, want := range []string{
		"PEPECASH/XCP",
		"buy",
		"🟢",
		"open",
		"2h ago",
		"Page <b>1</b> of <b>3</b>",
		"250 orders",
		"https://xcpdex.com/tx/abcdef0123456789abcdef",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered list missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "No orders found") {
		t.Error("non-empty page must not show the empty fallback")
	}
}

func TestRenderOrderListTradeContextLinksToMarket(t *testing.T) {
	snap := loadedSnapshot([]model.Order{sampleOrder(7, "abc", "open")}, 1)
	v := listView("all", 1)
	v.Context = "trade"

	out, err := RenderOrderList(snap, v)
	if err != nil {
		t.Fatalf("RenderOrderList: %v", err)
	}
	if !strings.Contains(out, "https://xcpdex.com/trade/PEPECASH_XCP") {
		t.Errorf("trade context must link rows to the market page:\n%s", out)
	}
}

func TestRenderOrderListEmptyAndFailed(t *testing.T) {
	for _, state := range []fetcher.State{fetcher.StateLoaded, fetcher.StateFailed} {
		snap := fetcher.Snapshot{State: state}
		out, err := RenderOrderList(snap, listView("all", 1))
		if err != nil {
			t.Fatalf("RenderOrderList: %v", err)
		}
		if !strings.Contains(out, "No orders found") {
			t.Errorf("state %v must render the empty fallback:\n%s", state, out)
		}
	}
}

func TestRenderOrderListLoading(t *testing.T) {
	snap := fetcher.Snapshot{State: fetcher.StateLoading}
	out, err := RenderOrderList(snap, listView("open", 2))
	if err != nil {
		t.Fatalf("RenderOrderList: %v", err)
	}
	if !strings.Contains(out, "Fetching orders") {
		t.Errorf("loading state must show the loading line:\n%s", out)
	}
	if strings.Contains(out, "No orders found") {
		t.Error("loading state must not show the empty fallback")
	}
}

func TestRenderOrderListClipsLongPages(t *testing.T) {
	orders := make([]model.Order, 0, DisplayRows+5)
	for i := 0; i < DisplayRows+5; i++ {
		orders = append(orders, sampleOrder(int64(i), "hash", "open"))
	}
	out, err := RenderOrderList(loadedSnapshot(orders, 100), listView("all", 1))
	if err != nil {
		t.Fatalf("RenderOrderList: %v", err)
	}
	if !strings.Contains(out, "first 10 shown") {
		t.Errorf("clipped page should say so:\n%s", out)
	}
}

func TestOrderListKeyboard(t *testing.T) {
	orders := []model.Order{sampleOrder(7, "abcdef0123456789", "open")}

	t.Run("middle page has window, gaps and both nav buttons", func(t *testing.T) {
		snap := loadedSnapshot(orders, 1000) // 10 pages
		kb := OrderListKeyboard(snap, listView("all", 5))

		var flat []string
		var texts []string
		for _, row := range kb.InlineKeyboard {
			for _, btn := range row {
				flat = append(flat, btn.CallbackData)
				texts = append(texts, btn.Text)
			}
		}

		joined := strings.Join(flat, " ")
		for _, want := range []string{
			entity.OrdersNavPrefix + "page=1&status=all",
			entity.OrdersNavPrefix + "page=4&status=all",
			entity.OrdersNavPrefix + "page=6&status=all",
			entity.OrdersNavPrefix + "page=10&status=all",
			entity.ORDERS_REFRESH,
			entity.OrderViewPrefix + "7",
		} {
			if !strings.Contains(joined, want) {
				t.Errorf("keyboard missing callback %q in %v", want, flat)
			}
		}

		joinedText := strings.Join(texts, " ")
		for _, want := range []string{"· 5 ·", "…", "⬅️ Prev", "Next ➡️"} {
			if !strings.Contains(joinedText, want) {
				t.Errorf("keyboard missing button text %q in %v", want, texts)
			}
		}
	})

	t.Run("first page has no prev, last page has no next", func(t *testing.T) {
		snap := loadedSnapshot(orders, 300) // 3 pages
		first := OrderListKeyboard(snap, listView("all", 1))
		if kbContainsText(first, "⬅️ Prev") {
			t.Error("first page must not offer Prev")
		}
		if !kbContainsText(first, "Next ➡️") {
			t.Error("first page must offer Next")
		}

		last := OrderListKeyboard(snap, listView("all", 3))
		if kbContainsText(last, "Next ➡️") {
			t.Error("last page must not offer Next")
		}
		if !kbContainsText(last, "⬅️ Prev") {
			t.Error("last page must offer Prev")
		}
	})

	t.Run("status filters reset to page one", func(t *testing.T) {
		snap := loadedSnapshot(orders, 300)
		kb := OrderListKeyboard(snap, listView("all", 2))
		if !kbContainsCallback(kb, entity.OrdersNavPrefix+"page=1&status=open") {
			t.Error("keyboard must offer the open filter at page 1")
		}
	})

	t.Run("empty snapshot renders no controls", func(t *testing.T) {
		kb := OrderListKeyboard(fetcher.Snapshot{State: fetcher.StateFailed}, listView("all", 1))
		if len(kb.InlineKeyboard) != 0 {
			t.Errorf("failed snapshot must render no pagination controls, got %v", kb.InlineKeyboard)
		}
	})
}

func kbContainsText(kb models.InlineKeyboardMarkup, text string) bool {
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			if btn.Text == text {
				return true
			}
		}
	}
	return false
}

func kbContainsCallback(kb models.InlineKeyboardMarkup, data string) bool {
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			if btn.CallbackData == data {
				return true
			}
		}
	}
	return false
}
