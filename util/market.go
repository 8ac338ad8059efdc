package util

import (
	"github.com/shopspring/decimal"

	"github.com/xcp/xcpdex.com/model"
)

// Quote asset precedence on the DEX: XCP outranks BTC, both outrank
// everything else. In a pair the higher-ranked asset is the quote side.
var quoteRank = map[string]int{
	"XCP": 2,
	"BTC": 1,
}

const (
	DirectionBuy  = "buy"
	DirectionSell = "sell"
)

// Trade is the per-row market reading of an order: which pair it trades,
// which way, how much of the base asset and at what price in the quote asset.
type Trade struct {
	Base      string
	Quote     string
	Direction string
	Amount    string
	Price     string
}

func (t Trade) Pair() string {
	return t.Base + "/" + t.Quote
}

// Slug is the market path segment used by trade-context row links.
func (t Trade) Slug() string {
	return t.Base + "_" + t.Quote
}

// DeriveTrade reads a raw order as a market trade. An order giving the quote
// asset is a buy of the base asset; giving the base is a sell.
func DeriveTrade(o model.Order) Trade {
	giveRank := quoteRank[o.GiveAsset]
	getRank := quoteRank[o.GetAsset]

	t := Trade{}
	if giveRank > getRank {
		// paying with the quote asset: buying the base
		t.Base = o.GetAsset
		t.Quote = o.GiveAsset
		t.Direction = DirectionBuy
	} else {
		t.Base = o.GiveAsset
		t.Quote = o.GetAsset
		t.Direction = DirectionSell
	}

	base, quote := sideQuantities(o, t.Direction)
	t.Amount = trimZeros(base)
	if !base.IsZero() {
		t.Price = FormatPrice(quote.Div(base))
	} else {
		t.Price = "0"
	}

	return t
}

func sideQuantities(o model.Order, direction string) (base, quote decimal.Decimal) {
	give := normalizedQuantity(o.GiveQuantityNormalized, o.GiveQuantity)
	get := normalizedQuantity(o.GetQuantityNormalized, o.GetQuantity)

	if direction == DirectionBuy {
		return get, give
	}
	return give, get
}

func normalizedQuantity(normalized string, raw int64) decimal.Decimal {
	if normalized != "" {
		if n, err := decimal.NewFromString(normalized); err == nil {
			return n
		}
	}
	return ShiftLeft(decimal.NewFromInt(raw), BtcDecimals)
}
