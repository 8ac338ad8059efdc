package util

import (
	"testing"

	"github.com/xcp/xcpdex.com/model"
)

func TestDeriveTrade(t *testing.T) {
	tests := []struct {
		name  string
		order model.Order
		want  Trade
	}{
		{
			name: "giving XCP for a token is a buy",
			order: model.Order{
				GiveAsset: "XCP", GiveQuantity: 100000000,
				GetAsset: "PEPECASH", GetQuantity: 50000000000,
			},
			want: Trade{Base: "PEPECASH", Quote: "XCP", Direction: DirectionBuy, Amount: "500", Price: "0.002"},
		},
		{
			name: "giving a token for XCP is a sell",
			order: model.Order{
				GiveAsset: "PEPECASH", GiveQuantity: 50000000000,
				GetAsset: "XCP", GetQuantity: 100000000,
			},
			want: Trade{Base: "PEPECASH", Quote: "XCP", Direction: DirectionSell, Amount: "500", Price: "0.002"},
		},
		{
			name: "XCP against BTC quotes in XCP",
			order: model.Order{
				GiveAsset: "BTC", GiveQuantity: 100000000,
				GetAsset: "XCP", GetQuantity: 100000000,
			},
			want: Trade{Base: "BTC", Quote: "XCP", Direction: DirectionSell, Amount: "1", Price: "1"},
		},
		{
			name: "normalized quantities win over raw",
			order: model.Order{
				GiveAsset: "XCP", GiveQuantity: 0, GiveQuantityNormalized: "2",
				GetAsset: "RAREPEPE", GetQuantity: 0, GetQuantityNormalized: "4",
			},
			want: Trade{Base: "RAREPEPE", Quote: "XCP", Direction: DirectionBuy, Amount: "4", Price: "0.5"},
		},
		{
			name: "unranked pair sells the give side",
			order: model.Order{
				GiveAsset: "RAREPEPE", GiveQuantityNormalized: "10",
				GetAsset: "PEPECASH", GetQuantityNormalized: "1000",
			},
			want: Trade{Base: "RAREPEPE", Quote: "PEPECASH", Direction: DirectionSell, Amount: "10", Price: "100"},
		},
		{
			name: "zero base quantity keeps price at zero",
			order: model.Order{
				GiveAsset: "XCP", GiveQuantityNormalized: "1",
				GetAsset: "RAREPEPE", GetQuantityNormalized: "0",
			},
			want: Trade{Base: "RAREPEPE", Quote: "XCP", Direction: DirectionBuy, Amount: "0", Price: "0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveTrade(tt.order)
			if got != tt.want {
				t.Errorf("DeriveTrade = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTradePairAndSlug(t *testing.T) {
	tr := Trade{Base: "PEPECASH", Quote: "XCP"}
	if tr.Pair() != "PEPECASH/XCP" {
		t.Errorf("Pair = %q", tr.Pair())
	}
	if tr.Slug() != "PEPECASH_XCP" {
		t.Errorf("Slug = %q", tr.Slug())
	}
}

func TestRowURL(t *testing.T) {
	if got := RowURL("https://xcpdex.com/", ContextTrade, "PEPECASH_XCP", "abc"); got != "https://xcpdex.com/trade/PEPECASH_XCP" {
		t.Errorf("trade context RowURL = %q", got)
	}
	if got := RowURL("https://xcpdex.com", "", "PEPECASH_XCP", "abc"); got != "https://xcpdex.com/tx/abc" {
		t.Errorf("default context RowURL = %q", got)
	}
}
