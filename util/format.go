package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// BtcDecimals applies to every divisible Counterparty quantity.
const BtcDecimals = 8

func ShiftLeft(num decimal.Decimal, decimals int32) decimal.Decimal {
	return num.Shift(-decimals)
}

// FormatQuantity renders an order quantity for display. The verbose endpoint
// already normalizes quantities; the raw satoshi value is the fallback.
func FormatQuantity(normalized string, raw int64, divisible bool) string {
	if normalized != "" {
		if n, err := decimal.NewFromString(normalized); err == nil {
			return trimZeros(n)
		}
		return normalized
	}

	n := decimal.NewFromInt(raw)
	if divisible {
		n = ShiftLeft(n, BtcDecimals)
	}
	return trimZeros(n)
}

// FormatPrice keeps a few significant decimals without scientific notation.
func FormatPrice(price decimal.Decimal) string {
	if price.IsZero() {
		return "0"
	}
	if price.Abs().LessThan(decimal.New(1, -4)) {
		return trimZeros(price.Round(10))
	}
	return trimZeros(price.Round(8))
}

func trimZeros(n decimal.Decimal) string {
	s := n.String()
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// FormatTime renders an epoch-seconds timestamp (number or numeric string).
func FormatTime(timestamp string) string {
	ts := cast.ToInt64(timestamp)
	if ts == 0 {
		return timestamp
	}

	t := time.Unix(ts, 0).UTC()

	return t.Format("2006-01-02 15:04:05")
}

// TimeAgo renders an epoch-seconds timestamp relative to now.
func TimeAgo(blockTime int64) string {
	if blockTime <= 0 {
		return ""
	}

	d := time.Since(time.Unix(blockTime, 0))
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// ShortAddress shortens a Bitcoin address or tx hash for a list row.
func ShortAddress(addr string) string {
	if len(addr) <= 13 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-6:]
}

// StatusCategory maps a possibly composite status ("open:partial",
// "invalid: insufficient funds") onto its display category: the substring
// before the first colon.
func StatusCategory(status string) string {
	category, _, _ := strings.Cut(status, ":")
	return strings.TrimSpace(category)
}

const neutralBadge = "⚪"

var statusBadges = map[string]string{
	"open":      "🟢",
	"filled":    "🔵",
	"expired":   "🟡",
	"cancelled": "🔴",
}

// StatusBadge is the color marker for a status category; anything outside the
// known set gets the neutral badge.
func StatusBadge(status string) string {
	if badge, ok := statusBadges[StatusCategory(status)]; ok {
		return badge
	}
	return neutralBadge
}
