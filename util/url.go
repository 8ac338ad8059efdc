package util

import "strings"

// ContextTrade routes list rows to market pages instead of order pages.
const ContextTrade = "trade"

// RowURL is the site link behind one list row. Trade context goes to the
// order's market; everything else goes to the order detail keyed by tx hash.
func RowURL(siteURL, context, marketSlug, txHash string) string {
	base := strings.TrimRight(siteURL, "/")
	if context == ContextTrade {
		return base + "/trade/" + marketSlug
	}
	return base + "/tx/" + txHash
}

func MarketURL(siteURL, marketSlug string) string {
	return strings.TrimRight(siteURL, "/") + "/trade/" + marketSlug
}

func AddressURL(siteURL, address string) string {
	return strings.TrimRight(siteURL, "/") + "/address/" + address
}
