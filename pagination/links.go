package pagination

import (
	"net/url"

	"github.com/spf13/cast"
)

// Target is a navigation destination inside the order list: a status filter
// plus a 1-indexed page. It travels as the query string `status=<s>&page=<p>`
// inside callback data.
type Target struct {
	Status string
	Page   int
}

func (t Target) Query() string {
	v := url.Values{}
	v.Set("status", t.Status)
	v.Set("page", cast.ToString(t.Page))
	return v.Encode()
}

// ParseTarget decodes a callback query string back into a Target. Anything
// unreadable degrades to the first page of the unfiltered list.
func ParseTarget(query string) Target {
	t := Target{Status: "all", Page: 1}
	v, err := url.ParseQuery(query)
	if err != nil {
		return t
	}
	if s := v.Get("status"); s != "" {
		t.Status = s
	}
	if p := cast.ToInt(v.Get("page")); p >= 1 {
		t.Page = p
	}
	return t
}

// PageTarget builds the target for a specific page. Page bounds are the
// caller's problem; Window only hands out valid pages.
func PageTarget(page int, status string) Target {
	return Target{Status: status, Page: page}
}

// NextTarget is the target one page forward, or nil when the current offset
// already covers the tail of the result set.
func NextTarget(offset, limit, total, current int, status string) *Target {
	if offset+limit >= total {
		return nil
	}
	return &Target{Status: status, Page: current + 1}
}

// PreviousTarget is the target one page back, or nil on the first page.
func PreviousTarget(offset, current int, status string) *Target {
	if offset <= 0 {
		return nil
	}
	page := current - 1
	if page < 1 {
		page = 1
	}
	return &Target{Status: status, Page: page}
}
