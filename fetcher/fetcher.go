// Package fetcher keeps one chat's order-list state machine: which parameter
// tuple is current, whether a fetch is in flight, and the last page that
// arrived for that tuple.
package fetcher

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/xcp/xcpdex.com/api"
	"github.com/xcp/xcpdex.com/logger"
	"github.com/xcp/xcpdex.com/model"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

// ListFunc fetches one page for a query tuple. Production wires api.ListOrders.
type ListFunc func(q api.OrderQuery) (api.OrdersPage, error)

// NotifyFunc observes every state transition that survived the tuple check.
type NotifyFunc func(snap Snapshot)

// Snapshot is an immutable view of the fetcher at one point in time. Orders
// are replaced wholesale on every completed fetch, never merged.
type Snapshot struct {
	State  State
	Query  api.OrderQuery
	Orders []model.Order
	Total  int
}

// Empty reports whether the view should show the no-orders presentation.
// Failed fetches degrade to it on purpose: the user sees "No orders found",
// not a crash, and recovers by navigating or refreshing.
func (s Snapshot) Empty() bool {
	if s.State == StateFailed {
		return true
	}
	return s.State == StateLoaded && len(s.Orders) == 0
}

func (s Snapshot) Loading() bool {
	return s.State == StateLoading
}

// OrderFetcher honors at most one logically current request. Requests are
// tagged with their full query tuple; a completion whose tuple no longer
// matches the current one is dropped without touching state, so a slow stale
// response can never overwrite a newer page.
type OrderFetcher struct {
	list   ListFunc
	notify NotifyFunc

	mu      sync.Mutex
	current api.OrderQuery
	snap    Snapshot
}

func New(list ListFunc, notify NotifyFunc) *OrderFetcher {
	return &OrderFetcher{
		list:   list,
		notify: notify,
	}
}

// Request makes q the current tuple and starts its fetch. Any in-flight
// request is implicitly superseded; its completion will fail the tuple
// comparison and be discarded.
func (f *OrderFetcher) Request(q api.OrderQuery) {
	f.mu.Lock()
	f.current = q
	f.snap = Snapshot{State: StateLoading, Query: q}
	snap := f.snap
	f.mu.Unlock()

	if f.notify != nil {
		f.notify(snap)
	}

	go f.run(q)
}

func (f *OrderFetcher) run(q api.OrderQuery) {
	page, err := f.list(q)

	f.mu.Lock()
	if f.current != q {
		f.mu.Unlock()
		log.Debug().Func(logger.WithCategory(logger.CategoryOrder)).
			Str("status", q.Status).
			Int("offset", q.Offset).
			Msg("dropping stale orders response")
		return
	}

	if err != nil {
		f.snap = Snapshot{State: StateFailed, Query: q}
	} else {
		f.snap = Snapshot{State: StateLoaded, Query: q, Orders: page.Orders, Total: page.Total}
	}
	snap := f.snap
	f.mu.Unlock()

	if f.notify != nil {
		f.notify(snap)
	}
}

// Snapshot returns the current view state.
func (f *OrderFetcher) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap
}

// Refresh re-issues the current tuple; it is the only recovery path after a
// failed fetch besides changing page or status.
func (f *OrderFetcher) Refresh() {
	f.mu.Lock()
	q := f.current
	f.mu.Unlock()
	if q == (api.OrderQuery{}) {
		return
	}
	f.Request(q)
}
