package api

import (
	"encoding/json"
	"errors"
	"net/url"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"
	"github.com/tidwall/gjson"

	"github.com/xcp/xcpdex.com/logger"
	"github.com/xcp/xcpdex.com/model"
)

var (
	ErrListOrders = errors.New("list orders request failed")
	ErrGetOrder   = errors.New("get order request failed")
)

// OrderQuery is the full parameter tuple of one list fetch. It is comparable
// on purpose: the fetcher tags every in-flight request with its tuple and
// drops completions whose tuple is no longer current.
type OrderQuery struct {
	Endpoint string
	Status   string
	Limit    int
	Offset   int
}

// URL renders the query the way the endpoint expects it: verbose always on,
// status only when it actually filters ("all" is the no-filter sentinel),
// limit and offset always present.
func (q OrderQuery) URL() string {
	params := url.Values{}
	params.Set("verbose", "true")
	if q.Status != "" && q.Status != "all" {
		params.Set("status", q.Status)
	}
	params.Set("limit", cast.ToString(q.Limit))
	params.Set("offset", cast.ToString(q.Offset))

	return q.Endpoint + "?" + params.Encode()
}

// OrdersPage is one fetched page plus the full result count behind it.
type OrdersPage struct {
	Orders []model.Order
	Total  int
}

func ListOrders(q OrderQuery) (OrdersPage, error) {
	var page OrdersPage

	rawURL := q.URL()
	data, err := doGet(rawURL)
	if err != nil {
		log.Error().Func(func(e *zerolog.Event) {
			logger.WithNetworkCategory(e).Err(err).Str("url", rawURL).Send()
		})
		return page, ErrListOrders
	}

	if !gjson.ValidBytes(data) {
		log.Error().Func(logger.WithCategory(logger.CategoryNetwork)).Str("url", rawURL).Msg("orders response is not valid json")
		return page, ErrListOrders
	}

	resp, err := model.UnmarshalOrdersResp(data)
	if err != nil {
		log.Error().Err(err).Func(logger.WithCategory(logger.CategoryNetwork)).Str("url", rawURL).Send()
		return page, ErrListOrders
	}

	// absent result / result_count read as an empty page, same as a genuine
	// zero-results answer
	page.Orders = resp.Result
	page.Total = resp.ResultCount

	log.Debug().Func(func(e *zerolog.Event) {
		logger.WithOrderCategory(e).Func(func(e *zerolog.Event) {
			e.Str("url", rawURL).
				Int("orders", len(page.Orders)).
				Int("result_count", page.Total).
				Send()
		})
	})

	return page, nil
}

func GetOrder(endpoint, txHash string) (*model.Order, error) {
	rawURL := endpoint + "/" + url.PathEscape(txHash) + "?verbose=true"
	data, err := doGet(rawURL)
	if err != nil {
		log.Error().Err(err).Func(logger.WithCategory(logger.CategoryNetwork)).Str("url", rawURL).Send()
		return nil, ErrGetOrder
	}

	if gjson.GetBytes(data, "result").Type == gjson.Null {
		return nil, ErrGetOrder
	}

	var resp model.OrderResp
	if err := json.Unmarshal(data, &resp); err != nil {
		log.Error().Err(err).Func(logger.WithCategory(logger.CategoryNetwork)).Str("url", rawURL).Send()
		return nil, ErrGetOrder
	}
	if resp.Result == nil {
		return nil, ErrGetOrder
	}

	logger.NewStdLog(rawURL, data)

	return resp.Result, nil
}
