package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestOrderQueryURL(t *testing.T) {
	tests := []struct {
		name  string
		query OrderQuery
		want  url.Values
	}{
		{
			name:  "all status leaves the filter off",
			query: OrderQuery{Endpoint: "http://dex/api/orders", Status: "all", Limit: 100, Offset: 0},
			want:  url.Values{"verbose": {"true"}, "limit": {"100"}, "offset": {"0"}},
		},
		{
			name:  "empty status leaves the filter off",
			query: OrderQuery{Endpoint: "http://dex/api/orders", Status: "", Limit: 100, Offset: 200},
			want:  url.Values{"verbose": {"true"}, "limit": {"100"}, "offset": {"200"}},
		},
		{
			name:  "real status filter is appended",
			query: OrderQuery{Endpoint: "http://dex/api/orders", Status: "open", Limit: 100, Offset: 100},
			want:  url.Values{"verbose": {"true"}, "status": {"open"}, "limit": {"100"}, "offset": {"100"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.query.URL())
			if err != nil {
				t.Fatalf("URL() produced unparseable url: %v", err)
			}
			got := u.Query()
			if len(got) != len(tt.want) {
				t.Fatalf("got params %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got.Get(k) != v[0] {
					t.Errorf("param %s = %q, want %q", k, got.Get(k), v[0])
				}
			}
		})
	}
}

func TestListOrders(t *testing.T) {
	t.Run("normal page", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result":[{"tx_hash":"abc","tx_index":7,"status":"open","block_time":1700000000,"source":"1CounterpartyXXXXXXXXXXXXXXXUWLpVr","give_asset":"XCP","give_quantity":100000000,"get_asset":"PEPECASH","get_quantity":500000000}],"result_count":250}`))
		}))
		defer srv.Close()

		page, err := ListOrders(OrderQuery{Endpoint: srv.URL, Status: "open", Limit: 100, Offset: 0})
		if err != nil {
			t.Fatalf("ListOrders: %v", err)
		}
		if page.Total != 250 {
			t.Errorf("Total = %d, want 250", page.Total)
		}
		if len(page.Orders) != 1 || page.Orders[0].TxHash != "abc" {
			t.Errorf("unexpected orders: %+v", page.Orders)
		}
	})

	t.Run("missing result and result_count read as empty", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		page, err := ListOrders(OrderQuery{Endpoint: srv.URL, Status: "all", Limit: 100, Offset: 0})
		if err != nil {
			t.Fatalf("ListOrders: %v", err)
		}
		if len(page.Orders) != 0 || page.Total != 0 {
			t.Errorf("want empty page, got %+v", page)
		}
	})

	t.Run("malformed body is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>not json</html>`))
		}))
		defer srv.Close()

		if _, err := ListOrders(OrderQuery{Endpoint: srv.URL, Status: "all", Limit: 100, Offset: 0}); err == nil {
			t.Fatal("expected error for malformed body")
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		defer srv.Close()

		if _, err := ListOrders(OrderQuery{Endpoint: srv.URL, Status: "all", Limit: 100, Offset: 0}); err == nil {
			t.Fatal("expected error for 502")
		}
	})

	t.Run("status filter reaches the wire", func(t *testing.T) {
		var gotQuery url.Values
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			w.Write([]byte(`{"result":[],"result_count":0}`))
		}))
		defer srv.Close()

		if _, err := ListOrders(OrderQuery{Endpoint: srv.URL, Status: "filled", Limit: 100, Offset: 300}); err != nil {
			t.Fatalf("ListOrders: %v", err)
		}
		if gotQuery.Get("verbose") != "true" || gotQuery.Get("status") != "filled" ||
			gotQuery.Get("limit") != "100" || gotQuery.Get("offset") != "300" {
			t.Errorf("wire query = %v", gotQuery)
		}
	})
}

func TestGetOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/def" {
			w.Write([]byte(`{"result":{"tx_hash":"def","status":"filled"}}`))
			return
		}
		w.Write([]byte(`{"result":null}`))
	}))
	defer srv.Close()

	order, err := GetOrder(srv.URL, "def")
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if order.TxHash != "def" || order.Status != "filled" {
		t.Errorf("unexpected order %+v", order)
	}

	if _, err := GetOrder(srv.URL, "missing"); err == nil {
		t.Fatal("expected error for null result")
	}
}
