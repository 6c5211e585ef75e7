package api_client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/config"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(config.CoinGeckoConfig{
		BaseURL:   srv.URL + "/api/v3",
		Currency:  "USD",
		PerPage:   50,
		Timeout:   2 * time.Second,
		UserAgent: "dashboard-test",
	})
}

func TestFetchAssets_Success(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/coins/markets" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		want := map[string]string{
			"vs_currency": "usd",
			"order":       "market_cap_desc",
			"per_page":    "50",
			"page":        "3",
			"sparkline":   "false",
		}
		for k, v := range want {
			if q.Get(k) != v {
				t.Errorf("query %s = %q, want %q", k, q.Get(k), v)
			}
		}
		if r.Header.Get("User-Agent") != "dashboard-test" {
			t.Errorf("unexpected user agent: %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"bitcoin","name":"Bitcoin","symbol":"btc","current_price":70000},
			{"id":"ethereum","name":"Ethereum","symbol":"eth","current_price":3500}
		]`))
	})

	got, err := c.FetchAssets(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(got))
	}
	// порядок ответа API сохраняется
	if got[0] != (domain.AssetSummary{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc"}) || got[1].ID != "ethereum" {
		t.Fatalf("unexpected assets: %+v", got)
	}
}

func TestFetchAssets_EmptyPage(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	got, err := c.FetchAssets(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty page, got %+v", got)
	}
}

func TestFetchAssets_InvalidPage(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be sent for page 0")
	})
	if _, err := c.FetchAssets(context.Background(), 0); err == nil {
		t.Fatal("expected error for page 0")
	}
}

func TestFetchAssets_BadStatus(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":{"error_code":429}}`, http.StatusTooManyRequests)
	})

	_, err := c.FetchAssets(context.Background(), 1)
	if !errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}
}

func TestFetchSeries_Success(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/coins/bitcoin/market_chart" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("days") != "7" || r.URL.Query().Get("vs_currency") != "usd" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{
			"prices": [[1711843200000, 69420.5], [1711846800000, 69500.123456789]],
			"market_caps": [], "total_volumes": []
		}`))
	})

	got, err := c.FetchSeries(context.Background(), "bitcoin", domain.Range7D)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if !got[0].Timestamp.Equal(time.UnixMilli(1711843200000)) || got[0].Timestamp.Location() != time.UTC {
		t.Fatalf("unexpected timestamp: %v", got[0].Timestamp)
	}
	if got[1].Price.String() != "69500.123456789" {
		t.Fatalf("price precision lost: %s", got[1].Price)
	}
}

func TestFetchSeries_MissingPrices(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"coin not found"}`))
	})

	_, err := c.FetchSeries(context.Background(), "nope", domain.Range30D)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestFetchSeries_BadPair(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"prices": [[1711843200000]]}`))
	})

	_, err := c.FetchSeries(context.Background(), "bitcoin", domain.Range1D)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestFetchSeries_Validation(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be sent")
	})

	if _, err := c.FetchSeries(context.Background(), " ", domain.Range1D); !errors.Is(err, domain.ErrEmptyAssetID) {
		t.Fatalf("expected ErrEmptyAssetID, got %v", err)
	}
	if _, err := c.FetchSeries(context.Background(), "bitcoin", domain.Range(14)); !errors.Is(err, domain.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

// id монеты не может увести запрос на другой эндпоинт API
func TestFetchDetail_RejectsPathInID(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request must not be sent, got path %q", r.URL.Path)
		_, _ = w.Write([]byte(`{}`))
	})

	for _, id := range []string{"../../simple/price", "..", "bitcoin/tickers", "bitcoin?x=1", "bit%2Fcoin"} {
		if _, err := c.FetchDetail(context.Background(), id); !errors.Is(err, domain.ErrInvalidAssetID) {
			t.Fatalf("FetchDetail(%q): expected ErrInvalidAssetID, got %v", id, err)
		}
		if _, err := c.FetchSeries(context.Background(), id, domain.Range7D); !errors.Is(err, domain.ErrInvalidAssetID) {
			t.Fatalf("FetchSeries(%q): expected ErrInvalidAssetID, got %v", id, err)
		}
	}
}

func TestFetchDetail_Success(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/coins/bitcoin" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"id": "bitcoin",
			"symbol": "btc",
			"market_data": {
				"current_price": {"usd": 70123.45, "eur": 65000},
				"market_cap": {"usd": 1380000000000},
				"total_volume": {"usd": 25000000000},
				"price_change_percentage_24h": -1.2345,
				"circulating_supply": 19700000,
				"total_supply": 21000000,
				"max_supply": 21000000,
				"ath": {"usd": 73738},
				"ath_date": {"usd": "2024-03-14T07:10:36.635Z"},
				"atl": {"usd": 67.81},
				"atl_date": {"usd": "2013-07-06T00:00:00.000Z"}
			}
		}`))
	})

	got, err := c.FetchDetail(context.Background(), "bitcoin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "bitcoin" || got.Symbol != "btc" {
		t.Fatalf("unexpected identity: %+v", got)
	}
	if got.CurrentPrice.String() != "70123.45" || got.MarketCap.String() != "1380000000000" {
		t.Fatalf("unexpected prices: %s %s", got.CurrentPrice, got.MarketCap)
	}
	if got.PriceChange24hPct.String() != "-1.2345" {
		t.Fatalf("unexpected 24h change: %s", got.PriceChange24hPct)
	}
	if !got.MaxSupply.Valid || got.MaxSupply.Decimal.String() != "21000000" {
		t.Fatalf("unexpected max supply: %+v", got.MaxSupply)
	}
	wantATH := time.Date(2024, 3, 14, 7, 10, 36, 635000000, time.UTC)
	if !got.AllTimeHigh.Date.Equal(wantATH) || got.AllTimeHigh.Price.String() != "73738" {
		t.Fatalf("unexpected ATH: %+v", got.AllTimeHigh)
	}
	if got.AllTimeLow.Price.String() != "67.81" {
		t.Fatalf("unexpected ATL: %+v", got.AllTimeLow)
	}
}

// max_supply = null — эмиссия не ограничена
func TestFetchDetail_UnlimitedSupply(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"id": "ethereum",
			"symbol": "eth",
			"market_data": {
				"current_price": {"usd": 3500},
				"circulating_supply": 120000000,
				"total_supply": 120000000,
				"max_supply": null
			}
		}`))
	})

	got, err := c.FetchDetail(context.Background(), "ethereum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.MaxSupply.Valid {
		t.Fatalf("max supply must be absent, got %+v", got.MaxSupply)
	}
	if !got.CirculatingSupply.Valid {
		t.Fatal("circulating supply must be present")
	}
	if !got.MarketCap.IsZero() {
		t.Fatalf("missing market cap must decode as zero, got %s", got.MarketCap)
	}
}

func TestFetchDetail_MissingMarketData(t *testing.T) {
	t.Parallel()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"bitcoin","symbol":"btc"}`))
	})

	_, err := c.FetchDetail(context.Background(), "bitcoin")
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestFetchDetail_TransportError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := NewClient(config.CoinGeckoConfig{BaseURL: base, Timeout: time.Second})
	_, err := c.FetchDetail(context.Background(), "bitcoin")
	if err == nil {
		t.Fatal("expected transport error")
	}
	if errors.Is(err, ErrMalformedResponse) || errors.Is(err, ErrUnexpectedStatus) {
		t.Fatalf("transport error must not be classified as response error: %v", err)
	}
}
