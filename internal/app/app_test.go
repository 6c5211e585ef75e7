package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/config"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/view"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/pkg/logger"
)

func fakeCoinGecko(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/coins/markets":
			if r.URL.Query().Get("page") != "1" {
				_, _ = w.Write([]byte(`[]`))
				return
			}
			_, _ = w.Write([]byte(`[{"id":"bitcoin","name":"Bitcoin","symbol":"btc"},{"id":"ethereum","name":"Ethereum","symbol":"eth"}]`))
		case strings.HasSuffix(r.URL.Path, "/market_chart"):
			_, _ = w.Write([]byte(`{"prices":[[1711843200000,100],[1711846800000,125]]}`))
		case strings.HasPrefix(r.URL.Path, "/coins/"):
			_, _ = w.Write([]byte(`{"id":"bitcoin","symbol":"btc","market_data":{"current_price":{"usd":125},"max_supply":21000000,"circulating_supply":19700000}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(baseURL string) config.Config {
	return config.Config{
		Server: config.ServerConfig{
			Addr:            "127.0.0.1:0",
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: 2 * time.Second,
		},
		CoinGecko: config.CoinGeckoConfig{
			BaseURL:  baseURL,
			Currency: "usd",
			PerPage:  50,
			Timeout:  time.Second,
		},
		Dashboard: config.DashboardConfig{DefaultAsset: "bitcoin", DefaultRange: 30},
	}
}

func TestNewApp_InvalidRange(t *testing.T) {
	cfg := testConfig("http://127.0.0.1")
	cfg.Dashboard.DefaultRange = 14

	_, err := NewApp(cfg, logger.Discard())
	require.Error(t, err)
}

// Старт: грузится первая страница и данные монеты по умолчанию; по отмене контекста сервер останавливается
func TestRun_InitialLoadAndShutdown(t *testing.T) {
	api := fakeCoinGecko(t)
	a, err := NewApp(testConfig(api.URL), logger.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool { return a.e.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)
	base := "http://" + a.e.ListenerAddr().String()

	require.Eventually(t, func() bool {
		st := a.store.State()
		return len(st.Assets) == 2 && st.Detail != nil && !st.Loading
	}, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get(base + "/api/dashboard")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var d view.Dashboard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
	assert.Equal(t, "$125.00", d.Cards.CurrentPrice)
	assert.Equal(t, "25.00", d.Chart.PercentageChange)
	assert.Len(t, d.Selector.Options, 2)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancel")
	}
}
