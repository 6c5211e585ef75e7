package api_client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/config"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/domain"
)

var (
	ErrUnexpectedStatus  = errors.New("unexpected response status")
	ErrMalformedResponse = errors.New("malformed response")
)

const defaultUserAgent = "crypto-analytics-dashboard/1.0 (+https://github.com/NastyaGoryachaya/crypto-analytics-dashboard)"

// Client — клиент публичного API CoinGecko (только чтение, без ретраев)
type Client struct {
	cfg        config.CoinGeckoConfig
	httpClient *http.Client
}

// NewClient - Создаёт нового клиента для работы с API CoinGecko.
func NewClient(cfg config.CoinGeckoConfig) *Client {
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	if cfg.PerPage <= 0 {
		cfg.PerPage = domain.DefaultPerPage
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FetchAssets — страница списка монет, отсортированного по капитализации
func (c *Client) FetchAssets(ctx context.Context, page int) ([]domain.AssetSummary, error) {
	if page < 1 {
		return nil, fmt.Errorf("invalid page %d", page)
	}
	q := url.Values{}
	q.Set("vs_currency", c.currency())
	q.Set("order", "market_cap_desc")
	q.Set("per_page", strconv.Itoa(c.cfg.PerPage))
	q.Set("page", strconv.Itoa(page))
	q.Set("sparkline", "false")

	var data []marketsItem
	if err := c.getJSON(ctx, []string{"coins", "markets"}, q, &data); err != nil {
		return nil, err
	}

	out := make([]domain.AssetSummary, 0, len(data))
	for i, d := range data {
		if d.ID == "" {
			return nil, fmt.Errorf("%w: asset #%d has no id", ErrMalformedResponse, i)
		}
		out = append(out, domain.AssetSummary{ID: d.ID, Name: d.Name, Symbol: d.Symbol})
	}
	return out, nil
}

// FetchSeries — исторический ряд цен монеты за окно r
func (c *Client) FetchSeries(ctx context.Context, id string, r domain.Range) ([]domain.PricePoint, error) {
	if err := domain.ValidateAssetID(id); err != nil {
		return nil, err
	}
	if !r.Valid() {
		return nil, domain.ErrInvalidRange
	}
	q := url.Values{}
	q.Set("vs_currency", c.currency())
	q.Set("days", strconv.Itoa(r.Days()))

	var data marketChartResponse
	if err := c.getJSON(ctx, []string{"coins", id, "market_chart"}, q, &data); err != nil {
		return nil, err
	}
	return data.toSeries()
}

// FetchDetail — снимок рыночной статистики монеты
func (c *Client) FetchDetail(ctx context.Context, id string) (domain.AssetDetail, error) {
	if err := domain.ValidateAssetID(id); err != nil {
		return domain.AssetDetail{}, err
	}
	var data coinResponse
	if err := c.getJSON(ctx, []string{"coins", id}, nil, &data); err != nil {
		return domain.AssetDetail{}, err
	}
	return data.toDetail(c.currency())
}

func (c *Client) currency() string {
	return strings.ToLower(c.cfg.Currency)
}

// getJSON — GET {base}/{path...}?{q} и декодирование JSON-ответа в dst
func (c *Client) getJSON(ctx context.Context, path []string, q url.Values, dst any) error {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	u = u.JoinPath(path...)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	ua := c.cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s %s", ErrUnexpectedStatus, resp.Status, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrMalformedResponse, err)
	}
	return nil
}
