package api_client

import (
	"fmt"
	"time"

	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// marketsItem — элемент ответа /coins/markets (нужны только id, name, symbol)
type marketsItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// marketChartResponse — ответ /coins/{id}/market_chart: пары [timestampMillis, price]
type marketChartResponse struct {
	Prices *[][]decimal.Decimal `json:"prices"`
}

func (r marketChartResponse) toSeries() ([]domain.PricePoint, error) {
	if r.Prices == nil {
		return nil, fmt.Errorf("%w: prices missing", ErrMalformedResponse)
	}
	out := make([]domain.PricePoint, 0, len(*r.Prices))
	for i, pair := range *r.Prices {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: price point #%d has %d values", ErrMalformedResponse, i, len(pair))
		}
		out = append(out, domain.PricePoint{
			Timestamp: time.UnixMilli(pair[0].IntPart()).UTC(),
			Price:     pair[1],
		})
	}
	return out, nil
}

// coinResponse — ответ /coins/{id}
type coinResponse struct {
	ID         string              `json:"id"`
	Symbol     string              `json:"symbol"`
	MarketData *marketDataResponse `json:"market_data"`
}

// marketDataResponse — значения по валютам лежат в map с ключом "usd", "eur"...
type marketDataResponse struct {
	CurrentPrice             map[string]decimal.Decimal `json:"current_price"`
	MarketCap                map[string]decimal.Decimal `json:"market_cap"`
	TotalVolume              map[string]decimal.Decimal `json:"total_volume"`
	PriceChangePercentage24h decimal.NullDecimal        `json:"price_change_percentage_24h"`
	CirculatingSupply        decimal.NullDecimal        `json:"circulating_supply"`
	TotalSupply              decimal.NullDecimal        `json:"total_supply"`
	MaxSupply                decimal.NullDecimal        `json:"max_supply"`
	ATH                      map[string]decimal.Decimal `json:"ath"`
	ATHDate                  map[string]time.Time       `json:"ath_date"`
	ATL                      map[string]decimal.Decimal `json:"atl"`
	ATLDate                  map[string]time.Time       `json:"atl_date"`
}

func (r coinResponse) toDetail(currency string) (domain.AssetDetail, error) {
	md := r.MarketData
	if md == nil {
		return domain.AssetDetail{}, fmt.Errorf("%w: market_data missing", ErrMalformedResponse)
	}
	return domain.AssetDetail{
		ID:                r.ID,
		Symbol:            r.Symbol,
		CurrentPrice:      md.CurrentPrice[currency],
		MarketCap:         md.MarketCap[currency],
		Volume24h:         md.TotalVolume[currency],
		PriceChange24hPct: md.PriceChangePercentage24h.Decimal,
		CirculatingSupply: md.CirculatingSupply,
		TotalSupply:       md.TotalSupply,
		MaxSupply:         md.MaxSupply,
		AllTimeHigh:       domain.Milestone{Price: md.ATH[currency], Date: md.ATHDate[currency].UTC()},
		AllTimeLow:        domain.Milestone{Price: md.ATL[currency], Date: md.ATLDate[currency].UTC()},
	}, nil
}
