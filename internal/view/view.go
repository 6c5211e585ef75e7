// Package view — данные экрана дашборда в готовом для отображения виде.
package view

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/domain"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/stats"
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/store"
)

const (
	notAvailable = "N/A"
	unlimited    = "Unlimited"
	dateLayout   = "2006-01-02"

	DirectionUp   = "up"
	DirectionDown = "down"
)

type Dashboard struct {
	Selector       Selector        `json:"selector"`
	Ranges         []RangeTab      `json:"ranges"`
	Cards          Cards           `json:"cards"`
	AdditionalInfo *AdditionalInfo `json:"additional_info,omitempty"`
	Chart          Chart           `json:"chart"`
}

type Selector struct {
	Selected    string   `json:"selected"`
	Options     []Option `json:"options"`
	LoadingMore bool     `json:"loading_more"`
	HasMore     bool     `json:"has_more"`
}

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"` // Bitcoin (BTC)
}

type RangeTab struct {
	Days   int    `json:"days"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type Cards struct {
	CurrentPrice string `json:"current_price"`
	MarketCap    string `json:"market_cap"`
	Volume24h    string `json:"volume_24h"`
	Change24h    Change `json:"change_24h"`
}

type Change struct {
	Value     string `json:"value"`
	Direction string `json:"direction,omitempty"`
}

type AdditionalInfo struct {
	Supply []SupplyItem `json:"supply"`
	ATH    Milestone    `json:"all_time_high"`
	ATL    Milestone    `json:"all_time_low"`
}

type SupplyItem struct {
	Label    string `json:"label"`
	Tooltip  string `json:"tooltip"`
	Value    string `json:"value"`    // "19.70M BTC" или "Unlimited BTC"
	Progress string `json:"progress"` // проценты от max supply, без ограничения сверху
}

type Milestone struct {
	Price string `json:"price"`
	Date  string `json:"date"`
}

type Chart struct {
	Loading          bool                `json:"loading"`
	AssetID          string              `json:"asset_id"`
	Points           []domain.PricePoint `json:"points"`
	PercentageChange string              `json:"percentage_change"`
}

// Build — собрать экран из снимка состояния
func Build(s store.State) Dashboard {
	d := Dashboard{
		Selector: buildSelector(s),
		Ranges:   buildRanges(s.SelectedRange),
		Cards:    buildCards(s.Detail),
		Chart:    buildChart(s),
	}
	if s.Detail != nil {
		d.AdditionalInfo = buildAdditionalInfo(*s.Detail)
	}
	return d
}

func buildSelector(s store.State) Selector {
	opts := make([]Option, 0, len(s.Assets))
	for _, a := range s.Assets {
		opts = append(opts, Option{ID: a.ID, Label: a.Name + " (" + strings.ToUpper(a.Symbol) + ")"})
	}
	return Selector{
		Selected:    s.SelectedAssetID,
		Options:     opts,
		LoadingMore: s.Pagination.IsLoadingMore,
		HasMore:     s.Pagination.HasMore,
	}
}

func buildRanges(active domain.Range) []RangeTab {
	tabs := make([]RangeTab, 0, len(domain.Ranges))
	for _, r := range domain.Ranges {
		tabs = append(tabs, RangeTab{Days: r.Days(), Label: r.Label(), Active: r == active})
	}
	return tabs
}

// buildCards — без статистики цена "N/A", остальные значения нулевые
func buildCards(d *domain.AssetDetail) Cards {
	if d == nil {
		return Cards{
			CurrentPrice: notAvailable,
			MarketCap:    "$" + stats.FormatLargeNumber(decimal.Zero),
			Volume24h:    "$" + stats.FormatLargeNumber(decimal.Zero),
			Change24h:    Change{Value: notAvailable},
		}
	}
	return Cards{
		CurrentPrice: "$" + d.CurrentPrice.StringFixed(2),
		MarketCap:    "$" + stats.FormatLargeNumber(d.MarketCap),
		Volume24h:    "$" + stats.FormatLargeNumber(d.Volume24h),
		Change24h:    change(d.PriceChange24hPct),
	}
}

func change(pct decimal.Decimal) Change {
	dir := DirectionUp
	if pct.IsNegative() {
		dir = DirectionDown
	}
	return Change{Value: pct.StringFixed(2) + "%", Direction: dir}
}

func buildAdditionalInfo(d domain.AssetDetail) *AdditionalInfo {
	symbol := strings.ToUpper(d.Symbol)
	items := []struct {
		label, tooltip string
		value          decimal.NullDecimal
	}{
		{"Circulating Supply", "The amount of coins currently in circulation", d.CirculatingSupply},
		{"Total Supply", "The total amount of coins in existence", d.TotalSupply},
		{"Max Supply", "The maximum amount of coins that will ever exist", d.MaxSupply},
	}

	supply := make([]SupplyItem, 0, len(items))
	for _, it := range items {
		value := unlimited
		if it.value.Valid && !it.value.Decimal.IsZero() {
			value = stats.FormatLargeNumber(it.value.Decimal)
		}
		supply = append(supply, SupplyItem{
			Label:    it.label,
			Tooltip:  it.tooltip,
			Value:    value + " " + symbol,
			Progress: stats.SupplyPercentage(it.value, d.MaxSupply).StringFixed(2),
		})
	}

	return &AdditionalInfo{
		Supply: supply,
		ATH:    milestone(d.AllTimeHigh),
		ATL:    milestone(d.AllTimeLow),
	}
}

func milestone(m domain.Milestone) Milestone {
	out := Milestone{Price: "$" + m.Price.StringFixed(2), Date: notAvailable}
	if !m.Date.IsZero() {
		out.Date = m.Date.UTC().Format(dateLayout)
	}
	return out
}

// buildChart — пока идёт загрузка, график скрыт, точки не отдаются
func buildChart(s store.State) Chart {
	if s.Loading {
		return Chart{Loading: true, AssetID: s.SelectedAssetID, PercentageChange: decimal.Zero.StringFixed(2)}
	}
	series := s.Series()
	if series == nil {
		series = []domain.PricePoint{}
	}
	return Chart{
		AssetID:          s.SelectedAssetID,
		Points:           series,
		PercentageChange: stats.PercentageChange(series).StringFixed(2),
	}
}
