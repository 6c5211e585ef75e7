package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultAssetID = "bitcoin"
	DefaultPerPage = 50
)

// AssetSummary — элемент списка монет (селектор)
type AssetSummary struct {
	ID     string `json:"id"`     // bitcoin, ethereum
	Name   string `json:"name"`   // Bitcoin
	Symbol string `json:"symbol"` // btc
}

// PricePoint — точка ценового ряда
type PricePoint struct {
	Timestamp time.Time       `json:"timestamp"` // UTC
	Price     decimal.Decimal `json:"price"`
}

// Milestone — экстремум цены и дата, когда он был достигнут
type Milestone struct {
	Price decimal.Decimal `json:"price"`
	Date  time.Time       `json:"date"`
}

// AssetDetail — снимок рыночной статистики монеты
type AssetDetail struct {
	ID                string              `json:"id"`
	Symbol            string              `json:"symbol"`
	CurrentPrice      decimal.Decimal     `json:"current_price"`
	MarketCap         decimal.Decimal     `json:"market_cap"`
	Volume24h         decimal.Decimal     `json:"volume_24h"`
	PriceChange24hPct decimal.Decimal     `json:"price_change_24h_pct"`
	CirculatingSupply decimal.NullDecimal `json:"circulating_supply"`
	TotalSupply       decimal.NullDecimal `json:"total_supply"`
	MaxSupply         decimal.NullDecimal `json:"max_supply"` // Valid=false — эмиссия не ограничена
	AllTimeHigh       Milestone           `json:"all_time_high"`
	AllTimeLow        Milestone           `json:"all_time_low"`
}

// ValidateAssetID — id монеты идёт в путь запроса как один сегмент:
// разделители пути, query, fragment, escape-последовательности и "."/".." запрещены
func ValidateAssetID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyAssetID
	}
	if id == "." || id == ".." || strings.ContainsAny(id, "/\\?#% \t\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetID, id)
	}
	return nil
}
