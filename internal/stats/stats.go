// Package stats — производные показатели дашборда: изменение цены за окно,
// сокращённая запись больших чисел и доля эмиссии.
package stats

import (
	"github.com/NastyaGoryachaya/crypto-analytics-dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.New(1, 3)
	million  = decimal.New(1, 6)
	billion  = decimal.New(1, 9)
)

// PercentageChange — изменение цены от первой до последней точки ряда, в процентах,
// округлённое до 2 знаков. Меньше двух точек или нулевая стартовая цена — 0.
func PercentageChange(series []domain.PricePoint) decimal.Decimal {
	if len(series) < 2 {
		return decimal.Zero
	}
	first := series[0].Price
	last := series[len(series)-1].Price
	if first.IsZero() {
		return decimal.Zero
	}
	return last.Sub(first).Div(first).Mul(hundred).Round(2)
}

// FormatLargeNumber — 2 знака после запятой и суффикс B/M/K.
// Порог строгий, и сами пороги сокращения не получают: ровно 1000000 — "1000000.00".
func FormatLargeNumber(n decimal.Decimal) string {
	switch {
	case n.Equal(billion), n.Equal(million), n.Equal(thousand):
		return n.StringFixed(2)
	case n.GreaterThan(billion):
		return n.Div(billion).StringFixed(2) + "B"
	case n.GreaterThan(million):
		return n.Div(million).StringFixed(2) + "M"
	case n.GreaterThan(thousand):
		return n.Div(thousand).StringFixed(2) + "K"
	default:
		return n.StringFixed(2)
	}
}

// SupplyPercentage — supply / maxSupply * 100 без ограничения сверху.
// Отсутствующее или нулевое значение любого аргумента — 0.
func SupplyPercentage(supply, maxSupply decimal.NullDecimal) decimal.Decimal {
	if !supply.Valid || !maxSupply.Valid || supply.Decimal.IsZero() || maxSupply.Decimal.IsZero() {
		return decimal.Zero
	}
	return supply.Decimal.Div(maxSupply.Decimal).Mul(hundred)
}
