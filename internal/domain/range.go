package domain

import (
	"strconv"
	"strings"
)

// Range — окно истории в днях
type Range int

const (
	Range1D   Range = 1
	Range7D   Range = 7
	Range30D  Range = 30
	Range365D Range = 365

	DefaultRange = Range30D
)

// Ranges — допустимые окна в порядке вкладок
var Ranges = []Range{Range1D, Range7D, Range30D, Range365D}

func (r Range) Days() int { return int(r) }

// Label — подпись вкладки
func (r Range) Label() string {
	switch r {
	case Range1D:
		return "24h"
	case Range7D:
		return "7d"
	case Range30D:
		return "30d"
	case Range365D:
		return "1y"
	default:
		return strconv.Itoa(int(r)) + "d"
	}
}

func (r Range) Valid() bool {
	for _, v := range Ranges {
		if v == r {
			return true
		}
	}
	return false
}

// RangeFromDays — проверяет количество дней
func RangeFromDays(days int) (Range, error) {
	r := Range(days)
	if !r.Valid() {
		return 0, ErrInvalidRange
	}
	return r, nil
}

// ParseRange — принимает "30" или подпись вкладки ("30d", "24h", "1y")
func ParseRange(s string) (Range, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, r := range Ranges {
		if s == r.Label() {
			return r, nil
		}
	}
	days, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrInvalidRange
	}
	return RangeFromDays(days)
}
