package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the conversion rate between two currencies, as loaded from a rate source.
type ExchangeRate struct {
	FromCurrencyCode CurrencyCode    `json:"fromCurrencyCode"`
	ToCurrencyCode   CurrencyCode    `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
}

// rateDivisionPrecision is the number of decimal places kept when deriving cross rates.
const rateDivisionPrecision = 16

// unitsPerBase holds how many units of each currency one unit of the base currency buys.
// These are build-time constants and are never refreshed.
var unitsPerBase = map[CurrencyCode]decimal.Decimal{
	XOF: decimal.NewFromInt(1),
	EUR: decimal.RequireFromString("0.0015"),
	USD: decimal.RequireFromString("0.0017"),
}

// RateTable is a square (from, to) -> multiplier mapping. The diagonal is always one.
type RateTable struct {
	rates map[CurrencyCode]map[CurrencyCode]decimal.Decimal
}

var defaultRateTable = NewRateTableFromBase(unitsPerBase)

// DefaultRateTable returns the static table compiled into the binary.
func DefaultRateTable() RateTable {
	return defaultRateTable
}

// NewRateTableFromBase derives every cross rate from per-base unit values,
// so that rate(a, b) = perBase[b] / perBase[a].
func NewRateTableFromBase(perBase map[CurrencyCode]decimal.Decimal) RateTable {
	rates := make(map[CurrencyCode]map[CurrencyCode]decimal.Decimal, len(perBase))
	for from, fromUnits := range perBase {
		row := make(map[CurrencyCode]decimal.Decimal, len(perBase))
		for to, toUnits := range perBase {
			if from == to {
				row[to] = decimal.NewFromInt(1)
				continue
			}
			row[to] = toUnits.DivRound(fromUnits, rateDivisionPrecision)
		}
		rates[from] = row
	}
	return RateTable{rates: rates}
}

// NewRateTable builds a table from explicit rows, filling gaps from fallback.
// Rows naming an unsupported currency or carrying a non-positive rate are ignored.
// A pair given in one direction only gets its reverse as the reciprocal, so that
// converting there and back stays within rounding of the original amount.
// It returns the table and the number of rows that were applied.
func NewRateTable(rows []ExchangeRate, fallback RateTable) (RateTable, int) {
	rates := make(map[CurrencyCode]map[CurrencyCode]decimal.Decimal, len(fallback.rates))
	for from, row := range fallback.rates {
		copied := make(map[CurrencyCode]decimal.Decimal, len(row))
		for to, r := range row {
			copied[to] = r
		}
		rates[from] = copied
	}
	set := func(from, to CurrencyCode, r decimal.Decimal) {
		if rates[from] == nil {
			rates[from] = make(map[CurrencyCode]decimal.Decimal)
		}
		rates[from][to] = r
	}

	type pair struct{ from, to CurrencyCode }
	explicit := make(map[pair]decimal.Decimal, len(rows))
	applied := 0
	for _, row := range rows {
		if !IsSupported(row.FromCurrencyCode) || !IsSupported(row.ToCurrencyCode) {
			continue
		}
		if row.FromCurrencyCode == row.ToCurrencyCode || !row.Rate.IsPositive() {
			continue
		}
		explicit[pair{row.FromCurrencyCode, row.ToCurrencyCode}] = row.Rate
		set(row.FromCurrencyCode, row.ToCurrencyCode, row.Rate)
		applied++
	}

	one := decimal.NewFromInt(1)
	for p, r := range explicit {
		if _, ok := explicit[pair{p.to, p.from}]; ok {
			continue
		}
		set(p.to, p.from, one.DivRound(r, rateDivisionPrecision))
	}
	return RateTable{rates: rates}, applied
}

// Rate returns the multiplier converting from into to.
func (t RateTable) Rate(from, to CurrencyCode) (decimal.Decimal, bool) {
	if from == to && IsSupported(from) {
		return decimal.NewFromInt(1), true
	}
	row, ok := t.rates[from]
	if !ok {
		return decimal.Zero, false
	}
	r, ok := row[to]
	return r, ok
}
