package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestLocaleNumberSymbols(t *testing.T) {
	en := localeNumberSymbols(language.AmericanEnglish)
	assert.Equal(t, numberSymbols{group: ",", decimal: "."}, en)

	fr := localeNumberSymbols(language.MustParse("fr-FR"))
	assert.Equal(t, ",", fr.decimal)
	assert.Contains(t, []string{"\u00a0", "\u202f", " "}, fr.group)
}

func TestNumberSymbols_Format(t *testing.T) {
	ns := numberSymbols{group: ",", decimal: "."}

	tests := []struct {
		name   string
		amount string
		places int32
		want   string
	}{
		{name: "no grouping needed", amount: "999", places: 0, want: "999"},
		{name: "four digits", amount: "1000", places: 0, want: "1,000"},
		{name: "rounds half away from zero", amount: "12345.5", places: 0, want: "12,346"},
		{name: "pads cents", amount: "1.5", places: 2, want: "1.50"},
		{name: "negative", amount: "-1234567.891", places: 2, want: "-1,234,567.89"},
		{name: "beyond int64", amount: "123456789012345678901234", places: 0, want: "123,456,789,012,345,678,901,234"},
		{name: "beyond float64 precision", amount: "12345678901234567.89", places: 2, want: "12,345,678,901,234,567.89"},
		{name: "zero", amount: "0", places: 2, want: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ns.format(decimal.RequireFromString(tt.amount), tt.places))
		})
	}
}
