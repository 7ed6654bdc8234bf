package services

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// numberSymbols holds the grouping and decimal separators of a display locale.
type numberSymbols struct {
	group   string
	decimal string
}

// localeNumberSymbols reads the separators off a sample rendered by x/text for tag.
// Locales whose sample cannot be split fall back to "," and ".".
func localeNumberSymbols(tag language.Tag) numberSymbols {
	sample := message.NewPrinter(tag).Sprint(number.Decimal(1234567.5, number.Scale(1)))

	var seps []string
	var cur strings.Builder
	for _, r := range sample {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				seps = append(seps, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}

	switch len(seps) {
	case 3: // 1<g>234<g>567<d>5
		return numberSymbols{group: seps[0], decimal: seps[2]}
	case 1: // 1234567<d>5
		return numberSymbols{decimal: seps[0]}
	default:
		return numberSymbols{group: ",", decimal: "."}
	}
}

// format renders d with exactly places decimals, grouping the integer digits by three.
// It works on the decimal's text, so amounts of any magnitude keep every digit.
func (ns numberSymbols) format(d decimal.Decimal, places int32) string {
	text := d.StringFixed(places)

	sign := ""
	if strings.HasPrefix(text, "-") {
		sign, text = "-", text[1:]
	}

	intPart, fracPart, _ := strings.Cut(text, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(ns.group)
		}
		b.WriteRune(digit)
	}
	if fracPart != "" {
		b.WriteString(ns.decimal)
		b.WriteString(fracPart)
	}
	return b.String()
}
