package domain

// FormatOptions controls how a price is rendered.
type FormatOptions struct {
	Currency   CurrencyCode // empty means the caller's preferred currency
	ShowSymbol bool         // only honoured for the base currency
}

// FormatOption mutates FormatOptions.
type FormatOption func(*FormatOptions)

// DefaultFormatOptions returns the options applied before any FormatOption.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{ShowSymbol: true}
}

// WithCurrency renders the price in code instead of the preferred currency.
func WithCurrency(code CurrencyCode) FormatOption {
	return func(o *FormatOptions) {
		o.Currency = code
	}
}

// WithoutSymbol drops the trailing base-currency label.
// Other currencies always show their symbol.
func WithoutSymbol() FormatOption {
	return func(o *FormatOptions) {
		o.ShowSymbol = false
	}
}

// WithSymbol forces the currency label on.
func WithSymbol(show bool) FormatOption {
	return func(o *FormatOptions) {
		o.ShowSymbol = show
	}
}
