package models

import "time"

// Instrument is the provider's view of a tradable symbol.
//
// Symbol is the provider's canonical ticker; callers compare it against the
// requested symbol to enforce exact-match resolution.
type Instrument struct {
	Symbol   string
	Currency string
	Exchange string
}

// Candle is a single trading day's close as returned by the provider.
// Close is NaN when the provider reports a null close for the day.
type Candle struct {
	Date  time.Time
	Close float64
}

// PriceQuote is the resolved result of a price lookup.
//
// For a current-price lookup Date and ActualDate are empty. For a historical
// lookup Date is the requested day and ActualDate the trading day the price
// actually comes from; the two differ when the requested day had no trading
// and the quote fell back to the closest prior session.
type PriceQuote struct {
	Symbol     string
	Price      float64
	Date       string
	ActualDate string
}

// SymbolCheck is the non-failing existence probe result. CurrentPrice is nil
// when the symbol is invalid or has no usable price data.
type SymbolCheck struct {
	Symbol       string
	Valid        bool
	CurrentPrice *float64
}
