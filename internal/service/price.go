package service

import (
	"context"
	"math"
	"time"

	"github.com/guttosm/tickerpulse/internal/domain/errs"
	"github.com/guttosm/tickerpulse/internal/domain/models"
	"github.com/guttosm/tickerpulse/internal/provider"
)

// currentWindowDays is how far back the current-price lookup reaches to cover
// weekends and market holidays before the most recent session.
const currentWindowDays = 5

// fallbackWindowDays is how far back the historical lookup widens when the
// requested day itself produced no trading data.
const fallbackWindowDays = 30

// PriceService defines the quote lookups exposed over HTTP.
// It decouples handlers from the provider client and owns the business rules:
// strict canonical-symbol matching and the prior-trading-day fallback.
type PriceService interface {
	CurrentPrice(ctx context.Context, symbol string) (*models.PriceQuote, error)
	HistoricalPrice(ctx context.Context, symbol, date string) (*models.PriceQuote, error)
	CheckSymbol(ctx context.Context, symbol string) (*models.SymbolCheck, error)
}

type priceService struct {
	md provider.MarketData
}

func NewPriceService(md provider.MarketData) PriceService {
	return &priceService{md: md}
}

// CurrentPrice returns the most recent trading day's close for a symbol.
//
// Rules:
//   - The provider's canonical symbol must equal the requested one exactly
//     (case-sensitive). A mismatch is errs.InvalidSymbol.
//   - Zero rows or a non-finite close is also errs.InvalidSymbol: "no data"
//     is deliberately folded into symbol invalidity rather than being its
//     own error kind.
func (s *priceService) CurrentPrice(ctx context.Context, symbol string) (*models.PriceQuote, error) {
	if err := s.resolveExact(ctx, symbol); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	candles, err := s.md.FetchRange(ctx, symbol, now.AddDate(0, 0, -currentWindowDays), now.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	if len(candles) == 0 {
		return nil, errs.Newf(errs.InvalidSymbol, "No price data available for symbol: %s", symbol)
	}

	last := candles[len(candles)-1]
	if !isFinite(last.Close) {
		return nil, errs.Newf(errs.InvalidSymbol, "No valid price data for symbol: %s", symbol)
	}

	return &models.PriceQuote{Symbol: symbol, Price: last.Close}, nil
}

// HistoricalPrice returns the close for a specific day, falling back to the
// closest prior trading day when that day produced no data.
//
// The date string has already passed validation; it is parsed here only to
// build the query window. Lookup order:
//  1. Exact single-day window [date, date+1d). A hit is an exact-date quote.
//  2. Widened window [date-30d, date+1d). The last row of the ascending
//     result is the closest prior session; its date becomes ActualDate.
//  3. An empty widened window is errs.InvalidSymbol ("no price data on or
//     before"), the same fold as every other no-data condition.
func (s *priceService) HistoricalPrice(ctx context.Context, symbol, date string) (*models.PriceQuote, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, errs.Wrap(errs.Unclassified, "unparseable date reached price lookup", err)
	}

	if err := s.resolveExact(ctx, symbol); err != nil {
		return nil, err
	}

	candles, err := s.md.FetchRange(ctx, symbol, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	if len(candles) == 0 {
		candles, err = s.md.FetchRange(ctx, symbol, day.AddDate(0, 0, -fallbackWindowDays), day.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
	}
	if len(candles) == 0 {
		return nil, errs.Newf(errs.InvalidSymbol, "No price data on or before %s for symbol: %s", date, symbol)
	}

	last := candles[len(candles)-1]
	if !isFinite(last.Close) {
		return nil, errs.Newf(errs.InvalidSymbol, "No valid price data for symbol: %s", symbol)
	}

	return &models.PriceQuote{
		Symbol:     symbol,
		Price:      last.Close,
		Date:       date,
		ActualDate: last.Date.Format("2006-01-02"),
	}, nil
}

// CheckSymbol probes whether a symbol is known and priced. Unlike the price
// lookups it never fails on symbol problems: every invalid-symbol condition
// folds into Valid=false with a nil price. Transport and unclassified
// failures still propagate as errors.
func (s *priceService) CheckSymbol(ctx context.Context, symbol string) (*models.SymbolCheck, error) {
	invalid := &models.SymbolCheck{Symbol: symbol, Valid: false}

	if err := s.resolveExact(ctx, symbol); err != nil {
		if errs.KindOf(err) == errs.InvalidSymbol {
			return invalid, nil
		}
		return nil, err
	}

	now := time.Now().UTC()
	candles, err := s.md.FetchRange(ctx, symbol, now.AddDate(0, 0, -currentWindowDays), now.AddDate(0, 0, 1))
	if err != nil {
		if errs.KindOf(err) == errs.InvalidSymbol {
			return invalid, nil
		}
		return nil, err
	}
	if len(candles) == 0 {
		return invalid, nil
	}

	last := candles[len(candles)-1]
	if !isFinite(last.Close) {
		return invalid, nil
	}

	price := last.Close
	return &models.SymbolCheck{Symbol: symbol, Valid: true, CurrentPrice: &price}, nil
}

// resolveExact confirms the provider knows the symbol under exactly the
// requested spelling. The case-sensitive comparison is a deliberate strict
// check, not an oversight.
func (s *priceService) resolveExact(ctx context.Context, symbol string) error {
	inst, err := s.md.Resolve(ctx, symbol)
	if err != nil {
		return err
	}
	if inst.Symbol != symbol {
		return errs.Newf(errs.InvalidSymbol, "Invalid ticker symbol: %s", symbol)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
