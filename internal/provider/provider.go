// Package provider defines the narrow capability surface the service needs
// from an external market-data source. Implementations live in subpackages;
// tests swap in stubs returning canned rows.
package provider

import (
	"context"
	"time"

	"github.com/guttosm/tickerpulse/internal/domain/models"
)

// MarketData is the outbound provider contract.
//
// Resolve looks up instrument metadata for a symbol. FetchRange returns daily
// close candles in the half-open window [start, end), ordered by date
// ascending; an empty slice with a nil error means the provider has no rows
// for the window. Both report network-level problems as errs.Transport and
// provider-reported unknown symbols as errs.InvalidSymbol.
type MarketData interface {
	Resolve(ctx context.Context, symbol string) (models.Instrument, error)
	FetchRange(ctx context.Context, symbol string, start, end time.Time) ([]models.Candle, error)
}
