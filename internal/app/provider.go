package app

import (
	"github.com/guttosm/tickerpulse/config"
	"github.com/guttosm/tickerpulse/internal/provider/yahoo"
)

// InitProvider builds the Yahoo chart client from the provider section of the
// application configuration.
//
// Returns:
//   - *yahoo.Client: a ready client sharing one connection pool (safe for
//     concurrent use across requests).
//   - error: if the configured base URL is unusable.
//
// Example usage:
//
//	client, err := app.InitProvider(config.AppConfig)
//	if err != nil {
//	    log.Fatalf("failed to build provider client: %v", err)
//	}
//	defer client.Close()
func InitProvider(cfg config.Config) (*yahoo.Client, error) {
	return yahoo.New(yahoo.Config{
		BaseURL:   cfg.Provider.BaseURL,
		Timeout:   cfg.Provider.Timeout,
		UserAgent: cfg.Provider.UserAgent,
	})
}

// providerOpener is an indirection used by InitializeApp; overridden in tests
// to point the app at a fake provider.
var providerOpener = InitProvider
