package dto

// PriceResponse represents the JSON structure returned by the
// GET /api/v1/price endpoint.
//
// For a current-price lookup only symbol and current_price are set. For a
// historical lookup date echoes the requested day and actual_date is present
// only when the quote fell back to an earlier trading day.
type PriceResponse struct {
	Symbol       string  `json:"symbol" example:"AAPL"`                          // Ticker symbol requested
	CurrentPrice float64 `json:"current_price" example:"189.95"`                 // Closing price
	Date         string  `json:"date,omitempty" example:"2024-01-14"`            // Requested date (historical lookups)
	ActualDate   string  `json:"actual_date,omitempty" example:"2024-01-12"`     // Resolved trading day, when it differs
}

// SymbolCheckResponse represents the JSON structure returned by the
// GET /api/v1/check-symbol endpoint.
//
// This endpoint reports validity as data: an unknown symbol is a 200 with
// valid=false and a null current_price, never a 404.
type SymbolCheckResponse struct {
	Symbol       string   `json:"symbol" example:"AAPL"`
	Valid        bool     `json:"valid" example:"true"`
	CurrentPrice *float64 `json:"current_price" example:"189.95"`
}
