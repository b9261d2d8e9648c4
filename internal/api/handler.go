package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/tickerpulse/internal/domain/dto"
	"github.com/guttosm/tickerpulse/internal/domain/errs"
	"github.com/guttosm/tickerpulse/internal/middleware"
	"github.com/guttosm/tickerpulse/internal/service"
	"github.com/guttosm/tickerpulse/internal/validation"
)

// Handler provides HTTP handlers for the price lookup endpoints.
//
// Responsibilities:
//   - Validate incoming query parameters before any provider call
//   - Delegate to the price service
//   - Map tagged error kinds onto HTTP status codes
//   - Return structured JSON responses
type Handler struct {
	svc service.PriceService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.PriceService) *Handler {
	return &Handler{svc: svc}
}

// GetPrice handles GET /api/v1/price requests.
//
// Query Parameters:
//   - symbol (string, required): Ticker symbol (e.g., "AAPL").
//   - date (string, optional): Historical date in YYYY-MM-DD format. When
//     absent the most recent trading day's close is returned.
//
// GetPrice godoc
// @Summary      Get a ticker price
// @Description  Returns the current close for a symbol, or the close on a given date falling back to the closest prior trading day
// @Tags         price
// @Produce      json
// @Param        symbol  query     string  true   "Ticker symbol" example(AAPL)
// @Param        date    query     string  false  "Date in YYYY-MM-DD" example(2024-01-14)
// @Success      200     {object}  dto.PriceResponse      "Success"
// @Failure      400     {object}  dto.ErrorResponse      "Validation failure"
// @Failure      404     {object}  dto.ErrorResponse      "Unknown symbol or no data"
// @Failure      503     {object}  dto.ErrorResponse      "Provider unreachable"
// @Failure      500     {object}  dto.ErrorResponse      "Unexpected failure"
// @Router       /api/v1/price [get]
func (h *Handler) GetPrice(c *gin.Context) {
	symbol, err := validation.Symbol(c.Query("symbol"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Symbol cannot be empty", nil))
		return
	}

	date := c.Query("date")
	if date == "" {
		quote, err := h.svc.CurrentPrice(c.Request.Context(), symbol)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.PriceResponse{Symbol: quote.Symbol, CurrentPrice: quote.Price})
		return
	}

	// Validation happens before any outbound call: a bad date costs zero I/O.
	if _, err := validation.Date(date); err != nil {
		respondError(c, err)
		return
	}

	quote, err := h.svc.HistoricalPrice(c.Request.Context(), symbol, date)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.PriceResponse{
		Symbol:       quote.Symbol,
		CurrentPrice: quote.Price,
		Date:         quote.Date,
	}
	if quote.ActualDate != quote.Date {
		resp.ActualDate = quote.ActualDate
	}
	c.JSON(http.StatusOK, resp)
}

// CheckSymbol handles GET /api/v1/check-symbol requests.
//
// The probe reports validity as data: an unknown symbol is a 200 with
// valid=false and current_price=null, never a 404.
//
// CheckSymbol godoc
// @Summary      Probe a ticker symbol
// @Description  Reports whether a symbol is known and priced, without failing on unknown symbols
// @Tags         price
// @Produce      json
// @Param        symbol  query     string  true  "Ticker symbol" example(AAPL)
// @Success      200     {object}  dto.SymbolCheckResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse        "Missing symbol"
// @Failure      503     {object}  dto.ErrorResponse        "Provider unreachable"
// @Failure      500     {object}  dto.ErrorResponse        "Unexpected failure"
// @Router       /api/v1/check-symbol [get]
func (h *Handler) CheckSymbol(c *gin.Context) {
	symbol, err := validation.Symbol(c.Query("symbol"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Symbol cannot be empty", nil))
		return
	}

	check, err := h.svc.CheckSymbol(c.Request.Context(), symbol)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SymbolCheckResponse{
		Symbol:       check.Symbol,
		Valid:        check.Valid,
		CurrentPrice: check.CurrentPrice,
	})
}

// respondError maps a tagged error onto a status code and a client-safe body.
//
// Client-input kinds are 400, invalid-symbol 404, transport 503. Everything
// else is a 500 whose body never carries the internal error text; the cause
// is attached to the context for the logging middleware instead.
func respondError(c *gin.Context, err error) {
	switch errs.KindOf(err) {
	case errs.EmptyInput, errs.BadFormat, errs.BadCalendarDate, errs.FutureDate:
		middleware.AbortWithError(c, http.StatusBadRequest, domainMessage(err), nil)
	case errs.InvalidSymbol:
		middleware.AbortWithError(c, http.StatusNotFound, domainMessage(err), nil)
	case errs.Transport:
		_ = c.Error(err)
		middleware.AbortWithError(c, http.StatusServiceUnavailable, domainMessage(err), nil)
	default:
		_ = c.Error(err)
		middleware.AbortWithError(c, http.StatusInternalServerError, "Unexpected error", nil)
	}
}

// domainMessage returns the tagged message without any wrapped cause, so a
// "connection refused" never rides along into a response body.
func domainMessage(err error) string {
	var e *errs.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Unexpected error"
}
