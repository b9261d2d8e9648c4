package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestErrorResponse_Error(t *testing.T) {
	e := ErrorResponse{Message: "oops"}
	if e.Error() != "oops" {
		t.Fatalf("want 'oops' got %q", e.Error())
	}
	e2 := ErrorResponse{Message: "oops", ErrorDetails: "bad"}
	if e2.Error() != "oops: bad" {
		t.Fatalf("want 'oops: bad' got %q", e2.Error())
	}
}

func TestNewErrorResponse(t *testing.T) {
	// without inner error
	e := NewErrorResponse("msg", nil)
	if e.Message != "msg" || e.ErrorDetails != "" {
		t.Fatalf("unexpected %+v", e)
	}
	if e.Timestamp.IsZero() || time.Since(e.Timestamp) > time.Second {
		t.Fatalf("timestamp not set")
	}

	// with inner error
	err := errors.New("boom")
	e2 := NewErrorResponse("msg", err)
	if e2.ErrorDetails != "boom" || e2.Message != "msg" {
		t.Fatalf("unexpected %+v", e2)
	}

	// empty details must be omitted from JSON
	b, _ := json.Marshal(e)
	if strings.Contains(string(b), `"error"`) {
		t.Fatalf("empty error details serialized: %s", b)
	}
}

func TestSymbolCheckResponse_NullPrice(t *testing.T) {
	// A nil price must serialize as an explicit null, never be omitted:
	// clients distinguish "invalid symbol" by seeing current_price: null.
	b, err := json.Marshal(SymbolCheckResponse{Symbol: "FAKE123", Valid: false})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"current_price":null`) {
		t.Fatalf("expected explicit null, got %s", b)
	}
}

func TestPriceResponse_OmitsEmptyDates(t *testing.T) {
	b, err := json.Marshal(PriceResponse{Symbol: "AAPL", CurrentPrice: 185.92})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "date") {
		t.Fatalf("current-price body must not carry dates: %s", b)
	}
}
