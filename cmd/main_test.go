package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"reflect"
	"syscall"
	"testing"
	"time"

	"github.com/guttosm/tickerpulse/internal/domain/models"
)

type dummyHandler struct{}

func (d dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestStartServerAndShutdown(t *testing.T) {
	srv := startServer(dummyHandler{}, "0") // random port
	if srv == nil {
		t.Fatalf("expected server")
	}

	// Give server a moment to start
	time.Sleep(50 * time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		t.Fatalf("shutdown err: %v", err)
	}
}

func TestGracefulShutdown_SignalPath(t *testing.T) {
	srv := startServer(dummyHandler{}, "0")

	cleaned := make(chan struct{}, 1)
	go func() {
		ctx := context.Background()
		gracefulShutdown(ctx, srv, func() { close(cleaned) })
	}()

	// Give the goroutine time to set up signal notifications
	time.Sleep(50 * time.Millisecond)

	// Send SIGTERM to current process
	p, _ := os.FindProcess(os.Getpid())
	_ = p.Signal(syscall.SIGTERM)

	select {
	case <-cleaned:
		// success
	case <-time.After(2 * time.Second):
		t.Fatalf("cleanup not called after SIGTERM")
	}
}

func TestSplitSymbols(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"AAPL", []string{"AAPL"}},
		{"AAPL,MSFT", []string{"AAPL", "MSFT"}},
		{" AAPL , ,MSFT,", []string{"AAPL", "MSFT"}},
	}
	for _, tc := range cases {
		got := splitSymbols(tc.in)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("splitSymbols(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

type fetchStub struct {
	err error
}

func (f *fetchStub) CurrentPrice(_ context.Context, symbol string) (*models.PriceQuote, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.PriceQuote{Symbol: symbol, Price: 1.0}, nil
}

func (f *fetchStub) HistoricalPrice(_ context.Context, symbol, date string) (*models.PriceQuote, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.PriceQuote{Symbol: symbol, Price: 1.0, Date: date, ActualDate: date}, nil
}

func (f *fetchStub) CheckSymbol(_ context.Context, symbol string) (*models.SymbolCheck, error) {
	return &models.SymbolCheck{Symbol: symbol}, nil
}

func TestFetchQuotes(t *testing.T) {
	if err := fetchQuotes(context.Background(), &fetchStub{}, []string{"AAPL", "MSFT"}, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := fetchQuotes(context.Background(), &fetchStub{}, []string{"AAPL"}, "2024-01-12"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	boom := errors.New("boom")
	if err := fetchQuotes(context.Background(), &fetchStub{err: boom}, []string{"AAPL"}, ""); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
