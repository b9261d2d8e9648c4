package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Message(t *testing.T) {
	e := New(InvalidSymbol, "Invalid ticker symbol: FAKE123")
	if e.Error() != "Invalid ticker symbol: FAKE123" {
		t.Fatalf("unexpected message %q", e.Error())
	}

	cause := errors.New("dial tcp: connection refused")
	e2 := Wrap(Transport, "Network error while contacting price service", cause)
	if e2.Error() != "Network error while contacting price service: dial tcp: connection refused" {
		t.Fatalf("unexpected message %q", e2.Error())
	}
	if !errors.Is(e2, cause) {
		t.Fatalf("expected wrapped cause to be reachable")
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: Unclassified},
		{name: "plain error", err: errors.New("boom"), want: Unclassified},
		{name: "tagged", err: New(FutureDate, "nope"), want: FutureDate},
		{name: "wrapped tagged", err: fmt.Errorf("outer: %w", New(Transport, "down")), want: Transport},
		{name: "newf", err: Newf(BadFormat, "got: %s", "2024/01/01"), want: BadFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := KindOf(tc.err); got != tc.want {
				t.Fatalf("KindOf=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("wrap: %w", New(InvalidSymbol, "bad"))
	if !Is(err, InvalidSymbol) {
		t.Fatalf("expected InvalidSymbol")
	}
	if Is(err, Transport) {
		t.Fatalf("did not expect Transport")
	}
	if Is(errors.New("boom"), Unclassified) {
		t.Fatalf("untagged errors carry no kind at all")
	}
}

func TestKind_String(t *testing.T) {
	cases := map[Kind]string{
		Unclassified:    "unclassified",
		EmptyInput:      "empty_input",
		BadFormat:       "bad_format",
		BadCalendarDate: "bad_calendar_date",
		FutureDate:      "future_date",
		InvalidSymbol:   "invalid_symbol",
		Transport:       "transport",
	}
	for k, want := range cases {
		if k.String() != want {
			t.Fatalf("%d.String()=%q, want %q", k, k.String(), want)
		}
	}
}
