package utils

import (
	"testing"
	"time"
)

func TestParseDateUTC(t *testing.T) {
	d, err := ParseDate(" 2026-09-10 ")
	if err != nil {
		t.Fatalf("ParseDate error: %v", err)
	}
	want := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	if !d.Equal(want) {
		t.Fatalf("got %v, want %v", d, want)
	}

	if _, err := ParseDate("10/09/2026"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestFormatDateTimeNormalizesZone(t *testing.T) {
	tbilisi := time.FixedZone("UTC+4", 4*3600)
	in := time.Date(2026, 9, 10, 2, 30, 0, 0, tbilisi)
	if got := FormatDateTime(in); got != "2026-09-09 22:30:00" {
		t.Fatalf("got %q", got)
	}
	if got := FormatDate(in); got != "2026-09-09" {
		t.Fatalf("got %q", got)
	}
}

func TestParseDateTime(t *testing.T) {
	ts, err := ParseDateTime("2026-09-10 08:30:00")
	if err != nil {
		t.Fatalf("ParseDateTime error: %v", err)
	}
	if ts.Hour() != 8 || ts.Location() != time.UTC {
		t.Fatalf("unexpected parse result: %v", ts)
	}
}
