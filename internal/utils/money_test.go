package utils

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 GEL"},
		{950, "950 GEL"},
		{1250, "1,250 GEL"},
		{1234567, "1,234,567 GEL"},
		{-200, "-200 GEL"},
	}
	for _, c := range cases {
		if got := FormatAmount(c.in); got != c.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	for _, raw := range []string{"1,250", "1250 GEL", " 1250 gel "} {
		got, err := ParseAmount(raw)
		if err != nil {
			t.Fatalf("ParseAmount(%q) error: %v", raw, err)
		}
		if got != 1250 {
			t.Errorf("ParseAmount(%q) = %d, want 1250", raw, got)
		}
	}

	if _, err := ParseAmount("GEL"); err == nil {
		t.Error("expected error for amountless input")
	}
}
