package money

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{187.425, 187.43},
		{207.4, 207.4},
		{0.005, 0.01},
		{12.994, 12.99},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Format(2281.4); got != "2281.40" {
		t.Fatalf("Format = %q, want 2281.40", got)
	}
	if got := Format(2074); got != "2074.00" {
		t.Fatalf("Format = %q, want 2074.00", got)
	}
}
