package strategy

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		raw   string
		want  Strategy
		valid bool
	}{
		{"", Recommended, false},
		{"recommended", Recommended, true},
		{"Rating", Rating, true},
		{" price-low ", PriceLow, true},
		{"price-high", PriceHigh, true},
		{"reviews", Reviews, true},
		{"distance", Distance, true},
		{"cheapest", Recommended, false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.raw)
		if got != tt.want || ok != tt.valid {
			t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.valid)
		}
	}
}

func TestIsValid_Unknown(t *testing.T) {
	if Strategy("newest").IsValid() {
		t.Error("newest must not be valid")
	}
}
