package catalog

import "testing"

func TestParsePriceBRL(t *testing.T) {
	tests := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"R$ 89,90", 8990, true},
		{"R$ 29,90", 2990, true},
		{"R$ 149,90", 14990, true},
		{"R$ 1.299,00", 129900, true},
		{"89,90", 8990, true},
		{"R$ 89", 8900, true},
		{"R$ ,90", 90, true},
		{"R$ 89,9", 8990, true},
		{"R$ 89,905", 8990, true},
		{"", 0, false},
		{"grátis", 0, false},
		{"R$", 0, false},
	}

	for _, tt := range tests {
		cents, ok := parsePriceBRL(tt.in)
		if ok != tt.ok || cents != tt.cents {
			t.Errorf("parsePriceBRL(%q) = (%d, %v), want (%d, %v)", tt.in, cents, ok, tt.cents, tt.ok)
		}
	}
}

func TestParseSoldCount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"500 vendidos", 500},
		{"2.1k vendidos", 21},
		{"10k vendidos", 10},
		{"0 vendidos", 0},
		{"vendidos", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := parseSoldCount(tt.in); got != tt.want {
			t.Errorf("parseSoldCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
