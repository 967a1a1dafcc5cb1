package catalog

import (
	"math"
	"strconv"
	"strings"
)

// parsePriceBRL converts a display price like "R$ 1.299,90" into cents.
// The comma is the decimal separator; dots are thousand separators and any
// other non-digit byte in the integer part is dropped. Returns false when
// no digits are present.
func parsePriceBRL(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)

	intPart, fracPart := s, ""
	if i := strings.LastIndexByte(s, ','); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	intDigits := digitsOnly(intPart)
	fracDigits := digitsOnly(fracPart)
	if intDigits == "" && fracDigits == "" {
		return 0, false
	}

	if intDigits == "" {
		intDigits = "0"
	}
	switch {
	case len(fracDigits) == 0:
		fracDigits = "00"
	case len(fracDigits) == 1:
		fracDigits += "0"
	case len(fracDigits) > 2:
		fracDigits = fracDigits[:2]
	}

	v, err := strconv.ParseInt(intDigits+fracDigits, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseSoldCount reads a free-text quantity like "2.1k vendidos" by
// stripping every non-digit byte: "2.1k" counts as 21. Empty input is 0.
func parseSoldCount(s string) int64 {
	digits := digitsOnly(s)
	if digits == "" {
		return 0
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return math.MaxInt64
	}
	return v
}

func digitsOnly(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
