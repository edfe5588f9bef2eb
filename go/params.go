package boutiqueserver

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// coerceInt reads a query value the way a loosely typed caller expects: leading whitespace is
// skipped and the longest numeric prefix (sign, digits, fraction, exponent) is truncated toward
// zero. Anything else yields 0. Values outside the int32 range saturate.
func coerceInt(raw string) int32 {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")
	end := numericPrefix(s)
	if end == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	switch {
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int32(f)
}

// numericPrefix returns the length of the leading decimal number in s, or 0 when there is none.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intEnd := skipDigits(s, i)
	intDigits := intEnd - i
	i = intEnd

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracEnd := skipDigits(s, i+1)
		fracDigits = fracEnd - i - 1
		if fracDigits > 0 {
			i = fracEnd
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if expEnd := skipDigits(s, j); expEnd > j {
			i = expEnd
		}
	}
	return i
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
