package boutiqueserver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceInt(t *testing.T) {
	cases := map[string]int32{
		"":             0,
		"7":            7,
		"  12":         12,
		"+3":           3,
		"-4":           -4,
		"5abc":         5,
		"abc":          0,
		"3.9":          3,
		"- 2":          0,
		"99999999999":  math.MaxInt32,
		"-99999999999": math.MinInt32,
		"-2147483648":  math.MinInt32,
		"1e3":          1000,
		"1.5e3":        1500,
		"2E+2":         200,
		"7e-1":         0,
		"1e":           1,
		"4e+x":         4,
		".5":           0,
		"-.5e1":        -5,
		"3.":           3,
		"1e999":        math.MaxInt32,
		"-1e999":       math.MinInt32,
	}
	for raw, want := range cases {
		assert.Equal(t, want, coerceInt(raw), "coerceInt(%q)", raw)
	}
}
