package factor

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFactorize(t *testing.T, n int64) Factorization {
	t.Helper()
	f, err := Factorize(n)
	require.NoError(t, err)
	return f
}

func euclid(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func TestParseMode(t *testing.T) {
	testCases := []struct {
		in       string
		expected Mode
	}{
		{"GCD", GCD},
		{"gcd", GCD},
		{" LCM ", LCM},
		{"lcm", LCM},
	}

	for _, tc := range testCases {
		got, err := ParseMode(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, got)
	}

	_, err := ParseMode("mean")
	assert.ErrorIs(t, err, ErrInvalidMode)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCombineExample(t *testing.T) {
	a := mustFactorize(t, 12)
	b := mustFactorize(t, 18)

	gcd := Combine(a, b, GCD)
	assert.Equal(t, Factorization{2: 1, 3: 1}, gcd)
	assert.Equal(t, "6", gcd.Value().String())
	assert.Equal(t, "2^1 * 3^1", gcd.Export())

	lcm := Combine(a, b, LCM)
	assert.Equal(t, Factorization{2: 2, 3: 2}, lcm)
	assert.Equal(t, "36", lcm.Value().String())
	assert.Equal(t, "2^2 * 3^2", lcm.Export())
}

func TestCombineDoesNotModifyInputs(t *testing.T) {
	a := Factorization{2: 1}
	b := Factorization{2: 3, 5: 1}
	Combine(a, b, LCM)
	Combine(a, b, GCD)
	assert.Equal(t, Factorization{2: 1}, a)
	assert.Equal(t, Factorization{2: 3, 5: 1}, b)
}

func TestCombineUnknownModePanics(t *testing.T) {
	a := Factorization{2: 1}
	assert.PanicsWithValue(t, `factor: unknown mode "MEAN"`, func() {
		Combine(a, a, Mode("MEAN"))
	})
	assert.Panics(t, func() { Combine(a, a, "") })
}

func TestCombineCoprime(t *testing.T) {
	a := mustFactorize(t, 8)
	b := mustFactorize(t, 15)
	assert.Empty(t, Combine(a, b, GCD))
	assert.Equal(t, "120", Combine(a, b, LCM).Value().String())
}

func TestCombineProperties(t *testing.T) {
	for a := int64(1); a <= 60; a++ {
		for b := int64(1); b <= 60; b++ {
			fa := mustFactorize(t, a)
			fb := mustFactorize(t, b)

			gcd := Combine(fa, fb, GCD).Value().Int64()
			lcm := Combine(fa, fb, LCM).Value().Int64()

			assert.Zero(t, a%gcd, "gcd(%d,%d)=%d must divide a", a, b, gcd)
			assert.Zero(t, b%gcd, "gcd(%d,%d)=%d must divide b", a, b, gcd)
			assert.Equal(t, euclid(a, b), gcd, "gcd(%d,%d) must be greatest", a, b)

			assert.Zero(t, lcm%a, "lcm(%d,%d)=%d must be a multiple of a", a, b, lcm)
			assert.Zero(t, lcm%b, "lcm(%d,%d)=%d must be a multiple of b", a, b, lcm)
			assert.Equal(t, a/euclid(a, b)*b, lcm, "lcm(%d,%d) must be least", a, b)

			assert.Equal(t, a*b, gcd*lcm)
		}
	}
}

func TestCombineLCMDoesNotOverflow(t *testing.T) {
	a := mustFactorize(t, 1_000_000_007)
	b := mustFactorize(t, 998_244_353)

	expected := new(big.Int).Mul(big.NewInt(1_000_000_007), big.NewInt(998_244_353))
	assert.Equal(t, 0, Combine(a, b, LCM).Value().Cmp(expected))
}
