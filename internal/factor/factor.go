// Package factor computes prime factorizations and combines them into the
// greatest common divisor or least common multiple of two integers.
package factor

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
)

var (
	// ErrInvalidInput is returned for values that cannot be factorized.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidMode is returned by ParseMode for anything other than GCD or LCM.
	ErrInvalidMode = fmt.Errorf("%w: unknown mode", ErrInvalidInput)
)

// Factorization maps each prime to its exponent.
type Factorization map[int64]int

// Factorize decomposes n into prime-exponent pairs by trial division up to √n.
// Factorize(1) returns an empty Factorization.
func Factorize(n int64) (Factorization, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d is not a positive integer", ErrInvalidInput, n)
	}

	f := make(Factorization)
	for i := int64(2); i <= n/i; i++ {
		for n%i == 0 {
			f[i]++
			n /= i
		}
	}
	if n > 1 {
		f[n]++
	}

	return f, nil
}

// Primes returns the prime bases in ascending order.
func (f Factorization) Primes() []int64 {
	primes := make([]int64, 0, len(f))
	for p := range f {
		primes = append(primes, p)
	}
	sort.Slice(primes, func(i, j int) bool { return primes[i] < primes[j] })
	return primes
}

// Value multiplies out prime^exponent over all entries. The empty product is 1.
func (f Factorization) Value() *big.Int {
	v := big.NewInt(1)
	term := new(big.Int)
	for p, e := range f {
		term.Exp(big.NewInt(p), big.NewInt(int64(e)), nil)
		v.Mul(v, term)
	}
	return v
}

func (f Factorization) terms() []string {
	terms := make([]string, 0, len(f))
	for _, p := range f.Primes() {
		terms = append(terms, fmt.Sprintf("%d^%d", p, f[p]))
	}
	return terms
}

// Display renders "label = p1^e1 · p2^e2 · …". An empty factorization
// renders as "label = 1".
func (f Factorization) Display(label string) string {
	if len(f) == 0 {
		return label + " = 1"
	}
	return label + " = " + strings.Join(f.terms(), " · ")
}

// Export renders the submission format "p1^e1 * p2^e2 * …", or "1" when empty.
func (f Factorization) Export() string {
	if len(f) == 0 {
		return "1"
	}
	return strings.Join(f.terms(), " * ")
}
