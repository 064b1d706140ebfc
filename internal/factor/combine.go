package factor

import (
	"fmt"
	"strings"
)

// Mode selects how two factorizations are combined.
type Mode string

const (
	GCD Mode = "GCD"
	LCM Mode = "LCM"
)

// Modes lists the supported modes in display order.
func Modes() []string {
	return []string{string(GCD), string(LCM)}
}

// ParseMode accepts "GCD" or "LCM" in any case.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToUpper(strings.TrimSpace(s))) {
	case GCD:
		return GCD, nil
	case LCM:
		return LCM, nil
	default:
		return "", fmt.Errorf("%w %q", ErrInvalidMode, s)
	}
}

// Combine takes the element-wise minimum over shared primes (GCD) or the
// element-wise maximum over all primes (LCM). Inputs are not modified.
// Modes other than GCD and LCM panic; use ParseMode on external input.
func Combine(a, b Factorization, mode Mode) Factorization {
	result := make(Factorization)

	switch mode {
	case GCD:
		for p, ea := range a {
			if eb, ok := b[p]; ok {
				result[p] = min(ea, eb)
			}
		}
	case LCM:
		for p, e := range a {
			result[p] = e
		}
		for p, e := range b {
			result[p] = max(result[p], e)
		}
	default:
		panic(fmt.Sprintf("factor: unknown mode %q", string(mode)))
	}

	return result
}
