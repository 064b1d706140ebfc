package report

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/math-tools/factor-calc/internal/factor"
)

// InvalidInputMessage is shown for any input that cannot be computed.
const InvalidInputMessage = "Please enter valid integers."

// Report holds everything produced by one computation.
type Report struct {
	// ID correlates log entries of one computation; it is not shown to users.
	ID       uuid.UUID
	A        int64
	B        int64
	Mode     factor.Mode
	FactorsA factor.Factorization
	FactorsB factor.Factorization
	Result   factor.Factorization
	Value    *big.Int
}

// Compute parses both integer strings and the mode, then factorizes and
// combines the inputs. Errors wrap factor.ErrInvalidInput.
func Compute(a, b, mode string) (*Report, error) {
	x, err := parseInt(a)
	if err != nil {
		return nil, err
	}
	y, err := parseInt(b)
	if err != nil {
		return nil, err
	}

	m, err := factor.ParseMode(mode)
	if err != nil {
		return nil, err
	}

	fa, err := factor.Factorize(x)
	if err != nil {
		return nil, err
	}
	fb, err := factor.Factorize(y)
	if err != nil {
		return nil, err
	}

	result := factor.Combine(fa, fb, m)

	return &Report{
		ID:       uuid.New(),
		A:        x,
		B:        y,
		Mode:     m,
		FactorsA: fa,
		FactorsB: fb,
		Result:   result,
		Value:    result.Value(),
	}, nil
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", factor.ErrInvalidInput, s)
	}
	return n, nil
}

// Export returns the submission format of the result.
func (r *Report) Export() string {
	return r.Result.Export()
}

// Lines returns the report lines in display order.
func (r *Report) Lines() []string {
	return []string{
		r.FactorsA.Display(strconv.FormatInt(r.A, 10)),
		r.FactorsB.Display(strconv.FormatInt(r.B, 10)),
		r.Result.Display(fmt.Sprintf("%s(%d, %d)", r.Mode, r.A, r.B)),
		fmt.Sprintf("%s value: %s", r.Mode, r.Value),
		"Submission format: " + r.Export(),
	}
}

func (r *Report) String() string {
	return strings.Join(r.Lines(), "\n")
}

// Message turns a Compute error into user-facing text.
func Message(err error) string {
	if errors.Is(err, factor.ErrInvalidInput) {
		return InvalidInputMessage
	}
	return err.Error()
}
