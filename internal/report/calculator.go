package report

import (
	"go.uber.org/zap"
)

// Calculator is the boundary used by the window and the terminal frontends.
type Calculator struct {
	logger *zap.Logger
	last   *Report
}

// NewCalculator returns a Calculator logging to logger; nil discards logs.
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// Run computes a report and returns the text to show. Invalid input never
// fails; it produces the user message instead.
func (c *Calculator) Run(a, b, mode string) string {
	r, err := Compute(a, b, mode)
	if err != nil {
		c.logger.Warn("Rejected input",
			zap.String("a", a),
			zap.String("b", b),
			zap.String("mode", mode),
			zap.Error(err))
		c.last = nil
		return Message(err)
	}

	c.logger.Debug("Computed",
		zap.String("id", r.ID.String()),
		zap.Int64("a", r.A),
		zap.Int64("b", r.B),
		zap.String("mode", string(r.Mode)),
		zap.String("value", r.Value.String()))

	c.last = r
	return r.String()
}

// Last returns the most recent successful report, or nil after a rejection.
func (c *Calculator) Last() *Report {
	return c.last
}
