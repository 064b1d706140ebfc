package app

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/math-tools/factor-calc/internal/config"
	"github.com/math-tools/factor-calc/internal/report"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	a, err := NewApplication(zap.NewNop(), config.Default(), test.NewTempApp(t))
	require.NoError(t, err)
	require.NoError(t, a.Initialize())
	return a
}

func TestComputeShowsReport(t *testing.T) {
	a := newTestApplication(t)

	test.Type(a.inputA, "12")
	test.Type(a.inputB, "18")
	a.modeSelect.SetSelected("LCM")
	test.Tap(a.computeBtn)

	text, err := a.state.ResultBinding.Get()
	require.NoError(t, err)
	assert.Contains(t, text, "LCM(12, 18) = 2^2 · 3^2")
	assert.Contains(t, text, "LCM value: 36")
	assert.False(t, a.copyBtn.Disabled())
	assert.Equal(t, "2^2 * 3^2", a.state.Export)

	test.Tap(a.copyBtn)
	assert.Equal(t, "2^2 * 3^2", a.window.Clipboard().Content())
}

func TestComputeRejectsInvalidInput(t *testing.T) {
	a := newTestApplication(t)

	test.Type(a.inputA, "12")
	test.Type(a.inputB, "18")
	test.Tap(a.computeBtn)
	require.False(t, a.copyBtn.Disabled())

	a.inputA.SetText("abc")
	test.Tap(a.computeBtn)

	text, err := a.state.ResultBinding.Get()
	require.NoError(t, err)
	assert.Equal(t, report.InvalidInputMessage, text)
	assert.True(t, a.copyBtn.Disabled())
	assert.Empty(t, a.state.Export)
}

func TestDefaultModeSelected(t *testing.T) {
	cfg := config.Default()
	cfg.Calculator.DefaultMode = "lcm"

	a, err := NewApplication(zap.NewNop(), cfg, test.NewTempApp(t))
	require.NoError(t, err)
	require.NoError(t, a.Initialize())

	assert.Equal(t, "LCM", a.modeSelect.Selected)
	mode, _ := a.state.Mode.Get()
	assert.Equal(t, "LCM", mode)
}
