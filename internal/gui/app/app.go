package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/math-tools/factor-calc/internal/config"
	"github.com/math-tools/factor-calc/internal/factor"
	"github.com/math-tools/factor-calc/internal/gui/state"
	"github.com/math-tools/factor-calc/internal/gui/style"
	"github.com/math-tools/factor-calc/internal/report"
)

// Application represents the main GUI application
type Application struct {
	logger *zap.Logger
	cfg    *config.Config

	// Fyne app and window
	fyneApp fyne.App
	window  fyne.Window
	theme   *style.Theme

	state      *state.AppState
	calculator *report.Calculator

	// UI elements
	inputA      *widget.Entry
	inputB      *widget.Entry
	modeSelect  *widget.Select
	computeBtn  *widget.Button
	copyBtn     *widget.Button
	resultLabel *widget.Label
}

// NewApplication creates the calculator window on the given fyne app.
func NewApplication(logger *zap.Logger, cfg *config.Config, fyneApp fyne.App) (*Application, error) {
	th, err := style.NewTheme(cfg.Style, cfg.GUI.Theme)
	if err != nil {
		return nil, err
	}

	fyneApp.Settings().SetTheme(th)

	window := fyneApp.NewWindow(cfg.GUI.Title)
	window.Resize(fyne.NewSize(float32(cfg.GUI.Width), float32(cfg.GUI.Height)))
	window.SetFixedSize(cfg.GUI.FixedSize)
	window.CenterOnScreen()

	return &Application{
		logger:     logger,
		cfg:        cfg,
		fyneApp:    fyneApp,
		window:     window,
		theme:      th,
		state:      state.NewAppState(cfg.Calculator.DefaultMode),
		calculator: report.NewCalculator(logger),
	}, nil
}

// Initialize builds the widgets and lays out the window.
func (a *Application) Initialize() error {
	a.state.StatusBinding.Set("Ready")
	a.createInputs()
	a.createButtons()
	a.createResultArea()
	a.createLayout()

	a.logger.Info("GUI initialized",
		zap.String("title", a.cfg.GUI.Title),
		zap.String("theme", a.cfg.GUI.Theme))
	return nil
}

// Run shows the window and blocks until it is closed.
func (a *Application) Run() {
	a.window.ShowAndRun()
	a.logger.Info("GUI closed")
}

func (a *Application) createInputs() {
	a.inputA = widget.NewEntryWithData(a.state.InputA)
	a.inputA.SetPlaceHolder("Enter first number")
	a.inputA.OnSubmitted = func(string) { a.handleCompute() }

	a.inputB = widget.NewEntryWithData(a.state.InputB)
	a.inputB.SetPlaceHolder("Enter second number")
	a.inputB.OnSubmitted = func(string) { a.handleCompute() }

	a.modeSelect = widget.NewSelect(factor.Modes(), func(mode string) {
		a.state.Mode.Set(mode)
	})
	mode, _ := a.state.Mode.Get()
	if m, err := factor.ParseMode(mode); err == nil {
		a.modeSelect.SetSelected(string(m))
	} else {
		a.modeSelect.SetSelected(string(factor.GCD))
	}
}

func (a *Application) createButtons() {
	a.computeBtn = widget.NewButton("Compute", a.handleCompute)
	a.computeBtn.Importance = widget.HighImportance

	a.copyBtn = widget.NewButtonWithIcon("Copy submission", theme.ContentCopyIcon(), a.handleCopy)
	a.copyBtn.Disable()
}

func (a *Application) createResultArea() {
	a.resultLabel = widget.NewLabelWithData(a.state.ResultBinding)
	a.resultLabel.Wrapping = fyne.TextWrapWord
	a.resultLabel.Selectable = true
	a.resultLabel.TextStyle = fyne.TextStyle{Monospace: true}
}

func (a *Application) createLayout() {
	palette := a.theme.Palette()

	resultBackground := canvas.NewRectangle(palette.Surface)
	resultBackground.StrokeColor = palette.Input
	resultBackground.StrokeWidth = 1
	resultBackground.CornerRadius = 6
	result := container.NewStack(resultBackground, container.NewVScroll(container.NewPadded(a.resultLabel)))

	status := widget.NewLabelWithData(a.state.StatusBinding)
	status.TextStyle = fyne.TextStyle{Italic: true}

	controls := container.NewVBox(
		container.NewGridWithColumns(2, a.inputA, a.inputB),
		a.modeSelect,
		a.computeBtn,
	)
	footer := container.NewHBox(status, layout.NewSpacer(), a.copyBtn)

	frame := canvas.NewRectangle(palette.Background)
	frame.StrokeColor = palette.Border
	frame.StrokeWidth = 2
	frame.CornerRadius = 10

	content := container.NewBorder(controls, footer, nil, nil, result)
	a.window.SetContent(container.NewPadded(container.NewStack(frame, container.NewPadded(content))))
	a.window.Canvas().Focus(a.inputA)
}

func (a *Application) handleCompute() {
	in := a.state.Snapshot()
	text := a.calculator.Run(in.A, in.B, in.Mode)

	export := ""
	if r := a.calculator.Last(); r != nil {
		export = r.Export()
		a.copyBtn.Enable()
	} else {
		a.copyBtn.Disable()
	}
	a.state.SetResult(text, export)
}

func (a *Application) handleCopy() {
	if a.state.Export == "" {
		return
	}
	a.window.Clipboard().SetContent(a.state.Export)
	a.state.StatusBinding.Set("Copied submission format")
}
