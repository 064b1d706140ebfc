package state

import (
	"fyne.io/fyne/v2/data/binding"
)

// AppState holds the values bound to the calculator widgets.
type AppState struct {
	InputA binding.String
	InputB binding.String
	Mode   binding.String

	ResultBinding binding.String
	StatusBinding binding.String

	// Submission string of the last successful computation.
	Export string
}

// Inputs is a copy of the bound values taken when Compute is pressed.
type Inputs struct {
	A    string
	B    string
	Mode string
}

// NewAppState creates a new application state
func NewAppState(defaultMode string) *AppState {
	s := &AppState{
		InputA:        binding.NewString(),
		InputB:        binding.NewString(),
		Mode:          binding.NewString(),
		ResultBinding: binding.NewString(),
		StatusBinding: binding.NewString(),
	}
	s.Mode.Set(defaultMode)
	return s
}

// Snapshot reads the inputs at invocation time.
func (s *AppState) Snapshot() Inputs {
	a, _ := s.InputA.Get()
	b, _ := s.InputB.Get()
	mode, _ := s.Mode.Get()
	return Inputs{A: a, B: b, Mode: mode}
}

// SetResult publishes the result text and remembers the export string;
// export is empty when the computation was rejected.
func (s *AppState) SetResult(text, export string) {
	s.Export = export
	s.ResultBinding.Set(text)
	if export == "" {
		s.StatusBinding.Set("Invalid input")
	} else {
		s.StatusBinding.Set("Ready")
	}
}
