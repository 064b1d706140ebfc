//go:build gui
// +build gui

package main

import (
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/math-tools/factor-calc/internal/gui/app"
)

const appID = "io.github.math-tools.factor-calc"

// runGUI opens the calculator window and blocks until it is closed.
func runGUI(opts *rootOptions) error {
	guiApp, err := app.NewApplication(opts.logger, opts.config, fyneapp.NewWithID(appID))
	if err != nil {
		return err
	}

	if err := guiApp.Initialize(); err != nil {
		return err
	}

	guiApp.Run()

	return nil
}
