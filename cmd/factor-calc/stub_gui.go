//go:build !gui
// +build !gui

package main

import "errors"

func runGUI(_ *rootOptions) error {
	return errors.New("GUI mode not available in this build; rebuild with -tags gui or use the compute/repl commands")
}
