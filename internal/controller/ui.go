// Package controller provides output adapters for displaying resolutions and selections.
package controller

import (
	"errors"

	m "github.com/mouse-blink/fromback/internal/model"
)

// ErrNotInteractive is returned by UIs that cannot run the explorer.
var ErrNotInteractive = errors.New("interactive explorer needs a terminal")

// Evaluator applies an expression typed in the explorer to the loaded source.
type Evaluator func(expr string) m.Selection

// ExploreSession describes the source opened in the explorer.
type ExploreSession struct {
	Path     m.Path
	Unit     m.Unit
	Initial  string
	Evaluate Evaluator
}

// UI defines the interface for displaying results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayResolutions(resolutions []m.Resolution) error
	DisplaySelections(selections []m.Selection) error
	Explore(session ExploreSession) error
}
