package controller

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mouse-blink/fromback/internal/adapter"
	m "github.com/mouse-blink/fromback/internal/model"
)

// TUI implements UI with lipgloss styling and a Bubble Tea explorer.
type TUI struct {
	output  io.Writer
	errOut  io.Writer
	options []tea.ProgramOption
}

// NewTUI creates a new TUI. The explorer reads keys from the controlling
// terminal, so it works when the source itself comes from stdin.
func NewTUI(output, errOut io.Writer) *TUI {
	return &TUI{
		output:  output,
		errOut:  errOut,
		options: []tea.ProgramOption{tea.WithOutput(output), tea.WithInputTTY(), tea.WithAltScreen()},
	}
}

// DisplayResolutions prints one styled line per resolution.
func (t *TUI) DisplayResolutions(resolutions []m.Resolution) error {
	lengthStyle := dimStyle

	for _, res := range resolutions {
		line := fmt.Sprintf("%s %s ",
			accentStyle.Render(fmt.Sprintf("%-10s", res.Expr.String())),
			lengthStyle.Render(fmt.Sprintf("len %-4d", res.Length)),
		)

		switch {
		case res.Err != nil:
			line += errorStyle.Render(res.Err.Error())
		case len(res.Elements) > 0:
			line += formatBounds(res.Lo, res.Hi) + "  " + strings.Join(res.Elements, " ")
		default:
			line += formatBounds(res.Lo, res.Hi)
		}

		_, _ = fmt.Fprintln(t.output, line)
	}

	return nil
}

// DisplaySelections prints the selections, with a styled header per source
// when there are several.
func (t *TUI) DisplaySelections(selections []m.Selection) error {
	multi := len(selections) > 1

	for i, sel := range selections {
		if sel.Err != nil {
			_, _ = fmt.Fprintln(t.errOut, errorStyle.Render(fmt.Sprintf("%s: %v", sel.Path, sel.Err)))
			continue
		}

		if multi {
			if i > 0 {
				_, _ = fmt.Fprintln(t.output)
			}

			_, _ = fmt.Fprintln(t.output, lipgloss.JoinHorizontal(lipgloss.Top,
				titleStyle.Render(string(sel.Path)),
				dimStyle.Render(fmt.Sprintf("  %s %s of %d", sel.Expr, formatBounds(sel.Lo, sel.Hi), sel.Length)),
			))
		}

		_, _ = fmt.Fprint(t.output, sel.Output)

		if sel.Output != "" && needsNewline(sel) {
			_, _ = fmt.Fprintln(t.output)
		}
	}

	return nil
}

// Explore runs the interactive explorer until the user quits.
func (t *TUI) Explore(session ExploreSession) error {
	model := newExploreModel(session)
	if width, _, ok := adapter.TerminalSize(t.output); ok {
		model.resize(width)
	}

	return t.run(model)
}

func (t *TUI) run(model tea.Model) error {
	program := tea.NewProgram(model, t.options...)
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
