package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/fromback/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayResolutions prints the resolutions as a table.
func (s *SimpleUI) DisplayResolutions(resolutions []m.Resolution) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Expr", "Length", "Bounds", "Selected"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	failed := 0

	for _, res := range resolutions {
		bounds := formatBounds(res.Lo, res.Hi)
		selected := strings.Join(res.Elements, " ")

		if res.Err != nil {
			failed++
			selected = "error: " + res.Err.Error()

			if res.Lo == 0 && res.Hi == 0 {
				bounds = "-"
			}
		}

		table.Append([]string{res.Expr.String(), fmt.Sprintf("%d", res.Length), bounds, selected})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(resolutions)),
		"",
		"",
		fmt.Sprintf("%d failed", failed),
	})

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

// DisplaySelections prints each selection. Several sources get a header line
// each; failures go to the error stream.
func (s *SimpleUI) DisplaySelections(selections []m.Selection) error {
	multi := len(selections) > 1

	for i, sel := range selections {
		if sel.Err != nil {
			_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "%s: %v\n", sel.Path, sel.Err)
			continue
		}

		if multi {
			if i > 0 {
				s.printf("\n")
			}

			s.printf("==> %s <==\n", sel.Path)
		}

		s.printf("%s", sel.Output)

		if sel.Output != "" && needsNewline(sel) {
			s.printf("\n")
		}
	}

	return nil
}

// Explore is not available without a terminal.
func (s *SimpleUI) Explore(_ ExploreSession) error {
	return ErrNotInteractive
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func formatBounds(lo, hi int) string {
	return fmt.Sprintf("[%d, %d)", lo, hi)
}

// needsNewline reports whether a terminating newline should follow the output.
// Byte and rune selections are written verbatim.
func needsNewline(sel m.Selection) bool {
	switch sel.Unit {
	case m.UnitBytes, m.UnitRunes:
		return false
	default:
		return true
	}
}
