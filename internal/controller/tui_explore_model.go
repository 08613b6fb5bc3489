package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/fromback/internal/model"
)

const (
	maxPreviewLines = 12
	historyHeight   = 6
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
)

// historyDelegate renders pinned expressions, one per line.
type historyDelegate struct{}

func (d historyDelegate) Height() int  { return 1 }
func (d historyDelegate) Spacing() int { return 0 }
func (d historyDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d historyDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	h, ok := item.(historyItem)
	if !ok {
		return
	}

	exprStyle := accentStyle
	if index == l.Index() {
		exprStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	}

	width := l.Width() - lipgloss.Width(h.expr) - lipgloss.Width(h.bounds) - 4
	preview := truncateToWidth(strings.ReplaceAll(h.output, "\n", " ⏎ "), width)

	_, _ = fmt.Fprintf(w, "%s  %s  %s", exprStyle.Render(h.expr), dimStyle.Render(h.bounds), preview)
}

// exploreModel lets the user type an expression and shows what it selects.
type exploreModel struct {
	session  ExploreSession
	input    textinput.Model
	current  m.Selection
	history  list.Model
	width    int
	quitting bool
}

func newExploreModel(session ExploreSession) exploreModel {
	input := textinput.New()
	input.Prompt = "idx> "
	input.Placeholder = "2..^3"
	input.SetValue(session.Initial)
	input.Focus()

	history := list.New([]list.Item{}, historyDelegate{}, 80, historyHeight)
	history.SetShowPagination(false)
	history.SetShowFilter(false)
	history.SetShowHelp(false)
	history.SetShowTitle(false)
	history.SetShowStatusBar(false)
	history.SetFilteringEnabled(false)

	model := exploreModel{
		session: session,
		input:   input,
		history: history,
		width:   80,
	}
	model.evaluate()

	return model
}

func (md *exploreModel) resize(width int) {
	md.width = width
	md.input.Width = max(width-lipgloss.Width(md.input.Prompt)-2, 10)
	md.history.SetSize(width, historyHeight)
}

func (md *exploreModel) evaluate() {
	expr := strings.TrimSpace(md.input.Value())
	if expr == "" || md.session.Evaluate == nil {
		md.current = m.Selection{}
		return
	}

	md.current = md.session.Evaluate(expr)
}

func (md exploreModel) Init() tea.Cmd {
	return textinput.Blink
}

func (md exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		md.resize(msg.Width)

		return md, nil

	case tea.KeyMsg:
		switch msg.Type { //nolint:exhaustive
		case tea.KeyCtrlC, tea.KeyEsc:
			md.quitting = true
			return md, tea.Quit
		case tea.KeyEnter:
			cmd := md.pin()

			return md, cmd
		case tea.KeyUp, tea.KeyDown:
			var cmd tea.Cmd

			md.history, cmd = md.history.Update(msg)

			return md, cmd
		case tea.KeyTab:
			if item, ok := md.history.SelectedItem().(historyItem); ok {
				md.input.SetValue(item.expr)
				md.input.CursorEnd()
				md.evaluate()
			}

			return md, nil
		}
	}

	var cmd tea.Cmd

	before := md.input.Value()
	md.input, cmd = md.input.Update(msg)

	if md.input.Value() != before {
		md.evaluate()
	}

	return md, cmd
}

// pin records the current expression at the top of the history.
func (md *exploreModel) pin() tea.Cmd {
	if md.current.Expr == nil || md.current.Err != nil {
		return nil
	}

	expr := md.current.Expr.String()
	for _, item := range md.history.Items() {
		if h, ok := item.(historyItem); ok && h.expr == expr {
			return nil
		}
	}

	return md.history.InsertItem(0, historyItem{
		expr:   expr,
		bounds: formatBounds(md.current.Lo, md.current.Hi),
		output: md.current.Output,
	})
}

func (md exploreModel) View() string {
	if md.quitting {
		return ""
	}

	length := md.current.Length
	header := titleStyle.Render("fromback") + "  " + dimStyle.Render(fmt.Sprintf(
		"%s · %s · %d %s", md.session.Path, md.session.Unit, length, md.session.Unit,
	))

	sections := []string{header, md.input.View(), md.renderResult()}

	if len(md.history.Items()) > 0 {
		sections = append(sections, dimStyle.Render("pinned"), md.history.View())
	}

	sections = append(sections, dimStyle.Render("enter pin • ↑/↓ pinned • tab recall • esc quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (md exploreModel) renderResult() string {
	sel := md.current

	switch {
	case sel.Err != nil:
		return errorStyle.Render(sel.Err.Error())
	case sel.Expr == nil:
		return dimStyle.Render("type an index or range, ^ counts from the back")
	}

	summary := fmt.Sprintf("%s → %s, %d of %d",
		accentStyle.Render(sel.Expr.String()),
		formatBounds(sel.Lo, sel.Hi),
		sel.Hi-sel.Lo,
		sel.Length,
	)

	return lipgloss.JoinVertical(lipgloss.Left, summary, previewStyle.Render(md.preview(sel.Output)))
}

func (md exploreModel) preview(output string) string {
	lines := strings.Split(output, "\n")
	if len(lines) > maxPreviewLines {
		more := len(lines) - maxPreviewLines
		lines = append(lines[:maxPreviewLines], dimStyle.Render(fmt.Sprintf("… %d more", more)))
	}

	width := md.width - 4
	for i, line := range lines {
		lines[i] = truncateToWidth(line, width)
	}

	return strings.Join(lines, "\n")
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
