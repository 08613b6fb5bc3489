// Package domain implements index expression parsing and the selection
// workflows behind the fromback CLI.
package domain

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/fromback/internal/adapter"
	"github.com/mouse-blink/fromback/internal/controller"
	m "github.com/mouse-blink/fromback/internal/model"
)

var (
	// ErrNoLength is returned by Explain when there is nothing to resolve against.
	ErrNoLength = errors.New("no length to resolve against")
	// ErrSelectionFailed is returned by Select when some sources could not be sliced.
	ErrSelectionFailed = errors.New("selection failed")
)

// ExplainArgs holds the parameters for Explain.
type ExplainArgs struct {
	Exprs []string
	// Lengths to resolve every expression against. Ignored when Elements is set.
	Lengths []int
	// Elements is an optional sample sequence; its length is used and the
	// selected elements are shown.
	Elements []string
	Aliases  map[string]string
}

// SelectArgs holds the parameters for Select.
type SelectArgs struct {
	Expr    string
	Paths   []m.Path
	Unit    m.Unit
	Threads int
	// Strict stops at the first source that cannot be sliced.
	Strict  bool
	Aliases map[string]string
}

// ExploreArgs holds the parameters for Explore.
type ExploreArgs struct {
	Path    m.Path
	Unit    m.Unit
	Expr    string
	Aliases map[string]string
}

// Workflow defines the operations of the fromback CLI.
type Workflow interface {
	Explain(args ExplainArgs) error
	Select(args SelectArgs) error
	Explore(args ExploreArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	ui        controller.UI
	logger    *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
// A nil logger discards diagnostics.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, ui controller.UI, logger *slog.Logger) Workflow {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &workflow{
		fsAdapter: fsAdapter,
		ui:        ui,
		logger:    logger,
	}
}

// Explain resolves every expression against every length and displays the
// results. Resolution failures are reported per row.
func (w *workflow) Explain(args ExplainArgs) error {
	lengths := args.Lengths
	if len(args.Elements) > 0 {
		lengths = []int{len(args.Elements)}
	}

	if len(lengths) == 0 {
		return ErrNoLength
	}

	resolutions := make([]m.Resolution, 0, len(args.Exprs)*len(lengths))

	for _, expr := range args.Exprs {
		idx, err := parseExpr(expr, args.Aliases)
		if err != nil {
			return err
		}

		for _, length := range lengths {
			if length < 0 {
				return fmt.Errorf("length must not be negative, got %d", length)
			}

			resolutions = append(resolutions, w.explainOne(idx, length, args.Elements))
		}
	}

	return w.ui.DisplayResolutions(resolutions)
}

func (w *workflow) explainOne(idx m.Index, length int, elements []string) m.Resolution {
	res := m.Resolution{Expr: idx, Length: length}

	res.Lo, res.Hi, res.Err = Bounds(idx, length)
	if res.Err != nil {
		w.logger.Debug("resolution failed", "expr", idx.String(), "length", length, "err", res.Err)
		return res
	}

	if len(elements) > 0 {
		_, _, res.Elements, res.Err = take(elements, idx)
	} else {
		res.Err = checkBounds(idx, res.Lo, res.Hi, length)
	}

	w.logger.Debug("resolved", "expr", idx.String(), "length", length, "lo", res.Lo, "hi", res.Hi)

	return res
}

// Select applies one expression to every source, reading up to Threads sources
// at a time, and displays the selections in input order.
func (w *workflow) Select(args SelectArgs) error {
	idx, err := parseExpr(args.Expr, args.Aliases)
	if err != nil {
		return err
	}

	paths := args.Paths
	if len(paths) == 0 {
		paths = []m.Path{m.StdinPath}
	}

	unit := args.Unit
	if unit == "" {
		unit = m.UnitLines
	}

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	w.logger.Debug("selecting", "expr", idx.String(), "unit", unit, "sources", len(paths), "threads", threads)

	selections := make([]m.Selection, len(paths))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, path := range paths {
		g.Go(func() error {
			selections[i] = w.selectSource(path, unit, idx)
			if args.Strict && selections[i].Err != nil {
				return fmt.Errorf("%s: %w", path, selections[i].Err)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if err := w.ui.DisplaySelections(selections); err != nil {
		return err
	}

	failed := 0

	for _, sel := range selections {
		if sel.Err != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d sources", ErrSelectionFailed, failed, len(selections))
	}

	return nil
}

func (w *workflow) selectSource(path m.Path, unit m.Unit, idx m.Index) m.Selection {
	content, err := w.fsAdapter.ReadSource(path)
	if err != nil {
		return m.Selection{Path: path, Expr: idx, Unit: unit, Err: err}
	}

	sel, err := apply(content, unit, idx)
	sel.Path = path

	if err != nil {
		w.logger.Debug("selection failed", "path", path, "expr", idx.String(), "err", err)
	} else {
		w.logger.Debug("selected", "path", path, "lo", sel.Lo, "hi", sel.Hi, "length", sel.Length)
	}

	return sel
}

// Explore loads one source and hands it to the interactive UI, which
// re-evaluates expressions as they are typed.
func (w *workflow) Explore(args ExploreArgs) error {
	path := args.Path
	if path == "" {
		path = m.StdinPath
	}

	unit := args.Unit
	if unit == "" {
		unit = m.UnitLines
	}

	content, err := w.fsAdapter.ReadSource(path)
	if err != nil {
		return err
	}

	evaluate := func(expr string) m.Selection {
		idx, err := parseExpr(expr, args.Aliases)
		if err != nil {
			return m.Selection{Path: path, Unit: unit, Length: Count(content, unit), Err: err}
		}

		sel, _ := apply(content, unit, idx)
		sel.Path = path

		return sel
	}

	return w.ui.Explore(controller.ExploreSession{
		Path:     path,
		Unit:     unit,
		Initial:  args.Expr,
		Evaluate: evaluate,
	})
}

// parseExpr parses expr, first replacing it with its alias if it names one.
func parseExpr(expr string, aliases map[string]string) (m.Index, error) {
	if alias, ok := aliases[strings.TrimSpace(expr)]; ok {
		idx, err := Parse(alias)
		if err != nil {
			return nil, fmt.Errorf("alias %q: %w", expr, err)
		}

		return idx, nil
	}

	return Parse(expr)
}
