package domain

import (
	"bytes"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"

	adaptermocks "github.com/mouse-blink/fromback/internal/adapter/mocks"
	"github.com/mouse-blink/fromback/internal/controller"
	controllermocks "github.com/mouse-blink/fromback/internal/controller/mocks"
	m "github.com/mouse-blink/fromback/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var digits = []byte("8\n6\n7\n5\n3\n0\n9\n")

func TestWorkflow_Explain_WithSample(t *testing.T) {
	// Arrange
	mockUI := controllermocks.NewMockUI(t)

	var got []m.Resolution

	mockUI.EXPECT().DisplayResolutions(mock.Anything).Run(func(resolutions []m.Resolution) {
		got = resolutions
	}).Return(nil)

	wf := NewWorkflow(nil, mockUI, nil)

	// Act
	err := wf.Explain(ExplainArgs{
		Exprs:    []string{"2..^3", "^5..4", "2..=^2", "^2..", "^9"},
		Lengths:  []int{100},
		Elements: []string{"8", "6", "7", "5", "3", "0", "9"},
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, got, 5)

	assert.Equal(t, []string{"7", "5"}, got[0].Elements)
	assert.Equal(t, []string{"7", "5"}, got[1].Elements)
	assert.Equal(t, []string{"7", "5", "3", "0"}, got[2].Elements)
	assert.Equal(t, []string{"0", "9"}, got[3].Elements)
	assert.ErrorIs(t, got[4].Err, m.ErrBackOffsetUnderflow)

	for _, res := range got {
		assert.Equal(t, 7, res.Length, "sample length overrides lengths")
	}
}

func TestWorkflow_Explain_LengthsOnly(t *testing.T) {
	mockUI := controllermocks.NewMockUI(t)

	var got []m.Resolution

	mockUI.EXPECT().DisplayResolutions(mock.Anything).Run(func(resolutions []m.Resolution) {
		got = resolutions
	}).Return(nil)

	wf := NewWorkflow(nil, mockUI, nil)

	err := wf.Explain(ExplainArgs{Exprs: []string{"^3..", "5"}, Lengths: []int{3, 10}})
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, 0, got[0].Lo)
	assert.Equal(t, 3, got[0].Hi)
	assert.NoError(t, got[0].Err)

	assert.Equal(t, 7, got[1].Lo)
	assert.Equal(t, 10, got[1].Hi)

	assert.ErrorIs(t, got[2].Err, ErrOutOfRange, "5 does not fit length 3")
	assert.NoError(t, got[3].Err)
}

func TestWorkflow_Explain_Errors(t *testing.T) {
	wf := NewWorkflow(nil, controllermocks.NewMockUI(t), nil)

	err := wf.Explain(ExplainArgs{Exprs: []string{"^2"}})
	assert.ErrorIs(t, err, ErrNoLength)

	err = wf.Explain(ExplainArgs{Exprs: []string{"^"}, Lengths: []int{3}})
	assert.ErrorIs(t, err, ErrSyntax)

	err = wf.Explain(ExplainArgs{Exprs: []string{"^2"}, Lengths: []int{-1}})
	assert.Error(t, err)
}

func TestWorkflow_Explain_Alias(t *testing.T) {
	mockUI := controllermocks.NewMockUI(t)
	mockUI.EXPECT().DisplayResolutions(mock.MatchedBy(func(resolutions []m.Resolution) bool {
		return len(resolutions) == 1 && resolutions[0].Expr == m.RangeFrom{Start: m.FromBack(2)}
	})).Return(nil)

	wf := NewWorkflow(nil, mockUI, nil)

	err := wf.Explain(ExplainArgs{
		Exprs:   []string{"tail"},
		Lengths: []int{7},
		Aliases: map[string]string{"tail": "^2.."},
	})
	require.NoError(t, err)
}

func TestWorkflow_Explain_BadAlias(t *testing.T) {
	wf := NewWorkflow(nil, controllermocks.NewMockUI(t), nil)

	err := wf.Explain(ExplainArgs{
		Exprs:   []string{"tail"},
		Lengths: []int{7},
		Aliases: map[string]string{"tail": "^x"},
	})
	require.ErrorIs(t, err, ErrSyntax)
	assert.Contains(t, err.Error(), `alias "tail"`)
}

func TestWorkflow_Select_Success(t *testing.T) {
	// Arrange
	mockFS := adaptermocks.NewMockSourceFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	mockFS.EXPECT().ReadSource(m.Path("a.txt")).Return(digits, nil)
	mockFS.EXPECT().ReadSource(m.Path("b.txt")).Return([]byte("x\ny\nz\n"), nil)

	var got []m.Selection

	mockUI.EXPECT().DisplaySelections(mock.Anything).Run(func(selections []m.Selection) {
		got = selections
	}).Return(nil)

	wf := NewWorkflow(mockFS, mockUI, nil)

	// Act
	err := wf.Select(SelectArgs{
		Expr:    "^2..",
		Paths:   []m.Path{"a.txt", "b.txt"},
		Threads: 2,
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, m.Path("a.txt"), got[0].Path)
	assert.Equal(t, "0\n9", got[0].Output)
	assert.Equal(t, m.Path("b.txt"), got[1].Path)
	assert.Equal(t, "y\nz", got[1].Output)
	assert.Equal(t, m.UnitLines, got[0].Unit, "lines is the default unit")
}

func TestWorkflow_Select_DefaultsToStdin(t *testing.T) {
	mockFS := adaptermocks.NewMockSourceFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	mockFS.EXPECT().ReadSource(m.StdinPath).Return([]byte("ranges"), nil)
	mockUI.EXPECT().DisplaySelections(mock.MatchedBy(func(selections []m.Selection) bool {
		return len(selections) == 1 && selections[0].Output == "ang"
	})).Return(nil)

	wf := NewWorkflow(mockFS, mockUI, nil)

	err := wf.Select(SelectArgs{Expr: "1..^2", Unit: m.UnitBytes})
	require.NoError(t, err)
}

func TestWorkflow_Select_PartialFailure(t *testing.T) {
	mockFS := adaptermocks.NewMockSourceFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	readErr := errors.New("permission denied")

	mockFS.EXPECT().ReadSource(m.Path("ok.txt")).Return(digits, nil)
	mockFS.EXPECT().ReadSource(m.Path("short.txt")).Return([]byte("1\n"), nil)
	mockFS.EXPECT().ReadSource(m.Path("locked.txt")).Return(nil, readErr)

	var got []m.Selection

	mockUI.EXPECT().DisplaySelections(mock.Anything).Run(func(selections []m.Selection) {
		got = selections
	}).Return(nil)

	wf := NewWorkflow(mockFS, mockUI, nil)

	err := wf.Select(SelectArgs{
		Expr:  "^3..",
		Paths: []m.Path{"ok.txt", "short.txt", "locked.txt"},
	})

	require.ErrorIs(t, err, ErrSelectionFailed)
	assert.Contains(t, err.Error(), "2 of 3 sources")

	require.Len(t, got, 3)
	assert.NoError(t, got[0].Err)
	assert.Equal(t, "3\n0\n9", got[0].Output)
	assert.ErrorIs(t, got[1].Err, m.ErrBackOffsetUnderflow)
	assert.ErrorIs(t, got[2].Err, readErr)
}

func TestWorkflow_Select_StrictStopsBeforeDisplay(t *testing.T) {
	mockFS := adaptermocks.NewMockSourceFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	mockFS.EXPECT().ReadSource(m.Path("short.txt")).Return([]byte("1\n"), nil)

	wf := NewWorkflow(mockFS, mockUI, nil)

	err := wf.Select(SelectArgs{
		Expr:   "^3..",
		Paths:  []m.Path{"short.txt"},
		Strict: true,
	})

	require.ErrorIs(t, err, m.ErrBackOffsetUnderflow)
	assert.Contains(t, err.Error(), "short.txt")
	mockUI.AssertNotCalled(t, "DisplaySelections", mock.Anything)
}

func TestWorkflow_Select_ParseError(t *testing.T) {
	wf := NewWorkflow(adaptermocks.NewMockSourceFSAdapter(t), controllermocks.NewMockUI(t), nil)

	err := wf.Select(SelectArgs{Expr: "   "})
	assert.ErrorIs(t, err, ErrEmptyExpr)
}

func TestWorkflow_Select_RespectsThreadLimit(t *testing.T) {
	mockFS := adaptermocks.NewMockSourceFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	var running, peak atomic.Int32

	paths := []m.Path{"1", "2", "3", "4", "5", "6"}
	for _, p := range paths {
		mockFS.EXPECT().ReadSource(p).RunAndReturn(func(m.Path) ([]byte, error) {
			n := running.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			running.Add(-1)

			return digits, nil
		})
	}

	mockUI.EXPECT().DisplaySelections(mock.Anything).Return(nil)

	wf := NewWorkflow(mockFS, mockUI, nil)

	err := wf.Select(SelectArgs{Expr: "0", Paths: paths, Threads: 2})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestWorkflow_Select_LogsWhenVerbose(t *testing.T) {
	mockFS := adaptermocks.NewMockSourceFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	mockFS.EXPECT().ReadSource(m.Path("a.txt")).Return(digits, nil)
	mockUI.EXPECT().DisplaySelections(mock.Anything).Return(nil)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	wf := NewWorkflow(mockFS, mockUI, logger)

	require.NoError(t, wf.Select(SelectArgs{Expr: "^1", Paths: []m.Path{"a.txt"}}))
	assert.Contains(t, logs.String(), "msg=selected")
	assert.Contains(t, logs.String(), "path=a.txt")
}

func TestWorkflow_Explore(t *testing.T) {
	mockFS := adaptermocks.NewMockSourceFSAdapter(t)
	mockUI := controllermocks.NewMockUI(t)

	mockFS.EXPECT().ReadSource(m.Path("digits.txt")).Return(digits, nil)

	var session controller.ExploreSession

	mockUI.EXPECT().Explore(mock.Anything).Run(func(s controller.ExploreSession) {
		session = s
	}).Return(nil)

	wf := NewWorkflow(mockFS, mockUI, nil)

	err := wf.Explore(ExploreArgs{
		Path:    "digits.txt",
		Expr:    "^2..",
		Aliases: map[string]string{"mid": "2..^3"},
	})
	require.NoError(t, err)

	assert.Equal(t, m.Path("digits.txt"), session.Path)
	assert.Equal(t, m.UnitLines, session.Unit)
	assert.Equal(t, "^2..", session.Initial)
	require.NotNil(t, session.Evaluate)

	sel := session.Evaluate("mid")
	require.NoError(t, sel.Err)
	assert.Equal(t, "7\n5", sel.Output)

	sel = session.Evaluate("^8")
	assert.ErrorIs(t, sel.Err, m.ErrBackOffsetUnderflow)

	sel = session.Evaluate("^")
	assert.ErrorIs(t, sel.Err, ErrSyntax)
	assert.Equal(t, 7, sel.Length)
}

func TestWorkflow_Explore_ReadError(t *testing.T) {
	mockFS := adaptermocks.NewMockSourceFSAdapter(t)
	readErr := errors.New("no such file")

	mockFS.EXPECT().ReadSource(m.StdinPath).Return(nil, readErr)

	wf := NewWorkflow(mockFS, controllermocks.NewMockUI(t), nil)

	err := wf.Explore(ExploreArgs{})
	assert.ErrorIs(t, err, readErr)
}
