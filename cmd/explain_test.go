package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/fromback/internal/domain"
	domainmocks "github.com/mouse-blink/fromback/internal/domain/mocks"
)

func TestExplainCmd_PassesLengths(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)
	emptyConfig(t)

	mockWorkflow.EXPECT().Explain(mock.MatchedBy(func(args domain.ExplainArgs) bool {
		return assert.ObjectsAreEqual([]string{"^2..", "2..=^2"}, args.Exprs) &&
			assert.ObjectsAreEqual([]int{7, 10}, args.Lengths) &&
			len(args.Elements) == 0
	})).Return(nil)

	cmd, _, _ := newTestRoot("explain", "^2..", "2..=^2", "--len", "7", "-n", "10")
	require.NoError(t, cmd.Execute())
}

func TestExplainCmd_PassesSample(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)
	emptyConfig(t)

	mockWorkflow.EXPECT().Explain(mock.MatchedBy(func(args domain.ExplainArgs) bool {
		return assert.ObjectsAreEqual([]string{"8", "6", "7", "5", "3", "0", "9"}, args.Elements)
	})).Return(nil)

	cmd, _, _ := newTestRoot("explain", "2..^3", "--of", "8,6,7,5,3,0,9")
	require.NoError(t, cmd.Execute())
}

func TestExplainCmd_RequiresExpression(t *testing.T) {
	withWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd, _, _ := newTestRoot("explain", "--len", "3")
	assert.Error(t, cmd.Execute())
}

func TestExplainCmd_EndToEnd(t *testing.T) {
	withWorkflow(t, nil)

	cmd, out, _ := newTestRoot("explain", "2..^3", "^9", "--of", "8,6,7,5,3,0,9")
	require.NoError(t, cmd.Execute())

	output := out.String()
	for _, want := range []string{"2..^3", "[2, 4)", "7 5", "^9", "back offset underflow", "TOTAL 2"} {
		assert.Contains(t, output, want)
	}
}

func TestExplainCmd_NoLength(t *testing.T) {
	withWorkflow(t, nil)

	cmd, _, _ := newTestRoot("explain", "^1")
	assert.ErrorIs(t, cmd.Execute(), domain.ErrNoLength)
}
