package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/fromback/internal/controller"
	"github.com/mouse-blink/fromback/internal/domain"
	domainmocks "github.com/mouse-blink/fromback/internal/domain/mocks"
	m "github.com/mouse-blink/fromback/internal/model"
)

func TestExploreCmd_PassesArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)
	emptyConfig(t)

	mockWorkflow.EXPECT().Explore(mock.MatchedBy(func(args domain.ExploreArgs) bool {
		return args.Path == m.Path("notes.txt") &&
			args.Unit == m.UnitRunes &&
			args.Expr == "^3.."
	})).Return(nil)

	cmd, _, _ := newTestRoot("explore", "notes.txt", "-u", "runes", "-e", "^3..")
	require.NoError(t, cmd.Execute())
}

func TestExploreCmd_DefaultsToStdin(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	withWorkflow(t, mockWorkflow)
	emptyConfig(t)

	mockWorkflow.EXPECT().Explore(domain.ExploreArgs{Unit: m.UnitLines}).Return(nil)

	cmd, _, _ := newTestRoot("explore")
	require.NoError(t, cmd.Execute())
}

func TestExploreCmd_RejectsExtraPaths(t *testing.T) {
	withWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd, _, _ := newTestRoot("explore", "a.txt", "b.txt")
	assert.Error(t, cmd.Execute())
}

func TestExploreCmd_NeedsTerminal(t *testing.T) {
	withWorkflow(t, nil)

	cmd, _, _ := newTestRoot("explore")
	cmd.SetIn(strings.NewReader("a\nb\n"))

	assert.ErrorIs(t, cmd.Execute(), controller.ErrNotInteractive)
}
