package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/ChessArena/internal/game"
	"github.com/mitchelldurbincs/ChessArena/internal/game/core"
	"github.com/mitchelldurbincs/ChessArena/internal/game/events"
)

// NewTestArena creates an empty arena with a fixed game ID and a silent logger
func NewTestArena(t testing.TB, width, height int) *game.Arena {
	t.Helper()
	a, err := game.NewArena(game.ArenaConfig{
		Width:  width,
		Height: height,
		GameID: "test-game",
		Logger: NopLogger(),
	})
	require.NoError(t, err)
	return a
}

// NewObservedArena creates an empty arena that publishes to bus
func NewObservedArena(t testing.TB, width, height int, strict bool, bus events.Publisher) *game.Arena {
	t.Helper()
	a, err := game.NewArena(game.ArenaConfig{
		Width:         width,
		Height:        height,
		GameID:        "test-game",
		StrictCapture: strict,
		Logger:        NopLogger(),
		EventBus:      bus,
	})
	require.NoError(t, err)
	return a
}

// NewStandardArena creates an 8x8 arena in the opening position
func NewStandardArena(t testing.TB) *game.Arena {
	t.Helper()
	a := NewTestArena(t, game.StandardSize, game.StandardSize)
	require.NoError(t, game.SetupStandard(a))
	return a
}

// MustRecruit recruits a unit on (x,y) and fails the test on error
func MustRecruit(t testing.TB, a *game.Arena, owner core.PlayerID, x, y int, ut core.UnitType) core.UnitID {
	t.Helper()
	sq := core.Square{X: x, Y: y}
	id, err := a.Recruit(owner, &sq, ut)
	require.NoError(t, err)
	return id
}
