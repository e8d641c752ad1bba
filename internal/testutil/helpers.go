package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ChessArena/internal/game/core"
)

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// Squares builds a square list from flat x,y pairs: Squares(0,2, 0,3)
func Squares(xy ...int) []core.Square {
	if len(xy)%2 != 0 {
		panic("testutil.Squares: odd number of coordinates")
	}
	out := make([]core.Square, 0, len(xy)/2)
	for i := 0; i < len(xy); i += 2 {
		out = append(out, core.Square{X: xy[i], Y: xy[i+1]})
	}
	return out
}

func squareLess(a, b core.Square) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// SquareSetDiff compares two square lists ignoring order. Empty means equal.
func SquareSetDiff(want, got []core.Square) string {
	return cmp.Diff(want, got, cmpopts.SortSlices(squareLess), cmpopts.EquateEmpty())
}

// AssertSquares fails the test if got and want do not hold the same squares
func AssertSquares(t testing.TB, want, got []core.Square, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := SquareSetDiff(want, got); diff != "" {
		if len(msgAndArgs) > 0 {
			if format, ok := msgAndArgs[0].(string); ok {
				t.Errorf(format+": square set mismatch (-want +got):\n%s", append(msgAndArgs[1:], diff)...)
				return
			}
		}
		t.Errorf("square set mismatch (-want +got):\n%s", diff)
	}
}
