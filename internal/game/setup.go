package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchelldurbincs/ChessArena/internal/game/core"
)

// Sides used by the standard setup
const (
	White core.PlayerID = 1
	Black core.PlayerID = 2
)

// StandardSize is the minimum board edge for SetupStandard
const StandardSize = 8

var backRank = [StandardSize]core.UnitType{
	core.RookType, core.KnightType, core.BishopType, core.QueenType,
	core.KingType, core.BishopType, core.KnightType, core.RookType,
}

// SetupStandard recruits the 32 units of the usual opening position. White fills
// ranks 0 and 1 and advances +y, Black fills ranks 6 and 7 and advances -y.
// Units are recruited in square order, White first, so IDs 1-16 are White and
// 17-32 are Black.
func SetupStandard(a *Arena) error {
	w, h := a.Size()
	if w < StandardSize || h < StandardSize {
		return fmt.Errorf("standard setup needs an %dx%d board, got %dx%d: %w",
			StandardSize, StandardSize, w, h, core.ErrInvalidSize)
	}

	type placement struct {
		owner core.PlayerID
		sq    core.Square
		t     core.UnitType
	}
	var plan []placement
	for x := 0; x < StandardSize; x++ {
		plan = append(plan, placement{White, core.Square{X: x, Y: 0}, backRank[x]})
	}
	for x := 0; x < StandardSize; x++ {
		plan = append(plan, placement{White, core.Square{X: x, Y: 1}, core.WhitePawnType})
	}
	for x := 0; x < StandardSize; x++ {
		plan = append(plan, placement{Black, core.Square{X: x, Y: StandardSize - 2}, core.BlackPawnType})
	}
	for x := 0; x < StandardSize; x++ {
		plan = append(plan, placement{Black, core.Square{X: x, Y: StandardSize - 1}, backRank[x]})
	}

	for _, p := range plan {
		sq := p.sq
		if _, err := a.Recruit(p.owner, &sq, p.t); err != nil {
			return err
		}
	}

	a.logger.Debug().Int("units", len(plan)).Msg("Standard position set up")
	return nil
}

// ParseMove reads a move written as "x1,y1-x2,y2"
func ParseMove(s string) (from, to core.Square, err error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return from, to, fmt.Errorf("move %q: want x1,y1-x2,y2", s)
	}
	if from, err = parseSquare(parts[0]); err != nil {
		return from, to, fmt.Errorf("move %q: %w", s, err)
	}
	if to, err = parseSquare(parts[1]); err != nil {
		return from, to, fmt.Errorf("move %q: %w", s, err)
	}
	return from, to, nil
}

func parseSquare(s string) (core.Square, error) {
	xy := strings.Split(strings.TrimSpace(s), ",")
	if len(xy) != 2 {
		return core.Square{}, fmt.Errorf("square %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xy[0]))
	if err != nil {
		return core.Square{}, fmt.Errorf("square %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(xy[1]))
	if err != nil {
		return core.Square{}, fmt.Errorf("square %q: %w", s, err)
	}
	return core.Square{X: x, Y: y}, nil
}

// Play moves whatever unit stands on from to to, after checking the move is legal
func Play(a *Arena, from, to core.Square) (core.UnitID, error) {
	id := a.UnitAt(from)
	if id == core.NoUnit {
		return core.NoUnit, core.WrapSquareError(from, core.ErrUnitNotPlaced)
	}
	moves, err := a.LegalMoves(id)
	if err != nil {
		return id, err
	}
	if !core.Contains(moves, to) {
		return id, fmt.Errorf("unit %d: %s to %s is not a legal move", id, from, to)
	}
	if _, err := a.MoveTo(id, to); err != nil {
		return id, err
	}
	return id, nil
}
