package game

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ChessArena/internal/game/core"
	"github.com/mitchelldurbincs/ChessArena/internal/game/events"
)

// ArenaConfig holds everything needed to build an Arena
type ArenaConfig struct {
	Width  int
	Height int

	// GameID tags every published event. A random UUID is used when empty.
	GameID string

	// StrictCapture makes MoveTo refuse to overwrite a unit of the mover's own side.
	// When false a same-side occupant is silently replaced.
	StrictCapture bool

	Logger   zerolog.Logger
	EventBus events.Publisher
}

// Arena owns the grid and the roster of one game. It is not safe for concurrent
// use; callers serialize access themselves.
type Arena struct {
	width, height int
	gameID        string
	strict        bool

	roster []*core.Unit  // roster[id-1]; never shrinks
	grid   []core.UnitID // row-major, NoUnit for empty cells
	seq    int

	logger   zerolog.Logger
	eventBus events.Publisher
}

// NewArena creates an empty arena
func NewArena(cfg ArenaConfig) (*Arena, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, core.ErrInvalidSize
	}
	if cfg.GameID == "" {
		cfg.GameID = uuid.New().String()
	}

	a := &Arena{
		width:    cfg.Width,
		height:   cfg.Height,
		gameID:   cfg.GameID,
		strict:   cfg.StrictCapture,
		grid:     make([]core.UnitID, cfg.Width*cfg.Height),
		eventBus: cfg.EventBus,
		logger: cfg.Logger.With().
			Str("component", "arena").
			Str("game_id", cfg.GameID).
			Logger(),
	}

	a.publish(events.NewArenaCreatedEvent(a.gameID, a.width, a.height))
	a.logger.Debug().
		Int("width", a.width).
		Int("height", a.height).
		Bool("strict_capture", a.strict).
		Msg("Arena created")
	return a, nil
}

// GameID returns the identifier attached to this arena's events
func (a *Arena) GameID() string { return a.gameID }

// Size returns the grid width and height
func (a *Arena) Size() (int, int) { return a.width, a.height }

// RosterSize returns how many units were ever recruited
func (a *Arena) RosterSize() int { return len(a.roster) }

func (a *Arena) inBounds(sq core.Square) bool { return sq.IsValid(a.width, a.height) }

func (a *Arena) validID(id core.UnitID) bool {
	return id >= 1 && int(id) <= len(a.roster)
}

func (a *Arena) unit(id core.UnitID) *core.Unit { return a.roster[id-1] }

func (a *Arena) publish(e events.Event) {
	if a.eventBus != nil {
		a.eventBus.Publish(e)
	}
}

// Recruit appends a new unit to the roster and returns its ID. With a non-nil
// square the unit is placed there, replacing whatever occupied it; this is setup,
// not a move, so no capture is recorded. With a nil square the unit stays off the board.
func (a *Arena) Recruit(owner core.PlayerID, at *core.Square, t core.UnitType) (core.UnitID, error) {
	if at != nil && !a.inBounds(*at) {
		a.logger.Warn().Stringer("square", at).Msg("Recruit outside the board")
		return core.NoUnit, core.WrapSquareError(*at, core.ErrOutOfBounds)
	}

	a.roster = append(a.roster, core.NewUnit(owner, t))
	id := core.UnitID(len(a.roster))

	var placedAt *core.Square
	if at != nil {
		sq := *at
		a.grid[sq.ToIndex(a.width)] = id
		placedAt = &sq
	}

	a.logger.Debug().
		Int("unit_id", int(id)).
		Int("owner", int(owner)).
		Str("kind", t.Kind.String()).
		Msg("Unit recruited")
	a.publish(events.NewUnitRecruitedEvent(a.gameID, id, owner, t.Kind, placedAt))
	return id, nil
}

// OwnerOf returns the side a unit belongs to
func (a *Arena) OwnerOf(id core.UnitID) (core.PlayerID, error) {
	if !a.validID(id) {
		return 0, core.WrapUnitError(id, core.ErrInvalidUnitID)
	}
	return a.unit(id).Owner, nil
}

// Unit returns a copy of a unit's current state
func (a *Arena) Unit(id core.UnitID) (core.Unit, error) {
	if !a.validID(id) {
		return core.Unit{}, core.WrapUnitError(id, core.ErrInvalidUnitID)
	}
	return *a.unit(id), nil
}

// Locate finds the square a unit stands on by scanning the grid
func (a *Arena) Locate(id core.UnitID) (core.Square, error) {
	if !a.validID(id) {
		return core.Square{}, core.WrapUnitError(id, core.ErrInvalidUnitID)
	}
	for idx, cell := range a.grid {
		if cell == id {
			return core.FromIndex(idx, a.width), nil
		}
	}
	return core.Square{}, core.WrapUnitError(id, core.ErrUnitNotPlaced)
}

// IsOccupied reports whether a unit stands on sq. Off-board squares are never occupied.
func (a *Arena) IsOccupied(sq core.Square) bool {
	if !a.inBounds(sq) {
		return false
	}
	return a.grid[sq.ToIndex(a.width)] != core.NoUnit
}

// UnitAt returns the ID standing on sq, or NoUnit for empty and off-board squares
func (a *Arena) UnitAt(sq core.Square) core.UnitID {
	if !a.inBounds(sq) {
		return core.NoUnit
	}
	return a.grid[sq.ToIndex(a.width)]
}

// MoveTo places a unit on sq and returns its updated state. It does not check
// that the move is legal; use LegalMoves first. A unit already on sq is captured
// by being overwritten, except a same-side unit in strict mode, which fails with
// ErrFriendlyCapture. A pawn landing on its far rank is promoted. On error the
// arena is left unchanged.
func (a *Arena) MoveTo(id core.UnitID, sq core.Square) (core.Unit, error) {
	if !a.validID(id) {
		a.logger.Warn().Int("unit_id", int(id)).Msg("Move of unknown unit")
		return core.Unit{}, core.WrapUnitError(id, core.ErrInvalidUnitID)
	}
	if !a.inBounds(sq) {
		a.logger.Warn().Int("unit_id", int(id)).Stringer("square", sq).Msg("Move outside the board")
		return core.Unit{}, core.WrapMoveError(id, sq, core.ErrOutOfBounds)
	}

	u := a.unit(id)
	target := sq.ToIndex(a.width)
	occupant := a.grid[target]
	if occupant == id {
		occupant = core.NoUnit
	}
	if a.strict && occupant != core.NoUnit && a.unit(occupant).Owner == u.Owner {
		return core.Unit{}, core.WrapMoveError(id, sq, core.ErrFriendlyCapture)
	}

	var from *core.Square
	if prev, err := a.Locate(id); err == nil {
		a.grid[prev.ToIndex(a.width)] = core.NoUnit
		from = &prev
	}
	a.grid[target] = id
	u.Moved = true
	a.seq++

	a.logger.Debug().
		Int("unit_id", int(id)).
		Str("kind", u.Kind.String()).
		Stringer("to", sq).
		Int("sequence", a.seq).
		Msg("Unit moved")
	a.publish(events.NewUnitMovedEvent(a.gameID, a.seq, id, u.Owner, u.Kind, from, sq))

	if occupant != core.NoUnit {
		victim := *a.unit(occupant)
		a.logger.Info().
			Int("unit_id", int(occupant)).
			Str("kind", victim.Kind.String()).
			Int("captured_by", int(id)).
			Stringer("square", sq).
			Msg("Unit captured")
		a.publish(events.NewUnitCapturedEvent(a.gameID, a.seq, occupant, victim, id, u.Owner, sq))
	}

	if u.IsFarRank(sq.Y, a.height) && u.Promote() {
		a.logger.Info().
			Int("unit_id", int(id)).
			Stringer("square", sq).
			Msg("Pawn promoted")
		a.publish(events.NewPawnPromotedEvent(a.gameID, a.seq, id, u.Owner, sq))
	}

	return *u, nil
}

// LegalMoves returns the squares a unit may move to. An invalid ID yields an
// empty result rather than an error; a valid but unplaced unit yields ErrUnitNotPlaced.
func (a *Arena) LegalMoves(id core.UnitID) ([]core.Square, error) {
	if !a.validID(id) {
		return []core.Square{}, nil
	}
	from, err := a.Locate(id)
	if err != nil {
		return nil, err
	}
	return core.LegalMoves(*a.unit(id), from, a.Snapshot()), nil
}

// Snapshot captures the current grid as an immutable view
func (a *Arena) Snapshot() *core.Snapshot {
	b := core.NewSnapshotBuilder(a.width, a.height)
	for idx, id := range a.grid {
		if id == core.NoUnit {
			continue
		}
		// Grid indices are always in bounds.
		_ = b.Set(core.FromIndex(idx, a.width), id, *a.unit(id))
	}
	return b.Build()
}

// Casualties lists, in ascending order, the recruited units that are not on the board
func (a *Arena) Casualties() []core.UnitID {
	placed := make(map[core.UnitID]bool, len(a.grid))
	for _, id := range a.grid {
		if id != core.NoUnit {
			placed[id] = true
		}
	}
	var out []core.UnitID
	for i := range a.roster {
		id := core.UnitID(i + 1)
		if !placed[id] {
			out = append(out, id)
		}
	}
	return out
}
