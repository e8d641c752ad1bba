package events

import (
	"github.com/mitchelldurbincs/ChessArena/internal/game/core"
)

// Event type constants
const (
	TypeArenaCreated  = "arena.created"
	TypeUnitRecruited = "unit.recruited"
	TypeUnitMoved     = "unit.moved"
	TypeUnitCaptured  = "unit.captured"
	TypePawnPromoted  = "pawn.promoted"
)

// ArenaCreatedEvent is published when a new arena is constructed
type ArenaCreatedEvent struct {
	BaseEvent
	Width  int
	Height int
}

// NewArenaCreatedEvent creates a new ArenaCreatedEvent
func NewArenaCreatedEvent(gameID string, width, height int) *ArenaCreatedEvent {
	return &ArenaCreatedEvent{
		BaseEvent: newBase(TypeArenaCreated, gameID),
		Width:     width,
		Height:    height,
	}
}

// UnitRecruitedEvent is published when a unit joins the roster.
// Square is nil for units recruited off the board.
type UnitRecruitedEvent struct {
	BaseEvent
	Metadata EventMetadata
	UnitID   core.UnitID
	Kind     core.Kind
	Square   *core.Square
}

// NewUnitRecruitedEvent creates a new UnitRecruitedEvent
func NewUnitRecruitedEvent(gameID string, id core.UnitID, owner core.PlayerID, kind core.Kind, sq *core.Square) *UnitRecruitedEvent {
	return &UnitRecruitedEvent{
		BaseEvent: newBase(TypeUnitRecruited, gameID),
		Metadata:  EventMetadata{PlayerID: int(owner)},
		UnitID:    id,
		Kind:      kind,
		Square:    sq,
	}
}

// UnitMovedEvent is published after a move is committed.
// From is nil when the unit was not on the board before the move.
type UnitMovedEvent struct {
	BaseEvent
	Metadata EventMetadata
	UnitID   core.UnitID
	Kind     core.Kind
	From     *core.Square
	To       core.Square
}

// NewUnitMovedEvent creates a new UnitMovedEvent
func NewUnitMovedEvent(gameID string, seq int, id core.UnitID, owner core.PlayerID, kind core.Kind, from *core.Square, to core.Square) *UnitMovedEvent {
	return &UnitMovedEvent{
		BaseEvent: newBase(TypeUnitMoved, gameID),
		Metadata:  EventMetadata{PlayerID: int(owner), Sequence: seq},
		UnitID:    id,
		Kind:      kind,
		From:      from,
		To:        to,
	}
}

// UnitCapturedEvent is published when a move overwrites another unit
type UnitCapturedEvent struct {
	BaseEvent
	Metadata   EventMetadata
	UnitID     core.UnitID
	Owner      core.PlayerID
	Kind       core.Kind
	CapturedBy core.UnitID
	Square     core.Square
}

// NewUnitCapturedEvent creates a new UnitCapturedEvent. Metadata.PlayerID is the capturing side.
func NewUnitCapturedEvent(gameID string, seq int, captured core.UnitID, victim core.Unit, by core.UnitID, byOwner core.PlayerID, sq core.Square) *UnitCapturedEvent {
	return &UnitCapturedEvent{
		BaseEvent:  newBase(TypeUnitCaptured, gameID),
		Metadata:   EventMetadata{PlayerID: int(byOwner), Sequence: seq},
		UnitID:     captured,
		Owner:      victim.Owner,
		Kind:       victim.Kind,
		CapturedBy: by,
		Square:     sq,
	}
}

// PawnPromotedEvent is published when a pawn reaches its far rank
type PawnPromotedEvent struct {
	BaseEvent
	Metadata EventMetadata
	UnitID   core.UnitID
	Square   core.Square
}

// NewPawnPromotedEvent creates a new PawnPromotedEvent
func NewPawnPromotedEvent(gameID string, seq int, id core.UnitID, owner core.PlayerID, sq core.Square) *PawnPromotedEvent {
	return &PawnPromotedEvent{
		BaseEvent: newBase(TypePawnPromoted, gameID),
		Metadata:  EventMetadata{PlayerID: int(owner), Sequence: seq},
		UnitID:    id,
		Square:    sq,
	}
}
