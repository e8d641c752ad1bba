package subscribers

import (
	"fmt"
	"sync"

	"github.com/mitchelldurbincs/ChessArena/internal/game/core"
	"github.com/mitchelldurbincs/ChessArena/internal/game/events"
)

// MoveRecord is one committed move as seen on the event stream
type MoveRecord struct {
	Sequence int
	UnitID   core.UnitID
	Player   core.PlayerID
	Kind     core.Kind
	From     *core.Square
	To       core.Square
	Captured core.UnitID
	Promoted bool
}

// String renders the record as "3. rook#1 (0,0)-(0,5)x20=Q"
func (r MoveRecord) String() string {
	from := "--"
	if r.From != nil {
		from = r.From.String()
	}
	s := fmt.Sprintf("%d. %s#%d %s-%s", r.Sequence, r.Kind, r.UnitID, from, r.To)
	if r.Captured != core.NoUnit {
		s += fmt.Sprintf("x%d", r.Captured)
	}
	if r.Promoted {
		s += "=Q"
	}
	return s
}

// HistoryRecorder keeps the committed moves of one arena in order.
// Captures and promotions are folded into the move that caused them.
type HistoryRecorder struct {
	id     string
	gameID string
	mu     sync.Mutex
	moves  []MoveRecord
}

// NewHistoryRecorder records events of gameID only; an empty gameID records every arena.
func NewHistoryRecorder(id, gameID string) *HistoryRecorder {
	return &HistoryRecorder{id: id, gameID: gameID}
}

// ID returns the subscriber's unique identifier
func (h *HistoryRecorder) ID() string { return h.id }

// InterestedIn returns true for move, capture and promotion events
func (h *HistoryRecorder) InterestedIn(eventType string) bool {
	switch eventType {
	case events.TypeUnitMoved, events.TypeUnitCaptured, events.TypePawnPromoted:
		return true
	}
	return false
}

// HandleEvent appends or annotates a move record
func (h *HistoryRecorder) HandleEvent(event events.Event) {
	if h.gameID != "" && event.GameID() != h.gameID {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	switch e := event.(type) {
	case *events.UnitMovedEvent:
		h.moves = append(h.moves, MoveRecord{
			Sequence: e.Metadata.Sequence,
			UnitID:   e.UnitID,
			Player:   core.PlayerID(e.Metadata.PlayerID),
			Kind:     e.Kind,
			From:     e.From,
			To:       e.To,
		})
	case *events.UnitCapturedEvent:
		if rec := h.bySequence(e.Metadata.Sequence); rec != nil {
			rec.Captured = e.UnitID
		}
	case *events.PawnPromotedEvent:
		if rec := h.bySequence(e.Metadata.Sequence); rec != nil {
			rec.Promoted = true
		}
	}
}

func (h *HistoryRecorder) bySequence(seq int) *MoveRecord {
	for i := len(h.moves) - 1; i >= 0; i-- {
		if h.moves[i].Sequence == seq {
			return &h.moves[i]
		}
	}
	return nil
}

// Moves returns a copy of the recorded moves
func (h *HistoryRecorder) Moves() []MoveRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]MoveRecord, len(h.moves))
	copy(out, h.moves)
	return out
}
