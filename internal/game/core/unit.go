package core

// PlayerID identifies a side. Two units belong to the same side iff their PlayerIDs are equal.
type PlayerID int

// UnitID identifies a recruited unit. IDs start at 1 and are never reused.
type UnitID int

// NoUnit marks an empty cell.
const NoUnit UnitID = 0

// Kind is the variant tag of a unit
type Kind int

const (
	Pawn Kind = iota
	Rook
	Knight
	Bishop
	Queen
	King
)

var kindNames = [...]string{"pawn", "rook", "knight", "bishop", "queen", "king"}

func (k Kind) String() string {
	if k < Pawn || k > King {
		return "unknown"
	}
	return kindNames[k]
}

// Letter returns the single-letter notation of the kind (uppercase)
func (k Kind) Letter() byte {
	switch k {
	case Pawn:
		return 'P'
	case Rook:
		return 'R'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	}
	return '?'
}

// UnitType is what a unit is recruited as. Forward is only meaningful for pawns.
type UnitType struct {
	Kind    Kind
	Forward Vector
}

var (
	WhitePawnType = UnitType{Kind: Pawn, Forward: Vector{DX: 0, DY: 1}}
	BlackPawnType = UnitType{Kind: Pawn, Forward: Vector{DX: 0, DY: -1}}
	RookType      = UnitType{Kind: Rook}
	KnightType    = UnitType{Kind: Knight}
	BishopType    = UnitType{Kind: Bishop}
	QueenType     = UnitType{Kind: Queen}
	KingType      = UnitType{Kind: King}
)

// Unit is one piece. Owner and Kind never change after recruitment;
// Moved and Promoted only ever go from false to true.
type Unit struct {
	Kind     Kind
	Owner    PlayerID
	Forward  Vector
	Moved    bool
	Promoted bool
}

// NewUnit creates an unmoved unit of the given type
func NewUnit(owner PlayerID, t UnitType) *Unit {
	u := &Unit{
		Kind:  t.Kind,
		Owner: owner,
	}
	if t.Kind == Pawn {
		u.Forward = t.Forward
	}
	return u
}

// IsPawn reports whether the unit still moves like a pawn
func (u *Unit) IsPawn() bool { return u.Kind == Pawn && !u.Promoted }

// IsEnemyOf reports whether the unit belongs to a different side than owner
func (u *Unit) IsEnemyOf(owner PlayerID) bool { return u.Owner != owner }

// Directions returns the rays or offsets the unit moves along.
// Unpromoted pawns return nil: their geometry is not direction based.
func (u *Unit) Directions() []Vector {
	switch u.Kind {
	case Rook:
		return OrthogonalDirections
	case Bishop:
		return DiagonalDirections
	case Queen, King:
		return AllDirections
	case Knight:
		return KnightOffsets
	case Pawn:
		if u.Promoted {
			return AllDirections
		}
	}
	return nil
}

// Range is the maximum number of steps along a direction; 0 means unlimited.
func (u *Unit) Range() int {
	switch u.Kind {
	case King, Knight:
		return 1
	}
	return 0
}

// IsFarRank reports whether rank y is where this pawn promotes on a board of the given height
func (u *Unit) IsFarRank(y, height int) bool {
	if !u.IsPawn() {
		return false
	}
	switch {
	case u.Forward.DY > 0:
		return y == height-1
	case u.Forward.DY < 0:
		return y == 0
	}
	return false
}

// Promote turns a pawn into an omnidirectional slider. It is a no-op for other kinds.
func (u *Unit) Promote() bool {
	if !u.IsPawn() {
		return false
	}
	u.Promoted = true
	return true
}

// Symbol returns the board letter, uppercase for firstPlayer and lowercase otherwise.
// Promoted pawns render as queens.
func (u *Unit) Symbol(firstPlayer PlayerID) byte {
	letter := u.Kind.Letter()
	if u.Kind == Pawn && u.Promoted {
		letter = Queen.Letter()
	}
	if u.Owner != firstPlayer {
		letter += 'a' - 'A'
	}
	return letter
}
