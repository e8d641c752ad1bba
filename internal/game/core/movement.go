package core

// keepFunc decides whether an occupied square that ends a ray (or is hit by a probe)
// is included in the result.
type keepFunc func(n Node) bool

func capturableBy(owner PlayerID) keepFunc {
	return func(n Node) bool { return n.Unit.IsEnemyOf(owner) }
}

func keepAny(Node) bool { return true }
func keepNone(Node) bool { return false }

// walk steps from `from` along dir. Leaving the board ends the ray; an occupied
// square ends it too and is included only if keep says so. limit caps the number
// of steps, 0 means unlimited.
func walk(snap *Snapshot, from Square, dir Vector, limit int, keep keepFunc) []Square {
	var out []Square
	sq := from
	for step := 1; limit <= 0 || step <= limit; step++ {
		sq = sq.Step(dir)
		n, err := snap.Node(sq)
		if err != nil {
			break
		}
		if !n.Empty() {
			if keep(n) {
				out = append(out, sq)
			}
			break
		}
		out = append(out, sq)
	}
	return out
}

// probe tests exactly one landing square per offset
func probe(snap *Snapshot, from Square, offsets []Vector, keep keepFunc) []Square {
	out := make([]Square, 0, len(offsets))
	for _, off := range offsets {
		sq := from.Step(off)
		n, err := snap.Node(sq)
		if err != nil {
			continue
		}
		if n.Empty() || keep(n) {
			out = append(out, sq)
		}
	}
	return out
}

// RayWalk returns the squares a unit owned by owner may reach along dir:
// empty squares up to the first blocker, plus the blocker itself if it is an enemy.
func RayWalk(snap *Snapshot, from Square, dir Vector, limit int, owner PlayerID) []Square {
	return walk(snap, from, dir, limit, capturableBy(owner))
}

// Probe returns the offset squares that are on the board and empty or enemy-held.
func Probe(snap *Snapshot, from Square, offsets []Vector, owner PlayerID) []Square {
	return probe(snap, from, offsets, capturableBy(owner))
}

// LegalMoves computes every square u may move to from `from`. It reads the
// snapshot only and never mutates u.
func LegalMoves(u Unit, from Square, snap *Snapshot) []Square {
	switch {
	case u.IsPawn():
		return pawnMoves(u, from, snap)
	case u.Kind == Knight:
		return Probe(snap, from, KnightOffsets, u.Owner)
	case u.Kind == King:
		return kingMoves(u, from, snap)
	default:
		return slide(snap, from, u.Directions(), u.Owner)
	}
}

func slide(snap *Snapshot, from Square, dirs []Vector, owner PlayerID) []Square {
	var out []Square
	for _, d := range dirs {
		out = append(out, RayWalk(snap, from, d, 0, owner)...)
	}
	return out
}

func pawnMoves(u Unit, from Square, snap *Snapshot) []Square {
	steps := 1
	if !u.Moved {
		steps = 2
	}
	out := walk(snap, from, u.Forward, steps, keepNone)

	for _, sq := range pawnDiagonals(u, from, snap) {
		n, _ := snap.Node(sq)
		if !n.Empty() && n.Unit.IsEnemyOf(u.Owner) {
			out = append(out, sq)
		}
	}
	return out
}

func pawnDiagonals(u Unit, from Square, snap *Snapshot) []Square {
	out := make([]Square, 0, 2)
	for _, dx := range []int{-1, 1} {
		sq := from.Step(Vector{DX: dx, DY: u.Forward.DY})
		if snap.InBounds(sq) {
			out = append(out, sq)
		}
	}
	return out
}

// kingMoves drops every candidate an enemy threatens. Threats are computed with the
// king lifted off the board so sliders see through the square it is leaving.
func kingMoves(u Unit, from Square, snap *Snapshot) []Square {
	candidates := Probe(snap, from, AllDirections, u.Owner)
	if len(candidates) == 0 {
		return candidates
	}

	working := snap.Without(from)
	attacked := make(map[Square]struct{})
	for _, p := range working.Occupied() {
		if !p.Node.Unit.IsEnemyOf(u.Owner) {
			continue
		}
		for _, sq := range ThreatRange(p.Node.Unit, p.Square, working) {
			attacked[sq] = struct{}{}
		}
	}

	safe := candidates[:0]
	for _, sq := range candidates {
		if _, hit := attacked[sq]; !hit {
			safe = append(safe, sq)
		}
	}
	return safe
}

// ThreatRange returns the squares u attacks from `from`: the squares it could
// capture on if an enemy stood there. Rays stop at the first unit whoever owns it,
// and that unit's square is included, so defended units count as threatened.
func ThreatRange(u Unit, from Square, snap *Snapshot) []Square {
	switch {
	case u.IsPawn():
		return pawnDiagonals(u, from, snap)
	case u.Kind == Knight, u.Kind == King:
		return probe(snap, from, u.Directions(), keepAny)
	default:
		var out []Square
		for _, d := range u.Directions() {
			out = append(out, walk(snap, from, d, 0, keepAny)...)
		}
		return out
	}
}

// Contains reports whether sq is among moves
func Contains(moves []Square, sq Square) bool {
	for _, m := range moves {
		if m == sq {
			return true
		}
	}
	return false
}
