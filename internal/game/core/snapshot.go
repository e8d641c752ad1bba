package core

import "sort"

// Node is what a snapshot holds for one square. ID is NoUnit for an empty square.
type Node struct {
	ID   UnitID
	Unit Unit
}

// Empty reports whether no unit stands on the square
func (n Node) Empty() bool { return n.ID == NoUnit }

// Snapshot is a read-only view of the grid at one point in time.
// Units are stored by value so later arena mutations never leak in.
type Snapshot struct {
	w, h  int
	nodes map[Square]Node
}

// SnapshotBuilder collects occupied squares before freezing them into a Snapshot
type SnapshotBuilder struct {
	w, h  int
	nodes map[Square]Node
}

// NewSnapshotBuilder creates a builder for a width x height grid
func NewSnapshotBuilder(width, height int) *SnapshotBuilder {
	return &SnapshotBuilder{
		w:     width,
		h:     height,
		nodes: make(map[Square]Node),
	}
}

// Set records the unit standing on sq. Setting NoUnit leaves the square empty.
func (b *SnapshotBuilder) Set(sq Square, id UnitID, u Unit) error {
	if !sq.IsValid(b.w, b.h) {
		return WrapSquareError(sq, ErrOutOfBounds)
	}
	if id == NoUnit {
		delete(b.nodes, sq)
		return nil
	}
	b.nodes[sq] = Node{ID: id, Unit: u}
	return nil
}

// Build freezes the collected nodes. The builder must not be reused afterwards.
func (b *SnapshotBuilder) Build() *Snapshot {
	s := &Snapshot{w: b.w, h: b.h, nodes: b.nodes}
	b.nodes = nil
	return s
}

// Size returns the grid dimensions
func (s *Snapshot) Size() (int, int) { return s.w, s.h }

// InBounds checks if sq lies on the grid
func (s *Snapshot) InBounds(sq Square) bool { return sq.IsValid(s.w, s.h) }

// Node returns what stands on sq. An in-bounds empty square yields an empty Node;
// an out-of-bounds square yields ErrOutOfBounds.
func (s *Snapshot) Node(sq Square) (Node, error) {
	if n, ok := s.nodes[sq]; ok {
		return n, nil
	}
	if !s.InBounds(sq) {
		return Node{}, WrapSquareError(sq, ErrOutOfBounds)
	}
	return Node{}, nil
}

// Without returns a copy of the snapshot with sq emptied
func (s *Snapshot) Without(sq Square) *Snapshot {
	nodes := make(map[Square]Node, len(s.nodes))
	for k, n := range s.nodes {
		if k != sq {
			nodes[k] = n
		}
	}
	return &Snapshot{w: s.w, h: s.h, nodes: nodes}
}

// Placement pairs an occupied square with its node
type Placement struct {
	Square Square
	Node   Node
}

// Occupied lists every occupied square in row-major order
func (s *Snapshot) Occupied() []Placement {
	out := make([]Placement, 0, len(s.nodes))
	for sq, n := range s.nodes {
		out = append(out, Placement{Square: sq, Node: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Square.ToIndex(s.w) < out[j].Square.ToIndex(s.w)
	})
	return out
}

// Len returns the number of occupied squares
func (s *Snapshot) Len() int { return len(s.nodes) }
