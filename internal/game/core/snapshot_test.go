package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotBuilder_Set(t *testing.T) {
	b := NewSnapshotBuilder(8, 8)
	require.NoError(t, b.Set(Square{0, 0}, 1, *NewUnit(1, RookType)))
	require.NoError(t, b.Set(Square{7, 7}, 2, *NewUnit(2, RookType)))
	require.NoError(t, b.Set(Square{3, 3}, NoUnit, Unit{}))

	err := b.Set(Square{8, 0}, 3, *NewUnit(1, KingType))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	snap := b.Build()
	assert.Equal(t, 2, snap.Len())
	w, h := snap.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 8, h)
}

func TestSnapshot_Node(t *testing.T) {
	b := NewSnapshotBuilder(4, 3)
	require.NoError(t, b.Set(Square{1, 2}, 5, *NewUnit(2, BishopType)))
	snap := b.Build()

	tests := []struct {
		name    string
		sq      Square
		id      UnitID
		wantErr bool
	}{
		{"occupied", Square{1, 2}, 5, false},
		{"empty in bounds", Square{0, 0}, NoUnit, false},
		{"last column", Square{3, 2}, NoUnit, false},
		{"x out of bounds", Square{4, 0}, NoUnit, true},
		{"y out of bounds", Square{0, 3}, NoUnit, true},
		{"negative", Square{-1, -1}, NoUnit, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := snap.Node(tt.sq)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOutOfBounds)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, n.ID)
			assert.Equal(t, tt.id == NoUnit, n.Empty())
		})
	}
}

func TestSnapshot_StoresUnitCopies(t *testing.T) {
	pawn := NewUnit(1, WhitePawnType)
	b := NewSnapshotBuilder(8, 8)
	require.NoError(t, b.Set(Square{0, 1}, 1, *pawn))
	snap := b.Build()

	pawn.Moved = true
	pawn.Promote()

	n, err := snap.Node(Square{0, 1})
	require.NoError(t, err)
	assert.False(t, n.Unit.Moved, "snapshot must not observe later mutations")
	assert.False(t, n.Unit.Promoted)
}

func TestSnapshot_Without(t *testing.T) {
	b := NewSnapshotBuilder(8, 8)
	require.NoError(t, b.Set(Square{4, 0}, 1, *NewUnit(1, KingType)))
	require.NoError(t, b.Set(Square{4, 7}, 2, *NewUnit(2, RookType)))
	snap := b.Build()

	working := snap.Without(Square{4, 0})
	assert.Equal(t, 1, working.Len())
	n, err := working.Node(Square{4, 0})
	require.NoError(t, err)
	assert.True(t, n.Empty())

	n, err = snap.Node(Square{4, 0})
	require.NoError(t, err)
	assert.Equal(t, UnitID(1), n.ID, "original snapshot is untouched")
}

func TestSnapshot_OccupiedRowMajor(t *testing.T) {
	b := NewSnapshotBuilder(8, 8)
	require.NoError(t, b.Set(Square{7, 7}, 3, *NewUnit(2, RookType)))
	require.NoError(t, b.Set(Square{0, 1}, 2, *NewUnit(1, WhitePawnType)))
	require.NoError(t, b.Set(Square{5, 0}, 1, *NewUnit(1, BishopType)))
	snap := b.Build()

	occupied := snap.Occupied()
	require.Len(t, occupied, 3)
	assert.Equal(t, Square{5, 0}, occupied[0].Square)
	assert.Equal(t, Square{0, 1}, occupied[1].Square)
	assert.Equal(t, Square{7, 7}, occupied[2].Square)
	assert.Equal(t, UnitID(3), occupied[2].Node.ID)
}
