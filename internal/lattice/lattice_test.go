package lattice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadcraft/ivm/internal/quadray"
)

func TestNeighborsOfOrigin(t *testing.T) {
	ns := Neighbors(0, 0, 0, 0)
	require.Len(t, ns, 12)

	seen := map[quadray.Quadray]bool{}
	for _, n := range ns {
		seen[n] = true
	}
	assert.Len(t, seen, 12, "neighbors must be distinct")
	assert.Equal(t, quadray.New(0, 1, 1, 2), ns[0])
	assert.Equal(t, quadray.New(2, 1, 1, 0), ns[11])
}

func TestNeighborsAreUnbounded(t *testing.T) {
	ns := Neighbors(100, -3, 7, 0)
	require.Len(t, ns, 12)
	for i, n := range ns {
		dir := Directions[i]
		assert.Equal(t, quadray.New(100+float64(dir[0]), -3+float64(dir[1]), 7+float64(dir[2]), float64(dir[3])), n)
	}
}

func TestNeighborsAreEquidistant(t *testing.T) {
	// Every direction has the same Quadray length, so all twelve neighbors
	// touch the centre cell equally.
	want := quadray.New(0, 1, 1, 2).Length()
	for _, dir := range Directions {
		q := quadray.New(float64(dir[0]), float64(dir[1]), float64(dir[2]), float64(dir[3]))
		assert.InDelta(t, want, q.Length(), 1e-12)
	}
}

func TestBoundedNeighbors(t *testing.T) {
	assert.Empty(t, BoundedNeighbors(0, 0, 0, 0, 1))
	assert.Empty(t, BoundedNeighbors(0, 0, 0, 0, 2))
	assert.Len(t, BoundedNeighbors(0, 0, 0, 0, 3), 12)

	got := BoundedNeighbors(1, 1, 1, 1, 3)
	for _, n := range got {
		assert.True(t, InBounds(int(n.A), int(n.B), int(n.C), int(n.D), 3), "%v out of bounds", n)
	}
	assert.Len(t, got, 0)

	got = BoundedNeighbors(0, 0, 0, 0, 3)
	assert.Equal(t, Neighbors(0, 0, 0, 0), got)
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d int
		size       int
		want       bool
	}{
		{"origin", 0, 0, 0, 0, 1, true},
		{"upper corner", 2, 2, 2, 2, 3, true},
		{"a at size", 3, 0, 0, 0, 3, false},
		{"d at size", 0, 0, 0, 3, 3, false},
		{"negative b", 0, -1, 0, 0, 3, false},
		{"zero size", 0, 0, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InBounds(tt.a, tt.b, tt.c, tt.d, tt.size))
		})
	}
}

func TestInBoundsOtherIntegerTypes(t *testing.T) {
	assert.True(t, InBounds[int8](1, 1, 1, 1, 2))
	assert.False(t, InBounds[uint](0, 0, 5, 0, 5))
	assert.Len(t, BoundedNeighbors[int64](0, 0, 0, 0, 3), 12)
}
