package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagFairness(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(42)))

	for bag := range 20 {
		seen := map[PieceType]int{}
		for range 7 {
			seen[b.Dequeue()]++
		}
		require.Len(t, seen, 7, "bag %d", bag)
		for _, p := range AllPieces {
			assert.Equal(t, 1, seen[p], "bag %d piece %s", bag, p)
		}
	}
}

func TestBagKeepsSevenQueued(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(1)))
	b.EnsureFull()
	assert.Equal(t, 7, b.Len())

	b.Dequeue()
	assert.Equal(t, 6, b.Len())

	b.Dequeue()
	assert.Equal(t, 12, b.Len(), "dequeue refills before popping when short")
}

func TestBagPeekIsFIFO(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(7)))
	b.EnsureFull()

	preview := b.Peek(PreviewSize)
	require.Len(t, preview, PreviewSize)

	preview[0] = PieceNone
	assert.NotEqual(t, PieceNone, b.Peek(1)[0], "Peek returns a copy")

	want := b.Peek(PreviewSize)
	for i := range PreviewSize {
		assert.Equal(t, want[i], b.Dequeue())
	}
}

func TestBagSeedReproducible(t *testing.T) {
	a := NewBag(rand.New(rand.NewSource(99)))
	b := NewBag(rand.New(rand.NewSource(99)))
	for range 50 {
		assert.Equal(t, a.Dequeue(), b.Dequeue())
	}
}
