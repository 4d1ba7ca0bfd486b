package tetris

import "math/rand"

// queueTarget is the minimum queue length kept after every refill.
const queueTarget = 7

// PreviewSize is the number of upcoming pieces exposed to front ends.
const PreviewSize = 4

// Bag is the upcoming-piece queue, replenished one shuffled set of all
// seven pieces at a time.
type Bag struct {
	rng   *rand.Rand
	queue []PieceType
}

// NewBag creates an empty queue drawing from rng.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// EnsureFull appends shuffled 7-bags while the queue is shorter than seven.
func (b *Bag) EnsureFull() {
	for len(b.queue) < queueTarget {
		bag := AllPieces
		// Fisher-Yates
		for i := len(bag) - 1; i > 0; i-- {
			j := b.rng.Intn(i + 1)
			bag[i], bag[j] = bag[j], bag[i]
		}
		b.queue = append(b.queue, bag[:]...)
	}
}

// Dequeue refills if needed and pops the head.
func (b *Bag) Dequeue() PieceType {
	b.EnsureFull()
	head := b.queue[0]
	b.queue = b.queue[1:]
	return head
}

// Peek returns a copy of the first n queued types.
func (b *Bag) Peek(n int) []PieceType {
	n = min(n, len(b.queue))
	out := make([]PieceType, n)
	copy(out, b.queue[:n])
	return out
}

// Len returns the queue length.
func (b *Bag) Len() int {
	return len(b.queue)
}

// Reset empties the queue.
func (b *Bag) Reset() {
	b.queue = b.queue[:0]
}
