package tetris

import "math/rand"

// Bag deals shapes from shuffled permutations of all seven, so every
// shape appears exactly once per cycle.
type Bag struct {
	rng   *rand.Rand
	order [shapeCount]Shape
	pos   int
}

// NewBag creates an empty bag; the first Next shuffles.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng, pos: shapeCount}
}

// Next deals the next shape, reshuffling when the cycle is exhausted.
func (b *Bag) Next() Shape {
	if b.pos >= len(b.order) {
		b.refill()
	}
	s := b.order[b.pos]
	b.pos++
	return s
}

// Remaining returns how many shapes are left in the current cycle.
func (b *Bag) Remaining() int {
	return len(b.order) - b.pos
}

func (b *Bag) refill() {
	for i := range b.order {
		b.order[i] = Shape(i)
	}
	b.rng.Shuffle(len(b.order), func(i, j int) {
		b.order[i], b.order[j] = b.order[j], b.order[i]
	})
	b.pos = 0
}
