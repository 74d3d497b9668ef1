package tetris

import "math/rand/v2"

// Randomizer picks the type of each newly spawned piece.
type Randomizer interface {
	Next() ShapeType
}

// RandomizerFunc adapts a function to the Randomizer interface.
type RandomizerFunc func() ShapeType

func (f RandomizerFunc) Next() ShapeType { return f() }

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type uniformRandomizer struct {
	rng *rand.Rand
}

// NewUniformRandomizer draws every piece independently and uniformly from the
// catalog. This is the default.
func NewUniformRandomizer(seed uint64) Randomizer {
	return &uniformRandomizer{rng: newRand(seed)}
}

func (r *uniformRandomizer) Next() ShapeType {
	return ShapeType(r.rng.IntN(ShapeCount))
}

type bagRandomizer struct {
	rng *rand.Rand
	bag []ShapeType
}

// NewBagRandomizer deals pieces from shuffled bags holding each of the seven
// types once.
func NewBagRandomizer(seed uint64) Randomizer {
	return &bagRandomizer{rng: newRand(seed)}
}

func (r *bagRandomizer) Next() ShapeType {
	if len(r.bag) == 0 {
		r.bag = []ShapeType{ShapeI, ShapeO, ShapeT, ShapeL, ShapeJ, ShapeS, ShapeZ}
		r.rng.Shuffle(len(r.bag), func(i, j int) {
			r.bag[i], r.bag[j] = r.bag[j], r.bag[i]
		})
	}
	t := r.bag[0]
	r.bag = r.bag[1:]
	return t
}
