// Package dice supplies die rolls to the turn engine.
// Production games use a seeded PRNG; tests script the exact faces.
package dice

import (
	"fmt"
	"math/rand"
	"time"
)

// Source produces die faces in [1, faces].
type Source interface {
	Roll() int
}

// Die is a fair die backed by math/rand.
// Not safe for concurrent use.
type Die struct {
	faces int
	seed  int64
	rng   *rand.Rand
	rolls int64
}

// NewDie creates a die with the given number of faces.
// A zero seed picks one from the current time.
func NewDie(faces int, seed int64) *Die {
	if faces < 1 {
		panic(fmt.Sprintf("dice: die needs at least one face, got %d", faces))
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Die{
		faces: faces,
		seed:  seed,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Roll returns a uniformly distributed face.
func (d *Die) Roll() int {
	d.rolls++
	return d.rng.Intn(d.faces) + 1
}

// Seed returns the seed the die was created with, for replaying a game.
func (d *Die) Seed() int64 {
	return d.seed
}

// Rolls returns how many faces have been drawn.
func (d *Die) Rolls() int64 {
	return d.rolls
}
