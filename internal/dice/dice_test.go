package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDieRange(t *testing.T) {
	d := NewDie(6, 42)
	seen := make(map[int]bool)

	for range 1000 {
		f := d.Roll()
		require.GreaterOrEqual(t, f, 1)
		require.LessOrEqual(t, f, 6)
		seen[f] = true
	}

	assert.Len(t, seen, 6, "every face should appear in 1000 rolls")
	assert.Equal(t, int64(1000), d.Rolls())
}

func TestDieDeterministic(t *testing.T) {
	a := NewDie(6, 7)
	b := NewDie(6, 7)

	for i := range 50 {
		assert.Equal(t, a.Roll(), b.Roll(), "roll %d differs for same seed", i)
	}
}

func TestDieZeroSeedPicksOne(t *testing.T) {
	d := NewDie(6, 0)
	assert.NotZero(t, d.Seed())
}

func TestScriptedSequence(t *testing.T) {
	s := NewScripted(6, 4, 6, 1)

	assert.Equal(t, 3, s.Remaining())
	assert.Equal(t, 4, s.Roll())
	assert.Equal(t, 6, s.Roll())
	assert.Equal(t, 1, s.Roll())
	assert.Equal(t, 0, s.Remaining())
}

func TestScriptedExhausted(t *testing.T) {
	s := NewScripted(6, 2)
	s.Roll()

	assert.Panics(t, func() { s.Roll() })
}

func TestScriptedRejectsBadFace(t *testing.T) {
	assert.Panics(t, func() { NewScripted(6, 7) })
	assert.Panics(t, func() { NewScripted(6, 0) })
}
