package rating

import (
	"boulderhall-service/internal/domain"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertTenth(t *testing.T, v float64) {
	t.Helper()
	assert.InDelta(t, 0, math.Abs(v*10-math.Round(v*10)), 1e-9, "rating %v has more than one decimal", v)
}

func TestRandomWithinRange(t *testing.T) {
	r := NewRandom(rand.New(rand.NewPCG(1, 2)))
	for i := 0; i < 1000; i++ {
		v := r.Rate(domain.Hall{Name: "A"})
		require.GreaterOrEqual(t, v, Min)
		require.LessOrEqual(t, v, Max)
		assertTenth(t, v)
	}
}

func TestRandomIsSeeded(t *testing.T) {
	a := NewRandom(rand.New(rand.NewPCG(7, 7)))
	b := NewRandom(rand.New(rand.NewPCG(7, 7)))
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Rate(domain.Hall{}), b.Rate(domain.Hall{}))
	}
}

func TestStableIsDeterministic(t *testing.T) {
	h := domain.Hall{Name: "Monk Utrecht"}
	first := Stable{}.Rate(h)
	assert.Equal(t, first, Stable{}.Rate(h))
	assert.GreaterOrEqual(t, first, Min)
	assert.LessOrEqual(t, first, Max)
	assertTenth(t, first)
}

func TestNew(t *testing.T) {
	r, err := New("random")
	require.NoError(t, err)
	assert.IsType(t, &Random{}, r)

	r, err = New("stable")
	require.NoError(t, err)
	assert.IsType(t, Stable{}, r)

	_, err = New("stars")
	require.Error(t, err)
}
