// Package rating implements ports.Rater.
//
// The halls document carries no ratings, so the value shown is synthetic.
// Random reproduces the app's behavior of drawing a new rating on every fetch;
// Stable derives it from the hall name so it survives refreshes.
package rating

import (
	"boulderhall-service/internal/domain"
	"boulderhall-service/internal/ports"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"sync"
)

const (
	Min = 3.5
	Max = 5.0
)

// Random draws a rating uniformly from [Min, Max], rounded to one decimal.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom uses rng when given, otherwise a randomly seeded generator.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Random{rng: rng}
}

func (r *Random) Rate(domain.Hall) float64 {
	r.mu.Lock()
	f := r.rng.Float64()
	r.mu.Unlock()

	return domain.RoundTenth(f*(Max-Min) + Min)
}

// Stable maps a hall name onto [Min, Max] in steps of 0.1.
type Stable struct{}

func (Stable) Rate(h domain.Hall) float64 {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(h.Name))

	steps := uint32((Max-Min)*10) + 1
	return domain.RoundTenth(Min + float64(hash.Sum32()%steps)/10)
}

// New returns the rater for mode "random" or "stable".
func New(mode string) (ports.Rater, error) {
	switch mode {
	case "random":
		return NewRandom(nil), nil
	case "stable":
		return Stable{}, nil
	default:
		return nil, fmt.Errorf("unknown rating mode %q", mode)
	}
}
