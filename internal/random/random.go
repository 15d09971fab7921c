package random

import (
	"math/rand"

	"github.com/valyala/fastrand"
)

// Provider is the ambient randomness source for room codes, candidate
// sampling and option shuffling. It is injected into the engine so tests
// can pin exact codes and shuffles.
type Provider interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// New returns the default, non-deterministic provider.
func New() Provider {
	return fastProvider{}
}

type fastProvider struct{}

func (fastProvider) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(fastrand.Uint32n(uint32(n)))
}

func (p fastProvider) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, p.Intn(i+1))
	}
}

// NewSeeded returns a deterministic provider for tests.
func NewSeeded(seed int64) Provider {
	return seededProvider{rnd: rand.New(rand.NewSource(seed))}
}

type seededProvider struct {
	rnd *rand.Rand
}

func (p seededProvider) Intn(n int) int {
	return p.rnd.Intn(n)
}

func (p seededProvider) Shuffle(n int, swap func(i, j int)) {
	p.rnd.Shuffle(n, swap)
}
