// Package pool hands out domino values from a finite working set.
//
// A Pool walks its values in order and starts over when it runs out,
// reshuffling first when randomization is enabled. The default cursor
// advances before it reads, so the value sitting at index 0 after a
// (re)start is skipped:
//
//	p := pool.New([]int{10, 20, 30})
//	p.Next() // 20
//	p.Next() // 30
//	p.Next() // 20 (cursor restarted; 10 is skipped)
//
// Sheets printed with the reference tooling depend on that sequence, so it
// is kept as the default. WithStrictCursor reads before advancing and
// returns every value exactly once per cycle.
//
// A Pool is not safe for concurrent use.
package pool

import (
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/dominosheet/pkg/errors"
)

// Option configures a Pool.
type Option func(*Pool)

// WithRandomize shuffles the values on creation and on every restart,
// drawing from a PCG generator seeded with seed.
func WithRandomize(seed uint64) Option {
	return func(p *Pool) {
		p.rng = rand.New(rand.NewPCG(seed, seed^0x5eed5eed))
	}
}

// WithRand shuffles with the given generator instead of a seeded PCG.
func WithRand(rng *rand.Rand) Option {
	return func(p *Pool) { p.rng = rng }
}

// WithStrictCursor makes Next read the current value before advancing.
func WithStrictCursor() Option {
	return func(p *Pool) { p.strict = true }
}

// Pool is an ordered, optionally reshuffled queue of domino values.
type Pool struct {
	values []int
	cursor int
	rng    *rand.Rand
	strict bool
	cycles int
}

// New copies values into a fresh pool with its cursor at 0. A randomized
// pool is shuffled once before the first Next.
func New(values []int, opts ...Option) *Pool {
	p := &Pool{values: slices.Clone(values)}
	for _, opt := range opts {
		opt(p)
	}
	p.shuffle()
	return p
}

// Next returns the next value, restarting (and reshuffling) the pool when
// it is exhausted. It fails with a domain error on an empty pool.
func (p *Pool) Next() (int, error) {
	n := len(p.values)
	if n == 0 {
		return 0, errors.Domain("empty value pool")
	}
	if p.strict {
		if p.cursor >= n {
			p.restart()
		}
		v := p.values[p.cursor]
		p.cursor++
		return v, nil
	}
	if p.cursor+1 >= n {
		p.restart()
	}
	p.cursor++
	// cursor can only equal n when n == 1.
	return p.values[p.cursor%n], nil
}

func (p *Pool) restart() {
	p.cursor = 0
	p.cycles++
	p.shuffle()
}

func (p *Pool) shuffle() {
	if p.rng == nil {
		return
	}
	p.rng.Shuffle(len(p.values), func(i, j int) {
		p.values[i], p.values[j] = p.values[j], p.values[i]
	})
}

// Len returns the number of values in the pool.
func (p *Pool) Len() int { return len(p.values) }

// Cursor returns the current cursor position.
func (p *Pool) Cursor() int { return p.cursor }

// Restarts returns how many times the pool has been exhausted and restarted.
func (p *Pool) Restarts() int { return p.cycles }

// Randomized reports whether the pool reshuffles on restart.
func (p *Pool) Randomized() bool { return p.rng != nil }

// Values returns a copy of the pool in its current order.
func (p *Pool) Values() []int { return slices.Clone(p.values) }

// CycleLength is the number of Next calls served between restarts.
func (p *Pool) CycleLength() int {
	n := len(p.values)
	if p.strict || n <= 1 {
		return n
	}
	return n - 1
}
