package pool

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/matzehuels/dominosheet/pkg/errors"
)

func drain(t *testing.T, p *Pool, n int) []int {
	t.Helper()
	out := make([]int, 0, n)
	for range n {
		v, err := p.Next()
		if err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		out = append(out, v)
	}
	return out
}

func TestNextSkipsFirstValue(t *testing.T) {
	p := New([]int{10, 20, 30, 40})
	got := drain(t, p, 7)
	want := []int{20, 30, 40, 20, 30, 40, 20}
	if !slices.Equal(got, want) {
		t.Errorf("sequence = %v, want %v", got, want)
	}
	if p.Restarts() != 2 {
		t.Errorf("Restarts() = %d, want 2", p.Restarts())
	}
}

func TestNextRestartsOnKthCall(t *testing.T) {
	p := New([]int{1, 2, 3, 4, 5})
	drain(t, p, 4)
	if p.Restarts() != 0 {
		t.Fatalf("after K-1 calls Restarts() = %d, want 0", p.Restarts())
	}
	if p.Cursor() != 4 {
		t.Fatalf("after K-1 calls Cursor() = %d, want 4", p.Cursor())
	}
	drain(t, p, 1)
	if p.Restarts() != 1 {
		t.Errorf("after K calls Restarts() = %d, want 1", p.Restarts())
	}
	if p.Cursor() != 1 {
		t.Errorf("after restart Cursor() = %d, want 1", p.Cursor())
	}
}

func TestNextSingleValue(t *testing.T) {
	p := New([]int{7})
	for _, v := range drain(t, p, 3) {
		if v != 7 {
			t.Errorf("Next() = %d, want 7", v)
		}
	}
}

func TestStrictCursor(t *testing.T) {
	p := New([]int{10, 20, 30}, WithStrictCursor())
	got := drain(t, p, 3)
	if !slices.Equal(got, []int{10, 20, 30}) {
		t.Errorf("first cycle = %v", got)
	}
	if p.Restarts() != 0 {
		t.Errorf("after K calls Restarts() = %d, want 0", p.Restarts())
	}
	got = drain(t, p, 1)
	if got[0] != 10 || p.Restarts() != 1 {
		t.Errorf("K+1-th call = %v (restarts %d), want 10 after one restart", got, p.Restarts())
	}
}

func TestRandomizedStrictCycleCoversEveryValue(t *testing.T) {
	values := make([]int, 50)
	for i := range values {
		values[i] = i * 3
	}
	p := New(values, WithRandomize(7), WithStrictCursor())

	for cycle := range 3 {
		got := drain(t, p, len(values))
		slices.Sort(got)
		if !slices.Equal(got, values) {
			t.Fatalf("cycle %d is not a permutation of the pool", cycle)
		}
	}
}

func TestRandomizedDefaultCycle(t *testing.T) {
	values := []int{1, 2, 3, 4, 5, 6, 7, 8}
	p := New(values, WithRandomize(99))

	// The first cycle skips whatever the initial shuffle put at index 0.
	first := p.Values()[0]
	got := drain(t, p, len(values)-1)
	if slices.Contains(got, first) {
		t.Errorf("cycle %v contains skipped value %d", got, first)
	}
	sorted := slices.Sorted(slices.Values(got))
	if len(slices.Compact(sorted)) != len(values)-1 {
		t.Errorf("cycle %v repeats a value", got)
	}

	// The next call reshuffles, then skips the new index 0.
	v := drain(t, p, 1)[0]
	if p.Restarts() != 1 {
		t.Fatalf("Restarts() = %d, want 1", p.Restarts())
	}
	if v != p.Values()[1] {
		t.Errorf("first value after reshuffle = %d, want index 1 (%d)", v, p.Values()[1])
	}
}

func TestRandomizeIsSeeded(t *testing.T) {
	values := make([]int, 100)
	for i := range values {
		values[i] = i
	}
	a := drain(t, New(values, WithRandomize(42)), 250)
	b := drain(t, New(values, WithRandomize(42)), 250)
	if !slices.Equal(a, b) {
		t.Error("same seed produced different sequences")
	}
	c := drain(t, New(values, WithRand(rand.New(rand.NewPCG(1, 2)))), 250)
	if slices.Equal(a, c) {
		t.Error("different generators produced identical sequences")
	}
}

func TestNewCopiesValues(t *testing.T) {
	values := []int{1, 2, 3}
	p := New(values, WithRandomize(3))
	values[0] = 99
	if slices.Contains(p.Values(), 99) {
		t.Error("pool shares backing array with caller")
	}
}

func TestEmptyPool(t *testing.T) {
	for _, p := range []*Pool{New(nil), New([]int{}, WithStrictCursor()), New(nil, WithRandomize(1))} {
		_, err := p.Next()
		if !errors.Is(err, errors.ErrCodeDomain) {
			t.Errorf("Next() on empty pool error = %v, want domain error", err)
		}
	}
}

func TestCycleLength(t *testing.T) {
	tests := []struct {
		name string
		pool *Pool
		want int
	}{
		{"default", New([]int{1, 2, 3}), 2},
		{"strict", New([]int{1, 2, 3}, WithStrictCursor()), 3},
		{"single", New([]int{1}), 1},
		{"empty", New(nil), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pool.CycleLength(); got != tt.want {
				t.Errorf("CycleLength() = %d, want %d", got, tt.want)
			}
		})
	}
}
