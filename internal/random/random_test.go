package random

import "testing"

func TestSeededDeterminism(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("iteration %d: %d != %d", i, x, y)
		}
	}

	first := shuffled(a, 16)
	second := shuffled(b, 16)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different permutations: %v vs %v", first, second)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	for _, p := range []Provider{New(), NewSeeded(7)} {
		got := shuffled(p, 32)
		seen := make(map[int]bool, len(got))
		for _, v := range got {
			if v < 0 || v >= len(got) || seen[v] {
				t.Fatalf("not a permutation: %v", got)
			}
			seen[v] = true
		}
	}
}

func TestIntnBounds(t *testing.T) {
	p := New()

	if got := p.Intn(1); got != 0 {
		t.Fatalf("Intn(1) = %d", got)
	}
	if got := p.Intn(0); got != 0 {
		t.Fatalf("Intn(0) = %d", got)
	}
	for i := 0; i < 1000; i++ {
		if got := p.Intn(10); got < 0 || got >= 10 {
			t.Fatalf("Intn(10) = %d", got)
		}
	}
}

func shuffled(p Provider, n int) []int {
	vals := make([]int, n)
	for i := range vals {
		vals[i] = i
	}
	p.Shuffle(len(vals), func(i, j int) {
		vals[i], vals[j] = vals[j], vals[i]
	})
	return vals
}
