package engine

import "testing"

func TestRNG_Deterministic(t *testing.T) {
	rng1 := NewRNG(42)
	rng2 := NewRNG(42)

	for i := 0; i < 20; i++ {
		a := rng1.Intn(6)
		b := rng2.Intn(6)
		if a != b {
			t.Fatalf("draw %d: got %d and %d from same seed", i, a, b)
		}
	}
}

func TestRNG_Intn_Range(t *testing.T) {
	rng := NewRNG(99)

	for i := 0; i < 1000; i++ {
		r := rng.Intn(5)
		if r < 0 || r > 4 {
			t.Fatalf("draw out of range [0,5): got %d", r)
		}
	}
}

func TestRNG_Intn_One(t *testing.T) {
	rng := NewRNG(1)

	for i := 0; i < 10; i++ {
		if r := rng.Intn(1); r != 0 {
			t.Fatalf("Intn(1) should always be 0, got %d", r)
		}
	}
}

func TestRNG_Float64_Range(t *testing.T) {
	rng := NewRNG(7)

	below := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		f := rng.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
		if f < 0.1 {
			below++
		}
	}
	// Roughly 10% of draws should land below 0.1.
	if below < 700 || below > 1300 {
		t.Errorf("expected ~1000 draws below 0.1, got %d", below)
	}
}

func TestRNG_Intn_Distribution(t *testing.T) {
	rng := NewRNG(12345)
	counts := [3]int{}

	const trials = 9000
	for i := 0; i < trials; i++ {
		counts[rng.Intn(3)]++
	}
	for i, c := range counts {
		if c < 2500 || c > 3500 {
			t.Errorf("bucket %d: expected ~3000, got %d", i, c)
		}
	}
}

func TestRNG_Position_Tracks(t *testing.T) {
	rng := NewRNG(42)

	if rng.Position() != 0 {
		t.Fatalf("expected position 0, got %d", rng.Position())
	}

	rng.Float64()
	if rng.Position() != 1 {
		t.Fatalf("expected position 1, got %d", rng.Position())
	}

	rng.Intn(4)
	if rng.Position() < 2 {
		t.Fatalf("expected position >= 2, got %d", rng.Position())
	}
}

func TestRNG_DifferentSeeds_DifferentResults(t *testing.T) {
	rng1 := NewRNG(1)
	rng2 := NewRNG(2)

	differs := false
	for i := 0; i < 20; i++ {
		if rng1.Intn(100) != rng2.Intn(100) {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("expected different seeds to produce different results")
	}
}
