package prng

import "testing"

func TestSameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		va, vb := a.NextUint32(), b.NextUint32()
		if va != vb {
			t.Fatalf("draw %d diverged: %d != %d", i, va, vb)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 8; i++ {
		if a.NextUint32() != b.NextUint32() {
			same = false
			break
		}
	}
	if same {
		t.Fatal("distinct seeds produced identical sequences over 8 draws")
	}
}

func TestFloat64Range(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, want [0,1)", v)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	r := New(11)
	for i := 0; i < 1000; i++ {
		v := r.Range(-3, 5)
		if v < -3 || v >= 5 {
			t.Fatalf("Range(-3,5) = %v, out of bounds", v)
		}
	}
}

func TestIntnBounds(t *testing.T) {
	r := New(3)
	for i := 0; i < 1000; i++ {
		v := r.Intn(6)
		if v < 0 || v >= 6 {
			t.Fatalf("Intn(6) = %d, out of bounds", v)
		}
	}
	if New(1).Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}

func TestFirstDraws(t *testing.T) {
	// Regression check against the canonical mulberry32 recurrence: given
	// seed 1, the first few 32-bit outputs are fixed.
	r := New(1)
	first := r.NextUint32()
	second := r.NextUint32()
	if first == second {
		t.Fatal("consecutive draws should not repeat for this recurrence")
	}
	if first != 2693262067 || second != 11749833 {
		t.Errorf("seed=1 draws = %d, %d, want 2693262067, 11749833", first, second)
	}
	t.Logf("seed=1 draws: %d, %d", first, second)
}
