package filmstock

import "testing"

func TestIDsCoversKnownStocks(t *testing.T) {
	ids := IDs()
	want := map[string]bool{"trix": false, "hp5": false, "kodachrome": false, "portra": false, "ektachrome": false}
	for _, id := range ids {
		if _, ok := want[id]; ok {
			want[id] = true
		}
	}
	for id, seen := range want {
		if !seen {
			t.Errorf("catalog is missing expected stock %q", id)
		}
	}
}

func TestLookupFallback(t *testing.T) {
	s := Lookup("not-a-real-stock")
	if s.ID != "kodachrome" {
		t.Errorf("unknown stock should fall back to kodachrome, got %q", s.ID)
	}
}

func TestBWStocksHaveWeights(t *testing.T) {
	for _, id := range []string{"trix", "hp5"} {
		s := Lookup(id)
		if !s.BW {
			t.Errorf("%s should be a black and white stock", id)
		}
		sum := s.BWWeights[0] + s.BWWeights[1] + s.BWWeights[2]
		if sum < 0.9 || sum > 1.1 {
			t.Errorf("%s BWWeights sum to %v, want ~1.0", id, sum)
		}
	}
}

func TestColorStocksHaveFiveControlPoints(t *testing.T) {
	s := Lookup("portra")
	if s.BW {
		t.Fatal("portra should not be marked black and white")
	}
	for c := 0; c < 3; c++ {
		if s.Curves[c][0].X != 0 || s.Curves[c][4].X != 1 {
			t.Errorf("channel %d curve does not span [0,1]: %+v", c, s.Curves[c])
		}
	}
	t.Logf("portra saturation=%v halation=%+v", s.Saturation, s.Halation)
}
