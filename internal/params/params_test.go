package params

import (
	"errors"
	"testing"
)

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve(Bundle{}, Active{})
	if err != nil {
		t.Fatalf("Resolve with empty bundle: %v", err)
	}
	if cfg.FilmStock.Stock != "kodachrome" {
		t.Errorf("default stock = %q, want kodachrome", cfg.FilmStock.Stock)
	}
	if cfg.Halftone.Mode != "cmyk" {
		t.Errorf("default halftone mode = %q, want cmyk", cfg.Halftone.Mode)
	}
	if cfg.FilmStock.Active {
		t.Error("filmstock should not be active without being named in Active")
	}
}

func TestActiveModulesAlwaysOn(t *testing.T) {
	// Halftone and Press carry no Active field: they always run, regardless
	// of what the caller names in the active set.
	cfg, err := Resolve(Bundle{}, Active{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Halftone.Mode == "" {
		t.Error("halftone config should always resolve")
	}
	if cfg.Press.Feed == "" {
		t.Error("press config should always resolve")
	}
}

func TestActiveFlagRespected(t *testing.T) {
	cfg, err := Resolve(Bundle{}, Active{"grain": true})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !cfg.Grain.Active {
		t.Error("grain should be active when named in the active set")
	}
	if cfg.Velox.Active {
		t.Error("velox should not be active when absent from the active set")
	}
}

func TestOutOfRangeRejected(t *testing.T) {
	bundle := Bundle{"filmstock": {"exposure": 100.0}}
	_, err := Resolve(bundle, Active{"filmstock": true})
	if err == nil {
		t.Fatal("expected an error for an out-of-range exposure value")
	}
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}

func TestUnknownParameterIgnored(t *testing.T) {
	bundle := Bundle{"filmstock": {"nonexistentParam": 999}}
	cfg, err := Resolve(bundle, Active{"filmstock": true})
	if err != nil {
		t.Fatalf("unknown parameter id should be ignored, not rejected: %v", err)
	}
	if cfg.FilmStock.Exposure != 0 {
		t.Errorf("unrelated defaults should be unaffected, got exposure=%v", cfg.FilmStock.Exposure)
	}
}

func TestUnknownModuleIgnored(t *testing.T) {
	bundle := Bundle{"not-a-module": {"anything": 1}}
	if _, err := Resolve(bundle, Active{}); err != nil {
		t.Fatalf("unknown module id should be ignored, not rejected: %v", err)
	}
}

func TestGetStringRejectsUnlistedValue(t *testing.T) {
	bundle := Bundle{"filmstock": {"stock": "not-a-real-stock"}}
	_, err := Resolve(bundle, Active{"filmstock": true})
	if err == nil {
		t.Fatal("expected an error for a stock id outside the enumerated set")
	}
}

func TestPaperSeededDefaultsFalse(t *testing.T) {
	cfg, err := Resolve(Bundle{}, Active{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Paper.Seeded {
		t.Error("paper.seeded should default to false")
	}
}
