package main

import (
	"path/filepath"
	"testing"

	"github.com/autochthonia/plentimon"
)

func TestLoadPresets(t *testing.T) {
	file, err := loadPresets(filepath.Join("testdata", "attack.yaml"))
	if err != nil {
		t.Fatalf("loadPresets returned error: %v", err)
	}
	if len(file.Rolls) != 2 {
		t.Fatalf("expected 2 rolls, got %d", len(file.Rolls))
	}

	strike, ok := file.Rolls["decisive_strike"]
	if !ok {
		t.Fatal("decisive_strike missing")
	}
	if strike.Dice != 8 || strike.Target != 7 || strike.Double != 10 || strike.Autosuccesses != 1 {
		t.Fatalf("unexpected preset: %+v", strike)
	}
	if len(strike.Reroll) != 1 || strike.Reroll[0] != 10 {
		t.Fatalf("unexpected reroll faces: %v", strike.Reroll)
	}

	cfg := strike.config()
	if !cfg.Cascade {
		t.Fatal("cascade should default to true")
	}

	parry := file.Rolls["desperate_parry"]
	if parry.config().Cascade {
		t.Fatal("explicit cascade: false was ignored")
	}
	// Omitted thresholds defer to the library defaults.
	if parry.config().TargetNumber != 0 || parry.config().Double != 0 {
		t.Fatalf("unexpected config: %+v", parry.config())
	}
}

func TestLoadPresetsMissingFile(t *testing.T) {
	if _, err := loadPresets(filepath.Join("testdata", "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPresetNamesSorted(t *testing.T) {
	file := PresetFile{Rolls: map[string]RollPreset{"b": {}, "a": {}, "c": {}}}
	names := file.names()
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "c" {
		t.Fatalf("names = %v", names)
	}
}

func TestRunSimulationsDegenerateDeterministic(t *testing.T) {
	cfg := plentimon.DefaultRollConfig()
	cfg.Autosuccesses = 2
	stats, err := runSimulations("empty", 0, cfg, 50)
	if err != nil {
		t.Fatalf("runSimulations returned error: %v", err)
	}
	if stats.p68 != 2 || stats.p95 != 2 || stats.mean != 2 || stats.botches != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
