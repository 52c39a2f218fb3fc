package main

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v2"

	"github.com/autochthonia/plentimon"
)

// PresetFile is a YAML file of named roll presets.
type PresetFile struct {
	Rolls map[string]RollPreset `yaml:"rolls"`
}

// RollPreset describes one pool roll. Omitted target/double fall back to
// the library defaults; omitted cascade defaults to true.
type RollPreset struct {
	Dice          int   `yaml:"dice"`
	Target        int   `yaml:"target,omitempty"`
	Double        int   `yaml:"double,omitempty"`
	Reroll        []int `yaml:"reroll,omitempty"`
	Cascade       *bool `yaml:"cascade,omitempty"`
	Autosuccesses int   `yaml:"autosuccesses,omitempty"`
}

func loadPresets(path string) (PresetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PresetFile{}, err
	}
	var file PresetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return PresetFile{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(file.Rolls) == 0 {
		return PresetFile{}, fmt.Errorf("%s: no rolls defined", path)
	}
	return file, nil
}

// names returns the preset names in stable order.
func (f PresetFile) names() []string {
	names := make([]string, 0, len(f.Rolls))
	for name := range f.Rolls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p RollPreset) config() plentimon.RollConfig {
	cfg := plentimon.RollConfig{
		TargetNumber:  p.Target,
		Double:        p.Double,
		RerollFaces:   p.Reroll,
		Cascade:       true,
		Autosuccesses: p.Autosuccesses,
	}
	if p.Cascade != nil {
		cfg.Cascade = *p.Cascade
	}
	return cfg
}
