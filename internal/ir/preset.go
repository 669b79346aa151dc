package ir

import (
	"errors"
	"fmt"
	"strings"
)

// Preset selects the spatial effect strength. Each preset maps to one
// impulse response asset; all processing parameters are baked into the
// asset at generation time.
type Preset string

const (
	PresetLight  Preset = "light"
	PresetMedium Preset = "medium"
	PresetHeavy  Preset = "heavy"
)

// ErrUnknownPreset indicates an intensity name outside light/medium/heavy.
var ErrUnknownPreset = errors.New("unknown intensity preset")

// ParsePreset normalizes and validates an intensity name.
func ParsePreset(raw string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(raw)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q (expected light, medium, or heavy)", ErrUnknownPreset, raw)
	}
	return p, nil
}

// Valid reports whether p is one of the defined presets.
func (p Preset) Valid() bool {
	switch p {
	case PresetLight, PresetMedium, PresetHeavy:
		return true
	}
	return false
}

func (p Preset) String() string { return string(p) }

// AssetFileName returns the impulse response file name for the preset.
func (p Preset) AssetFileName() string {
	return "spatial_" + string(p) + ".wav"
}

// Presets lists all presets in ascending strength order.
func Presets() []Preset {
	return []Preset{PresetLight, PresetMedium, PresetHeavy}
}
