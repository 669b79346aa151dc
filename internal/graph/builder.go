package graph

import (
	"fmt"

	"spatial/internal/ir"
)

// Port names used by the builtin filter-chain nodes. Mixers expose two
// labeled inputs; everything else has a single In/Out pair.
const (
	PortIn  = "In"
	PortOut = "Out"
	PortIn1 = "In 1"
	PortIn2 = "In 2"
)

// Build constructs the fixed 8-node spatial processing topology bound to
// the given preset's impulse response at assetPath:
//
//	copyL ─┬─ convLL (ch 0) ── mixL In 1
//	       └─ convLR (ch 2) ── mixR In 2
//	copyR ─┬─ convRR (ch 1) ── mixR In 1
//	       └─ convRL (ch 3) ── mixL In 2
//
// The topology is intentionally hard-coded; only the asset binding and the
// downstream device target vary per install.
func Build(preset ir.Preset, assetPath string) (*Graph, error) {
	if !preset.Valid() {
		return nil, fmt.Errorf("%w: %q", ir.ErrUnknownPreset, preset)
	}
	if assetPath == "" {
		return nil, fmt.Errorf("impulse response path must not be empty")
	}

	g := &Graph{
		Nodes: []Node{
			{Name: "copyL", Kind: KindSplitter},
			{Name: "copyR", Kind: KindSplitter},
			{Name: "convLL", Kind: KindConvolver, AssetPath: assetPath, Channel: ChannelDirectL},
			{Name: "convRR", Kind: KindConvolver, AssetPath: assetPath, Channel: ChannelDirectR},
			{Name: "convLR", Kind: KindConvolver, AssetPath: assetPath, Channel: ChannelCrossLR},
			{Name: "convRL", Kind: KindConvolver, AssetPath: assetPath, Channel: ChannelCrossRL},
			{Name: "mixL", Kind: KindMixer},
			{Name: "mixR", Kind: KindMixer},
		},
		Links: []Link{
			{From: PortRef{"copyL", PortOut}, To: PortRef{"convLL", PortIn}},
			{From: PortRef{"copyL", PortOut}, To: PortRef{"convLR", PortIn}},
			{From: PortRef{"copyR", PortOut}, To: PortRef{"convRR", PortIn}},
			{From: PortRef{"copyR", PortOut}, To: PortRef{"convRL", PortIn}},
			{From: PortRef{"convLL", PortOut}, To: PortRef{"mixL", PortIn1}},
			{From: PortRef{"convRR", PortOut}, To: PortRef{"mixR", PortIn1}},
			{From: PortRef{"convLR", PortOut}, To: PortRef{"mixR", PortIn2}},
			{From: PortRef{"convRL", PortOut}, To: PortRef{"mixL", PortIn2}},
		},
		Inputs: []PortRef{
			{"copyL", PortIn},
			{"copyR", PortIn},
		},
		Outputs: []PortRef{
			{"mixL", PortOut},
			{"mixR", PortOut},
		},
	}

	// The topology above is static; this check exists to catch builder
	// regressions, not user error.
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
