package graph

import (
	"errors"
	"testing"

	"spatial/internal/ir"
)

const testAsset = "/home/u/.config/pipewire/spatial-ir.wav"

func TestBuildTopology(t *testing.T) {
	for _, preset := range ir.Presets() {
		g, err := Build(preset, testAsset)
		if err != nil {
			t.Fatalf("%s: %v", preset, err)
		}

		counts := map[NodeKind]int{}
		channels := map[int]bool{}
		for _, n := range g.Nodes {
			counts[n.Kind]++
			if n.Kind == KindConvolver {
				channels[n.Channel] = true
				if n.AssetPath != testAsset {
					t.Fatalf("%s: convolver %q asset %q", preset, n.Name, n.AssetPath)
				}
			}
		}
		if counts[KindSplitter] != 2 || counts[KindConvolver] != 4 || counts[KindMixer] != 2 {
			t.Fatalf("%s: node counts %v", preset, counts)
		}
		for ch := 0; ch <= 3; ch++ {
			if !channels[ch] {
				t.Fatalf("%s: channel %d not covered", preset, ch)
			}
		}
		if len(g.Links) != 8 {
			t.Fatalf("%s: %d links", preset, len(g.Links))
		}
	}
}

func TestBuildChannelAssignment(t *testing.T) {
	g, err := Build(ir.PresetMedium, testAsset)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{
		"convLL": ChannelDirectL,
		"convRR": ChannelDirectR,
		"convLR": ChannelCrossLR,
		"convRL": ChannelCrossRL,
	}
	for name, ch := range want {
		n := g.node(name)
		if n == nil {
			t.Fatalf("missing node %q", name)
		}
		if n.Channel != ch {
			t.Fatalf("%s: channel %d, want %d", name, n.Channel, ch)
		}
	}
}

func TestBuildMixerWiring(t *testing.T) {
	g, err := Build(ir.PresetLight, testAsset)
	if err != nil {
		t.Fatal(err)
	}

	// each mixer sums one direct path and the opposite cross path
	wantLinks := map[string]string{
		"convLL:Out": "mixL:In 1",
		"convRL:Out": "mixL:In 2",
		"convRR:Out": "mixR:In 1",
		"convLR:Out": "mixR:In 2",
	}
	got := map[string]string{}
	for _, l := range g.Links {
		if n := g.node(l.From.Node); n.Kind == KindConvolver {
			got[l.From.String()] = l.To.String()
		}
	}
	for from, to := range wantLinks {
		if got[from] != to {
			t.Fatalf("link %s → %s, want %s", from, got[from], to)
		}
	}
}

func TestBuildRejectsUnknownPreset(t *testing.T) {
	if _, err := Build(ir.Preset("extreme"), testAsset); !errors.Is(err, ir.ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestBuildRejectsEmptyAssetPath(t *testing.T) {
	if _, err := Build(ir.PresetMedium, ""); err == nil {
		t.Fatal("expected error for empty asset path")
	}
}
