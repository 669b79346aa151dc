package graph

import (
	"errors"
	"testing"

	"spatial/internal/ir"
)

func builtGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := Build(ir.PresetMedium, testAsset)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func requireInvariant(t *testing.T, err error) {
	t.Helper()
	if !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected ErrInvariant, got %v", err)
	}
}

func TestValidateDetectsDuplicateChannel(t *testing.T) {
	g := builtGraph(t)
	g.node("convLR").Channel = ChannelDirectL
	requireInvariant(t, g.Validate())
}

func TestValidateDetectsMissingConvolver(t *testing.T) {
	g := builtGraph(t)
	var nodes []Node
	for _, n := range g.Nodes {
		if n.Name == "convRL" {
			continue
		}
		nodes = append(nodes, n)
	}
	g.Nodes = nodes
	requireInvariant(t, g.Validate())
}

func TestValidateDetectsDoubledMixerPort(t *testing.T) {
	g := builtGraph(t)
	for i := range g.Links {
		if g.Links[i].To.Node == "mixL" && g.Links[i].To.Port == PortIn2 {
			g.Links[i].To.Port = PortIn1
		}
	}
	requireInvariant(t, g.Validate())
}

func TestValidateDetectsTwoDirectPathsIntoMixer(t *testing.T) {
	g := builtGraph(t)
	// rewire mixL's cross input to the direct-right convolver
	for i := range g.Links {
		if g.Links[i].From.Node == "convRL" {
			g.Links[i].From.Node = "convRR"
		}
	}
	requireInvariant(t, g.Validate())
}

func TestValidateDetectsCycle(t *testing.T) {
	g := builtGraph(t)
	g.Links = append(g.Links, Link{
		From: PortRef{"mixL", PortOut},
		To:   PortRef{"copyL", PortIn},
	})
	requireInvariant(t, g.Validate())
}

func TestValidateDetectsOrphan(t *testing.T) {
	g := builtGraph(t)
	var links []Link
	for _, l := range g.Links {
		if l.To.Node == "convLR" {
			continue
		}
		links = append(links, l)
	}
	g.Links = links
	requireInvariant(t, g.Validate())
}

func TestValidateDetectsDivergentAssetPaths(t *testing.T) {
	g := builtGraph(t)
	g.node("convRR").AssetPath = "/tmp/other.wav"
	requireInvariant(t, g.Validate())
}
