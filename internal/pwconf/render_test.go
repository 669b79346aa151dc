package pwconf

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"spatial/internal/graph"
	"spatial/internal/ir"
)

const (
	testDevice = "alsa_output.pci-0000_00_1f.3.analog-stereo"
	testAsset  = "/home/u/.config/pipewire/spatial-ir.wav"
)

func fixedGeneration() Generation {
	return Generation{
		Time: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
		ID:   "5f0c6f9e-0000-4000-8000-000000000000",
	}
}

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.Build(ir.PresetMedium, testAsset)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestRenderDeterministic(t *testing.T) {
	g := testGraph(t)
	gen := fixedGeneration()

	first, err := Render(g, testDevice, "Enhanced Audio", 48000, gen)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := Render(g, testDevice, "Enhanced Audio", 48000, gen)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if first != second {
		t.Fatal("identical inputs produced different output")
	}
}

func TestRenderEndToEnd(t *testing.T) {
	g := testGraph(t)
	out, err := Render(g, testDevice, "Enhanced Audio", 48000, fixedGeneration())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	// convolvers reference channels 0-3 in order
	lastIdx := -1
	for ch := 0; ch <= 3; ch++ {
		needle := fmt.Sprintf("channel = %d", ch)
		idx := strings.Index(out, needle)
		if idx < 0 {
			t.Fatalf("missing %q", needle)
		}
		if idx < lastIdx {
			t.Fatalf("channel %d emitted out of order", ch)
		}
		lastIdx = idx
	}

	if !strings.Contains(out, fmt.Sprintf("target.object  = %q", testDevice)) {
		t.Fatal("target device not bound")
	}
	if !strings.Contains(out, "audio.rate     = 48000") {
		t.Fatal("sample rate not pinned")
	}
	if got := strings.Count(out, "{ output = "); got != 8 {
		t.Fatalf("link declarations: got %d, want 8", got)
	}
	if got := strings.Count(out, "filename = "+fmt.Sprintf("%q", testAsset)); got != 4 {
		t.Fatalf("asset references: got %d, want 4", got)
	}
	if !strings.Contains(out, `inputs  = [ "copyL:In" "copyR:In" ]`) {
		t.Fatal("graph inputs not declared")
	}
	if !strings.Contains(out, `outputs = [ "mixL:Out" "mixR:Out" ]`) {
		t.Fatal("graph outputs not declared")
	}
	if !strings.Contains(out, `node.description = "Enhanced Audio"`) {
		t.Fatal("display name not emitted")
	}
}

func TestRenderStableNodeOrder(t *testing.T) {
	g := testGraph(t)
	out, err := Render(g, testDevice, "Enhanced Audio", 48000, fixedGeneration())
	if err != nil {
		t.Fatal(err)
	}
	splitter := strings.Index(out, "label = copy ")
	convolver := strings.Index(out, "label = convolver ")
	mixer := strings.Index(out, "label = mixer ")
	if !(splitter < convolver && convolver < mixer) {
		t.Fatalf("node groups out of order: copy=%d convolver=%d mixer=%d", splitter, convolver, mixer)
	}
}

func TestRenderRejectsQuoteInDisplayName(t *testing.T) {
	g := testGraph(t)
	_, err := Render(g, testDevice, `Enhanced "Audio"`, 48000, fixedGeneration())
	if !errors.Is(err, ErrUnsafeString) {
		t.Fatalf("expected ErrUnsafeString, got %v", err)
	}
}

func TestRenderRejectsControlCharInDeviceID(t *testing.T) {
	g := testGraph(t)
	_, err := Render(g, "alsa_output\nrogue", "Enhanced Audio", 48000, fixedGeneration())
	if !errors.Is(err, ErrUnsafeString) {
		t.Fatalf("expected ErrUnsafeString, got %v", err)
	}
}

func TestRenderRejectsInvalidGraph(t *testing.T) {
	g := testGraph(t)
	g.Nodes = g.Nodes[:len(g.Nodes)-1]
	if _, err := Render(g, testDevice, "Enhanced Audio", 48000, fixedGeneration()); !errors.Is(err, graph.ErrInvariant) {
		t.Fatalf("expected ErrInvariant, got %v", err)
	}
}

func TestNewGenerationUnique(t *testing.T) {
	a := NewGeneration()
	b := NewGeneration()
	if a.ID == b.ID {
		t.Fatal("generation ids collide")
	}
}
