package main

import (
	"bytes"
	"strings"
	"testing"

	"spatial/internal/device"
)

func testDevices() []device.Device {
	return []device.Device{
		{ID: "alsa_output.pci-0000_00_1f.3.analog-stereo", Description: "Built-in Audio", Kind: device.KindAnalog},
		{ID: "alsa_output.pci-0000_00_03.0.iec958-stereo", Description: "External DAC", Kind: device.KindDigital},
		{ID: "alsa_output.pci-0000_01_00.1.hdmi-stereo", Description: "HDMI Audio", Kind: device.KindHDMI},
	}
}

func TestPromptSelectorValidChoice(t *testing.T) {
	var out bytes.Buffer
	sel := &promptSelector{in: strings.NewReader("2\n"), out: &out}

	chosen, err := sel.Select(testDevices())
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if chosen.ID != "alsa_output.pci-0000_00_03.0.iec958-stereo" {
		t.Fatalf("selected %q, want the second device", chosen.ID)
	}
	if !strings.Contains(out.String(), "Select output device [1-3]:") {
		t.Fatalf("prompt missing range, output:\n%s", out.String())
	}
}

func TestPromptSelectorRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	sel := &promptSelector{in: strings.NewReader("abc\n9\n0\n1\n"), out: &out}

	chosen, err := sel.Select(testDevices())
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if chosen.ID != "alsa_output.pci-0000_00_1f.3.analog-stereo" {
		t.Fatalf("selected %q, want the first device", chosen.ID)
	}

	rendered := out.String()
	for _, bad := range []string{`"abc"`, `"9"`, `"0"`} {
		if !strings.Contains(rendered, "Invalid selection "+bad) {
			t.Errorf("missing re-prompt for %s, output:\n%s", bad, rendered)
		}
	}
}

func TestPromptSelectorClosedInput(t *testing.T) {
	var out bytes.Buffer
	sel := &promptSelector{in: strings.NewReader(""), out: &out}

	_, err := sel.Select(testDevices())
	if err == nil {
		t.Fatal("expected error for closed input")
	}
	if !strings.Contains(err.Error(), "input closed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRenderDeviceTableIsOneBased(t *testing.T) {
	rendered := renderDeviceTable(testDevices())
	if !strings.Contains(rendered, "1") || !strings.Contains(rendered, "3") {
		t.Fatalf("expected 1-based indices, got:\n%s", rendered)
	}
	if strings.Contains(rendered, "│ 0 ") {
		t.Fatalf("index column must start at 1, got:\n%s", rendered)
	}
	for _, want := range []string{"Built-in Audio", "External DAC", "HDMI Audio", "analog", "digital", "hdmi"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("table missing %q:\n%s", want, rendered)
		}
	}
}

func TestShortGeneration(t *testing.T) {
	if got := shortGeneration("0123456789abcdef"); got != "01234567" {
		t.Fatalf("shortGeneration = %q", got)
	}
	if got := shortGeneration("abc"); got != "abc" {
		t.Fatalf("shortGeneration = %q", got)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "medium", "light"); got != "medium" {
		t.Fatalf("firstNonEmpty = %q", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Fatalf("firstNonEmpty = %q, want empty", got)
	}
}
