package device

import "testing"

const pwcliSample = `	id 28, type PipeWire:Interface:Node/3
 		object.serial = "28"
 		node.name = "alsa_output.pci-0000_00_1f.3.analog-stereo"
 		node.description = "Built-in Audio Analog Stereo"
 		media.class = "Audio/Sink"
	id 31, type PipeWire:Interface:Node/3
 		node.name = "alsa_input.pci-0000_00_1f.3.analog-stereo"
 		node.description = "Built-in Audio Analog Stereo"
 		media.class = "Audio/Source"
	id 44, type PipeWire:Interface:Node/3
 		node.name = "alsa_output.pci-0000_01_00.1.hdmi-stereo"
 		media.class = "Audio/Sink"
	id 51, type PipeWire:Interface:Node/3
 		this line is malformed and has no key value shape
 		node.name = "bluez_output.AA_BB_CC_DD_EE_FF.1"
 		media.class = "Audio/Sink"
`

func TestParsePWCLIListObjects(t *testing.T) {
	devices := ParsePWCLIListObjects(pwcliSample)
	if len(devices) != 3 {
		t.Fatalf("got %d devices: %v", len(devices), devices)
	}
	if devices[0].ID != "alsa_output.pci-0000_00_1f.3.analog-stereo" {
		t.Fatalf("first device: %q", devices[0].ID)
	}
	if devices[0].Description != "Built-in Audio Analog Stereo" {
		t.Fatalf("description: %q", devices[0].Description)
	}
	// sources are filtered out
	for _, d := range devices {
		if d.ID == "alsa_input.pci-0000_00_1f.3.analog-stereo" {
			t.Fatal("capture node leaked into sink list")
		}
	}
	// the malformed line inside the last block is skipped, not fatal
	if devices[2].ID != "bluez_output.AA_BB_CC_DD_EE_FF.1" {
		t.Fatalf("third device: %q", devices[2].ID)
	}
}

func TestParsePWCLIListObjectsEmpty(t *testing.T) {
	if devices := ParsePWCLIListObjects(""); len(devices) != 0 {
		t.Fatalf("expected no devices, got %v", devices)
	}
}
