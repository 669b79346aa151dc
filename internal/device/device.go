package device

import (
	"errors"
	"strings"
)

// Kind is a best-effort classification of an output device. It is labeling
// for presentation only and never affects graph construction.
type Kind string

const (
	KindAnalog    Kind = "analog"
	KindHDMI      Kind = "hdmi"
	KindUSB       Kind = "usb"
	KindBluetooth Kind = "bluetooth"
	KindDigital   Kind = "digital"
	KindUnknown   Kind = "unknown"
)

// Device is an immutable snapshot of one enumerated output endpoint. The id
// is the opaque node name the session uses; Description is the optional
// human-readable label.
type Device struct {
	ID          string
	Description string
	Kind        Kind
}

// ErrNoDevices indicates both discovery backends returned nothing.
var ErrNoDevices = errors.New("no output devices found")

// ClassifyID infers the device kind from well-known id substrings.
func ClassifyID(id string) Kind {
	lower := strings.ToLower(id)
	switch {
	case strings.Contains(lower, "analog-stereo"):
		return KindAnalog
	case strings.Contains(lower, "hdmi"):
		return KindHDMI
	case strings.Contains(lower, "usb"):
		return KindUSB
	case strings.Contains(lower, "bluetooth"), strings.Contains(lower, "bluez"):
		return KindBluetooth
	case strings.Contains(lower, "digital"), strings.Contains(lower, "iec958"):
		return KindDigital
	default:
		return KindUnknown
	}
}
