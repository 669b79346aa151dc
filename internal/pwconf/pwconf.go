package pwconf

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrUnsafeString indicates a value that cannot be embedded inside a quoted
// configuration field. Rejected outright rather than stripped, so a quote in
// a device name can never silently alter the emitted configuration.
var ErrUnsafeString = errors.New("unsafe string value")

// SinkNodeName is the node.name of the installed virtual sink.
const SinkNodeName = "spatial-sink"

// Generation stamps one rendered configuration. Callers comparing outputs
// for determinism exclude it by passing a fixed value.
type Generation struct {
	Time time.Time
	ID   string
}

// NewGeneration returns a stamp for the current moment.
func NewGeneration() Generation {
	return Generation{Time: time.Now().UTC(), ID: uuid.NewString()}
}

// checkQuotable rejects values that cannot be placed between double quotes
// in a conf fragment: embedded quotes, backslashes, and control characters
// (including newlines, which would break out of the quoted field).
func checkQuotable(field, value string) error {
	for _, r := range value {
		if r == '"' || r == '\\' || r < 0x20 || r == 0x7f {
			return fmt.Errorf("%w: %s contains %q", ErrUnsafeString, field, r)
		}
	}
	return nil
}
