package device

import (
	"context"
	"errors"
	"log/slog"

	"spatial/internal/logging"
)

// Selector picks one device from an ordered multi-candidate catalog.
// Implementations own their retry behavior; invalid input is re-prompted by
// the interactive selector, never silently defaulted.
type Selector interface {
	Select(devices []Device) (Device, error)
}

// SelectorFunc adapts a function to the Selector interface.
type SelectorFunc func(devices []Device) (Device, error)

func (f SelectorFunc) Select(devices []Device) (Device, error) { return f(devices) }

// ErrSelectionRequired indicates multiple candidates exist but no selector
// was available to disambiguate them.
var ErrSelectionRequired = errors.New("multiple output devices found")

// Resolve picks exactly one target device. An explicit id is used verbatim
// without catalog validation: the session rejects unknown ids when the
// configuration is applied, and the catalog is not guaranteed exhaustive.
// Otherwise the catalog is enumerated: zero devices is ErrNoDevices, a sole
// candidate is auto-selected, and anything more goes through the selector.
func Resolve(ctx context.Context, explicitID string, catalog *Catalog, selector Selector, logger *slog.Logger) (Device, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	if explicitID != "" {
		logger.Debug("using explicit device id",
			logging.Args(logging.String("device", explicitID))...)
		return Device{ID: explicitID, Kind: ClassifyID(explicitID)}, nil
	}

	devices, err := catalog.Enumerate(ctx)
	if err != nil {
		return Device{}, err
	}

	if len(devices) == 1 {
		logger.Debug("sole candidate auto-selected",
			logging.Args(logging.String("device", devices[0].ID))...)
		return devices[0], nil
	}

	if selector == nil {
		return Device{}, ErrSelectionRequired
	}
	return selector.Select(devices)
}
