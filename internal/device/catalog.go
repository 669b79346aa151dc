package device

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"spatial/internal/logging"
)

// maxDevices caps the catalog so interactive selection stays tractable.
const maxDevices = 20

// Executor abstracts command execution for device discovery.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) ([]byte, error)
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	return cmd.Output()
}

// Catalog enumerates candidate physical output devices. Results reflect a
// live query: re-invocation may return different devices, and nothing is
// cached across invocations.
type Catalog struct {
	exec   Executor
	logger *slog.Logger
}

// NewCatalog constructs a catalog backed by the pw-cli and pactl binaries.
func NewCatalog(logger *slog.Logger) *Catalog {
	return newCatalog(commandExecutor{}, logger)
}

func newCatalog(exec Executor, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Catalog{exec: exec, logger: logging.NewComponentLogger(logger, "device-catalog")}
}

// Enumerate queries the primary backend (pw-cli) and falls back to pactl
// when it yields nothing. Results are deduplicated by id in first-seen
// order, capped, and classified. Both backends empty is ErrNoDevices.
func (c *Catalog) Enumerate(ctx context.Context) ([]Device, error) {
	devices, err := c.fromPWCLI(ctx)
	if err != nil {
		c.logger.Debug("primary discovery backend failed",
			logging.Args(logging.Error(err))...)
	}
	if len(devices) == 0 {
		devices, err = c.fromPactl(ctx)
		if err != nil {
			c.logger.Debug("fallback discovery backend failed",
				logging.Args(logging.Error(err))...)
		}
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("%w: neither pw-cli nor pactl reported an audio sink", ErrNoDevices)
	}
	return finalize(devices), nil
}

func (c *Catalog) fromPWCLI(ctx context.Context) ([]Device, error) {
	out, err := c.exec.Run(ctx, "pw-cli", []string{"list-objects", "Node"})
	if err != nil {
		return nil, fmt.Errorf("pw-cli list-objects: %w", err)
	}
	return ParsePWCLIListObjects(string(out)), nil
}

func (c *Catalog) fromPactl(ctx context.Context) ([]Device, error) {
	out, err := c.exec.Run(ctx, "pactl", []string{"list", "short", "sinks"})
	if err != nil {
		return nil, fmt.Errorf("pactl list short sinks: %w", err)
	}
	return ParsePactlShortSinks(string(out)), nil
}

func finalize(devices []Device) []Device {
	seen := map[string]bool{}
	result := make([]Device, 0, len(devices))
	for _, d := range devices {
		if seen[d.ID] {
			continue
		}
		seen[d.ID] = true
		d.Kind = ClassifyID(d.ID)
		result = append(result, d)
		if len(result) == maxDevices {
			break
		}
	}
	return result
}
