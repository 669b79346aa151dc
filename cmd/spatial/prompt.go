package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"spatial/internal/device"
)

// promptSelector disambiguates a multi-device catalog by showing the
// candidates in catalog order and reading a 1-based index. Invalid input is
// re-prompted, never defaulted; the loop only ends on a valid choice or
// closed input.
type promptSelector struct {
	in  io.Reader
	out io.Writer
}

// newPromptSelector returns a selector for the command's streams, or nil
// when stdin is a non-interactive terminal handle and prompting would hang
// a pipeline.
func newPromptSelector(in io.Reader, out io.Writer) device.Selector {
	if f, ok := in.(*os.File); ok {
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return nil
		}
	}
	return &promptSelector{in: in, out: out}
}

func (p *promptSelector) Select(devices []device.Device) (device.Device, error) {
	fmt.Fprintf(p.out, "Found %s:\n%s\n", plural(len(devices), "output device"), renderDeviceTable(devices))

	scanner := bufio.NewScanner(p.in)
	for {
		fmt.Fprintf(p.out, "Select output device [1-%d]: ", len(devices))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return device.Device{}, err
			}
			return device.Device{}, errors.New("device selection aborted: input closed")
		}
		raw := strings.TrimSpace(scanner.Text())
		idx, err := strconv.Atoi(raw)
		if err != nil || idx < 1 || idx > len(devices) {
			fmt.Fprintf(p.out, "Invalid selection %q: enter a number between 1 and %d.\n", raw, len(devices))
			continue
		}
		return devices[idx-1], nil
	}
}
