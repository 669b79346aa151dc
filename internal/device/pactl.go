package device

import (
	"bufio"
	"strings"
)

// ParsePactlShortSinks extracts sink names from `pactl list short sinks`
// output: one sink per line, tab-separated, name in the second column.
// Malformed lines are skipped.
func ParsePactlShortSinks(output string) []Device {
	var devices []Device
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		name := strings.TrimSpace(fields[1])
		if name == "" {
			continue
		}
		devices = append(devices, Device{ID: name})
	}
	return devices
}
