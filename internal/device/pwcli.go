package device

import (
	"bufio"
	"strings"
)

// ParsePWCLIListObjects extracts Audio/Sink nodes from `pw-cli list-objects
// Node` output. The format is a block per object, starting with an
// "id N, type ..." line followed by indented `key = "value"` properties.
// The parser is tolerant: malformed lines and incomplete blocks are skipped
// rather than failing the whole enumeration.
func ParsePWCLIListObjects(output string) []Device {
	var devices []Device
	props := map[string]string{}

	flush := func() {
		if props["media.class"] == "Audio/Sink" && props["node.name"] != "" {
			devices = append(devices, Device{
				ID:          props["node.name"],
				Description: props["node.description"],
			})
		}
		props = map[string]string{}
	}

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "id ") && strings.Contains(line, ", type ") {
			flush()
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = strings.Trim(value, "\"")
		if key == "" {
			continue
		}
		props[key] = value
	}
	flush()

	return devices
}
