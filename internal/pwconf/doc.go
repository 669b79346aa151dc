// Package pwconf renders a validated signal graph into a PipeWire
// filter-chain configuration fragment. All user- and device-supplied
// strings pass through quoting validation before emission; the writer
// never assembles configuration from unchecked concatenation.
package pwconf
