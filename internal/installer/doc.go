// Package installer manages the on-disk artifact pair produced by an
// install: the PipeWire conf fragment and the impulse response copy it
// references. Installation state is derived from the filesystem on every
// query; the session reload after a mutation is best-effort.
package installer
