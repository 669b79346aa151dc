// Package logging constructs slog loggers for the CLI and provides small
// attribute helpers shared across components.
package logging
