// Package config loads and validates the spatial TOML configuration file.
package config
