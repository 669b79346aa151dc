// Package history keeps a sqlite journal of install and uninstall
// operations for auditing. It never feeds back into installation state
// decisions.
package history
