// Package file provides a TOML file-based implementation of the
// ConfigStore port. Configuration lives in a single file in the
// Nexus config directory and is flattened to dot-notation keys.
package file
