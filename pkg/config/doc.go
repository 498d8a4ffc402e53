// Package config handles configuration management for redo.
// Configuration is layered with koanf: embedded defaults, then an optional
// TOML file in the working directory (or named by REDO_CONFIG), then
// REDO_* environment variables, then explicit overrides from flags.
package config
