package config

import (
	"bytes"

	"github.com/arthur-debert/redo/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// header is written above generated configuration files
const header = "# redo configuration\n# Generated by redo-config; see the defaults for documentation of each key.\n\n"

// GenerateConfigContent renders cfg as a TOML document suitable for .redo.toml
func GenerateConfigContent(cfg *Config) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(header)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.String(), nil
}
