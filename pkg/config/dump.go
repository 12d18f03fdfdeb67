package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/AWCY-Arms/awcy-nfo/pkg/errors"
)

// Dump serializes the effective configuration back to TOML
func (c *Config) Dump() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "serializing configuration")
	}
	return string(data), nil
}
