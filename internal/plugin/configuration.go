package plugin

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Configuration is the optional blob handed to a plugin factory. It is a
// decoded TOML table: each plugin pulls out the keys it understands.
type Configuration struct {
	// Path is the file the table was loaded from, empty for inline tables.
	Path string
	// Table holds the decoded key/value pairs.
	Table map[string]any
}

// LoadConfiguration reads and decodes a TOML configuration file.
func LoadConfiguration(path string) (*Configuration, error) {
	table := make(map[string]any)
	if _, err := toml.DecodeFile(path, &table); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return &Configuration{Path: path, Table: table}, nil
}

// Int returns an integer-valued key. TOML decodes integers as int64.
func (c *Configuration) Int(key string) (int, bool) {
	if c == nil {
		return 0, false
	}
	switch v := c.Table[key].(type) {
	case int64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

// String returns a string-valued key.
func (c *Configuration) String(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.Table[key].(string)
	return v, ok
}

// Bool returns a boolean-valued key.
func (c *Configuration) Bool(key string) (bool, bool) {
	if c == nil {
		return false, false
	}
	v, ok := c.Table[key].(bool)
	return v, ok
}
