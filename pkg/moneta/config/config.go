package config

import (
	"strconv"
)

// Config wraps a map[string]string for type-safe value extraction.
// All accessor methods return default values if the key is missing
// or the value cannot be converted to the requested type.
type Config struct {
	data map[string]string
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned.
func New(data map[string]string) Config {
	if data == nil {
		data = make(map[string]string)
	}
	return Config{data: data}
}

// String returns the value for key, or defaultVal if missing.
func (c Config) String(key, defaultVal string) string {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	return v
}

// Int returns the integer value for key, or defaultVal if missing or
// not a valid integer.
func (c Config) Int(key string, defaultVal int) int {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return n
}

// Bool returns the boolean value for key, or defaultVal if missing or
// not parseable by strconv.ParseBool.
func (c Config) Bool(key string, defaultVal bool) bool {
	v, ok := c.data[key]
	if !ok {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}

// Has returns true if the key exists in the config.
func (c Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}

// Raw returns the underlying map.
// The returned map should not be modified.
func (c Config) Raw() map[string]string {
	return c.data
}
