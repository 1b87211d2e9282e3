package internal

import (
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config is a string-keyed map of arbitrary values with explicit getters
// and setters and no schema validation. There is no enumeration or
// deletion API. RWMutex-guarded for the concurrent HTTP runtime.
type Config struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfig creates an empty Config.
func NewConfig() *Config {
	return &Config{values: make(map[string]any)}
}

// Set stores a value under key, replacing any previous value.
func (c *Config) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

// Get returns the value stored under key, or nil if unset.
func (c *Config) Get(key string) any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[key]
}

// GetString returns the value under key if it is a string, else "".
func (c *Config) GetString(key string) string {
	v, _ := c.Get(key).(string)
	return v
}

// LoadYAML bulk-loads top-level key/value pairs from a YAML document.
// Loaded keys overwrite existing ones; other keys are untouched.
func (c *Config) LoadYAML(r io.Reader) error {
	var values map[string]any
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		return fmt.Errorf("config: decode yaml: %w", err)
	}
	for k, v := range values {
		c.Set(k, v)
	}
	return nil
}
