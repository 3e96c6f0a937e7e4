package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/todokeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields leave the runtime Config untouched.
type JsonConfig struct {
	ServerEndpointAddr string          `json:"server"`
	KeyFile            string          `json:"key_file"`
	Timeout            *timex.Duration `json:"timeout"`
	TokenTTL           *timex.Duration `json:"token_ttl"`
}

// LoadFile overlays c with values from the JSON file at path.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.ServerEndpointAddr != "" {
		c.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.KeyFile != "" {
		c.KeyFile = jc.KeyFile
	}
	if jc.Timeout != nil {
		c.Timeout = jc.Timeout.Duration
	}
	if jc.TokenTTL != nil {
		c.TokenTTL = jc.TokenTTL.Duration
	}
	return nil
}
