package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the todoctl CLI.
//
// TokenTTL is the lifetime of each access token the client signs. It must
// stay within the server's maximum token age.
type Config struct {
	ServerEndpointAddr string
	KeyFile            string
	Timeout            time.Duration
	TokenTTL           time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.KeyFile = DefaultKeyFile()
	c.Timeout = 10 * time.Second
	c.TokenTTL = time.Minute
}

// DefaultKeyFile is ~/.todokeeper/owner.json, or owner.json in the working
// directory when the home directory is unknown.
func DefaultKeyFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "owner.json"
	}
	return filepath.Join(home, ".todokeeper", "owner.json")
}
