package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/todokeeper/internal/flagx"
	"github.com/dmitrijs2005/todokeeper/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations use timex.Duration
// so both "5m" and integer nanoseconds are accepted. Absent fields keep
// their current value.
type JsonConfig struct {
	EndpointAddrGRPC string          `json:"endpoint_addr_grpc"`
	MetricsAddr      *string         `json:"metrics_addr"`
	Storage          string          `json:"storage"`
	DatabaseDSN      string          `json:"database_dsn"`
	LevelDBPath      string          `json:"leveldb_path"`
	RedisURL         string          `json:"redis_url"`
	RedisPrefix      string          `json:"redis_prefix"`
	DeriverCacheSize int             `json:"deriver_cache_size"`
	TokenMaxAge      *timex.Duration `json:"token_max_age"`
	LogLevel         string          `json:"log_level"`
	LogFormat        string          `json:"log_format"`
}

// parseJson loads the file named by -c/-config, if any, over config.
func parseJson(config *Config, args []string) error {
	jsonConfigFile := flagx.JsonConfigFlags(args)
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config %s: %w", jsonConfigFile, err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	if c.MetricsAddr != nil {
		config.MetricsAddr = *c.MetricsAddr
	}
	setString(&config.Storage, c.Storage)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.LevelDBPath, c.LevelDBPath)
	setString(&config.RedisURL, c.RedisURL)
	setString(&config.RedisPrefix, c.RedisPrefix)
	if c.DeriverCacheSize != 0 {
		config.DeriverCacheSize = c.DeriverCacheSize
	}
	if c.TokenMaxAge != nil {
		config.TokenMaxAge = c.TokenMaxAge.Duration
	}
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
