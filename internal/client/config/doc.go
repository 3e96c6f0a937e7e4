// Package config holds runtime configuration for the todoctl CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see (*Config).LoadFile), selected with --config.
//  3. Command-line flags, applied by the cli package, which override both.
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "10s"
// or integer nanoseconds:
//
//	{
//	  "server": "127.0.0.1:50051",
//	  "key_file": "/home/me/.todokeeper/owner.json",
//	  "timeout": "10s",
//	  "token_ttl": "1m"
//	}
package config
