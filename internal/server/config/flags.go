package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/todokeeper/internal/flagx"
)

// parseFlags overlays short command-line flags:
//
//	-a string     gRPC bind address (e.g. ":50051")
//	-m string     metrics bind address, "" disables
//	-s string     storage backend: memory, postgres, sqlite, leveldb, redis
//	-d string     database DSN (postgres URL or sqlite file)
//	-l string     leveldb directory
//	-r string     redis URL
//	-k int        derivation cache size
//	-t duration   maximum access token age (e.g. "5m")
//	-v string     log level
//	-f string     log format: json or text
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-m", "-s", "-d", "-l", "-r", "-k", "-t", "-v", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "metrics address")
	fs.StringVar(&config.Storage, "s", config.Storage, "storage backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LevelDBPath, "l", config.LevelDBPath, "leveldb directory")
	fs.StringVar(&config.RedisURL, "r", config.RedisURL, "redis URL")
	fs.IntVar(&config.DeriverCacheSize, "k", config.DeriverCacheSize, "derivation cache size")
	fs.DurationVar(&config.TokenMaxAge, "t", config.TokenMaxAge, "maximum access token age")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format")

	return fs.Parse(args)
}
