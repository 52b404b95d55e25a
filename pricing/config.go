package pricing

import (
	"time"

	"encore.dev/config"
)

type TemporalConfig struct {
	HostPort  config.String
	Namespace config.String
	TaskQueue config.String
}

type ChangeLogConfig struct {
	DefaultLimit config.Int
	MaxLimit     config.Int
}

type Config struct {
	Temporal  TemporalConfig
	ChangeLog ChangeLogConfig
	// QuoteTTLMinutes bounds how long an order quote waits for acceptance.
	QuoteTTLMinutes config.Int
}

var cfg = config.Load[*Config]()

func quoteTTL() time.Duration {
	return time.Duration(cfg.QuoteTTLMinutes()) * time.Minute
}
