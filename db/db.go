// Package db contains configuration shared by the databases that store words.
package db

import (
	"fmt"
	"time"
)

// Config contains settings for database calls.
type Config struct {
	// QueryPeriod is the amount of time a single database call may take before it is cancelled.
	QueryPeriod time.Duration
}

// Validate ensures database calls are bounded.
func (cfg Config) Validate() error {
	if cfg.QueryPeriod <= 0 {
		return fmt.Errorf("positive query period required")
	}
	return nil
}
