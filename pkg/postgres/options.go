package postgres

import (
	"time"

	"github.com/savioruz/kickmatch/pkg/logger"
)

type Option func(*Postgres)

func MaxPoolSize(size int) Option {
	return func(c *Postgres) {
		if size > 0 {
			c.maxPoolSize = size
		}
	}
}

// ConnAttempts bounds the dial retries; values below one still try once.
func ConnAttempts(attempts int) Option {
	return func(c *Postgres) {
		c.connAttempts = max(attempts, 1)
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(c *Postgres) {
		if timeout > 0 {
			c.connTimeout = timeout
		}
	}
}

// WithLogger reports connection retries through l.
func WithLogger(l logger.Interface) Option {
	return func(c *Postgres) {
		c.logger = l
	}
}
