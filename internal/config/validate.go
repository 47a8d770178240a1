package config

import "fmt"

// MaxRateLimitRPS is the highest per-client request rate accepted.
const MaxRateLimitRPS = 10000

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be > 0 (got %v)", c.Server.ShutdownTimeout)
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.RPS > MaxRateLimitRPS {
		return fmt.Errorf("rate_limit.rps must be in 1..%d (got %d)", MaxRateLimitRPS, c.RateLimit.RPS)
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit.burst must be > 0 (got %d)", c.RateLimit.Burst)
	}
	if (c.Words.AnswersPath == "") != (c.Words.AcceptedPath == "") {
		return fmt.Errorf("words.answers_path and words.accepted_path must be set together")
	}
	return nil
}
