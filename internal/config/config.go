package config

import "time"

// Config is the root application configuration.
type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"development"`
	Server    ServerConfig    `yaml:"server"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Cache     CacheConfig     `yaml:"cache"`
	Words     WordsConfig     `yaml:"words"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port              int           `yaml:"port"                env:"PORT"                env-default:"8080"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"READ_HEADER_TIMEOUT" env-default:"10s"`
	ReadTimeout       time.Duration `yaml:"read_timeout"        env:"READ_TIMEOUT"        env-default:"30s"`
	WriteTimeout      time.Duration `yaml:"write_timeout"       env:"WRITE_TIMEOUT"       env-default:"30s"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"        env:"IDLE_TIMEOUT"        env-default:"120s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"    env:"SHUTDOWN_TIMEOUT"    env-default:"10s"`
	TrustedProxies    []string      `yaml:"trusted_proxies"     env:"TRUSTED_PROXIES"     env-default:"127.0.0.1"`
}

// RateLimitConfig holds per-client limits for write routes.
type RateLimitConfig struct {
	RPS   int `yaml:"rps"   env:"RATE_LIMIT_RPS"   env-default:"5"`
	Burst int `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"10"`
}

// CacheConfig holds Cache-Control settings for the list routes.
type CacheConfig struct {
	ListMaxAge time.Duration `yaml:"list_max_age" env:"STATIC_CACHE_AGE" env-default:"5m"`
}

// WordsConfig points at word files that replace the built-in lists.
// Both paths must be set together; when empty the built-in lists are used.
type WordsConfig struct {
	AnswersPath  string `yaml:"answers_path"  env:"WORDS_ANSWERS_PATH"`
	AcceptedPath string `yaml:"accepted_path" env:"WORDS_ACCEPTED_PATH"`
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "release"
}

// UseFiles reports whether word files override the built-in lists.
func (w WordsConfig) UseFiles() bool {
	return w.AnswersPath != "" && w.AcceptedPath != ""
}
