package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Cache backend constants
const (
	CacheBackendNone      = "none"
	CacheBackendMemory    = "memory"
	CacheBackendMemcached = "memcached"
)

// CacheSettings configures the read-through cache used for user lookups by id.
type CacheSettings struct {
	Backend          string        `mapstructure:"backend" validate:"required,oneof=none memory memcached"`
	TTL              time.Duration `mapstructure:"ttl"`
	MemcachedAddrs   string        `mapstructure:"memcached_addrs"`
	MemcachedTimeout time.Duration `mapstructure:"memcached_timeout"`
}

// Validate checks the cache settings
func (s *CacheSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CacheSettings: %w", err)
	}
	if s.Backend != CacheBackendNone && s.TTL <= 0 {
		return fmt.Errorf("ttl must be positive when caching is enabled")
	}
	if s.Backend == CacheBackendMemcached && s.MemcachedAddrs == "" {
		return fmt.Errorf("memcached_addrs is required for the memcached backend")
	}
	return nil
}
