package cache

import (
	"fmt"

	"github.com/Nekstoreo/usuarios-service/internal/domain/users"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/config"
)

// NewUserCache builds the cache selected by settings. It returns nil, nil
// when caching is disabled.
func NewUserCache(settings *config.CacheSettings) (users.UserCache, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Backend {
	case config.CacheBackendNone:
		return nil, nil
	case config.CacheBackendMemory:
		return NewInMemoryCache(settings.TTL), nil
	case config.CacheBackendMemcached:
		c, err := NewMemcachedCache(settings.MemcachedAddrs, settings.MemcachedTimeout, settings.TTL)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", settings.Backend)
	}
}
