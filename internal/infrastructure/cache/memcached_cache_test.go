//go:build unit
// +build unit

package cache

import (
	"testing"
	"time"

	"github.com/Nekstoreo/usuarios-service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeUser(t *testing.T) {
	original := sampleUser()

	raw, err := encodeUser(original)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")

	decoded, err := decodeUser(raw)
	require.NoError(t, err)

	expected := original.WithoutPassword()
	assert.Equal(t, expected, decoded)
}

func TestDecodeUser_Invalid(t *testing.T) {
	_, err := decodeUser([]byte("{not json"))
	assert.Error(t, err)

	_, err = decodeUser([]byte(`{"id":1,"birthDate":"20/05/1990"}`))
	assert.Error(t, err)
}

func TestKeyAndExpiration(t *testing.T) {
	assert.Equal(t, "user:42", key(42))
	assert.Equal(t, int32(60), expirationSeconds(time.Minute))
	assert.Equal(t, int32(300), expirationSeconds(0))
	assert.Equal(t, int32(300), expirationSeconds(365*24*time.Hour))
}

func TestParseAddrs(t *testing.T) {
	assert.Equal(t, []string{"a:11211", "b:11211"}, parseAddrs(" a:11211 , ,b:11211"))
	assert.Nil(t, parseAddrs(""))
}

func TestNewUserCache(t *testing.T) {
	tests := []struct {
		name     string
		settings *config.CacheSettings
		wantNil  bool
		wantErr  bool
	}{
		{name: "disabled", settings: &config.CacheSettings{Backend: config.CacheBackendNone}, wantNil: true},
		{name: "memory", settings: &config.CacheSettings{Backend: config.CacheBackendMemory, TTL: time.Minute}},
		{
			name: "memcached",
			settings: &config.CacheSettings{
				Backend:          config.CacheBackendMemcached,
				TTL:              time.Minute,
				MemcachedAddrs:   "localhost:11211",
				MemcachedTimeout: 50 * time.Millisecond,
			},
		},
		{name: "memcached without addrs", settings: &config.CacheSettings{Backend: config.CacheBackendMemcached, TTL: time.Minute}, wantErr: true},
		{name: "unknown backend", settings: &config.CacheSettings{Backend: "redis", TTL: time.Minute}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewUserCache(tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, c)
			} else {
				assert.NotNil(t, c)
			}
		})
	}
}
