package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// RestConfig is the configuration of the REST API binary.
type RestConfig struct {
	Port         string            `mapstructure:"port" validate:"required,numeric"`
	AllowOrigins []string          `mapstructure:"allow_origins"`
	Logger       LoggerSettings    `mapstructure:"logger"`
	Database     DatabaseSettings  `mapstructure:"database"`
	JWT          JWTSettings       `mapstructure:"jwt"`
	Password     PasswordSettings  `mapstructure:"password"`
	Admin        AdminSettings     `mapstructure:"admin"`
	Cache        CacheSettings     `mapstructure:"cache"`
	RateLimit    RateLimitSettings `mapstructure:"rate_limit"`
}

type settingsValidator interface {
	Validate() error
}

// Validate checks the top level fields and every nested settings block.
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.StructPartial(c, "Port"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	for _, s := range []settingsValidator{&c.Logger, &c.Database, &c.JWT, &c.Password, &c.Admin, &c.Cache, &c.RateLimit} {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// InitializeRestConfig reads the YAML file at path, applies environment
// overrides and validates the result. Nested keys map to upper-case env
// names joined by underscores, e.g. jwt.secret -> JWT_SECRET.
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("allow_origins", []string{"*"})

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.format", LogFormatText)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)

	v.SetDefault("database.type", PostgresDbType)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.name", "")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", 24*time.Hour)
	v.SetDefault("jwt.issuer", "usuarios-service")

	v.SetDefault("password.bcrypt_cost", 0)

	v.SetDefault("admin.email", "")
	v.SetDefault("admin.password", "")
	v.SetDefault("admin.first_name", "")
	v.SetDefault("admin.last_name", "")
	v.SetDefault("admin.identity_document", "")
	v.SetDefault("admin.phone", "")
	v.SetDefault("admin.birth_date", "")

	v.SetDefault("cache.backend", CacheBackendNone)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("cache.memcached_addrs", "")
	v.SetDefault("cache.memcached_timeout", 100*time.Millisecond)

	v.SetDefault("rate_limit.requests_per_second", 0)
	v.SetDefault("rate_limit.burst", 0)

	return v
}
