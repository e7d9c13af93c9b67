// Package config loads the service configuration.
//
// Settings come from a YAML file read with viper and may be overridden by
// environment variables (for example JWT_SECRET or DATABASE_DSN). Every
// settings struct validates itself before it is handed to the rest of the
// application.
package config
