package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/Nekstoreo/usuarios-service/internal/infrastructure/persistence"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/config"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// ConfigFlag is the persistent flag naming the configuration file
const ConfigFlag = "config"

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// loadConfig reads the configuration named by --config or CONFIG_PATH
func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	path, err := cmd.Flags().GetString(ConfigFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", ConfigFlag, err)
	}
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		return nil, fmt.Errorf("no configuration file: pass --%s or set CONFIG_PATH", ConfigFlag)
	}
	return config.InitializeRestConfig(path)
}

// openMigratedDB connects to the configured database, applies the schema and
// seeds the role catalogue.
func openMigratedDB(ctx context.Context, cfg *config.RestConfig) (*gorm.DB, error) {
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	if err := persistence.Migrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	if err := persistence.SeedRoles(ctx, db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to seed roles: %w", err)
	}
	return db, nil
}
