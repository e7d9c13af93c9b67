package commands

import (
	"fmt"

	"github.com/Nekstoreo/usuarios-service/internal/app"
	"github.com/Nekstoreo/usuarios-service/internal/infrastructure/persistence"
	"github.com/Nekstoreo/usuarios-service/internal/infrastructure/security"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DatabaseCommandHandler runs schema and seed data tasks.
type DatabaseCommandHandler struct {
	logger logger.Logger
}

// NewDatabaseCommandHandler initializes a DatabaseCommandHandler with a console logger.
func NewDatabaseCommandHandler() (*DatabaseCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &DatabaseCommandHandler{logger: loggerInstance}, nil
}

// MigrateCmd applies the schema, seeds the roles and prints the role catalogue
func (commandHandler *DatabaseCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := openMigratedDB(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = persistence.CloseDB(db) }()

	roleRepo, err := persistence.NewGormRoleRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create role repository: %w", err)
	}

	roles, err := roleRepo.List(cmd.Context())
	if err != nil {
		return err
	}

	commandHandler.logger.Info("Database migrations completed successfully")
	for _, role := range roles {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", role.ID, role.Name, role.Description)
	}
	return nil
}

// CreateAdminCmd creates the configured administrator unless it already exists
func (commandHandler *DatabaseCommandHandler) CreateAdminCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := openMigratedDB(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = persistence.CloseDB(db) }()

	userRepo, err := persistence.NewGormUserRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create user repository: %w", err)
	}
	roleRepo, err := persistence.NewGormRoleRepository(db, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create role repository: %w", err)
	}
	hasher, err := security.NewBcryptHasher(&cfg.Password)
	if err != nil {
		return err
	}

	created, err := app.NewAdminBootstrapper(userRepo, roleRepo, hasher, commandHandler.logger).
		EnsureAdmin(cmd.Context(), &cfg.Admin)
	if err != nil {
		return err
	}

	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "admin %s created\n", cfg.Admin.Email)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "admin %s already exists\n", cfg.Admin.Email)
	}
	return nil
}

// InitDatabaseCommands registers the database related commands
func InitDatabaseCommands(rootCmd *cobra.Command) error {
	handler, err := NewDatabaseCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create database command handler %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema and seed the roles",
		RunE:  handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	var createAdminCmd = &cobra.Command{
		Use:   "create-admin",
		Short: "Create the configured administrator account",
		RunE:  handler.CreateAdminCmd,
	}
	rootCmd.AddCommand(createAdminCmd)

	return nil
}
