package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Nekstoreo/usuarios-service/internal/infrastructure/security"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/config"
	"github.com/Nekstoreo/usuarios-service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// SecurityCommandHandler hashes passwords and inspects access tokens.
type SecurityCommandHandler struct {
	logger logger.Logger
}

// NewSecurityCommandHandler initializes a SecurityCommandHandler with a console logger.
func NewSecurityCommandHandler() (*SecurityCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &SecurityCommandHandler{logger: loggerInstance}, nil
}

// HashPasswordCmd prints the bcrypt hash of --password
func (commandHandler *SecurityCommandHandler) HashPasswordCmd(cmd *cobra.Command, _ []string) error {
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("--password is required")
	}

	cost, err := cmd.Flags().GetInt("cost")
	if err != nil {
		return fmt.Errorf("invalid cost flag: %w", err)
	}

	hasher, err := security.NewBcryptHasher(&config.PasswordSettings{BcryptCost: cost})
	if err != nil {
		return err
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}

// tokenReport is the JSON printed by inspect-token
type tokenReport struct {
	Subject   string    `json:"sub"`
	UserID    int64     `json:"userId"`
	Role      string    `json:"role"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// InspectTokenCmd verifies --token and prints its claims. The signing settings
// come from --secret/--issuer when given, otherwise from the configuration.
func (commandHandler *SecurityCommandHandler) InspectTokenCmd(cmd *cobra.Command, _ []string) error {
	token, err := cmd.Flags().GetString("token")
	if err != nil {
		return fmt.Errorf("invalid token flag: %w", err)
	}
	if token == "" {
		return fmt.Errorf("--token is required")
	}

	settings, err := jwtSettings(cmd)
	if err != nil {
		return err
	}

	provider, err := security.NewJWTProvider(settings)
	if err != nil {
		return err
	}

	claims, err := provider.Parse(token)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(tokenReport{
		Subject:   claims.Subject,
		UserID:    claims.UserID,
		Role:      claims.Role,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		IssuedAt:  claims.IssuedAt.UTC(),
		ExpiresAt: claims.ExpiresAt.UTC(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode claims: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func jwtSettings(cmd *cobra.Command) (*config.JWTSettings, error) {
	secret, err := cmd.Flags().GetString("secret")
	if err != nil {
		return nil, fmt.Errorf("invalid secret flag: %w", err)
	}
	if secret == "" {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return nil, err
		}
		return &cfg.JWT, nil
	}

	issuer, err := cmd.Flags().GetString("issuer")
	if err != nil {
		return nil, fmt.Errorf("invalid issuer flag: %w", err)
	}
	// Expiration only matters when issuing
	return &config.JWTSettings{Secret: secret, Issuer: issuer, Expiration: time.Hour}, nil
}

// InitSecurityCommands registers the password and token commands
func InitSecurityCommands(rootCmd *cobra.Command) error {
	handler, err := NewSecurityCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create security command handler %w", err)
	}

	var hashPasswordCmd = &cobra.Command{
		Use:   "hash-password",
		Short: "Print the bcrypt hash of a password",
		RunE:  handler.HashPasswordCmd,
	}
	hashPasswordCmd.Flags().StringP("password", "", "", "Password to hash")
	hashPasswordCmd.Flags().IntP("cost", "", 0, "bcrypt cost (0 selects the default)")
	rootCmd.AddCommand(hashPasswordCmd)

	var inspectTokenCmd = &cobra.Command{
		Use:   "inspect-token",
		Short: "Verify an access token and print its claims",
		RunE:  handler.InspectTokenCmd,
	}
	inspectTokenCmd.Flags().StringP("token", "", "", "Access token to verify")
	inspectTokenCmd.Flags().StringP("secret", "", "", "HS256 secret; read from the configuration when empty")
	inspectTokenCmd.Flags().StringP("issuer", "", "", "Expected issuer, used together with --secret")
	rootCmd.AddCommand(inspectTokenCmd)

	return nil
}
