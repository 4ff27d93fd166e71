// filepath: internal/cli/token.go
package cli

import (
	"fmt"
	"time"

	"mediabridge/internal/config"
	"mediabridge/internal/httpserver/auth"
	"mediabridge/internal/logging"

	"github.com/spf13/cobra"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a bearer token for the channel API",
	Long: `Signs a token with the configured JWT secret. When no secret is configured
a new one is generated and saved to the configuration file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := ensureJWTSecret(); err != nil {
			return err
		}
		token, err := auth.GenerateToken(cfg.Server.JWTSecret, tokenSubject, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "mediabridge-client", "Subject recorded as the audit actor.")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "Token lifetime, 0 for no expiry.")
}

// ensureJWTSecret generates and persists a secret if none is configured.
func ensureJWTSecret() error {
	if cfg.Server.JWTSecret != "" {
		return nil
	}

	logging.Log.Info("Generating new random JWT secret...")
	newSecret, err := auth.GenerateSecret()
	if err != nil {
		return fmt.Errorf("failed to generate JWT secret: %w", err)
	}
	cfg.Server.JWTSecret = newSecret

	if err := config.SaveConfig(cfgFile, cfg); err != nil {
		return fmt.Errorf("failed to save new JWT secret to %s: %w", cfgFile, err)
	}
	logging.Log.Infof("New JWT secret saved to %s.", cfgFile)
	return nil
}
