// filepath: internal/cli/config_loader.go
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mediabridge/internal/config"
	"mediabridge/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	defaultConfigPath  = "config.toml"
	defaultChannelName = "mediabridge/files"
)

var (
	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags variables
	cfgFile      string
	logLevel     string
	host         string
	port         int
	indexPath    string
	cacheTTL     string
	mediaRoots   []string
	channelName  string
	jwtSecret    string
	auditEnabled bool
)

func registerFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config_path", defaultConfigPath, "Path to the base configuration file. (Env: MEDIABRIDGE_CONFIG_PATH)")
	flags.StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: MEDIABRIDGE_LOG_LEVEL)")
	flags.BoolVar(&auditEnabled, "audit-enabled", false, "Enable audit logging of deletions. (Env: MEDIABRIDGE_AUDIT_ENABLED=true)")
	registerIndexFlags(flags)
	registerServerFlags(flags)
}

// registerIndexFlags adds the flags of every command that opens the media index.
func registerIndexFlags(flags *pflag.FlagSet) {
	flags.StringVar(&indexPath, "index-path", "", "Path to the SQLite media index. (Env: MEDIABRIDGE_INDEX_PATH)")
	flags.StringVar(&cacheTTL, "cache-ttl", "", "Lifetime of cached path lookups, \"0\" disables. (Env: MEDIABRIDGE_CACHE_TTL)")
	flags.StringSliceVar(&mediaRoots, "media-root", nil, "Directory deletions are restricted to, repeatable. (Env: MEDIABRIDGE_MEDIA_ROOTS, comma separated)")
	flags.StringVar(&channelName, "channel", "", "Name of the method channel. (Env: MEDIABRIDGE_CHANNEL_NAME)")
}

// registerServerFlags adds the HTTP transport flags.
func registerServerFlags(flags *pflag.FlagSet) {
	flags.StringVar(&host, "host", "", "Interface for the HTTP server. (Env: MEDIABRIDGE_HOST)")
	flags.IntVar(&port, "port", 0, "Port for the HTTP server. (Env: MEDIABRIDGE_PORT)")
	flags.StringVar(&jwtSecret, "jwt-secret", "", "Secret for bearer tokens; empty leaves the API open. (Env: MEDIABRIDGE_JWT_SECRET)")
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	// 1. Check environment variable for config path first
	if envPath := os.Getenv("MEDIABRIDGE_CONFIG_PATH"); envPath != "" && cfgFile == defaultConfigPath {
		cfgFile = envPath
	}

	var err error
	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(cfg, cmd)

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)

	return nil
}

func applyOverrides(c *config.Config, cmd *cobra.Command) {
	getEnv := func(key string) string { return os.Getenv(key) }

	// --- 1. Environment Variables ---
	if v := getEnv("MEDIABRIDGE_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := getEnv("MEDIABRIDGE_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := getEnv("MEDIABRIDGE_JWT_SECRET"); v != "" {
		c.Server.JWTSecret = v
	}
	if v := getEnv("MEDIABRIDGE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getEnv("MEDIABRIDGE_AUDIT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.AuditEnabled = b
		}
	}
	if v := getEnv("MEDIABRIDGE_INDEX_PATH"); v != "" {
		c.Index.Path = v
	}
	if v := getEnv("MEDIABRIDGE_CACHE_TTL"); v != "" {
		c.Index.CacheTTL = v
	}
	if v := getEnv("MEDIABRIDGE_MEDIA_ROOTS"); v != "" {
		c.Media.Roots = splitList(v)
	}
	if v := getEnv("MEDIABRIDGE_CHANNEL_NAME"); v != "" {
		c.Channel.Name = v
	}

	// --- 2. CLI Flags (Take precedence) ---
	if host != "" {
		c.Server.Host = host
	}
	if port != 0 {
		c.Server.Port = port
	}
	if jwtSecret != "" {
		c.Server.JWTSecret = jwtSecret
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	// Check if flag was explicitly set
	if cmd.Flags().Changed("audit-enabled") {
		c.Logging.AuditEnabled = auditEnabled
	}
	if indexPath != "" {
		c.Index.Path = indexPath
	}
	if cacheTTL != "" {
		c.Index.CacheTTL = cacheTTL
	}
	if len(mediaRoots) > 0 {
		c.Media.Roots = mediaRoots
	}
	if channelName != "" {
		c.Channel.Name = channelName
	}

	// --- 3. Defaults ---
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Index.Path == "" {
		c.Index.Path = "mediabridge.db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Channel.Name == "" {
		c.Channel.Name = defaultChannelName
	}
}

// splitList splits a comma or path-list separated environment value.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == filepath.ListSeparator
	}) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
