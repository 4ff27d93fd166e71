// filepath: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mediabridge/internal/shared"

	"github.com/BurntSushi/toml"
)

// Config holds the application's configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Index   IndexConfig   `toml:"index"`
	Media   MediaConfig   `toml:"media"`
	Channel ChannelConfig `toml:"channel"`
	Logging LoggingConfig `toml:"logging"`

	CacheTTL time.Duration `toml:"-"` // Runtime computed value
}

// ServerConfig holds the HTTP transport configuration.
type ServerConfig struct {
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	JWTSecret string `toml:"jwt_secret"` // Empty disables the bearer token guard
}

// IndexConfig holds the media index configuration.
type IndexConfig struct {
	Path     string `toml:"path"`
	CacheTTL string `toml:"cache_ttl"` // e.g. "30s", "0" disables the lookup cache
}

// MediaConfig holds settings about the media files themselves.
type MediaConfig struct {
	Roots      []string `toml:"roots"`      // Allowed directories, empty means unrestricted
	Extensions []string `toml:"extensions"` // Extensions picked up by the scanner
}

// ChannelConfig holds the method channel configuration.
type ChannelConfig struct {
	Name string `toml:"name"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level"`
	AuditEnabled bool   `toml:"audit_enabled"`
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the current configuration back to a TOML file.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorCreateFile)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("trying to save the config: %w", shared.ErrorEncodeFile)
	}
	return nil
}

// ParseAndValidate processes configuration strings into runtime values.
func (c *Config) ParseAndValidate() error {
	if c.Index.CacheTTL == "" {
		c.Index.CacheTTL = "30s"
	}
	ttl, err := parseTTL(c.Index.CacheTTL)
	if err != nil {
		return fmt.Errorf("invalid cache_ttl: %w", err)
	}
	c.CacheTTL = ttl

	roots := make([]string, 0, len(c.Media.Roots))
	for _, root := range c.Media.Roots {
		if !filepath.IsAbs(root) {
			return fmt.Errorf("media root must be absolute: %s", root)
		}
		roots = append(roots, filepath.Clean(root))
	}
	c.Media.Roots = roots

	if len(c.Media.Extensions) == 0 {
		c.Media.Extensions = []string{".mp3", ".flac", ".ogg", ".opus", ".wav", ".m4a"}
	}
	for i, ext := range c.Media.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Media.Extensions[i] = ext
	}

	return nil
}

// parseTTL accepts Go durations and a bare "0".
func parseTTL(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration: %s", s)
	}
	return d, nil
}
