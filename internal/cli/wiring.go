// filepath: internal/cli/wiring.go
package cli

import (
	"fmt"

	"mediabridge/internal/audit"
	"mediabridge/internal/channel"
	"mediabridge/internal/deletion"
	"mediabridge/internal/logging"
	"mediabridge/internal/repository"
	"mediabridge/internal/storage"
)

// openIndex opens the media index, migrating a fresh database and refusing
// an outdated one.
func openIndex() (*repository.Repository, error) {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repository: %w", err)
	}

	// --- Conditional Auto-migrate on startup ---
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		logging.Log.Errorf("Failed to bootstrap database: %v", err)
		repo.Close()
		return nil, err
	}

	if err := repo.ValidateSchema(); err != nil {
		logging.Log.Error("---------------------------------------------------------------")
		logging.Log.Errorf("CRITICAL DATABASE ERROR: %v", err)
		logging.Log.Error("Run 'mediabridge migrate up' to update the media index.")
		logging.Log.Error("---------------------------------------------------------------")
		repo.Close()
		return nil, err
	}

	return repo, nil
}

// newChannelHandler builds the deleteFile channel over repo and the local
// filesystem.
func newChannelHandler(repo *repository.Repository) *channel.Handler {
	coordinator := deletion.NewCoordinator(repo, storage.NewLocal())
	auditor := audit.NewLoggerAuditor(cfg.Logging.AuditEnabled)
	return channel.NewHandler(cfg.Channel.Name, coordinator, cfg.Media.Roots, auditor)
}
