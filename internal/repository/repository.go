// filepath: internal/repository/repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"mediabridge/internal/config"

	"github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
	_ "modernc.org/sqlite" // SQLite driver
)

// mediaTable is the table holding the audio media index.
const mediaTable = "audio_media"

// Repository is the SQLite backed media index.
type Repository struct {
	DB      *sql.DB
	Builder squirrel.StatementBuilderType // SQL Query Builder
	Cache   *cache.Cache                  // path -> id, nil when disabled
}

// NewRepository opens the index database configured in cfg.
// The schema is not touched; see EnsureSchemaBootstrapped.
func NewRepository(cfg *config.Config) (*Repository, error) {
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", cfg.Index.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open index database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to index database: %w", err)
	}

	repo := &Repository{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
	if cfg.CacheTTL > 0 {
		repo.Cache = cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}
	return repo, nil
}

// Close releases the database handle.
func (s *Repository) Close() error {
	return s.DB.Close()
}

func (s *Repository) cachedID(path string) (int64, bool) {
	if s.Cache == nil {
		return 0, false
	}
	v, ok := s.Cache.Get(path)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func (s *Repository) cacheID(path string, id int64) {
	if s.Cache != nil {
		s.Cache.Set(path, id, cache.DefaultExpiration)
	}
}

func (s *Repository) forget(path string) {
	if s.Cache != nil {
		s.Cache.Delete(path)
	}
}

// now is replaced in tests.
var now = time.Now
