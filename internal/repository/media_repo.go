// filepath: internal/repository/media_repo.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mediabridge/internal/models"
	"mediabridge/internal/shared"

	"github.com/Masterminds/squirrel"
)

var mediaColumns = []string{"id", "data", "title", "artist", "album", "mime_type", "size", "duration", "date_added"}

// FindIDByPath returns the id of the first entry whose data column equals
// path. It returns shared.ErrEntryNotFound when nothing matches.
func (s *Repository) FindIDByPath(ctx context.Context, path string) (int64, error) {
	if id, ok := s.cachedID(path); ok {
		return id, nil
	}

	query := s.Builder.Select("id").
		From(mediaTable).
		Where(squirrel.Eq{"data": path}).
		OrderBy("id ASC").
		Limit(1)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build lookup query: %w", err)
	}

	var id int64
	if err := s.DB.QueryRowContext(ctx, sqlQuery, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, shared.ErrEntryNotFound
		}
		return 0, fmt.Errorf("failed to look up entry: %w", err)
	}

	s.cacheID(path, id)
	return id, nil
}

// DeleteByID removes the entry with the given id and reports the number of
// rows removed.
func (s *Repository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	// RETURNING gives us the paths to evict from the lookup cache.
	query := s.Builder.Delete(mediaTable).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING data")

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entry %d: %w", id, err)
	}
	defer rows.Close()

	var deleted int64
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return deleted, fmt.Errorf("failed to scan deleted entry: %w", err)
		}
		s.forget(path)
		deleted++
	}
	if err := rows.Err(); err != nil {
		return deleted, fmt.Errorf("failed to delete entry %d: %w", id, err)
	}
	return deleted, nil
}

// DeleteByPath removes every entry whose data column equals path and
// reports the number of rows removed.
func (s *Repository) DeleteByPath(ctx context.Context, path string) (int64, error) {
	query := s.Builder.Delete(mediaTable).Where(squirrel.Eq{"data": path})

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete query: %w", err)
	}

	res, err := s.DB.ExecContext(ctx, sqlQuery, args...)
	s.forget(path)
	if err != nil {
		return 0, fmt.Errorf("failed to delete entries for %s: %w", path, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

// InsertEntry adds a record to the index and returns it with its new id.
func (s *Repository) InsertEntry(ctx context.Context, entry *models.MediaEntry) (*models.MediaEntry, error) {
	if entry.Data == "" {
		return nil, fmt.Errorf("%w: entry has no path", shared.ErrInvalidPath)
	}
	if entry.DateAdded == 0 {
		entry.DateAdded = now().Unix()
	}

	query := s.Builder.Insert(mediaTable).
		Columns("data", "title", "artist", "album", "mime_type", "size", "duration", "date_added").
		Values(entry.Data, entry.Title, entry.Artist, entry.Album, entry.MimeType, entry.Size, entry.Duration, entry.DateAdded)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	res, err := s.DB.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	entry.ID = id
	return entry, nil
}

// GetEntry retrieves a single entry by its id.
func (s *Repository) GetEntry(ctx context.Context, id int64) (*models.MediaEntry, error) {
	query := s.Builder.Select(mediaColumns...).
		From(mediaTable).
		Where(squirrel.Eq{"id": id})

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	entry, err := scanEntry(s.DB.QueryRowContext(ctx, sqlQuery, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// GetEntriesByPath retrieves every entry for path, oldest first.
func (s *Repository) GetEntriesByPath(ctx context.Context, path string) ([]models.MediaEntry, error) {
	query := s.Builder.Select(mediaColumns...).
		From(mediaTable).
		Where(squirrel.Eq{"data": path}).
		OrderBy("id ASC")

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	entries := make([]models.MediaEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// CountEntries returns the number of records in the index.
func (s *Repository) CountEntries(ctx context.Context) (int64, error) {
	sqlQuery, args, err := s.Builder.Select("COUNT(*)").From(mediaTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}
	var n int64
	if err := s.DB.QueryRowContext(ctx, sqlQuery, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}
