// filepath: internal/scanner/scanner.go
// Package scanner registers audio files found on disk in the media index.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"mediabridge/internal/logging"
	"mediabridge/internal/models"
	"mediabridge/internal/shared"

	"github.com/sirupsen/logrus"
)

// Indexer is the part of the media index the scanner writes to.
type Indexer interface {
	FindIDByPath(ctx context.Context, path string) (int64, error)
	InsertEntry(ctx context.Context, entry *models.MediaEntry) (*models.MediaEntry, error)
}

// Report summarises one scan.
type Report struct {
	Scanned int `json:"scanned"`
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`

	AddedBytes int64 `json:"added_bytes"`
}

// Scanner walks directories and indexes the audio files it finds.
type Scanner struct {
	index      Indexer
	extensions map[string]struct{}
}

// NewScanner creates a Scanner that picks up files with the given
// extensions (".mp3" style, case-insensitive).
func NewScanner(index Indexer, extensions []string) *Scanner {
	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts[ext] = struct{}{}
	}
	return &Scanner{index: index, extensions: exts}
}

// Scan walks root and inserts an index entry for every matching file not
// already indexed. Unreadable subdirectories and files are counted as
// failures; only an unreadable root or a cancelled context stop the scan.
func (s *Scanner) Scan(ctx context.Context, root string) (Report, error) {
	var report Report

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return report, fmt.Errorf("failed to resolve scan root: %w", err)
	}

	log := logging.Log.WithField("root", absRoot)
	log.Info("Scanner: starting scan")

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if path == absRoot {
				return walkErr
			}
			log.WithField("path", path).Warnf("Scanner: cannot read: %v", walkErr)
			report.Failed++
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := s.extensions[ext]; !ok {
			return nil
		}

		report.Scanned++
		switch size, err := s.indexFile(ctx, path, d); {
		case err != nil:
			log.WithField("path", path).Errorf("Scanner: failed to index file: %v", err)
			report.Failed++
		case size >= 0:
			report.Added++
			report.AddedBytes += size
		default:
			report.Skipped++
		}
		return nil
	})

	log.WithFields(logrus.Fields{
		"scanned": report.Scanned,
		"added":   report.Added,
		"skipped": report.Skipped,
		"failed":  report.Failed,
		"bytes":   report.AddedBytes,
	}).Info("Scanner: scan finished")

	if err != nil {
		return report, fmt.Errorf("scan of %s aborted: %w", absRoot, err)
	}
	return report, nil
}

// indexFile inserts path unless it is already indexed. It returns the size
// of the inserted file, or -1 when the file was skipped.
func (s *Scanner) indexFile(ctx context.Context, path string, d fs.DirEntry) (int64, error) {
	_, err := s.index.FindIDByPath(ctx, path)
	if err == nil {
		return -1, nil
	}
	if !errors.Is(err, shared.ErrEntryNotFound) {
		return 0, err
	}

	info, err := d.Info()
	if err != nil {
		return 0, fmt.Errorf("failed to stat file: %w", err)
	}

	mimeType := mimeTypeFor(filepath.Ext(path))
	meta, err := readMetadata(path, mimeType)
	if err != nil {
		return 0, err
	}

	_, err = s.index.InsertEntry(ctx, &models.MediaEntry{
		Data:     path,
		Title:    meta.Title,
		Artist:   meta.Artist,
		Album:    meta.Album,
		MimeType: mimeType,
		Size:     info.Size(),
		Duration: meta.Duration,
	})
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
