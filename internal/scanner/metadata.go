// filepath: internal/scanner/metadata.go
package scanner

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"mediabridge/internal/logging"

	"github.com/dhowden/tag"
	"github.com/go-audio/wav"
)

var audioMimeTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".flac": "audio/flac",
	".ogg":  "audio/ogg",
	".opus": "audio/opus",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
	".aac":  "audio/aac",
}

// mimeTypeFor maps a file extension to a content type.
func mimeTypeFor(ext string) string {
	ext = strings.ToLower(ext)
	if t, ok := audioMimeTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}

type fileMetadata struct {
	Title    string
	Artist   string
	Album    string
	Duration int64 // milliseconds
}

// readMetadata reads tags and, for WAV files, the duration. Files without
// tags are not an error; the title falls back to the file name.
func readMetadata(path, mimeType string) (*fileMetadata, error) {
	meta := &fileMetadata{}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file for metadata: %w", err)
	}
	defer file.Close()

	if tags, tagErr := tag.ReadFrom(file); tagErr == nil {
		meta.Title = strings.TrimSpace(tags.Title())
		meta.Artist = strings.TrimSpace(tags.Artist())
		meta.Album = strings.TrimSpace(tags.Album())
	} else {
		logging.Log.Debugf("readMetadata: no tags in %s: %v", path, tagErr)
	}

	if mimeType == "audio/wav" {
		if _, err := file.Seek(0, 0); err != nil {
			return nil, fmt.Errorf("failed to seek for duration: %w", err)
		}
		decoder := wav.NewDecoder(file)
		if decoder.IsValidFile() {
			if dur, err := decoder.Duration(); err == nil {
				meta.Duration = dur.Milliseconds()
			}
		} else {
			logging.Log.Debugf("readMetadata: %s is not a valid wav file", path)
		}
	}

	if meta.Title == "" {
		base := filepath.Base(path)
		meta.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return meta, nil
}
