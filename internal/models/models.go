// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

import "time"

// Info holds general information about the running service.
type Info struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
	Channels    []string  `json:"channels"`
}

// MediaEntry is a record of the media index. Data is the absolute path of
// the file the record describes.
type MediaEntry struct {
	ID        int64  `json:"id"`
	Data      string `json:"data"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Album     string `json:"album"`
	MimeType  string `json:"mime_type"`
	Size      int64  `json:"size"`
	Duration  int64  `json:"duration"` // milliseconds, 0 when unknown
	DateAdded int64  `json:"date_added"`
}
