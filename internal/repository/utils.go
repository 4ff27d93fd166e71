// filepath: internal/repository/utils.go
package repository

import "mediabridge/internal/models"

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanEntry scans a row selected with mediaColumns into a MediaEntry.
func scanEntry(row rowScanner) (*models.MediaEntry, error) {
	var e models.MediaEntry
	if err := row.Scan(&e.ID, &e.Data, &e.Title, &e.Artist, &e.Album, &e.MimeType, &e.Size, &e.Duration, &e.DateAdded); err != nil {
		return nil, err
	}
	return &e, nil
}
