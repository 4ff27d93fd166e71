package deletion

import "context"

// IndexStore is the media index as seen by the coordinator.
//
// FindIDByPath returns shared.ErrEntryNotFound when no entry matches.
// Both delete forms report the number of rows they removed.
type IndexStore interface {
	FindIDByPath(ctx context.Context, path string) (int64, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
	DeleteByPath(ctx context.Context, path string) (int64, error)
}

// FileStore is the filesystem as seen by the coordinator.
type FileStore interface {
	Exists(path string) (bool, error)
	Remove(path string) error
}
