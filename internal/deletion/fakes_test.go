package deletion_test

import (
	"context"
	"errors"
	"os"
	"sort"

	"mediabridge/internal/shared"
)

// memIndex is an in-memory media index.
type memIndex struct {
	entries map[int64]string
	nextID  int64

	lookupErr     error
	deleteIDErr   error
	deletePathErr error
}

func newMemIndex() *memIndex {
	return &memIndex{entries: map[int64]string{}, nextID: 1}
}

func (m *memIndex) add(path string) int64 {
	id := m.nextID
	m.nextID++
	m.entries[id] = path
	return id
}

func (m *memIndex) has(path string) bool {
	for _, p := range m.entries {
		if p == path {
			return true
		}
	}
	return false
}

func (m *memIndex) FindIDByPath(_ context.Context, path string) (int64, error) {
	if m.lookupErr != nil {
		return 0, m.lookupErr
	}
	ids := make([]int64, 0, len(m.entries))
	for id, p := range m.entries {
		if p == path {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return 0, shared.ErrEntryNotFound
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids[0], nil
}

func (m *memIndex) DeleteByID(_ context.Context, id int64) (int64, error) {
	if m.deleteIDErr != nil {
		return 0, m.deleteIDErr
	}
	if _, ok := m.entries[id]; !ok {
		return 0, nil
	}
	delete(m.entries, id)
	return 1, nil
}

func (m *memIndex) DeleteByPath(_ context.Context, path string) (int64, error) {
	if m.deletePathErr != nil {
		return 0, m.deletePathErr
	}
	var n int64
	for id, p := range m.entries {
		if p == path {
			delete(m.entries, id)
			n++
		}
	}
	return n, nil
}

// memFiles is an in-memory filesystem.
type memFiles struct {
	files     map[string]bool
	existsErr error
	removeErr error
	removed   []string
}

func newMemFiles(paths ...string) *memFiles {
	f := &memFiles{files: map[string]bool{}}
	for _, p := range paths {
		f.files[p] = true
	}
	return f
}

func (f *memFiles) Exists(path string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.files[path], nil
}

func (f *memFiles) Remove(path string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	if !f.files[path] {
		return &os.PathError{Op: "remove", Path: path, Err: os.ErrNotExist}
	}
	delete(f.files, path)
	f.removed = append(f.removed, path)
	return nil
}

var errIndexDown = errors.New("media provider unavailable")
