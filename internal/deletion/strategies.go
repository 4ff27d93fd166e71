package deletion

import (
	"context"
	"errors"
	"fmt"

	"mediabridge/internal/logging"
	"mediabridge/internal/shared"

	"github.com/sirupsen/logrus"
)

// Strategy names, in the order the coordinator tries them.
const (
	StrategyIndexedDelete   = "indexed_delete"
	StrategyPredicateDelete = "predicate_delete"
	StrategyFileDelete      = "file_delete"
)

// StrategyFunc is one attempt at deleting path. A non-nil error must come
// with Failed.
type StrategyFunc func(ctx context.Context, path string) (Result, error)

// Strategy is a named StrategyFunc.
type Strategy struct {
	Name string
	Run  StrategyFunc
}

// defaultStrategies returns the fixed chain: index lookup then targeted
// delete, predicate delete on the path column, plain file removal.
func (c *Coordinator) defaultStrategies() []Strategy {
	return []Strategy{
		{Name: StrategyIndexedDelete, Run: c.indexedDelete},
		{Name: StrategyPredicateDelete, Run: c.predicateDelete},
		{Name: StrategyFileDelete, Run: c.fileDelete},
	}
}

func (c *Coordinator) indexedDelete(ctx context.Context, path string) (Result, error) {
	id, err := c.index.FindIDByPath(ctx, path)
	if err != nil {
		if errors.Is(err, shared.ErrEntryNotFound) {
			return NotApplicable, nil
		}
		return Failed, fmt.Errorf("media index lookup failed: %w", err)
	}

	n, err := c.index.DeleteByID(ctx, id)
	if err != nil {
		return Failed, fmt.Errorf("delete of entry %d failed: %w", id, err)
	}
	if n == 0 {
		// Gone between lookup and delete.
		return NotApplicable, nil
	}

	c.removeLeftoverFile(path)
	return Succeeded, nil
}

func (c *Coordinator) predicateDelete(ctx context.Context, path string) (Result, error) {
	n, err := c.index.DeleteByPath(ctx, path)
	if err != nil {
		return Failed, fmt.Errorf("data path delete failed: %w", err)
	}
	if n == 0 {
		return NotApplicable, nil
	}

	c.removeLeftoverFile(path)
	return Succeeded, nil
}

func (c *Coordinator) fileDelete(_ context.Context, path string) (Result, error) {
	exists, err := c.files.Exists(path)
	if err != nil {
		return Failed, fmt.Errorf("stat failed: %w", err)
	}
	if !exists {
		return NotApplicable, nil
	}
	if err := c.files.Remove(path); err != nil {
		return Failed, err
	}
	return Succeeded, nil
}

// removeLeftoverFile deletes the file after its index entry is gone.
// Failures are logged only: the index removal already counts as success,
// so the file may outlive a successful call.
func (c *Coordinator) removeLeftoverFile(path string) {
	defer func() {
		if r := recover(); r != nil {
			logging.Log.WithField("path", path).Warnf("Deletion: index entry removed but file removal panicked: %v", r)
		}
	}()

	exists, err := c.files.Exists(path)
	if err != nil {
		logging.Log.WithField("path", path).Warnf("Deletion: could not stat file after index delete: %v", err)
		return
	}
	if !exists {
		return
	}
	if err := c.files.Remove(path); err != nil {
		logging.Log.WithFields(logrus.Fields{"path": path}).Warnf("Deletion: index entry removed but file remains: %v", err)
	}
}
