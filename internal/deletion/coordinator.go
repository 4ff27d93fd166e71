// Package deletion removes an audio file from the media index and from disk.
//
// The index record and the file can disagree: the record may point at a
// file that is already gone, or the file may never have been indexed. The
// Coordinator therefore walks a fixed chain of strategies and stops at the
// first one that deletes something.
package deletion

import (
	"context"
	"fmt"

	"mediabridge/internal/logging"

	"github.com/sirupsen/logrus"
)

// Coordinator runs the deletion strategies against an index and a filesystem.
// It keeps no state between calls.
type Coordinator struct {
	index      IndexStore
	files      FileStore
	strategies []Strategy
}

// NewCoordinator creates a Coordinator with the default strategy chain.
func NewCoordinator(index IndexStore, files FileStore) *Coordinator {
	c := &Coordinator{index: index, files: files}
	c.strategies = c.defaultStrategies()
	return c
}

// Delete removes path from the index and the filesystem. It returns true if
// any strategy removed the index entry or the file, and never panics or
// returns an error.
func (c *Coordinator) Delete(ctx context.Context, path string) bool {
	return c.Run(ctx, path).Deleted
}

// Run is Delete with the full report.
func (c *Coordinator) Run(ctx context.Context, path string) (report Report) {
	report.Path = path
	log := logging.Log.WithField("path", path)

	// A caller that goes away must not leave the index half done: the chain
	// always runs to completion.
	ctx = context.WithoutCancel(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Deletion: all delete methods failed: %v", r)
			report.Deleted = false
			report.Strategy = ""
			report.Panic = r
		}
	}()

	for _, s := range c.strategies {
		result, err := c.attempt(ctx, s, path)
		report.Attempts = append(report.Attempts, Attempt{Strategy: s.Name, Result: result, Err: err})

		switch result {
		case Succeeded:
			report.Deleted = true
			report.Strategy = s.Name
			log.WithField("strategy", s.Name).Info("Deletion: file deleted")
			return report
		case Failed:
			log.WithFields(logrus.Fields{"strategy": s.Name}).Errorf("Deletion: %s failed: %v", s.Name, err)
		default:
			log.WithField("strategy", s.Name).Debug("Deletion: nothing to delete")
		}
	}

	log.Info("Deletion: nothing deleted")
	return report
}

// attempt runs one strategy, converting a panic into Failed so the chain
// can continue.
func (c *Coordinator) attempt(ctx context.Context, s Strategy, path string) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = Failed
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	result, err = s.Run(ctx, path)
	if err != nil && result != Failed {
		// An error always means the strategy did not do its job.
		result = Failed
	}
	return result, err
}
