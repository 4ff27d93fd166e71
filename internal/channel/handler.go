package channel

import (
	"context"

	"mediabridge/internal/audit"
	"mediabridge/internal/deletion"
	"mediabridge/internal/logging"
	"mediabridge/internal/storage"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// Coordinator deletes a file and reports what it did.
type Coordinator interface {
	Run(ctx context.Context, path string) deletion.Report
}

// Observer is told about every deleteFile call.
type Observer interface {
	ObserveDeletion(report deletion.Report)
	ObserveRejected(reason string)
}

// Reasons passed to Observer.ObserveRejected.
const (
	RejectMissingPath  = "missing_path"
	RejectOutsideRoots = "outside_roots"
)

// Handler dispatches method calls on one named channel.
type Handler struct {
	name        string
	coordinator Coordinator
	roots       []string
	auditor     audit.Auditor
	observer    Observer
}

// NewHandler creates a Handler. roots restricts deletable paths when not
// empty; auditor may be nil.
func NewHandler(name string, coordinator Coordinator, roots []string, auditor audit.Auditor) *Handler {
	return &Handler{
		name:        name,
		coordinator: coordinator,
		roots:       roots,
		auditor:     auditor,
	}
}

// WithObserver attaches o to the handler and returns it.
func (h *Handler) WithObserver(o Observer) *Handler {
	h.observer = o
	return h
}

// Name returns the channel name.
func (h *Handler) Name() string {
	return h.name
}

// Handle answers call through result.
func (h *Handler) Handle(ctx context.Context, call MethodCall, result Result) {
	log := logging.Log.WithFields(logrus.Fields{
		"channel": h.name,
		"method":  call.Method,
		"call_id": ulid.Make().String(),
	})

	switch call.Method {
	case MethodDeleteFile:
		h.deleteFile(ctx, log, call, result)
	default:
		log.Debug("Channel: method not implemented")
		result.NotImplemented()
	}
}

func (h *Handler) deleteFile(ctx context.Context, log *logrus.Entry, call MethodCall, result Result) {
	path, ok := call.StringArgument("path")
	if !ok || path == "" {
		log.Warn("Channel: deleteFile called without a path")
		h.rejected(RejectMissingPath)
		result.Error(CodeInvalidArgument, "Path is required", nil)
		return
	}

	if err := storage.CheckWithinRoots(path, h.roots); err != nil {
		log.WithField("path", path).Warnf("Channel: rejected path: %v", err)
		h.rejected(RejectOutsideRoots)
		result.Error(CodeInvalidArgument, "Path is outside the media roots", nil)
		return
	}

	report := h.coordinator.Run(ctx, path)
	log.WithFields(logrus.Fields{
		"path":     path,
		"deleted":  report.Deleted,
		"strategy": report.Strategy,
	}).Info("Channel: deleteFile handled")

	if h.observer != nil {
		h.observer.ObserveDeletion(report)
	}

	if h.auditor != nil {
		h.auditor.Log(ctx, "media.delete", audit.ActorFromContext(ctx), path, map[string]interface{}{
			"deleted":  report.Deleted,
			"strategy": report.Strategy,
			"channel":  h.name,
		})
	}

	result.Success(report.Deleted)
}

func (h *Handler) rejected(reason string) {
	if h.observer != nil {
		h.observer.ObserveRejected(reason)
	}
}
