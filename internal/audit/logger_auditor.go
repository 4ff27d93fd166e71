// filepath: internal/audit/logger_auditor.go
package audit

import (
	"context"

	"mediabridge/internal/logging"

	"github.com/sirupsen/logrus"
)

// Auditor records security-relevant events.
//
// action: what happened (e.g. "media.delete")
// actor: who did it
// resource: what was affected (e.g. a file path)
// details: structured metadata about the event
type Auditor interface {
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}

// Ensure LoggerAuditor implements Auditor
var _ Auditor = (*LoggerAuditor)(nil)

// LoggerAuditor is a simple implementation of Auditor that writes to the standard application log.
type LoggerAuditor struct {
	enabled bool
	logger  *logrus.Logger
}

// NewLoggerAuditor creates a new instance of LoggerAuditor.
func NewLoggerAuditor(enabled bool) *LoggerAuditor {
	return &LoggerAuditor{enabled: enabled, logger: logging.Log}
}

// Log records an event using logrus if auditing is enabled.
func (a *LoggerAuditor) Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{}) {
	if !a.enabled {
		return
	}

	fields := logrus.Fields{
		"audit_action":   action,
		"audit_actor":    actor,
		"audit_resource": resource,
	}

	// Range over nil map is safe in Go, so explicit nil check is not needed.
	for k, v := range details {
		fields["detail."+k] = v
	}

	// Log at INFO level with a specific prefix to make it easy to grep
	a.logger.WithContext(ctx).WithFields(fields).Info("AUDIT EVENT")
}

type actorKey struct{}

// WithActor stores the authenticated caller in ctx.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the caller stored by WithActor, or "anonymous".
func ActorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(actorKey{}).(string); ok && actor != "" {
		return actor
	}
	return "anonymous"
}
