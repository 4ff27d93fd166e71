package audit

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func newTestAuditor(enabled bool) (*LoggerAuditor, *logtest.Hook) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	hook := logtest.NewLocal(logger)
	return &LoggerAuditor{enabled: enabled, logger: logger}, hook
}

func TestLoggerAuditor_Enabled(t *testing.T) {
	a, hook := newTestAuditor(true)

	a.Log(context.Background(), "media.delete", "cli", "/music/a.mp3", map[string]interface{}{
		"deleted":  true,
		"strategy": "indexed_delete",
	})

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, "AUDIT EVENT", entry.Message)
		assert.Equal(t, "media.delete", entry.Data["audit_action"])
		assert.Equal(t, "cli", entry.Data["audit_actor"])
		assert.Equal(t, "/music/a.mp3", entry.Data["audit_resource"])
		assert.Equal(t, true, entry.Data["detail.deleted"])
		assert.Equal(t, "indexed_delete", entry.Data["detail.strategy"])
	}
}

func TestLoggerAuditor_Disabled(t *testing.T) {
	a, hook := newTestAuditor(false)
	a.Log(context.Background(), "media.delete", "cli", "/music/a.mp3", nil)
	assert.Empty(t, hook.AllEntries())
}

func TestActorFromContext(t *testing.T) {
	assert.Equal(t, "anonymous", ActorFromContext(context.Background()))
	assert.Equal(t, "app", ActorFromContext(WithActor(context.Background(), "app")))
	assert.Equal(t, "anonymous", ActorFromContext(WithActor(context.Background(), "")))
}
