package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, false)

	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	log.WithLevel(LevelWarn)
	log.Info("quiet now")
	log.Warn("warned")
	assert.NotContains(t, buf.String(), "quiet now")
	assert.Contains(t, buf.String(), "warned")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, false)

	log.SetLevel("error")
	log.Warn("suppressed")
	log.Error("boom")
	assert.NotContains(t, buf.String(), "suppressed")
	assert.Contains(t, buf.String(), "boom")

	buf.Reset()
	log.SetLevel("not-a-level")
	log.Info("back to info")
	assert.Contains(t, buf.String(), "back to info")
}

func TestVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true, false)
	log.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}
