package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("info by default", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, false)
		log.Debug("hidden")
		log.Info("shown", zap.String("dir", "docs"))

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "INFO")
		assert.Contains(t, out, "shown")
		assert.Contains(t, out, `"dir": "docs"`)
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf, true).Debug("visible")
		assert.Contains(t, buf.String(), "DEBUG")
		assert.Contains(t, buf.String(), "visible")
	})
}
