package logging

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("default level drops debug and info", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, false)

		log.Debug("debug message")
		log.Info("info message")
		assert.Empty(t, buf.String())

		log.Warn("data is invalid", zap.Int("index", 2))
		output := buf.String()
		assert.Contains(t, output, "WARN")
		assert.Contains(t, output, "data is invalid")
		assert.Contains(t, output, `"index": 2`)
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, true)

		log.Debug("products saved")
		assert.Contains(t, buf.String(), "products saved")
	})

	t.Run("entries carry a run id", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf, false).Warn("something")

		output := buf.String()
		require.Contains(t, output, `"run": "`)
		start := bytes.Index(buf.Bytes(), []byte(`"run": "`)) + len(`"run": "`)
		_, err := uuid.Parse(output[start : start+36])
		assert.NoError(t, err)
	})
}
