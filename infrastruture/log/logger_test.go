package log

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/pony-rescuer/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("rejects empty prefix and nil output", func(t *testing.T) {
		_, err := New("", config.ColorGreen, &bytes.Buffer{})
		assert.Error(t, err)
		_, err = New("APP", config.ColorGreen, nil)
		assert.Error(t, err)
	})

	t.Run("writes prefixed leveled lines", func(t *testing.T) {
		var out bytes.Buffer
		l, err := New("SOLVER", config.ColorCyan, &out)
		require.NoError(t, err)

		l.Info("planning move")
		l.Warning("frame dropped")
		l.Error("maze host down")

		logged := out.String()
		assert.Contains(t, logged, "[SOLVER]")
		assert.Contains(t, logged, "[INFO]")
		assert.Contains(t, logged, "planning move")
		assert.Contains(t, logged, "[WARNING] frame dropped")
		assert.Contains(t, logged, "[ERROR]")
		assert.Contains(t, logged, "maze host down")
	})
}
