package logging_test

import (
	"bytes"
	"testing"

	"gotest.tools/v3/assert"

	"ebiten-circles/config"
	"ebiten-circles/logging"
)

func TestNew_JSON(t *testing.T) {
	cfg := config.Default()
	cfg.PrettyLog = false
	cfg.LogLevel = "warn"

	var buf bytes.Buffer
	logger, err := logging.New(cfg, &buf)
	assert.NilError(t, err)

	logger.Info().Msg("dropped")
	sub := logging.ForSystem(logger, "integration")
	sub.Warn().Msg("kept")

	out := buf.String()
	assert.Assert(t, !bytes.Contains(buf.Bytes(), []byte("dropped")), out)
	assert.Assert(t, bytes.Contains(buf.Bytes(), []byte(`"system":"integration"`)), out)
	assert.Assert(t, bytes.Contains(buf.Bytes(), []byte(`"message":"kept"`)), out)
}

func TestNew_BadLevel(t *testing.T) {
	cfg := config.Default()
	cfg.LogLevel = "shouty"
	_, err := logging.New(cfg, &bytes.Buffer{})
	assert.ErrorContains(t, err, "shouty")
}
