package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soltixdb/varint/internal/config"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.DebugLevel).With("component", "codec")

	logger.Warn("decode failed", "offset", 9, "error", errors.New("varint: incomplete varint"))

	entry := decodeLine(t, &buf)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "decode failed", entry["message"])
	assert.Equal(t, "codec", entry["component"])
	assert.Equal(t, float64(9), entry["offset"])
	assert.Equal(t, "varint: incomplete varint", entry["error"])
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.InfoLevel)

	logger.Debug("hidden")
	assert.Zero(t, buf.Len())

	logger.Info("shown")
	assert.NotZero(t, buf.Len())
}

func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.InfoLevel)

	ctx := WithRequestID(context.Background(), "req-1")
	logger.WithContext(ctx).Info("handled")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Same(t, logger, logger.WithContext(context.Background()))
}

func TestFromContext(t *testing.T) {
	logger := NewNop()
	assert.Same(t, logger, FromContext(WithLogger(context.Background(), logger)))
	assert.Same(t, global, FromContext(context.Background()))
}

func TestNewFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "varint.log")
	logger, err := NewFromConfig(config.LoggingConfig{
		Level:      "warn",
		Format:     "json",
		OutputPath: path,
	})
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, zerolog.WarnLevel, logger.zl.GetLevel())

	logger, err = NewFromConfig(config.LoggingConfig{Level: "bogus", Format: "console"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.zl.GetLevel())

	_, err = NewFromConfig(config.LoggingConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestNewFromConfig_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "codec.log")
	logger, err := NewFromConfig(config.LoggingConfig{Level: "info", Format: "json", OutputPath: path})
	require.NoError(t, err)

	logger.Info("block packed", "bytes", 12)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"block packed"`)
	assert.Contains(t, string(data), `"bytes":12`)
}

func TestTimeLayout(t *testing.T) {
	assert.Equal(t, time.RFC3339, timeLayout(""))
	assert.Equal(t, time.RFC3339, timeLayout("RFC3339"))
	assert.Equal(t, time.Kitchen, timeLayout("Kitchen"))
	assert.Equal(t, time.UnixDate, timeLayout("Unix"))
	assert.Equal(t, time.RFC3339Nano, timeLayout("RFC3339Nano"))
}

func TestFiberMiddleware_RequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.InfoLevel)

	app := fiber.New()
	app.Use(FiberMiddleware(logger, "/health"))
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/echo", func(c *fiber.Ctx) error {
		return c.SendString(RequestID(c.UserContext()))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/echo", nil))
	require.NoError(t, err)
	id := resp.Header.Get(RequestIDHeader)
	assert.NotEmpty(t, id)

	entry := decodeLine(t, &buf)
	assert.Equal(t, "Request completed", entry["message"])
	assert.Equal(t, id, entry["request_id"])

	buf.Reset()
	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set(RequestIDHeader, "given")
	_, err = app.Test(req)
	require.NoError(t, err)
	assert.Zero(t, buf.Len(), "skipped path should not be logged")
}
