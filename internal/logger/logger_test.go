package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}

func TestNew_Handlers(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Env: "production", Level: "info", Output: &buf}).Info("hello", "k", "v")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "v", record["k"])
	assert.Contains(t, record, "source")

	buf.Reset()
	log := New(Options{Env: "development", Level: "warn", Output: &buf})
	log.Info("dropped")
	log.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "msg=kept")
}

func TestNew_TeesToRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	var buf bytes.Buffer

	New(Options{Env: "production", Output: &buf, File: path, MaxSizeMB: 1}).Info("to both")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	FromContext(context.Background(), base).Info("no id")
	assert.NotContains(t, buf.String(), "request_id")

	buf.Reset()
	ctx := WithRequestID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", GetRequestID(ctx))
	FromContext(ctx, base).Info("with id")
	assert.Contains(t, buf.String(), `"request_id":"abc-123"`)
}

func TestGormLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := NewGormLogger(base, 10*time.Millisecond)
	query := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(context.Background(), time.Now(), query, nil)
	assert.Empty(t, buf.String(), "fast queries are not logged at the default level")

	l.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)
	assert.Contains(t, buf.String(), "slow database operation")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record-not-found is an expected outcome")

	l.Trace(context.Background(), time.Now(), query, errors.New("syntax error"))
	assert.Contains(t, buf.String(), "database operation failed")

	buf.Reset()
	l.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), query, errors.New("ignored"))
	assert.Empty(t, strings.TrimSpace(buf.String()))
}
