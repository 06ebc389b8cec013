package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mkhegde/calcmymoney/internal/calculation"
	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "stderr", cfg.Output)
	assert.False(t, cfg.Development)
}

func TestNewWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(Config{Level: "debug", Format: "json"}, &buf)
	l.Info("schedule built", zap.Int("periods", 360))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "schedule built", entry["msg"])
	assert.Equal(t, float64(360), entry["periods"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(Config{Level: "warn"}, &buf)
	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "shown")
}

func TestNewWriter_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(Config{Level: "chatty"}, &buf)
	l.Debug("hidden")
	l.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.log")
	l, err := New(Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)
	l.Info("to file")
	Sync(l)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")

	_, err = New(Config{Output: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	assert.Error(t, err)
}

func TestEngineLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(EngineLogger(zap.New(core), "engine"))

	_, err := engine.GenerateSchedule(domain.LoanTerms{Principal: -1, TermPeriods: 12})
	require.Error(t, err)

	entries := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "engine", entries[0].LoggerName)
	assert.True(t, strings.Contains(entries[0].Message, "rejected"))
}

func TestEngineLogger_Nil(t *testing.T) {
	assert.Equal(t, calculation.NopLogger{}, EngineLogger(nil, "engine"))
	Sync(nil)
}
