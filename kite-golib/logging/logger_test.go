package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLevelSplit(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := New(zapcore.AddSync(&out), zapcore.AddSync(&errOut))

	logger.Info("generated samples", zap.Int("rows", 40))
	logger.Error("cannot open subjects", zap.String("path", "missing.csv"))
	require.NoError(t, logger.Sync())

	infoLines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, infoLines, 1)
	errLines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	require.Len(t, errLines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(infoLines[0]), &entry))
	assert.Equal(t, "generated samples", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 40, entry["rows"])
	assert.Contains(t, entry, "caller")

	require.NoError(t, json.Unmarshal([]byte(errLines[0]), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "missing.csv", entry["path"])
}
