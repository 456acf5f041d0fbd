package log

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, o Options) *bytes.Buffer {
	var buf bytes.Buffer
	Setup(o)
	SetOutput(&buf)
	t.Cleanup(func() {
		Setup(DefaultOptions)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", LogLevelDebug.String())
	assert.Equal(t, "LogLevel(99)", LogLevel(99).String())

	var l LogLevel
	require.NoError(t, l.Set("INFO"))
	assert.Equal(t, LogLevelInfo, l)
	assert.Error(t, l.Set("info"))
	assert.Error(t, l.Set(""))
	assert.Equal(t, "string", l.Type())
}

func TestTextLevels(t *testing.T) {
	buf := capture(t, Options{Level: LogLevelInfo, Format: FormatText})

	Debugf(nil, "hidden %d", 1)
	Infof("base32", "shown %d", 2)
	Logf(nil, "notice")
	Errorf("decode", "failed")

	assert.Equal(t, "INFO  : base32: shown 2\nNOTICE: notice\nERROR : decode: failed\n", buf.String())
}

func TestQuiet(t *testing.T) {
	buf := capture(t, Options{Level: LogLevelError})
	Logf(nil, "not shown")
	Errorf(nil, "shown")
	assert.Equal(t, "ERROR : shown\n", buf.String())
}

func TestJSON(t *testing.T) {
	buf := capture(t, Options{Level: LogLevelDebug, Format: FormatJSON})
	Debugf(42, "answer is %s", "here")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "answer is here", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "42", entry["object"])
	assert.Equal(t, "int", entry["objectType"])
}

func TestGetOptions(t *testing.T) {
	_ = capture(t, Options{Level: LogLevelDebug, Format: FormatJSON})
	assert.Equal(t, Options{Level: LogLevelDebug, Format: FormatJSON}, GetOptions())
}
