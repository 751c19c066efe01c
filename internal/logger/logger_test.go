package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter("prod", &buf).Info("hello", "k", "v")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "txn-intake", line["service"])
	assert.Equal(t, "v", line["k"])
}

func TestNew_DevLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter("dev", &buf).Debug("details")
	assert.Contains(t, buf.String(), "msg=details")

	buf.Reset()
	NewWithWriter("prod", &buf).Debug("details")
	assert.Empty(t, buf.String())
}
