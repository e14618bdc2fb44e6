package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(DEBUG)
	SetRedactPII(true)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(INFO)
	})
	return &buf
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]string {
	t.Helper()
	var entry map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogRedaction(t *testing.T) {
	buf := capture(t)

	Info("login", "username", "alice", "email", "alice@example.com",
		"password", "hunter2", "access_token", "eyJhbGciOi", "note", "contact bob@example.com")

	entry := decode(t, buf)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "login", entry["msg"])
	assert.Equal(t, "alice", entry["username"])
	assert.Equal(t, "al***@example.com", entry["email"])
	assert.Equal(t, "[REDACTED]", entry["password"])
	assert.Equal(t, "[REDACTED]", entry["access_token"])
	assert.Equal(t, "contact bo***@example.com", entry["note"])
}

func TestSecretsMaskedWithoutPIIRedaction(t *testing.T) {
	buf := capture(t)
	SetRedactPII(false)

	Warn("x", "Authorization", "Bearer abc", "email", "alice@example.com")
	entry := decode(t, buf)
	assert.Equal(t, "[REDACTED]", entry["Authorization"])
	assert.Equal(t, "alice@example.com", entry["email"])
}

func TestLevelFilter(t *testing.T) {
	buf := capture(t)
	SetLevel(WARN)

	Info("dropped")
	assert.Zero(t, buf.Len())
	Error("kept")
	assert.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{
		"debug": DEBUG, "INFO": INFO, "": INFO, "warning": WARN, " error ": ERROR,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestRedactEmail(t *testing.T) {
	assert.Equal(t, "jo***@example.com", RedactEmail("john.doe@example.com"))
	assert.Equal(t, "***@example.com", RedactEmail("ab@example.com"))
	assert.Equal(t, "***@***", RedactEmail("not-an-email"))
}
