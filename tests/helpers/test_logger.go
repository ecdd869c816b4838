package helpers

import (
	"bytes"
	"io"

	"github.com/rs/zerolog"
)

// TestLogger captures log output for assertions
type TestLogger struct {
	Buffer *bytes.Buffer
	Logger *zerolog.Logger
}

// NewTestLogger creates a new test logger that captures output
func NewTestLogger() *TestLogger {
	buffer := &bytes.Buffer{}
	logger := zerolog.New(buffer).Level(zerolog.DebugLevel).With().Timestamp().Logger()

	return &TestLogger{
		Buffer: buffer,
		Logger: &logger,
	}
}

// NewSilentTestLogger creates a logger that discards all output
func NewSilentTestLogger() *zerolog.Logger {
	logger := zerolog.New(io.Discard).With().Timestamp().Logger()
	return &logger
}

// ContainsLog checks if the log buffer contains the specified string
func (tl *TestLogger) ContainsLog(message string) bool {
	return bytes.Contains(tl.Buffer.Bytes(), []byte(message))
}
