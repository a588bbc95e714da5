package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.faultline.dev/faultline/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	log.Info("experiment started")

	out := buf.String()
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, "experiment started")
}

func TestLogger_Warn(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	log.Warn("activity is slow")

	out := buf.String()
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "activity is slow")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf)

	log.Error(zerr.New("something broke"))

	out := buf.String()
	require.Contains(t, out, "level=ERROR")
	require.Contains(t, out, "something broke")
}
