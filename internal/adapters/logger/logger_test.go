package logger_test

import (
	"bytes"
	"testing"

	"github.com/lineagetools/taxlin/internal/adapters/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_Info(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Info("database built")

	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "database built")
}

func TestLogger_ErrorFlattensZerrChain(t *testing.T) {
	l, buf := newBufferedLogger(t)

	inner := zerr.New("taxon id not found in taxonomy database")
	err := zerr.With(zerr.Wrap(inner, "failed to resolve lineage"), "taxid", -1)

	l.Error(err)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "failed to resolve lineage")
	assert.Contains(t, out, "taxon id not found in taxonomy database")
}

func TestLogger_ErrorNil(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Error(nil)

	assert.Empty(t, buf.String())
}
