package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colvin/schemer/pkg/schemer"
)

// Both implementations must satisfy the public interface.
var (
	_ schemer.Logger = (*ConsoleLogger)(nil)
	_ schemer.Logger = (*NullLogger)(nil)
)

func TestConsoleLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLoggerTo(&buf, false)

	l.Info("composed %d files", 3)

	assert.Equal(t, "composed 3 files\n", buf.String())
}

func TestConsoleLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLoggerTo(&buf, false)

	l.Error("cannot open %s", "schema/ORDER")

	assert.Equal(t, "[ERROR] cannot open schema/ORDER\n", buf.String())
}

func TestConsoleLogger_VerboseDisabled(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLoggerTo(&buf, false)

	l.Verbose("should not appear")

	assert.Empty(t, buf.String())
}

func TestConsoleLogger_VerboseEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLoggerTo(&buf, true)

	l.Verbose("resolved %d paths", 16)

	assert.Equal(t, "[VERBOSE] resolved 16 paths\n", buf.String())
}

func TestConsoleLogger_NoArgsWithPercent(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLoggerTo(&buf, false)

	// A literal percent in a message without args must not be mangled.
	l.Info("progress 100%")

	assert.Equal(t, "progress 100%\n", buf.String())
}

func TestNullLogger_Discards(t *testing.T) {
	l := NewNullLogger()

	// Must not panic, regardless of arguments.
	l.Verbose("a %s", "b")
	l.Info("a")
	l.Error("a %d %d", 1, 2)
}
