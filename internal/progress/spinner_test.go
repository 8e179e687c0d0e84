package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_StopWithoutStart(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSpinner(&buf, "loading")
	s.Stop(false)
	s.Stop(true)

	assert.Equal(t, "\r\033[K  ✗ loading\n", buf.String())
}

func TestSpinner_Run(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSpinner(&buf, "Fetching")
	s.interval = time.Millisecond
	s.Start()
	time.Sleep(10 * time.Millisecond)
	s.SetMessage("Decoding")
	time.Sleep(10 * time.Millisecond)
	s.Stop(true)

	out := buf.String()
	assert.Contains(t, out, "Fetching")
	assert.Contains(t, out, "Decoding")
	assert.True(t, strings.HasSuffix(out, "  ✓ Decoding\n"))
}
