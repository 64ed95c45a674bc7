//go:build e2e && unix

package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuitWhileBrowsing(t *testing.T) {
	for _, key := range []string{"q", KeyCtrlC} {
		tf := startWithSample(t)

		tf.Press(key)
		code, exited := tf.WaitExit(3 * time.Second)
		require.True(t, exited, "key %q should quit", key)
		assert.Equal(t, 0, code)
		assert.NotContains(t, tf.SnapshotPlain(), "Execute command")
	}
}

func TestQuitKeyIsTextWhileSearching(t *testing.T) {
	tf := startWithSample(t)

	tf.Press("/")
	tf.Type("q")
	time.Sleep(300 * time.Millisecond)
	assert.False(t, tf.Exited(), "q is part of the query in search mode")

	tf.Press(KeyCtrlC)
	code, exited := tf.WaitExit(3 * time.Second)
	require.True(t, exited, "ctrl+c always quits")
	assert.Equal(t, 0, code)
}

func TestEscLeavesSearch(t *testing.T) {
	tf := startWithSample(t)

	tf.Press("/")
	require.True(t, tf.OutputContainsPlain("Search Result", 2*time.Second))
	tf.Press(KeyEsc)
	// let the escape timeout pass before the next key
	time.Sleep(200 * time.Millisecond)
	tf.Press("q")

	code, exited := tf.WaitExit(3 * time.Second)
	require.True(t, exited)
	assert.Equal(t, 0, code)
}
