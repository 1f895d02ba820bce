//go:build e2e && unix

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchFiltersOptions(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	catalogue, err := tf.Produce()
	require.NoError(t, err, "Failed to create catalogue")
	require.NoError(t, tf.StartApp(catalogue), "Failed to start app")
	require.True(t, tf.Ready("vselect"), "Should show vselect title")

	tf.SendEnter()
	require.True(t, tf.SeePlain("Search options..."), "Should focus the search input")

	tf.Type("carr")
	require.True(t, tf.SeePlain(`1 rows match "carr"`), "Status should report the committed search")

	plain := tf.SnapshotPlain()
	frame := plain[strings.LastIndex(plain, "carr"):]
	require.NotContains(t, frame, "Banana", "Filtered rows should be hidden")
}

func TestSearchWithoutMatches(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	catalogue, err := tf.Produce()
	require.NoError(t, err, "Failed to create catalogue")
	require.NoError(t, tf.StartApp(catalogue), "Failed to start app")
	require.True(t, tf.Ready("vselect"), "Should show vselect title")

	tf.SendEnter()
	tf.Type("zzz")
	require.True(t, tf.SeePlain("No options found."), "Should show the empty message")
}
