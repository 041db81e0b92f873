package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnikaein/stark/internal/graph"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddNode([]byte("ACGTACGT"), 0, 0)
	b := g.AddNode([]byte("TTTTTTTT"), 0, 0)
	c := g.AddNode([]byte("GGGGGGGG"), 0, 0)
	g.AddEdge(a, '+', b, '+')
	g.AddEdge(b, '+', c, '-')

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "graph.snap")
	require.NoError(t, Save(ctx, path, g, 5))

	g2, k, err := Load(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 5, k)
	assert.Equal(t, g.NodeCount(), g2.NodeCount())
	assert.Equal(t, graph.CountEdges(g), graph.CountEdges(g2))
	assert.Equal(t, g.LastID(), g2.LastID())
	restored := g2.Node(b)
	require.NotNil(t, restored, "node %d missing after round trip", b)
	assert.Equal(t, "TTTTTTTT", string(restored.Seq.Bytes()))
}

func TestLoadRejectsCorruptedPayload(t *testing.T) {
	g := graph.NewGraph()
	g.AddNode([]byte("ACGT"), 0, 0)

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "graph.snap")
	require.NoError(t, Save(ctx, path, g, 1))

	// Corrupt the file by truncating it mid-payload. The snappy reader
	// finds the final chunk shorter than its header says (and the
	// FarmHash64 checksum would catch a short payload that got past it),
	// so Load must fail rather than silently return a truncated graph.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(raw), 20, "snapshot unexpectedly small")
	require.NoError(t, os.WriteFile(path, raw[:len(raw)-4], 0o644))

	_, _, err = Load(ctx, path)
	assert.Error(t, err, "Load of a truncated snapshot should fail")
}
