package gfa

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnikaein/stark/internal/graph"
)

func TestWriteSegmentAndLinkLines(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddNode([]byte("ACGT"), 0, 0)
	b := g.AddNode([]byte("TTTT"), 0, 0)
	require.NoError(t, g.AddEdge(a, '+', b, '+'))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g))
	out := buf.String()

	assert.Contains(t, out, "S\t1\tACGT\n")
	assert.Contains(t, out, "S\t2\tTTTT\n")
	assert.Contains(t, out, "L\t1\t+\t2\t+\t0M\n", "missing right-side link line")
	assert.Contains(t, out, "L\t2\t-\t1\t-\t0M\n", "missing reciprocal left-side link line")
}

func TestWriteRoundTripsThroughReader(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddNode([]byte("ACGTACGT"), 0, 0)
	b := g.AddNode([]byte("TTTTTTTT"), 0, 0)
	g.AddEdge(a, '+', b, '-')

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g))

	g2, _, err := Read(&buf, silentLogger())
	require.NoError(t, err)
	assert.Equal(t, g.NodeCount(), g2.NodeCount(), "round-tripped NodeCount")
	assert.Equal(t, graph.CountEdges(g), graph.CountEdges(g2), "round-tripped CountEdges")
}
