package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnifyChain is the three-node linear chain scenario: a -> b -> c,
// each with overlap 4 (so cur_k = 5) and each internal node degree-1 on
// both sides. A single Unify(5) sweep collapses the whole chain into one
// node.
func TestUnifyChain(t *testing.T) {
	g := NewGraph()
	a := g.AddNode([]byte("AAAAC"), 0, 0) // 5 bases, last 4 ("AAAC") overlap b's first 4
	b := g.AddNode([]byte("AAACG"), 0, 0) // last 4 ("AACG") overlap c's first 4
	c := g.AddNode([]byte("AACGT"), 0, 0)
	g.AddEdge(a, '+', b, '+')
	g.AddEdge(b, '+', c, '+')

	Unify(g, 5)

	require.Equal(t, 1, g.NodeCount())
	survivor := g.Node(a)
	require.NotNil(t, survivor, "expected the chain's head (a) to be the surviving node")
	assert.Equal(t, "AAAACGT", string(survivor.Seq.Bytes()))
	assert.True(t, survivor.LeftEdges.Empty(), "survivor should have no remaining left edges")
	assert.True(t, survivor.RightEdges.Empty(), "survivor should have no remaining right edges")
}

// TestUnifySkipsBranchingNodes checks the left-degree guard: a node with
// more than one left neighbour is left untouched.
func TestUnifySkipsBranchingNodes(t *testing.T) {
	g := NewGraph()
	a := g.AddNode([]byte("AAAAC"), 0, 0)
	b := g.AddNode([]byte("AAACG"), 0, 0)
	branch := g.AddNode([]byte("TTTTT"), 0, 0)
	g.AddEdge(a, '+', b, '+')
	g.AddEdge(branch, '+', b, '+')

	Unify(g, 5)

	assert.Equal(t, 3, g.NodeCount(), "b has two left neighbours, must not unify")
}

func TestUnifyRejectsSelfLoop(t *testing.T) {
	g := NewGraph()
	a := g.AddNode([]byte("AAAA"), 0, 0)
	g.AddEdge(a, '+', a, '+')

	Unify(g, 5)

	assert.Equal(t, 1, g.NodeCount(), "self-loop node must survive untouched")
}
