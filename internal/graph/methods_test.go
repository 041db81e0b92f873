package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeReciprocal(t *testing.T) {
	g := NewGraph()
	u := g.AddNode([]byte("AAAA"), 0, 0)
	v := g.AddNode([]byte("CCCC"), 0, 0)
	require.NoError(t, g.AddEdge(u, '+', v, '+'))
	un, vn := g.Node(u), g.Node(v)
	assert.Equal(t, 1, un.RightEdges.Len())
	assert.Equal(t, 1, vn.LeftEdges.Len())
	assert.True(t, vn.LeftEdges.Find(SignedNodeId(u)), "v.LeftEdges missing +u")
	assert.True(t, un.RightEdges.Find(SignedNodeId(-v)), "u.RightEdges missing -v")
}

func TestAddEdgeDedupsParallel(t *testing.T) {
	g := NewGraph()
	u := g.AddNode([]byte("AAAA"), 0, 0)
	v := g.AddNode([]byte("CCCC"), 0, 0)
	g.AddEdge(u, '+', v, '+')
	g.AddEdge(u, '+', v, '+')
	assert.Equal(t, 1, g.Node(u).RightEdges.Len(), "duplicate AddEdge must not grow the edge set")
}

func TestMoveRightEdgesToRewritesReciprocal(t *testing.T) {
	g := NewGraph()
	a := g.AddNode([]byte("AAAA"), 0, 0)
	b := g.AddNode([]byte("CCCC"), 0, 0)
	c := g.AddNode([]byte("GGGG"), 0, 0)
	g.AddEdge(a, '+', c, '+')

	g.MoveRightEdgesTo(g.Node(a), g.Node(b), false)

	assert.True(t, g.Node(a).RightEdges.Empty(), "src RightEdges not cleared")
	assert.True(t, g.Node(b).RightEdges.Find(SignedNodeId(-c)), "dst missing moved edge")
	assert.True(t, g.Node(c).LeftEdges.Find(SignedNodeId(b)), "far endpoint not rewritten to dst")
	assert.False(t, g.Node(c).LeftEdges.Find(SignedNodeId(a)), "far endpoint still references src")
}

func TestMergeToUnionsBothSides(t *testing.T) {
	g := NewGraph()
	a := g.AddNode([]byte("AAAA"), 0, 0)
	b := g.AddNode([]byte("CCCC"), 0, 0)
	left := g.AddNode([]byte("TTTT"), 0, 0)
	right := g.AddNode([]byte("GGGG"), 0, 0)
	g.AddEdge(left, '+', a, '+')
	g.AddEdge(a, '+', right, '+')

	g.MergeTo(g.Node(a), g.Node(b))

	assert.Nil(t, g.Node(a), "src node still present after MergeTo")
	bn := g.Node(b)
	assert.True(t, bn.LeftEdges.Find(SignedNodeId(left)), "dst missing left edge after merge")
	assert.True(t, bn.RightEdges.Find(SignedNodeId(-right)), "dst missing right edge after merge")
}

func TestEdgeSetErase(t *testing.T) {
	var e EdgeSet
	e.Insert(1)
	e.Insert(-2)
	e.Insert(3)
	e.Erase(-2)
	assert.False(t, e.Find(-2), "Erase did not remove -2")
	assert.Equal(t, 2, e.Len())
}

func TestArenaExtendFastPath(t *testing.T) {
	var a arena
	buf := a.alloc([]byte("AAAACCCC"))
	head := buf.Slice(0, 4)
	grown := a.extend(head, []byte("CCCC"))
	assert.Equal(t, "AAAACCCC", string(grown.Bytes()))
}

func TestArenaExtendCopyPath(t *testing.T) {
	var a arena
	buf := a.alloc([]byte("AAAA"))
	grown := a.extend(buf, []byte("TTTT"))
	assert.Equal(t, "AAAATTTT", string(grown.Bytes()))
	assert.Equal(t, "AAAA", string(buf.Bytes()), "original sequence must not be mutated")
}
