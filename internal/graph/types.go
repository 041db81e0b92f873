package graph

import "errors"

// NodeID uniquely identifies a Node within a Graph. Ids are assigned from
// a monotonically increasing counter and are never reused after a Node is
// removed. The zero value means "no neighbour" and never names a live
// Node.
type NodeID int64

// Sentinel errors. Per spec.md §7, these are the only checked error
// conditions a Graph mutator ever returns; everything else is an assumed
// invariant (asserted in tests, not at runtime).
var (
	// ErrNodeNotFound is returned by AddEdge when either endpoint id is
	// not present in the Graph. Node reports a missing id by returning nil.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrKMismatch names an edge record whose overlap length disagrees
	// with the k already established by an earlier record. No function in
	// this package returns it; gfa.Read reports that condition with
	// gfa.ErrKMismatch.
	ErrKMismatch = errors.New("graph: inconsistent overlap length k")
)

// Node is a vertex of the bidirected overlap graph: a sequence plus its
// left and right adjacency.
type Node struct {
	ID  NodeID
	Seq Sequence

	// LeftEdges and RightEdges hold SignedNodeId entries per the
	// encoding documented on SignedNodeId. Reciprocity (every edge
	// recorded at both endpoints) is a Graph-wide invariant maintained by
	// every mutator in methods.go.
	LeftEdges  EdgeSet
	RightEdges EdgeSet
}

// Graph is the in-memory bidirected sequence-overlap graph: an owning
// table of Nodes keyed by NodeID, a monotonic id counter, and the byte
// arena backing every Node's Sequence.
//
// Graph is not safe for concurrent use. stark's passes (Bluntify, Unify,
// Merge) run to completion single-threaded, as spec.md §5 requires.
type Graph struct {
	nodes  *nodeStore
	lastID NodeID
	arena  arena
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{nodes: newNodeStore()}
}

// LastID returns the highest NodeID ever allocated (not necessarily still
// live). Passes snapshot this value before a sweep and iterate
// 1..=LastID(), per spec.md §5.
func (g *Graph) LastID() NodeID { return g.lastID }

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int { return g.nodes.len() }

// Node returns the live Node with the given id, or nil if it does not
// exist (already removed, or never allocated).
func (g *Graph) Node(id NodeID) *Node { return g.nodes.get(id) }

// Each calls fn for every live node in increasing id order. fn must not
// add or remove nodes; mutating an existing Node's edges/sequence is
// fine.
func (g *Graph) Each(fn func(*Node)) {
	g.nodes.do(fn)
}
