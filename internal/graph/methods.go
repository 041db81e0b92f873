package graph

// Sides used when wiring an edge, matching the GFA +/- orientation
// characters directly so gfa.Read can pass a parsed record's sign bytes
// straight through without translation.
const (
	SideRight byte = '+'
	SideLeft  byte = '-'
)

// AddNode allocates a fresh Node holding a copy of seq and returns its id.
// leftNeighbour/rightNeighbour, if non-zero, seed the new node's left/right
// edge list with a +leftNeighbour/+rightNeighbour entry; only the new
// node's lists are written, not the neighbour's. This mirrors node.cpp's
// constructor-time convenience but nothing in this package's three passes
// uses it — every edge they create is wired with AddEdge after the fact.
// It is kept for API symmetry with the original and for gfa.Read, which
// does use it to materialize S-record segments before any edges exist.
func (g *Graph) AddNode(seq []byte, leftNeighbour, rightNeighbour NodeID) NodeID {
	g.lastID++
	id := g.lastID
	n := &Node{ID: id, Seq: g.arena.alloc(seq)}
	if rightNeighbour != 0 {
		n.RightEdges.Insert(SignedNodeId(rightNeighbour))
	}
	if leftNeighbour != 0 {
		n.LeftEdges.Insert(SignedNodeId(leftNeighbour))
	}
	g.nodes.put(n)
	return id
}

// addNodeNoCopy is AddNode for a Sequence the caller already owns inside
// this Graph's arena (a sub-slice or an extend result): no further copy is
// made. bluntify and merge use this to materialize trimmed/split windows
// without doubling every byte through arena.alloc.
func (g *Graph) addNodeNoCopy(seq Sequence) *Node {
	g.lastID++
	n := &Node{ID: g.lastID, Seq: seq}
	g.nodes.put(n)
	return n
}

// AddEdge wires a reciprocal edge the way a GFA "L from fromSide to toSide"
// record does. fromSide '+' (SideRight) leaves from's right side and '-'
// (SideLeft) its left side; toSide '+' enters to's left side and '-' its
// right side. Parallel edges are silently deduplicated by the underlying
// EdgeSet; self-loops (fromID == toID) are permitted.
//
// The sign computation below is deliberately asymmetric between the two
// endpoints — it is a direct translation of node.cpp's add_edge and must
// match it bit-for-bit, not the more "obviously symmetric" formula one
// might guess from the SignedNodeId doc comment alone.
func (g *Graph) AddEdge(fromID NodeID, fromSide byte, toID NodeID, toSide byte) error {
	from := g.Node(fromID)
	to := g.Node(toID)
	if from == nil || to == nil {
		return ErrNodeNotFound
	}

	signedTo := SignedNodeId(toID)
	if toSide != SideLeft {
		signedTo = -signedTo
	}
	signedFrom := SignedNodeId(fromID)
	if fromSide != SideRight {
		signedFrom = -signedFrom
	}

	if fromSide == SideRight {
		from.RightEdges.Insert(signedTo)
	} else {
		from.LeftEdges.Insert(signedTo)
	}
	if toSide == SideRight {
		to.LeftEdges.Insert(signedFrom)
	} else {
		to.RightEdges.Insert(signedFrom)
	}
	return nil
}

// MoveRightEdgesTo moves src's right edges onto dst's right edges,
// rewriting every reciprocal reference at the far endpoint from src's id
// to dst's id. If update is false, dst's existing right edges are
// discarded first; if true, src's edges are unioned into dst's.
//
// src's right edges are left empty afterwards. src itself is not removed
// from the Graph; callers that merge nodes together follow this with a
// call to the Graph's node store delete once both edge lists are moved
// (see MergeTo).
func (g *Graph) MoveRightEdgesTo(src, dst *Node, update bool) {
	if !update {
		dst.RightEdges.Clear()
	}
	moved := src.RightEdges.Items()
	dst.RightEdges.MergeWith(&src.RightEdges)

	selfPositive := SignedNodeId(src.ID)
	for _, rid := range moved {
		if rid == selfPositive {
			dst.RightEdges.Erase(selfPositive)
			dst.RightEdges.Insert(SignedNodeId(dst.ID))
			continue
		}
		neighbour := g.Node(rid.Node())
		if neighbour == nil {
			continue
		}
		if rid.Negative() {
			neighbour.LeftEdges.Erase(selfPositive)
			neighbour.LeftEdges.Insert(SignedNodeId(dst.ID))
		} else {
			neighbour.RightEdges.Erase(selfPositive)
			neighbour.RightEdges.Insert(SignedNodeId(dst.ID))
		}
	}
	src.RightEdges.Clear()
}

// MoveLeftEdgesTo is MoveRightEdgesTo's mirror for left edges. Note the
// self-loop and erase/insert values here are the NEGATIVE ids (-src.ID,
// -dst.ID), not the positive ones MoveRightEdgesTo uses — that asymmetry
// is inherited from node.cpp's move_left_edges_to and is intentional.
func (g *Graph) MoveLeftEdgesTo(src, dst *Node, update bool) {
	if !update {
		dst.LeftEdges.Clear()
	}
	moved := src.LeftEdges.Items()
	dst.LeftEdges.MergeWith(&src.LeftEdges)

	negSrc := -SignedNodeId(src.ID)
	negDst := -SignedNodeId(dst.ID)
	for _, lid := range moved {
		if lid == negSrc {
			dst.LeftEdges.Erase(negSrc)
			dst.LeftEdges.Insert(negDst)
			continue
		}
		neighbour := g.Node(lid.Node())
		if neighbour == nil {
			continue
		}
		if lid.Negative() {
			neighbour.LeftEdges.Erase(negSrc)
			neighbour.LeftEdges.Insert(negDst)
		} else {
			neighbour.RightEdges.Erase(negSrc)
			neighbour.RightEdges.Insert(negDst)
		}
	}
	src.LeftEdges.Clear()
}

// MergeTo folds src entirely into dst — every edge src held, on either
// side, is moved onto dst (unioned with dst's own edges) and reciprocal
// references are rewritten accordingly — then removes src from the Graph.
// dst's sequence is untouched; the merge pass calls MergeTo only when src
// and dst already hold identical sequences.
func (g *Graph) MergeTo(src, dst *Node) {
	g.MoveRightEdgesTo(src, dst, true)
	g.MoveLeftEdgesTo(src, dst, true)
	g.nodes.delete(src.ID)
}

// RestoreNode re-inserts a Node under the given id, without allocating a
// new id; seq is copied into the arena as AddNode does, and the edge sets
// are stored as given. It exists for internal/snapshot, which decodes a
// previously-dumped graph verbatim (ids, sequences and edge lists already
// mutually consistent) and needs to place nodes back without AddNode's
// "always allocate the next id" behaviour.
func (g *Graph) RestoreNode(id NodeID, seq []byte, left, right EdgeSet) {
	n := &Node{ID: id, Seq: g.arena.alloc(seq), LeftEdges: left, RightEdges: right}
	g.nodes.put(n)
	if id > g.lastID {
		g.lastID = id
	}
}

// AdvanceLastID raises the Graph's id counter to id if it is not
// already at least that high. internal/snapshot uses this after
// restoring nodes to recover the exact counter value a dump was taken
// at, since the dump's live nodes alone don't reveal ids that were
// already deleted (by unify or merge) before the snapshot was saved.
func (g *Graph) AdvanceLastID(id NodeID) {
	if id > g.lastID {
		g.lastID = id
	}
}

// RemoveNode deletes id from the Graph without touching any edge lists
// that reference it. Callers must have already detached every reciprocal
// reference (typically via MoveLeftEdgesTo/MoveRightEdgesTo) before
// calling this. The passes in this package do not call it: they remove
// nodes through MergeTo or Unify.
func (g *Graph) RemoveNode(id NodeID) {
	g.nodes.delete(id)
}
