package graph

// Unify contracts every linear chain in the graph in a single sweep: a
// node with exactly one left neighbour, whose left neighbour has exactly
// one right neighbour (and isn't the node itself), is absorbed into that
// neighbour. curK is the overlap length the absorbed node's sequence
// currently carries with its neighbour (curK-1 bases of shared overlap);
// after bluntify curK is always 1, but Unify is also called directly on
// the raw input graph (the -u flag) with the GFA's own k.
//
// This is a single pass, not a fixed point: a chain that becomes
// contractable only as a side effect of an earlier contraction in the
// same sweep waits for the next call. The driver (after Bluntify) and the
// merge loop each call Unify exactly when spec requires a fresh sweep,
// rather than having Unify loop internally.
func Unify(g *Graph, curK int) {
	curK1 := curK - 1
	lastID := g.LastID()
	for i := NodeID(1); i <= lastID; i++ {
		node := g.Node(i)
		if node == nil {
			continue
		}
		if node.LeftEdges.Len() != 1 {
			continue
		}
		leftID := node.LeftEdges.Front()
		if leftID.Negative() {
			continue
		}
		leftNeighbour := g.Node(leftID.Node())
		if leftNeighbour.RightEdges.Len() != 1 {
			continue
		}
		if leftNeighbour.ID == node.ID {
			continue
		}

		g.MoveRightEdgesTo(node, leftNeighbour, false)
		tail := node.Seq.Bytes()[curK1:]
		leftNeighbour.Seq = g.arena.extend(leftNeighbour.Seq, tail)
		g.nodes.delete(node.ID)
	}
}
