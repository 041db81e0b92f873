package graph

// edgePair is a good_edges membership key: an ordered (a, b) pair of node
// ids already rewired by a prior even-k dedup step, so a later iteration
// reaching the same pair from the other direction skips redoing it.
type edgePair struct {
	a, b NodeID
}

// Bluntify removes the k-1-length overlap every edge in the graph implies,
// turning a k-1-overlap graph into a blunt (zero-overlap) one.
//
// Every node is first trimmed on each side that carries an edge: (k-1)/2
// bases off the front if it has a left neighbour, k/2 bases off the back
// if it has a right neighbour. For odd k that is enough — both directions
// of an edge now agree on exactly where the overlap was. For even k the
// two trims disagree by one base, so a second pass over the (pre-trim)
// node set either materializes that base as its own one-base bridge node
// (when an edge's reciprocal far-side trim already accounted for it) or
// collapses it into one of the two neighbours it sits between, moving
// whichever neighbour's right side is simpler (measured by the edge-count
// proxy below) onto the other.
func Bluntify(g *Graph, k int) {
	lastID := g.LastID()
	for i := NodeID(1); i <= lastID; i++ {
		node := g.Node(i)
		if node == nil {
			continue
		}
		from := 0
		if !node.LeftEdges.Empty() {
			from = (k - 1) / 2
		}
		to := node.Seq.Len()
		if !node.RightEdges.Empty() {
			to = node.Seq.Len() - k/2
		}
		node.Seq = node.Seq.Slice(from, to)
	}
	if k%2 == 0 {
		bluntifyEvenK(g, lastID)
	}
}

func bluntifyEvenK(g *Graph, lastID NodeID) {
	goodEdges := make(map[edgePair]struct{})
	for i := NodeID(1); i <= lastID; i++ {
		node := g.Node(i)
		if node == nil {
			continue
		}
		bluntifyRightBridge(g, node)
		bluntifyLeftCollapse(g, node, goodEdges)
	}
}

// bluntifyRightBridge gives every "positive" right neighbour (one whose
// own far-side trim already swallowed the shared base, so this side owes
// it a place to live) a single shared one-base bridge node, wired between
// node and each such neighbour's right side.
func bluntifyRightBridge(g *Graph, node *Node) {
	var bridgeID NodeID
	for _, rid := range node.RightEdges.Items() {
		if rid.Negative() {
			continue
		}
		if bridgeID == 0 {
			bridge := g.addNodeNoCopy(node.Seq.AfterByte())
			bridgeID = bridge.ID
			g.AddEdge(node.ID, '+', bridgeID, '+')
		}
		node.RightEdges.Erase(rid)
		neighbour := g.Node(rid.Node())
		neighbour.RightEdges.Erase(SignedNodeId(node.ID))
		g.AddEdge(bridgeID, '+', rid.Node(), '-')
	}
}

// bluntifyLeftCollapse handles the remaining even-k case: an edge to a
// left neighbour that isn't a bridge candidate. The shared base is folded
// into whichever of the two nodes has the simpler right side (the one
// with fewer live right connections, or length 1 already), splitting that
// node's first base off into its own node first if it still has more than
// one base to give up.
func bluntifyLeftCollapse(g *Graph, node *Node, goodEdges map[edgePair]struct{}) {
	for _, lid := range node.LeftEdges.Items() {
		if !lid.Negative() {
			continue
		}
		pair := edgePair{a: lid.Node(), b: node.ID}
		if _, done := goodEdges[pair]; done {
			continue
		}
		leftNeighbour := g.Node(lid.Node())
		node.LeftEdges.Erase(lid)
		leftNeighbour.LeftEdges.Erase(-SignedNodeId(node.ID))

		leftNeighbourRightSize := leftNeighbour.RightEdges.Len()
		if leftNeighbour.Seq.Len() > 1 {
			leftNeighbourRightSize = 1
		}
		nodeRightSize := node.RightEdges.Len()
		if node.Seq.Len() > 1 {
			nodeRightSize = 1
		}
		if leftNeighbourRightSize == 0 || nodeRightSize == 0 {
			continue
		}

		fromNode, toNode := node, leftNeighbour
		if leftNeighbourRightSize < nodeRightSize {
			fromNode, toNode = leftNeighbour, node
		}

		if fromNode.Seq.Len() > 1 {
			expanded := fromNode.Seq.Slice(1, fromNode.Seq.Len())
			fromNode.Seq = fromNode.Seq.Slice(0, 1)
			expandedNode := g.addNodeNoCopy(expanded)
			g.MoveRightEdgesTo(fromNode, expandedNode, true)
			g.AddEdge(fromNode.ID, '+', expandedNode.ID, '+')
		}
		for _, rid := range fromNode.RightEdges.Items() {
			if rid.Negative() {
				g.AddEdge(rid.Node(), '-', toNode.ID, '+')
				goodEdges[edgePair{rid.Node(), toNode.ID}] = struct{}{}
				goodEdges[edgePair{toNode.ID, rid.Node()}] = struct{}{}
			} else {
				g.AddEdge(rid.Node(), '+', toNode.ID, '+')
			}
		}
	}
}
