package graph

// partialLeftMergeTo compares this and other from their left (front) ends
// and folds as much of the shorter one's matching prefix into the other
// as it can without losing information:
//
//   - no shared prefix: nothing happens, returns 0.
//   - other is a prefix of this (and they're not equal): this is trimmed
//     down to its remainder, its left edges move onto other's left side,
//     and other's right side is linked to this's left side.
//   - this is a prefix of other: symmetric, other is trimmed, its left
//     edges move onto this, and this's right side is linked to it.
//   - both equal: this is merged entirely into other.
//   - neither is a prefix of the other but they share a partial prefix:
//     only done when growing is true, in which case the shared prefix is
//     split off into a brand new node and both originals are trimmed and
//     grafted onto it.
//
// Returns the id of the node the shared prefix now lives on (this's id,
// other's id, or a new node's id), or 0 if no merge happened.
func partialLeftMergeTo(g *Graph, this, other *Node, growing bool) NodeID {
	a, b := this.Seq.Bytes(), other.Seq.Bytes()
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	if i == 0 {
		return 0
	}
	if i == other.Seq.Len() {
		if i == this.Seq.Len() {
			g.MergeTo(this, other)
			return other.ID
		}
		this.Seq = this.Seq.Slice(i, this.Seq.Len())
		g.MoveLeftEdgesTo(this, other, true)
		g.AddEdge(other.ID, '+', this.ID, '+')
		return other.ID
	}
	if i == this.Seq.Len() {
		other.Seq = other.Seq.Slice(i, other.Seq.Len())
		g.MoveLeftEdgesTo(other, this, true)
		g.AddEdge(this.ID, '+', other.ID, '+')
		return this.ID
	}
	if !growing {
		return 0
	}
	prefix := this.Seq.Slice(0, i)
	newNode := g.addNodeNoCopy(prefix)
	this.Seq = this.Seq.Slice(i, this.Seq.Len())
	other.Seq = other.Seq.Slice(i, other.Seq.Len())
	g.MoveLeftEdgesTo(other, newNode, true)
	g.MoveLeftEdgesTo(this, newNode, true)
	g.AddEdge(newNode.ID, '+', this.ID, '+')
	g.AddEdge(newNode.ID, '+', other.ID, '+')
	return newNode.ID
}

// partialRightMergeTo is partialLeftMergeTo's mirror, comparing from the
// right (back) end and grafting onto right sides instead of left.
func partialRightMergeTo(g *Graph, this, other *Node, growing bool) NodeID {
	a, b := this.Seq.Bytes(), other.Seq.Bytes()
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[len(a)-1-i] == b[len(b)-1-i] {
		i++
	}
	if i == 0 {
		return 0
	}
	if i == other.Seq.Len() {
		if i == this.Seq.Len() {
			g.MergeTo(this, other)
			return other.ID
		}
		this.Seq = this.Seq.Slice(0, this.Seq.Len()-i)
		g.MoveRightEdgesTo(this, other, true)
		g.AddEdge(this.ID, '+', other.ID, '+')
		return other.ID
	}
	if i == this.Seq.Len() {
		other.Seq = other.Seq.Slice(0, other.Seq.Len()-i)
		g.MoveRightEdgesTo(other, this, true)
		g.AddEdge(other.ID, '+', this.ID, '+')
		return this.ID
	}
	if !growing {
		return 0
	}
	suffix := this.Seq.Slice(this.Seq.Len()-i, this.Seq.Len())
	newNode := g.addNodeNoCopy(suffix)
	this.Seq = this.Seq.Slice(0, this.Seq.Len()-i)
	other.Seq = other.Seq.Slice(0, other.Seq.Len()-i)
	g.MoveRightEdgesTo(other, newNode, true)
	g.MoveRightEdgesTo(this, newNode, true)
	g.AddEdge(this.ID, '+', newNode.ID, '+')
	g.AddEdge(other.ID, '+', newNode.ID, '+')
	return newNode.ID
}

// Merge repeatedly looks for pairs of nodes that share identical edge
// sets on one side (meaning they are interchangeable neighbours from a
// third node's point of view) and folds the common prefix or suffix of
// their sequences together, until a step changes fewer than 0.1% of
// nodes. growing selects between the non-growing merge (never introduces a
// new node: only full merges, which eliminate a node, and merges where one
// sequence is a prefix/suffix of the other, which trim it and keep the
// node count) and the growing merge (also splits off new nodes for partial
// prefix/suffix matches).
//
// Each step re-unifies first (a merge in the previous step can create a
// fresh linear chain), then for every node gathers a small candidate set
// from its immediate neighbours' own neighbour lists — no node can be a
// merge partner for another without already sharing a neighbour — and
// tries each candidate in turn.
func Merge(g *Graph, growing bool) {
	minChangePerStep := int64(g.LastID()) / 1000
	changed := minChangePerStep + 1
	for changed > minChangePerStep {
		changed = 0
		Unify(g, 1)
		lastID := g.LastID()
		for i := NodeID(1); i <= lastID; i++ {
			node := g.Node(i)
			if node == nil {
				continue
			}

			neighbours := make(map[SignedNodeId]struct{}, 4)
			if !node.LeftEdges.Empty() {
				neighbours[node.LeftEdges.Front()] = struct{}{}
				neighbours[node.LeftEdges.Back()] = struct{}{}
			}
			if !node.RightEdges.Empty() {
				neighbours[node.RightEdges.Front()] = struct{}{}
				neighbours[node.RightEdges.Back()] = struct{}{}
			}

			var candidates EdgeSet
			for nid := range neighbours {
				neighbour := g.Node(nid.Node())
				if neighbour == nil {
					continue
				}
				if nid.Negative() {
					candidates.MergeWith(&neighbour.LeftEdges)
				} else {
					candidates.MergeWith(&neighbour.RightEdges)
				}
			}

			for _, cid := range candidates.Items() {
				candidateNode := g.Node(cid.Node())
				if candidateNode == nil || candidateNode.ID == node.ID {
					continue
				}
				candID := SignedNodeId(candidateNode.ID)
				if candidateNode.LeftEdges.Find(candID) || candidateNode.LeftEdges.Find(-candID) ||
					candidateNode.RightEdges.Find(candID) || candidateNode.RightEdges.Find(-candID) {
					continue
				}
				if (candidateNode.LeftEdges.Equal(&node.LeftEdges) && partialLeftMergeTo(g, candidateNode, node, growing) != 0) ||
					(candidateNode.RightEdges.Equal(&node.RightEdges) && partialRightMergeTo(g, candidateNode, node, growing) != 0) {
					changed++
					break
				}
			}
		}
	}
	Unify(g, 1)
}
