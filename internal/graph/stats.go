package graph

// Stats holds the counters print_statistics-equivalent reporting needs.
// Only the fields a given level fills in are meaningful; see Collect.
type Stats struct {
	TotalNodes int

	// The remaining fields are only populated at level 2, since they cost
	// an extra full pass over the graph.
	TotalEdges         int64
	TotalNodesExpanded int64
	TotalEdgesExpanded int64
	TotalDeadEnds      int64
	TotalLetters       int64
}

// CountEdges returns the number of distinct edges in the graph (each edge
// counted once, not once per endpoint).
func CountEdges(g *Graph) int64 {
	var total int64
	g.Each(func(n *Node) {
		total += int64(n.LeftEdges.Len() + n.RightEdges.Len())
	})
	return total / 2
}

// CountDeadEnds returns the number of node-sides with no edge: a node
// with neither a left nor a right neighbour counts twice.
func CountDeadEnds(g *Graph) int64 {
	var total int64
	g.Each(func(n *Node) {
		if n.LeftEdges.Empty() {
			total++
		}
		if n.RightEdges.Empty() {
			total++
		}
	})
	return total
}

// Collect gathers statistics at the given level (0: nothing meaningful,
// 1: node count only, 2: full pass including edge counts, the graph's
// size if every node's k-1 overlap were expanded back out, dead-ends and
// total sequence length). curK is the overlap length plus one currently
// in effect, needed to compute the "expanded" counts; it is the caller's
// responsibility to pass the value that matches the graph's current
// state (the raw input's k before any pass has run, 1 afterwards).
func Collect(g *Graph, level int, curK int) Stats {
	s := Stats{TotalNodes: g.NodeCount()}
	if level < 2 {
		return s
	}
	s.TotalEdges = CountEdges(g)
	s.TotalDeadEnds = CountDeadEnds(g)
	notUnified := int64(g.NodeCount())
	var letters int64
	g.Each(func(n *Node) {
		notUnified += int64(n.Seq.Len() - curK)
		letters += int64(n.Seq.Len())
	})
	s.TotalNodesExpanded = notUnified
	s.TotalEdgesExpanded = s.TotalEdges + notUnified - int64(g.NodeCount())
	s.TotalLetters = letters
	return s
}
