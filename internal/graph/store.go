package graph

import "github.com/biogo/store/llrb"

// nodeStore is the Graph's NodeID -> *Node table. It is backed by an LLRB
// tree (as encoding/bampair/shard_info.go and cmd/bio-bam-sort/sorter keep
// their shard indices) rather than a bare map, giving Get/Put/Delete
// O(log n) behaviour with in-order traversal for free; stark does not
// depend on that ordering for correctness (every pass re-looks-up nodes
// by id rather than walking the tree) but Each/do uses it to produce a
// deterministic node order for statistics and tests.
type nodeStore struct {
	tree *llrb.Tree
}

// nodeItem adapts a *Node to llrb.Comparable, ordering entries by NodeID.
type nodeItem struct {
	id   NodeID
	node *Node
}

// Compare implements llrb.Comparable.
func (n nodeItem) Compare(other llrb.Comparable) int {
	o := other.(nodeItem)
	switch {
	case n.id < o.id:
		return -1
	case n.id > o.id:
		return 1
	default:
		return 0
	}
}

func newNodeStore() *nodeStore {
	return &nodeStore{tree: &llrb.Tree{}}
}

func (s *nodeStore) get(id NodeID) *Node {
	found := s.tree.Get(nodeItem{id: id})
	if found == nil {
		return nil
	}
	return found.(nodeItem).node
}

func (s *nodeStore) put(n *Node) {
	s.tree.Insert(nodeItem{id: n.ID, node: n})
}

func (s *nodeStore) delete(id NodeID) {
	s.tree.Delete(nodeItem{id: id})
}

func (s *nodeStore) len() int {
	return s.tree.Len()
}

// do visits every stored Node in increasing NodeID order.
func (s *nodeStore) do(fn func(*Node)) {
	s.tree.Do(func(c llrb.Comparable) (done bool) {
		fn(c.(nodeItem).node)
		return false
	})
}
