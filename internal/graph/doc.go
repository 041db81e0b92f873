// Package graph implements stark's bidirected sequence-overlap graph and
// the three rewrite passes that operate on it: Bluntify, Unify, and Merge.
//
// A Graph owns a table of Nodes keyed by NodeID and a byte arena backing
// every Node's sequence. Edges are not first-class objects: each Node
// carries a left and a right EdgeSet of SignedNodeId, and every edge is
// recorded reciprocally at both endpoints (see SignedNodeId for the
// orientation encoding). There is no separate edge list or edge id.
//
// Mutating methods are not safe for concurrent use; the passes in this
// package run single-threaded start to finish, as stark's driver does.
package graph
