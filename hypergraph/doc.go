// Package hypergraph holds the derivation forest consumed by the semiring
// algorithms: an acyclic, index-based hypergraph whose hyperedges join an
// ordered list of tail (antecedent) nodes to a single head node.
//
// 🚀 What is a derivation forest?
//
//	A compact encoding of the (exponentially many) derivations of one input.
//	Each node is an item (a category over a span); each hyperedge is a rule
//	application that builds its head from its tails. A derivation is a tree
//	of hyperedges rooted at the root node.
//
//	        R            R ← (A B)       root, last node
//	       / \           A ← (L)         p1
//	      A   B          B ← (L)         p2
//	       \ /           L ← ()          leaf (zero tails)
//	        L
//
// Layout (arena, no pointers):
//
//	Nodes []Node   indexed 0..N-1, Node.InEdges lists edge IDs headed by it
//	Edges []Edge   indexed 0..M-1, Edge.Head / Edge.Tails hold node indices
//
// Invariant (topological order):
//
//	For every edge, every tail index is strictly smaller than its head index.
//	The root is always the last node. Validate checks the invariant and
//	TopologicalSort renumbers forests that were assembled out of order.
//
// Supporting operations:
//
//	Reachable      — nodes that occur in some derivation of the root
//	Prune          — drop edges by mask, then drop nodes left without derivations
//	Reweight       — recompute edge scores as features·weights
//	Encode/Decode  — YAML document form, feature names resolved via Dict
//
// Concurrency:
//
//	A Hypergraph is not synchronized. Build it on one goroutine; afterwards
//	any number of goroutines may read it concurrently as long as nobody
//	calls a mutating method (AddNode, AddEdge, Reweight). Dict is safe for
//	concurrent use.
package hypergraph
