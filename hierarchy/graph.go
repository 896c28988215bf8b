package hierarchy

import (
	"errors"
	"iter"
	"sort"
)

var (
	// ErrNoRoot is returned when the edge set yields zero root candidates,
	// e.g. because it is empty or every node has a parent.
	ErrNoRoot = errors.New("hierarchy: no root candidate found")

	// ErrMultipleRoots is returned when more than one root candidate
	// exists. Callers that want a single-rooted view of a multi-rooted
	// ontology should synthesize a root before building; see the ontology
	// package.
	ErrMultipleRoots = errors.New("hierarchy: more than one root candidate found")
)

// Graph is an immutable directed hierarchy over dense term positions.
type Graph struct {
	root     uint32
	children csr
	parents  csr
}

// csr is a compressed adjacency list: neighbors of node i live in
// targets[offsets[i]:offsets[i+1]], sorted by position.
type csr struct {
	offsets []uint32
	targets []uint32
}

func (c csr) neighbors(pos uint32) []uint32 {
	if int(pos)+1 >= len(c.offsets) {
		return nil
	}
	return c.targets[c.offsets[pos]:c.offsets[pos+1]]
}

// Build assembles a Graph from an edge list.
//
// Every edge is first normalized into the canonical child→parent direction;
// PartOf edges are skipped. The root is the single position that never
// appears on the child side of any edge: zero such positions fail with
// ErrNoRoot and two or more fail with ErrMultipleRoots.
//
// Build trusts the edge list to be acyclic. A cycle that is disjoint from
// the root computation is a contract violation and is not detected.
func Build(edges []Edge) (*Graph, error) {
	pairs := normalize(edges)

	candidates := candidateRoots(pairs)
	switch len(candidates) {
	case 0:
		return nil, ErrNoRoot
	case 1:
	default:
		return nil, ErrMultipleRoots
	}

	return assemble(candidates[0], pairs), nil
}

// RootCandidates returns the sorted positions that never appear as the
// child side of any normalized edge. These are the would-be roots of the
// hierarchy.
func RootCandidates(edges []Edge) []uint32 {
	return candidateRoots(normalize(edges))
}

// childParent is an edge normalized to the canonical direction.
type childParent struct {
	child  uint32
	parent uint32
}

func normalize(edges []Edge) []childParent {
	pairs := make([]childParent, 0, len(edges))
	for _, e := range edges {
		switch e.Pred {
		case Child:
			pairs = append(pairs, childParent{child: e.Sub, parent: e.Obj})
		case Parent:
			pairs = append(pairs, childParent{child: e.Obj, parent: e.Sub})
		}
	}
	return pairs
}

func candidateRoots(pairs []childParent) []uint32 {
	parents := make(map[uint32]struct{})
	children := make(map[uint32]struct{})
	for _, p := range pairs {
		parents[p.parent] = struct{}{}
		children[p.child] = struct{}{}
	}

	var candidates []uint32
	for pos := range parents {
		if _, isChild := children[pos]; !isChild {
			candidates = append(candidates, pos)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
	return candidates
}

// assemble builds the two sorted adjacency lists. The node space spans
// positions 0 through the maximum position mentioned by any edge.
func assemble(root uint32, pairs []childParent) *Graph {
	n := uint32(0)
	for _, p := range pairs {
		if p.child+1 > n {
			n = p.child + 1
		}
		if p.parent+1 > n {
			n = p.parent + 1
		}
	}

	children := buildCSR(n, pairs, func(p childParent) (uint32, uint32) { return p.parent, p.child })
	parents := buildCSR(n, pairs, func(p childParent) (uint32, uint32) { return p.child, p.parent })

	return &Graph{root: root, children: children, parents: parents}
}

func buildCSR(n uint32, pairs []childParent, key func(childParent) (from, to uint32)) csr {
	offsets := make([]uint32, n+1)
	for _, p := range pairs {
		from, _ := key(p)
		offsets[from+1]++
	}
	for i := uint32(1); i <= n; i++ {
		offsets[i] += offsets[i-1]
	}

	targets := make([]uint32, len(pairs))
	fill := make([]uint32, n)
	for _, p := range pairs {
		from, to := key(p)
		targets[offsets[from]+fill[from]] = to
		fill[from]++
	}

	for i := uint32(0); i < n; i++ {
		seg := targets[offsets[i]:offsets[i+1]]
		sort.Slice(seg, func(a, b int) bool { return seg[a] < seg[b] })
	}

	return csr{offsets: offsets, targets: targets}
}

// Root returns the position of the hierarchy root.
func (g *Graph) Root() uint32 { return g.root }

// NodeCount returns the number of positions in the graph's node space.
func (g *Graph) NodeCount() int {
	if len(g.children.offsets) == 0 {
		return 0
	}
	return len(g.children.offsets) - 1
}

// ChildrenOf returns the direct children of pos, sorted by position. The
// returned slice is shared with the graph and must not be modified.
// Out-of-range positions yield an empty result.
func (g *Graph) ChildrenOf(pos uint32) []uint32 {
	return g.children.neighbors(pos)
}

// ParentsOf returns the direct parents of pos, sorted by position. The
// returned slice is shared with the graph and must not be modified.
func (g *Graph) ParentsOf(pos uint32) []uint32 {
	return g.parents.neighbors(pos)
}

// DescendantsOf returns a lazy breadth-first sequence over the transitive
// children of pos, excluding pos itself. Each position is yielded exactly
// once even when multiple paths reach it, so the sequence is finite on any
// DAG. Stopping the iteration early costs nothing.
func (g *Graph) DescendantsOf(pos uint32) iter.Seq[uint32] {
	return g.traverse(pos, g.children)
}

// AncestorsOf returns a lazy breadth-first sequence over the transitive
// parents of pos, excluding pos itself, with the same single-visit
// guarantee as DescendantsOf.
func (g *Graph) AncestorsOf(pos uint32) iter.Seq[uint32] {
	return g.traverse(pos, g.parents)
}

// traverse is an explicit-state BFS: a FIFO queue seeded with the direct
// neighbors and a visited set keyed by position.
func (g *Graph) traverse(pos uint32, adj csr) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		seen := make(map[uint32]struct{})
		queue := append([]uint32(nil), adj.neighbors(pos)...)
		for len(queue) > 0 {
			next := queue[0]
			queue = queue[1:]
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			if !yield(next) {
				return
			}
			queue = append(queue, adj.neighbors(next)...)
		}
	}
}

// IsChildOf reports whether sub is a direct child of obj. False when the
// two positions are equal.
func (g *Graph) IsChildOf(sub, obj uint32) bool {
	return contains(g.children.neighbors(obj), sub)
}

// IsParentOf reports whether sub is a direct parent of obj.
func (g *Graph) IsParentOf(sub, obj uint32) bool {
	return contains(g.parents.neighbors(obj), sub)
}

// IsDescendantOf reports whether sub is a transitive child of obj. False
// when the two positions are equal.
func (g *Graph) IsDescendantOf(sub, obj uint32) bool {
	for anc := range g.AncestorsOf(sub) {
		if anc == obj {
			return true
		}
	}
	return false
}

// IsAncestorOf reports whether sub is a transitive parent of obj.
func (g *Graph) IsAncestorOf(sub, obj uint32) bool {
	for anc := range g.AncestorsOf(obj) {
		if anc == sub {
			return true
		}
	}
	return false
}

// IsLeaf reports whether pos has no children.
func (g *Graph) IsLeaf(pos uint32) bool {
	return len(g.children.neighbors(pos)) == 0
}

// contains does a binary search over a sorted neighbor slice.
func contains(sorted []uint32, pos uint32) bool {
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= pos })
	return i < len(sorted) && sorted[i] == pos
}
