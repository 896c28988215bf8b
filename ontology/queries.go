package ontology

import (
	"iter"

	"github.com/c360studio/ontograph/termid"
)

// Identifier-space hierarchy queries. Both operands are resolved through
// the identifier map first, so alternate identifiers work transparently. An
// unknown identifier is a non-match, never an error: all predicates return
// false and all sequences are empty.

// IsChildOf reports whether sub is a direct child of obj.
func (o *Ontology) IsChildOf(sub, obj termid.TermID) bool {
	subPos, obPos, ok := o.resolvePair(sub, obj)
	return ok && o.graph.IsChildOf(subPos, obPos)
}

// IsParentOf reports whether sub is a direct parent of obj.
func (o *Ontology) IsParentOf(sub, obj termid.TermID) bool {
	subPos, obPos, ok := o.resolvePair(sub, obj)
	return ok && o.graph.IsParentOf(subPos, obPos)
}

// IsAncestorOf reports whether sub is a transitive parent of obj. False
// when sub and obj name the same term.
func (o *Ontology) IsAncestorOf(sub, obj termid.TermID) bool {
	subPos, obPos, ok := o.resolvePair(sub, obj)
	return ok && o.graph.IsAncestorOf(subPos, obPos)
}

// IsDescendantOf reports whether sub is a transitive child of obj.
func (o *Ontology) IsDescendantOf(sub, obj termid.TermID) bool {
	subPos, obPos, ok := o.resolvePair(sub, obj)
	return ok && o.graph.IsDescendantOf(subPos, obPos)
}

func (o *Ontology) resolvePair(sub, obj termid.TermID) (subPos, objPos uint32, ok bool) {
	subPos, ok = o.index[sub.Key()]
	if !ok {
		return 0, 0, false
	}
	objPos, ok = o.index[obj.Key()]
	if !ok {
		return 0, 0, false
	}
	return subPos, objPos, true
}

// Children returns the primary identifiers of the direct children of the
// term named by id.
func (o *Ontology) Children(id termid.TermID) iter.Seq[termid.TermID] {
	pos, ok := o.IndexOf(id)
	if !ok {
		return emptyIDs
	}
	return o.idsAt(sliceSeq(o.graph.ChildrenOf(pos)))
}

// Parents returns the primary identifiers of the direct parents of the
// term named by id.
func (o *Ontology) Parents(id termid.TermID) iter.Seq[termid.TermID] {
	pos, ok := o.IndexOf(id)
	if !ok {
		return emptyIDs
	}
	return o.idsAt(sliceSeq(o.graph.ParentsOf(pos)))
}

// Ancestors returns the primary identifiers of all transitive parents of
// the term named by id, each exactly once, excluding the term itself.
func (o *Ontology) Ancestors(id termid.TermID) iter.Seq[termid.TermID] {
	pos, ok := o.IndexOf(id)
	if !ok {
		return emptyIDs
	}
	return o.idsAt(o.graph.AncestorsOf(pos))
}

// Descendants returns the primary identifiers of all transitive children of
// the term named by id, each exactly once, excluding the term itself.
func (o *Ontology) Descendants(id termid.TermID) iter.Seq[termid.TermID] {
	pos, ok := o.IndexOf(id)
	if !ok {
		return emptyIDs
	}
	return o.idsAt(o.graph.DescendantsOf(pos))
}

// SubtreeIDs returns the primary identifier of the term named by id
// followed by the identifiers of all its descendants. Useful for carving a
// sub-ontology out of a larger vocabulary.
func (o *Ontology) SubtreeIDs(id termid.TermID) iter.Seq[termid.TermID] {
	pos, ok := o.IndexOf(id)
	if !ok {
		return emptyIDs
	}
	return func(yield func(termid.TermID) bool) {
		if !yield(o.terms[pos].ID()) {
			return
		}
		for descendant := range o.graph.DescendantsOf(pos) {
			if !yield(o.terms[descendant].ID()) {
				return
			}
		}
	}
}

// idsAt maps a sequence of positions onto the primary identifiers of the
// terms at those positions.
func (o *Ontology) idsAt(positions iter.Seq[uint32]) iter.Seq[termid.TermID] {
	return func(yield func(termid.TermID) bool) {
		for pos := range positions {
			if !yield(o.terms[pos].ID()) {
				return
			}
		}
	}
}

func sliceSeq(positions []uint32) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for _, pos := range positions {
			if !yield(pos) {
				return
			}
		}
	}
}

func emptyIDs(func(termid.TermID) bool) {}
