package ontology

import (
	"errors"
	"fmt"
	"iter"

	"github.com/c360studio/ontograph/hierarchy"
	"github.com/c360studio/ontograph/termid"
)

// ErrRootCollision is returned by Build when the synthetic root term that
// would be added to a multi-rooted ontology duplicates the identifier of an
// existing term. Proceeding would corrupt the identifier map, so this is
// fatal.
var ErrRootCollision = errors.New("ontology: synthetic root collides with an existing term")

// MetadataVersionKey is the metadata map key holding the ontology version.
const MetadataVersionKey = "version"

// Data is the neutral (terms, edges, metadata) tuple handed over by an
// ontology data parser. Term positions in the Terms slice are the graph
// node ids referenced by Edges.
type Data struct {
	Terms    []MinimalTerm
	Edges    []hierarchy.Edge
	Metadata map[string]string
}

// Ontology is an immutable ontology index: the term array, the hierarchy
// graph over the same position space, and a map from every identifier
// (primary and alternate) to its position.
type Ontology struct {
	terms    []MinimalTerm
	graph    *hierarchy.Graph
	index    map[termid.Key]uint32
	metadata map[string]string
}

// Build assembles an Ontology from parser output.
//
// Root handling: with exactly one root candidate the hierarchy is built
// directly. With several candidates (e.g. the three-rooted Gene Ontology) a
// synthetic owl:Thing root term is appended to the term array and every
// candidate gains a child→parent edge to it, making the hierarchy
// single-rooted without hiding that the root is synthetic. Zero candidates
// fail with hierarchy.ErrNoRoot. A synthetic root whose identifier already
// belongs to an existing term fails with ErrRootCollision.
//
// Build does not mutate the slices in data.
func Build(data Data) (*Ontology, error) {
	terms := append([]MinimalTerm(nil), data.Terms...)
	edges := append([]hierarchy.Edge(nil), data.Edges...)

	if candidates := hierarchy.RootCandidates(edges); len(candidates) > 1 {
		root := syntheticRoot()
		for _, t := range terms {
			if t.ID().Equal(root.ID()) {
				return nil, ErrRootCollision
			}
			for _, alt := range t.AltIDs() {
				if alt.Equal(root.ID()) {
					return nil, ErrRootCollision
				}
			}
		}

		rootPos := uint32(len(terms))
		terms = append(terms, root)
		for _, candidate := range candidates {
			edges = append(edges, hierarchy.Edge{Sub: candidate, Pred: hierarchy.Child, Obj: rootPos})
		}
	}

	index := make(map[termid.Key]uint32, len(terms))
	for pos, t := range terms {
		index[t.ID().Key()] = uint32(pos)
		for _, alt := range t.AltIDs() {
			// Last write wins; duplicates are not expected in
			// well-formed input.
			index[alt.Key()] = uint32(pos)
		}
	}

	graph, err := hierarchy.Build(edges)
	if err != nil {
		return nil, fmt.Errorf("ontology: assemble hierarchy: %w", err)
	}

	return &Ontology{
		terms:    terms,
		graph:    graph,
		index:    index,
		metadata: data.Metadata,
	}, nil
}

// syntheticRoot returns the universal term used to cap multi-rooted
// ontologies.
func syntheticRoot() MinimalTerm {
	return NewTerm(termid.OWLThing, "Thing", nil, false)
}

// Len returns the number of terms, including a synthetic root if one was
// added.
func (o *Ontology) Len() int { return len(o.terms) }

// IsEmpty reports whether the ontology has no terms.
func (o *Ontology) IsEmpty() bool { return len(o.terms) == 0 }

// Hierarchy returns the position-space hierarchy graph.
func (o *Ontology) Hierarchy() *hierarchy.Graph { return o.graph }

// Version returns the ontology version from the supplied metadata. The
// second result is false when no version was supplied.
func (o *Ontology) Version() (string, bool) {
	v, ok := o.metadata[MetadataVersionKey]
	return v, ok
}

// Metadata returns the value for a metadata key.
func (o *Ontology) Metadata(key string) (string, bool) {
	v, ok := o.metadata[key]
	return v, ok
}

// TermAt returns the term at a hierarchy position.
func (o *Ontology) TermAt(pos uint32) (MinimalTerm, bool) {
	if int(pos) >= len(o.terms) {
		return nil, false
	}
	return o.terms[pos], true
}

// IndexOf resolves an identifier, primary or alternate, to its hierarchy
// position.
func (o *Ontology) IndexOf(id termid.TermID) (uint32, bool) {
	pos, ok := o.index[id.Key()]
	return pos, ok
}

// TermByID returns the term owning the identifier, which may be the term's
// primary or one of its alternate identifiers.
func (o *Ontology) TermByID(id termid.TermID) (MinimalTerm, bool) {
	pos, ok := o.index[id.Key()]
	if !ok {
		return nil, false
	}
	return o.terms[pos], true
}

// PrimaryID maps any identifier of a term, current or historical, to the
// term's primary identifier.
func (o *Ontology) PrimaryID(id termid.TermID) (termid.TermID, bool) {
	t, ok := o.TermByID(id)
	if !ok {
		return termid.TermID{}, false
	}
	return t.ID(), true
}

// Terms returns a restartable sequence over all primary terms in position
// order.
func (o *Ontology) Terms() iter.Seq[MinimalTerm] {
	return func(yield func(MinimalTerm) bool) {
		for _, t := range o.terms {
			if !yield(t) {
				return
			}
		}
	}
}

// TermIDs returns a restartable sequence over the primary identifiers of
// all terms.
func (o *Ontology) TermIDs() iter.Seq[termid.TermID] {
	return func(yield func(termid.TermID) bool) {
		for _, t := range o.terms {
			if !yield(t.ID()) {
				return
			}
		}
	}
}

// AllTermIDs returns a restartable sequence over every identifier the
// ontology knows: each term's primary identifier followed by its alternate
// identifiers.
func (o *Ontology) AllTermIDs() iter.Seq[termid.TermID] {
	return func(yield func(termid.TermID) bool) {
		for _, t := range o.terms {
			if !yield(t.ID()) {
				return
			}
			for _, alt := range t.AltIDs() {
				if !yield(alt) {
					return
				}
			}
		}
	}
}
