// Package ontology binds an array of term payloads to an is_a hierarchy
// graph and offers identifier-space queries over the result.
//
// An Ontology is constructed once from parser output (see Build and the
// obographs package) and is immutable afterwards, so a single instance can
// be shared by any number of concurrent readers.
package ontology

import (
	"github.com/c360studio/ontograph/termid"
)

// MinimalTerm is the minimal payload the ontology needs for a hierarchy
// node: identity, a human-readable name, an obsolescence flag, and any
// historical identifiers that should resolve to the same node.
type MinimalTerm interface {
	// ID returns the primary identifier of the term.
	ID() termid.TermID

	// Name returns the human-readable name, e.g. "Seizure" for HP:0001250.
	Name() string

	// AltIDs returns the alternate (historical) identifiers of the term.
	// The returned slice must not be modified.
	AltIDs() []termid.TermID

	// IsObsolete reports whether the term has been retired.
	IsObsolete() bool
}

// SynonymCategory describes how close a synonym is to the primary name.
type SynonymCategory string

const (
	// SynonymExact is an exact synonym of the term name.
	SynonymExact SynonymCategory = "exact"

	// SynonymBroad is a broader synonym of the term name.
	SynonymBroad SynonymCategory = "broad"

	// SynonymNarrow is a narrower synonym of the term name.
	SynonymNarrow SynonymCategory = "narrow"

	// SynonymRelated is a related synonym of the term name.
	SynonymRelated SynonymCategory = "related"
)

// Synonym is an alternative name for a term.
type Synonym struct {
	// Name is the synonym text.
	Name string

	// Category describes the relation to the primary name.
	Category SynonymCategory

	// Xrefs lists identifiers of entities that attest the synonym.
	Xrefs []termid.TermID
}

// Term is a fully described ontology concept. It satisfies MinimalTerm and
// carries the optional descriptive payload present in obographs documents.
type Term struct {
	id         termid.TermID
	name       string
	altIDs     []termid.TermID
	obsolete   bool
	definition string
	comment    string
	synonyms   []Synonym
	xrefs      []termid.TermID
}

// NewTerm creates a term with the mandatory attributes. Use the With*
// methods to attach optional payload.
func NewTerm(id termid.TermID, name string, altIDs []termid.TermID, obsolete bool) Term {
	return Term{id: id, name: name, altIDs: altIDs, obsolete: obsolete}
}

// WithDefinition returns a copy of the term with the definition set.
func (t Term) WithDefinition(definition string) Term {
	t.definition = definition
	return t
}

// WithComment returns a copy of the term with the comment set.
func (t Term) WithComment(comment string) Term {
	t.comment = comment
	return t
}

// WithSynonyms returns a copy of the term with the synonyms set.
func (t Term) WithSynonyms(synonyms []Synonym) Term {
	t.synonyms = synonyms
	return t
}

// WithXrefs returns a copy of the term with the cross-references set.
func (t Term) WithXrefs(xrefs []termid.TermID) Term {
	t.xrefs = xrefs
	return t
}

// ID returns the primary identifier.
func (t Term) ID() termid.TermID { return t.id }

// Name returns the human-readable name.
func (t Term) Name() string { return t.name }

// AltIDs returns the alternate identifiers. The slice must not be modified.
func (t Term) AltIDs() []termid.TermID { return t.altIDs }

// IsObsolete reports whether the term has been retired.
func (t Term) IsObsolete() bool { return t.obsolete }

// IsCurrent reports whether the term is primary and not obsolete.
func (t Term) IsCurrent() bool { return !t.obsolete }

// Definition returns the textual definition, or "" if absent.
func (t Term) Definition() string { return t.definition }

// Comment returns the curator comment, or "" if absent.
func (t Term) Comment() string { return t.comment }

// Synonyms returns the synonyms. The slice must not be modified.
func (t Term) Synonyms() []Synonym { return t.synonyms }

// Xrefs returns the cross-references. The slice must not be modified.
func (t Term) Xrefs() []termid.TermID { return t.xrefs }
