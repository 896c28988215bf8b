// Package hierarchy provides an immutable is_a hierarchy graph over dense
// ontology term positions.
//
// Nodes are 0-based uint32 positions into an external term array; the graph
// itself stores no term payloads. Adjacency is kept in two compressed
// (CSR-style) lists, children-of and parents-of, with neighbor lists sorted
// by position. Once built, a Graph is read-only and safe for concurrent use
// without synchronization.
package hierarchy

// Relationship describes the direction of a hierarchy edge as authored in
// the source data.
type Relationship uint8

const (
	// Child indicates the subject is the child of the object (is_a).
	Child Relationship = iota

	// Parent indicates the subject is the parent of the object.
	Parent

	// PartOf indicates the subject is part of the object (BFO:0000050).
	// PartOf edges are currently ignored during graph construction.
	PartOf
)

// String returns the relationship name.
func (r Relationship) String() string {
	switch r {
	case Child:
		return "child"
	case Parent:
		return "parent"
	case PartOf:
		return "part_of"
	}
	return "unknown"
}

// Edge is a (subject, relationship, object) triple over term positions, as
// produced by an ontology data parser.
type Edge struct {
	Sub  uint32
	Pred Relationship
	Obj  uint32
}
