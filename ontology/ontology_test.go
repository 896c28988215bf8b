package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontograph/hierarchy"
	"github.com/c360studio/ontograph/termid"
)

// phenotypeTerms mirrors the ten-node example hierarchy with HP-flavored
// identifiers. Term HP:0000002 carries two alternate identifiers.
func phenotypeTerms() []MinimalTerm {
	ids := []string{
		"HP:0000001", "HP:0000002", "HP:0000003", "HP:0000004", "HP:0000005",
		"HP:0000006", "HP:0000007", "HP:0000008", "HP:0000009", "HP:0000010",
	}
	names := []string{
		"All", "A", "A1", "A2", "A12", "B", "B1", "B2", "B3", "C",
	}

	terms := make([]MinimalTerm, len(ids))
	for i := range ids {
		var alts []termid.TermID
		if i == 1 {
			alts = []termid.TermID{
				termid.MustParse("HP:0001002"),
				termid.MustParse("HP:0002002"),
			}
		}
		terms[i] = NewTerm(termid.MustParse(ids[i]), names[i], alts, false)
	}
	return terms
}

func phenotypeEdges() []hierarchy.Edge {
	return []hierarchy.Edge{
		{Sub: 1, Pred: hierarchy.Child, Obj: 0},
		{Sub: 2, Pred: hierarchy.Child, Obj: 1},
		{Sub: 3, Pred: hierarchy.Child, Obj: 1},
		{Sub: 4, Pred: hierarchy.Child, Obj: 2},
		{Sub: 4, Pred: hierarchy.Child, Obj: 3},
		{Sub: 5, Pred: hierarchy.Child, Obj: 0},
		{Sub: 6, Pred: hierarchy.Child, Obj: 5},
		{Sub: 7, Pred: hierarchy.Child, Obj: 5},
		{Sub: 8, Pred: hierarchy.Child, Obj: 5},
		{Sub: 9, Pred: hierarchy.Child, Obj: 0},
	}
}

func buildPhenotypes(t *testing.T) *Ontology {
	t.Helper()
	o, err := Build(Data{
		Terms:    phenotypeTerms(),
		Edges:    phenotypeEdges(),
		Metadata: map[string]string{MetadataVersionKey: "2025-01-16"},
	})
	require.NoError(t, err)
	return o
}

func collectIDs(seq func(yield func(termid.TermID) bool)) []string {
	var out []string
	seq(func(id termid.TermID) bool {
		out = append(out, id.String())
		return true
	})
	return out
}

func TestBuildSingleRoot(t *testing.T) {
	o := buildPhenotypes(t)

	assert.Equal(t, 10, o.Len())
	assert.False(t, o.IsEmpty())
	assert.Equal(t, uint32(0), o.Hierarchy().Root())

	version, ok := o.Version()
	require.True(t, ok)
	assert.Equal(t, "2025-01-16", version)
}

func TestBuildNoRoot(t *testing.T) {
	_, err := Build(Data{
		Terms: phenotypeTerms()[:2],
		Edges: []hierarchy.Edge{
			{Sub: 0, Pred: hierarchy.Child, Obj: 1},
			{Sub: 1, Pred: hierarchy.Child, Obj: 0},
		},
	})
	assert.ErrorIs(t, err, hierarchy.ErrNoRoot)
}

func TestBuildSynthesizesRootForMultipleCandidates(t *testing.T) {
	// Three disjoint sub-hierarchies, as in the Gene Ontology.
	terms := []MinimalTerm{
		NewTerm(termid.MustParse("GO:0008150"), "biological_process", nil, false),
		NewTerm(termid.MustParse("GO:0000001"), "bp child", nil, false),
		NewTerm(termid.MustParse("GO:0005575"), "cellular_component", nil, false),
		NewTerm(termid.MustParse("GO:0000002"), "cc child", nil, false),
		NewTerm(termid.MustParse("GO:0003674"), "molecular_function", nil, false),
		NewTerm(termid.MustParse("GO:0000003"), "mf child", nil, false),
	}
	edges := []hierarchy.Edge{
		{Sub: 1, Pred: hierarchy.Child, Obj: 0},
		{Sub: 3, Pred: hierarchy.Child, Obj: 2},
		{Sub: 5, Pred: hierarchy.Child, Obj: 4},
	}

	o, err := Build(Data{Terms: terms, Edges: edges})
	require.NoError(t, err)

	// Exactly one term was added: the synthetic root.
	require.Equal(t, 7, o.Len())
	root, ok := o.TermAt(o.Hierarchy().Root())
	require.True(t, ok)
	assert.True(t, root.ID().Equal(termid.OWLThing))
	assert.Equal(t, "Thing", root.Name())

	// The synthetic root's descendants are the union of the three
	// sub-hierarchies plus the three candidates themselves.
	descendants := collectIDs(o.Descendants(termid.OWLThing))
	assert.ElementsMatch(t, []string{
		"GO:0008150", "GO:0000001",
		"GO:0005575", "GO:0000002",
		"GO:0003674", "GO:0000003",
	}, descendants)

	assert.True(t, o.IsAncestorOf(termid.OWLThing, termid.MustParse("GO:0000003")))
}

func TestBuildRootCollision(t *testing.T) {
	terms := []MinimalTerm{
		NewTerm(termid.MustParse("owl:Thing"), "Thing", nil, false),
		NewTerm(termid.MustParse("GO:0000001"), "a", nil, false),
		NewTerm(termid.MustParse("GO:0000002"), "b", nil, false),
		NewTerm(termid.MustParse("GO:0000003"), "c", nil, false),
	}
	edges := []hierarchy.Edge{
		{Sub: 0, Pred: hierarchy.Child, Obj: 1},
		{Sub: 3, Pred: hierarchy.Child, Obj: 2},
	}

	_, err := Build(Data{Terms: terms, Edges: edges})
	assert.ErrorIs(t, err, ErrRootCollision)
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	terms := []MinimalTerm{
		NewTerm(termid.MustParse("GO:0000001"), "a", nil, false),
		NewTerm(termid.MustParse("GO:0000002"), "b", nil, false),
		NewTerm(termid.MustParse("GO:0000003"), "c", nil, false),
		NewTerm(termid.MustParse("GO:0000004"), "d", nil, false),
	}
	edges := []hierarchy.Edge{
		{Sub: 1, Pred: hierarchy.Child, Obj: 0},
		{Sub: 3, Pred: hierarchy.Child, Obj: 2},
	}
	data := Data{Terms: terms, Edges: edges}

	_, err := Build(data)
	require.NoError(t, err)

	assert.Len(t, data.Terms, 4)
	assert.Len(t, data.Edges, 2)
}

func TestLookups(t *testing.T) {
	o := buildPhenotypes(t)

	pos, ok := o.IndexOf(termid.MustParse("HP:0000005"))
	require.True(t, ok)
	assert.Equal(t, uint32(4), pos)

	term, ok := o.TermAt(4)
	require.True(t, ok)
	assert.Equal(t, "A12", term.Name())

	_, ok = o.TermAt(99)
	assert.False(t, ok)

	_, ok = o.IndexOf(termid.MustParse("HP:9999999"))
	assert.False(t, ok)
}

func TestAlternateIdentifierResolution(t *testing.T) {
	o := buildPhenotypes(t)

	primary := termid.MustParse("HP:0000002")
	alt := termid.MustParse("HP:0001002")

	primaryPos, ok := o.IndexOf(primary)
	require.True(t, ok)
	altPos, ok := o.IndexOf(alt)
	require.True(t, ok)
	assert.Equal(t, primaryPos, altPos)

	// The alternate identifier resolves to the primary term.
	resolved, ok := o.PrimaryID(alt)
	require.True(t, ok)
	assert.True(t, resolved.Equal(primary))

	term, ok := o.TermByID(alt)
	require.True(t, ok)
	assert.Equal(t, "A", term.Name())

	// Queries through the alternate identifier behave like queries
	// through the primary one.
	assert.True(t, o.IsChildOf(alt, termid.MustParse("HP:0000001")))
	assert.True(t, o.IsAncestorOf(alt, termid.MustParse("HP:0000005")))
}

func TestIdentifierSpaceQueries(t *testing.T) {
	o := buildPhenotypes(t)

	all := termid.MustParse("HP:0000001")
	a := termid.MustParse("HP:0000002")
	a12 := termid.MustParse("HP:0000005")
	b := termid.MustParse("HP:0000006")

	assert.True(t, o.IsChildOf(a, all))
	assert.False(t, o.IsChildOf(a12, all))
	assert.True(t, o.IsParentOf(all, a))
	assert.True(t, o.IsAncestorOf(all, a12))
	assert.True(t, o.IsDescendantOf(a12, a))
	assert.False(t, o.IsDescendantOf(a12, b))

	// Never reflexive.
	assert.False(t, o.IsAncestorOf(all, all))
	assert.False(t, o.IsDescendantOf(a12, a12))
}

func TestUnknownIdentifierQueries(t *testing.T) {
	o := buildPhenotypes(t)

	unknown := termid.MustParse("MONDO:123456")
	known := termid.MustParse("HP:0000002")

	assert.False(t, o.IsAncestorOf(unknown, known))
	assert.False(t, o.IsAncestorOf(known, unknown))
	assert.False(t, o.IsChildOf(unknown, unknown))
	assert.Empty(t, collectIDs(o.Ancestors(unknown)))
	assert.Empty(t, collectIDs(o.Descendants(unknown)))
	assert.Empty(t, collectIDs(o.Children(unknown)))
	assert.Empty(t, collectIDs(o.SubtreeIDs(unknown)))
}

func TestTraversalsByIdentifier(t *testing.T) {
	o := buildPhenotypes(t)

	a := termid.MustParse("HP:0000002")
	a12 := termid.MustParse("HP:0000005")

	assert.ElementsMatch(t,
		[]string{"HP:0000003", "HP:0000004"},
		collectIDs(o.Children(a)))
	assert.ElementsMatch(t,
		[]string{"HP:0000003", "HP:0000004"},
		collectIDs(o.Parents(a12)))
	assert.ElementsMatch(t,
		[]string{"HP:0000001", "HP:0000002", "HP:0000003", "HP:0000004"},
		collectIDs(o.Ancestors(a12)))
	assert.ElementsMatch(t,
		[]string{"HP:0000003", "HP:0000004", "HP:0000005"},
		collectIDs(o.Descendants(a)))
	assert.ElementsMatch(t,
		[]string{"HP:0000002", "HP:0000003", "HP:0000004", "HP:0000005"},
		collectIDs(o.SubtreeIDs(a)))
}

func TestIterators(t *testing.T) {
	o := buildPhenotypes(t)

	primary := collectIDs(o.TermIDs())
	assert.Len(t, primary, 10)
	assert.Contains(t, primary, "HP:0000001")
	assert.NotContains(t, primary, "HP:0001002")

	all := collectIDs(o.AllTermIDs())
	assert.Len(t, all, 12)
	assert.Contains(t, all, "HP:0001002")
	assert.Contains(t, all, "HP:0002002")

	// Restartable: a second pass sees the same elements.
	assert.Equal(t, primary, collectIDs(o.TermIDs()))

	var names []string
	for term := range o.Terms() {
		names = append(names, term.Name())
	}
	assert.Equal(t, []string{"All", "A", "A1", "A2", "A12", "B", "B1", "B2", "B3", "C"}, names)
}

func TestVersionAbsent(t *testing.T) {
	o, err := Build(Data{
		Terms: phenotypeTerms(),
		Edges: phenotypeEdges(),
	})
	require.NoError(t, err)

	_, ok := o.Version()
	assert.False(t, ok)
}
