package export

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontograph/hierarchy"
	"github.com/c360studio/ontograph/ontology"
	"github.com/c360studio/ontograph/termid"
)

func buildTestOntology(t *testing.T) *ontology.Ontology {
	t.Helper()

	terms := []ontology.MinimalTerm{
		ontology.NewTerm(termid.MustParse("HP:0000001"), "All", nil, false),
		ontology.NewTerm(termid.MustParse("HP:0000118"), "Phenotypic abnormality",
			[]termid.TermID{termid.MustParse("HP:0001002")}, false).
			WithDefinition("A phenotypic abnormality.").
			WithSynonyms([]ontology.Synonym{
				{Name: "Organ abnormality", Category: ontology.SynonymExact},
			}),
		ontology.NewTerm(termid.MustParse("HP:0001250"), "Seizure", nil, false).
			WithComment(`Formerly called "epileptic seizure".`),
	}
	edges := []hierarchy.Edge{
		{Sub: 1, Pred: hierarchy.Child, Obj: 0},
		{Sub: 2, Pred: hierarchy.Child, Obj: 1},
	}

	ont, err := ontology.Build(ontology.Data{
		Terms:    terms,
		Edges:    edges,
		Metadata: map[string]string{ontology.MetadataVersionKey: "2026-01-15"},
	})
	require.NoError(t, err)
	return ont
}

func TestExportTurtle(t *testing.T) {
	exporter := NewExporter(buildTestOntology(t))

	out, err := exporter.Export(FormatTurtle)
	require.NoError(t, err)

	assert.Contains(t, out, "@prefix obo: <http://purl.obolibrary.org/obo/> .")
	assert.Contains(t, out, "@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .")

	assert.Contains(t, out, `obo:HP_0000001 rdfs:label "All" .`)
	assert.Contains(t, out, "obo:HP_0000118 rdfs:subClassOf obo:HP_0000001 .")
	assert.Contains(t, out, "obo:HP_0001250 rdfs:subClassOf obo:HP_0000118 .")
	assert.Contains(t, out, `obo:HP_0000118 oboInOwl:hasAlternativeId "HP:0001002" .`)
	assert.Contains(t, out, `obo:HP_0000118 obo:IAO_0000115 "A phenotypic abnormality." .`)
	assert.Contains(t, out, `obo:HP_0000118 oboInOwl:hasExactSynonym "Organ abnormality" .`)

	// Provenance subject carries the run identifier and the release version.
	assert.Contains(t, out, "ontograph:export/"+exporter.RunID())
	assert.Contains(t, out, `owl:versionInfo "2026-01-15" .`)
}

func TestExportTurtleEscapesLiterals(t *testing.T) {
	exporter := NewExporter(buildTestOntology(t))

	out, err := exporter.Export(FormatTurtle)
	require.NoError(t, err)

	assert.Contains(t, out, `rdfs:comment "Formerly called \"epileptic seizure\"." .`)
}

func TestExportNTriples(t *testing.T) {
	exporter := NewExporter(buildTestOntology(t))

	out, err := exporter.Export(FormatNTriples)
	require.NoError(t, err)

	assert.Contains(t, out,
		"<http://purl.obolibrary.org/obo/HP_0001250> "+
			"<http://www.w3.org/2000/01/rdf-schema#subClassOf> "+
			"<http://purl.obolibrary.org/obo/HP_0000118> .")
	assert.Contains(t, out,
		`<http://purl.obolibrary.org/obo/HP_0001250> <http://www.w3.org/2000/01/rdf-schema#label> "Seizure" .`)
	assert.NotContains(t, out, "@prefix")
}

func TestExportJSONLD(t *testing.T) {
	exporter := NewExporter(buildTestOntology(t))

	out, err := exporter.Export(FormatJSONLD)
	require.NoError(t, err)

	var doc struct {
		Context map[string]string `json:"@context"`
		Graph   []map[string]any  `json:"@graph"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "http://purl.obolibrary.org/obo/", doc.Context["obo"])
	// Provenance node plus one node per term.
	require.Len(t, doc.Graph, 4)

	var seizure map[string]any
	for _, node := range doc.Graph {
		if node["@id"] == "obo:HP_0001250" {
			seizure = node
		}
	}
	require.NotNil(t, seizure)
	assert.Equal(t, "Seizure", seizure["rdfs:label"])
	assert.Equal(t, []any{"owl:Class"}, seizure["@type"])
	assert.Equal(t, map[string]any{"@id": "obo:HP_0000118"}, seizure["rdfs:subClassOf"])
}

func TestExportSubtree(t *testing.T) {
	exporter := NewExporter(buildTestOntology(t))

	out, err := exporter.ExportSubtree(termid.MustParse("HP:0000118"), FormatTurtle)
	require.NoError(t, err)

	assert.Contains(t, out, `obo:HP_0000118 rdfs:label "Phenotypic abnormality" .`)
	assert.Contains(t, out, `obo:HP_0001250 rdfs:label "Seizure" .`)
	// The root above the subtree appears only as a parent reference.
	assert.NotContains(t, out, `obo:HP_0000001 rdfs:label`)
}

func TestExportSubtreeResolvesAlternateID(t *testing.T) {
	exporter := NewExporter(buildTestOntology(t))

	out, err := exporter.ExportSubtree(termid.MustParse("HP:0001002"), FormatTurtle)
	require.NoError(t, err)
	assert.Contains(t, out, `obo:HP_0000118 rdfs:label "Phenotypic abnormality" .`)
}

func TestExportSubtreeUnknownTerm(t *testing.T) {
	exporter := NewExporter(buildTestOntology(t))

	_, err := exporter.ExportSubtree(termid.MustParse("HP:9999999"), FormatTurtle)
	assert.ErrorIs(t, err, ErrUnknownTerm)
}

func TestExportUnsupportedFormat(t *testing.T) {
	exporter := NewExporter(buildTestOntology(t))

	_, err := exporter.Export(Format("rdfxml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestExportDeprecatedTerm(t *testing.T) {
	terms := []ontology.MinimalTerm{
		ontology.NewTerm(termid.MustParse("HP:0000001"), "All", nil, false),
		ontology.NewTerm(termid.MustParse("HP:0000002"), "Old thing", nil, true),
	}
	edges := []hierarchy.Edge{{Sub: 1, Pred: hierarchy.Child, Obj: 0}}

	ont, err := ontology.Build(ontology.Data{Terms: terms, Edges: edges})
	require.NoError(t, err)

	out, err := NewExporter(ont).Export(FormatTurtle)
	require.NoError(t, err)
	assert.Contains(t, out, `obo:HP_0000002 owl:deprecated "true" .`)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "turtle", input: "turtle", want: FormatTurtle},
		{name: "ttl alias", input: "ttl", want: FormatTurtle},
		{name: "ntriples", input: "ntriples", want: FormatNTriples},
		{name: "nt alias", input: "nt", want: FormatNTriples},
		{name: "jsonld", input: "JSON-LD", want: FormatJSONLD},
		{name: "unknown", input: "rdfxml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetFormatInfo(t *testing.T) {
	info, ok := GetFormatInfo(FormatTurtle)
	require.True(t, ok)
	assert.Equal(t, ".ttl", info.Extension)
	assert.Equal(t, "text/turtle", info.MIMEType)

	_, ok = GetFormatInfo(Format("rdfxml"))
	assert.False(t, ok)
}

func TestRunIDIsUnique(t *testing.T) {
	ont := buildTestOntology(t)
	a := NewExporter(ont)
	b := NewExporter(ont)
	assert.NotEqual(t, a.RunID(), b.RunID())
	assert.False(t, strings.Contains(a.RunID(), " "))
}
