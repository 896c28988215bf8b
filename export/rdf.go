// Package export serializes a built ontology as RDF.
//
// Terms become owl:Class subjects with rdfs:label and rdfs:subClassOf
// triples mirroring the is_a hierarchy, so the output loads into any
// triple store or reasoner. Three serializations are supported: Turtle,
// N-Triples, and JSON-LD.
package export

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/ontograph/ontology"
	"github.com/c360studio/ontograph/termid"
)

// ErrUnknownTerm is returned when a subtree export is rooted at an
// identifier the ontology does not contain.
var ErrUnknownTerm = errors.New("export: unknown term")

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "turtle", "ttl":
		return FormatTurtle, nil
	case "ntriples", "nt":
		return FormatNTriples, nil
	case "jsonld", "json-ld":
		return FormatJSONLD, nil
	default:
		return "", fmt.Errorf("export: unsupported format: %s", name)
	}
}

// Triple is a single RDF statement. Subject and Predicate are prefixed
// names; Object is either a prefixed name or, when Literal is set, a plain
// string value.
type Triple struct {
	Subject   string
	Predicate string
	Object    string
	Literal   bool
}

// Exporter exports the terms and hierarchy of one ontology. Each exporter
// carries a unique run identifier that is attached to the output as
// provenance.
type Exporter struct {
	ont      *ontology.Ontology
	prefixes map[string]string
	runID    string
	now      func() time.Time
}

// NewExporter creates an exporter for the given ontology.
func NewExporter(o *ontology.Ontology) *Exporter {
	return &Exporter{
		ont:      o,
		prefixes: defaultPrefixes(),
		runID:    uuid.NewString(),
		now:      time.Now,
	}
}

// defaultPrefixes returns the namespace prefixes used in the output.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":       "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs":      "http://www.w3.org/2000/01/rdf-schema#",
		"owl":       "http://www.w3.org/2002/07/owl#",
		"obo":       "http://purl.obolibrary.org/obo/",
		"oboInOwl":  "http://www.geneontology.org/formats/oboInOwl#",
		"prov":      "http://www.w3.org/ns/prov#",
		"dc":        "http://purl.org/dc/terms/",
		"ontograph": "https://c360studio.github.io/ontograph/",
	}
}

// RunID returns the provenance identifier attached to this exporter's
// output.
func (e *Exporter) RunID() string { return e.runID }

// Export serializes the whole ontology in the given format.
func (e *Exporter) Export(format Format) (string, error) {
	return e.serialize(e.allTriples(), format)
}

// ExportSubtree serializes the term named by root together with all of its
// descendants.
func (e *Exporter) ExportSubtree(root termid.TermID, format Format) (string, error) {
	if _, ok := e.ont.IndexOf(root); !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTerm, root)
	}

	triples := e.ontologyTriples()
	for id := range e.ont.SubtreeIDs(root) {
		term, ok := e.ont.TermByID(id)
		if !ok {
			continue
		}
		triples = append(triples, e.termTriples(term)...)
	}
	return e.serialize(triples, format)
}

func (e *Exporter) allTriples() []Triple {
	triples := e.ontologyTriples()
	for term := range e.ont.Terms() {
		triples = append(triples, e.termTriples(term)...)
	}
	return triples
}

// ontologyTriples emits the export-level provenance subject.
func (e *Exporter) ontologyTriples() []Triple {
	subject := "ontograph:export/" + e.runID
	triples := []Triple{
		{Subject: subject, Predicate: "rdf:type", Object: "owl:Ontology"},
		{Subject: subject, Predicate: "dc:identifier", Object: e.runID, Literal: true},
		{Subject: subject, Predicate: "prov:generatedAtTime", Object: e.now().UTC().Format(time.RFC3339), Literal: true},
	}
	if version, ok := e.ont.Version(); ok {
		triples = append(triples, Triple{Subject: subject, Predicate: "owl:versionInfo", Object: version, Literal: true})
	}
	return triples
}

func (e *Exporter) termTriples(term ontology.MinimalTerm) []Triple {
	subject := subjectIRI(term.ID())
	triples := []Triple{
		{Subject: subject, Predicate: "rdf:type", Object: "owl:Class"},
		{Subject: subject, Predicate: "rdfs:label", Object: term.Name(), Literal: true},
	}

	for parent := range e.ont.Parents(term.ID()) {
		triples = append(triples, Triple{Subject: subject, Predicate: "rdfs:subClassOf", Object: subjectIRI(parent)})
	}
	for _, alt := range term.AltIDs() {
		triples = append(triples, Triple{Subject: subject, Predicate: "oboInOwl:hasAlternativeId", Object: alt.String(), Literal: true})
	}
	if term.IsObsolete() {
		triples = append(triples, Triple{Subject: subject, Predicate: "owl:deprecated", Object: "true", Literal: true})
	}

	if full, ok := term.(ontology.Term); ok {
		if def := full.Definition(); def != "" {
			triples = append(triples, Triple{Subject: subject, Predicate: "obo:IAO_0000115", Object: def, Literal: true})
		}
		if comment := full.Comment(); comment != "" {
			triples = append(triples, Triple{Subject: subject, Predicate: "rdfs:comment", Object: comment, Literal: true})
		}
		for _, syn := range full.Synonyms() {
			triples = append(triples, Triple{Subject: subject, Predicate: synonymPredicate(syn.Category), Object: syn.Name, Literal: true})
		}
	}
	return triples
}

func synonymPredicate(category ontology.SynonymCategory) string {
	switch category {
	case ontology.SynonymBroad:
		return "oboInOwl:hasBroadSynonym"
	case ontology.SynonymNarrow:
		return "oboInOwl:hasNarrowSynonym"
	case ontology.SynonymRelated:
		return "oboInOwl:hasRelatedSynonym"
	default:
		return "oboInOwl:hasExactSynonym"
	}
}

// subjectIRI renders a term identifier as a prefixed name. Identifiers over
// the owl namespace keep it (owl:Thing); everything else lands in the OBO
// namespace with the underscore PURL convention, e.g. obo:HP_0001250.
func subjectIRI(id termid.TermID) string {
	if id.Prefix() == "owl" {
		return "owl:" + id.Local()
	}
	return "obo:" + id.Prefix() + "_" + id.Local()
}

func (e *Exporter) serialize(triples []Triple, format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return e.toTurtle(triples), nil
	case FormatNTriples:
		return e.toNTriples(triples), nil
	case FormatJSONLD:
		return e.toJSONLD(triples)
	default:
		return "", fmt.Errorf("export: unsupported format: %s", format)
	}
}

func (e *Exporter) sortedPrefixes() []string {
	keys := make([]string, 0, len(e.prefixes))
	for k := range e.prefixes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// expand rewrites a prefixed name into a full IRI.
func (e *Exporter) expand(name string) string {
	prefix, local, ok := strings.Cut(name, ":")
	if !ok {
		return name
	}
	base, ok := e.prefixes[prefix]
	if !ok {
		return name
	}
	return base + local
}

func escapeLiteral(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)
	return replacer.Replace(s)
}
