package obographs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/c360studio/ontograph/hierarchy"
	"github.com/c360studio/ontograph/ontology"
	"github.com/c360studio/ontograph/termid"
)

// ErrNoGraphs is returned when an obographs document contains no graphs.
var ErrNoGraphs = errors.New("obographs: document contains no graphs")

const (
	altIDPredSuffix   = "#hasAlternativeId"
	versionPredSuffix = "#versionInfo"
	partOfIRI         = "http://purl.obolibrary.org/obo/BFO_0000050"
	orcidIRIPrefix    = "https://orcid.org/"
)

// Parser reads ontology.Data from obographs JSON.
//
// Mandatory content (term identifier, hierarchy edges, document structure)
// is parsed strictly; malformed optional content (an unparsable alternate
// identifier, an unknown synonym predicate, an edge with an unknown
// relationship) is skipped, matching how OBO tooling treats these
// documents. Obsolete terms are dropped, so every position in the resulting
// term array belongs to a current term.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a parser. A nil logger falls back to slog.Default().
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Parse decodes an obographs document and maps its first graph onto the
// neutral (terms, edges, metadata) tuple.
func (p *Parser) Parse(r io.Reader) (ontology.Data, error) {
	var doc graphDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return ontology.Data{}, fmt.Errorf("obographs: decode document: %w", err)
	}
	if len(doc.Graphs) == 0 {
		return ontology.Data{}, ErrNoGraphs
	}
	return p.parseGraph(doc.Graphs[0])
}

func (p *Parser) parseGraph(g graphModel) (ontology.Data, error) {
	terms := make([]ontology.MinimalTerm, 0, len(g.Nodes))
	for _, node := range g.Nodes {
		term, ok := p.parseNode(node)
		if !ok {
			continue
		}
		if term.IsObsolete() {
			continue
		}
		terms = append(terms, term)
	}

	index := make(map[termid.Key]uint32, len(terms))
	for pos, t := range terms {
		index[t.ID().Key()] = uint32(pos)
	}

	edges := make([]hierarchy.Edge, 0, len(g.Edges))
	for _, edge := range g.Edges {
		if parsed, ok := p.parseEdge(edge, index); ok {
			edges = append(edges, parsed)
		}
	}

	return ontology.Data{
		Terms:    terms,
		Edges:    edges,
		Metadata: p.parseMetadata(g.Meta),
	}, nil
}

// parseNode maps an obographs node onto a term. Nodes without a parseable
// CURIE or without a label are skipped.
func (p *Parser) parseNode(node nodeModel) (ontology.Term, bool) {
	id, ok := curieFromIRI(node.ID)
	if !ok {
		p.logger.Debug("skipping node with unparsable id", slog.String("id", node.ID))
		return ontology.Term{}, false
	}
	if node.Lbl == "" {
		p.logger.Debug("skipping node without label", slog.String("id", node.ID))
		return ontology.Term{}, false
	}

	var (
		altIDs     []termid.TermID
		obsolete   bool
		definition string
		comment    string
		synonyms   []ontology.Synonym
		xrefs      []termid.TermID
	)
	if meta := node.Meta; meta != nil {
		obsolete = meta.Deprecated
		for _, bpv := range meta.BasicPropertyValues {
			if !strings.HasSuffix(bpv.Pred, altIDPredSuffix) {
				continue
			}
			if alt, err := termid.Parse(bpv.Val); err == nil {
				altIDs = append(altIDs, alt)
			}
		}
		if meta.Definition != nil {
			definition = meta.Definition.Val
		}
		if len(meta.Comments) > 0 {
			comment = strings.Join(meta.Comments, " ")
		}
		for _, syn := range meta.Synonyms {
			if parsed, ok := parseSynonym(syn); ok {
				synonyms = append(synonyms, parsed)
			}
		}
		for _, xref := range meta.Xrefs {
			if parsed, err := termid.Parse(xref.Val); err == nil {
				xrefs = append(xrefs, parsed)
			}
		}
	}

	term := ontology.NewTerm(id, node.Lbl, altIDs, obsolete).
		WithDefinition(definition).
		WithComment(comment).
		WithSynonyms(synonyms).
		WithXrefs(xrefs)
	return term, true
}

func parseSynonym(syn synonymModel) (ontology.Synonym, bool) {
	var category ontology.SynonymCategory
	switch syn.Pred {
	case "hasExactSynonym":
		category = ontology.SynonymExact
	case "hasBroadSynonym":
		category = ontology.SynonymBroad
	case "hasNarrowSynonym":
		category = ontology.SynonymNarrow
	case "hasRelatedSynonym":
		category = ontology.SynonymRelated
	default:
		return ontology.Synonym{}, false
	}

	var xrefs []termid.TermID
	for _, xref := range syn.Xrefs {
		if id, ok := parseSynonymXref(xref); ok {
			xrefs = append(xrefs, id)
		}
	}

	return ontology.Synonym{Name: syn.Val, Category: category, Xrefs: xrefs}, true
}

// parseSynonymXref handles the ORCID IRIs that attest layperson synonyms in
// the HPO alongside ordinary CURIEs.
func parseSynonymXref(xref string) (termid.TermID, bool) {
	if rest, ok := strings.CutPrefix(xref, orcidIRIPrefix); ok {
		return termid.FromPair("ORCID", rest), true
	}
	id, err := termid.Parse(xref)
	return id, err == nil
}

// parseEdge maps an obographs edge onto a position-space hierarchy edge.
// Edges whose endpoints are unknown (e.g. an obsolete term that was
// filtered out) or whose predicate is not a hierarchy relationship are
// skipped.
func (p *Parser) parseEdge(edge edgeModel, index map[termid.Key]uint32) (hierarchy.Edge, bool) {
	pred, ok := parseRelationship(edge.Pred)
	if !ok {
		return hierarchy.Edge{}, false
	}
	sub, ok := curieFromIRI(edge.Sub)
	if !ok {
		return hierarchy.Edge{}, false
	}
	obj, ok := curieFromIRI(edge.Obj)
	if !ok {
		return hierarchy.Edge{}, false
	}

	subPos, ok := index[sub.Key()]
	if !ok {
		return hierarchy.Edge{}, false
	}
	objPos, ok := index[obj.Key()]
	if !ok {
		return hierarchy.Edge{}, false
	}
	return hierarchy.Edge{Sub: subPos, Pred: pred, Obj: objPos}, true
}

func parseRelationship(pred string) (hierarchy.Relationship, bool) {
	switch pred {
	case "is_a":
		return hierarchy.Child, true
	case partOfIRI:
		return hierarchy.PartOf, true
	}
	return 0, false
}

// parseMetadata extracts the ontology version. The owl#versionInfo basic
// property value wins; failing that, the release segment of the version
// IRI, e.g. ".../hp/releases/2025-01-16/hp.json", is used.
func (p *Parser) parseMetadata(meta *metaModel) map[string]string {
	metadata := make(map[string]string)
	if meta == nil {
		return metadata
	}

	for _, bpv := range meta.BasicPropertyValues {
		if strings.HasSuffix(bpv.Pred, versionPredSuffix) {
			metadata[ontology.MetadataVersionKey] = bpv.Val
			return metadata
		}
	}

	if version, ok := releaseSegment(meta.Version); ok {
		metadata[ontology.MetadataVersionKey] = version
		return metadata
	}

	p.logger.Warn("could not determine ontology version")
	return metadata
}

// releaseSegment pulls the penultimate path segment out of a release IRI
// when it looks like a date, i.e. digits separated by dashes.
func releaseSegment(version string) (string, bool) {
	tokens := strings.Split(version, "/")
	if len(tokens) < 2 {
		return "", false
	}
	segment := tokens[len(tokens)-2]
	if segment == "" {
		return "", false
	}
	for _, part := range strings.Split(segment, "-") {
		for _, c := range part {
			if c < '0' || c > '9' {
				return "", false
			}
		}
	}
	return segment, true
}

// curieFromIRI extracts a term identifier from an OBO PURL such as
// http://purl.obolibrary.org/obo/HP_0001250, or from a bare CURIE.
func curieFromIRI(iri string) (termid.TermID, bool) {
	fragment := iri
	if idx := strings.LastIndexByte(fragment, '/'); idx >= 0 {
		fragment = fragment[idx+1:]
	}
	if idx := strings.LastIndexByte(fragment, '#'); idx >= 0 {
		fragment = fragment[idx+1:]
	}
	id, err := termid.Parse(fragment)
	return id, err == nil
}
