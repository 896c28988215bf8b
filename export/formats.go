package export

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
	FormatJSONLD: {
		Name:        FormatJSONLD,
		MIMEType:    "application/ld+json",
		Extension:   ".jsonld",
		Description: "JSON-LD - JSON for Linked Data",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

func (e *Exporter) toTurtle(triples []Triple) string {
	var sb strings.Builder
	for _, prefix := range e.sortedPrefixes() {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", prefix, e.prefixes[prefix])
	}
	sb.WriteString("\n")

	// One statement per line, grouped by subject with a blank separator.
	prev := ""
	for _, t := range triples {
		if prev != "" && t.Subject != prev {
			sb.WriteString("\n")
		}
		prev = t.Subject
		fmt.Fprintf(&sb, "%s %s %s .\n", t.Subject, t.Predicate, e.renderObject(t, false))
	}
	return sb.String()
}

func (e *Exporter) toNTriples(triples []Triple) string {
	var sb strings.Builder
	for _, t := range triples {
		fmt.Fprintf(&sb, "<%s> <%s> %s .\n",
			e.expand(t.Subject), e.expand(t.Predicate), e.renderObject(t, true))
	}
	return sb.String()
}

func (e *Exporter) renderObject(t Triple, expand bool) string {
	if t.Literal {
		return `"` + escapeLiteral(t.Object) + `"`
	}
	if expand {
		return "<" + e.expand(t.Object) + ">"
	}
	return t.Object
}

// JSONLDDocument represents a JSON-LD document structure.
type JSONLDDocument struct {
	Context map[string]string `json:"@context"`
	Graph   []JSONLDNode      `json:"@graph"`
}

// JSONLDNode represents a node in a JSON-LD graph.
type JSONLDNode struct {
	ID         string
	Types      []string
	Properties map[string][]any
}

// MarshalJSON flattens the node properties alongside @id and @type.
func (n JSONLDNode) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(n.Properties)+2)
	m["@id"] = n.ID
	if len(n.Types) > 0 {
		m["@type"] = n.Types
	}
	for k, values := range n.Properties {
		if len(values) == 1 {
			m[k] = values[0]
		} else {
			m[k] = values
		}
	}
	return json.Marshal(m)
}

func (e *Exporter) toJSONLD(triples []Triple) (string, error) {
	doc := JSONLDDocument{
		Context: e.prefixes,
		Graph:   make([]JSONLDNode, 0),
	}

	byID := make(map[string]int)
	for _, t := range triples {
		idx, ok := byID[t.Subject]
		if !ok {
			idx = len(doc.Graph)
			byID[t.Subject] = idx
			doc.Graph = append(doc.Graph, JSONLDNode{
				ID:         t.Subject,
				Properties: make(map[string][]any),
			})
		}
		node := &doc.Graph[idx]

		if t.Predicate == "rdf:type" {
			node.Types = append(node.Types, t.Object)
			continue
		}
		var value any
		if t.Literal {
			value = t.Object
		} else {
			value = map[string]string{"@id": t.Object}
		}
		node.Properties[t.Predicate] = append(node.Properties[t.Predicate], value)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export: marshal json-ld: %w", err)
	}
	return string(data), nil
}
