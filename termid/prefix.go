package termid

import "strings"

// Prefix is an enumerated tag for the closed set of well-known vocabulary
// prefixes. The zero value means the prefix is not part of the set.
type Prefix uint8

const (
	prefixNone Prefix = iota

	// PrefixHP is the Human Phenotype Ontology prefix.
	PrefixHP

	// PrefixOMIM is the Online Mendelian Inheritance in Man prefix.
	PrefixOMIM

	// PrefixMONDO is the Mondo Disease Ontology prefix.
	PrefixMONDO

	// PrefixGO is the Gene Ontology prefix.
	PrefixGO

	// PrefixMAXO is the Medical Action Ontology prefix.
	PrefixMAXO

	// PrefixORPHA is the Orphanet rare disease nomenclature prefix.
	PrefixORPHA

	// PrefixGENO is the Genotype Ontology prefix.
	PrefixGENO

	// PrefixSO is the Sequence Ontology prefix.
	PrefixSO

	// PrefixCHEBI is the Chemical Entities of Biological Interest prefix.
	PrefixCHEBI

	// PrefixNCIT is the NCI Thesaurus prefix.
	PrefixNCIT
)

var prefixNames = [...]string{
	PrefixHP:    "HP",
	PrefixOMIM:  "OMIM",
	PrefixMONDO: "MONDO",
	PrefixGO:    "GO",
	PrefixMAXO:  "MAXO",
	PrefixORPHA: "ORPHA",
	PrefixGENO:  "GENO",
	PrefixSO:    "SO",
	PrefixCHEBI: "CHEBI",
	PrefixNCIT:  "NCIT",
}

// String returns the canonical spelling of the prefix, or the empty string
// for the zero value.
func (p Prefix) String() string {
	if int(p) < len(prefixNames) {
		return prefixNames[p]
	}
	return ""
}

// classifyPrefix maps a raw prefix string onto the closed prefix set by
// prefix match, e.g. any string starting with "HP" classifies as PrefixHP.
// The match order follows the vocabulary list above.
func classifyPrefix(s string) (Prefix, bool) {
	for p := PrefixHP; p <= PrefixNCIT; p++ {
		if strings.HasPrefix(s, prefixNames[p]) {
			return p, true
		}
	}
	return prefixNone, false
}
