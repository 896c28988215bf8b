// Package termid provides compact, validated identifiers for ontology
// concepts.
//
// An ontology concept is identified by a CURIE (compact URI) such as
// HP:0001250. The package parses CURIEs into the TermID value type, which
// keeps the identifier in one of two internal representations:
//
//   - Known: the prefix belongs to a closed set of well-known vocabularies
//     (HP, OMIM, MONDO, GO, ...) and the local part is numeric. The prefix
//     is stored as an enumerated tag and the local part as an integer plus
//     its original digit width, so HP:0001250 renders back with its leading
//     zeros intact.
//   - Random: anything else. The identifier is stored as a single
//     concatenated string plus the byte offset that separates prefix from
//     local part.
//
// TermIDs are immutable value types with a total order: every Known
// identifier sorts before every Random identifier, and within a
// representation identifiers order by prefix and then by value. Equality
// compares semantic content only, so HP:1 and HP:01 are equal even though
// they display differently.
//
// # Usage
//
//	seizure, err := termid.Parse("HP:0001250")
//	if err != nil { ... }
//
//	// The underscore delimiter used by OBO PURLs is accepted too and
//	// normalizes to the canonical colon form.
//	same := termid.MustParse("HP_0001250")
//
//	fmt.Println(seizure.Equal(same)) // true
//	fmt.Println(seizure)             // HP:0001250
package termid
