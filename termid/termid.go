package termid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMissingDelimiter is returned when a CURIE string contains neither ':'
// nor '_'.
var ErrMissingDelimiter = errors.New("termid: missing ':' or '_' delimiter")

// TermID identifies an ontology concept by its CURIE.
//
// The zero value is not a valid identifier; construct TermIDs with Parse,
// MustParse, or FromPair. TermIDs are immutable and may be copied freely.
type TermID struct {
	// Known representation: enumerated prefix, numeric local part, and the
	// local part's original decimal digit width for padded display.
	prefix Prefix
	value  uint32
	width  uint8

	// Random representation: prefix and local part concatenated without a
	// delimiter, and the byte offset separating the two. lit is empty for
	// the Known representation.
	lit   string
	split uint8
}

// Key is a comparable projection of a TermID that carries only its semantic
// content, suitable for use as a map key. Two TermIDs have equal Keys
// exactly when they are Equal: the digit width of a Known identifier is a
// display property and does not participate.
type Key struct {
	known  bool
	prefix Prefix
	value  uint32
	lit    string
}

// Parse converts a CURIE string such as "HP:0001250" or "HP_0001250" into a
// TermID. It fails with ErrMissingDelimiter if the string contains neither
// ':' nor '_'. The first ':' wins over any '_'.
func Parse(s string) (TermID, error) {
	idx := strings.IndexByte(s, ':')
	if idx < 0 {
		idx = strings.IndexByte(s, '_')
	}
	if idx < 0 {
		return TermID{}, fmt.Errorf("parse %q: %w", s, ErrMissingDelimiter)
	}
	return FromPair(s[:idx], s[idx+1:]), nil
}

// MustParse is like Parse but panics on error. Intended for identifiers
// known to be well-formed, such as literals in tests.
func MustParse(s string) TermID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// FromPair builds a TermID from an explicit prefix and local part.
//
// If the prefix classifies into the closed well-known set and the local part
// parses as an unsigned integer, the compact Known representation is used;
// otherwise the two strings are stored concatenated as the Random
// representation.
//
// FromPair panics if the local part has more than 255 digits (Known) or the
// prefix is longer than 255 bytes (Random). These are deliberate limits of
// the compact encoding, not recoverable conditions.
func FromPair(prefix, local string) TermID {
	p, known := classifyPrefix(prefix)
	if known {
		if v, err := strconv.ParseUint(local, 10, 32); err == nil {
			if len(local) > 255 {
				panic("termid: local part exceeds 255 digits")
			}
			return TermID{prefix: p, value: uint32(v), width: uint8(len(local))}
		}
	}
	if len(prefix) > 255 {
		panic("termid: prefix exceeds 255 bytes")
	}
	return TermID{lit: prefix + local, split: uint8(len(prefix))}
}

// IsKnown reports whether the identifier uses the compact representation
// reserved for the closed set of well-known prefixes.
func (t TermID) IsKnown() bool { return t.lit == "" }

// Prefix returns the prefix portion of the identifier, independent of
// representation. Note that classification is by prefix match, so an input
// prefix like "HPX" collapses to "HP".
func (t TermID) Prefix() string {
	if t.IsKnown() {
		return t.prefix.String()
	}
	return t.lit[:t.split]
}

// Local returns the local part of the identifier as displayed, including
// any leading zeros for the Known representation.
func (t TermID) Local() string {
	if t.IsKnown() {
		return fmt.Sprintf("%0*d", int(t.width), t.value)
	}
	return t.lit[t.split:]
}

// Value returns the numeric local part of a Known identifier. The second
// result is false for the Random representation, whose local part has no
// numeric reading.
func (t TermID) Value() (uint32, bool) {
	if !t.IsKnown() {
		return 0, false
	}
	return t.value, true
}

// String renders the canonical ':'-delimited CURIE. Known identifiers
// reproduce the original zero padding of the local part.
func (t TermID) String() string {
	return t.Prefix() + ":" + t.Local()
}

// Equal reports whether two identifiers name the same concept. Identifiers
// with different representations are never equal, and the digit width of a
// Known identifier does not participate, so HP:1 equals HP:01.
func (t TermID) Equal(o TermID) bool {
	if t.IsKnown() != o.IsKnown() {
		return false
	}
	if t.IsKnown() {
		return t.prefix == o.prefix && t.value == o.value
	}
	return t.lit == o.lit
}

// Compare orders identifiers totally: every Known identifier sorts before
// every Random identifier; Known identifiers order by prefix tag then
// numeric value; Random identifiers order lexically. Returns -1, 0, or 1.
func (t TermID) Compare(o TermID) int {
	switch {
	case t.IsKnown() && !o.IsKnown():
		return -1
	case !t.IsKnown() && o.IsKnown():
		return 1
	case t.IsKnown():
		if c := cmpUint8(uint8(t.prefix), uint8(o.prefix)); c != 0 {
			return c
		}
		switch {
		case t.value < o.value:
			return -1
		case t.value > o.value:
			return 1
		}
		return 0
	default:
		return strings.Compare(t.lit, o.lit)
	}
}

// Key returns the comparable semantic projection of the identifier for use
// as a map key.
func (t TermID) Key() Key {
	if t.IsKnown() {
		return Key{known: true, prefix: t.prefix, value: t.value}
	}
	return Key{lit: t.lit}
}

func cmpUint8(a, b uint8) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
