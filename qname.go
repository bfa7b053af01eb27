package nbfx

import "github.com/cespare/xxhash/v2"

// QualifiedName is a (prefix, local name) pair, as found on element and
// attribute records. Equality is structural; Hash is permitted to collide
// across differing prefixes (it hashes the local name only) per the wire
// format's own tolerance for this.
type QualifiedName struct {
	Prefix string
	Local  string
}

// QName is a convenience constructor for QualifiedName.
func QName(prefix, local string) QualifiedName {
	return QualifiedName{Prefix: prefix, Local: local}
}

// IsLocal returns whether the name carries no prefix.
func (q QualifiedName) IsLocal() bool {
	return q.Prefix == ""
}

// Equal reports structural equality between two qualified names.
func (q QualifiedName) Equal(other QualifiedName) bool {
	return q.Prefix == other.Prefix && q.Local == other.Local
}

// Hash returns a fast, non-cryptographic hash of the local name only.
// Two names with equal local names but differing prefixes hash equally;
// callers that need to distinguish them must fall back to Equal.
func (q QualifiedName) Hash() uint64 {
	return xxhash.Sum64String(q.Local)
}

// String renders the name in "prefix:local" form, or bare "local" when
// unprefixed, for diagnostics/logging only — it is not a wire format.
func (q QualifiedName) String() string {
	if q.IsLocal() {
		return q.Local
	}
	return q.Prefix + ":" + q.Local
}
