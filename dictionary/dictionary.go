// Package dictionary provides the external collaborator an MC-NBFX consumer
// uses to resolve the numeric string-table ids the core nbfx codec leaves
// opaque (surfaced as "D:<id>" tokens; see nbfx's strings.go). The core
// codec never imports this package: the wire only carries ids, and what
// those ids mean is a property of the negotiated session dictionary, not of
// the byte format itself.
package dictionary

// Resolver maps a dictionary string id to its text.
type Resolver interface {
	// Resolve returns the string a dictionary id stands for, and whether it
	// was found. A miss is not an error: callers typically fall back to
	// rendering the raw id.
	Resolve(id uint32) (string, bool)
}

// MapResolver is a Resolver backed by a plain map.
type MapResolver map[uint32]string

// Resolve implements Resolver.
func (m MapResolver) Resolve(id uint32) (string, bool) {
	s, ok := m[id]
	return s, ok
}

// ReverseResolver is the encode-side counterpart: given a string a producer
// wants to emit as a dictionary reference, it returns the id to put on the
// wire. Not every Resolver needs one - only producers that mint
// DictionaryText/DictionaryElement/DictionaryAttribute records need this
// direction.
type ReverseResolver interface {
	ResolveID(s string) (uint32, bool)
}

// MapDictionary is a MapResolver plus its inverse, built once from a single
// id->string table. It is the typical shape of a negotiated session
// dictionary: small, fixed for the life of the connection, looked up in
// both directions.
type MapDictionary struct {
	forward MapResolver
	reverse map[string]uint32
}

// NewMapDictionary builds a MapDictionary from an id->string table. Entries
// with duplicate strings keep the lowest id on the reverse lookup.
func NewMapDictionary(table map[uint32]string) *MapDictionary {
	d := &MapDictionary{
		forward: make(MapResolver, len(table)),
		reverse: make(map[string]uint32, len(table)),
	}
	for id, s := range table {
		d.forward[id] = s
		if existing, ok := d.reverse[s]; !ok || id < existing {
			d.reverse[s] = id
		}
	}
	return d
}

// Resolve implements Resolver.
func (d *MapDictionary) Resolve(id uint32) (string, bool) {
	return d.forward.Resolve(id)
}

// ResolveID implements ReverseResolver.
func (d *MapDictionary) ResolveID(s string) (uint32, bool) {
	id, ok := d.reverse[s]
	return id, ok
}
