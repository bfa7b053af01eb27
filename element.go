package nbfx

// Attr is a single (type, name, value) triple attached to an Element. It is
// named Attr, not Attribute, because RecordType already defines a constant
// named Attribute for the wire's prefixed-attribute record code.
//
// Type is the record type the attribute was decoded from (or, for a
// caller-built tree, whatever the caller set); the serializer recomputes the
// most compact encoding from Name on emission and ignores this field — see
// canonicalAttributeType.
type Attr struct {
	Type  RecordType
	Name  QualifiedName
	Value Value
}

// Element is a node in the parsed/constructed document tree: a name, its
// attributes and children in stored order, and an optional value. Order of
// Attributes and Children is meaningful and preserved by the parser; the
// serializer may reorder Children under the sort_members policy.
//
// Element is created by the parser or built directly by a caller; once
// handed to the serializer it is treated as immutable-by-convention.
type Element struct {
	Type       RecordType
	Name       QualifiedName
	Attributes []Attr
	Children   []*Element
	Value      Value
}

// NewElement returns an empty Element for name, with its record type
// inferred from the name's prefix (see canonicalElementType). A caller
// building a tree by hand rarely needs to set Type directly.
func NewElement(name QualifiedName) *Element {
	return &Element{Type: canonicalElementType(name), Name: name, Value: NullValue()}
}

// AddAttribute appends attr to the element's attribute list, in order.
func (e *Element) AddAttribute(attr Attr) {
	e.Attributes = append(e.Attributes, attr)
}

// AddChild appends child to the element's child list, in order.
func (e *Element) AddChild(child *Element) {
	e.Children = append(e.Children, child)
}

// FirstChild returns the first immediate child whose name equals qname, in
// stored order.
func (e *Element) FirstChild(qname QualifiedName) (*Element, bool) {
	for _, c := range e.Children {
		if c.Name.Equal(qname) {
			return c, true
		}
	}
	return nil, false
}

// FindDescendant performs a breadth-first search for the first element
// (including the receiver itself) whose name equals qname.
func (e *Element) FindDescendant(qname QualifiedName) (*Element, bool) {
	queue := []*Element{e}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current.Name.Equal(qname) {
			return current, true
		}
		queue = append(queue, current.Children...)
	}
	return nil, false
}

// canonicalElementType returns the most compact element record type for
// name: no prefix -> ShortElement; a single lowercase ASCII letter prefix ->
// the corresponding PrefixElement{X}; otherwise Element. Dictionary forms are
// never chosen here — those only arise when decoding a stream that already
// used them, and the serializer never re-emits a dictionary reference it
// didn't itself decide to keep as one; this codec always canonicalizes to
// the inline-name forms.
func canonicalElementType(name QualifiedName) RecordType {
	switch {
	case name.Prefix == "":
		return ShortElement
	case len(name.Prefix) == 1 && isLowerASCII(name.Prefix[0]):
		return PrefixElementForLetter(name.Prefix[0])
	default:
		return QualifiedElement
	}
}

// canonicalAttributeType mirrors canonicalElementType for attributes, with
// the xmlns special case: an attribute named "xmlns" is always emitted as
// ShortXmlnsAttribute/XmlnsAttribute regardless of prefix letter count,
// since an xmlns declaration swaps the usual prefix/name roles.
func canonicalAttributeType(name QualifiedName) RecordType {
	if name.Local == "xmlns" {
		if name.Prefix == "" {
			return ShortXmlnsAttribute
		}
		return XmlnsAttribute
	}
	switch {
	case name.Prefix == "":
		return ShortAttribute
	case len(name.Prefix) == 1 && isLowerASCII(name.Prefix[0]):
		return PrefixAttributeForLetter(name.Prefix[0])
	default:
		return Attribute
	}
}

func isLowerASCII(c byte) bool {
	return c >= 'a' && c <= 'z'
}
