package document

// Buffer represents one physical byte blob, either an external file or the
// embedded GLB chunk, backing one or more Accessors. The blob itself is
// assembled by the writer; the property only carries identity and URI.
type Buffer struct {
	property
	uri string
}

// URI returns the buffer URI, empty for the embedded GLB buffer.
func (b *Buffer) URI() string { return b.uri }

// SetURI sets the buffer URI.
func (b *Buffer) SetURI(uri string) *Buffer {
	b.check()
	b.uri = uri
	return b
}

// CopyFrom copies attributes from src.
func (b *Buffer) CopyFrom(src *Buffer, _ Resolver) *Buffer {
	b.check()
	b.copyBase(&src.property)
	b.uri = src.uri
	return b
}

// Equals compares URIs and base attributes.
func (b *Buffer) Equals(other Property) bool {
	o, ok := other.(*Buffer)
	if !ok {
		return false
	}
	return b.uri == o.uri && b.equalsBase(&o.property)
}
