package document

import "bytes"

// Texture is one raw image blob plus its MIME type and/or URI. Unlike the
// wire format, which splits "image" and "texture", a Texture here is the 1:1
// union of both; per-use sampling settings live on TextureInfo instead.
type Texture struct {
	property
	image    []byte
	mimeType string
	uri      string
}

// Image returns the raw image bytes.
func (t *Texture) Image() []byte { return t.image }

// SetImage sets the raw image bytes. The slice is taken as-is.
func (t *Texture) SetImage(image []byte) *Texture {
	t.check()
	t.image = image
	return t
}

// MimeType returns the image MIME type, e.g. "image/png".
func (t *Texture) MimeType() string { return t.mimeType }

// SetMimeType sets the image MIME type.
func (t *Texture) SetMimeType(mimeType string) *Texture {
	t.check()
	t.mimeType = mimeType
	return t
}

// URI returns the image URI, if the image came from or should go to an
// external resource.
func (t *Texture) URI() string { return t.uri }

// SetURI sets the image URI.
func (t *Texture) SetURI(uri string) *Texture {
	t.check()
	t.uri = uri
	return t
}

// CopyFrom copies attributes from src. Image bytes are shared, not cloned.
func (t *Texture) CopyFrom(src *Texture, _ Resolver) *Texture {
	t.check()
	t.copyBase(&src.property)
	t.image = src.image
	t.mimeType = src.mimeType
	t.uri = src.uri
	return t
}

// Equals compares image bytes, MIME type, and URI.
func (t *Texture) Equals(other Property) bool {
	o, ok := other.(*Texture)
	if !ok {
		return false
	}
	return t.mimeType == o.mimeType &&
		t.uri == o.uri &&
		bytes.Equal(t.image, o.image) &&
		t.equalsBase(&o.property)
}
