package gltf

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// GLBBufferKey is the reserved resource key holding the payload of a GLB
// container's single binary chunk. It is not a legal URI, so it can never
// collide with a real resource name.
const GLBBufferKey = "@glb.bin"

// JSONDocument pairs a wire tree with the binary payloads its buffers and
// images refer to, keyed by URI (or GLBBufferKey for the GLB binary chunk).
type JSONDocument struct {
	JSON      *GLTF
	Resources map[string][]byte
}

var ErrDataURI = errors.New("gltf: malformed data URI")

const dataURIPrefix = "data:"

// isDataURI reports whether uri embeds its payload inline.
func isDataURI(uri string) bool {
	return strings.HasPrefix(uri, dataURIPrefix)
}

// decodeDataURI extracts the payload of a base64 data URI.
func decodeDataURI(uri string) ([]byte, error) {
	comma := strings.IndexByte(uri, ',')
	if !isDataURI(uri) || comma < 0 {
		return nil, ErrDataURI
	}
	meta := uri[len(dataURIPrefix):comma]
	payload := uri[comma+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("%w: only base64 encoding is supported", ErrDataURI)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataURI, err)
	}
	return data, nil
}

// encodeDataURI embeds data as a base64 data URI with the given MIME type.
func encodeDataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return dataURIPrefix + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// keyGenerator hands out short resource keys that are unique within one
// write. Candidates derive from property names; numbered variants are tried
// up to maxKeyRetries before falling back to a UUID suffix, so a pathological
// input cannot loop forever.
type keyGenerator struct {
	used       map[string]struct{}
	maxRetries int
}

const defaultKeyRetries = 1000

func newKeyGenerator(maxRetries int) *keyGenerator {
	if maxRetries <= 0 {
		maxRetries = defaultKeyRetries
	}
	return &keyGenerator{used: map[string]struct{}{}, maxRetries: maxRetries}
}

// reserve marks a key as taken, for URIs the caller controls.
func (g *keyGenerator) reserve(key string) {
	g.used[key] = struct{}{}
}

// next returns a fresh key of the form <base>.<ext>, <base>_1.<ext>, ...
func (g *keyGenerator) next(base, ext string) string {
	base = sanitizeKey(base)
	if base == "" {
		base = "resource"
	}
	candidate := base + "." + ext
	for i := 1; i <= g.maxRetries; i++ {
		if _, taken := g.used[candidate]; !taken {
			g.used[candidate] = struct{}{}
			return candidate
		}
		candidate = fmt.Sprintf("%s_%d.%s", base, i, ext)
	}
	candidate = base + "_" + uuid.NewString()[:8] + "." + ext
	g.used[candidate] = struct{}{}
	return candidate
}

// sanitizeKey strips characters that are unsafe in file names and URIs.
func sanitizeKey(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}
	return b.String()
}

// extensionForMime returns the conventional file extension for an image MIME
// type.
func extensionForMime(mimeType string) string {
	switch mimeType {
	case MimePNG:
		return "png"
	case MimeJPEG:
		return "jpg"
	}
	return "bin"
}
