package gltf

import (
	"bytes"
	"errors"
	"testing"
)

func TestDataURI_RoundTrip(t *testing.T) {
	payload := []byte{0, 1, 2, 250, 255}
	uri := encodeDataURI(MimePNG, payload)
	if !isDataURI(uri) {
		t.Fatalf("not recognized as data URI: %q", uri)
	}
	got, err := decodeDataURI(uri)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("payload: got %v, want %v", got, payload)
	}
}

func TestDataURI_Malformed(t *testing.T) {
	tests := []string{
		"data:image/png;base64",           // no comma
		"http://example.com/a.bin",        // not a data URI
		"data:image/png,abc",              // not base64-encoded
		"data:image/png;base64,@@@not@@@", // invalid base64 payload
	}
	for _, uri := range tests {
		if _, err := decodeDataURI(uri); !errors.Is(err, ErrDataURI) {
			t.Errorf("%q: got %v, want ErrDataURI", uri, err)
		}
	}
}

func TestKeyGenerator_Collisions(t *testing.T) {
	g := newKeyGenerator(0)
	g.reserve("mesh.bin")

	if got := g.next("mesh", "bin"); got != "mesh_1.bin" {
		t.Errorf("first collision: got %q", got)
	}
	if got := g.next("mesh", "bin"); got != "mesh_2.bin" {
		t.Errorf("second collision: got %q", got)
	}
	if got := g.next("other", "bin"); got != "other.bin" {
		t.Errorf("fresh base: got %q", got)
	}
}

func TestKeyGenerator_SanitizesAndDefaults(t *testing.T) {
	g := newKeyGenerator(0)
	if got := g.next("my texture/№1", "png"); got != "my_texture1.png" {
		t.Errorf("sanitized: got %q", got)
	}
	if got := g.next("", "bin"); got != "resource.bin" {
		t.Errorf("empty base: got %q", got)
	}
}

func TestKeyGenerator_UUIDFallback(t *testing.T) {
	g := newKeyGenerator(3)
	seen := map[string]bool{}
	// 1 direct + 3 numbered retries, then every further key must still be
	// unique via the random suffix.
	for i := 0; i < 10; i++ {
		key := g.next("clash", "bin")
		if seen[key] {
			t.Fatalf("duplicate key %q", key)
		}
		seen[key] = true
	}
}

func TestGLBBufferKey_NotAURI(t *testing.T) {
	if isDataURI(GLBBufferKey) {
		t.Error("sentinel must not look like a data URI")
	}
	g := newKeyGenerator(0)
	if g.next("@glb", "bin") == GLBBufferKey {
		t.Error("generator may never produce the sentinel key")
	}
}
