package gltf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/gltfkit/pkg/document"
)

// ParseJSON unmarshals a glTF JSON payload into a JSONDocument. Data-URI
// resources are decoded and rewritten to synthetic short keys so the
// resource map is keyed uniformly.
func ParseJSON(data []byte) (*JSONDocument, error) {
	var tree GLTF
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("gltf: parsing JSON: %w", err)
	}
	jd := &JSONDocument{JSON: &tree, Resources: map[string][]byte{}}

	keys := newKeyGenerator(0)
	for i := range tree.Buffers {
		if err := internDataURI(&tree.Buffers[i].URI, jd, keys, "bin"); err != nil {
			return nil, fmt.Errorf("gltf: buffer %d: %w", i, err)
		}
	}
	for i := range tree.Images {
		ext := extensionForMime(tree.Images[i].MimeType)
		if err := internDataURI(&tree.Images[i].URI, jd, keys, ext); err != nil {
			return nil, fmt.Errorf("gltf: image %d: %w", i, err)
		}
	}
	return jd, nil
}

func internDataURI(uri *string, jd *JSONDocument, keys *keyGenerator, ext string) error {
	if !isDataURI(*uri) {
		if *uri != "" {
			keys.reserve(*uri)
		}
		return nil
	}
	payload, err := decodeDataURI(*uri)
	if err != nil {
		return err
	}
	key := keys.next("embedded", ext)
	jd.Resources[key] = payload
	*uri = key
	return nil
}

// EncodeJSON marshals a JSONDocument's wire tree, stripping the empty
// containers, nulls, and empty strings the format disallows.
func EncodeJSON(jd *JSONDocument, pretty bool) ([]byte, error) {
	raw, err := json.Marshal(jd.JSON)
	if err != nil {
		return nil, fmt.Errorf("gltf: encoding JSON: %w", err)
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("gltf: encoding JSON: %w", err)
	}
	tree = pruneEmpty(tree)
	if pretty {
		return json.MarshalIndent(tree, "", "  ")
	}
	return json.Marshal(tree)
}

// pruneEmpty drops nulls, empty strings, and empty containers recursively.
// Numeric zeros and false stay: they carry meaning on the wire, as does an
// empty extension payload object ("KHR_materials_unlit": {}).
func pruneEmpty(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for key, val := range v {
			if key == "extensions" {
				if m, ok := val.(map[string]any); ok {
					for name, payload := range m {
						m[name] = pruneEmpty(payload)
					}
					if len(m) == 0 {
						delete(v, key)
					}
					continue
				}
			}
			val = pruneEmpty(val)
			if emptyValue(val) {
				delete(v, key)
			} else {
				v[key] = val
			}
		}
		return v
	case []any:
		for i, val := range v {
			v[i] = pruneEmpty(val)
		}
		return v
	default:
		return v
	}
}

func emptyValue(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	}
	return false
}

// ReadBinary decodes a GLB container into a Document.
func ReadBinary(data []byte, opts ReadOptions) (*document.Document, error) {
	jsonPayload, bin, err := UnpackGLB(data)
	if err != nil {
		return nil, err
	}
	jd, err := ParseJSON(jsonPayload)
	if err != nil {
		return nil, err
	}
	if bin != nil {
		jd.Resources[GLBBufferKey] = bin
	}
	return Read(jd, opts)
}

// WriteBinary encodes a Document into GLB container bytes.
func WriteBinary(doc *document.Document, opts WriteOptions) ([]byte, error) {
	opts.Format = FormatGLB
	jd, err := Write(doc, opts)
	if err != nil {
		return nil, err
	}
	jsonPayload, err := EncodeJSON(jd, false)
	if err != nil {
		return nil, err
	}
	return PackGLB(jsonPayload, jd.Resources[GLBBufferKey]), nil
}

// Load reads a document from disk, auto-detecting GLB by magic. For JSON
// documents, buffer and image URIs resolve relative to the file's directory.
func Load(path string, opts ReadOptions) (*document.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gltf: reading %s: %w", path, err)
	}
	if IsGLB(data) {
		return ReadBinary(data, opts)
	}

	jd, err := ParseJSON(data)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	load := func(uri string) error {
		if uri == "" || isDataURI(uri) {
			return nil
		}
		if _, found := jd.Resources[uri]; found {
			return nil
		}
		payload, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(uri)))
		if err != nil {
			return fmt.Errorf("gltf: reading resource %q: %w", uri, err)
		}
		jd.Resources[uri] = payload
		return nil
	}
	for _, b := range jd.JSON.Buffers {
		if err := load(b.URI); err != nil {
			return nil, err
		}
	}
	for _, img := range jd.JSON.Images {
		// Missing external images are tolerated: the texture keeps its URI.
		_ = load(img.URI)
	}
	return Read(jd, opts)
}

// Save writes a document to disk. A .glb extension selects the binary
// container; any other extension writes indented JSON (unless opts.Compact)
// with external resources as sibling files.
func Save(path string, doc *document.Document, opts WriteOptions) error {
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		data, err := WriteBinary(doc, opts)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)
	}

	opts.Format = FormatGLTF
	if opts.Basename == "" {
		opts.Basename = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	jd, err := Write(doc, opts)
	if err != nil {
		return err
	}
	data, err := EncodeJSON(jd, !opts.Compact)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("gltf: writing %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for key, payload := range jd.Resources {
		if err := os.WriteFile(filepath.Join(dir, filepath.FromSlash(key)), payload, 0o644); err != nil {
			return fmt.Errorf("gltf: writing resource %q: %w", key, err)
		}
	}
	return nil
}
