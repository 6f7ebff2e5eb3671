package gltf

import (
	"encoding/binary"
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/gltfkit/pkg/document"
)

func floatBytes(values ...float32) []byte {
	out := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[i*4:], gomath.Float32bits(v))
	}
	return out
}

func uint16Bytes(values ...uint16) []byte {
	out := make([]byte, len(values)*2)
	for i, v := range values {
		binary.LittleEndian.PutUint16(out[i*2:], v)
	}
	return out
}

func TestRead_VersionMismatch(t *testing.T) {
	jd := &JSONDocument{JSON: &GLTF{Asset: Asset{Version: "1.0"}}}
	if _, err := Read(jd, ReadOptions{}); !errors.Is(err, ErrVersion) {
		t.Errorf("got %v, want ErrVersion", err)
	}
}

func TestRead_UnknownComponentType(t *testing.T) {
	data := floatBytes(0, 0, 0)
	jd := &JSONDocument{
		JSON: &GLTF{
			Asset:       Asset{Version: "2.0"},
			Buffers:     []Buffer{{URI: "b.bin", ByteLength: len(data)}},
			BufferViews: []BufferView{{Buffer: 0, ByteLength: len(data)}},
			Accessors: []Accessor{{
				BufferView: intPtr(0), ComponentType: 9999, Count: 1, Type: "VEC3",
			}},
		},
		Resources: map[string][]byte{"b.bin": data},
	}
	if _, err := Read(jd, ReadOptions{}); !errors.Is(err, ErrComponentType) {
		t.Errorf("got %v, want ErrComponentType", err)
	}
}

func TestRead_MissingBufferPayload(t *testing.T) {
	jd := &JSONDocument{
		JSON: &GLTF{
			Asset:   Asset{Version: "2.0"},
			Buffers: []Buffer{{ByteLength: 4}}, // empty URI means GLB chunk
		},
		Resources: map[string][]byte{},
	}
	if _, err := Read(jd, ReadOptions{}); !errors.Is(err, ErrMissingBuffer) {
		t.Errorf("got %v, want ErrMissingBuffer", err)
	}
}

func TestRead_EmptyBufferWithoutURI(t *testing.T) {
	// A buffer that packed no bytes carries neither URI nor payload; it is
	// empty data, not a missing GLB chunk.
	jd := &JSONDocument{
		JSON: &GLTF{
			Asset:   Asset{Version: "2.0"},
			Buffers: []Buffer{{ByteLength: 0}},
		},
		Resources: map[string][]byte{},
	}
	doc, err := Read(jd, ReadOptions{})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(doc.Root().ListBuffers()) != 1 {
		t.Error("empty buffer not materialized")
	}
}

func TestRead_MeshAndHierarchy(t *testing.T) {
	positions := floatBytes(0, 0, 0, 1, 0, 0, 0, 1, 0)
	indices := uint16Bytes(0, 1, 2)
	buf := append(append([]byte{}, positions...), indices...)

	jd := &JSONDocument{
		JSON: &GLTF{
			Asset:   Asset{Version: "2.0"},
			Buffers: []Buffer{{URI: "m.bin", ByteLength: len(buf)}},
			BufferViews: []BufferView{
				{Buffer: 0, ByteOffset: 0, ByteLength: len(positions), Target: intPtr(TargetArrayBuffer)},
				{Buffer: 0, ByteOffset: len(positions), ByteLength: len(indices), Target: intPtr(TargetElementArrayBuffer)},
			},
			Accessors: []Accessor{
				{BufferView: intPtr(0), ComponentType: 5126, Count: 3, Type: "VEC3"},
				{BufferView: intPtr(1), ComponentType: 5123, Count: 3, Type: "SCALAR"},
			},
			Meshes: []Mesh{{
				Name: "tri",
				Primitives: []Primitive{{
					Attributes: map[string]int{"POSITION": 0},
					Indices:    intPtr(1),
				}},
			}},
			// Child is declared before its parent.
			Nodes: []Node{
				{Name: "child"},
				{Name: "parent", Children: []int{0}, Mesh: intPtr(0), Translation: &[3]float64{1, 2, 3}},
			},
			Scenes: []Scene{{Name: "main", Nodes: []int{1}}},
			Scene:  intPtr(0),
		},
		Resources: map[string][]byte{"m.bin": buf},
	}

	d, err := Read(jd, ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}

	root := d.Root()
	meshes := root.ListMeshes()
	if len(meshes) != 1 {
		t.Fatalf("meshes: %d", len(meshes))
	}
	prim := meshes[0].ListPrimitives()[0]
	pos := prim.Attribute("POSITION")
	if pos == nil || pos.Count() != 3 {
		t.Fatal("POSITION accessor missing or wrong count")
	}
	elem := pos.GetElement(1, make([]float64, 3))
	if elem[0] != 1 || elem[1] != 0 || elem[2] != 0 {
		t.Errorf("element 1: %v", elem)
	}
	idx := prim.Indices()
	if idx == nil || idx.ComponentType() != document.ComponentUnsignedShort {
		t.Fatal("indices accessor wrong")
	}

	nodes := root.ListNodes()
	parent, child := nodes[1], nodes[0]
	if child.Parent() != parent {
		t.Error("hierarchy not wired across declaration order")
	}
	if parent.Mesh() != meshes[0] {
		t.Error("node mesh not wired")
	}
	scene := root.DefaultScene()
	if scene == nil || scene.Name() != "main" {
		t.Fatal("default scene not set")
	}
	if kids := scene.Children(); len(kids) != 1 || kids[0] != parent {
		t.Error("scene children wrong")
	}
}

func TestRead_InterleavedExtraction(t *testing.T) {
	// Two scalar float attributes interleaved with stride 8:
	// [a0 b0 a1 b1 a2 b2]
	buf := floatBytes(10, 20, 11, 21, 12, 22)

	jd := &JSONDocument{
		JSON: &GLTF{
			Asset:   Asset{Version: "2.0"},
			Buffers: []Buffer{{URI: "i.bin", ByteLength: len(buf)}},
			BufferViews: []BufferView{
				{Buffer: 0, ByteLength: len(buf), ByteStride: intPtr(8)},
			},
			Accessors: []Accessor{
				{BufferView: intPtr(0), ByteOffset: 0, ComponentType: 5126, Count: 3, Type: "SCALAR"},
				{BufferView: intPtr(0), ByteOffset: 4, ComponentType: 5126, Count: 3, Type: "SCALAR"},
			},
		},
		Resources: map[string][]byte{"i.bin": buf},
	}

	d, err := Read(jd, ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	accs := d.Root().ListAccessors()
	one := make([]float64, 1)
	for i, want := range []float64{10, 11, 12} {
		if got := accs[0].GetElement(i, one)[0]; got != want {
			t.Errorf("attribute A element %d: got %v, want %v", i, got, want)
		}
	}
	for i, want := range []float64{20, 21, 22} {
		if got := accs[1].GetElement(i, one)[0]; got != want {
			t.Errorf("attribute B element %d: got %v, want %v", i, got, want)
		}
	}
}

func TestRead_SparseOverlay(t *testing.T) {
	idxBytes := []byte{1, 3}
	valBytes := floatBytes(5, 7)
	buf := append(append([]byte{}, idxBytes...), append([]byte{0, 0}, valBytes...)...)

	jd := &JSONDocument{
		JSON: &GLTF{
			Asset:   Asset{Version: "2.0"},
			Buffers: []Buffer{{URI: "s.bin", ByteLength: len(buf)}},
			BufferViews: []BufferView{
				{Buffer: 0, ByteOffset: 0, ByteLength: 2},
				{Buffer: 0, ByteOffset: 4, ByteLength: 8},
			},
			Accessors: []Accessor{{
				ComponentType: 5126, Count: 4, Type: "SCALAR",
				Sparse: &Sparse{
					Count:   2,
					Indices: SparseIndices{BufferView: 0, ComponentType: 5121},
					Values:  SparseValues{BufferView: 1},
				},
			}},
		},
		Resources: map[string][]byte{"s.bin": buf},
	}

	d, err := Read(jd, ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	a := d.Root().ListAccessors()[0]
	if !a.Sparse() {
		t.Error("sparse flag not set")
	}
	one := make([]float64, 1)
	want := []float64{0, 5, 0, 7}
	for i, v := range want {
		if got := a.GetElement(i, one)[0]; got != v {
			t.Errorf("element %d: got %v, want %v", i, got, v)
		}
	}
}

func TestRead_ZeroFilledAccessor(t *testing.T) {
	// Neither bufferView nor sparse: the accessor reads as zeros.
	jd := &JSONDocument{
		JSON: &GLTF{
			Asset: Asset{Version: "2.0"},
			Accessors: []Accessor{{
				ComponentType: 5126, Count: 2, Type: "VEC3",
			}},
		},
	}
	d, err := Read(jd, ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	a := d.Root().ListAccessors()[0]
	if a.Count() != 2 {
		t.Fatalf("count: %d", a.Count())
	}
	elem := a.GetElement(1, make([]float64, 3))
	if elem[0] != 0 || elem[1] != 0 || elem[2] != 0 {
		t.Errorf("expected zeros, got %v", elem)
	}
}

func TestRead_MaterialSamplers(t *testing.T) {
	jd := &JSONDocument{
		JSON: &GLTF{
			Asset:    Asset{Version: "2.0"},
			Images:   []Image{{URI: "tex.png", MimeType: MimePNG}},
			Samplers: []Sampler{{MagFilter: intPtr(document.FilterNearest), WrapS: intPtr(document.WrapClampToEdge)}},
			Textures: []Texture{{Source: intPtr(0), Sampler: intPtr(0)}},
			Materials: []Material{{
				Name: "mat",
				PBRMetallicRoughness: &PBRMetallicRoughness{
					BaseColorTexture: &TextureInfo{Index: 0, TexCoord: 1},
					MetallicFactor:   floatPtr(0),
				},
				AlphaMode: "BLEND",
			}},
		},
		Resources: map[string][]byte{"tex.png": {0x89, 0x50}},
	}

	d, err := Read(jd, ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	m := d.Root().ListMaterials()[0]
	if m.AlphaMode() != "BLEND" {
		t.Errorf("alpha mode: %v", m.AlphaMode())
	}
	if m.MetallicFactor() != 0 {
		t.Errorf("metallic: %v", m.MetallicFactor())
	}
	if m.BaseColorTexture() == nil {
		t.Fatal("base color texture missing")
	}
	if m.BaseColorTexture().MimeType() != MimePNG {
		t.Errorf("mime: %v", m.BaseColorTexture().MimeType())
	}
	ti := m.BaseColorTextureInfo()
	if ti.TexCoord() != 1 {
		t.Errorf("texCoord: %d", ti.TexCoord())
	}
	if ti.MagFilter() == nil || *ti.MagFilter() != document.FilterNearest {
		t.Error("magFilter not transferred")
	}
	if ti.WrapS() != document.WrapClampToEdge {
		t.Errorf("wrapS: %d", ti.WrapS())
	}
	if ti.WrapT() != document.WrapRepeat {
		t.Errorf("wrapT default: %d", ti.WrapT())
	}
}
