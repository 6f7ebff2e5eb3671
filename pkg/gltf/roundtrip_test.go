package gltf

import (
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/gltfkit/pkg/document"
)

// buildTriangle builds a one-triangle document exercising most property
// kinds: indexed mesh, textured material, node hierarchy, skin, camera, and
// a rotation animation.
func buildTriangle(t *testing.T) *document.Document {
	t.Helper()
	d := document.New()
	buf := d.CreateBuffer("geometry")

	pos := d.CreateAccessor("positions").
		SetType(document.TypeVec3).
		SetArray([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0})
	pos.SetBuffer(buf)
	nrm := d.CreateAccessor("normals").
		SetType(document.TypeVec3).
		SetArray([]float32{0, 0, 1, 0, 0, 1, 0, 0, 1})
	nrm.SetBuffer(buf)
	idx := d.CreateAccessor("indices").
		SetType(document.TypeScalar).
		SetArray([]uint16{0, 1, 2})
	idx.SetBuffer(buf)

	tex := d.CreateTexture("albedo").
		SetMimeType(MimePNG).
		SetImage([]byte{0x89, 0x50, 0x4E, 0x47})
	mat := d.CreateMaterial("red").
		SetBaseColorFactor([4]float64{1, 0, 0, 1}).
		SetBaseColorTexture(tex)
	mat.BaseColorTextureInfo().SetWrapS(document.WrapClampToEdge)

	prim := d.CreatePrimitive().SetIndices(idx).SetMaterial(mat)
	prim.SetAttribute("POSITION", pos)
	prim.SetAttribute("NORMAL", nrm)
	mesh := d.CreateMesh("tri").AddPrimitive(prim)

	joint := d.CreateNode("joint")
	ibm := d.CreateAccessor("ibm").
		SetType(document.TypeMat4).
		SetArray(identityMat4Floats())
	ibm.SetBuffer(buf)
	skin := d.CreateSkin("skin").SetInverseBindMatrices(ibm).AddJoint(joint)

	cam := d.CreateCamera("cam").SetYFov(1.0).SetZNear(0.1)

	node := d.CreateNode("mesh node").SetMesh(mesh).SetSkin(skin)
	camNode := d.CreateNode("cam node").SetCamera(cam).SetTranslation([3]float64{0, 0, 5})
	node.AddChild(joint)

	scene := d.CreateScene("main")
	scene.AddChild(node)
	scene.AddChild(camNode)
	d.Root().SetDefaultScene(scene)

	input := d.CreateAccessor("times").
		SetType(document.TypeScalar).
		SetArray([]float32{0, 1})
	input.SetBuffer(buf)
	output := d.CreateAccessor("rotations").
		SetType(document.TypeVec4).
		SetArray([]float32{0, 0, 0, 1, 0, 0.7071, 0, 0.7071})
	output.SetBuffer(buf)
	sampler := d.CreateAnimationSampler().SetInput(input).SetOutput(output)
	channel := d.CreateAnimationChannel().
		SetTargetPath(document.PathRotation).
		SetTargetNode(node).
		SetSampler(sampler)
	d.CreateAnimation("spin").AddSampler(sampler).AddChannel(channel)

	return d
}

func identityMat4Floats() []float32 {
	out := make([]float32, 16)
	out[0], out[5], out[10], out[15] = 1, 1, 1, 1
	return out
}

func TestWrite_DefaultsOmitted(t *testing.T) {
	d := document.New()
	n := d.CreateNode("plain")
	d.CreateScene("s").AddChild(n)
	d.CreateMaterial("default")
	prim := d.CreatePrimitive()
	d.CreateMesh("m").AddPrimitive(prim)

	jd, err := Write(d, WriteOptions{})
	if err != nil {
		t.Fatal(err)
	}
	wn := jd.JSON.Nodes[0]
	if wn.Translation != nil || wn.Rotation != nil || wn.Scale != nil || wn.Matrix != nil {
		t.Error("default transform not omitted")
	}
	wm := jd.JSON.Materials[0]
	if wm.PBRMetallicRoughness != nil || wm.AlphaMode != "" || wm.AlphaCutoff != nil {
		t.Error("default material fields not omitted")
	}
	if jd.JSON.Meshes[0].Primitives[0].Mode != nil {
		t.Error("triangle mode not omitted")
	}
}

func TestRoundTrip_JSON(t *testing.T) {
	src := buildTriangle(t)
	jd, err := Write(src, WriteOptions{Basename: "tri"})
	if err != nil {
		t.Fatal(err)
	}

	if _, found := jd.Resources["tri.bin"]; !found {
		t.Errorf("buffer resource missing, keys: %v", jd.Resources)
	}

	got, err := Read(jd, ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	root := got.Root()

	prim := root.ListMeshes()[0].ListPrimitives()[0]
	pos := prim.Attribute("POSITION")
	if pos == nil || pos.Count() != 3 {
		t.Fatal("POSITION lost")
	}
	elem := pos.GetElement(2, make([]float64, 3))
	if elem[0] != 0 || elem[1] != 1 || elem[2] != 0 {
		t.Errorf("POSITION element 2: %v", elem)
	}
	if prim.Indices() == nil || prim.Indices().ComponentType() != document.ComponentUnsignedShort {
		t.Error("indices lost")
	}

	mat := prim.Material()
	if mat == nil || mat.BaseColorFactor() != [4]float64{1, 0, 0, 1} {
		t.Error("material factor lost")
	}
	if mat.BaseColorTexture() == nil {
		t.Fatal("texture lost")
	}
	if mat.BaseColorTextureInfo().WrapS() != document.WrapClampToEdge {
		t.Error("sampler wrap lost")
	}

	skin := root.ListSkins()[0]
	if skin.InverseBindMatrices() == nil || len(skin.ListJoints()) != 1 {
		t.Error("skin lost")
	}
	if len(root.ListAnimations()) != 1 {
		t.Error("animation lost")
	}
	if root.DefaultScene() == nil || len(root.DefaultScene().Children()) != 2 {
		t.Error("scene lost")
	}
}

func TestRoundTrip_GLB(t *testing.T) {
	src := buildTriangle(t)
	data, err := WriteBinary(src, WriteOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !IsGLB(data) {
		t.Fatal("output is not a GLB container")
	}

	got, err := ReadBinary(data, ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	root := got.Root()
	prim := root.ListMeshes()[0].ListPrimitives()[0]
	if prim.Attribute("POSITION") == nil || prim.Attribute("NORMAL") == nil {
		t.Error("attributes lost in GLB round trip")
	}
	tex := root.ListTextures()[0]
	if len(tex.Image()) != 4 {
		t.Errorf("embedded image payload: %d bytes", len(tex.Image()))
	}
}

func TestWrite_GLBImageAlignment(t *testing.T) {
	src := buildTriangle(t)
	jd, err := Write(src, WriteOptions{Format: FormatGLB})
	if err != nil {
		t.Fatal(err)
	}
	img := jd.JSON.Images[0]
	if img.BufferView == nil {
		t.Fatal("GLB image has no bufferView")
	}
	view := jd.JSON.BufferViews[*img.BufferView]
	if view.ByteOffset%8 != 0 {
		t.Errorf("image bufferView offset %d not 8-byte aligned", view.ByteOffset)
	}
}

func TestWrite_GLBMultiBufferFatal(t *testing.T) {
	d := document.New()
	d.CreateBuffer("a")
	d.CreateBuffer("b")
	if _, err := Write(d, WriteOptions{Format: FormatGLB}); !errors.Is(err, ErrGLBBuffers) {
		t.Errorf("got %v, want ErrGLBBuffers", err)
	}
}

func TestWrite_LayoutEquivalence(t *testing.T) {
	for _, layout := range []VertexLayout{LayoutInterleaved, LayoutSeparate} {
		src := buildTriangle(t)
		jd, err := Write(src, WriteOptions{VertexLayout: layout})
		if err != nil {
			t.Fatalf("layout %v: %v", layout, err)
		}
		got, err := Read(jd, ReadOptions{})
		if err != nil {
			t.Fatalf("layout %v: %v", layout, err)
		}
		prim := got.Root().ListMeshes()[0].ListPrimitives()[0]
		three := make([]float64, 3)
		for i, want := range [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}} {
			e := prim.Attribute("POSITION").GetElement(i, three)
			if e[0] != want[0] || e[1] != want[1] || e[2] != want[2] {
				t.Errorf("layout %v: POSITION %d: got %v, want %v", layout, i, e, want)
			}
		}
		for i := 0; i < 3; i++ {
			e := prim.Attribute("NORMAL").GetElement(i, three)
			if e[0] != 0 || e[1] != 0 || e[2] != 1 {
				t.Errorf("layout %v: NORMAL %d: got %v", layout, i, e)
			}
		}
	}

	// Interleaved layout must share one striped view per primitive.
	jd, err := Write(buildTriangle(t), WriteOptions{VertexLayout: LayoutInterleaved})
	if err != nil {
		t.Fatal(err)
	}
	var posView, nrmView int
	for _, wa := range jd.JSON.Accessors {
		switch wa.Name {
		case "positions":
			posView = *wa.BufferView
		case "normals":
			nrmView = *wa.BufferView
		}
	}
	if posView != nrmView {
		t.Error("interleaved attributes not sharing a view")
	}
	if stride := jd.JSON.BufferViews[posView].ByteStride; stride == nil || *stride != 24 {
		t.Errorf("interleaved stride: %v", stride)
	}
}

func TestRoundTrip_Sparse(t *testing.T) {
	d := document.New()
	buf := d.CreateBuffer("b")
	values := make([]float32, 100)
	values[7] = 1.5
	values[42] = -2
	a := d.CreateAccessor("displacements").
		SetType(document.TypeScalar).
		SetArray(values).
		SetSparse(true)
	a.SetBuffer(buf)

	jd, err := Write(d, WriteOptions{})
	if err != nil {
		t.Fatal(err)
	}
	wa := jd.JSON.Accessors[0]
	if wa.BufferView != nil {
		t.Error("sparse accessor has a dense bufferView")
	}
	if wa.Sparse == nil || wa.Sparse.Count != 2 {
		t.Fatalf("sparse block: %+v", wa.Sparse)
	}
	if wa.Sparse.Indices.ComponentType != 5121 {
		t.Errorf("index type: got %d, want narrowest (5121)", wa.Sparse.Indices.ComponentType)
	}

	got, err := Read(jd, ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	ra := got.Root().ListAccessors()[0]
	if !ra.Sparse() {
		t.Error("sparse flag lost")
	}
	one := make([]float64, 1)
	for i, want := range map[int]float64{0: 0, 7: 1.5, 42: -2, 99: 0} {
		if got := ra.GetElement(i, one)[0]; got != want {
			t.Errorf("element %d: got %v, want %v", i, got, want)
		}
	}
}

func TestWrite_AllZeroSparseElided(t *testing.T) {
	d := document.New()
	buf := d.CreateBuffer("b")
	a := d.CreateAccessor("zeros").
		SetType(document.TypeVec3).
		SetArray(make([]float32, 30)).
		SetSparse(true)
	a.SetBuffer(buf)

	jd, err := Write(d, WriteOptions{})
	if err != nil {
		t.Fatal(err)
	}
	wa := jd.JSON.Accessors[0]
	if wa.Sparse != nil || wa.BufferView != nil {
		t.Error("all-zero sparse accessor must carry neither sparse block nor bufferView")
	}
	if wa.Count != 10 {
		t.Errorf("count: %d", wa.Count)
	}

	got, err := Read(jd, ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got.Root().ListAccessors()[0].Count() != 10 {
		t.Error("zero accessor lost on read-back")
	}
}

func TestWrite_SparseDensityWarning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logger := zap.New(core)

	d := document.New()
	buf := d.CreateBuffer("b")
	dense := []float32{1, 2, 3, 4, 5, 6, 7, 8, 0, 0}
	a := d.CreateAccessor("dense-sparse").
		SetType(document.TypeScalar).
		SetArray(dense).
		SetSparse(true)
	a.SetBuffer(buf)

	if _, err := Write(d, WriteOptions{Logger: logger}); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, entry := range logs.All() {
		if entry.Level == zap.WarnLevel && entry.Message != "" {
			found = true
		}
	}
	if !found {
		t.Error("expected a density warning for an 80% dense sparse accessor")
	}
}

func TestWrite_NoBufferWarningAndZeroData(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	logger := zap.New(core)

	d := document.New()
	d.CreateAccessor("stray").
		SetType(document.TypeScalar).
		SetArray([]float32{1, 2, 3})

	jd, err := Write(d, WriteOptions{Logger: logger})
	if err != nil {
		t.Fatal(err)
	}
	if jd.JSON.Accessors[0].BufferView != nil {
		t.Error("bufferless accessor must not get a view")
	}
	if logs.Len() == 0 {
		t.Error("expected an advisory warning for the bufferless accessor")
	}
}

func TestEncodeJSON_PrunesEmpties(t *testing.T) {
	jd := &JSONDocument{JSON: &GLTF{
		Asset: Asset{Version: "2.0"},
		Scenes: []Scene{{
			Name: "s",
			Extras: map[string]any{
				"emptyString": "",
				"null":        nil,
				"emptyObject": map[string]any{},
				"emptyArray":  []any{},
				"zero":        0.0, // zeros are meaningful and must survive
			},
			Extensions: map[string]any{
				// An empty payload object marks the extension as enabled
				// and must survive the prune.
				"KHR_materials_unlit": map[string]any{},
			},
		}},
	}}
	data, err := EncodeJSON(jd, false)
	if err != nil {
		t.Fatal(err)
	}

	var tree struct {
		Scenes []struct {
			Extras     map[string]any `json:"extras"`
			Extensions map[string]any `json:"extensions"`
		} `json:"scenes"`
	}
	if err := json.Unmarshal(data, &tree); err != nil {
		t.Fatal(err)
	}
	extras := tree.Scenes[0].Extras
	if len(extras) != 1 || extras["zero"] != 0.0 {
		t.Errorf("extras after prune: %v", extras)
	}
	if _, found := tree.Scenes[0].Extensions["KHR_materials_unlit"]; !found {
		t.Error("empty extension payload pruned")
	}
}

func TestRoundTrip_TextureCountStable(t *testing.T) {
	d := document.New()
	tex := d.CreateTexture("albedo").
		SetMimeType(MimePNG).
		SetImage([]byte{0x89, 0x50, 0x4E, 0x47})
	mat := d.CreateMaterial("clamped").SetBaseColorTexture(tex)
	mat.BaseColorTextureInfo().SetWrapS(document.WrapClampToEdge)

	jd, err := Write(d, WriteOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(jd.JSON.Textures) != 1 || len(jd.JSON.Images) != 1 {
		t.Fatalf("first write: %d textures, %d images, want 1 and 1",
			len(jd.JSON.Textures), len(jd.JSON.Images))
	}

	got, err := Read(jd, ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(got.Root().ListTextures()); n != 1 {
		t.Fatalf("after read: %d textures, want 1", n)
	}

	jd2, err := Write(got, WriteOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(jd2.JSON.Textures) != 1 || len(jd2.JSON.Images) != 1 {
		t.Fatalf("second write: %d textures, %d images, want 1 and 1",
			len(jd2.JSON.Textures), len(jd2.JSON.Images))
	}
	if jd2.JSON.Textures[0].Sampler == nil {
		t.Error("sampler settings lost on second write")
	}

	got2, err := Read(jd2, ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(got2.Root().ListTextures()); n != 1 {
		t.Fatalf("after second read: %d textures, want 1", n)
	}
	mat2 := got2.Root().ListMaterials()[0]
	if mat2.BaseColorTextureInfo().WrapS() != document.WrapClampToEdge {
		t.Error("wrapS lost across round trips")
	}
}

func TestWrite_UnreferencedTextureKept(t *testing.T) {
	d := document.New()
	d.CreateTexture("lut").
		SetMimeType(MimePNG).
		SetImage([]byte{1, 2, 3, 4})

	jd, err := Write(d, WriteOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(jd.JSON.Textures) != 1 || len(jd.JSON.Images) != 1 {
		t.Fatalf("got %d textures, %d images, want 1 and 1",
			len(jd.JSON.Textures), len(jd.JSON.Images))
	}

	got, err := Read(jd, ReadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	texs := got.Root().ListTextures()
	if len(texs) != 1 {
		t.Fatalf("after read: %d textures, want 1", len(texs))
	}
	if len(texs[0].Image()) != 4 {
		t.Error("image payload lost")
	}
}
