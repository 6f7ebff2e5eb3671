package gltf

import (
	"encoding/binary"
	"errors"
	"fmt"
	gomath "math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/gltfkit/pkg/document"
	gltfmath "github.com/Faultbox/gltfkit/pkg/math"
)

// Reader errors. All of them are fatal: a document that trips one cannot be
// represented faithfully, so no partial result is returned.
var (
	ErrVersion       = errors.New("gltf: unsupported asset version")
	ErrComponentType = errors.New("gltf: unknown component type")
	ErrElementType   = errors.New("gltf: unknown accessor element type")
	ErrIndexRange    = errors.New("gltf: index out of range")
	ErrMissingBuffer = errors.New("gltf: buffer payload not found")
	ErrSparseIndices = errors.New("gltf: invalid sparse index component type")
	ErrViewBounds    = errors.New("gltf: bufferView exceeds buffer length")
)

// Read decodes a JSONDocument into a Document. Accessor storage is copied
// out of the buffers, so the JSONDocument's resource map may be discarded
// afterwards.
func Read(jd *JSONDocument, opts ReadOptions) (*document.Document, error) {
	version := jd.JSON.Asset.Version
	if !strings.HasPrefix(version, "2.") {
		return nil, fmt.Errorf("%w: %q", ErrVersion, version)
	}

	r := &reader{jd: jd, wire: jd.JSON, doc: document.New(), log: opts.logger()}
	root := r.doc.Root()
	root.SetVersion(version)
	root.SetGenerator(jd.JSON.Asset.Generator)
	root.SetCopyright(jd.JSON.Asset.Copyright)

	stages := []func() error{
		r.readExtensionDeclarations,
		r.readBuffers,
		r.readAccessors,
		r.readTextures,
		r.readMaterials,
		r.readMeshes,
		r.readCamerasAndSkins,
		r.readNodes,
		r.readAnimations,
		r.readScenes,
	}
	for _, stage := range stages {
		if err := stage(); err != nil {
			return nil, err
		}
	}
	return r.doc, nil
}

type reader struct {
	jd   *JSONDocument
	wire *GLTF
	doc  *document.Document
	log  *zap.Logger

	bufferData [][]byte

	buffers   []*document.Buffer
	accessors []*document.Accessor
	textures  []*document.Texture
	materials []*document.Material
	meshes    []*document.Mesh
	cameras   []*document.Camera
	skins     []*document.Skin
	nodes     []*document.Node
	scenes    []*document.Scene

	warned map[string]bool
}

// readExtensionDeclarations registers the document-level extension lists and
// warns once per extension this package has no registered handler for.
func (r *reader) readExtensionDeclarations() error {
	r.warned = map[string]bool{}
	required := map[string]bool{}
	for _, name := range r.wire.ExtensionsRequired {
		required[name] = true
	}
	for _, name := range r.wire.ExtensionsUsed {
		r.doc.CreateExtension(name).SetRequired(required[name])
		r.warnUnregistered(name)
	}
	return nil
}

func (r *reader) warnUnregistered(name string) {
	if Registered(name) || r.warned[name] {
		return
	}
	r.warned[name] = true
	r.log.Warn("no handler registered for extension, payload kept as raw fields",
		zap.String("extension", name))
}

func (r *reader) readBuffers() error {
	for i, wb := range r.wire.Buffers {
		data, err := r.resolveBufferData(wb)
		if err != nil {
			return fmt.Errorf("buffer %d: %w", i, err)
		}
		r.bufferData = append(r.bufferData, data)

		b := r.doc.CreateBuffer(wb.Name)
		if !isDataURI(wb.URI) {
			b.SetURI(wb.URI)
		}
		r.applyCommon(b, wb.Extensions, wb.Extras)
		r.buffers = append(r.buffers, b)
	}
	return nil
}

func (r *reader) resolveBufferData(wb Buffer) ([]byte, error) {
	switch {
	case wb.ByteLength == 0 && wb.URI == "":
		// A buffer that packed no bytes is written with neither URI nor
		// payload; it is empty data, not a missing GLB chunk.
		return nil, nil
	case wb.URI == "":
		data, found := r.jd.Resources[GLBBufferKey]
		if !found {
			return nil, fmt.Errorf("%w: GLB binary chunk", ErrMissingBuffer)
		}
		return data, nil
	case isDataURI(wb.URI):
		return decodeDataURI(wb.URI)
	default:
		data, found := r.jd.Resources[wb.URI]
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrMissingBuffer, wb.URI)
		}
		return data, nil
	}
}

func (r *reader) readAccessors() error {
	for i, wa := range r.wire.Accessors {
		a, err := r.readAccessor(wa)
		if err != nil {
			return fmt.Errorf("accessor %d: %w", i, err)
		}
		r.accessors = append(r.accessors, a)
	}
	return nil
}

func (r *reader) readAccessor(wa Accessor) (*document.Accessor, error) {
	comps := elementComponentCount(wa.Type)
	if comps == 0 {
		return nil, fmt.Errorf("%w: %q", ErrElementType, wa.Type)
	}
	compSize := componentByteSize(wa.ComponentType)
	if compSize == 0 {
		return nil, fmt.Errorf("%w: %d", ErrComponentType, wa.ComponentType)
	}
	// An accessor with neither bufferView nor sparse data is zero-filled.
	// The writer emits this shape for sparse accessors whose every element
	// is zero.
	array, err := newArray(wa.ComponentType, wa.Count*comps)
	if err != nil {
		return nil, err
	}

	bufferIndex := -1
	if wa.BufferView != nil {
		view, err := r.view(*wa.BufferView)
		if err != nil {
			return nil, err
		}
		data, err := r.viewData(view)
		if err != nil {
			return nil, err
		}
		stride := comps * compSize
		if view.ByteStride != nil {
			stride = *view.ByteStride
		}
		if err := copyElements(array, data, wa.ByteOffset, wa.Count, comps, compSize, stride, wa.ComponentType); err != nil {
			return nil, err
		}
		bufferIndex = view.Buffer
	}

	if wa.Sparse != nil {
		bi, err := r.overlaySparse(array, wa, comps, compSize)
		if err != nil {
			return nil, err
		}
		if bufferIndex < 0 {
			bufferIndex = bi
		}
	}

	a := r.doc.CreateAccessor(wa.Name).
		SetType(document.AccessorType(wa.Type)).
		SetNormalized(wa.Normalized).
		SetSparse(wa.Sparse != nil).
		SetArray(array)
	if bufferIndex >= 0 {
		b, err := index(r.buffers, bufferIndex, "buffer")
		if err != nil {
			return nil, err
		}
		a.SetBuffer(b)
	}
	r.applyCommon(a, wa.Extensions, wa.Extras)
	return a, nil
}

// overlaySparse substitutes the sparse values into the base array and
// returns the buffer index backing the values view.
func (r *reader) overlaySparse(array any, wa Accessor, comps, compSize int) (int, error) {
	sp := wa.Sparse

	iv, err := r.view(sp.Indices.BufferView)
	if err != nil {
		return 0, err
	}
	idata, err := r.viewData(iv)
	if err != nil {
		return 0, err
	}
	indices, err := readSparseIndices(idata, sp.Indices.ByteOffset, sp.Count, sp.Indices.ComponentType)
	if err != nil {
		return 0, err
	}

	vv, err := r.view(sp.Values.BufferView)
	if err != nil {
		return 0, err
	}
	vdata, err := r.viewData(vv)
	if err != nil {
		return 0, err
	}
	values, err := newArray(wa.ComponentType, sp.Count*comps)
	if err != nil {
		return 0, err
	}
	if err := copyElements(values, vdata, sp.Values.ByteOffset, sp.Count, comps, compSize, comps*compSize, wa.ComponentType); err != nil {
		return 0, err
	}

	for n, elem := range indices {
		if elem >= wa.Count {
			return 0, fmt.Errorf("%w: sparse index %d of %d elements", ErrIndexRange, elem, wa.Count)
		}
		copyArrayRange(array, elem*comps, values, n*comps, comps)
	}
	return vv.Buffer, nil
}

// readTextures keys document textures by image source: wire textures that
// differ only in sampler settings collapse to one texture, so no two end up
// holding identical image payloads. Sampler settings move to the TextureInfo
// of each referencing material slot.
func (r *reader) readTextures() error {
	byImage := map[int]*document.Texture{}
	for i, wt := range r.wire.Textures {
		if wt.Source != nil {
			if t, found := byImage[*wt.Source]; found {
				r.textures = append(r.textures, t)
				continue
			}
		}
		t := r.doc.CreateTexture(wt.Name)
		if wt.Source != nil {
			img, err := index(r.wire.Images, *wt.Source, "image")
			if err != nil {
				return fmt.Errorf("texture %d: %w", i, err)
			}
			if err := r.applyImage(t, img); err != nil {
				return fmt.Errorf("texture %d: %w", i, err)
			}
			byImage[*wt.Source] = t
		}
		r.applyCommon(t, wt.Extensions, wt.Extras)
		r.textures = append(r.textures, t)
	}
	return nil
}

func (r *reader) applyImage(t *document.Texture, img Image) error {
	t.SetMimeType(img.MimeType)
	switch {
	case img.BufferView != nil:
		view, err := r.view(*img.BufferView)
		if err != nil {
			return err
		}
		data, err := r.viewData(view)
		if err != nil {
			return err
		}
		t.SetImage(append([]byte(nil), data...))
	case isDataURI(img.URI):
		data, err := decodeDataURI(img.URI)
		if err != nil {
			return err
		}
		t.SetImage(data)
	case img.URI != "":
		t.SetURI(img.URI)
		if data, found := r.jd.Resources[img.URI]; found {
			t.SetImage(append([]byte(nil), data...))
		}
	}
	return nil
}

func (r *reader) readMaterials() error {
	for i, wm := range r.wire.Materials {
		m, err := r.readMaterial(wm)
		if err != nil {
			return fmt.Errorf("material %d: %w", i, err)
		}
		r.materials = append(r.materials, m)
	}
	return nil
}

func (r *reader) readMaterial(wm Material) (*document.Material, error) {
	m := r.doc.CreateMaterial(wm.Name)
	if wm.AlphaMode != "" {
		m.SetAlphaMode(wm.AlphaMode)
	}
	if wm.AlphaCutoff != nil {
		m.SetAlphaCutoff(*wm.AlphaCutoff)
	}
	m.SetDoubleSided(wm.DoubleSided)
	if wm.EmissiveFactor != nil {
		m.SetEmissiveFactor(*wm.EmissiveFactor)
	}

	if pbr := wm.PBRMetallicRoughness; pbr != nil {
		if pbr.BaseColorFactor != nil {
			m.SetBaseColorFactor(*pbr.BaseColorFactor)
		}
		if pbr.MetallicFactor != nil {
			m.SetMetallicFactor(*pbr.MetallicFactor)
		}
		if pbr.RoughnessFactor != nil {
			m.SetRoughnessFactor(*pbr.RoughnessFactor)
		}
		if pbr.BaseColorTexture != nil {
			if err := r.bindSlot(pbr.BaseColorTexture.Index, pbr.BaseColorTexture.TexCoord,
				m.SetBaseColorTexture, m.BaseColorTextureInfo); err != nil {
				return nil, err
			}
		}
		if pbr.MetallicRoughnessTexture != nil {
			if err := r.bindSlot(pbr.MetallicRoughnessTexture.Index, pbr.MetallicRoughnessTexture.TexCoord,
				m.SetMetallicRoughnessTexture, m.MetallicRoughnessTextureInfo); err != nil {
				return nil, err
			}
		}
	}
	if wm.NormalTexture != nil {
		if err := r.bindSlot(wm.NormalTexture.Index, wm.NormalTexture.TexCoord,
			m.SetNormalTexture, m.NormalTextureInfo); err != nil {
			return nil, err
		}
		if wm.NormalTexture.Scale != nil {
			m.SetNormalScale(*wm.NormalTexture.Scale)
		}
	}
	if wm.OcclusionTexture != nil {
		if err := r.bindSlot(wm.OcclusionTexture.Index, wm.OcclusionTexture.TexCoord,
			m.SetOcclusionTexture, m.OcclusionTextureInfo); err != nil {
			return nil, err
		}
		if wm.OcclusionTexture.Strength != nil {
			m.SetOcclusionStrength(*wm.OcclusionTexture.Strength)
		}
	}
	if wm.EmissiveTexture != nil {
		if err := r.bindSlot(wm.EmissiveTexture.Index, wm.EmissiveTexture.TexCoord,
			m.SetEmissiveTexture, m.EmissiveTextureInfo); err != nil {
			return nil, err
		}
	}
	r.applyCommon(m, wm.Extensions, wm.Extras)
	return m, nil
}

// bindSlot binds one material texture slot and transfers texCoord plus the
// wire sampler settings onto the slot's TextureInfo.
func (r *reader) bindSlot(texIndex, texCoord int,
	set func(*document.Texture) *document.Material,
	info func() *document.TextureInfo) error {

	t, err := index(r.textures, texIndex, "texture")
	if err != nil {
		return err
	}
	set(t)
	ti := info()
	ti.SetTexCoord(texCoord)

	wt := r.wire.Textures[texIndex]
	if wt.Sampler == nil {
		return nil
	}
	s, err := index(r.wire.Samplers, *wt.Sampler, "sampler")
	if err != nil {
		return err
	}
	ti.SetMagFilter(s.MagFilter)
	ti.SetMinFilter(s.MinFilter)
	if s.WrapS != nil {
		ti.SetWrapS(*s.WrapS)
	}
	if s.WrapT != nil {
		ti.SetWrapT(*s.WrapT)
	}
	return nil
}

func (r *reader) readMeshes() error {
	for i, wm := range r.wire.Meshes {
		m := r.doc.CreateMesh(wm.Name)
		m.SetWeights(wm.Weights)
		for _, wp := range wm.Primitives {
			p, err := r.readPrimitive(wp)
			if err != nil {
				return fmt.Errorf("mesh %d: %w", i, err)
			}
			m.AddPrimitive(p)
		}
		r.applyCommon(m, wm.Extensions, wm.Extras)
		r.meshes = append(r.meshes, m)
	}
	return nil
}

func (r *reader) readPrimitive(wp Primitive) (*document.Primitive, error) {
	p := r.doc.CreatePrimitive()
	if wp.Mode != nil {
		p.SetMode(*wp.Mode)
	}
	for _, semantic := range sortedKeys(wp.Attributes) {
		a, err := index(r.accessors, wp.Attributes[semantic], "accessor")
		if err != nil {
			return nil, err
		}
		p.SetAttribute(semantic, a)
	}
	if wp.Indices != nil {
		a, err := index(r.accessors, *wp.Indices, "accessor")
		if err != nil {
			return nil, err
		}
		p.SetIndices(a)
	}
	if wp.Material != nil {
		m, err := index(r.materials, *wp.Material, "material")
		if err != nil {
			return nil, err
		}
		p.SetMaterial(m)
	}
	for _, wt := range wp.Targets {
		t := r.doc.CreatePrimitiveTarget("")
		for _, semantic := range sortedKeys(wt) {
			a, err := index(r.accessors, wt[semantic], "accessor")
			if err != nil {
				return nil, err
			}
			t.SetAttribute(semantic, a)
		}
		p.AddTarget(t)
	}
	r.applyCommon(p, wp.Extensions, wp.Extras)
	return p, nil
}

// readCamerasAndSkins creates cameras fully and skins partially; joints and
// skeletons reference nodes and are wired after the node pass.
func (r *reader) readCamerasAndSkins() error {
	for _, wc := range r.wire.Cameras {
		c := r.doc.CreateCamera(wc.Name).SetType(wc.Type)
		if p := wc.Perspective; p != nil {
			c.SetYFov(p.YFov).SetZNear(p.ZNear)
			if p.ZFar != nil {
				c.SetZFar(*p.ZFar)
			}
			if p.AspectRatio != nil {
				c.SetAspectRatio(*p.AspectRatio)
			}
		}
		if o := wc.Orthographic; o != nil {
			c.SetXMag(o.XMag).SetYMag(o.YMag).SetZNear(o.ZNear).SetZFar(o.ZFar)
		}
		r.applyCommon(c, wc.Extensions, wc.Extras)
		r.cameras = append(r.cameras, c)
	}

	for i, ws := range r.wire.Skins {
		s := r.doc.CreateSkin(ws.Name)
		if ws.InverseBindMatrices != nil {
			a, err := index(r.accessors, *ws.InverseBindMatrices, "accessor")
			if err != nil {
				return fmt.Errorf("skin %d: %w", i, err)
			}
			s.SetInverseBindMatrices(a)
		}
		r.applyCommon(s, ws.Extensions, ws.Extras)
		r.skins = append(r.skins, s)
	}
	return nil
}

// readNodes runs two passes: the first creates every node with its local
// attributes, the second wires the hierarchy. Skin joints follow once every
// node exists.
func (r *reader) readNodes() error {
	for _, wn := range r.wire.Nodes {
		n := r.doc.CreateNode(wn.Name)
		switch {
		case wn.Matrix != nil:
			n.SetMatrix(gltfmath.Mat4(*wn.Matrix))
		default:
			if wn.Translation != nil {
				n.SetTranslation(*wn.Translation)
			}
			if wn.Rotation != nil {
				n.SetRotation(*wn.Rotation)
			}
			if wn.Scale != nil {
				n.SetScale(*wn.Scale)
			}
		}
		n.SetWeights(wn.Weights)
		r.applyCommon(n, wn.Extensions, wn.Extras)
		r.nodes = append(r.nodes, n)
	}

	for i, wn := range r.wire.Nodes {
		n := r.nodes[i]
		for _, ci := range wn.Children {
			c, err := index(r.nodes, ci, "node")
			if err != nil {
				return fmt.Errorf("node %d: %w", i, err)
			}
			n.AddChild(c)
		}
		if wn.Mesh != nil {
			m, err := index(r.meshes, *wn.Mesh, "mesh")
			if err != nil {
				return fmt.Errorf("node %d: %w", i, err)
			}
			n.SetMesh(m)
		}
		if wn.Camera != nil {
			c, err := index(r.cameras, *wn.Camera, "camera")
			if err != nil {
				return fmt.Errorf("node %d: %w", i, err)
			}
			n.SetCamera(c)
		}
		if wn.Skin != nil {
			s, err := index(r.skins, *wn.Skin, "skin")
			if err != nil {
				return fmt.Errorf("node %d: %w", i, err)
			}
			n.SetSkin(s)
		}
	}

	for i, ws := range r.wire.Skins {
		s := r.skins[i]
		for _, ji := range ws.Joints {
			j, err := index(r.nodes, ji, "node")
			if err != nil {
				return fmt.Errorf("skin %d: %w", i, err)
			}
			s.AddJoint(j)
		}
		if ws.Skeleton != nil {
			sk, err := index(r.nodes, *ws.Skeleton, "node")
			if err != nil {
				return fmt.Errorf("skin %d: %w", i, err)
			}
			s.SetSkeleton(sk)
		}
	}
	return nil
}

func (r *reader) readAnimations() error {
	for i, wa := range r.wire.Animations {
		anim := r.doc.CreateAnimation(wa.Name)

		samplers := make([]*document.AnimationSampler, len(wa.Samplers))
		for j, ws := range wa.Samplers {
			s := r.doc.CreateAnimationSampler()
			if ws.Interpolation != "" {
				s.SetInterpolation(ws.Interpolation)
			}
			in, err := index(r.accessors, ws.Input, "accessor")
			if err != nil {
				return fmt.Errorf("animation %d: %w", i, err)
			}
			out, err := index(r.accessors, ws.Output, "accessor")
			if err != nil {
				return fmt.Errorf("animation %d: %w", i, err)
			}
			s.SetInput(in).SetOutput(out)
			samplers[j] = s
			anim.AddSampler(s)
		}

		for _, wc := range wa.Channels {
			c := r.doc.CreateAnimationChannel().SetTargetPath(wc.Target.Path)
			s, err := index(samplers, wc.Sampler, "animation sampler")
			if err != nil {
				return fmt.Errorf("animation %d: %w", i, err)
			}
			c.SetSampler(s)
			if wc.Target.Node != nil {
				n, err := index(r.nodes, *wc.Target.Node, "node")
				if err != nil {
					return fmt.Errorf("animation %d: %w", i, err)
				}
				c.SetTargetNode(n)
			}
			anim.AddChannel(c)
		}
		r.applyCommon(anim, wa.Extensions, wa.Extras)
	}
	return nil
}

func (r *reader) readScenes() error {
	for i, ws := range r.wire.Scenes {
		s := r.doc.CreateScene(ws.Name)
		for _, ni := range ws.Nodes {
			n, err := index(r.nodes, ni, "node")
			if err != nil {
				return fmt.Errorf("scene %d: %w", i, err)
			}
			s.AddChild(n)
		}
		r.applyCommon(s, ws.Extensions, ws.Extras)
		r.scenes = append(r.scenes, s)
	}
	if r.wire.Scene != nil {
		s, err := index(r.scenes, *r.wire.Scene, "scene")
		if err != nil {
			return err
		}
		r.doc.Root().SetDefaultScene(s)
	}
	return nil
}

// applyCommon transfers extras and per-property extension payloads.
func (r *reader) applyCommon(p document.Property, ext map[string]any, extras map[string]any) {
	if len(extras) > 0 {
		p.SetExtras(extras)
	}
	for name, payload := range ext {
		r.warnUnregistered(name)
		e := r.doc.CreateExtension(name)
		ep := e.CreateProperty(name, p.Kind())
		if fields, ok := payload.(map[string]any); ok {
			ep.SetFields(fields)
		}
		if err := document.AttachExtension(p, ep); err != nil {
			// Root-level attachment is structurally impossible here; keep
			// the raw payload in extras rather than dropping it.
			r.log.Warn("could not attach extension payload", zap.String("extension", name), zap.Error(err))
		}
	}
}

func (r *reader) view(i int) (BufferView, error) {
	return index(r.wire.BufferViews, i, "bufferView")
}

// viewData returns the byte window a view covers within its buffer.
func (r *reader) viewData(view BufferView) ([]byte, error) {
	data, err := index(r.bufferData, view.Buffer, "buffer")
	if err != nil {
		return nil, err
	}
	end := view.ByteOffset + view.ByteLength
	if end > len(data) {
		return nil, fmt.Errorf("%w: [%d:%d] of %d bytes", ErrViewBounds, view.ByteOffset, end, len(data))
	}
	return data[view.ByteOffset:end], nil
}

func index[T any](list []T, i int, what string) (T, error) {
	if i < 0 || i >= len(list) {
		var zero T
		return zero, fmt.Errorf("%w: %s %d of %d", ErrIndexRange, what, i, len(list))
	}
	return list[i], nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// newArray allocates typed storage for a component type.
func newArray(componentType, n int) (any, error) {
	switch componentType {
	case 5120:
		return make([]int8, n), nil
	case 5121:
		return make([]uint8, n), nil
	case 5122:
		return make([]int16, n), nil
	case 5123:
		return make([]uint16, n), nil
	case 5124:
		return make([]int32, n), nil
	case 5125:
		return make([]uint32, n), nil
	case 5126:
		return make([]float32, n), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrComponentType, componentType)
}

// copyElements copies count elements of comps components each out of a
// possibly strided byte window into tightly packed typed storage.
func copyElements(dst any, buf []byte, byteOffset, count, comps, compSize, stride, componentType int) error {
	need := byteOffset
	if count > 0 {
		need += (count-1)*stride + comps*compSize
	}
	if need > len(buf) {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrViewBounds, need, len(buf))
	}

	switch dst := dst.(type) {
	case []int8:
		for i := 0; i < count; i++ {
			base := byteOffset + i*stride
			for c := 0; c < comps; c++ {
				dst[i*comps+c] = int8(buf[base+c])
			}
		}
	case []uint8:
		for i := 0; i < count; i++ {
			base := byteOffset + i*stride
			copy(dst[i*comps:(i+1)*comps], buf[base:base+comps])
		}
	case []int16:
		for i := 0; i < count; i++ {
			base := byteOffset + i*stride
			for c := 0; c < comps; c++ {
				dst[i*comps+c] = int16(binary.LittleEndian.Uint16(buf[base+c*2:]))
			}
		}
	case []uint16:
		for i := 0; i < count; i++ {
			base := byteOffset + i*stride
			for c := 0; c < comps; c++ {
				dst[i*comps+c] = binary.LittleEndian.Uint16(buf[base+c*2:])
			}
		}
	case []int32:
		for i := 0; i < count; i++ {
			base := byteOffset + i*stride
			for c := 0; c < comps; c++ {
				dst[i*comps+c] = int32(binary.LittleEndian.Uint32(buf[base+c*4:]))
			}
		}
	case []uint32:
		for i := 0; i < count; i++ {
			base := byteOffset + i*stride
			for c := 0; c < comps; c++ {
				dst[i*comps+c] = binary.LittleEndian.Uint32(buf[base+c*4:])
			}
		}
	case []float32:
		for i := 0; i < count; i++ {
			base := byteOffset + i*stride
			for c := 0; c < comps; c++ {
				dst[i*comps+c] = gomath.Float32frombits(binary.LittleEndian.Uint32(buf[base+c*4:]))
			}
		}
	default:
		return fmt.Errorf("%w: %d", ErrComponentType, componentType)
	}
	return nil
}

// copyArrayRange copies n components between two same-typed arrays.
func copyArrayRange(dst any, dstOff int, src any, srcOff, n int) {
	switch dst := dst.(type) {
	case []int8:
		copy(dst[dstOff:dstOff+n], src.([]int8)[srcOff:srcOff+n])
	case []uint8:
		copy(dst[dstOff:dstOff+n], src.([]uint8)[srcOff:srcOff+n])
	case []int16:
		copy(dst[dstOff:dstOff+n], src.([]int16)[srcOff:srcOff+n])
	case []uint16:
		copy(dst[dstOff:dstOff+n], src.([]uint16)[srcOff:srcOff+n])
	case []int32:
		copy(dst[dstOff:dstOff+n], src.([]int32)[srcOff:srcOff+n])
	case []uint32:
		copy(dst[dstOff:dstOff+n], src.([]uint32)[srcOff:srcOff+n])
	case []float32:
		copy(dst[dstOff:dstOff+n], src.([]float32)[srcOff:srcOff+n])
	}
}

// readSparseIndices decodes a sparse index list; only the three unsigned
// component types are legal.
func readSparseIndices(buf []byte, byteOffset, count, componentType int) ([]int, error) {
	out := make([]int, count)
	switch componentType {
	case 5121:
		if byteOffset+count > len(buf) {
			return nil, ErrViewBounds
		}
		for i := range out {
			out[i] = int(buf[byteOffset+i])
		}
	case 5123:
		if byteOffset+count*2 > len(buf) {
			return nil, ErrViewBounds
		}
		for i := range out {
			out[i] = int(binary.LittleEndian.Uint16(buf[byteOffset+i*2:]))
		}
	case 5125:
		if byteOffset+count*4 > len(buf) {
			return nil, ErrViewBounds
		}
		for i := range out {
			out[i] = int(binary.LittleEndian.Uint32(buf[byteOffset+i*4:]))
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrSparseIndices, componentType)
	}
	return out, nil
}
