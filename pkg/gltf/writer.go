package gltf

import (
	"encoding/binary"
	"errors"
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/gltfkit/pkg/document"
)

// Writer errors.
var (
	ErrGLBBuffers  = errors.New("gltf: GLB output supports at most one buffer")
	ErrBadAccessor = errors.New("gltf: accessor failed validation")
)

// sparseDensityWarning is the non-zero element density above which sparse
// encoding grows past its dense equivalent.
const sparseDensityWarning = 0.5

// Write encodes a Document into a JSONDocument. The input document is not
// modified. On error no partial output is returned.
func Write(doc *document.Document, opts WriteOptions) (*JSONDocument, error) {
	w := &writer{
		doc:  doc,
		opts: opts,
		log:  opts.logger(),
		json: &GLTF{},
		res:  map[string][]byte{},
		keys: newKeyGenerator(opts.KeyRetries),

		accessorIndex: map[*document.Accessor]int{},
		materialIndex: map[*document.Material]int{},
		meshIndex:     map[*document.Mesh]int{},
		cameraIndex:   map[*document.Camera]int{},
		skinIndex:     map[*document.Skin]int{},
		nodeIndex:     map[*document.Node]int{},
		sceneIndex:    map[*document.Scene]int{},
		imageIndex:    map[*document.Texture]int{},
		textureIndex:  map[string]int{},
		texturedImage: map[int]bool{},
		samplerIndex:  map[string]int{},
		bufferIndex:   map[*document.Buffer]int{},
	}

	stages := []func() error{
		w.writeAsset,
		w.writeExtensionDeclarations,
		w.writeImages,
		w.classifyAccessors,
		w.packBuffers,
		w.writeMaterials,
		w.writeTextures,
		w.writeMeshes,
		w.writeCameras,
		w.writeNodes,
		w.writeSkins,
		w.wireNodes,
		w.writeAnimations,
		w.writeScenes,
		w.finalizeBuffers,
	}
	for _, stage := range stages {
		if err := stage(); err != nil {
			return nil, err
		}
	}
	return &JSONDocument{JSON: w.json, Resources: w.res}, nil
}

type accessorUsage int

const (
	usageOther accessorUsage = iota
	usageVertex
	usageIndices
	usageIBM
)

type accessorPlan struct {
	usage       accessorUsage
	group       int // vertex group, -1 outside usageVertex
	needsBounds bool
	skipped     bool // no assigned buffer
}

type writer struct {
	doc  *document.Document
	opts WriteOptions
	log  *zap.Logger

	json *GLTF
	res  map[string][]byte
	keys *keyGenerator

	accessorIndex map[*document.Accessor]int
	materialIndex map[*document.Material]int
	meshIndex     map[*document.Mesh]int
	cameraIndex   map[*document.Camera]int
	skinIndex     map[*document.Skin]int
	nodeIndex     map[*document.Node]int
	sceneIndex    map[*document.Scene]int
	imageIndex    map[*document.Texture]int
	textureIndex  map[string]int // (image, sampler) signature -> wire texture
	texturedImage map[int]bool   // wire images referenced by some wire texture
	samplerIndex  map[string]int
	bufferIndex   map[*document.Buffer]int

	accessors []*document.Accessor
	plans     []accessorPlan
	groups    [][]*document.Accessor

	bufferData [][]byte
	glbImages  []int // wire image indices awaiting a GLB bufferView
}

func (w *writer) writeAsset() error {
	root := w.doc.Root()
	w.json.Asset = Asset{
		Version:   root.Version(),
		Generator: root.Generator(),
		Copyright: root.Copyright(),
	}
	return nil
}

func (w *writer) writeExtensionDeclarations() error {
	for _, e := range w.doc.Root().ListExtensions() {
		w.json.ExtensionsUsed = append(w.json.ExtensionsUsed, e.ExtensionName())
		if e.Required() {
			w.json.ExtensionsRequired = append(w.json.ExtensionsRequired, e.ExtensionName())
		}
		if !Registered(e.ExtensionName()) {
			w.log.Warn("no handler registered for extension, writing raw fields",
				zap.String("extension", e.ExtensionName()))
		}
	}
	return nil
}

// writeImages emits one wire image per document texture. Wire textures over
// those images are created lazily, one per distinct (image, sampler settings)
// pair, as material slots reference them.
func (w *writer) writeImages() error {
	for _, t := range w.doc.Root().ListTextures() {
		img := Image{
			Name:     t.Name(),
			MimeType: t.MimeType(),
			Extras:   t.Extras(),
		}
		imgIndex := len(w.json.Images)

		switch {
		case t.Image() == nil:
			img.URI = t.URI()
		case w.opts.Format == FormatGLB:
			// Payload goes into the binary chunk; the view index is known
			// only after packing.
			w.glbImages = append(w.glbImages, imgIndex)
		default:
			key := t.URI()
			if key == "" {
				key = w.keys.next(t.Name(), extensionForMime(t.MimeType()))
			} else {
				w.keys.reserve(key)
			}
			w.res[key] = t.Image()
			img.URI = key
		}

		w.json.Images = append(w.json.Images, img)
		w.imageIndex[t] = imgIndex
	}
	return nil
}

// writeTextures backfills a wire texture for every document texture no
// material slot referenced, so its image survives a round trip.
func (w *writer) writeTextures() error {
	for _, t := range w.doc.Root().ListTextures() {
		imgIndex := w.imageIndex[t]
		if w.texturedImage[imgIndex] {
			continue
		}
		w.texturedImage[imgIndex] = true
		w.textureIndex[textureSignature(imgIndex, -1)] = len(w.json.Textures)
		w.json.Textures = append(w.json.Textures, Texture{
			Name:       t.Name(),
			Source:     intPtr(imgIndex),
			Extensions: w.extensionMap(t),
		})
	}
	return nil
}

// classifyAccessors assigns every accessor exactly one usage and, for vertex
// attributes, a packing group keyed by the first referencing primitive.
func (w *writer) classifyAccessors() error {
	root := w.doc.Root()
	w.accessors = root.ListAccessors()
	w.plans = make([]accessorPlan, len(w.accessors))
	for i, a := range w.accessors {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrBadAccessor, a.Name(), err)
		}
		w.accessorIndex[a] = i
		w.plans[i] = accessorPlan{group: -1}
	}

	assign := func(a *document.Accessor, u accessorUsage, group int) {
		p := &w.plans[w.accessorIndex[a]]
		if p.usage != usageOther {
			return // first classification wins
		}
		p.usage = u
		p.group = group
	}

	for _, m := range root.ListMeshes() {
		for _, prim := range m.ListPrimitives() {
			gid := len(w.groups)
			var members []*document.Accessor
			addVertex := func(a *document.Accessor) {
				if w.plans[w.accessorIndex[a]].usage == usageOther {
					members = append(members, a)
				}
				assign(a, usageVertex, gid)
			}
			for _, a := range prim.ListAttributes() {
				addVertex(a)
			}
			for _, t := range prim.ListTargets() {
				for _, a := range t.ListAttributes() {
					addVertex(a)
				}
			}
			if len(members) > 0 {
				w.groups = append(w.groups, members)
			}
			if idx := prim.Indices(); idx != nil {
				assign(idx, usageIndices, -1)
			}
		}
	}
	for _, s := range root.ListSkins() {
		if ibm := s.InverseBindMatrices(); ibm != nil {
			assign(ibm, usageIBM, -1)
		}
	}
	for _, anim := range root.ListAnimations() {
		for _, s := range anim.ListSamplers() {
			if in := s.Input(); in != nil {
				w.plans[w.accessorIndex[in]].needsBounds = true
			}
		}
	}
	return nil
}

// packBuffers stages every accessor's bytes into per-buffer byte blobs and
// emits buffer views plus the wire accessor entries. GLB image payloads are
// appended last, 8-byte aligned.
func (w *writer) packBuffers() error {
	root := w.doc.Root()
	docBuffers := root.ListBuffers()
	if w.opts.Format == FormatGLB && len(docBuffers) > 1 {
		return ErrGLBBuffers
	}

	bufferCount := len(docBuffers)
	if bufferCount == 0 && (len(w.accessors) > 0 || len(w.glbImages) > 0) {
		bufferCount = 1
	}
	w.bufferData = make([][]byte, bufferCount)
	w.json.Buffers = make([]Buffer, bufferCount)
	for i, b := range docBuffers {
		w.bufferIndex[b] = i
		w.json.Buffers[i] = Buffer{Name: b.Name(), Extras: b.Extras()}
	}

	// Wire accessor entries exist before packing so strategies can fill in
	// view references by index.
	w.json.Accessors = make([]Accessor, len(w.accessors))
	for i, a := range w.accessors {
		wa := Accessor{
			Name:          a.Name(),
			ComponentType: int(a.ComponentType()),
			Count:         a.Count(),
			Type:          string(a.Type()),
			Normalized:    a.Normalized(),
			Extensions:    w.extensionMap(a),
			Extras:        a.Extras(),
		}
		p := w.plans[i]
		if (p.usage == usageVertex || p.needsBounds) && a.Count() > 0 {
			comps := a.Type().ElementSize()
			min := make([]float64, comps)
			max := make([]float64, comps)
			a.Min(min)
			a.Max(max)
			wa.Min = min
			wa.Max = max
		}
		w.json.Accessors[i] = wa

		if a.Buffer() == nil && !a.Sparse() {
			w.plans[i].skipped = true
			w.log.Warn("accessor has no buffer assigned, writing it without data",
				zap.String("accessor", a.Name()))
		}
	}

	for bi := range w.bufferData {
		var indices, ibms, others, sparse []*document.Accessor
		groupInBuffer := map[int]bool{}
		for i, a := range w.accessors {
			p := w.plans[i]
			if p.skipped || w.accessorBuffer(a) != bi {
				continue
			}
			switch {
			case a.Sparse():
				sparse = append(sparse, a)
			case p.usage == usageIndices:
				indices = append(indices, a)
			case p.usage == usageVertex:
				groupInBuffer[p.group] = true
			case p.usage == usageIBM:
				ibms = append(ibms, a)
			default:
				others = append(others, a)
			}
		}

		w.packSequential(bi, indices, intPtr(TargetElementArrayBuffer))
		for gid, members := range w.groups {
			if !groupInBuffer[gid] {
				continue
			}
			var dense []*document.Accessor
			for _, a := range members {
				if !a.Sparse() && !w.plans[w.accessorIndex[a]].skipped && w.accessorBuffer(a) == bi {
					dense = append(dense, a)
				}
			}
			if w.opts.VertexLayout == LayoutInterleaved {
				w.packInterleaved(bi, dense)
			} else {
				for _, a := range dense {
					w.packSequential(bi, []*document.Accessor{a}, intPtr(TargetArrayBuffer))
				}
			}
		}
		w.packSequential(bi, ibms, nil)
		w.packSequential(bi, others, nil)
		w.packSparse(bi, sparse)
	}

	w.packGLBImages()
	return nil
}

// accessorBuffer maps an accessor to its output buffer index. Sparse
// accessors without an explicit buffer fall back to buffer 0.
func (w *writer) accessorBuffer(a *document.Accessor) int {
	if b := a.Buffer(); b != nil {
		return w.bufferIndex[b]
	}
	return 0
}

func (w *writer) newView(buffer, offset, length int, stride, target *int) int {
	idx := len(w.json.BufferViews)
	w.json.BufferViews = append(w.json.BufferViews, BufferView{
		Buffer:     buffer,
		ByteOffset: offset,
		ByteLength: length,
		ByteStride: stride,
		Target:     target,
	})
	return idx
}

// packSequential concatenates accessors end-to-end into one view, each
// accessor's bytes padded to 4 bytes.
func (w *writer) packSequential(bi int, accs []*document.Accessor, target *int) {
	if len(accs) == 0 {
		return
	}
	data := padTo(w.bufferData[bi], 4)
	viewStart := len(data)
	view := w.newView(bi, viewStart, 0, nil, target)

	for _, a := range accs {
		offset := len(data) - viewStart
		data = append(data, encodeDense(a)...)
		data = padTo(data, 4)

		wa := &w.json.Accessors[w.accessorIndex[a]]
		wa.BufferView = intPtr(view)
		wa.ByteOffset = offset
	}
	w.json.BufferViews[view].ByteLength = len(data) - viewStart
	w.bufferData[bi] = data
}

// packInterleaved lays a vertex group out as one striped view. The stride is
// the sum of every member's element size, each padded to 4 bytes.
func (w *writer) packInterleaved(bi int, accs []*document.Accessor) {
	if len(accs) == 0 {
		return
	}
	stride := 0
	offsets := make([]int, len(accs))
	maxCount := 0
	for i, a := range accs {
		offsets[i] = stride
		stride += pad4(a.Type().ElementSize() * a.ComponentType().ByteSize())
		if a.Count() > maxCount {
			maxCount = a.Count()
		}
	}

	data := padTo(w.bufferData[bi], 4)
	viewStart := len(data)
	data = append(data, make([]byte, stride*maxCount)...)
	view := w.newView(bi, viewStart, stride*maxCount, intPtr(stride), intPtr(TargetArrayBuffer))

	for i, a := range accs {
		comps := a.Type().ElementSize()
		compSize := a.ComponentType().ByteSize()
		array := a.Array()
		for elem := 0; elem < a.Count(); elem++ {
			base := viewStart + elem*stride + offsets[i]
			for c := 0; c < comps; c++ {
				putComponentLE(data[base+c*compSize:], array, elem*comps+c)
			}
		}
		wa := &w.json.Accessors[w.accessorIndex[a]]
		wa.BufferView = intPtr(view)
		wa.ByteOffset = offsets[i]
	}
	w.bufferData[bi] = data
}

// packSparse emits one shared indices view and one shared values view for
// all sparse accessors of a buffer. Elements equal to the all-zero vector
// are treated as unchanged; accessors with no non-zero elements get neither
// a sparse block nor a buffer view.
func (w *writer) packSparse(bi int, accs []*document.Accessor) {
	type sparseEntry struct {
		acc     *document.Accessor
		indices []int
	}
	var entries []sparseEntry
	for _, a := range accs {
		nonZero := nonZeroElements(a)
		if len(nonZero) == 0 {
			continue
		}
		if density := float64(len(nonZero)) / float64(a.Count()); density >= sparseDensityWarning {
			w.log.Warn("sparse accessor density makes sparse encoding larger than dense",
				zap.String("accessor", a.Name()),
				zap.Float64("density", density))
		}
		entries = append(entries, sparseEntry{acc: a, indices: nonZero})
	}
	if len(entries) == 0 {
		return
	}

	data := padTo(w.bufferData[bi], 4)
	idxViewStart := len(data)
	idxView := w.newView(bi, idxViewStart, 0, nil, nil)
	idxOffsets := make([]int, len(entries))
	idxTypes := make([]int, len(entries))
	for i, e := range entries {
		idxOffsets[i] = len(data) - idxViewStart
		idxTypes[i] = sparseIndexType(e.indices[len(e.indices)-1])
		data = appendSparseIndices(data, e.indices, idxTypes[i])
		data = padTo(data, 4)
	}
	w.json.BufferViews[idxView].ByteLength = len(data) - idxViewStart

	data = padTo(data, 4)
	valViewStart := len(data)
	valView := w.newView(bi, valViewStart, 0, nil, nil)
	for i, e := range entries {
		valOffset := len(data) - valViewStart
		data = append(data, encodeElements(e.acc, e.indices)...)
		data = padTo(data, 4)

		wa := &w.json.Accessors[w.accessorIndex[e.acc]]
		wa.Sparse = &Sparse{
			Count: len(e.indices),
			Indices: SparseIndices{
				BufferView:    idxView,
				ByteOffset:    idxOffsets[i],
				ComponentType: idxTypes[i],
			},
			Values: SparseValues{
				BufferView: valView,
				ByteOffset: valOffset,
			},
		}
	}
	w.json.BufferViews[valView].ByteLength = len(data) - valViewStart
	w.bufferData[bi] = data
}

// packGLBImages appends staged image payloads to the binary chunk, each
// 8-byte aligned for consumer interoperability.
func (w *writer) packGLBImages() {
	if len(w.glbImages) == 0 {
		return
	}
	textures := w.doc.Root().ListTextures()
	data := w.bufferData[0]
	for _, imgIndex := range w.glbImages {
		t := textures[imgIndex]
		data = padTo(data, 8)
		view := w.newView(0, len(data), len(t.Image()), nil, nil)
		data = append(data, t.Image()...)
		w.json.Images[imgIndex].BufferView = intPtr(view)
	}
	w.bufferData[0] = data
}

func (w *writer) writeMaterials() error {
	for _, m := range w.doc.Root().ListMaterials() {
		w.materialIndex[m] = len(w.json.Materials)
		w.json.Materials = append(w.json.Materials, w.writeMaterial(m))
	}
	return nil
}

func (w *writer) writeMaterial(m *document.Material) Material {
	wm := Material{
		Name:        m.Name(),
		DoubleSided: m.DoubleSided(),
		Extensions:  w.extensionMap(m),
		Extras:      m.Extras(),
	}
	if m.AlphaMode() != document.AlphaOpaque {
		wm.AlphaMode = m.AlphaMode()
	}
	if m.AlphaCutoff() != 0.5 {
		wm.AlphaCutoff = floatPtr(m.AlphaCutoff())
	}
	if ef := m.EmissiveFactor(); ef != [3]float64{} {
		wm.EmissiveFactor = &ef
	}

	var pbr PBRMetallicRoughness
	pbrUsed := false
	if bcf := m.BaseColorFactor(); bcf != [4]float64{1, 1, 1, 1} {
		pbr.BaseColorFactor = &bcf
		pbrUsed = true
	}
	if mf := m.MetallicFactor(); mf != 1 {
		pbr.MetallicFactor = floatPtr(mf)
		pbrUsed = true
	}
	if rf := m.RoughnessFactor(); rf != 1 {
		pbr.RoughnessFactor = floatPtr(rf)
		pbrUsed = true
	}
	if t := m.BaseColorTexture(); t != nil {
		pbr.BaseColorTexture = w.textureRef(t, m.BaseColorTextureInfo())
		pbrUsed = true
	}
	if t := m.MetallicRoughnessTexture(); t != nil {
		pbr.MetallicRoughnessTexture = w.textureRef(t, m.MetallicRoughnessTextureInfo())
		pbrUsed = true
	}
	if pbrUsed {
		wm.PBRMetallicRoughness = &pbr
	}

	if t := m.NormalTexture(); t != nil {
		ref := w.textureRef(t, m.NormalTextureInfo())
		nt := &NormalTextureInfo{Index: ref.Index, TexCoord: ref.TexCoord}
		if s := m.NormalScale(); s != 1 {
			nt.Scale = floatPtr(s)
		}
		wm.NormalTexture = nt
	}
	if t := m.OcclusionTexture(); t != nil {
		ref := w.textureRef(t, m.OcclusionTextureInfo())
		ot := &OcclusionTextureInfo{Index: ref.Index, TexCoord: ref.TexCoord}
		if s := m.OcclusionStrength(); s != 1 {
			ot.Strength = floatPtr(s)
		}
		wm.OcclusionTexture = ot
	}
	if t := m.EmissiveTexture(); t != nil {
		wm.EmissiveTexture = w.textureRef(t, m.EmissiveTextureInfo())
	}
	return wm
}

// textureRef resolves a (texture, sampler settings) pair to a wire texture,
// creating one per distinct (image, sampler) combination. Slots sharing an
// image and sampling share the wire texture.
func (w *writer) textureRef(t *document.Texture, ti *document.TextureInfo) *TextureInfo {
	imgIndex := w.imageIndex[t]
	samplerIndex := -1
	if !defaultSampling(ti) {
		samplerIndex = w.samplerFor(ti)
	}
	sig := textureSignature(imgIndex, samplerIndex)
	texIndex, found := w.textureIndex[sig]
	if !found {
		wt := Texture{
			Name:       t.Name(),
			Source:     intPtr(imgIndex),
			Extensions: w.extensionMap(t),
		}
		if samplerIndex >= 0 {
			wt.Sampler = intPtr(samplerIndex)
		}
		texIndex = len(w.json.Textures)
		w.textureIndex[sig] = texIndex
		w.texturedImage[imgIndex] = true
		w.json.Textures = append(w.json.Textures, wt)
	}
	return &TextureInfo{Index: texIndex, TexCoord: ti.TexCoord()}
}

func (w *writer) samplerFor(ti *document.TextureInfo) int {
	s := Sampler{MagFilter: ti.MagFilter(), MinFilter: ti.MinFilter()}
	if ti.WrapS() != document.WrapRepeat {
		s.WrapS = intPtr(ti.WrapS())
	}
	if ti.WrapT() != document.WrapRepeat {
		s.WrapT = intPtr(ti.WrapT())
	}
	sig := samplerSignature(s)
	if idx, found := w.samplerIndex[sig]; found {
		return idx
	}
	idx := len(w.json.Samplers)
	w.samplerIndex[sig] = idx
	w.json.Samplers = append(w.json.Samplers, s)
	return idx
}

func (w *writer) writeMeshes() error {
	for _, m := range w.doc.Root().ListMeshes() {
		wm := Mesh{
			Name:       m.Name(),
			Weights:    m.Weights(),
			Extensions: w.extensionMap(m),
			Extras:     m.Extras(),
		}
		for _, p := range m.ListPrimitives() {
			wp := Primitive{
				Attributes: map[string]int{},
				Extensions: w.extensionMap(p),
				Extras:     p.Extras(),
			}
			for _, semantic := range p.Semantics() {
				wp.Attributes[semantic] = w.accessorIndex[p.Attribute(semantic)]
			}
			if idx := p.Indices(); idx != nil {
				wp.Indices = intPtr(w.accessorIndex[idx])
			}
			if mat := p.Material(); mat != nil {
				wp.Material = intPtr(w.materialIndex[mat])
			}
			if p.Mode() != document.PrimitiveModeTriangles {
				wp.Mode = intPtr(p.Mode())
			}
			for _, t := range p.ListTargets() {
				wt := map[string]int{}
				for _, semantic := range t.Semantics() {
					wt[semantic] = w.accessorIndex[t.Attribute(semantic)]
				}
				wp.Targets = append(wp.Targets, wt)
			}
			wm.Primitives = append(wm.Primitives, wp)
		}
		w.meshIndex[m] = len(w.json.Meshes)
		w.json.Meshes = append(w.json.Meshes, wm)
	}
	return nil
}

func (w *writer) writeCameras() error {
	for _, c := range w.doc.Root().ListCameras() {
		wc := Camera{
			Name:       c.Name(),
			Type:       c.Type(),
			Extensions: w.extensionMap(c),
			Extras:     c.Extras(),
		}
		if c.Type() == document.CameraTypeOrthographic {
			wc.Orthographic = &CameraOrthographic{
				XMag: c.XMag(), YMag: c.YMag(), ZNear: c.ZNear(), ZFar: c.ZFar(),
			}
		} else {
			p := &CameraPerspective{YFov: c.YFov(), ZNear: c.ZNear()}
			if c.ZFar() != 0 {
				p.ZFar = floatPtr(c.ZFar())
			}
			if c.AspectRatio() != 0 {
				p.AspectRatio = floatPtr(c.AspectRatio())
			}
			wc.Perspective = p
		}
		w.cameraIndex[c] = len(w.json.Cameras)
		w.json.Cameras = append(w.json.Cameras, wc)
	}
	return nil
}

// writeNodes emits local node attributes; references follow in wireNodes
// once every index map exists.
func (w *writer) writeNodes() error {
	for _, n := range w.doc.Root().ListNodes() {
		wn := Node{
			Name:       n.Name(),
			Weights:    n.Weights(),
			Extensions: w.extensionMap(n),
			Extras:     n.Extras(),
		}
		if t := n.Translation(); t != [3]float64{} {
			wn.Translation = &t
		}
		if r := n.Rotation(); r != [4]float64{0, 0, 0, 1} {
			wn.Rotation = &r
		}
		if s := n.Scale(); s != [3]float64{1, 1, 1} {
			wn.Scale = &s
		}
		w.nodeIndex[n] = len(w.json.Nodes)
		w.json.Nodes = append(w.json.Nodes, wn)
	}
	return nil
}

func (w *writer) writeSkins() error {
	for _, s := range w.doc.Root().ListSkins() {
		ws := Skin{
			Name:       s.Name(),
			Extensions: w.extensionMap(s),
			Extras:     s.Extras(),
		}
		if ibm := s.InverseBindMatrices(); ibm != nil {
			ws.InverseBindMatrices = intPtr(w.accessorIndex[ibm])
		}
		if sk := s.Skeleton(); sk != nil {
			ws.Skeleton = intPtr(w.nodeIndex[sk])
		}
		for _, j := range s.ListJoints() {
			ws.Joints = append(ws.Joints, w.nodeIndex[j])
		}
		w.skinIndex[s] = len(w.json.Skins)
		w.json.Skins = append(w.json.Skins, ws)
	}
	return nil
}

func (w *writer) wireNodes() error {
	for _, n := range w.doc.Root().ListNodes() {
		wn := &w.json.Nodes[w.nodeIndex[n]]
		for _, c := range n.Children() {
			wn.Children = append(wn.Children, w.nodeIndex[c])
		}
		if m := n.Mesh(); m != nil {
			wn.Mesh = intPtr(w.meshIndex[m])
		}
		if c := n.Camera(); c != nil {
			wn.Camera = intPtr(w.cameraIndex[c])
		}
		if s := n.Skin(); s != nil {
			wn.Skin = intPtr(w.skinIndex[s])
		}
	}
	return nil
}

func (w *writer) writeAnimations() error {
	for _, a := range w.doc.Root().ListAnimations() {
		wa := Animation{
			Name:       a.Name(),
			Extensions: w.extensionMap(a),
			Extras:     a.Extras(),
		}
		samplerIndex := map[*document.AnimationSampler]int{}
		for _, s := range a.ListSamplers() {
			ws := AnimationSampler{}
			if in := s.Input(); in != nil {
				ws.Input = w.accessorIndex[in]
			}
			if out := s.Output(); out != nil {
				ws.Output = w.accessorIndex[out]
			}
			if s.Interpolation() != document.InterpolationLinear {
				ws.Interpolation = s.Interpolation()
			}
			samplerIndex[s] = len(wa.Samplers)
			wa.Samplers = append(wa.Samplers, ws)
		}
		for _, c := range a.ListChannels() {
			wc := AnimationChannel{Target: ChannelTarget{Path: c.TargetPath()}}
			if s := c.Sampler(); s != nil {
				wc.Sampler = samplerIndex[s]
			}
			if n := c.TargetNode(); n != nil {
				wc.Target.Node = intPtr(w.nodeIndex[n])
			}
			wa.Channels = append(wa.Channels, wc)
		}
		w.json.Animations = append(w.json.Animations, wa)
	}
	return nil
}

func (w *writer) writeScenes() error {
	root := w.doc.Root()
	for _, s := range root.ListScenes() {
		ws := Scene{
			Name:       s.Name(),
			Extensions: w.extensionMap(s),
			Extras:     s.Extras(),
		}
		for _, n := range s.Children() {
			ws.Nodes = append(ws.Nodes, w.nodeIndex[n])
		}
		w.sceneIndex[s] = len(w.json.Scenes)
		w.json.Scenes = append(w.json.Scenes, ws)
	}
	if def := root.DefaultScene(); def != nil {
		w.json.Scene = intPtr(w.sceneIndex[def])
	}
	return nil
}

// finalizeBuffers records byte lengths and places the staged bytes in the
// resource map, under the GLB sentinel key or generated URIs.
func (w *writer) finalizeBuffers() error {
	docBuffers := w.doc.Root().ListBuffers()
	for i := range w.json.Buffers {
		data := w.bufferData[i]
		w.json.Buffers[i].ByteLength = len(data)
		if len(data) == 0 {
			continue
		}
		if w.opts.Format == FormatGLB {
			w.res[GLBBufferKey] = data
			continue
		}
		key := ""
		if i < len(docBuffers) {
			key = docBuffers[i].URI()
		}
		if key == "" {
			key = w.keys.next(w.opts.basename(), "bin")
		} else {
			w.keys.reserve(key)
		}
		w.res[key] = data
		w.json.Buffers[i].URI = key
	}
	return nil
}

// extensionMap collects the extension payloads attached to a property.
func (w *writer) extensionMap(p document.Property) map[string]any {
	var out map[string]any
	for _, e := range w.doc.Root().ListExtensions() {
		ep := document.GetExtension(p, e.ExtensionName())
		if ep == nil {
			continue
		}
		if out == nil {
			out = map[string]any{}
		}
		fields := ep.Fields()
		if fields == nil {
			fields = map[string]any{}
		}
		out[e.ExtensionName()] = fields
	}
	return out
}

func textureSignature(image, sampler int) string {
	return fmt.Sprintf("%d/%d", image, sampler)
}

func samplerSignature(s Sampler) string {
	return fmt.Sprintf("%v/%v/%v/%v", intOrNil(s.MagFilter), intOrNil(s.MinFilter),
		intOrNil(s.WrapS), intOrNil(s.WrapT))
}

func intOrNil(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

// defaultSampling reports whether a TextureInfo carries only default sampler
// settings, in which case no wire sampler is emitted.
func defaultSampling(ti *document.TextureInfo) bool {
	return ti.MagFilter() == nil && ti.MinFilter() == nil &&
		ti.WrapS() == document.WrapRepeat && ti.WrapT() == document.WrapRepeat
}

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

// padTo extends data with zero bytes to the next multiple of align.
func padTo(data []byte, align int) []byte {
	for len(data)%align != 0 {
		data = append(data, 0)
	}
	return data
}

// encodeDense serializes an accessor's full array, tightly packed
// little-endian.
func encodeDense(a *document.Accessor) []byte {
	comps := a.Type().ElementSize()
	compSize := a.ComponentType().ByteSize()
	array := a.Array()
	n := a.Count() * comps
	out := make([]byte, n*compSize)
	for i := 0; i < n; i++ {
		putComponentLE(out[i*compSize:], array, i)
	}
	return out
}

// encodeElements serializes the selected elements of an accessor.
func encodeElements(a *document.Accessor, elements []int) []byte {
	comps := a.Type().ElementSize()
	compSize := a.ComponentType().ByteSize()
	array := a.Array()
	out := make([]byte, len(elements)*comps*compSize)
	pos := 0
	for _, elem := range elements {
		for c := 0; c < comps; c++ {
			putComponentLE(out[pos:], array, elem*comps+c)
			pos += compSize
		}
	}
	return out
}

// nonZeroElements returns the indices of elements that differ from the
// all-zero vector, in ascending order.
func nonZeroElements(a *document.Accessor) []int {
	comps := a.Type().ElementSize()
	array := a.Array()
	var out []int
	for elem := 0; elem < a.Count(); elem++ {
		for c := 0; c < comps; c++ {
			if rawComponent(array, elem*comps+c) != 0 {
				out = append(out, elem)
				break
			}
		}
	}
	return out
}

// sparseIndexType picks the narrowest unsigned component type representing
// maxIndex.
func sparseIndexType(maxIndex int) int {
	switch {
	case maxIndex < 1<<8:
		return 5121
	case maxIndex < 1<<16:
		return 5123
	default:
		return 5125
	}
}

func appendSparseIndices(data []byte, indices []int, componentType int) []byte {
	switch componentType {
	case 5121:
		for _, i := range indices {
			data = append(data, byte(i))
		}
	case 5123:
		var b [2]byte
		for _, i := range indices {
			binary.LittleEndian.PutUint16(b[:], uint16(i))
			data = append(data, b[:]...)
		}
	default:
		var b [4]byte
		for _, i := range indices {
			binary.LittleEndian.PutUint32(b[:], uint32(i))
			data = append(data, b[:]...)
		}
	}
	return data
}

// putComponentLE writes one component little-endian and returns its width.
func putComponentLE(dst []byte, array any, i int) int {
	switch a := array.(type) {
	case []int8:
		dst[0] = byte(a[i])
		return 1
	case []uint8:
		dst[0] = a[i]
		return 1
	case []int16:
		binary.LittleEndian.PutUint16(dst, uint16(a[i]))
		return 2
	case []uint16:
		binary.LittleEndian.PutUint16(dst, a[i])
		return 2
	case []int32:
		binary.LittleEndian.PutUint32(dst, uint32(a[i]))
		return 4
	case []uint32:
		binary.LittleEndian.PutUint32(dst, a[i])
		return 4
	case []float32:
		binary.LittleEndian.PutUint32(dst, gomath.Float32bits(a[i]))
		return 4
	}
	return 0
}

// rawComponent reads one component as float64 without normalization.
func rawComponent(array any, i int) float64 {
	switch a := array.(type) {
	case []int8:
		return float64(a[i])
	case []uint8:
		return float64(a[i])
	case []int16:
		return float64(a[i])
	case []uint16:
		return float64(a[i])
	case []int32:
		return float64(a[i])
	case []uint32:
		return float64(a[i])
	case []float32:
		return float64(a[i])
	}
	return 0
}
