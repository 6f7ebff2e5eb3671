package document

// Texture sampling constants, GL enum values as used on the wire.
const (
	FilterNearest              = 9728
	FilterLinear               = 9729
	FilterNearestMipmapNearest = 9984
	FilterLinearMipmapNearest  = 9985
	FilterNearestMipmapLinear  = 9986
	FilterLinearMipmapLinear   = 9987

	WrapClampToEdge    = 33071
	WrapMirroredRepeat = 33648
	WrapRepeat         = 10497
)

// TextureInfo carries per-use texture settings: UV channel and sampler
// parameters. It is attached to a (parent, texture-slot) pair rather than to
// the Texture itself, because the same Texture may be sampled differently by
// different materials. TextureInfos are created internally by their parent
// property, one per slot.
type TextureInfo struct {
	property
	texCoord  int
	magFilter *int
	minFilter *int
	wrapS     int
	wrapT     int
}

func newTextureInfo(d *Document) *TextureInfo {
	ti := &TextureInfo{wrapS: WrapRepeat, wrapT: WrapRepeat}
	initProperty(d, ti, &ti.property, KindTextureInfo, "")
	return ti
}

// TexCoord returns the UV channel index, default 0.
func (ti *TextureInfo) TexCoord() int { return ti.texCoord }

// SetTexCoord sets the UV channel index.
func (ti *TextureInfo) SetTexCoord(texCoord int) *TextureInfo {
	ti.check()
	ti.texCoord = texCoord
	return ti
}

// MagFilter returns the magnification filter, or nil if unset.
func (ti *TextureInfo) MagFilter() *int { return ti.magFilter }

// SetMagFilter sets the magnification filter; nil clears it.
func (ti *TextureInfo) SetMagFilter(f *int) *TextureInfo {
	ti.check()
	ti.magFilter = f
	return ti
}

// MinFilter returns the minification filter, or nil if unset.
func (ti *TextureInfo) MinFilter() *int { return ti.minFilter }

// SetMinFilter sets the minification filter; nil clears it.
func (ti *TextureInfo) SetMinFilter(f *int) *TextureInfo {
	ti.check()
	ti.minFilter = f
	return ti
}

// WrapS returns the U wrap mode, default WrapRepeat.
func (ti *TextureInfo) WrapS() int { return ti.wrapS }

// SetWrapS sets the U wrap mode.
func (ti *TextureInfo) SetWrapS(w int) *TextureInfo {
	ti.check()
	ti.wrapS = w
	return ti
}

// WrapT returns the V wrap mode, default WrapRepeat.
func (ti *TextureInfo) WrapT() int { return ti.wrapT }

// SetWrapT sets the V wrap mode.
func (ti *TextureInfo) SetWrapT(w int) *TextureInfo {
	ti.check()
	ti.wrapT = w
	return ti
}

// CopyFrom copies all sampling settings from src.
func (ti *TextureInfo) CopyFrom(src *TextureInfo, _ Resolver) *TextureInfo {
	ti.check()
	ti.copyBase(&src.property)
	ti.texCoord = src.texCoord
	ti.magFilter = copyIntPtr(src.magFilter)
	ti.minFilter = copyIntPtr(src.minFilter)
	ti.wrapS = src.wrapS
	ti.wrapT = src.wrapT
	return ti
}

// Equals compares all sampling settings.
func (ti *TextureInfo) Equals(other Property) bool {
	o, ok := other.(*TextureInfo)
	if !ok {
		return false
	}
	return ti.texCoord == o.texCoord &&
		intPtrEquals(ti.magFilter, o.magFilter) &&
		intPtrEquals(ti.minFilter, o.minFilter) &&
		ti.wrapS == o.wrapS &&
		ti.wrapT == o.wrapT &&
		ti.equalsBase(&o.property)
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func intPtrEquals(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
