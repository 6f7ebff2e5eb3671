package document

// Alpha rendering modes.
const (
	AlphaOpaque = "OPAQUE"
	AlphaMask   = "MASK"
	AlphaBlend  = "BLEND"
)

// Material texture slot edge names. Each slot pairs a texture edge with an
// owned TextureInfo child holding the per-use sampler settings.
const (
	slotBaseColor         = "baseColorTexture"
	slotMetallicRoughness = "metallicRoughnessTexture"
	slotNormal            = "normalTexture"
	slotOcclusion         = "occlusionTexture"
	slotEmissive          = "emissiveTexture"
)

// Material is a metallic-roughness PBR material. Factors default to the wire
// defaults (opaque alpha, unit factors); the writer omits default values from
// output entirely.
type Material struct {
	property
	alphaMode         string
	alphaCutoff       float64
	doubleSided       bool
	baseColorFactor   [4]float64
	emissiveFactor    [3]float64
	metallicFactor    float64
	roughnessFactor   float64
	normalScale       float64
	occlusionStrength float64
}

func newMaterial(d *Document, name string) *Material {
	m := &Material{
		alphaMode:         AlphaOpaque,
		alphaCutoff:       0.5,
		baseColorFactor:   [4]float64{1, 1, 1, 1},
		metallicFactor:    1,
		roughnessFactor:   1,
		normalScale:       1,
		occlusionStrength: 1,
	}
	initProperty(d, m, &m.property, KindMaterial, name)
	for _, slot := range materialSlots {
		m.addRef(slot+"Info", newTextureInfo(d))
	}
	return m
}

var materialSlots = []string{
	slotBaseColor, slotMetallicRoughness, slotNormal, slotOcclusion, slotEmissive,
}

// AlphaMode returns the alpha mode, default AlphaOpaque.
func (m *Material) AlphaMode() string { return m.alphaMode }

// SetAlphaMode sets the alpha mode.
func (m *Material) SetAlphaMode(mode string) *Material {
	m.check()
	m.alphaMode = mode
	return m
}

// AlphaCutoff returns the MASK-mode cutoff, default 0.5.
func (m *Material) AlphaCutoff() float64 { return m.alphaCutoff }

// SetAlphaCutoff sets the MASK-mode cutoff.
func (m *Material) SetAlphaCutoff(cutoff float64) *Material {
	m.check()
	m.alphaCutoff = cutoff
	return m
}

// DoubleSided reports whether back faces are rendered.
func (m *Material) DoubleSided() bool { return m.doubleSided }

// SetDoubleSided sets double-sided rendering.
func (m *Material) SetDoubleSided(doubleSided bool) *Material {
	m.check()
	m.doubleSided = doubleSided
	return m
}

// BaseColorFactor returns the RGBA base color factor, default [1,1,1,1].
func (m *Material) BaseColorFactor() [4]float64 { return m.baseColorFactor }

// SetBaseColorFactor sets the RGBA base color factor.
func (m *Material) SetBaseColorFactor(f [4]float64) *Material {
	m.check()
	m.baseColorFactor = f
	return m
}

// EmissiveFactor returns the RGB emissive factor, default [0,0,0].
func (m *Material) EmissiveFactor() [3]float64 { return m.emissiveFactor }

// SetEmissiveFactor sets the RGB emissive factor.
func (m *Material) SetEmissiveFactor(f [3]float64) *Material {
	m.check()
	m.emissiveFactor = f
	return m
}

// MetallicFactor returns the metalness factor, default 1.
func (m *Material) MetallicFactor() float64 { return m.metallicFactor }

// SetMetallicFactor sets the metalness factor.
func (m *Material) SetMetallicFactor(f float64) *Material {
	m.check()
	m.metallicFactor = f
	return m
}

// RoughnessFactor returns the roughness factor, default 1.
func (m *Material) RoughnessFactor() float64 { return m.roughnessFactor }

// SetRoughnessFactor sets the roughness factor.
func (m *Material) SetRoughnessFactor(f float64) *Material {
	m.check()
	m.roughnessFactor = f
	return m
}

// NormalScale returns the normal map scale, default 1.
func (m *Material) NormalScale() float64 { return m.normalScale }

// SetNormalScale sets the normal map scale.
func (m *Material) SetNormalScale(s float64) *Material {
	m.check()
	m.normalScale = s
	return m
}

// OcclusionStrength returns the occlusion strength, default 1.
func (m *Material) OcclusionStrength() float64 { return m.occlusionStrength }

// SetOcclusionStrength sets the occlusion strength.
func (m *Material) SetOcclusionStrength(s float64) *Material {
	m.check()
	m.occlusionStrength = s
	return m
}

func (m *Material) slotTexture(slot string) *Texture {
	if t := m.getRef(slot); t != nil {
		return t.(*Texture)
	}
	return nil
}

func (m *Material) slotInfo(slot string) *TextureInfo {
	return m.getRef(slot + "Info").(*TextureInfo)
}

func (m *Material) setSlotTexture(slot string, t *Texture) {
	if t == nil {
		m.setRef(slot, nil)
	} else {
		m.setRef(slot, t)
	}
}

// BaseColorTexture returns the base color texture, or nil.
func (m *Material) BaseColorTexture() *Texture { return m.slotTexture(slotBaseColor) }

// SetBaseColorTexture sets or clears the base color texture.
func (m *Material) SetBaseColorTexture(t *Texture) *Material {
	m.setSlotTexture(slotBaseColor, t)
	return m
}

// BaseColorTextureInfo returns the sampling settings for the base color
// slot, or nil when no texture is assigned.
func (m *Material) BaseColorTextureInfo() *TextureInfo {
	if m.BaseColorTexture() == nil {
		return nil
	}
	return m.slotInfo(slotBaseColor)
}

// MetallicRoughnessTexture returns the metallic-roughness texture, or nil.
func (m *Material) MetallicRoughnessTexture() *Texture { return m.slotTexture(slotMetallicRoughness) }

// SetMetallicRoughnessTexture sets or clears the metallic-roughness texture.
func (m *Material) SetMetallicRoughnessTexture(t *Texture) *Material {
	m.setSlotTexture(slotMetallicRoughness, t)
	return m
}

// MetallicRoughnessTextureInfo returns the sampling settings for the
// metallic-roughness slot, or nil when no texture is assigned.
func (m *Material) MetallicRoughnessTextureInfo() *TextureInfo {
	if m.MetallicRoughnessTexture() == nil {
		return nil
	}
	return m.slotInfo(slotMetallicRoughness)
}

// NormalTexture returns the normal map texture, or nil.
func (m *Material) NormalTexture() *Texture { return m.slotTexture(slotNormal) }

// SetNormalTexture sets or clears the normal map texture.
func (m *Material) SetNormalTexture(t *Texture) *Material {
	m.setSlotTexture(slotNormal, t)
	return m
}

// NormalTextureInfo returns the sampling settings for the normal slot, or
// nil when no texture is assigned.
func (m *Material) NormalTextureInfo() *TextureInfo {
	if m.NormalTexture() == nil {
		return nil
	}
	return m.slotInfo(slotNormal)
}

// OcclusionTexture returns the occlusion texture, or nil.
func (m *Material) OcclusionTexture() *Texture { return m.slotTexture(slotOcclusion) }

// SetOcclusionTexture sets or clears the occlusion texture.
func (m *Material) SetOcclusionTexture(t *Texture) *Material {
	m.setSlotTexture(slotOcclusion, t)
	return m
}

// OcclusionTextureInfo returns the sampling settings for the occlusion slot,
// or nil when no texture is assigned.
func (m *Material) OcclusionTextureInfo() *TextureInfo {
	if m.OcclusionTexture() == nil {
		return nil
	}
	return m.slotInfo(slotOcclusion)
}

// EmissiveTexture returns the emissive texture, or nil.
func (m *Material) EmissiveTexture() *Texture { return m.slotTexture(slotEmissive) }

// SetEmissiveTexture sets or clears the emissive texture.
func (m *Material) SetEmissiveTexture(t *Texture) *Material {
	m.setSlotTexture(slotEmissive, t)
	return m
}

// EmissiveTextureInfo returns the sampling settings for the emissive slot,
// or nil when no texture is assigned.
func (m *Material) EmissiveTextureInfo() *TextureInfo {
	if m.EmissiveTexture() == nil {
		return nil
	}
	return m.slotInfo(slotEmissive)
}

// CopyFrom copies all factors, flags, texture edges, and per-slot sampling
// settings from src.
func (m *Material) CopyFrom(src *Material, resolve Resolver) *Material {
	m.check()
	m.copyBase(&src.property)
	m.alphaMode = src.alphaMode
	m.alphaCutoff = src.alphaCutoff
	m.doubleSided = src.doubleSided
	m.baseColorFactor = src.baseColorFactor
	m.emissiveFactor = src.emissiveFactor
	m.metallicFactor = src.metallicFactor
	m.roughnessFactor = src.roughnessFactor
	m.normalScale = src.normalScale
	m.occlusionStrength = src.occlusionStrength
	for _, slot := range materialSlots {
		m.setSlotTexture(slot, resolveAs[*Texture](resolve, src.getRef(slot)))
		m.slotInfo(slot).CopyFrom(src.slotInfo(slot), resolve)
	}
	return m
}

// Equals compares all factors, flags, and per-slot textures and settings
// structurally.
func (m *Material) Equals(other Property) bool {
	o, ok := other.(*Material)
	if !ok {
		return false
	}
	if m.alphaMode != o.alphaMode ||
		m.alphaCutoff != o.alphaCutoff ||
		m.doubleSided != o.doubleSided ||
		m.baseColorFactor != o.baseColorFactor ||
		m.emissiveFactor != o.emissiveFactor ||
		m.metallicFactor != o.metallicFactor ||
		m.roughnessFactor != o.roughnessFactor ||
		m.normalScale != o.normalScale ||
		m.occlusionStrength != o.occlusionStrength {
		return false
	}
	if !m.equalsBase(&o.property) {
		return false
	}
	for _, slot := range materialSlots {
		if !refEquals(m.getRef(slot), o.getRef(slot)) {
			return false
		}
		if !m.slotInfo(slot).Equals(o.slotInfo(slot)) {
			return false
		}
	}
	return true
}
