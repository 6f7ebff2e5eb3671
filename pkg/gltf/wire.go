// wire.go holds the JSON-facing structures of the glTF 2.0 schema.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html
package gltf

// GLTF is the root of a glTF JSON document.
type GLTF struct {
	Asset              Asset            `json:"asset"`
	Scene              *int             `json:"scene,omitempty"`
	Scenes             []Scene          `json:"scenes,omitempty"`
	Nodes              []Node           `json:"nodes,omitempty"`
	Meshes             []Mesh           `json:"meshes,omitempty"`
	Materials          []Material       `json:"materials,omitempty"`
	Accessors          []Accessor       `json:"accessors,omitempty"`
	BufferViews        []BufferView     `json:"bufferViews,omitempty"`
	Buffers            []Buffer         `json:"buffers,omitempty"`
	Textures           []Texture        `json:"textures,omitempty"`
	Images             []Image          `json:"images,omitempty"`
	Samplers           []Sampler        `json:"samplers,omitempty"`
	Skins              []Skin           `json:"skins,omitempty"`
	Cameras            []Camera         `json:"cameras,omitempty"`
	Animations         []Animation      `json:"animations,omitempty"`
	ExtensionsUsed     []string         `json:"extensionsUsed,omitempty"`
	ExtensionsRequired []string         `json:"extensionsRequired,omitempty"`
	Extensions         map[string]any   `json:"extensions,omitempty"`
	Extras             map[string]any   `json:"extras,omitempty"`
}

// Asset carries document metadata. Version is required and must be "2.x".
type Asset struct {
	Version    string `json:"version"`
	MinVersion string `json:"minVersion,omitempty"`
	Generator  string `json:"generator,omitempty"`
	Copyright  string `json:"copyright,omitempty"`
}

type Scene struct {
	Name       string         `json:"name,omitempty"`
	Nodes      []int          `json:"nodes,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
	Extras     map[string]any `json:"extras,omitempty"`
}

// Node carries either a matrix or a TRS triple, never both.
type Node struct {
	Name        string         `json:"name,omitempty"`
	Children    []int          `json:"children,omitempty"`
	Mesh        *int           `json:"mesh,omitempty"`
	Skin        *int           `json:"skin,omitempty"`
	Camera      *int           `json:"camera,omitempty"`
	Matrix      *[16]float64   `json:"matrix,omitempty"`
	Translation *[3]float64    `json:"translation,omitempty"`
	Rotation    *[4]float64    `json:"rotation,omitempty"`
	Scale       *[3]float64    `json:"scale,omitempty"`
	Weights     []float64      `json:"weights,omitempty"`
	Extensions  map[string]any `json:"extensions,omitempty"`
	Extras      map[string]any `json:"extras,omitempty"`
}

type Mesh struct {
	Name       string         `json:"name,omitempty"`
	Primitives []Primitive    `json:"primitives"`
	Weights    []float64      `json:"weights,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
	Extras     map[string]any `json:"extras,omitempty"`
}

type Primitive struct {
	Attributes map[string]int   `json:"attributes"`
	Indices    *int             `json:"indices,omitempty"`
	Material   *int             `json:"material,omitempty"`
	Mode       *int             `json:"mode,omitempty"` // default 4 (TRIANGLES)
	Targets    []map[string]int `json:"targets,omitempty"`
	Extensions map[string]any   `json:"extensions,omitempty"`
	Extras     map[string]any   `json:"extras,omitempty"`
}

type Accessor struct {
	Name          string         `json:"name,omitempty"`
	BufferView    *int           `json:"bufferView,omitempty"`
	ByteOffset    int            `json:"byteOffset,omitempty"`
	ComponentType int            `json:"componentType"`
	Normalized    bool           `json:"normalized,omitempty"`
	Count         int            `json:"count"`
	Type          string         `json:"type"`
	Min           []float64      `json:"min,omitempty"`
	Max           []float64      `json:"max,omitempty"`
	Sparse        *Sparse        `json:"sparse,omitempty"`
	Extensions    map[string]any `json:"extensions,omitempty"`
	Extras        map[string]any `json:"extras,omitempty"`
}

// Sparse stores indices and substituted values for a sparse accessor.
type Sparse struct {
	Count   int           `json:"count"`
	Indices SparseIndices `json:"indices"`
	Values  SparseValues  `json:"values"`
}

type SparseIndices struct {
	BufferView    int `json:"bufferView"`
	ByteOffset    int `json:"byteOffset,omitempty"`
	ComponentType int `json:"componentType"`
}

type SparseValues struct {
	BufferView int `json:"bufferView"`
	ByteOffset int `json:"byteOffset,omitempty"`
}

type BufferView struct {
	Name       string         `json:"name,omitempty"`
	Buffer     int            `json:"buffer"`
	ByteOffset int            `json:"byteOffset,omitempty"`
	ByteLength int            `json:"byteLength"`
	ByteStride *int           `json:"byteStride,omitempty"`
	Target     *int           `json:"target,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
	Extras     map[string]any `json:"extras,omitempty"`
}

type Buffer struct {
	Name       string         `json:"name,omitempty"`
	URI        string         `json:"uri,omitempty"`
	ByteLength int            `json:"byteLength"`
	Extensions map[string]any `json:"extensions,omitempty"`
	Extras     map[string]any `json:"extras,omitempty"`
}

type Material struct {
	Name                 string                `json:"name,omitempty"`
	PBRMetallicRoughness *PBRMetallicRoughness `json:"pbrMetallicRoughness,omitempty"`
	NormalTexture        *NormalTextureInfo    `json:"normalTexture,omitempty"`
	OcclusionTexture     *OcclusionTextureInfo `json:"occlusionTexture,omitempty"`
	EmissiveTexture      *TextureInfo          `json:"emissiveTexture,omitempty"`
	EmissiveFactor       *[3]float64           `json:"emissiveFactor,omitempty"`
	AlphaMode            string                `json:"alphaMode,omitempty"` // default "OPAQUE"
	AlphaCutoff          *float64              `json:"alphaCutoff,omitempty"`
	DoubleSided          bool                  `json:"doubleSided,omitempty"`
	Extensions           map[string]any        `json:"extensions,omitempty"`
	Extras               map[string]any        `json:"extras,omitempty"`
}

type PBRMetallicRoughness struct {
	BaseColorFactor          *[4]float64  `json:"baseColorFactor,omitempty"`
	BaseColorTexture         *TextureInfo `json:"baseColorTexture,omitempty"`
	MetallicFactor           *float64     `json:"metallicFactor,omitempty"`
	RoughnessFactor          *float64     `json:"roughnessFactor,omitempty"`
	MetallicRoughnessTexture *TextureInfo `json:"metallicRoughnessTexture,omitempty"`
}

type TextureInfo struct {
	Index    int `json:"index"`
	TexCoord int `json:"texCoord,omitempty"`
}

type NormalTextureInfo struct {
	Index    int      `json:"index"`
	TexCoord int      `json:"texCoord,omitempty"`
	Scale    *float64 `json:"scale,omitempty"` // default 1
}

type OcclusionTextureInfo struct {
	Index    int      `json:"index"`
	TexCoord int      `json:"texCoord,omitempty"`
	Strength *float64 `json:"strength,omitempty"` // default 1
}

type Texture struct {
	Name       string         `json:"name,omitempty"`
	Source     *int           `json:"source,omitempty"`
	Sampler    *int           `json:"sampler,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
	Extras     map[string]any `json:"extras,omitempty"`
}

type Image struct {
	Name       string         `json:"name,omitempty"`
	URI        string         `json:"uri,omitempty"`
	MimeType   string         `json:"mimeType,omitempty"`
	BufferView *int           `json:"bufferView,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
	Extras     map[string]any `json:"extras,omitempty"`
}

type Sampler struct {
	Name      string `json:"name,omitempty"`
	MagFilter *int   `json:"magFilter,omitempty"`
	MinFilter *int   `json:"minFilter,omitempty"`
	WrapS     *int   `json:"wrapS,omitempty"` // default 10497 (REPEAT)
	WrapT     *int   `json:"wrapT,omitempty"` // default 10497 (REPEAT)
}

type Skin struct {
	Name                string         `json:"name,omitempty"`
	InverseBindMatrices *int           `json:"inverseBindMatrices,omitempty"`
	Skeleton            *int           `json:"skeleton,omitempty"`
	Joints              []int          `json:"joints"`
	Extensions          map[string]any `json:"extensions,omitempty"`
	Extras              map[string]any `json:"extras,omitempty"`
}

type Camera struct {
	Name         string              `json:"name,omitempty"`
	Type         string              `json:"type"`
	Perspective  *CameraPerspective  `json:"perspective,omitempty"`
	Orthographic *CameraOrthographic `json:"orthographic,omitempty"`
	Extensions   map[string]any      `json:"extensions,omitempty"`
	Extras       map[string]any      `json:"extras,omitempty"`
}

type CameraPerspective struct {
	YFov        float64  `json:"yfov"`
	ZNear       float64  `json:"znear"`
	ZFar        *float64 `json:"zfar,omitempty"` // absent means infinite
	AspectRatio *float64 `json:"aspectRatio,omitempty"`
}

type CameraOrthographic struct {
	XMag  float64 `json:"xmag"`
	YMag  float64 `json:"ymag"`
	ZNear float64 `json:"znear"`
	ZFar  float64 `json:"zfar"`
}

type Animation struct {
	Name       string             `json:"name,omitempty"`
	Channels   []AnimationChannel `json:"channels"`
	Samplers   []AnimationSampler `json:"samplers"`
	Extensions map[string]any     `json:"extensions,omitempty"`
	Extras     map[string]any     `json:"extras,omitempty"`
}

type AnimationChannel struct {
	Sampler int           `json:"sampler"`
	Target  ChannelTarget `json:"target"`
}

type ChannelTarget struct {
	Node *int   `json:"node,omitempty"`
	Path string `json:"path"`
}

type AnimationSampler struct {
	Input         int    `json:"input"`
	Output        int    `json:"output"`
	Interpolation string `json:"interpolation,omitempty"` // default "LINEAR"
}
