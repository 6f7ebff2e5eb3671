package gltf

import "go.uber.org/zap"

// Format selects the output container.
type Format int

const (
	// FormatGLTF stores the JSON tree and external resources separately.
	FormatGLTF Format = iota
	// FormatGLB stores everything in a single binary container.
	FormatGLB
)

func (f Format) String() string {
	if f == FormatGLB {
		return "glb"
	}
	return "gltf"
}

// VertexLayout selects how vertex attributes are packed into buffer views.
type VertexLayout int

const (
	// LayoutInterleaved packs all attributes of a primitive into one striped
	// buffer view.
	LayoutInterleaved VertexLayout = iota
	// LayoutSeparate gives every attribute its own tightly packed view.
	LayoutSeparate
)

// ReadOptions controls JSONDocument decoding.
type ReadOptions struct {
	// Logger receives advisory warnings; nil means discard.
	Logger *zap.Logger
}

func (o ReadOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// WriteOptions controls JSONDocument encoding.
type WriteOptions struct {
	Format       Format
	VertexLayout VertexLayout

	// Basename seeds generated resource URIs ("<basename>.bin" etc.).
	Basename string

	// Compact disables indentation when Save writes JSON documents.
	Compact bool

	// KeyRetries bounds numbered-suffix probing when resource keys collide;
	// zero means the package default.
	KeyRetries int

	// Logger receives advisory warnings; nil means discard.
	Logger *zap.Logger
}

func (o WriteOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o WriteOptions) basename() string {
	if o.Basename == "" {
		return "buffer"
	}
	return o.Basename
}
