package document

import (
	"errors"
	"fmt"
	gomath "math"
)

// Accessor errors.
var (
	ErrUnsupportedArray = errors.New("document: unsupported accessor array type")
	ErrArrayLength      = errors.New("document: array length is not a multiple of the element size")
)

// AccessorType is the element shape of an accessor, matching the wire "type"
// field.
type AccessorType string

// Accessor element types.
const (
	TypeScalar AccessorType = "SCALAR"
	TypeVec2   AccessorType = "VEC2"
	TypeVec3   AccessorType = "VEC3"
	TypeVec4   AccessorType = "VEC4"
	TypeMat2   AccessorType = "MAT2"
	TypeMat3   AccessorType = "MAT3"
	TypeMat4   AccessorType = "MAT4"
)

// ElementSize returns the number of components per element, or 0 for an
// unknown type.
func (t AccessorType) ElementSize() int {
	switch t {
	case TypeScalar:
		return 1
	case TypeVec2:
		return 2
	case TypeVec3:
		return 3
	case TypeVec4:
		return 4
	case TypeMat2:
		return 4
	case TypeMat3:
		return 9
	case TypeMat4:
		return 16
	}
	return 0
}

// ComponentType is the storage type of one accessor component, using the GL
// enum values glTF uses on the wire.
type ComponentType uint32

// Accessor component types.
const (
	ComponentByte          ComponentType = 5120
	ComponentUnsignedByte  ComponentType = 5121
	ComponentShort         ComponentType = 5122
	ComponentUnsignedShort ComponentType = 5123
	ComponentInt           ComponentType = 5124
	ComponentUnsignedInt   ComponentType = 5125
	ComponentFloat         ComponentType = 5126
)

// ByteSize returns the storage size of one component in bytes, or 0 for an
// unknown component type.
func (c ComponentType) ByteSize() int {
	switch c {
	case ComponentByte, ComponentUnsignedByte:
		return 1
	case ComponentShort, ComponentUnsignedShort:
		return 2
	case ComponentInt, ComponentUnsignedInt, ComponentFloat:
		return 4
	}
	return 0
}

// String returns the GL constant name for the component type.
func (c ComponentType) String() string {
	switch c {
	case ComponentByte:
		return "BYTE"
	case ComponentUnsignedByte:
		return "UNSIGNED_BYTE"
	case ComponentShort:
		return "SHORT"
	case ComponentUnsignedShort:
		return "UNSIGNED_SHORT"
	case ComponentInt:
		return "INT"
	case ComponentUnsignedInt:
		return "UNSIGNED_INT"
	case ComponentFloat:
		return "FLOAT"
	}
	return fmt.Sprintf("ComponentType(%d)", uint32(c))
}

// Signed reports whether the component type is a signed integer type.
func (c ComponentType) Signed() bool {
	return c == ComponentByte || c == ComponentShort || c == ComponentInt
}

// Accessor is a typed, homogeneous list of fixed-size elements backed by a
// numeric array. The component type is inferred from the array's storage type
// when SetArray is called and is immutable while that array is set. The
// element-count/array-length consistency is validated at write time, not on
// every mutation.
type Accessor struct {
	property
	elementType AccessorType
	normalized  bool
	sparse      bool
	array       any
}

const refBuffer = "buffer"

// Type returns the element type.
func (a *Accessor) Type() AccessorType { return a.elementType }

// SetType sets the element type (SCALAR, VEC3, MAT4, ...).
func (a *Accessor) SetType(t AccessorType) *Accessor {
	a.check()
	a.elementType = t
	return a
}

// Normalized reports whether integer data is normalized to [0,1] or [-1,1].
func (a *Accessor) Normalized() bool { return a.normalized }

// SetNormalized sets the normalized flag.
func (a *Accessor) SetNormalized(normalized bool) *Accessor {
	a.check()
	a.normalized = normalized
	return a
}

// Sparse reports whether the accessor should be sparse-encoded on write.
func (a *Accessor) Sparse() bool { return a.sparse }

// SetSparse marks the accessor for sparse encoding on write.
func (a *Accessor) SetSparse(sparse bool) *Accessor {
	a.check()
	a.sparse = sparse
	return a
}

// Array returns the backing typed array, one of []int8, []uint8, []int16,
// []uint16, []int32, []uint32, or []float32, or nil.
func (a *Accessor) Array() any { return a.array }

// SetArray replaces the backing array. The component type is inferred from
// the concrete slice type; passing any other type panics. The accessor takes
// the slice as-is with no copy.
func (a *Accessor) SetArray(array any) *Accessor {
	a.check()
	if array != nil {
		if _, err := componentTypeOf(array); err != nil {
			panic(fmt.Sprintf("document: Accessor: %v (%T)", err, array))
		}
	}
	a.array = array
	return a
}

// ComponentType returns the inferred component type, or ComponentFloat if no
// array has been set.
func (a *Accessor) ComponentType() ComponentType {
	if a.array == nil {
		return ComponentFloat
	}
	ct, _ := componentTypeOf(a.array)
	return ct
}

// Count returns the number of logical elements.
func (a *Accessor) Count() int {
	if a.array == nil {
		return 0
	}
	size := a.elementType.ElementSize()
	if size == 0 {
		return 0
	}
	return arrayLen(a.array) / size
}

// ByteLength returns the tightly packed byte size of the accessor data.
func (a *Accessor) ByteLength() int {
	return arrayLen(a.array) * a.ComponentType().ByteSize()
}

// Validate checks the array-length invariant. Readers and writers call this
// before touching element data.
func (a *Accessor) Validate() error {
	size := a.elementType.ElementSize()
	if size == 0 {
		return fmt.Errorf("document: invalid accessor type %q", a.elementType)
	}
	if a.array != nil && arrayLen(a.array)%size != 0 {
		return fmt.Errorf("%w: len %d, element size %d", ErrArrayLength, arrayLen(a.array), size)
	}
	return nil
}

// GetElement reads one logical element into target, which must have at least
// ElementSize capacity; it returns target[:ElementSize]. Normalized integer
// data is decoded to floats.
func (a *Accessor) GetElement(index int, target []float64) []float64 {
	size := a.elementType.ElementSize()
	ct := a.ComponentType()
	target = target[:size]
	for i := 0; i < size; i++ {
		v := getComponent(a.array, index*size+i)
		if a.normalized {
			v = decodeNormalized(v, ct)
		}
		target[i] = v
	}
	return target
}

// SetElement writes one logical element. Normalized accessors encode floats
// back to the nearest representable integer.
func (a *Accessor) SetElement(index int, value []float64) *Accessor {
	a.check()
	size := a.elementType.ElementSize()
	ct := a.ComponentType()
	for i := 0; i < size; i++ {
		v := value[i]
		if a.normalized {
			v = encodeNormalized(v, ct)
		}
		setComponent(a.array, index*size+i, v)
	}
	return a
}

// Min writes the per-component minimum of all raw elements into target and
// reports whether the accessor has any elements.
func (a *Accessor) Min(target []float64) bool {
	return a.bounds(target, false, gomath.Min)
}

// Max writes the per-component maximum of all raw elements into target and
// reports whether the accessor has any elements.
func (a *Accessor) Max(target []float64) bool {
	return a.bounds(target, false, gomath.Max)
}

// MinNormalized is Min with the normalization decode applied per component.
func (a *Accessor) MinNormalized(target []float64) bool {
	return a.bounds(target, true, gomath.Min)
}

// MaxNormalized is Max with the normalization decode applied per component.
func (a *Accessor) MaxNormalized(target []float64) bool {
	return a.bounds(target, true, gomath.Max)
}

func (a *Accessor) bounds(target []float64, normalized bool, reduce func(float64, float64) float64) bool {
	count := a.Count()
	if count == 0 {
		return false
	}
	size := a.elementType.ElementSize()
	ct := a.ComponentType()
	for i := 0; i < count; i++ {
		for j := 0; j < size; j++ {
			v := getComponent(a.array, i*size+j)
			if normalized && a.normalized {
				v = decodeNormalized(v, ct)
			}
			if i == 0 {
				target[j] = v
			} else {
				target[j] = reduce(target[j], v)
			}
		}
	}
	return true
}

// Buffer returns the Buffer backing this accessor, or nil.
func (a *Accessor) Buffer() *Buffer {
	if b := a.getRef(refBuffer); b != nil {
		return b.(*Buffer)
	}
	return nil
}

// SetBuffer assigns the backing Buffer. Accessors reference exactly one
// Buffer; a nil argument clears the reference.
func (a *Accessor) SetBuffer(b *Buffer) *Accessor {
	if b == nil {
		a.setRef(refBuffer, nil)
	} else {
		a.setRef(refBuffer, b)
	}
	return a
}

// CopyFrom copies attributes and edges from src. The array is shared, not
// cloned.
func (a *Accessor) CopyFrom(src *Accessor, resolve Resolver) *Accessor {
	a.check()
	a.copyBase(&src.property)
	a.elementType = src.elementType
	a.normalized = src.normalized
	a.sparse = src.sparse
	a.array = src.array
	a.SetBuffer(resolveAs[*Buffer](resolve, src.getRef(refBuffer)))
	return a
}

// Equals compares element type, flags, contents, and the referenced buffer
// structurally.
func (a *Accessor) Equals(other Property) bool {
	o, ok := other.(*Accessor)
	if !ok {
		return false
	}
	if a.elementType != o.elementType || a.normalized != o.normalized || a.sparse != o.sparse {
		return false
	}
	if !a.equalsBase(&o.property) {
		return false
	}
	if arrayLen(a.array) != arrayLen(o.array) || a.ComponentType() != o.ComponentType() {
		return false
	}
	for i := 0; i < arrayLen(a.array); i++ {
		if getComponent(a.array, i) != getComponent(o.array, i) {
			return false
		}
	}
	return refEquals(a.getRef(refBuffer), o.getRef(refBuffer))
}

// componentTypeOf infers the component type from a typed slice.
func componentTypeOf(array any) (ComponentType, error) {
	switch array.(type) {
	case []int8:
		return ComponentByte, nil
	case []uint8:
		return ComponentUnsignedByte, nil
	case []int16:
		return ComponentShort, nil
	case []uint16:
		return ComponentUnsignedShort, nil
	case []int32:
		return ComponentInt, nil
	case []uint32:
		return ComponentUnsignedInt, nil
	case []float32:
		return ComponentFloat, nil
	}
	return 0, ErrUnsupportedArray
}

func arrayLen(array any) int {
	switch a := array.(type) {
	case nil:
		return 0
	case []int8:
		return len(a)
	case []uint8:
		return len(a)
	case []int16:
		return len(a)
	case []uint16:
		return len(a)
	case []int32:
		return len(a)
	case []uint32:
		return len(a)
	case []float32:
		return len(a)
	}
	return 0
}

func getComponent(array any, i int) float64 {
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

func setComponent(array any, i int, v float64) {
	switch a := array.(type) {
	case []int8:
		a[i] = int8(v)
	case []uint8:
		a[i] = uint8(v)
	case []int16:
		a[i] = int16(v)
	case []uint16:
		a[i] = uint16(v)
	case []int32:
		a[i] = int32(v)
	case []uint32:
		a[i] = uint32(v)
	case []float32:
		a[i] = float32(v)
	}
}

// maxComponentValue returns the largest representable magnitude for integer
// component types, used by the normalization codec.
func maxComponentValue(c ComponentType) float64 {
	switch c {
	case ComponentByte:
		return 127
	case ComponentUnsignedByte:
		return 255
	case ComponentShort:
		return 32767
	case ComponentUnsignedShort:
		return 65535
	case ComponentInt:
		return 2147483647
	case ComponentUnsignedInt:
		return 4294967295
	}
	return 1
}

// decodeNormalized maps a stored integer to [0,1] (unsigned) or [-1,1]
// (signed, clamped).
func decodeNormalized(v float64, c ComponentType) float64 {
	if c == ComponentFloat {
		return v
	}
	d := v / maxComponentValue(c)
	if c.Signed() {
		return gomath.Max(d, -1)
	}
	return d
}

// encodeNormalized is the inverse of decodeNormalized, rounding to the
// nearest representable integer.
func encodeNormalized(v float64, c ComponentType) float64 {
	if c == ComponentFloat {
		return v
	}
	return gomath.Round(v * maxComponentValue(c))
}
