package gltf

// GL buffer binding targets recorded on buffer views.
const (
	TargetArrayBuffer        = 34962
	TargetElementArrayBuffer = 34963
)

// Version is the asset version this package reads and writes.
const Version = "2.0"

// MIME types for the two image formats glTF carries natively.
const (
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
)

// componentByteSize maps a GL component type code to its byte width.
func componentByteSize(componentType int) int {
	switch componentType {
	case 5120, 5121: // BYTE, UNSIGNED_BYTE
		return 1
	case 5122, 5123: // SHORT, UNSIGNED_SHORT
		return 2
	case 5124, 5125, 5126: // INT, UNSIGNED_INT, FLOAT
		return 4
	}
	return 0
}

// elementComponentCount maps an accessor element type string to its
// component count.
func elementComponentCount(elementType string) int {
	switch elementType {
	case "SCALAR":
		return 1
	case "VEC2":
		return 2
	case "VEC3":
		return 3
	case "VEC4", "MAT2":
		return 4
	case "MAT3":
		return 9
	case "MAT4":
		return 16
	}
	return 0
}

// pad4 returns n rounded up to the next multiple of 4.
func pad4(n int) int {
	return (n + 3) &^ 3
}
