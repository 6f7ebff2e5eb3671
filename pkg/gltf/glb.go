package gltf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// GLB container framing. A GLB file is a 12-byte header followed by a
// mandatory JSON chunk and an optional BIN chunk.
const (
	glbMagic     = 0x46546C67 // "glTF"
	glbVersion   = 2
	glbChunkJSON = 0x4E4F534A // "JSON"
	glbChunkBIN  = 0x004E4942 // "BIN\0"

	glbHeaderSize = 12
	glbChunkHead  = 8
)

var (
	ErrGLBShort       = errors.New("gltf: truncated GLB container")
	ErrGLBMagic       = errors.New("gltf: bad GLB magic")
	ErrGLBVersion     = errors.New("gltf: unsupported GLB version")
	ErrGLBChunkOrder  = errors.New("gltf: first GLB chunk must be JSON")
	ErrGLBChunkLength = errors.New("gltf: GLB chunk exceeds container length")
)

// PackGLB frames a JSON payload and an optional binary payload into a GLB
// container. The JSON chunk is padded to 4 bytes with spaces, the BIN chunk
// with zero bytes; bin may be nil.
func PackGLB(jsonPayload, bin []byte) []byte {
	jsonLen := pad4(len(jsonPayload))
	total := glbHeaderSize + glbChunkHead + jsonLen
	binLen := 0
	if bin != nil {
		binLen = pad4(len(bin))
		total += glbChunkHead + binLen
	}

	out := make([]byte, 0, total)
	var head [glbHeaderSize]byte
	binary.LittleEndian.PutUint32(head[0:], glbMagic)
	binary.LittleEndian.PutUint32(head[4:], glbVersion)
	binary.LittleEndian.PutUint32(head[8:], uint32(total))
	out = append(out, head[:]...)

	var chunk [glbChunkHead]byte
	binary.LittleEndian.PutUint32(chunk[0:], uint32(jsonLen))
	binary.LittleEndian.PutUint32(chunk[4:], glbChunkJSON)
	out = append(out, chunk[:]...)
	out = append(out, jsonPayload...)
	for i := len(jsonPayload); i < jsonLen; i++ {
		out = append(out, 0x20)
	}

	if bin != nil {
		binary.LittleEndian.PutUint32(chunk[0:], uint32(binLen))
		binary.LittleEndian.PutUint32(chunk[4:], glbChunkBIN)
		out = append(out, chunk[:]...)
		out = append(out, bin...)
		for i := len(bin); i < binLen; i++ {
			out = append(out, 0x00)
		}
	}
	return out
}

// UnpackGLB splits a GLB container into its JSON payload and binary payload.
// The binary payload is nil when the container has no BIN chunk. Chunks after
// the first two are ignored, as the format requires.
func UnpackGLB(data []byte) (jsonPayload, bin []byte, err error) {
	if len(data) < glbHeaderSize {
		return nil, nil, ErrGLBShort
	}
	if binary.LittleEndian.Uint32(data[0:]) != glbMagic {
		return nil, nil, ErrGLBMagic
	}
	if v := binary.LittleEndian.Uint32(data[4:]); v != glbVersion {
		return nil, nil, fmt.Errorf("%w: %d", ErrGLBVersion, v)
	}
	total := int(binary.LittleEndian.Uint32(data[8:]))
	if total > len(data) {
		return nil, nil, ErrGLBShort
	}

	offset := glbHeaderSize
	jsonPayload, offset, err = readChunk(data[:total], offset, glbChunkJSON)
	if err != nil {
		return nil, nil, err
	}
	if offset < total {
		bin, _, err = readChunk(data[:total], offset, glbChunkBIN)
		if err != nil {
			return nil, nil, err
		}
	}
	return jsonPayload, bin, nil
}

// IsGLB reports whether data starts with the GLB magic number.
func IsGLB(data []byte) bool {
	return len(data) >= 4 && binary.LittleEndian.Uint32(data) == glbMagic
}

func readChunk(data []byte, offset int, wantType uint32) ([]byte, int, error) {
	if offset+glbChunkHead > len(data) {
		return nil, 0, ErrGLBShort
	}
	length := int(binary.LittleEndian.Uint32(data[offset:]))
	chunkType := binary.LittleEndian.Uint32(data[offset+4:])
	if chunkType != wantType {
		if wantType == glbChunkJSON {
			return nil, 0, ErrGLBChunkOrder
		}
		return nil, 0, fmt.Errorf("gltf: unexpected GLB chunk type 0x%08X", chunkType)
	}
	offset += glbChunkHead
	if offset+length > len(data) {
		return nil, 0, ErrGLBChunkLength
	}
	payload := data[offset : offset+length]
	if wantType == glbChunkJSON {
		payload = bytes.TrimRight(payload, "\x20")
	}
	return payload, offset + length, nil
}
