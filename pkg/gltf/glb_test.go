package gltf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestPackGLB_Framing(t *testing.T) {
	jsonPayload := []byte(`{"asset":{"version":"2.0"}}`) // 27 bytes, pads to 28
	bin := []byte{1, 2, 3, 4, 5}                         // pads to 8

	out := PackGLB(jsonPayload, bin)

	wantTotal := 12 + 8 + 28 + 8 + 8
	if len(out) != wantTotal {
		t.Fatalf("container length: got %d, want %d", len(out), wantTotal)
	}
	if got := binary.LittleEndian.Uint32(out[0:]); got != 0x46546C67 {
		t.Errorf("magic: got 0x%08X", got)
	}
	if got := binary.LittleEndian.Uint32(out[4:]); got != 2 {
		t.Errorf("version: got %d", got)
	}
	if got := binary.LittleEndian.Uint32(out[8:]); got != uint32(wantTotal) {
		t.Errorf("total length field: got %d, want %d", got, wantTotal)
	}
	if got := binary.LittleEndian.Uint32(out[12:]); got != 28 {
		t.Errorf("JSON chunk length: got %d", got)
	}
	if got := binary.LittleEndian.Uint32(out[16:]); got != 0x4E4F534A {
		t.Errorf("JSON chunk tag: got 0x%08X", got)
	}
	if out[20+27] != ' ' {
		t.Error("JSON chunk not padded with spaces")
	}
	binOff := 20 + 28
	if got := binary.LittleEndian.Uint32(out[binOff:]); got != 8 {
		t.Errorf("BIN chunk length: got %d", got)
	}
	if got := binary.LittleEndian.Uint32(out[binOff+4:]); got != 0x004E4942 {
		t.Errorf("BIN chunk tag: got 0x%08X", got)
	}
	if out[len(out)-1] != 0 || out[len(out)-2] != 0 || out[len(out)-3] != 0 {
		t.Error("BIN chunk not padded with zero bytes")
	}
}

func TestUnpackGLB_RoundTrip(t *testing.T) {
	jsonPayload := []byte(`{"asset":{"version":"2.0"}}`)
	bin := []byte{9, 8, 7}

	gotJSON, gotBin, err := UnpackGLB(PackGLB(jsonPayload, bin))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(gotJSON, jsonPayload) {
		t.Errorf("JSON payload: got %q", gotJSON)
	}
	// BIN padding is part of the chunk; the payload keeps it.
	if len(gotBin) != 4 || !bytes.Equal(gotBin[:3], bin) {
		t.Errorf("BIN payload: got %v", gotBin)
	}
}

func TestUnpackGLB_NoBinChunk(t *testing.T) {
	jsonPayload := []byte(`{"asset":{"version":"2.0"}}`)
	gotJSON, gotBin, err := UnpackGLB(PackGLB(jsonPayload, nil))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(gotJSON, jsonPayload) {
		t.Errorf("JSON payload: got %q", gotJSON)
	}
	if gotBin != nil {
		t.Errorf("expected nil BIN payload, got %v", gotBin)
	}
}

func TestUnpackGLB_Errors(t *testing.T) {
	valid := PackGLB([]byte(`{}`), nil)

	badMagic := append([]byte(nil), valid...)
	badMagic[0] = 'X'

	badVersion := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(badVersion[4:], 1)

	// A container whose first chunk is BIN.
	misordered := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint32(misordered[16:], 0x004E4942)

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short header", valid[:8], ErrGLBShort},
		{"bad magic", badMagic, ErrGLBMagic},
		{"bad version", badVersion, ErrGLBVersion},
		{"misordered chunks", misordered, ErrGLBChunkOrder},
		{"truncated body", valid[:14], ErrGLBShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := UnpackGLB(tt.data); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestIsGLB(t *testing.T) {
	if !IsGLB(PackGLB([]byte(`{}`), nil)) {
		t.Error("IsGLB false for packed container")
	}
	if IsGLB([]byte(`{"asset":{}}`)) {
		t.Error("IsGLB true for JSON text")
	}
}
