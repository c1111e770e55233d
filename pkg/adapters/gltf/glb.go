package gltf

import (
	"encoding/binary"
	"fmt"
)

// GLB binary container constants (glTF 2.0 §4.4).
const (
	glbMagic   uint32 = 0x46546C67 // "glTF"
	glbVersion uint32 = 2
	chunkJSON  uint32 = 0x4E4F534A // "JSON"
	chunkBIN   uint32 = 0x004E4942 // "BIN\0"

	glbHeaderSize   = 12
	chunkHeaderSize = 8
)

// decodeGLB splits a GLB container into its JSON chunk and optional
// BIN chunk. Trailing unknown chunks are ignored, as glTF 2.0 allows.
func decodeGLB(data []byte) (jsonChunk, binChunk []byte, err error) {
	if len(data) < glbHeaderSize {
		return nil, nil, fmt.Errorf("glb too short (%d bytes)", len(data))
	}
	if binary.LittleEndian.Uint32(data[0:4]) != glbMagic {
		return nil, nil, fmt.Errorf("not a glb file: bad magic")
	}
	if v := binary.LittleEndian.Uint32(data[4:8]); v != glbVersion {
		return nil, nil, fmt.Errorf("unsupported glb version %d", v)
	}
	total := binary.LittleEndian.Uint32(data[8:12])
	if int(total) > len(data) {
		return nil, nil, fmt.Errorf("glb header claims %d bytes, file has %d", total, len(data))
	}

	offset := glbHeaderSize
	for offset+chunkHeaderSize <= int(total) {
		length := int(binary.LittleEndian.Uint32(data[offset : offset+4]))
		kind := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		start := offset + chunkHeaderSize
		end := start + length
		if end > int(total) {
			return nil, nil, fmt.Errorf("glb chunk overruns file")
		}
		switch kind {
		case chunkJSON:
			jsonChunk = data[start:end]
		case chunkBIN:
			binChunk = data[start:end]
		}
		offset = end
	}

	if jsonChunk == nil {
		return nil, nil, fmt.Errorf("glb has no JSON chunk")
	}
	return jsonChunk, binChunk, nil
}

// encodeGLB rebuilds a GLB container. The JSON chunk is padded with
// spaces and the BIN chunk with zeros to 4-byte alignment.
func encodeGLB(jsonChunk, binChunk []byte) []byte {
	jsonPadded := pad(jsonChunk, ' ')
	total := glbHeaderSize + chunkHeaderSize + len(jsonPadded)

	var binPadded []byte
	if binChunk != nil {
		binPadded = pad(binChunk, 0)
		total += chunkHeaderSize + len(binPadded)
	}

	out := make([]byte, 0, total)
	out = appendUint32(out, glbMagic)
	out = appendUint32(out, glbVersion)
	out = appendUint32(out, uint32(total))

	out = appendUint32(out, uint32(len(jsonPadded)))
	out = appendUint32(out, chunkJSON)
	out = append(out, jsonPadded...)

	if binChunk != nil {
		out = appendUint32(out, uint32(len(binPadded)))
		out = appendUint32(out, chunkBIN)
		out = append(out, binPadded...)
	}
	return out
}

func pad(b []byte, filler byte) []byte {
	rem := len(b) % 4
	if rem == 0 {
		return b
	}
	padded := make([]byte, len(b), len(b)+4-rem)
	copy(padded, b)
	for i := 0; i < 4-rem; i++ {
		padded = append(padded, filler)
	}
	return padded
}

func appendUint32(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}
