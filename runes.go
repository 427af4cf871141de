package keypoint

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput  = errors.New("keypoint: empty input")  // nothing to decode
	ErrShortBuffer = errors.New("keypoint: short buffer") // fewer bytes than the lead byte announces
)

// Lead byte patterns, checked from the longest encoding down. A four byte
// lead byte also matches the three and two byte patterns.
const (
	twoBytePattern   = 0xC0
	threeBytePattern = 0xE0
	fourBytePattern  = 0xF0

	continuationMask = 0x3F
)

// ClassifyLeadByte returns the payload mask and the encoded length of the
// code point starting with b. Every byte maps to a length, a stray
// continuation byte is reported as a single byte code point.
func ClassifyLeadByte(b byte) (payloadMask byte, length int) {
	switch {
	case b&fourBytePattern == fourBytePattern:
		return 0x07, 4
	case b&threeBytePattern == threeBytePattern:
		return 0x0F, 3
	case b&twoBytePattern == twoBytePattern:
		return 0x1F, 2
	default:
		return 0xFF, 1
	}
}

// DecodeScalar returns the Unicode scalar value of the first code point in b.
// Continuation bytes are not validated; bytes after the first code point
// are ignored.
func DecodeScalar(b []byte) (uint32, error) {
	if len(b) == 0 {
		return 0, fmt.Errorf("keypoint.DecodeScalar: %w", ErrEmptyInput)
	}

	mask, length := ClassifyLeadByte(b[0])
	if len(b) < length {
		return 0, fmt.Errorf("keypoint.DecodeScalar: lead byte %#02x needs %d bytes, got %d: %w", b[0], length, len(b), ErrShortBuffer)
	}

	var scalar uint32
	for i := 0; i < length; i++ {
		if i > 0 {
			mask = continuationMask
		}
		scalar += uint32(b[i]&mask) << (6 * (length - 1 - i))
	}
	return scalar, nil
}

// DecodeScalarString is DecodeScalar over a string, without copying it.
func DecodeScalarString(s string) (uint32, error) {
	return DecodeScalar(unsafeStringToBytes(s))
}

// encodeRune writes the UTF-8 encoding of r into buf and returns the number
// of bytes written. buf must hold at least 4 bytes.
func encodeRune(buf []byte, r rune) int {
	if r < 0x80 {
		buf[0] = byte(r)
		return 1
	}

	if r < 0x800 {
		buf[0] = byte(0xC0 | r>>6)
		buf[1] = byte(0x80 | r&0x3F)
		return 2
	}

	if r < 0x10000 {
		buf[0] = byte(0xE0 | r>>12)
		buf[1] = byte(0x80 | (r>>6)&0x3F)
		buf[2] = byte(0x80 | r&0x3F)
		return 3
	}

	buf[0] = byte(0xF0 | r>>18)
	buf[1] = byte(0x80 | (r>>12)&0x3F)
	buf[2] = byte(0x80 | (r>>6)&0x3F)
	buf[3] = byte(0x80 | r&0x3F)
	return 4
}
