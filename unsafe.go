package keypoint

import "unsafe"

// unsafeBytesToString converts []byte to string without allocation
// Only used for map lookups, the result must not outlive b.
func unsafeBytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// unsafeStringToBytes converts string to []byte without allocation
// The returned slice is read-only.
func unsafeStringToBytes(s string) []byte {
	if s == "" {
		return []byte{}
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
