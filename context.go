package keypoint

import "sync"

// segmentBufferSize bounds the normalized text kept per translation. A key
// name only needs its first code point, so longer segments are truncated.
const segmentBufferSize = 128

// scratchContext holds the scratch buffer used while translating one key name
type scratchContext struct {
	segment    [segmentBufferSize]byte // First normalization segment of the name
	segmentLen int                     // Bytes used in segment
}

// Zero-allocation context pool to reuse scratchContext instances
var contextPool = sync.Pool{
	New: func() interface{} {
		return &scratchContext{}
	},
}

// reset clears the context for reuse without allocating
func (ctx *scratchContext) reset() {
	ctx.segmentLen = 0
}

// bytes returns the used part of the segment buffer
func (ctx *scratchContext) bytes() []byte {
	return ctx.segment[:ctx.segmentLen]
}
