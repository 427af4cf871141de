package keypoint

import (
	"log/slog"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// Translator turns platform key names into the Unicode scalar value of their
// first code point. It is safe for concurrent use.
type Translator struct {
	mu    sync.RWMutex
	cache map[string]uint32 // Key name -> scalar value

	opts translatorOptions
}

// NewTranslator creates a new Translator
func NewTranslator(opts ...Option) *Translator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Translator{
		cache: make(map[string]uint32),
		opts:  o,
	}
}

// Keymap returns the keymap used for the key events built by t.
func (t *Translator) Keymap() Keymap {
	return t.opts.keymap
}

// CodePoint returns the scalar value of the first code point of name.
// Only successful translations are cached.
func (t *Translator) CodePoint(name string) (uint32, error) {
	if v, ok := t.lookup(name); ok {
		return v, nil
	}

	v, err := decodeName(name, t.opts.normalize)
	if err != nil {
		return 0, err
	}
	t.store(name, v)
	return v, nil
}

// CodePointBytes is CodePoint for a key name held in a byte buffer, as
// delivered by native toolkits. name is not retained.
func (t *Translator) CodePointBytes(name []byte) (uint32, error) {
	if v, ok := t.lookup(unsafeBytesToString(name)); ok {
		return v, nil
	}

	v, err := decodeName(unsafeBytesToString(name), t.opts.normalize)
	if err != nil {
		return 0, err
	}
	t.store(string(name), v)
	return v, nil
}

// Character returns the UTF-8 text of the first code point of name.
func (t *Translator) Character(name string) (string, error) {
	v, err := t.CodePoint(name)
	if err != nil {
		return "", err
	}
	var buf [4]byte
	n := encodeRune(buf[:], rune(v))
	return string(buf[:n]), nil
}

// Len returns the number of cached key names.
func (t *Translator) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.cache)
}

// Reset drops every cached key name.
func (t *Translator) Reset() {
	t.mu.Lock()
	clear(t.cache)
	t.mu.Unlock()
}

func (t *Translator) lookup(name string) (uint32, bool) {
	if t.opts.cacheLimit == 0 {
		return 0, false
	}
	t.mu.RLock()
	v, ok := t.cache[name]
	t.mu.RUnlock()
	return v, ok
}

// store caches v under name until the cache limit is reached. Key names are
// a small fixed set per keyboard layout, so a full cache stays full.
func (t *Translator) store(name string, v uint32) {
	if t.opts.cacheLimit == 0 {
		return
	}
	t.mu.Lock()
	if len(t.cache) < t.opts.cacheLimit {
		t.cache[name] = v
	}
	t.mu.Unlock()
}

// QuickCodePoint translates name with NFC normalization and no cache.
func QuickCodePoint(name string) (uint32, error) {
	return decodeName(name, true)
}

// decodeName decodes the first code point of name. With normalize set, a
// first code point followed by marks it combines with is composed first;
// a code point that stands alone is decoded as is.
func decodeName(name string, normalize bool) (uint32, error) {
	var (
		v   uint32
		err error
	)
	if normalize && composes(name) {
		v, err = decodeComposed(name)
	} else {
		v, err = DecodeScalarString(name)
	}
	if err != nil {
		Logger().Debug("keypoint: undecodable key name", slog.String("name", name), slog.Any("err", err))
	}
	return v, err
}

// composes reports whether the first normalization segment of name extends
// past its first code point.
func composes(name string) bool {
	if name == "" {
		return false
	}
	_, n := ClassifyLeadByte(name[0])
	return n <= len(name) && norm.NFC.NextBoundaryInString(name, true) > n
}

// decodeComposed decodes the first code point of the NFC form of the first
// segment of name.
func decodeComposed(name string) (uint32, error) {
	// Get scratchContext from pool to avoid allocation
	ctx := contextPool.Get().(*scratchContext)
	defer contextPool.Put(ctx)
	ctx.reset()

	var it norm.Iter
	it.InitString(norm.NFC, name)
	ctx.segmentLen = copy(ctx.segment[:], it.Next())

	return DecodeScalar(ctx.bytes())
}
