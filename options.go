package keypoint

// Option configures a Translator during creation.
//
// Example:
//
//	// Defaults: NFC normalization, linux keymap, cached
//	t := keypoint.NewTranslator()
//
//	// macOS key events, no cache
//	t := keypoint.NewTranslator(keypoint.WithKeymap(keypoint.KeymapMacOS), keypoint.WithCacheLimit(0))
type Option func(*translatorOptions)

type translatorOptions struct {
	normalize  bool
	keymap     Keymap
	cacheLimit int
}

const defaultCacheLimit = 512

func defaultOptions() translatorOptions {
	return translatorOptions{
		normalize:  true,
		keymap:     KeymapLinux,
		cacheLimit: defaultCacheLimit,
	}
}

// WithNormalization turns Unicode NFC normalization of key names on or off.
// With normalization a decomposed name such as "e\u0301" yields U+00E9
// instead of U+0065. A first code point that combines with nothing after it
// is never rewritten, so "\u2126" stays U+2126.
func WithNormalization(enabled bool) Option {
	return func(o *translatorOptions) {
		o.normalize = enabled
	}
}

// WithKeymap selects the flavour of the key events built by the Translator.
func WithKeymap(k Keymap) Option {
	return func(o *translatorOptions) {
		o.keymap = k
	}
}

// WithCacheLimit sets how many key names the Translator remembers.
// Zero or a negative value disables the cache.
func WithCacheLimit(n int) Option {
	return func(o *translatorOptions) {
		if n < 0 {
			n = 0
		}
		o.cacheLimit = n
	}
}
