package codec

import (
	"sync"

	"github.com/cocosip/pixelcodec/config"
	"github.com/cocosip/pixelcodec/errors"
)

// registry is the process-wide codec lookup table, keyed by CodecKind.
type registry struct {
	mu     sync.RWMutex
	codecs map[config.CodecKind]Codec
}

var defaultRegistry = &registry{codecs: make(map[config.CodecKind]Codec)}

// Register installs c under kind, replacing any codec previously
// registered for that kind.
func Register(kind config.CodecKind, c Codec) {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	defaultRegistry.codecs[kind] = c
}

// Get returns the codec registered for kind.
func Get(kind config.CodecKind) (Codec, error) {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()
	c, ok := defaultRegistry.codecs[kind]
	if !ok {
		return nil, errors.New(errors.Configuration, "no codec registered for %s", kind)
	}
	return c, nil
}

// List returns every registered codec kind.
func List() []config.CodecKind {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()
	kinds := make([]config.CodecKind, 0, len(defaultRegistry.codecs))
	for k := range defaultRegistry.codecs {
		kinds = append(kinds, k)
	}
	return kinds
}
