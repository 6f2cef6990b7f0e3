package htmlbind

import (
	"fmt"
	"strings"
	"sync"
)

// Serializer is the contract shared by every codec of the surrounding
// request library, selected by the content type it declares.
type Serializer interface {
	ContentType() string
	Serialize(v any) ([]byte, error)
	Deserialize(data []byte, v any) error
}

var _ Serializer = (*HTMLSerializer)(nil)

// Registry maps media types to serializers.
type Registry struct {
	mu     sync.RWMutex
	byType map[string]Serializer
}

// NewRegistry returns a registry holding ss.
func NewRegistry(ss ...Serializer) *Registry {
	r := &Registry{byType: make(map[string]Serializer, len(ss))}
	for _, s := range ss {
		r.Register(s)
	}
	return r
}

// Register adds s under its content type, replacing any serializer
// previously registered for it.
func (r *Registry) Register(s Serializer) {
	if s == nil {
		panic("Register: nil serializer")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byType[mediaType(s.ContentType())] = s
}

// Lookup returns the serializer for contentType. Parameters such as
// "; charset=utf-8" and letter case are ignored.
func (r *Registry) Lookup(contentType string) (Serializer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byType[mediaType(contentType)]
	return s, ok
}

// Deserialize decodes data into v with the serializer registered for
// contentType.
func (r *Registry) Deserialize(contentType string, data []byte, v any) error {
	s, ok := r.Lookup(contentType)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, contentType)
	}
	return s.Deserialize(data, v)
}

// Extract media type without parameters.
func mediaType(contentType string) string {
	mt := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mt = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mt))
}
