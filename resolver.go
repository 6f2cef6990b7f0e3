package htmlbind

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"
)

// BinderKind is the binding strategy chosen for a type. It is decided once
// when the type is first resolved.
type BinderKind int

const (
	KindInvalid BinderKind = iota
	// KindLeaf converts the text or an attribute of one element.
	KindLeaf
	// KindComposite binds each annotated struct field inside the matched element.
	KindComposite
	// KindCollection binds every matched element into a slice or array.
	KindCollection
	// KindMap binds every matched element into a map entry.
	KindMap
	// KindCustom hands the matched nodes to an Unmarshaler.
	KindCustom
)

func (k BinderKind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindComposite:
		return "composite"
	case KindCollection:
		return "collection"
	case KindMap:
		return "map"
	case KindCustom:
		return "custom"
	default:
		return "invalid"
	}
}

// multiple reports whether fields of this kind receive every match of their
// selector rather than only the first one.
func (k BinderKind) multiple() bool {
	return k == KindCollection || k == KindMap || k == KindCustom
}

// bindsEmpty reports whether the binder runs even when nothing matched, so
// that an empty sequence is produced instead of a nil one.
func (k BinderKind) bindsEmpty() bool {
	return k == KindCollection || k == KindMap
}

type binder interface {
	kind() BinderKind
	// bind writes into v, which is settable and of the resolved type, from
	// the elements in s. It never looks outside s.
	bind(s Scope, v reflect.Value, vals valueChain) error
}

// Resolver compiles types into binders and caches the result for its
// lifetime. Reads are lock free; building a new type takes a mutex that is
// never held while a document is traversed.
type Resolver struct {
	cfg   Config
	log   *slog.Logger
	cache sync.Map // reflect.Type -> binder
	mu    sync.Mutex
}

// NewResolver returns an empty resolver using cfg. A nil logger discards
// all records.
func NewResolver(cfg Config, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = newNoopLogger()
	}
	return &Resolver{cfg: cfg, log: logger}
}

// Resolve classifies t and compiles its binding plan if it has not been
// compiled yet.
func (r *Resolver) Resolve(t reflect.Type) (BinderKind, error) {
	b, err := r.binderFor(t)
	if err != nil {
		return KindInvalid, err
	}
	return b.kind(), nil
}

func (r *Resolver) binderFor(t reflect.Type) (binder, error) {
	if t == nil {
		return nil, &CannotUnmarshalError{Reason: ErrUnsupportedType}
	}
	if b, ok := r.cache.Load(t); ok {
		return b.(binder), nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another goroutine may have finished the same type while we waited.
	if b, ok := r.cache.Load(t); ok {
		return b.(binder), nil
	}

	building := map[reflect.Type]binder{}
	b, err := r.build(t, building)
	if err != nil {
		return nil, err
	}
	for bt, bb := range building {
		r.cache.Store(bt, bb)
	}
	return b, nil
}

// build must be called with r.mu held. Binders are put into building before
// their children are compiled so recursive types resolve to themselves.
// Nothing in building is published unless the whole build succeeds.
func (r *Resolver) build(t reflect.Type, building map[reflect.Type]binder) (binder, error) {
	if b, ok := r.cache.Load(t); ok {
		return b.(binder), nil
	}
	if b, ok := building[t]; ok {
		return b, nil
	}

	if t.Kind() == reflect.Pointer {
		pb := &ptrBinder{typ: t}
		building[t] = pb
		elem, err := r.build(t.Elem(), building)
		if err != nil {
			return nil, err
		}
		pb.elem = elem
		return pb, nil
	}

	if reflect.PointerTo(t).Implements(unmarshalerType) {
		b := &customBinder{typ: t}
		building[t] = b
		return b, nil
	}

	if t == nodesType {
		building[t] = nodesBinder{}
		return nodesBinder{}, nil
	}

	if lb := r.leafFor(t); lb != nil {
		building[t] = lb
		return lb, nil
	}

	switch t.Kind() {
	case reflect.Slice:
		sb := &sliceBinder{typ: t}
		building[t] = sb
		elem, err := r.build(t.Elem(), building)
		if err != nil {
			return nil, err
		}
		sb.elem = elem
		return sb, nil
	case reflect.Array:
		ab := &arrayBinder{typ: t}
		building[t] = ab
		elem, err := r.build(t.Elem(), building)
		if err != nil {
			return nil, err
		}
		ab.elem = elem
		return ab, nil
	case reflect.Map:
		return r.buildMap(t, building)
	case reflect.Struct:
		return r.buildStruct(t, building)
	}

	return nil, &CannotUnmarshalError{
		Reason: ErrUnsupportedType,
		Type:   t,
		Err:    fmt.Errorf("no binding strategy for kind %s", t.Kind()),
	}
}

func (r *Resolver) buildMap(t reflect.Type, building map[reflect.Type]binder) (binder, error) {
	mb := &mapBinder{typ: t}
	building[t] = mb
	key, err := r.build(t.Key(), building)
	if err != nil {
		return nil, err
	}
	if key.kind() != KindLeaf {
		return nil, &CannotUnmarshalError{
			Reason: ErrUnsupportedType,
			Type:   t,
			Err:    fmt.Errorf("map key %s is not a leaf type", t.Key()),
		}
	}
	elem, err := r.build(t.Elem(), building)
	if err != nil {
		return nil, err
	}
	mb.key, mb.elem = key, elem
	return mb, nil
}

// ptrBinder allocates the pointer target on first use and binds into it.
type ptrBinder struct {
	typ  reflect.Type
	elem binder
}

func (b *ptrBinder) kind() BinderKind {
	if b.elem == nil {
		return KindInvalid
	}
	return b.elem.kind()
}

func (b *ptrBinder) bind(s Scope, v reflect.Value, vals valueChain) error {
	if v.IsNil() {
		v.Set(reflect.New(b.typ.Elem()))
	}
	return b.elem.bind(s, v.Elem(), vals)
}

// RegisterEnum makes T a leaf type bound by matching the element text, case
// insensitively, against the keys of values. It must be called before T is
// first resolved.
func RegisterEnum[T any](r *Resolver, values map[string]T) error {
	t := reflect.TypeOf((*T)(nil)).Elem()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cache.Load(t); ok {
		return &CannotUnmarshalError{
			Reason: ErrUnsupportedType,
			Type:   t,
			Err:    fmt.Errorf("%s was already resolved", t),
		}
	}
	r.cache.Store(t, enumBinder(t, textFunc(r.cfg.TrimSpace), values))
	r.log.Debug("htmlbind: registered enum", "type", t.String(), "values", len(values))
	return nil
}
