package htmlbind

import (
	"fmt"
	"reflect"
)

// sliceBinder binds every element of its scope, in document order, as one
// entry of the slice. The slice is replaced, never appended to.
type sliceBinder struct {
	typ  reflect.Type
	elem binder
}

func (b *sliceBinder) kind() BinderKind { return KindCollection }

func (b *sliceBinder) bind(s Scope, v reflect.Value, vals valueChain) error {
	out := reflect.MakeSlice(b.typ, 0, s.Len())
	var err error
	s.Each(func(i int, el Scope) bool {
		ev := reflect.New(b.typ.Elem()).Elem()
		if err = b.elem.bind(el, ev, vals); err != nil {
			err = atPath(err, i)
			return false
		}
		out = reflect.Append(out, ev)
		return true
	})
	if err != nil {
		return err
	}
	v.Set(out)
	return nil
}

// arrayBinder is the fixed size variant of sliceBinder. A scope with no
// elements leaves the array untouched; otherwise the element count must
// equal the array length.
type arrayBinder struct {
	typ  reflect.Type
	elem binder
}

func (b *arrayBinder) kind() BinderKind { return KindCollection }

func (b *arrayBinder) bind(s Scope, v reflect.Value, vals valueChain) error {
	n := s.Len()
	if n == 0 {
		return nil
	}
	if n != b.typ.Len() {
		return &CannotUnmarshalError{
			Reason: ErrArrayLength,
			Type:   b.typ,
			Err:    fmt.Errorf("%d elements matched", n),
		}
	}
	var err error
	s.Each(func(i int, el Scope) bool {
		if err = b.elem.bind(el, v.Index(i), vals); err != nil {
			err = atPath(err, i)
			return false
		}
		return true
	})
	return err
}

// mapBinder binds every element of its scope as one map entry. The key is
// read from the element with the first value selector, the value is bound
// from the same element with the remaining ones. Later duplicates win.
type mapBinder struct {
	typ  reflect.Type
	key  binder
	elem binder
}

func (b *mapBinder) kind() BinderKind { return KindMap }

func (b *mapBinder) bind(s Scope, v reflect.Value, vals valueChain) error {
	if len(vals) == 0 {
		return &CannotUnmarshalError{Reason: ErrMissingValueSelector, Type: b.typ}
	}

	out := reflect.MakeMapWithSize(b.typ, s.Len())
	var err error
	s.Each(func(i int, el Scope) bool {
		kv := reflect.New(b.typ.Key()).Elem()
		if err = b.key.bind(el, kv, vals[:1]); err != nil {
			err = atPath(err, i)
			return false
		}
		ev := reflect.New(b.typ.Elem()).Elem()
		if err = b.elem.bind(el, ev, vals.pop()); err != nil {
			err = atPath(err, MapKey{Key: kv.Interface()})
			return false
		}
		out.SetMapIndex(kv, ev)
		return true
	})
	if err != nil {
		return err
	}
	v.Set(out)
	return nil
}
