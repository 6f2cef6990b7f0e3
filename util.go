package htmlbind

import (
	"errors"
	"fmt"
	"reflect"
)

// TypeDeref returns the underlying type if the given type is a pointer.
func TypeDeref(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// target finds the value a destination passed by the caller should be bound
// into. Like encoding/json it follows non-nil interfaces holding pointers.
// A destination that gives nothing to construct into is reported as
// ErrConstructorNotFound before any markup is looked at.
func target(dest any) (reflect.Value, error) {
	v := reflect.ValueOf(dest)
	if dest == nil || v.Kind() != reflect.Pointer || v.IsNil() {
		var t reflect.Type
		if dest != nil {
			t = v.Type()
		}
		return reflect.Value{}, &CannotUnmarshalError{
			Reason: ErrConstructorNotFound,
			Type:   t,
			Err:    errors.New("destination must be a non-nil pointer"),
		}
	}

	v = v.Elem()
	for v.Kind() == reflect.Interface {
		if e := v.Elem(); e.IsValid() && e.Kind() == reflect.Pointer && !e.IsNil() {
			v = e.Elem()
			continue
		}
		if v.NumMethod() > 0 {
			return reflect.Value{}, &CannotUnmarshalError{
				Reason: ErrConstructorNotFound,
				Type:   v.Type(),
				Err:    fmt.Errorf("interface %s has no concrete value to bind into", v.Type()),
			}
		}
		break
	}
	return v, nil
}
