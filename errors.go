package htmlbind

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Failure reasons. Every binding error matches one of these with errors.Is.
// Errors returned by a custom Unmarshaler are wrapped with ErrCustomUnmarshal
// and stay reachable through errors.Unwrap.
var (
	ErrNullInput            = errors.New("htmlbind: nil markup input")
	ErrParse                = errors.New("htmlbind: markup could not be parsed")
	ErrConstructorNotFound  = errors.New("htmlbind: target type cannot be constructed")
	ErrValueConversion      = errors.New("htmlbind: value conversion failed")
	ErrUnsupportedType      = errors.New("htmlbind: unsupported type")
	ErrUnsupportedOperation = errors.New("htmlbind: operation not supported for text/html")
	ErrInvalidSelector      = errors.New("htmlbind: invalid selector")
	ErrMissingValueSelector = errors.New("htmlbind: map requires a key value selector")
	ErrArrayLength          = errors.New("htmlbind: match count does not fit array length")
	ErrCustomUnmarshal      = errors.New("htmlbind: custom unmarshaler failed")
	ErrUnsupportedMediaType = errors.New("htmlbind: no serializer for media type")
)

// CannotUnmarshalError is the structured failure returned for anything that
// goes wrong once a type has been handed to the binding engine. Path is
// ordered from the root of the bound value down to the offending field, with
// string entries for struct fields, int entries for slice and array indexes
// and MapKey entries for map values.
type CannotUnmarshalError struct {
	Reason error
	Path   []any
	Type   reflect.Type
	Val    string
	Err    error
}

func (e *CannotUnmarshalError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Reason.Error())
	if p := e.PathString(); p != "" {
		sb.WriteString(" at ")
		sb.WriteString(p)
	}
	if e.Type != nil {
		sb.WriteString(" (type ")
		sb.WriteString(e.Type.String())
		sb.WriteString(")")
	}
	if e.Val != "" {
		fmt.Fprintf(&sb, " from %q", e.Val)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// MapKey is the path segment of a map entry.
type MapKey struct {
	Key any
}

func (k MapKey) String() string {
	return fmt.Sprintf("[%v]", k.Key)
}

// PathString renders Path the way it would be written in Go source, e.g.
// "Children[1].FirstName".
func (e *CannotUnmarshalError) PathString() string {
	var sb strings.Builder
	for _, seg := range e.Path {
		switch s := seg.(type) {
		case string:
			if sb.Len() > 0 {
				sb.WriteByte('.')
			}
			sb.WriteString(s)
		case int:
			fmt.Fprintf(&sb, "[%d]", s)
		case MapKey:
			sb.WriteString(s.String())
		default:
			fmt.Fprintf(&sb, "[%v]", s)
		}
	}
	return sb.String()
}

// Is reports whether target is the sentinel this error was raised for.
func (e *CannotUnmarshalError) Is(target error) bool {
	return e.Reason == target
}

func (e *CannotUnmarshalError) Unwrap() error {
	return e.Err
}

// atPath prefixes the path of err with seg. Errors that did not originate in
// this package are wrapped so the caller still gets a located failure.
func atPath(err error, seg any) error {
	if err == nil {
		return nil
	}
	var cue *CannotUnmarshalError
	if !errors.As(err, &cue) {
		return &CannotUnmarshalError{Reason: ErrCustomUnmarshal, Path: []any{seg}, Err: err}
	}
	cp := *cue
	cp.Path = append([]any{seg}, cue.Path...)
	return &cp
}
