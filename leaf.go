package htmlbind

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
)

var (
	nodesType           = reflect.TypeOf([]*html.Node(nil))
	timeType            = reflect.TypeOf(time.Time{})
	durationType        = reflect.TypeOf(time.Duration(0))
	uuidType            = reflect.TypeOf(uuid.UUID{})
	unmarshalerType     = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
)

// leafBinder converts the value extracted from a single element into a
// terminal Go value.
type leafBinder struct {
	typ  reflect.Type
	text valFunc
	conv func(raw string, v reflect.Value) error
}

func (b *leafBinder) kind() BinderKind { return KindLeaf }

func (b *leafBinder) bind(s Scope, v reflect.Value, vals valueChain) error {
	raw := vals.headOr(b.text)(s)
	if err := b.conv(raw, v); err != nil {
		return &CannotUnmarshalError{
			Reason: ErrValueConversion,
			Type:   b.typ,
			Val:    raw,
			Err:    err,
		}
	}
	return nil
}

// leafFor returns the leaf binder for t, or nil when t is not a leaf type.
func (r *Resolver) leafFor(t reflect.Type) *leafBinder {
	conv := r.leafConv(t)
	if conv == nil {
		return nil
	}
	return &leafBinder{typ: t, text: textFunc(r.cfg.TrimSpace), conv: conv}
}

func (r *Resolver) leafConv(t reflect.Type) func(string, reflect.Value) error {
	switch t {
	case timeType:
		return r.timeConv
	case durationType:
		return durationConv
	case uuidType:
		return uuidConv
	}

	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return textConv
	}

	switch t.Kind() {
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return ifaceConv
		}
	case reflect.Bool:
		return boolConv
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intConv
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintConv
	case reflect.Float32, reflect.Float64:
		return floatConv
	case reflect.Complex64, reflect.Complex128:
		return complexConv
	case reflect.String:
		return stringConv
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return bytesConv
		}
	}
	return nil
}

func stringConv(s string, v reflect.Value) error {
	v.SetString(s)
	return nil
}

func bytesConv(s string, v reflect.Value) error {
	v.SetBytes([]byte(s))
	return nil
}

// For empty interfaces the raw string is stored as is.
func ifaceConv(s string, v reflect.Value) error {
	v.Set(reflect.ValueOf(s))
	return nil
}

func boolConv(s string, v reflect.Value) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	v.SetBool(b)
	return nil
}

func intConv(s string, v reflect.Value) error {
	i, err := strconv.ParseInt(s, 10, v.Type().Bits())
	if err != nil {
		return err
	}
	v.SetInt(i)
	return nil
}

func uintConv(s string, v reflect.Value) error {
	i, err := strconv.ParseUint(s, 10, v.Type().Bits())
	if err != nil {
		return err
	}
	v.SetUint(i)
	return nil
}

func floatConv(s string, v reflect.Value) error {
	f, err := strconv.ParseFloat(s, v.Type().Bits())
	if err != nil {
		return err
	}
	v.SetFloat(f)
	return nil
}

func complexConv(s string, v reflect.Value) error {
	c, err := strconv.ParseComplex(s, v.Type().Bits())
	if err != nil {
		return err
	}
	v.SetComplex(c)
	return nil
}

func durationConv(s string, v reflect.Value) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	v.SetInt(int64(d))
	return nil
}

func uuidConv(s string, v reflect.Value) error {
	id, err := uuid.Parse(s)
	if err != nil {
		return err
	}
	v.Set(reflect.ValueOf(id))
	return nil
}

func textConv(s string, v reflect.Value) error {
	return v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
}

// timeConv tries each configured layout in order and keeps the first that
// parses.
func (r *Resolver) timeConv(s string, v reflect.Value) error {
	for _, layout := range r.cfg.TimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			v.Set(reflect.ValueOf(t))
			return nil
		}
	}
	return fmt.Errorf("no layout of %q matches", r.cfg.TimeLayouts)
}

// nodesBinder hands the matched nodes over untouched.
type nodesBinder struct{}

func (nodesBinder) kind() BinderKind { return KindCollection }

func (nodesBinder) bind(s Scope, v reflect.Value, _ valueChain) error {
	nodes := make([]*html.Node, 0, s.Len())
	nodes = append(nodes, s.Nodes()...)
	v.Set(reflect.ValueOf(nodes))
	return nil
}

// customBinder delegates to a type implementing Unmarshaler.
type customBinder struct {
	typ reflect.Type
}

func (b *customBinder) kind() BinderKind { return KindCustom }

func (b *customBinder) bind(s Scope, v reflect.Value, _ valueChain) error {
	u := v.Addr().Interface().(Unmarshaler)
	if err := u.UnmarshalHTML(s.Nodes()); err != nil {
		return &CannotUnmarshalError{
			Reason: ErrCustomUnmarshal,
			Type:   b.typ,
			Err:    err,
		}
	}
	return nil
}

var errUnknownEnum = errors.New("unknown enum value")

// enumBinder matches text against a fixed set of names, ignoring case.
func enumBinder[T any](t reflect.Type, text valFunc, values map[string]T) *leafBinder {
	folded := make(map[string]T, len(values))
	for name, val := range values {
		// A Caser holds state and is not safe for concurrent use.
		folded[cases.Fold().String(strings.TrimSpace(name))] = val
	}
	return &leafBinder{
		typ:  t,
		text: text,
		conv: func(s string, v reflect.Value) error {
			val, ok := folded[cases.Fold().String(strings.TrimSpace(s))]
			if !ok {
				return errUnknownEnum
			}
			v.Set(reflect.ValueOf(&val).Elem())
			return nil
		},
	}
}
