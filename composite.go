package htmlbind

import (
	"fmt"
	"reflect"
)

// FieldBindingSpec describes how one struct field is bound. It is compiled
// once per struct type and never changes afterwards.
type FieldBindingSpec struct {
	Name           string
	Index          int
	Selector       string
	ValueSelectors []string
	Type           reflect.Type
	Kind           BinderKind
}

type fieldSpec struct {
	FieldBindingSpec
	// matcher is nil when the field binds against the enclosing scope.
	matcher Matcher
	vals    valueChain
	binder  binder
}

type structBinder struct {
	typ    reflect.Type
	fields []fieldSpec
}

func (b *structBinder) kind() BinderKind { return KindComposite }

// bind fills the fields of v in declaration order. Every selector is
// evaluated inside s, so a nested struct only ever sees the element its
// own field matched.
func (b *structBinder) bind(s Scope, v reflect.Value, _ valueChain) error {
	for i := range b.fields {
		f := &b.fields[i]

		sub := s
		if f.matcher != nil {
			sub = s.Query(f.matcher, f.Kind.multiple())
		}
		// Markup is often partial: a field with nothing to bind keeps its
		// zero value.
		if sub.Len() == 0 && !f.Kind.bindsEmpty() {
			continue
		}

		if err := f.binder.bind(sub, v.Field(f.Index), f.vals); err != nil {
			return atPath(err, f.Name)
		}
	}
	return nil
}

func (r *Resolver) buildStruct(t reflect.Type, building map[reflect.Type]binder) (binder, error) {
	sb := &structBinder{typ: t}
	building[t] = sb

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		raw, ok := sf.Tag.Lookup(r.cfg.TagName)
		if !ok {
			continue
		}
		tag := goqueryTag(raw)
		if tag.ignored() {
			continue
		}

		fail := func(reason, err error) error {
			return &CannotUnmarshalError{
				Reason: reason,
				Path:   []any{sf.Name},
				Type:   t,
				Err:    err,
			}
		}

		if !sf.IsExported() {
			return nil, fail(ErrUnsupportedType, fmt.Errorf("annotated field %s is unexported", sf.Name))
		}

		f := fieldSpec{FieldBindingSpec: FieldBindingSpec{
			Name:           sf.Name,
			Index:          i,
			Selector:       tag.selector(),
			ValueSelectors: tag.valueSelectors(),
			Type:           sf.Type,
		}}

		if f.Selector != "" {
			m, err := CompileSelector(f.Selector)
			if err != nil {
				return nil, fail(ErrInvalidSelector, err)
			}
			f.matcher = m
		}

		vals, err := compileValueSelectors(f.ValueSelectors, r.cfg.TrimSpace)
		if err != nil {
			return nil, fail(ErrInvalidSelector, err)
		}
		f.vals = vals

		fb, err := r.build(sf.Type, building)
		if err != nil {
			return nil, atPath(err, sf.Name)
		}
		f.binder = fb
		f.Kind = fb.kind()

		if f.Kind == KindMap && len(f.vals) == 0 {
			return nil, fail(ErrMissingValueSelector, fmt.Errorf("field %s has no key value selector", sf.Name))
		}

		sb.fields = append(sb.fields, f)
	}

	r.log.Debug("htmlbind: compiled binding plan",
		"type", t.String(),
		"fields", len(sb.fields),
	)
	return sb, nil
}

// Fields returns the binding plan of the struct type t (or a pointer to
// it), compiling it if needed.
func (r *Resolver) Fields(t reflect.Type) ([]FieldBindingSpec, error) {
	t = TypeDeref(t)
	b, err := r.binderFor(t)
	if err != nil {
		return nil, err
	}
	sb, ok := b.(*structBinder)
	if !ok {
		return nil, &CannotUnmarshalError{
			Reason: ErrUnsupportedType,
			Type:   t,
			Err:    fmt.Errorf("%s is bound as %s, not composite", t, b.kind()),
		}
	}
	out := make([]FieldBindingSpec, len(sb.fields))
	for i, f := range sb.fields {
		out[i] = f.FieldBindingSpec
	}
	return out, nil
}
