package htmlbind

import (
	"io"
	"log/slog"
	"reflect"

	"github.com/PuerkitoBio/goquery"
)

// ContentType is the media type handled by HTMLSerializer.
const ContentType = "text/html"

// HTMLSerializer binds HTML documents to annotated Go values. It is safe for
// concurrent use; each call parses and walks its own document.
type HTMLSerializer struct {
	resolver *Resolver
	log      *slog.Logger
}

// New returns a serializer configured by opts. It panics if an enum given
// with WithEnum was already resolved by a resolver passed with WithResolver.
func New(opts ...Option) *HTMLSerializer {
	o := &options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = newNoopLogger()
	}
	if o.resolver == nil {
		o.resolver = NewResolver(o.cfg, o.logger)
	}
	for _, reg := range o.register {
		if err := reg(o.resolver); err != nil {
			panic("htmlbind.New: " + err.Error())
		}
	}
	return &HTMLSerializer{resolver: o.resolver, log: o.logger}
}

// ContentType returns "text/html".
func (s *HTMLSerializer) ContentType() string {
	return ContentType
}

// Resolver exposes the resolver backing s.
func (s *HTMLSerializer) Resolver() *Resolver {
	return s.resolver
}

// Serialize always fails with ErrUnsupportedOperation: there is no inverse
// of selector based binding.
func (s *HTMLSerializer) Serialize(any) ([]byte, error) {
	return nil, ErrUnsupportedOperation
}

// Deserialize parses markup and binds it into v, which must be a non-nil
// pointer. A nil markup slice fails with ErrNullInput.
func (s *HTMLSerializer) Deserialize(markup []byte, v any) error {
	if markup == nil {
		return ErrNullInput
	}
	rv, err := target(v)
	if err != nil {
		return err
	}
	doc, err := ParseDocument(markup)
	if err != nil {
		return err
	}
	return s.bindValue(doc.Root(), rv)
}

// DeserializeSelection binds an already parsed goquery selection into v.
// Selectors are evaluated inside sel only.
func (s *HTMLSerializer) DeserializeSelection(sel *goquery.Selection, v any) error {
	if sel == nil {
		return ErrNullInput
	}
	rv, err := target(v)
	if err != nil {
		return err
	}
	return s.bindValue(ScopeOf(sel), rv)
}

// NewDecoder returns a decoder reading from r that binds with s.
func (s *HTMLSerializer) NewDecoder(r io.Reader) *Decoder {
	d := &Decoder{s: s}
	d.doc, d.err = NewDocumentFromReader(r)
	return d
}

func (s *HTMLSerializer) bindValue(root Scope, v reflect.Value) error {
	b, err := s.resolver.binderFor(v.Type())
	if err != nil {
		s.log.Debug("htmlbind: resolve failed", "type", v.Type().String(), "error", err)
		return err
	}
	if err := b.bind(root, v, nil); err != nil {
		s.log.Debug("htmlbind: bind failed", "type", v.Type().String(), "error", err)
		return err
	}
	return nil
}

// DeserializeWith binds markup into a new T using s.
func DeserializeWith[T any](s *HTMLSerializer, markup []byte) (T, error) {
	var out T
	err := s.Deserialize(markup, &out)
	return out, err
}
