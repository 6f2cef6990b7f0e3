package htmlbind

import (
	"bytes"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Document is a parsed markup tree. It is never modified after parsing and
// belongs to the single binding operation that parsed it.
type Document struct {
	doc *goquery.Document
}

// ParseDocument parses markup into a Document. A nil slice is reported as
// ErrNullInput; an empty one is a valid, empty document.
func ParseDocument(markup []byte) (*Document, error) {
	if markup == nil {
		return nil, ErrNullInput
	}
	return NewDocumentFromReader(bytes.NewReader(markup))
}

// NewDocumentFromReader parses the markup read from r into a Document.
func NewDocumentFromReader(r io.Reader) (*Document, error) {
	if r == nil {
		return nil, ErrNullInput
	}
	d, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &Document{doc: d}, nil
}

// Root returns the scope covering the whole document.
func (d *Document) Root() Scope {
	return Scope{sel: d.doc.Selection}
}

// Scope is a set of elements inside a Document that bounds every selector
// evaluated against it: Query only ever looks at descendants of the scope.
// A Scope borrows its document and must not outlive it.
type Scope struct {
	sel *goquery.Selection
}

// ScopeOf wraps an existing goquery selection.
func ScopeOf(sel *goquery.Selection) Scope {
	return Scope{sel: sel}
}

// Matcher is a compiled selector.
type Matcher = goquery.Matcher

// CompileSelector compiles a CSS selector for repeated use with Query.
// Empty and malformed selectors are rejected with ErrInvalidSelector.
func CompileSelector(selector string) (Matcher, error) {
	if selector == "" {
		return nil, fmt.Errorf("%w: empty selector", ErrInvalidSelector)
	}
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSelector, selector, err)
	}
	return m, nil
}

// Query returns the descendants of the scope matched by m, in document
// order. With multiple set to false at most the first match is returned.
func (s Scope) Query(m Matcher, multiple bool) Scope {
	if s.sel == nil {
		return Scope{}
	}
	found := s.sel.FindMatcher(m)
	if !multiple {
		found = found.First()
	}
	return Scope{sel: found}
}

// Len is the number of elements in the scope.
func (s Scope) Len() int {
	if s.sel == nil {
		return 0
	}
	return s.sel.Length()
}

// Eq narrows the scope to its i-th element.
func (s Scope) Eq(i int) Scope {
	if s.sel == nil {
		return Scope{}
	}
	return Scope{sel: s.sel.Eq(i)}
}

// Each calls fn for every element of the scope, stopping early when fn
// returns false.
func (s Scope) Each(fn func(i int, el Scope) bool) {
	if s.sel == nil {
		return
	}
	s.sel.EachWithBreak(func(i int, sel *goquery.Selection) bool {
		return fn(i, Scope{sel: sel})
	})
}

// Text is the combined text content of the scope.
func (s Scope) Text() string {
	if s.sel == nil {
		return ""
	}
	return s.sel.Text()
}

// HTML is the inner HTML of the first element of the scope.
func (s Scope) HTML() (string, error) {
	if s.sel == nil {
		return "", nil
	}
	return s.sel.Html()
}

// Attr returns the named attribute of the first element of the scope.
func (s Scope) Attr(name string) (string, bool) {
	if s.sel == nil {
		return "", false
	}
	return s.sel.Attr(name)
}

// Nodes exposes the underlying nodes of the scope.
func (s Scope) Nodes() []*html.Node {
	if s.sel == nil {
		return nil
	}
	return s.sel.Nodes
}

// Selection exposes the scope as a goquery selection.
func (s Scope) Selection() *goquery.Selection {
	if s.sel == nil {
		return &goquery.Selection{}
	}
	return s.sel
}
