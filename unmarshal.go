package htmlbind

import (
	"github.com/PuerkitoBio/goquery"

	"golang.org/x/net/html"
)

// Unmarshaler allows for custom implementations of unmarshaling logic. A
// field whose type implements it receives every node its selector matched.
type Unmarshaler interface {
	UnmarshalHTML([]*html.Node) error
}

// NodeSelector is a quick utility function to get a goquery.Selection from a
// slice of *html.Node. Useful inside UnmarshalHTML implementations.
func NodeSelector(nodes []*html.Node) *goquery.Selection {
	sel := &goquery.Selection{}
	return sel.AddNodes(nodes...)
}

var defaultSerializer = New()

// Default returns the package level serializer used by Unmarshal,
// UnmarshalSelection and Deserialize.
func Default() *HTMLSerializer {
	return defaultSerializer
}

// Unmarshal takes a byte slice and a destination pointer and binds the
// document into the destination based on its goquery struct tags. See
// HTMLSerializer.Deserialize.
func Unmarshal(bs []byte, v any) error {
	return defaultSerializer.Deserialize(bs, v)
}

// UnmarshalSelection binds a goquery selection into v, using the selection
// as the outermost scope.
func UnmarshalSelection(s *goquery.Selection, v any) error {
	return defaultSerializer.DeserializeSelection(s, v)
}

// Deserialize binds markup into a new T using the default serializer.
func Deserialize[T any](markup []byte) (T, error) {
	return DeserializeWith[T](defaultSerializer, markup)
}

// Marshal always fails with ErrUnsupportedOperation.
func Marshal(v any) ([]byte, error) {
	return defaultSerializer.Serialize(v)
}
