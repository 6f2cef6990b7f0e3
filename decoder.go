package htmlbind

import (
	"io"
)

// Decoder implements the same API you will see in encoding/xml and
// encoding/json except that we do not currently support proper streaming
// decoding as it is not supported by goquery upstream. The whole input is
// parsed by NewDecoder.
type Decoder struct {
	s   *HTMLSerializer
	err error
	doc *Document
}

// NewDecoder returns a new decoder given an io.Reader, using the default
// serializer. A nil reader makes every Decode fail with ErrNullInput.
func NewDecoder(r io.Reader) *Decoder {
	return defaultSerializer.NewDecoder(r)
}

// Decode will unmarshal the contents of the decoder when given an instance of
// an annotated type as its argument. It will return any errors encountered
// during either parsing the document or unmarshaling into the given object.
func (d *Decoder) Decode(dest any) error {
	if d.err != nil {
		return d.err
	}
	rv, err := target(dest)
	if err != nil {
		return err
	}
	return d.s.bindValue(d.doc.Root(), rv)
}
