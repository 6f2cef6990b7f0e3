package htmlbind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSerializer struct {
	contentType string
	got         []byte
}

func (s *stubSerializer) ContentType() string           { return s.contentType }
func (s *stubSerializer) Serialize(any) ([]byte, error) { return []byte("stub"), nil }
func (s *stubSerializer) Deserialize(data []byte, _ any) error {
	s.got = data
	return nil
}

func TestRegistryLookup(t *testing.T) {
	asrt := assert.New(t)

	h := New()
	j := &stubSerializer{contentType: "application/json"}
	r := NewRegistry(h, j)

	got, ok := r.Lookup("text/html; charset=utf-8")
	asrt.True(ok)
	asrt.Same(h, got)

	got, ok = r.Lookup(" Application/JSON ")
	asrt.True(ok)
	asrt.Same(j, got)

	_, ok = r.Lookup("application/xml")
	asrt.False(ok)
}

func TestRegistryDeserialize(t *testing.T) {
	r := NewRegistry(New())

	var p person
	require.NoError(t, r.Deserialize("text/html", readFixture(t, "person.html"), &p))
	assert.Equal(t, "John", p.FirstName)

	err := r.Deserialize("application/xml", []byte("<a/>"), &p)
	assert.ErrorIs(t, err, ErrUnsupportedMediaType)
}

func TestRegistryReplace(t *testing.T) {
	first := &stubSerializer{contentType: "text/plain"}
	second := &stubSerializer{contentType: "text/plain"}
	r := NewRegistry(first)
	r.Register(second)

	require.NoError(t, r.Deserialize("text/plain", []byte("x"), nil))
	assert.Nil(t, first.got)
	assert.Equal(t, []byte("x"), second.got)

	assert.Panics(t, func() { r.Register(nil) })
}
