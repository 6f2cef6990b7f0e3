package htmlbind

import (
	"net/netip"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leaves struct {
	Bool     bool           `goquery:"#bool"`
	Int8     int8           `goquery:"#int8"`
	Int      int            `goquery:"#int"`
	Uint16   uint16         `goquery:"#uint16"`
	Float    float64        `goquery:"#float"`
	Complex  complex128     `goquery:"#complex"`
	String   string         `goquery:"#string"`
	Bytes    []byte         `goquery:"#string"`
	Any      any            `goquery:"#string"`
	Time     time.Time      `goquery:"#time"`
	Duration time.Duration  `goquery:"#duration"`
	ID       uuid.UUID      `goquery:"#id"`
	Addr     netip.Addr     `goquery:"#addr"`
	PtrInt   *int           `goquery:"#int"`
	Absent   *int           `goquery:"#absent"`
	Attr     float32        `goquery:"#float,[data-raw]"`
	Named    myString       `goquery:"#string"`
	Price    map[string]int `goquery:"#prices li,[data-sku]"`
}

type myString string

const leafMarkup = `
<span id="bool">true</span>
<span id="int8">-12</span>
<span id="int"> 42 </span>
<span id="uint16">65535</span>
<span id="float" data-raw="2.5">3.25</span>
<span id="complex">(1+2i)</span>
<span id="string">  hello world </span>
<span id="time">2021-06-01T12:30:00Z</span>
<span id="duration">1m30s</span>
<span id="id">9a1e5d8c-4a7b-4c8d-9e3f-0b1c2d3e4f5a</span>
<span id="addr">192.0.2.1</span>
<ul id="prices"><li data-sku="a">1</li><li data-sku="b">2</li></ul>
`

func TestLeafBinders(t *testing.T) {
	asrt := assert.New(t)

	l, err := Deserialize[leaves]([]byte(leafMarkup))
	require.NoError(t, err)

	asrt.True(l.Bool)
	asrt.Equal(int8(-12), l.Int8)
	asrt.Equal(42, l.Int)
	asrt.Equal(uint16(65535), l.Uint16)
	asrt.Equal(3.25, l.Float)
	asrt.Equal(complex(1, 2), l.Complex)
	asrt.Equal("hello world", l.String)
	asrt.Equal([]byte("hello world"), l.Bytes)
	asrt.Equal("hello world", l.Any)
	asrt.Equal(time.Date(2021, 6, 1, 12, 30, 0, 0, time.UTC), l.Time)
	asrt.Equal(90*time.Second, l.Duration)
	asrt.Equal(uuid.MustParse("9a1e5d8c-4a7b-4c8d-9e3f-0b1c2d3e4f5a"), l.ID)
	asrt.Equal(netip.MustParseAddr("192.0.2.1"), l.Addr)
	require.NotNil(t, l.PtrInt)
	asrt.Equal(42, *l.PtrInt)
	asrt.Nil(l.Absent)
	asrt.Equal(float32(2.5), l.Attr)
	asrt.Equal(myString("hello world"), l.Named)
	asrt.Equal(map[string]int{"a": 1, "b": 2}, l.Price)
}

func TestLeafConversionFailures(t *testing.T) {
	cases := map[string]struct {
		markup string
		dest   any
		raw    string
	}{
		"bool":     {`<b>maybe</b>`, &struct{ V bool `goquery:"b"` }{}, "maybe"},
		"overflow": {`<b>300</b>`, &struct{ V int8 `goquery:"b"` }{}, "300"},
		"negative": {`<b>-1</b>`, &struct{ V uint `goquery:"b"` }{}, "-1"},
		"float":    {`<b>1,5</b>`, &struct{ V float64 `goquery:"b"` }{}, "1,5"},
		"time":     {`<b>yesterday</b>`, &struct{ V time.Time `goquery:"b"` }{}, "yesterday"},
		"duration": {`<b>soon</b>`, &struct{ V time.Duration `goquery:"b"` }{}, "soon"},
		"uuid":     {`<b>not-a-uuid</b>`, &struct{ V uuid.UUID `goquery:"b"` }{}, "not-a-uuid"},
		"text":     {`<b>999.1.1.1</b>`, &struct{ V netip.Addr `goquery:"b"` }{}, "999.1.1.1"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := Unmarshal([]byte(tc.markup), tc.dest)
			require.ErrorIs(t, err, ErrValueConversion)

			var cue *CannotUnmarshalError
			require.ErrorAs(t, err, &cue)
			assert.Equal(t, tc.raw, cue.Val)
			assert.Equal(t, "V", cue.PathString())
			assert.NotNil(t, cue.Type)
			assert.Error(t, cue.Unwrap())
		})
	}
}

func TestTimeLayouts(t *testing.T) {
	type doc struct {
		When time.Time `goquery:"b"`
	}
	s := New(WithTimeLayouts("02/01/2006"))

	d, err := DeserializeWith[doc](s, []byte(`<b>31/12/2020</b>`))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC), d.When)

	_, err = DeserializeWith[doc](s, []byte(`<b>2020-12-31</b>`))
	assert.ErrorIs(t, err, ErrValueConversion)
}

func TestTrimSpaceDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TrimSpace = false
	type doc struct {
		S string `goquery:"b"`
	}
	d, err := DeserializeWith[doc](New(WithConfig(cfg)), []byte(`<b> x </b>`))
	require.NoError(t, err)
	assert.Equal(t, " x ", d.S)
}

type color int

const (
	red color = iota + 1
	green
)

func TestEnum(t *testing.T) {
	type doc struct {
		Colors []color `goquery:"li"`
		Main   color   `goquery:"#main"`
	}
	s := New(WithEnum(map[string]color{"Red": red, "Green": green}))

	d, err := DeserializeWith[doc](s, []byte(`<ul><li>red</li><li> GREEN </li></ul><b id="main">Green</b>`))
	require.NoError(t, err)
	assert.Equal(t, []color{red, green}, d.Colors)
	assert.Equal(t, green, d.Main)

	_, err = DeserializeWith[doc](s, []byte(`<li>blue</li>`))
	require.ErrorIs(t, err, ErrValueConversion)
	assert.ErrorIs(t, err, errUnknownEnum)
}
