// Package htmlbind was built to allow users to declaratively unmarshal HTML
// into go structs using struct tags composed of css selectors.
//
// It behaves very similarly to JSON and XML decoding and exposes as much
// information as possible in the event of an error to help you debug your
// binding issues: every failure is a *CannotUnmarshalError carrying the path
// from the root value to the offending field, and matches one of the Err*
// sentinels with errors.Is.
//
// When creating struct types to be unmarshaled into, the following general
// rules apply:
//
// - Any type that implements the Unmarshaler interface will be passed a slice
// of *html.Node holding every match of its selector, so that manual
// unmarshaling may be done. This takes the highest precedence.
//
// - Only struct fields annotated with goquery metadata are bound. The
// metadata takes the form of an element selector followed by arbitrary
// comma-separated "value selectors". Fields without the tag, or tagged "-",
// keep whatever value they had.
//
// - The element selector of a field is evaluated inside the element matched
// by its parent, never against the whole document. An empty element
// selector binds the field against the parent's element itself.
//
// - A value selector may be one of `html`, `text`, or `[someAttrName]`.
// `html` and `text` read the inner HTML and the text of the element.
// `[someAttrName]` reads the attribute of that name.
//
// - A leaf value (bool, numbers, string, []byte, time.Time, time.Duration,
// uuid.UUID, encoding.TextUnmarshaler and registered enums) defaults to the
// text of the first matching element if no value selector is given. Text
// that does not convert is an error; a selector matching nothing is not.
//
// - Slices and arrays receive every matching element, in document order,
// each bound independently. Nothing matching yields an empty slice.
//
// - At least one value selector is required for maps, to determine the map
// key. The key is read from each matching element, and the value is bound
// from the same element with the remaining value selectors. Here `[id]`
// is the key of each entry and `[title]` its value:
//
//	struct {
//		T map[string]string `goquery:"#list li,[id],[title]"`
//	}
//
// - Any struct type encountered in nested types (e.g. map[string]SomeStruct)
// ignores the remaining value selectors and binds its own tagged fields.
//
// Binding plans are compiled once per type by a Resolver and cached, so the
// reflection cost is paid on first use only. Marshal and
// HTMLSerializer.Serialize always fail: there is no inverse of this mapping.
package htmlbind
