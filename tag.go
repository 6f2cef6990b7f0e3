package htmlbind

import (
	"fmt"
	"strings"
)

// valFunc extracts the raw string a leaf binder converts from a scope.
type valFunc func(Scope) string

// valueChain is the list of value selectors still to be consumed on the way
// down a nested type. Maps take the head for their key and pass the rest on.
type valueChain []valFunc

func (c valueChain) headOr(def valFunc) valFunc {
	if len(c) == 0 {
		return def
	}
	return c[0]
}

func (c valueChain) pop() valueChain {
	if len(c) < 2 {
		return nil
	}
	return c[1:]
}

type goqueryTag string

const ignoreTag = "!ignore"

func (tag goqueryTag) ignored() bool {
	return tag == "-" || tag == ignoreTag
}

func (tag goqueryTag) parts() []string {
	return strings.Split(string(tag), ",")
}

// selector is the element selector, the first comma separated entry. An
// empty selector means the field is bound against the enclosing scope.
func (tag goqueryTag) selector() string {
	return strings.TrimSpace(tag.parts()[0])
}

// valueSelectors returns the raw value selectors following the element
// selector.
func (tag goqueryTag) valueSelectors() []string {
	arr := tag.parts()[1:]
	out := make([]string, 0, len(arr))
	for _, src := range arr {
		out = append(out, strings.TrimSpace(src))
	}
	return out
}

func textFunc(trim bool) valFunc {
	return func(s Scope) string {
		if trim {
			return strings.TrimSpace(s.Text())
		}
		return s.Text()
	}
}

func htmlFunc(trim bool) valFunc {
	return func(s Scope) string {
		str, _ := s.HTML()
		if trim {
			return strings.TrimSpace(str)
		}
		return str
	}
}

func attrFunc(attr string) valFunc {
	return func(s Scope) string {
		str, _ := s.Attr(attr)
		return str
	}
}

// compileValueSelectors turns `text`, `html` and `[attr]` entries into value
// functions. Anything else is rejected rather than silently read as text.
func compileValueSelectors(srcs []string, trim bool) (valueChain, error) {
	if len(srcs) == 0 {
		return nil, nil
	}
	chain := make(valueChain, 0, len(srcs))
	for _, src := range srcs {
		switch {
		case src == "text":
			chain = append(chain, textFunc(trim))
		case src == "html":
			chain = append(chain, htmlFunc(trim))
		case len(src) > 2 && src[0] == '[' && src[len(src)-1] == ']':
			chain = append(chain, attrFunc(src[1:len(src)-1]))
		default:
			return nil, fmt.Errorf("%w: unknown value selector %q", ErrInvalidSelector, src)
		}
	}
	return chain, nil
}
