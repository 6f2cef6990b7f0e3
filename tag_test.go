package htmlbind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagParts(t *testing.T) {
	asrt := assert.New(t)

	tag := goqueryTag(" #list li , [id], text ")
	asrt.Equal("#list li", tag.selector())
	asrt.Equal([]string{"[id]", "text"}, tag.valueSelectors())

	empty := goqueryTag("")
	asrt.Equal("", empty.selector())
	asrt.Empty(empty.valueSelectors())

	asrt.True(goqueryTag("-").ignored())
	asrt.True(goqueryTag("!ignore").ignored())
	asrt.False(goqueryTag("a").ignored())
}

func TestCompileValueSelectors(t *testing.T) {
	doc, err := ParseDocument([]byte(`<a href="/h"> <b>t</b> </a>`))
	require.NoError(t, err)
	a := doc.Root().Query(mustCompile(t, "a"), false)

	chain, err := compileValueSelectors([]string{"[href]", "text", "html"}, true)
	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.Equal(t, "/h", chain[0](a))
	assert.Equal(t, "t", chain[1](a))
	assert.Equal(t, "<b>t</b>", chain[2](a))

	assert.Equal(t, "t", chain.pop()[0](a))
	assert.Nil(t, chain[:1].pop())
	assert.Equal(t, " t ", valueChain(nil).headOr(textFunc(false))(a))

	for _, bad := range []string{"", "[]", "[href", "attr", "Text"} {
		_, err := compileValueSelectors([]string{bad}, true)
		assert.ErrorIs(t, err, ErrInvalidSelector, bad)
	}
}
