package snippet

import (
	"strings"
	"testing"

	"github.com/shhac/docsnip/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTokenize_RoundTrips(t *testing.T) {
	inputs := []string{
		"{% docfooter relatedLinks=[{ 'title': 'Guide', 'url': '/docs/guide' }] /%}",
		`{% requestresponse method="GET" requests=[{ "language": "go", "code": "a\"b" }] response="x" /%}`,
		Placeholder,
		"unterminated 'string",
		"<!-- open comment",
		DocFooter(domain.DocFooter{RelatedLinks: []domain.Link{{Title: `C:\`, URL: "/docs/café"}}}),
		"héllo → wörld",
	}

	for _, in := range inputs {
		var b strings.Builder
		for _, tok := range Tokenize(in) {
			b.WriteString(tok.Value)
		}
		assert.Equal(t, in, b.String())
	}
}

func TestTokenize_BackslashInSingleQuotes(t *testing.T) {
	in := DocFooter(domain.DocFooter{RelatedLinks: []domain.Link{{Title: `C:\`, URL: "/docs/café"}}})

	var strs []string
	var delims []string
	for _, tok := range Tokenize(in) {
		switch tok.Type {
		case TokenString, TokenAttr:
			strs = append(strs, tok.Value)
		case TokenDelim:
			delims = append(delims, tok.Value)
		}
	}

	assert.Contains(t, strs, `'C:\'`)
	assert.Contains(t, strs, "'/docs/café'")
	assert.Equal(t, []string{"{%", "/%}"}, delims)
}

func TestTokenize_Types(t *testing.T) {
	tokens := Tokenize(`{% buttonlist items=[{ "label": "Go" }] /%}`)

	var nonSpace []Token
	for _, tok := range tokens {
		if tok.Type != TokenWhitespace {
			nonSpace = append(nonSpace, tok)
		}
	}

	want := []Token{
		{TokenDelim, "{%"},
		{TokenTag, "buttonlist"},
		{TokenAttr, "items"},
		{TokenPunct, "="},
		{TokenPunct, "["},
		{TokenPunct, "{"},
		{TokenAttr, `"label"`},
		{TokenPunct, ":"},
		{TokenString, `"Go"`},
		{TokenPunct, "}"},
		{TokenPunct, "]"},
		{TokenDelim, "/%}"},
	}
	assert.Equal(t, want, nonSpace)
}

func TestTokenize_Comment(t *testing.T) {
	tokens := Tokenize(Placeholder)
	if assert.Len(t, tokens, 1) {
		assert.Equal(t, TokenComment, tokens[0].Type)
	}
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
}
