package snippet

import "unicode/utf8"

// TokenType identifies the kind of template token for syntax coloring.
type TokenType int

const (
	TokenDelim TokenType = iota // {% and /%}
	TokenTag                    // tag name right after the opening delimiter
	TokenAttr                   // attribute or object key
	TokenString
	TokenPunct
	TokenComment
	TokenWhitespace
	TokenText
)

// Token holds a single lexed piece of output.
type Token struct {
	Type  TokenType
	Value string
}

// Tokenize breaks serialized output into typed tokens. Concatenating the
// values reproduces the input exactly.
func Tokenize(input string) []Token {
	tokens := make([]Token, 0, 64)
	i := 0
	expectTag := false

	for i < len(input) {
		ch := input[i]

		switch {
		case hasPrefixAt(input, i, "<!--"):
			j := indexFrom(input, i+4, "-->")
			if j < 0 {
				j = len(input)
			} else {
				j += 3
			}
			tokens = append(tokens, Token{Type: TokenComment, Value: input[i:j]})
			i = j

		case hasPrefixAt(input, i, "{%"):
			tokens = append(tokens, Token{Type: TokenDelim, Value: "{%"})
			i += 2
			expectTag = true

		case hasPrefixAt(input, i, "/%}"):
			tokens = append(tokens, Token{Type: TokenDelim, Value: "/%}"})
			i += 3

		case hasPrefixAt(input, i, "%}"):
			tokens = append(tokens, Token{Type: TokenDelim, Value: "%}"})
			i += 2

		case ch == '"' || ch == '\'':
			// Only double-quoted values are escaped; single-quoted docfooter
			// values may end in a literal backslash.
			j := i + 1
			for j < len(input) {
				if ch == '"' && input[j] == '\\' {
					j += 2
					continue
				}
				if input[j] == ch {
					j++
					break
				}
				j++
			}
			if j > len(input) {
				j = len(input)
			}
			tokens = append(tokens, Token{Type: TokenString, Value: input[i:j]})
			i = j

		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			j := i + 1
			for j < len(input) && isSpace(input[j]) {
				j++
			}
			tokens = append(tokens, Token{Type: TokenWhitespace, Value: input[i:j]})
			i = j

		case isIdentStart(ch):
			j := i + 1
			for j < len(input) && isIdentPart(input[j]) {
				j++
			}
			typ := TokenText
			if expectTag {
				typ = TokenTag
				expectTag = false
			}
			tokens = append(tokens, Token{Type: typ, Value: input[i:j]})
			i = j

		case ch == '{' || ch == '}' || ch == '[' || ch == ']' || ch == ':' || ch == ',' || ch == '=':
			tokens = append(tokens, Token{Type: TokenPunct, Value: string(ch)})
			i++

		default:
			_, size := utf8.DecodeRuneInString(input[i:])
			tokens = append(tokens, Token{Type: TokenText, Value: input[i : i+size]})
			i += size
		}
	}

	// Second pass: promote identifiers and strings followed by = or : to
	// attributes.
	for idx := 0; idx < len(tokens); idx++ {
		if tokens[idx].Type != TokenText && tokens[idx].Type != TokenString {
			continue
		}
		for j := idx + 1; j < len(tokens); j++ {
			if tokens[j].Type == TokenWhitespace {
				continue
			}
			if tokens[j].Type == TokenPunct && (tokens[j].Value == "=" || tokens[j].Value == ":") {
				tokens[idx].Type = TokenAttr
			}
			break
		}
	}

	return tokens
}

func hasPrefixAt(s string, i int, prefix string) bool {
	return len(s)-i >= len(prefix) && s[i:i+len(prefix)] == prefix
}

func indexFrom(s string, from int, sub string) int {
	for k := from; k+len(sub) <= len(s); k++ {
		if s[k:k+len(sub)] == sub {
			return k
		}
	}
	return -1
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9') || c == '-'
}
