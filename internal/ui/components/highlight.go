package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/shhac/docsnip/internal/snippet"
)

// tokenColorName maps template tokens to Fyne theme color names.
var tokenColorName = map[snippet.TokenType]fyne.ThemeColorName{
	snippet.TokenDelim:      theme.ColorNameError,
	snippet.TokenTag:        theme.ColorNamePrimary,
	snippet.TokenAttr:       theme.ColorNameWarning,
	snippet.TokenString:     theme.ColorNameSuccess,
	snippet.TokenPunct:      theme.ColorNameForeground,
	snippet.TokenComment:    theme.ColorNameDisabled,
	snippet.TokenWhitespace: theme.ColorNameForeground,
	snippet.TokenText:       theme.ColorNameForeground,
}

// highlightSnippet converts serialized output into colored RichText segments.
func highlightSnippet(input string) []widget.RichTextSegment {
	if input == "" {
		return nil
	}

	tokens := snippet.Tokenize(input)
	segments := make([]widget.RichTextSegment, 0, len(tokens))

	for _, tok := range tokens {
		segments = append(segments, &widget.TextSegment{
			Style: widget.RichTextStyle{
				ColorName: tokenColorName[tok.Type],
				Inline:    true,
				SizeName:  theme.SizeNameText,
				TextStyle: fyne.TextStyle{
					Monospace: true,
					Bold:      tok.Type == snippet.TokenTag,
					Italic:    tok.Type == snippet.TokenComment,
				},
			},
			Text: tok.Value,
		})
	}

	return segments
}
