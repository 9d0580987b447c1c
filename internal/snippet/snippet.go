// Package snippet serializes tool state into the documentation template
// syntax. Every function is pure: identical input yields identical output.
//
// The docfooter variant only substitutes single quotes, while the
// request/response and button list variants escape quotes and whitespace.
// Downstream documents already depend on both forms, so the two are kept
// apart.
package snippet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shhac/docsnip/internal/domain"
	apperrors "github.com/shhac/docsnip/internal/errors"
	"github.com/shhac/docsnip/internal/validate"
)

// Placeholder is emitted instead of a template while any field is invalid.
const Placeholder = "<!-- Fix the highlighted fields to generate the snippet -->"

const entrySeparator = ", "

var (
	quoteSubstituter = strings.NewReplacer("'", "’")
	attrEscaper      = strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)
)

// ValidateDocFooter returns every field failure of a docfooter. SeeAlso links
// are only checked when present.
func ValidateDocFooter(f domain.DocFooter) apperrors.ValidationErrors {
	errs := validate.Collect("relatedLinks", linkErrors(f.RelatedLinks), "title", "url")
	return append(errs, validate.Collect("seeAlso", linkErrors(f.SeeAlso), "title", "url")...)
}

// DocFooter renders
//
//	{% docfooter relatedLinks=[{ 'title': 'T', 'url': 'U' }] seeAlso=[...] /%}
//
// seeAlso is omitted when f has no see-also links.
func DocFooter(f domain.DocFooter) string {
	if len(f.RelatedLinks) == 0 || len(ValidateDocFooter(f)) > 0 {
		return Placeholder
	}

	var b strings.Builder
	b.WriteString("{% docfooter relatedLinks=")
	writeLinks(&b, f.RelatedLinks)
	if len(f.SeeAlso) > 0 {
		b.WriteString(" seeAlso=")
		writeLinks(&b, f.SeeAlso)
	}
	b.WriteString(" /%}")
	return b.String()
}

func writeLinks(b *strings.Builder, links []domain.Link) {
	b.WriteByte('[')
	for i, l := range links {
		if i > 0 {
			b.WriteString(entrySeparator)
		}
		fmt.Fprintf(b, "{ 'title': '%s', 'url': '%s' }",
			quoteSubstituter.Replace(l.Title), quoteSubstituter.Replace(l.URL))
	}
	b.WriteByte(']')
}

func linkErrors(links []domain.Link) []validate.Errors {
	out := make([]validate.Errors, 0, len(links))
	for _, l := range links {
		out = append(out, validate.LinkErrors(l))
	}
	return out
}

// ValidateRequestResponse returns every field failure of a request/response
// block.
func ValidateRequestResponse(rr domain.RequestResponse) apperrors.ValidationErrors {
	perEntry := make([]validate.Errors, 0, len(rr.Requests))
	for _, r := range rr.Requests {
		perEntry = append(perEntry, validate.RequestErrors(r))
	}
	errs := validate.Collect("requests", perEntry, "code")
	if msg := validate.Field(validate.KindResponse, rr.Response.Body); msg != "" {
		errs = append(errs, apperrors.ValidationError{Field: "response", Message: msg})
	}
	return errs
}

// RequestResponse renders
//
//	{% requestresponse method="GET" requests=[{ "language": "L", "code": "C" }] response="R" /%}
//
// A JSON response body is re-indented before escaping.
func RequestResponse(rr domain.RequestResponse) string {
	if len(rr.Requests) == 0 || len(ValidateRequestResponse(rr)) > 0 {
		return Placeholder
	}

	var b strings.Builder
	fmt.Fprintf(&b, `{%% requestresponse method="%s" requests=[`, attrEscaper.Replace(rr.Method))
	for i, r := range rr.Requests {
		if i > 0 {
			b.WriteString(entrySeparator)
		}
		fmt.Fprintf(&b, `{ "language": "%s", "code": "%s" }`,
			attrEscaper.Replace(r.Language), attrEscaper.Replace(r.Code))
	}
	fmt.Fprintf(&b, `] response="%s" /%%}`, attrEscaper.Replace(FormatResponse(rr.Response.Body)))
	return b.String()
}

// FormatResponse re-indents body with two spaces when it is valid JSON, keeping
// key order. Anything else is returned unchanged.
func FormatResponse(body string) string {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" || !json.Valid([]byte(trimmed)) {
		return body
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(trimmed), "", "  "); err != nil {
		return body
	}
	return buf.String()
}

// ValidateButtonList returns every field failure of a button list.
func ValidateButtonList(bl domain.ButtonList) apperrors.ValidationErrors {
	perEntry := make([]validate.Errors, 0, len(bl.Items))
	for _, item := range bl.Items {
		perEntry = append(perEntry, validate.ButtonErrors(item))
	}
	return validate.Collect("items", perEntry, "label", "link")
}

// ButtonList renders
//
//	{% buttonlist items=[{ "label": "L", "link": "K" }] /%}
func ButtonList(bl domain.ButtonList) string {
	if len(bl.Items) == 0 || len(ValidateButtonList(bl)) > 0 {
		return Placeholder
	}

	var b strings.Builder
	b.WriteString("{% buttonlist items=[")
	for i, item := range bl.Items {
		if i > 0 {
			b.WriteString(entrySeparator)
		}
		fmt.Fprintf(&b, `{ "label": "%s", "link": "%s" }`,
			attrEscaper.Replace(item.Label), attrEscaper.Replace(item.Link))
	}
	b.WriteString("] /%}")
	return b.String()
}
