// Package validate holds the per-field rules of the snippet tools. Every
// rule returns "" for a valid value or a message shown next to the field.
package validate

import (
	"fmt"
	"strings"

	"github.com/shhac/docsnip/internal/domain"
	apperrors "github.com/shhac/docsnip/internal/errors"
)

// FieldKind selects the rule applied to a value.
type FieldKind string

const (
	KindTitle    FieldKind = "title"
	KindURL      FieldKind = "url"
	KindLabel    FieldKind = "label"
	KindLink     FieldKind = "link"
	KindCode     FieldKind = "code"
	KindResponse FieldKind = "response"
)

var requiredMessages = map[FieldKind]string{
	KindTitle:    "Title is required",
	KindURL:      "URL is required",
	KindLabel:    "Label is required",
	KindLink:     "Link is required",
	KindCode:     "Code is required",
	KindResponse: "Response is required",
}

// Field validates value as the given kind.
func Field(kind FieldKind, value string) string {
	if strings.TrimSpace(value) == "" {
		if msg, ok := requiredMessages[kind]; ok {
			return msg
		}
		return "Value is required"
	}
	if kind == KindURL && !strings.HasPrefix(value, domain.DocsPrefix) {
		return "URL must start with " + domain.DocsPrefix
	}
	return ""
}

// FieldError is Field returning an error, for callers that aggregate failures.
func FieldError(name string, kind FieldKind, value string) error {
	if msg := Field(kind, value); msg != "" {
		return apperrors.ValidationError{Field: name, Message: msg}
	}
	return nil
}

// Errors maps a field name to its message. Valid fields are absent.
type Errors map[string]string

// Add records msg for field when msg is non-empty.
func (e Errors) Add(field, msg string) {
	if msg != "" {
		e[field] = msg
	}
}

// Valid reports whether no field failed.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// LinkErrors validates one docfooter link.
func LinkErrors(l domain.Link) Errors {
	errs := Errors{}
	errs.Add("title", Field(KindTitle, l.Title))
	errs.Add("url", Field(KindURL, l.URL))
	return errs
}

// ButtonErrors validates one button list item.
func ButtonErrors(b domain.Button) Errors {
	errs := Errors{}
	errs.Add("label", Field(KindLabel, b.Label))
	errs.Add("link", Field(KindLink, b.Link))
	return errs
}

// RequestErrors validates one request block. The language is picked from a
// fixed select, so only the code is checked.
func RequestErrors(r domain.RequestBlock) Errors {
	errs := Errors{}
	errs.Add("code", Field(KindCode, r.Code))
	return errs
}

// ResponseErrors validates the response body.
func ResponseErrors(r domain.Response) Errors {
	errs := Errors{}
	errs.Add("body", Field(KindResponse, r.Body))
	return errs
}

// Collect turns the per-entry error maps of a list into ValidationErrors
// named "<list>[<index>].<field>". Fields are reported in the order given.
func Collect(list string, perEntry []Errors, fields ...string) apperrors.ValidationErrors {
	var out apperrors.ValidationErrors
	for i, errs := range perEntry {
		for _, f := range fields {
			if msg, ok := errs[f]; ok {
				out = append(out, apperrors.ValidationError{
					Field:   fmt.Sprintf("%s[%d].%s", list, i, f),
					Message: msg,
				})
			}
		}
	}
	return out
}
