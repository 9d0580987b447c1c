// Package render turns a YAML description of a snippet into its template
// output, applying the same validation as the form tools.
package render

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/shhac/docsnip/internal/catalog"
	"github.com/shhac/docsnip/internal/domain"
	apperrors "github.com/shhac/docsnip/internal/errors"
	"github.com/shhac/docsnip/internal/snippet"
)

const emptyListMessage = "At least one entry is required"

// requestResponseInput accepts the response body as a plain string.
type requestResponseInput struct {
	Method   string                `yaml:"method"`
	Requests []domain.RequestBlock `yaml:"requests"`
	Response string                `yaml:"response"`
}

// DecodeDocFooter reads a docfooter description.
func DecodeDocFooter(r io.Reader) (domain.DocFooter, error) {
	var f domain.DocFooter
	if err := decode(r, &f); err != nil {
		return domain.DocFooter{}, err
	}
	return f, nil
}

// DecodeRequestResponse reads a request/response description. Missing
// methods and languages take the catalog defaults; unknown ones are
// reported as validation failures.
func DecodeRequestResponse(r io.Reader) (domain.RequestResponse, error) {
	var in requestResponseInput
	if err := decode(r, &in); err != nil {
		return domain.RequestResponse{}, err
	}

	rr := domain.RequestResponse{
		Method:   in.Method,
		Requests: in.Requests,
		Response: domain.Response{Body: in.Response},
	}
	if rr.Method == "" {
		rr.Method = catalog.DefaultMethod()
	}

	var errs apperrors.ValidationErrors
	if !catalog.IsMethod(rr.Method) {
		errs = append(errs, apperrors.ValidationError{
			Field:   "method",
			Message: fmt.Sprintf("Unknown method %q", rr.Method),
		})
	}
	for i := range rr.Requests {
		rr.Requests[i].ID = i + 1
		if rr.Requests[i].Language == "" {
			rr.Requests[i].Language = catalog.DefaultLanguage()
		}
		if lang := rr.Requests[i].Language; !catalog.IsLanguage(lang) {
			errs = append(errs, apperrors.ValidationError{
				Field:   fmt.Sprintf("requests[%d].language", i),
				Message: fmt.Sprintf("Unknown language %q", lang),
			})
		}
	}
	if len(errs) > 0 {
		return domain.RequestResponse{}, errs
	}
	return rr, nil
}

// DecodeButtonList reads a button list description.
func DecodeButtonList(r io.Reader) (domain.ButtonList, error) {
	var bl domain.ButtonList
	if err := decode(r, &bl); err != nil {
		return domain.ButtonList{}, err
	}
	return bl, nil
}

// Render decodes a description of kind from r and returns the snippet.
// Field failures come back as apperrors.ValidationErrors.
func Render(kind domain.Kind, r io.Reader) (string, error) {
	switch kind {
	case domain.KindDocFooter:
		f, err := DecodeDocFooter(r)
		if err != nil {
			return "", err
		}
		errs := ValidateDocFooter(f)
		if len(errs) > 0 {
			return "", errs
		}
		return snippet.DocFooter(f), nil

	case domain.KindRequestResponse:
		rr, err := DecodeRequestResponse(r)
		if err != nil {
			return "", err
		}
		errs := requireEntries("requests", len(rr.Requests))
		errs = append(errs, snippet.ValidateRequestResponse(rr)...)
		if len(errs) > 0 {
			return "", errs
		}
		return snippet.RequestResponse(rr), nil

	case domain.KindButtonList:
		bl, err := DecodeButtonList(r)
		if err != nil {
			return "", err
		}
		errs := requireEntries("items", len(bl.Items))
		errs = append(errs, snippet.ValidateButtonList(bl)...)
		if len(errs) > 0 {
			return "", errs
		}
		return snippet.ButtonList(bl), nil

	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownKind, kind)
	}
}

// ValidateDocFooter adds the non-empty related links rule to the field checks.
func ValidateDocFooter(f domain.DocFooter) apperrors.ValidationErrors {
	errs := requireEntries("relatedLinks", len(f.RelatedLinks))
	return append(errs, snippet.ValidateDocFooter(f)...)
}

func requireEntries(field string, n int) apperrors.ValidationErrors {
	if n > 0 {
		return nil
	}
	return apperrors.ValidationErrors{{Field: field, Message: emptyListMessage}}
}

func decode(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty document", apperrors.ErrInvalidInput)
		}
		return fmt.Errorf("%w: decode yaml: %v", apperrors.ErrInvalidInput, err)
	}
	return nil
}
