package domain

import (
	"fmt"

	apperrors "github.com/shhac/docsnip/internal/errors"
)

// Kind names one of the snippet tools.
type Kind string

const (
	KindDocFooter       Kind = "docfooter"
	KindRequestResponse Kind = "requestresponse"
	KindButtonList      Kind = "buttonlist"
)

// Kinds lists every snippet kind in tab order.
func Kinds() []Kind {
	return []Kind{KindDocFooter, KindRequestResponse, KindButtonList}
}

// Title returns the human-readable tool name.
func (k Kind) Title() string {
	switch k {
	case KindDocFooter:
		return "Doc Footer"
	case KindRequestResponse:
		return "Request / Response"
	case KindButtonList:
		return "Button List"
	default:
		return string(k)
	}
}

// ParseKind resolves a kind name such as "docfooter".
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownKind, name)
}
