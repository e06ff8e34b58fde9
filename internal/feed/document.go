package feed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// ErrInvalidDocument marks payloads that cannot be treated as a feed document:
// empty input, malformed XML, or an unrecognized root element.
var ErrInvalidDocument = errors.New("invalid feed document")

type Kind string

const (
	KindStandings Kind = "standings"
	KindPlayers   Kind = "players"

	rootStandings = "ArrayOfStanding"
	rootPlayers   = "ArrayOfPlayer"
)

// Document is a validated upstream payload. It holds the parsed tree only;
// record extraction is a separate, repeatable step with no side effects.
type Document struct {
	kind Kind
	root *etree.Element
}

// ParseDocument validates raw feed bytes and classifies the document by its
// root element. The parser is permissive about encoding quirks the provider
// occasionally ships, but the root must be one of the two known shapes.
func ParseDocument(raw []byte) (*Document, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidDocument)
	}

	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrInvalidDocument)
	}

	switch root.Tag {
	case rootStandings:
		return &Document{kind: KindStandings, root: root}, nil
	case rootPlayers:
		return &Document{kind: KindPlayers, root: root}, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized root element %q", ErrInvalidDocument, root.Tag)
	}
}

func (d *Document) Kind() Kind {
	if d == nil {
		return ""
	}
	return d.kind
}

// Root returns the root element tag, for error messages.
func (d *Document) Root() string {
	if d == nil || d.root == nil {
		return ""
	}
	return d.root.Tag
}
