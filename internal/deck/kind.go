package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned for a deck kind that has no constructor
var ErrUnknownKind = errors.New("unknown deck kind")

// Kind names one of the deck constructors
type Kind string

const (
	KindStandard Kind = "standard"
	KindJokers   Kind = "jokers"
	KindMultiple Kind = "multiple"
)

// Kinds returns every supported kind
func Kinds() []Kind {
	return []Kind{KindStandard, KindJokers, KindMultiple}
}

// ParseKind parses a kind name. An empty name means KindStandard.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return KindStandard, nil
	}
	for _, k := range Kinds() {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKind, name)
}

// New builds a fresh deck of the given kind. decks is only used by
// KindMultiple.
func New(kind Kind, decks int) (*Deck, error) {
	switch kind {
	case KindStandard, "":
		return NewStandard(), nil
	case KindJokers:
		return NewStandardWithJokers(), nil
	case KindMultiple:
		return NewStandardMultiple(decks), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}
