package domain

import "errors"

// Kind is the top-level type of a portfolio item or skill.
type Kind string

const (
	KindAudio     Kind = "audio"
	KindVisual    Kind = "visual"
	KindTechnical Kind = "technical"
)

var (
	ErrInvalidKind     = errors.New("invalid kind")
	ErrInvalidCategory = errors.New("invalid category")
)

// Kinds lists every valid Kind in display order.
var Kinds = []Kind{KindAudio, KindVisual, KindTechnical}

var categories = map[Kind][]string{
	KindAudio:     {"music", "sound-design", "podcast"},
	KindVisual:    {"motion", "film", "digital-art"},
	KindTechnical: {"web", "interactive", "app"},
}

// ParseKind accepts only the exact lowercase tokens.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", ErrInvalidKind
	}
	return k, nil
}

func (k Kind) Valid() bool {
	_, ok := categories[k]
	return ok
}

func (k Kind) String() string { return string(k) }

// Categories returns a copy of the closed category set for k.
func (k Kind) Categories() []string {
	return append([]string(nil), categories[k]...)
}

// ValidCategory reports whether category belongs to kind k.
func ValidCategory(k Kind, category string) bool {
	for _, c := range categories[k] {
		if c == category {
			return true
		}
	}
	return false
}
