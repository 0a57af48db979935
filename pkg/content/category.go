package content

import (
	"strings"

	"github.com/pkg/errors"
)

// Category is the content kind currently selected on the screen.
type Category int

const (
	None Category = iota
	Cats
	Dogs
)

func (c Category) String() string {
	switch c {
	case Cats:
		return "cats"
	case Dogs:
		return "dogs"
	default:
		return "none"
	}
}

// Loadable reports whether a load may be triggered for c.
func (c Category) Loadable() bool {
	return c == Cats || c == Dogs
}

// FailureText is the message shown when a load for c fails.
func (c Category) FailureText() string {
	if c == Dogs {
		return "Failed to load an image"
	}
	return "Failed to load a fact"
}

func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cat", "cats":
		return Cats, nil
	case "dog", "dogs":
		return Dogs, nil
	case "", "none":
		return None, nil
	}
	return None, errors.Errorf("unknown category %q", s)
}
