package types

import "fmt"

// BodyType is a silhouette category. The valid set depends on gender and age.
type BodyType string

const (
	Pear             BodyType = "pear"
	Apple            BodyType = "apple"
	Hourglass        BodyType = "hourglass"
	Rectangle        BodyType = "rectangle"
	InvertedTriangle BodyType = "inverted_triangle"

	Slender  BodyType = "slender"
	Broad    BodyType = "broad"
	Athletic BodyType = "athletic"
	Oval     BodyType = "oval"

	// ChildBody is the only body type for kids.
	ChildBody BodyType = "child"
	// NewbornBody is fixed for the newborn age bracket and never asked of the user.
	NewbornBody BodyType = "newborn"
)

// Label returns the display label.
func (b BodyType) Label() string {
	switch b {
	case Pear:
		return "Pear"
	case Apple:
		return "Apple"
	case Hourglass:
		return "Hourglass"
	case Rectangle:
		return "Rectangle"
	case InvertedTriangle:
		return "Inverted Triangle"
	case Slender:
		return "Slender"
	case Broad:
		return "Broad"
	case Athletic:
		return "Athletic"
	case Oval:
		return "Oval"
	case ChildBody:
		return "Child"
	case NewbornBody:
		return "Newborn"
	}
	return string(b)
}

// BodyTypesFor returns the body types a person of gender g and age a may have.
// Newborns always get the single NewbornBody sentinel.
func BodyTypesFor(g Gender, a AgeBracket) []BodyType {
	if a == Newborn {
		return []BodyType{NewbornBody}
	}
	switch g {
	case Woman:
		return []BodyType{Pear, Apple, Hourglass, Rectangle, InvertedTriangle}
	case Man:
		return []BodyType{Slender, Broad, Athletic, Oval}
	case Kid:
		return []BodyType{ChildBody}
	}
	return nil
}

// ParseBodyType accepts a slug or label of any known body type, case-insensitively.
// Membership in a gender's set is checked separately by BodyTypesFor.
func ParseBodyType(s string) (BodyType, error) {
	all := []BodyType{
		Pear, Apple, Hourglass, Rectangle, InvertedTriangle,
		Slender, Broad, Athletic, Oval, ChildBody, NewbornBody,
	}
	for _, b := range all {
		if matches(s, string(b), b.Label()) {
			return b, nil
		}
	}
	return "", fmt.Errorf("body type %q: %w", s, ErrUnknownValue)
}
