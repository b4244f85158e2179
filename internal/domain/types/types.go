// Package types contains the closed enumerations that make up a styling profile.
//
// Every enum is a string type whose value is a stable slug used on the wire.
// Human-facing labels are available through Label.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownValue is returned when a string does not name a member of an enum.
var ErrUnknownValue = errors.New("unknown value")

// Gender selects the catalogue section and the body-type set.
type Gender string

const (
	Woman Gender = "woman"
	Man   Gender = "man"
	Kid   Gender = "kid"
)

// Genders lists every gender in display order.
func Genders() []Gender { return []Gender{Woman, Man, Kid} }

// Label returns the display label.
func (g Gender) Label() string {
	switch g {
	case Woman:
		return "Woman"
	case Man:
		return "Man"
	case Kid:
		return "Kid"
	}
	return string(g)
}

// ParseGender accepts a slug or label, case-insensitively.
func ParseGender(s string) (Gender, error) {
	for _, g := range Genders() {
		if matches(s, string(g), g.Label()) {
			return g, nil
		}
	}
	return "", fmt.Errorf("gender %q: %w", s, ErrUnknownValue)
}

// AgeBracket is the coarse age group of the person being styled.
type AgeBracket string

const (
	Newborn AgeBracket = "newborn"
	Child   AgeBracket = "child"
	Teen    AgeBracket = "teen"
	Adult   AgeBracket = "adult"
	Senior  AgeBracket = "senior"
)

// AgeBrackets lists every age bracket in display order.
func AgeBrackets() []AgeBracket { return []AgeBracket{Newborn, Child, Teen, Adult, Senior} }

// Label returns the display label.
func (a AgeBracket) Label() string {
	switch a {
	case Newborn:
		return "Newborn (0–1)"
	case Child:
		return "Child (2–12)"
	case Teen:
		return "Teen"
	case Adult:
		return "Adult"
	case Senior:
		return "Senior"
	}
	return string(a)
}

// ParseAgeBracket accepts a slug or label, case-insensitively.
func ParseAgeBracket(s string) (AgeBracket, error) {
	for _, a := range AgeBrackets() {
		if matches(s, string(a), a.Label()) {
			return a, nil
		}
	}
	return "", fmt.Errorf("age bracket %q: %w", s, ErrUnknownValue)
}

// SkinTone is a brightness-derived colour bucket.
type SkinTone string

const (
	Light  SkinTone = "light"
	Medium SkinTone = "medium"
	Tan    SkinTone = "tan"
	Deep   SkinTone = "deep"
)

// SkinTones lists every tone from lightest to deepest.
func SkinTones() []SkinTone { return []SkinTone{Light, Medium, Tan, Deep} }

// Label returns the display label.
func (t SkinTone) Label() string {
	switch t {
	case Light:
		return "Light"
	case Medium:
		return "Medium"
	case Tan:
		return "Tan"
	case Deep:
		return "Deep"
	}
	return string(t)
}

// ParseSkinTone accepts a slug or label, case-insensitively.
func ParseSkinTone(s string) (SkinTone, error) {
	for _, t := range SkinTones() {
		if matches(s, string(t), t.Label()) {
			return t, nil
		}
	}
	return "", fmt.Errorf("skin tone %q: %w", s, ErrUnknownValue)
}

// matches reports whether s names either the slug or the label.
func matches(s, slug, label string) bool {
	s = strings.TrimSpace(s)
	return strings.EqualFold(s, slug) || strings.EqualFold(s, label)
}
