// Package model contains domain models passed between layers.
package model

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/okian/stylemate/internal/domain/types"
)

// ErrInvalidProfile is returned when profile fields are unknown or inconsistent.
var ErrInvalidProfile = errors.New("invalid profile")

// Profile is the complete, validated input to the recommendation engine.
// It is immutable; construct it with NewProfile or ParseProfile.
type Profile struct {
	occasion types.Occasion
	gender   types.Gender
	age      types.AgeBracket
	body     types.BodyType
	skin     types.SkinTone
}

// NewProfile validates the fields and returns a Profile. For newborns the
// body type is forced to the newborn sentinel and the supplied value is ignored.
func NewProfile(occasion types.Occasion, gender types.Gender, age types.AgeBracket, body types.BodyType, skin types.SkinTone) (Profile, error) {
	if !contains(types.Occasions(), occasion) {
		return Profile{}, fmt.Errorf("%w: occasion %q", ErrInvalidProfile, occasion)
	}
	if !contains(types.Genders(), gender) {
		return Profile{}, fmt.Errorf("%w: gender %q", ErrInvalidProfile, gender)
	}
	if !contains(types.AgeBrackets(), age) {
		return Profile{}, fmt.Errorf("%w: age bracket %q", ErrInvalidProfile, age)
	}
	if !contains(types.SkinTones(), skin) {
		return Profile{}, fmt.Errorf("%w: skin tone %q", ErrInvalidProfile, skin)
	}
	if age == types.Newborn {
		body = types.NewbornBody
	}
	if !contains(types.BodyTypesFor(gender, age), body) {
		return Profile{}, fmt.Errorf("%w: body type %q is not valid for %s/%s", ErrInvalidProfile, body, gender, age)
	}
	return Profile{occasion: occasion, gender: gender, age: age, body: body, skin: skin}, nil
}

// ProfileInput carries unparsed profile fields as submitted by a client.
type ProfileInput struct {
	Occasion   string `json:"occasion"`
	Gender     string `json:"gender"`
	AgeBracket string `json:"age_bracket"`
	BodyType   string `json:"body_type"`
	SkinTone   string `json:"skin_tone"`
}

// ParseProfile parses every field of in (slugs or labels) and validates the result.
func ParseProfile(in ProfileInput) (Profile, error) {
	occasion, err := types.ParseOccasion(in.Occasion)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	gender, err := types.ParseGender(in.Gender)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	age, err := types.ParseAgeBracket(in.AgeBracket)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	skin, err := types.ParseSkinTone(in.SkinTone)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}

	var body types.BodyType
	if age != types.Newborn {
		body, err = types.ParseBodyType(in.BodyType)
		if err != nil {
			return Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
		}
	}
	return NewProfile(occasion, gender, age, body, skin)
}

func (p Profile) Occasion() types.Occasion     { return p.occasion }
func (p Profile) Gender() types.Gender         { return p.gender }
func (p Profile) AgeBracket() types.AgeBracket { return p.age }
func (p Profile) BodyType() types.BodyType     { return p.body }
func (p Profile) SkinTone() types.SkinTone     { return p.skin }

// MarshalJSON renders the profile with the same keys ProfileInput accepts.
func (p Profile) MarshalJSON() ([]byte, error) {
	return json.Marshal(ProfileInput{
		Occasion:   string(p.occasion),
		Gender:     string(p.gender),
		AgeBracket: string(p.age),
		BodyType:   string(p.body),
		SkinTone:   string(p.skin),
	})
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
