package app

import (
	"github.com/okian/stylemate/internal/domain/links"
	"github.com/okian/stylemate/internal/domain/types"
)

// Choice is one selectable enum value.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Catalog lists every value a client may submit, so a shell can render its
// selectors without hard-coding them.
type Catalog struct {
	Occasions   []Choice            `json:"occasions"`
	Genders     []Choice            `json:"genders"`
	AgeBrackets []Choice            `json:"age_brackets"`
	SkinTones   []Choice            `json:"skin_tones"`
	BodyTypes   map[string][]Choice `json:"body_types"`
	Retailers   []string            `json:"retailers"`
}

type labelled interface {
	~string
	Label() string
}

func choices[T labelled](vals []T) []Choice {
	out := make([]Choice, len(vals))
	for i, v := range vals {
		out[i] = Choice{Value: string(v), Label: v.Label()}
	}
	return out
}

// Options returns the catalog. Body types are keyed by gender; newborns of
// any gender are never asked for one.
func (s *Service) Options() Catalog {
	bodies := make(map[string][]Choice, len(types.Genders()))
	for _, g := range types.Genders() {
		bodies[string(g)] = choices(types.BodyTypesFor(g, types.Adult))
	}
	return Catalog{
		Occasions:   choices(types.Occasions()),
		Genders:     choices(types.Genders()),
		AgeBrackets: choices(types.AgeBrackets()),
		SkinTones:   choices(types.SkinTones()),
		BodyTypes:   bodies,
		Retailers:   links.Retailers(),
	}
}
