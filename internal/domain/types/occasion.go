package types

import "fmt"

// Occasion is the context an outfit is requested for.
type Occasion string

const (
	Casual      Occasion = "casual"
	Office      Occasion = "office"
	Party       Occasion = "party"
	Traditional Occasion = "traditional"
	College     Occasion = "college"
	Beach       Occasion = "beach"
	Gym         Occasion = "gym"
)

// Occasions lists every occasion in display order.
func Occasions() []Occasion {
	return []Occasion{Casual, Office, Party, Traditional, College, Beach, Gym}
}

// Label returns the display label.
func (o Occasion) Label() string {
	switch o {
	case Casual:
		return "Casual outing"
	case Office:
		return "Office / Formal"
	case Party:
		return "Party / Night out"
	case Traditional:
		return "Traditional / Festival / Wedding"
	case College:
		return "College Wear"
	case Beach:
		return "Beach Wear"
	case Gym:
		return "Gym Wear"
	}
	return string(o)
}

// occasionAliases holds labels used by older selectors for the same occasion.
var occasionAliases = map[string]Occasion{
	"beach look": Beach,
	"festival":   Traditional,
	"wedding":    Traditional,
}

// ParseOccasion accepts a slug, label or known alias, case-insensitively.
// Matching is exact; "Office party" does not parse as Office.
func ParseOccasion(s string) (Occasion, error) {
	for _, o := range Occasions() {
		if matches(s, string(o), o.Label()) {
			return o, nil
		}
	}
	for alias, o := range occasionAliases {
		if matches(s, alias, alias) {
			return o, nil
		}
	}
	return "", fmt.Errorf("occasion %q: %w", s, ErrUnknownValue)
}
