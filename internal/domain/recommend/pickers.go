package recommend

import "github.com/okian/stylemate/internal/domain/types"

// Item is one suggested product category.
type Item struct {
	Label   string `json:"label"`
	Keyword string `json:"keyword"`
}

// JeansLabel is the label given to every bottoms item.
const JeansLabel = "Jeans"

// PickTops returns the tops or outfit items for an occasion. Newborns always
// get the onesie; a table miss answers with the casual top.
func PickTops(o types.Occasion, g types.Gender, a types.AgeBracket) []Item {
	items, ok := lookupTops(o, g, a)
	if !ok {
		return clone(casualTops)
	}
	return items
}

func lookupTops(o types.Occasion, g types.Gender, a types.AgeBracket) ([]Item, bool) {
	if a == types.Newborn {
		return clone(newbornTops), true
	}
	byGender, ok := topsTable[o]
	if !ok {
		return nil, false
	}
	items, ok := byGender[g]
	if !ok {
		return nil, false
	}
	return clone(items), true
}

// PickJeans returns jeans style names for a gender and body type. Kids and
// body types without a dedicated list get the generic comfort fit.
func PickJeans(g types.Gender, b types.BodyType) []string {
	if styles, ok := jeansTable[g][b]; ok {
		return append([]string(nil), styles...)
	}
	return append([]string(nil), genericJeans...)
}

// JeansItems wraps style names as items labelled "Jeans".
func JeansItems(styles []string) []Item {
	items := make([]Item, len(styles))
	for i, s := range styles {
		items[i] = Item{Label: JeansLabel, Keyword: s}
	}
	return items
}

// WantsJeans reports whether bottoms are recommended at all. Traditional wear
// does not pair with jeans and newborns are fully covered by their own items.
func WantsJeans(o types.Occasion, a types.AgeBracket) bool {
	return o != types.Traditional && a != types.Newborn
}

// PickFootwearAndAccessories returns footwear, a bag and, for non-casual
// occasions, one more accessory.
func PickFootwearAndAccessories(o types.Occasion, a types.AgeBracket) []Item {
	if a == types.Newborn {
		return clone(newbornExtras)
	}
	if items, ok := extrasTable[o]; ok {
		return clone(items)
	}
	return clone(casualExtras)
}

func clone(items []Item) []Item {
	return append([]Item(nil), items...)
}
