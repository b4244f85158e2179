package recommend

import "github.com/okian/stylemate/internal/domain/types"

// Keywords are gender neutral; the link builder adds the gender prefix.

var newbornTops = []Item{{"Cotton onesie", "newborn cotton onesie"}}

var casualTops = []Item{{"Casual top / t-shirt", "casual top"}}

// topsTable is keyed by occasion, then gender.
var topsTable = map[types.Occasion]map[types.Gender][]Item{
	types.Casual: {
		types.Woman: casualTops,
		types.Man:   casualTops,
		types.Kid:   casualTops,
	},
	types.Office: {
		types.Woman: {{"Formal blouse", "formal blouse"}},
		types.Man:   {{"Formal shirt", "formal shirt"}, {"Blazer", "blazer"}},
		types.Kid:   {{"Smart polo shirt", "polo shirt"}},
	},
	types.Party: {
		types.Woman: {
			{"Bodycon dress", "bodycon dress"},
			{"Satin slip dress", "satin slip dress"},
			{"Sequin mini skirt", "sequin skirt"},
			{"Midi skirt", "midi skirt"},
			{"Off-shoulder top", "off shoulder top"},
			{"Corset top", "corset top"},
		},
		types.Man: {{"Party shirt", "party wear shirt"}, {"Casual blazer", "casual blazer"}},
		types.Kid: {{"Party dress / shirt", "party wear"}},
	},
	types.Traditional: {
		types.Woman: {{"Saree", "saree"}, {"Lehenga choli", "lehenga choli"}, {"Anarkali kurta", "anarkali kurta"}},
		types.Man:   {{"Kurta pyjama", "kurta pyjama"}, {"Nehru jacket", "nehru jacket"}},
		types.Kid:   {{"Ethnic wear set", "ethnic wear"}},
	},
	types.College: {
		types.Woman: {{"Graphic tee", "graphic t-shirt"}, {"Oversized shirt", "oversized shirt"}},
		types.Man:   {{"Graphic tee", "graphic t-shirt"}, {"Hoodie", "hoodie"}},
		types.Kid:   {{"Printed t-shirt", "printed t-shirt"}},
	},
	types.Beach: {
		types.Woman: {
			{"Floral sundress", "floral sundress"},
			{"Crop top", "crop top"},
			{"Beach wrap skirt", "beach wrap skirt"},
			{"Linen shirt", "linen shirt"},
			{"Kaftan cover-up", "kaftan"},
			{"Denim shorts", "denim shorts"},
		},
		types.Man: {{"Linen shirt", "linen shirt"}, {"Board shorts", "board shorts"}},
		types.Kid: {{"Swimwear set", "swimwear"}},
	},
	types.Gym: {
		types.Woman: {{"Sports bra", "sports bra"}, {"Leggings", "leggings"}, {"Dry-fit tee", "dry fit t-shirt"}},
		types.Man:   {{"Dry-fit t-shirt", "dry fit t-shirt"}, {"Training shorts", "training shorts"}},
		types.Kid:   {{"Sports t-shirt", "sports t-shirt"}},
	},
}

// genericJeans is used for kids and for body types without a cut list.
var genericJeans = []string{"Comfort fit jeans"}

// jeansTable is keyed by gender, then body type.
var jeansTable = map[types.Gender]map[types.BodyType][]string{
	types.Woman: {
		types.Pear:             {"Straight fit jeans", "Bootcut jeans"},
		types.Apple:            {"High-rise straight jeans", "Bootcut jeans"},
		types.Hourglass:        {"High-waist skinny jeans", "Flared jeans", "Mom jeans"},
		types.Rectangle:        {"Boyfriend jeans", "Wide-leg jeans", "Paperbag waist jeans"},
		types.InvertedTriangle: {"Wide-leg jeans", "Flared jeans", "Cargo jeans"},
	},
	types.Man: {
		types.Slender:  {"Slim fit jeans", "Skinny jeans"},
		types.Broad:    {"Relaxed fit jeans", "Straight fit jeans"},
		types.Athletic: {"Athletic taper jeans", "Slim straight jeans"},
		types.Oval:     {"Regular fit jeans", "Bootcut jeans", "Comfort stretch jeans"},
	},
}

var newbornExtras = []Item{
	{"Soft baby booties", "newborn socks"},
	{"Cotton cap", "newborn cap"},
}

var casualExtras = []Item{
	{"Sneakers / heels", "trendy footwear"},
	{"Sling bag", "fashion bag"},
}

// extrasTable holds footwear and accessories for occasions that differ from casual.
var extrasTable = map[types.Occasion][]Item{
	types.Office: {
		{"Formal shoes", "formal shoes"},
		{"Office bag", "office bag"},
		{"Watch", "watch"},
	},
	types.Party: {
		{"Party heels / loafers", "party footwear"},
		{"Clutch / sling bag", "clutch bag"},
		{"Statement jewellery", "statement jewellery"},
	},
	types.Gym: {
		{"Running shoes", "running shoes"},
		{"Gym bag", "gym bag"},
		{"Fitness band", "fitness band"},
	},
	types.Beach: {
		{"Flip-flops", "flip flops"},
		{"Beach tote", "beach tote bag"},
		{"Sunglasses", "sunglasses"},
	},
}
