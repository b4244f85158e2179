// Package links builds retailer search URLs for a recommended item.
//
// Links are only constructed; nothing here performs a request.
package links

import (
	"net/url"
	"strings"

	"github.com/okian/stylemate/internal/domain/types"
)

// Retailer names in display order.
const (
	Amazon = "Amazon"
	Myntra = "Myntra"
	Ajio   = "Ajio"
	Zara   = "ZARA"
	HM     = "H&M"
)

// retailer pairs a name with its search URL template; {q} is replaced by the
// encoded query.
type retailer struct {
	name     string
	template string
}

var retailers = []retailer{
	{Amazon, "https://www.amazon.in/s?k={q}"},
	{Myntra, "https://www.myntra.com/{q}"},
	{Ajio, "https://www.ajio.com/search/?text={q}"},
	{Zara, "https://www.zara.com/in/en/search?searchTerm={q}"},
	{HM, "https://www2.hm.com/en_in/search-results.html?q={q}"},
}

// Retailers returns the supported retailer names in display order.
func Retailers() []string {
	names := make([]string, len(retailers))
	for i, r := range retailers {
		names[i] = r.name
	}
	return names
}

// Link is one retailer search URL.
type Link struct {
	Retailer string `json:"retailer"`
	URL      string `json:"url"`
}

// LinkSet holds one link per retailer, in retailer order.
type LinkSet []Link

// Get returns the URL for retailer and whether it is present.
func (s LinkSet) Get(retailer string) (string, bool) {
	for _, l := range s {
		if l.Retailer == retailer {
			return l.URL, true
		}
	}
	return "", false
}

// Map returns the set keyed by retailer name.
func (s LinkSet) Map() map[string]string {
	m := make(map[string]string, len(s))
	for _, l := range s {
		m[l.Retailer] = l.URL
	}
	return m
}

// Prefix returns the search term prefix for gender, or "" for anything else.
func Prefix(g types.Gender) string {
	switch g {
	case types.Woman:
		return "women "
	case types.Man:
		return "men "
	case types.Kid:
		return "kids "
	}
	return ""
}

// Query returns the gender-prefixed keyword, query-escaped (spaces become '+').
func Query(keyword string, g types.Gender) string {
	return url.QueryEscape(Prefix(g) + keyword)
}

// Build returns the retailer search links for keyword. It is deterministic
// and always returns exactly one link per retailer.
func Build(keyword string, g types.Gender) LinkSet {
	q := Query(keyword, g)
	set := make(LinkSet, len(retailers))
	for i, r := range retailers {
		set[i] = Link{Retailer: r.name, URL: strings.Replace(r.template, "{q}", q, 1)}
	}
	return set
}
