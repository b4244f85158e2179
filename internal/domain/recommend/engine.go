// Package recommend turns a styling profile into an ordered list of
// recommended items by consulting static rule tables.
//
// Output order is tops, then jeans (when applicable), then footwear and
// accessories, each in rule-definition order. There is no ranking and no
// de-duplication.
package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/stylemate/internal/domain/links"
	"github.com/okian/stylemate/internal/domain/model"
	"github.com/okian/stylemate/pkg/logger"
	"github.com/okian/stylemate/pkg/metrics"
)

// Category groups entries for display.
type Category string

const (
	CategoryTop      Category = "top"
	CategoryBottom   Category = "bottom"
	CategoryFootwear Category = "footwear_accessory"
)

// Entry is an item together with its shopping links.
type Entry struct {
	Item
	Category Category      `json:"category"`
	Links    links.LinkSet `json:"links"`
}

// Recommendation is the engine output for one profile.
type Recommendation struct {
	Profile model.Profile `json:"profile"`
	Summary string        `json:"summary"`
	Items   []Entry       `json:"items"`
}

// Engine composes the pickers. The zero value is not usable; call NewEngine.
type Engine struct {
	strict bool
	logger logger.Logger
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithStrict makes a rule table miss panic instead of falling back to the
// casual default. Use it in tests and debug builds.
func WithStrict(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// WithLogger sets the logger used to report rule table misses.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewEngine creates an engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Items returns the composed item list for p without links.
func (e *Engine) Items(ctx context.Context, p model.Profile) []Item {
	entries := e.compose(ctx, p)
	items := make([]Item, len(entries))
	for i, en := range entries {
		items[i] = en.Item
	}
	return items
}

// Recommend returns the full recommendation for p, with a link set per item.
func (e *Engine) Recommend(ctx context.Context, p model.Profile) Recommendation {
	entries := e.compose(ctx, p)
	for i := range entries {
		entries[i].Links = links.Build(entries[i].Keyword, p.Gender())
	}
	return Recommendation{Profile: p, Summary: Summary(p), Items: entries}
}

func (e *Engine) compose(ctx context.Context, p model.Profile) []Entry {
	tops, ok := lookupTops(p.Occasion(), p.Gender(), p.AgeBracket())
	if !ok {
		e.unsupported(ctx, p)
		tops = clone(casualTops)
	}

	var entries []Entry
	add := func(items []Item, c Category) {
		for _, it := range items {
			entries = append(entries, Entry{Item: it, Category: c})
		}
	}
	add(tops, CategoryTop)
	if WantsJeans(p.Occasion(), p.AgeBracket()) {
		add(JeansItems(PickJeans(p.Gender(), p.BodyType())), CategoryBottom)
	}
	add(PickFootwearAndAccessories(p.Occasion(), p.AgeBracket()), CategoryFootwear)
	return entries
}

// Summary explains which profile fields drove the pick.
func Summary(p model.Profile) string {
	return fmt.Sprintf("Selected based on %s, %s, and %s skin tone.",
		strings.ToLower(p.Occasion().Label()),
		strings.ToLower(p.AgeBracket().Label()),
		strings.ToLower(p.SkinTone().Label()),
	)
}

// unsupported handles a profile the tables do not cover. A validated profile
// never gets here, so reaching it means a table is incomplete.
func (e *Engine) unsupported(ctx context.Context, p model.Profile) {
	if e.strict {
		panic(fmt.Sprintf("recommend: no rule for occasion=%s gender=%s age=%s", p.Occasion(), p.Gender(), p.AgeBracket()))
	}
	metrics.RecordRulesFallback()
	if e.logger != nil {
		e.logger.Warn(ctx, "no rule for profile; using casual default",
			logger.String("occasion", string(p.Occasion())),
			logger.String("gender", string(p.Gender())),
			logger.String("age", string(p.AgeBracket())),
		)
	}
}
