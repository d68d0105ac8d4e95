// Package quality gates raw catalog items before they may enter a content
// pool. The rules are a curation heuristic, not a protocol requirement of the
// catalog service.
package quality

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

var (
	ErrMissingTitle    = errors.New("item has no title or release date")
	ErrNonWesternTitle = errors.New("title script ratio below threshold")
	ErrShortOverview   = errors.New("overview too short")
	ErrLowRating       = errors.New("rating or vote count below threshold")
	ErrMissingFields   = errors.New("item is missing required fields")
)

// Config carries every tunable of the gate. The script-ratio check in
// particular is a product decision, so the threshold and the accepted ranges
// are configuration rather than constants.
type Config struct {
	MinRating      float64
	MinVotes       int
	MinOverviewLen int

	// ScriptRatio is the minimum share of classifiable title runes that must
	// fall within Scripts.
	ScriptRatio float64
	Scripts     []*unicode.RangeTable
}

func DefaultConfig() Config {
	return Config{
		MinRating:      5.0,
		MinVotes:       10,
		MinOverviewLen: 20,
		ScriptRatio:    0.7,
		Scripts: []*unicode.RangeTable{
			unicode.Latin,
			unicode.Cyrillic,
		},
	}
}

type Validator struct {
	cfg Config
}

func NewValidator(cfg Config) *Validator {
	if cfg.Scripts == nil {
		cfg.Scripts = DefaultConfig().Scripts
	}
	return &Validator{cfg: cfg}
}

// Item is the slice of a catalog record the gate looks at.
type Item struct {
	Title          string
	Overview       string
	ReleaseDate    string
	VoteAverage    float64
	VoteCount      int
	GenreIDs       []int
	HasVoteAverage bool
}

// Validate returns nil when the item passes all five rules, or the sentinel
// of the first rule it fails.
func (v *Validator) Validate(item Item) error {
	if item.Title == "" || item.ReleaseDate == "" {
		return ErrMissingTitle
	}
	if !v.westernScript(item.Title) {
		return ErrNonWesternTitle
	}
	if utf8.RuneCountInString(item.Overview) < v.cfg.MinOverviewLen {
		return ErrShortOverview
	}
	if item.VoteAverage < v.cfg.MinRating || item.VoteCount < v.cfg.MinVotes {
		return ErrLowRating
	}
	if item.GenreIDs == nil || !item.HasVoteAverage {
		return ErrMissingFields
	}
	return nil
}

func (v *Validator) Passes(item Item) bool {
	return v.Validate(item) == nil
}

// westernScript strips digits, punctuation, symbols and whitespace, then
// requires the configured share of the remaining runes to belong to one of
// the accepted ranges. A title with nothing left to classify is accepted.
func (v *Validator) westernScript(title string) bool {
	var total, matched int
	for _, r := range title {
		if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.In(r, v.cfg.Scripts...) {
			matched++
		}
	}
	if total == 0 {
		return true
	}
	return float64(matched) >= v.cfg.ScriptRatio*float64(total)
}
