// Package selection picks the items one tier contributes to a pool:
// drop excluded and duplicate ids, shuffle fairly, cut to capacity.
package selection

import (
	"math/rand"

	"github.com/ibanezbetes/trinity-sub006/internal/model"
)

type Policy struct {
	rnd *rand.Rand
}

type PolicyOption func(*Policy)

// WithRand pins the shuffle source, for tests.
func WithRand(rnd *rand.Rand) PolicyOption {
	return func(p *Policy) {
		p.rnd = rnd
	}
}

func New(opts ...PolicyOption) *Policy {
	p := &Policy{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Pick filters items against the exclusion set, deduplicates by id within the
// batch, shuffles the survivors so repeated generations do not surface the
// same sort-order prefix, and truncates to limit. The input slice is not
// modified. Exclusion membership is the caller's to maintain; Pick does not
// mutate exclude.
func (p *Policy) Pick(items []model.CatalogItem, exclude model.ExclusionSet, limit int) []model.CatalogItem {
	if limit <= 0 {
		return nil
	}

	seen := make(map[int]struct{}, len(items))
	candidates := make([]model.CatalogItem, 0, len(items))
	for _, item := range items {
		if exclude.Has(item.ID) {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		candidates = append(candidates, item)
	}

	p.shuffle(candidates)

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

func (p *Policy) shuffle(items []model.CatalogItem) {
	swap := func(i, j int) {
		items[i], items[j] = items[j], items[i]
	}
	if p.rnd != nil {
		p.rnd.Shuffle(len(items), swap)
		return
	}
	rand.Shuffle(len(items), swap)
}
