// Package sampler draws labels from a fixed catalog of weighted categories.
package sampler

import (
	"sort"

	"github.com/Rana718/sciseed/internal/errors"
)

// Category is a label with a non-negative weight. Weights are relative and
// need not sum to one.
type Category struct {
	Label  string
	Weight float64
}

// Float64Source yields values in [0, 1). *provider.Provider and *rand.Rand
// both satisfy it.
type Float64Source interface {
	Float64() float64
}

type Sampler struct {
	categories []Category
	cumulative []float64
	total      float64
	rng        Float64Source
}

func New(categories []Category, rng Float64Source) (*Sampler, error) {
	if len(categories) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidWeights, "catalog is empty")
	}
	if rng == nil {
		return nil, errors.InvalidArgumentf("random source is nil")
	}

	cumulative := make([]float64, len(categories))
	var total float64
	for i, c := range categories {
		if c.Weight < 0 {
			return nil, errors.Wrapf(errors.ErrInvalidWeights, "category %q has negative weight %v", c.Label, c.Weight)
		}
		total += c.Weight
		cumulative[i] = total
	}
	if total == 0 {
		return nil, errors.Wrap(errors.ErrInvalidWeights, "all weights are zero")
	}

	return &Sampler{
		categories: append([]Category(nil), categories...),
		cumulative: cumulative,
		total:      total,
		rng:        rng,
	}, nil
}

// Draw returns n labels drawn independently with replacement.
func (s *Sampler) Draw(n int) ([]string, error) {
	if n <= 0 {
		return nil, errors.InvalidArgumentf("draw count must be positive, got %d", n)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = s.One()
	}
	return out, nil
}

// One draws a single label.
func (s *Sampler) One() string {
	x := s.rng.Float64() * s.total
	i := sort.Search(len(s.cumulative), func(i int) bool { return s.cumulative[i] > x })
	if i == len(s.cumulative) {
		// x rounded up to total; fall back to the last positive weight.
		i = s.lastPositive()
	}
	return s.categories[i].Label
}

// Unique enumerates every label exactly once in declared order, ignoring weights.
func (s *Sampler) Unique() []string {
	out := make([]string, len(s.categories))
	for i, c := range s.categories {
		out[i] = c.Label
	}
	return out
}

// Len reports the catalog size.
func (s *Sampler) Len() int {
	return len(s.categories)
}

func (s *Sampler) lastPositive() int {
	for i := len(s.categories) - 1; i >= 0; i-- {
		if s.categories[i].Weight > 0 {
			return i
		}
	}
	return len(s.categories) - 1
}
