package factory

import (
	"iter"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/errors"
	"github.com/Rana718/sciseed/internal/provider"
	"github.com/Rana718/sciseed/internal/sampler"
)

type ScientistFactory struct {
	p      *provider.Provider
	titles *sampler.Sampler
}

// NewScientistFactory samples titles from catalog; every label must be a
// title of the rank taxonomy.
func NewScientistFactory(p *provider.Provider, catalog []sampler.Category) (*ScientistFactory, error) {
	for _, c := range catalog {
		if !domain.Title(c.Label).Valid() {
			return nil, errors.Wrapf(errors.ErrInvalidWeights, "unknown scientist title %q", c.Label)
		}
	}
	titles, err := newSampler(catalog, p, "scientist title")
	if err != nil {
		return nil, err
	}
	return &ScientistFactory{p: p, titles: titles}, nil
}

func (f *ScientistFactory) Generate(count, startID int) (iter.Seq2[domain.Scientist, error], error) {
	if err := validate(count, startID); err != nil {
		return nil, err
	}
	return sequence(count, startID, func(id int) (domain.Scientist, error) {
		name, surname := f.p.Person().FullName()
		return domain.Scientist{
			ID:      id,
			Title:   domain.Title(f.titles.One()),
			Name:    name,
			Surname: surname,
		}, nil
	}), nil
}

// GeneratePerTitle generates count scientists and groups them by title.
func (f *ScientistFactory) GeneratePerTitle(count, startID int) (map[domain.Title][]domain.Scientist, error) {
	seq, err := f.Generate(count, startID)
	if err != nil {
		return nil, err
	}
	return GroupByTitle(seq)
}

// GroupByTitle folds seq into a map from title to the scientists holding it,
// in generation order. Every title of the taxonomy is present as a key, with
// an empty slice when nobody drew it.
func GroupByTitle(seq iter.Seq2[domain.Scientist, error]) (map[domain.Title][]domain.Scientist, error) {
	groups := make(map[domain.Title][]domain.Scientist, len(domain.Titles()))
	for _, t := range domain.Titles() {
		groups[t] = []domain.Scientist{}
	}
	for s, err := range seq {
		if err != nil {
			return nil, err
		}
		groups[s.Title] = append(groups[s.Title], s)
	}
	return groups, nil
}
