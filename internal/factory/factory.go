// Package factory produces entity records. Each factory returns a lazy,
// finite sequence that can be ranged over more than once; every pass draws
// fresh content, while identifiers always run densely from the start offset.
package factory

import (
	"iter"

	"github.com/Rana718/sciseed/internal/errors"
	"github.com/Rana718/sciseed/internal/provider"
	"github.com/Rana718/sciseed/internal/sampler"
	"github.com/Rana718/sciseed/internal/tier"
)

// Set bundles one factory per entity around a shared provider.
type Set struct {
	Address     *AddressFactory
	Faculty     *FacultyFactory
	Conference  *ConferenceFactory
	Scientist   *ScientistFactory
	PHD         *PHDFactory
	Publication *PublicationFactory
	Funding     *FundingFactory
}

// Catalogs are the weighted category lists the factories sample from.
type Catalogs struct {
	Faculties []sampler.Category
	Titles    []sampler.Category
	Funders   []sampler.Category
}

func DefaultCatalogs() Catalogs {
	return Catalogs{
		Faculties: FacultyCatalog,
		Titles:    TitleCatalog,
		Funders:   FunderCatalog,
	}
}

// WithWeights returns a copy of catalog where every label found in weights
// takes that weight. Unknown labels are an error.
func WithWeights(catalog []sampler.Category, weights map[string]float64) ([]sampler.Category, error) {
	out := append([]sampler.Category(nil), catalog...)
	matched := 0
	for i := range out {
		if w, ok := weights[out[i].Label]; ok {
			out[i].Weight = w
			matched++
		}
	}
	if matched != len(weights) {
		return nil, errors.Wrapf(errors.ErrInvalidWeights, "%d of %d weight overrides name no catalog entry", len(weights)-matched, len(weights))
	}
	return out, nil
}

func NewSet(p *provider.Provider, catalogs Catalogs) (*Set, error) {
	faculty, err := NewFacultyFactory(p, catalogs.Faculties)
	if err != nil {
		return nil, err
	}
	scientist, err := NewScientistFactory(p, catalogs.Titles)
	if err != nil {
		return nil, err
	}
	funding, err := NewFundingFactory(p, catalogs.Funders, tier.NewResolver(p.Date(), p.Now))
	if err != nil {
		return nil, err
	}
	return &Set{
		Address:     NewAddressFactory(p),
		Faculty:     faculty,
		Conference:  NewConferenceFactory(p),
		Scientist:   scientist,
		PHD:         NewPHDFactory(p),
		Publication: NewPublicationFactory(p),
		Funding:     funding,
	}, nil
}

// Collect drains seq into a slice, stopping at the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for v, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func validate(count, startID int) error {
	if count <= 0 {
		return errors.InvalidArgumentf("count must be positive, got %d", count)
	}
	if startID <= 0 {
		return errors.InvalidArgumentf("start id must be positive, got %d", startID)
	}
	return nil
}

// sequence yields build(id) for ids startID..startID+count-1.
func sequence[T any](count, startID int, build func(id int) (T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for id := startID; id < startID+count; id++ {
			v, err := build(id)
			if err != nil {
				var zero T
				yield(zero, errors.Wrapf(err, "record %d", id))
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

func newSampler(catalog []sampler.Category, p *provider.Provider, what string) (*sampler.Sampler, error) {
	s, err := sampler.New(catalog, p)
	if err != nil {
		return nil, errors.Wrapf(err, "%s catalog", what)
	}
	return s, nil
}
