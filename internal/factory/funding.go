package factory

import (
	"iter"

	"github.com/shopspring/decimal"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/provider"
	"github.com/Rana718/sciseed/internal/sampler"
	"github.com/Rana718/sciseed/internal/tier"
)

var (
	MinBudget = decimal.NewFromInt(50_000)
	MaxBudget = decimal.NewFromInt(5_000_000)
)

type FundingFactory struct {
	p        *provider.Provider
	funders  *sampler.Sampler
	resolver *tier.Resolver
}

func NewFundingFactory(p *provider.Provider, catalog []sampler.Category, resolver *tier.Resolver) (*FundingFactory, error) {
	funders, err := newSampler(catalog, p, "funder")
	if err != nil {
		return nil, err
	}
	return &FundingFactory{p: p, funders: funders, resolver: resolver}, nil
}

// Generate produces count fundings whose end date is derived from the budget tier.
func (f *FundingFactory) Generate(count, startID int) (iter.Seq2[domain.Funding, error], error) {
	if err := validate(count, startID); err != nil {
		return nil, err
	}
	return sequence(count, startID, func(id int) (domain.Funding, error) {
		budget, err := f.p.Numeric().Money(MinBudget, MaxBudget)
		if err != nil {
			return domain.Funding{}, err
		}
		start, end, err := f.resolver.Resolve(budget)
		if err != nil {
			return domain.Funding{}, err
		}
		return domain.Funding{
			ID:        id,
			Funder:    f.funders.One(),
			Budget:    budget,
			StartDate: start,
			EndDate:   end,
		}, nil
	}), nil
}
