package factory

import (
	"iter"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/provider"
)

type AddressFactory struct {
	p *provider.Provider
}

func NewAddressFactory(p *provider.Provider) *AddressFactory {
	return &AddressFactory{p: p}
}

func (f *AddressFactory) Generate(count, startID int) (iter.Seq2[domain.Address, error], error) {
	if err := validate(count, startID); err != nil {
		return nil, err
	}
	return sequence(count, startID, func(id int) (domain.Address, error) {
		a := f.p.Address()
		return domain.Address{
			ID:             id,
			StreetName:     a.Street(),
			BuildingNumber: a.BuildingNumber(),
			City:           a.City(),
			Country:        a.Country(),
			PostalCode:     a.PostalCode(),
		}, nil
	}), nil
}
