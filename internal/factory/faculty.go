package factory

import (
	"iter"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/provider"
	"github.com/Rana718/sciseed/internal/sampler"
)

type FacultyFactory struct {
	names *sampler.Sampler
}

func NewFacultyFactory(p *provider.Provider, catalog []sampler.Category) (*FacultyFactory, error) {
	names, err := newSampler(catalog, p, "faculty")
	if err != nil {
		return nil, err
	}
	return &FacultyFactory{names: names}, nil
}

// Generate draws count faculty names from the weighted catalog; names may repeat.
func (f *FacultyFactory) Generate(count, startID int) (iter.Seq2[domain.Faculty, error], error) {
	if err := validate(count, startID); err != nil {
		return nil, err
	}
	return sequence(count, startID, func(id int) (domain.Faculty, error) {
		return newFaculty(id, f.names.One()), nil
	}), nil
}

// GenerateUnique yields one faculty per catalog entry, in catalog order.
func (f *FacultyFactory) GenerateUnique(startID int) (iter.Seq2[domain.Faculty, error], error) {
	names := f.names.Unique()
	if err := validate(len(names), startID); err != nil {
		return nil, err
	}
	return sequence(len(names), startID, func(id int) (domain.Faculty, error) {
		return newFaculty(id, names[id-startID]), nil
	}), nil
}

// UniqueCount is the number of faculties GenerateUnique produces.
func (f *FacultyFactory) UniqueCount() int {
	return f.names.Len()
}

func newFaculty(id int, name string) domain.Faculty {
	return domain.Faculty{ID: id, Name: name, UniversityName: domain.University}
}
