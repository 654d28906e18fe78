// Package stitcher assigns foreign keys across independently generated
// batches: conferences to faculties and addresses, scientists to faculties,
// and PhDs to their candidate and supervisor.
package stitcher

import (
	"slices"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/errors"
	"github.com/Rana718/sciseed/internal/factory"
	"github.com/Rana718/sciseed/internal/sampler"
)

// AssignConferences splits confs, in order, into facultyCount contiguous
// blocks of equal size. Block i gets faculty id i; each conference gets the
// address id equal to its 1-based position.
func AssignConferences(confs []domain.Conference, facultyCount int) error {
	if facultyCount <= 0 {
		return errors.Wrapf(errors.ErrUnevenDistribution, "faculty count must be positive, got %d", facultyCount)
	}
	if len(confs) == 0 || len(confs)%facultyCount != 0 {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrUnevenDistribution, "%d conferences cannot be split evenly across %d faculties", len(confs), facultyCount),
			"use a conference count that is a multiple of %d", facultyCount,
		)
	}

	perFaculty := len(confs) / facultyCount
	for i := range confs {
		confs[i].FacultyID = i/perFaculty + 1
		confs[i].AddressID = i + 1
	}
	return nil
}

// FacultyBatch is everything the scientist/PhD pass produces for one faculty.
type FacultyBatch struct {
	FacultyID   int
	Scientists  []domain.Scientist
	Memberships []domain.ScientistFaculty
	Seniors     []domain.Scientist
	Juniors     []domain.Scientist
	PHDs        []domain.PHD
}

// Result is the concatenation of every faculty batch.
type Result struct {
	Batches     []FacultyBatch
	Scientists  []domain.Scientist
	Memberships []domain.ScientistFaculty
	PHDs        []domain.PHD
}

type Stitcher struct {
	scientists *factory.ScientistFactory
	phds       *factory.PHDFactory
	rng        sampler.Float64Source
}

func New(scientists *factory.ScientistFactory, phds *factory.PHDFactory, rng sampler.Float64Source) *Stitcher {
	return &Stitcher{scientists: scientists, phds: phds, rng: rng}
}

// StitchFaculty generates perFaculty scientists for facultyID and one PhD per
// junior scientist, each supervised by a senior scientist of the same batch.
func (s *Stitcher) StitchFaculty(facultyID, scientistStart, phdStart, perFaculty int) (FacultyBatch, error) {
	if facultyID <= 0 {
		return FacultyBatch{}, errors.InvalidArgumentf("faculty id must be positive, got %d", facultyID)
	}
	groups, err := s.scientists.GeneratePerTitle(perFaculty, scientistStart)
	if err != nil {
		return FacultyBatch{}, errors.Wrapf(err, "faculty %d scientists", facultyID)
	}

	batch := FacultyBatch{FacultyID: facultyID}
	batch.Scientists = concat(groups, domain.Titles())
	slices.SortFunc(batch.Scientists, func(a, b domain.Scientist) int { return a.ID - b.ID })
	batch.Memberships = make([]domain.ScientistFaculty, len(batch.Scientists))
	for i, sc := range batch.Scientists {
		batch.Memberships[i] = domain.ScientistFaculty{FacultyID: facultyID, ScientistID: sc.ID}
	}

	batch.Seniors = concat(groups, domain.SeniorTitles())
	batch.Juniors = concat(groups, domain.JuniorTitles())
	if len(batch.Juniors) == 0 {
		return batch, nil
	}
	if len(batch.Seniors) == 0 {
		return FacultyBatch{}, errors.WithHint(
			errors.Wrapf(errors.ErrNoSupervisorAvailable, "faculty %d has %d junior scientists and no senior scientist", facultyID, len(batch.Juniors)),
			"increase scientists per faculty",
		)
	}

	seq, err := s.phds.Generate(len(batch.Juniors), phdStart)
	if err != nil {
		return FacultyBatch{}, errors.Wrapf(err, "faculty %d phds", facultyID)
	}
	phds, err := factory.Collect(seq)
	if err != nil {
		return FacultyBatch{}, errors.Wrapf(err, "faculty %d phds", facultyID)
	}
	for i := range phds {
		phds[i].ScientistID = batch.Juniors[i].ID
		phds[i].SupervisorID = s.pick(batch.Seniors).ID
	}
	batch.PHDs = phds
	return batch, nil
}

// StitchFaculties runs StitchFaculty for faculties 1..facultyCount, advancing
// the scientist and PhD offsets so ids stay dense across faculties.
func (s *Stitcher) StitchFaculties(facultyCount, perFaculty int) (*Result, error) {
	if facultyCount <= 0 {
		return nil, errors.InvalidArgumentf("faculty count must be positive, got %d", facultyCount)
	}
	res := &Result{Batches: make([]FacultyBatch, 0, facultyCount)}
	scientistStart, phdStart := 1, 1
	for facultyID := 1; facultyID <= facultyCount; facultyID++ {
		batch, err := s.StitchFaculty(facultyID, scientistStart, phdStart, perFaculty)
		if err != nil {
			return nil, err
		}
		res.Batches = append(res.Batches, batch)
		res.Scientists = append(res.Scientists, batch.Scientists...)
		res.Memberships = append(res.Memberships, batch.Memberships...)
		res.PHDs = append(res.PHDs, batch.PHDs...)

		scientistStart += perFaculty
		phdStart += len(batch.Juniors)
	}
	return res, nil
}

// pick draws one scientist uniformly from pool.
func (s *Stitcher) pick(pool []domain.Scientist) domain.Scientist {
	i := int(s.rng.Float64() * float64(len(pool)))
	if i >= len(pool) {
		i = len(pool) - 1
	}
	return pool[i]
}

func concat(groups map[domain.Title][]domain.Scientist, titles []domain.Title) []domain.Scientist {
	var out []domain.Scientist
	for _, t := range titles {
		out = append(out, groups[t]...)
	}
	return out
}
