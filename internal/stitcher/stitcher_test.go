package stitcher

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/errors"
	"github.com/Rana718/sciseed/internal/factory"
	"github.com/Rana718/sciseed/internal/provider"
	"github.com/Rana718/sciseed/internal/sampler"
)

func newStitcher(t *testing.T, titles []sampler.Category) *Stitcher {
	t.Helper()
	p := provider.New(provider.WithSeed(99))
	scientists, err := factory.NewScientistFactory(p, titles)
	require.NoError(t, err)
	return New(scientists, factory.NewPHDFactory(p), rand.New(rand.NewPCG(3, 4)))
}

func TestAssignConferencesPartitionsContiguously(t *testing.T) {
	confs := make([]domain.Conference, 50)
	for i := range confs {
		confs[i].ID = i + 1
	}
	require.NoError(t, AssignConferences(confs, 10))

	for i, c := range confs {
		assert.Equal(t, i/5+1, c.FacultyID, "conference %d", c.ID)
		assert.Equal(t, i+1, c.AddressID)
	}
	perFaculty := map[int]int{}
	for _, c := range confs {
		perFaculty[c.FacultyID]++
	}
	assert.Len(t, perFaculty, 10)
	for id, n := range perFaculty {
		assert.Equal(t, 5, n, "faculty %d", id)
	}
}

func TestAssignConferencesRejectsUnevenCounts(t *testing.T) {
	assert.True(t, errors.Is(AssignConferences(make([]domain.Conference, 50), 7), errors.ErrUnevenDistribution))
	assert.True(t, errors.Is(AssignConferences(make([]domain.Conference, 50), 0), errors.ErrUnevenDistribution))
	assert.True(t, errors.Is(AssignConferences(nil, 3), errors.ErrUnevenDistribution))
}

func TestStitchFacultyRankRules(t *testing.T) {
	s := newStitcher(t, factory.TitleCatalog)
	batch, err := s.StitchFaculty(3, 81, 17, 40)
	require.NoError(t, err)

	require.Len(t, batch.Scientists, 40)
	for i, sc := range batch.Scientists {
		assert.Equal(t, 81+i, sc.ID)
		assert.Equal(t, domain.ScientistFaculty{FacultyID: 3, ScientistID: sc.ID}, batch.Memberships[i])
	}
	assert.Equal(t, 40, len(batch.Seniors)+len(batch.Juniors))
	require.Len(t, batch.PHDs, len(batch.Juniors))

	byID := map[int]domain.Scientist{}
	for _, sc := range batch.Scientists {
		byID[sc.ID] = sc
	}
	candidates := map[int]bool{}
	for i, phd := range batch.PHDs {
		assert.Equal(t, 17+i, phd.ID)
		assert.Equal(t, batch.Juniors[i].ID, phd.ScientistID)
		assert.True(t, byID[phd.ScientistID].Title.IsJunior())
		assert.True(t, byID[phd.SupervisorID].Title.IsSenior())
		assert.NotEqual(t, phd.ScientistID, phd.SupervisorID)
		assert.False(t, candidates[phd.ScientistID], "candidate %d has two PhDs", phd.ScientistID)
		candidates[phd.ScientistID] = true
	}
}

func TestStitchFacultyWithoutSeniors(t *testing.T) {
	juniorsOnly := []sampler.Category{{Label: string(domain.Researcher), Weight: 1}}
	s := newStitcher(t, juniorsOnly)
	_, err := s.StitchFaculty(1, 1, 1, 5)
	assert.True(t, errors.Is(err, errors.ErrNoSupervisorAvailable))
}

func TestStitchFacultyWithoutJuniors(t *testing.T) {
	seniorsOnly := []sampler.Category{{Label: string(domain.Professor), Weight: 1}}
	s := newStitcher(t, seniorsOnly)
	batch, err := s.StitchFaculty(1, 1, 1, 5)
	require.NoError(t, err)
	assert.Len(t, batch.Scientists, 5)
	assert.Empty(t, batch.PHDs)
}

func TestStitchFacultyRejectsBadArguments(t *testing.T) {
	s := newStitcher(t, factory.TitleCatalog)
	_, err := s.StitchFaculty(0, 1, 1, 5)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
	_, err = s.StitchFaculty(1, 1, 1, 0)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
	_, err = s.StitchFaculties(0, 5)
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
}

func TestEndToEndScenario(t *testing.T) {
	const (
		facultyCount    = 10
		conferenceCount = 50
		perFaculty      = 40
	)
	p := provider.New(provider.WithSeed(2024))
	set, err := factory.NewSet(p, factory.DefaultCatalogs())
	require.NoError(t, err)

	seq, err := set.Conference.GenerateUnique(1)
	require.NoError(t, err)
	confs, err := factory.Collect(seq)
	require.NoError(t, err)
	require.Len(t, confs, conferenceCount)
	require.NoError(t, AssignConferences(confs, facultyCount))
	for i, c := range confs {
		assert.Equal(t, i/5+1, c.FacultyID)
		assert.GreaterOrEqual(t, c.AddressID, 1)
		assert.LessOrEqual(t, c.AddressID, conferenceCount)
	}

	res, err := New(set.Scientist, set.PHD, p).StitchFaculties(facultyCount, perFaculty)
	require.NoError(t, err)
	require.Len(t, res.Scientists, facultyCount*perFaculty)
	require.Len(t, res.Memberships, facultyCount*perFaculty)

	for i, sc := range res.Scientists {
		assert.Equal(t, i+1, sc.ID)
	}

	juniors := 0
	for _, b := range res.Batches {
		juniors += len(b.Juniors)
	}
	require.Len(t, res.PHDs, juniors)

	for _, b := range res.Batches {
		seniors := map[int]bool{}
		for _, sc := range b.Seniors {
			seniors[sc.ID] = true
		}
		for _, phd := range b.PHDs {
			assert.True(t, seniors[phd.SupervisorID], "faculty %d phd %d supervised outside its faculty", b.FacultyID, phd.ID)
		}
	}
	for i, phd := range res.PHDs {
		assert.Equal(t, i+1, phd.ID)
		assert.NotEqual(t, phd.ScientistID, phd.SupervisorID)
	}
}
