package factory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/errors"
	"github.com/Rana718/sciseed/internal/provider"
	"github.com/Rana718/sciseed/internal/sampler"
	"github.com/Rana718/sciseed/internal/tier"
)

var now = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func newSet(t *testing.T) *Set {
	t.Helper()
	p := provider.New(provider.WithSeed(7), provider.WithClock(func() time.Time { return now }))
	set, err := NewSet(p, DefaultCatalogs())
	require.NoError(t, err)
	return set
}

func assertDense[T any](t *testing.T, items []T, startID int, id func(T) int) {
	t.Helper()
	for i, item := range items {
		assert.Equal(t, startID+i, id(item), "position %d", i)
	}
}

func TestGenerateRejectsBadArguments(t *testing.T) {
	set := newSet(t)
	cases := map[string]func() error{
		"address zero count": func() error { _, err := set.Address.Generate(0, 1); return err },
		"faculty zero start": func() error { _, err := set.Faculty.Generate(3, 0); return err },
		"scientist negative": func() error { _, err := set.Scientist.Generate(-1, 1); return err },
		"phd negative start": func() error { _, err := set.PHD.Generate(2, -5); return err },
		"publication zero":   func() error { _, err := set.Publication.Generate(0, 1); return err },
		"funding zero start": func() error { _, err := set.Funding.Generate(1, 0); return err },
		"conference zero":    func() error { _, err := set.Conference.Generate(0, 1); return err },
		"unique faculty":     func() error { _, err := set.Faculty.GenerateUnique(0); return err },
		"unique conference":  func() error { _, err := set.Conference.GenerateUnique(-1); return err },
	}
	for name, call := range cases {
		t.Run(name, func(t *testing.T) {
			assert.True(t, errors.Is(call(), errors.ErrInvalidArgument))
		})
	}
}

func TestAddressesAreDenseAndPopulated(t *testing.T) {
	set := newSet(t)
	seq, err := set.Address.Generate(25, 11)
	require.NoError(t, err)
	addresses, err := Collect(seq)
	require.NoError(t, err)

	require.Len(t, addresses, 25)
	assertDense(t, addresses, 11, func(a domain.Address) int { return a.ID })
	for _, a := range addresses {
		assert.NotEmpty(t, a.StreetName)
		assert.NotEmpty(t, a.City)
		assert.NotEmpty(t, a.PostalCode)
	}
}

func TestSequencesAreRestartable(t *testing.T) {
	set := newSet(t)
	seq, err := set.Scientist.Generate(5, 1)
	require.NoError(t, err)

	first, err := Collect(seq)
	require.NoError(t, err)
	second, err := Collect(seq)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestSequenceStopsEarly(t *testing.T) {
	set := newSet(t)
	seq, err := set.Address.Generate(100, 1)
	require.NoError(t, err)

	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestUniqueFacultiesCoverCatalog(t *testing.T) {
	set := newSet(t)
	for run := 0; run < 2; run++ {
		seq, err := set.Faculty.GenerateUnique(1)
		require.NoError(t, err)
		faculties, err := Collect(seq)
		require.NoError(t, err)

		require.Len(t, faculties, len(FacultyCatalog))
		assert.Equal(t, len(FacultyCatalog), set.Faculty.UniqueCount())
		assertDense(t, faculties, 1, func(f domain.Faculty) int { return f.ID })
		for i, f := range faculties {
			assert.Equal(t, FacultyCatalog[i].Label, f.Name)
			assert.Equal(t, domain.University, f.UniversityName)
		}
	}
}

func TestWeightedFacultiesComeFromCatalog(t *testing.T) {
	set := newSet(t)
	seq, err := set.Faculty.Generate(40, 1)
	require.NoError(t, err)
	faculties, err := Collect(seq)
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, c := range FacultyCatalog {
		names[c.Label] = true
	}
	for _, f := range faculties {
		assert.True(t, names[f.Name], "unknown faculty %q", f.Name)
	}
}

func TestUniqueConferencesCoverCatalog(t *testing.T) {
	set := newSet(t)
	seq, err := set.Conference.GenerateUnique(1)
	require.NoError(t, err)
	conferences, err := Collect(seq)
	require.NoError(t, err)

	require.Len(t, conferences, 50)
	assertDense(t, conferences, 1, func(c domain.Conference) int { return c.ID })
	for i, c := range conferences {
		assert.Equal(t, ConferenceCatalog[i], c.Title)
		assert.False(t, c.EndDate.Before(c.StartDate))
		assert.LessOrEqual(t, c.EndDate.Sub(c.StartDate), 4*24*time.Hour)
		assert.Zero(t, c.FacultyID)
		assert.Zero(t, c.AddressID)
	}
}

func TestGeneratedConferenceTitlesAreUnique(t *testing.T) {
	set := newSet(t)
	seq, err := set.Conference.Generate(30, 1)
	require.NoError(t, err)
	conferences, err := Collect(seq)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, c := range conferences {
		assert.False(t, seen[c.Title], "duplicate title %q", c.Title)
		seen[c.Title] = true
	}
}

func TestGroupByTitle(t *testing.T) {
	set := newSet(t)
	groups, err := set.Scientist.GeneratePerTitle(200, 41)
	require.NoError(t, err)

	assert.Len(t, groups, len(domain.Titles()))
	total := 0
	for title, scientists := range groups {
		total += len(scientists)
		for i, s := range scientists {
			assert.Equal(t, title, s.Title)
			if i > 0 {
				assert.Greater(t, s.ID, scientists[i-1].ID, "group order must follow generation order")
			}
			assert.GreaterOrEqual(t, s.ID, 41)
			assert.Less(t, s.ID, 241)
		}
	}
	assert.Equal(t, 200, total)
}

func TestGroupByTitleKeepsEmptyTitles(t *testing.T) {
	seq := func(yield func(domain.Scientist, error) bool) {
		yield(domain.Scientist{ID: 1, Title: domain.Professor}, nil)
	}
	groups, err := GroupByTitle(seq)
	require.NoError(t, err)
	assert.Len(t, groups[domain.Professor], 1)
	assert.NotNil(t, groups[domain.Lecturer])
	assert.Empty(t, groups[domain.Lecturer])
}

func TestGroupByTitlePropagatesErrors(t *testing.T) {
	seq := func(yield func(domain.Scientist, error) bool) {
		yield(domain.Scientist{}, errors.InvalidRangef("boom"))
	}
	_, err := GroupByTitle(seq)
	assert.True(t, errors.Is(err, errors.ErrInvalidRange))
}

func TestPHDs(t *testing.T) {
	set := newSet(t)
	seq, err := set.PHD.Generate(10, 5)
	require.NoError(t, err)
	phds, err := Collect(seq)
	require.NoError(t, err)

	assertDense(t, phds, 5, func(p domain.PHD) int { return p.ID })
	for _, p := range phds {
		assert.False(t, p.DateReceived.After(now.AddDate(-10, 0, 0)))
		assert.False(t, p.DateReceived.Before(now.AddDate(-30, 0, 0)))
		assert.LessOrEqual(t, len(p.Description), 2000)
		assert.NotEmpty(t, p.Title)
		assert.Zero(t, p.ScientistID)
		assert.Zero(t, p.SupervisorID)
	}
}

func TestPublications(t *testing.T) {
	set := newSet(t)
	seq, err := set.Publication.Generate(20, 1)
	require.NoError(t, err)
	pubs, err := Collect(seq)
	require.NoError(t, err)

	assertDense(t, pubs, 1, func(p domain.Publication) int { return p.ID })
	titles := make(map[string]bool)
	for _, p := range pubs {
		assert.False(t, titles[p.Title])
		titles[p.Title] = true
		assert.NotEmpty(t, p.Summary)
	}
}

func TestFundingDurationMatchesTier(t *testing.T) {
	set := newSet(t)
	seq, err := set.Funding.Generate(100, 1)
	require.NoError(t, err)
	fundings, err := Collect(seq)
	require.NoError(t, err)

	assertDense(t, fundings, 1, func(f domain.Funding) int { return f.ID })
	for _, f := range fundings {
		want, err := tier.Duration(f.Budget)
		require.NoError(t, err)
		assert.Equal(t, want, f.EndDate.Sub(f.StartDate), "budget %s", f.Budget)
		assert.True(t, f.Budget.GreaterThanOrEqual(MinBudget))
		assert.True(t, f.Budget.LessThanOrEqual(MaxBudget))
		assert.False(t, f.StartDate.Before(now.AddDate(-3, 0, 0)))
		assert.False(t, f.StartDate.After(now.AddDate(-1, 0, 0)))
		assert.NotEmpty(t, f.Funder)
	}
}

func TestWithWeights(t *testing.T) {
	out, err := WithWeights(TitleCatalog, map[string]float64{"Professor": 0.5})
	require.NoError(t, err)
	assert.Equal(t, 0.5, out[0].Weight)
	assert.NotEqual(t, 0.5, TitleCatalog[0].Weight, "source catalog must not change")

	_, err = WithWeights(TitleCatalog, map[string]float64{"Dean": 1})
	assert.True(t, errors.Is(err, errors.ErrInvalidWeights))
}

func TestNewSetRejectsBadCatalogs(t *testing.T) {
	p := provider.New(provider.WithSeed(1))

	catalogs := DefaultCatalogs()
	catalogs.Titles = []sampler.Category{{Label: "Dean", Weight: 1}}
	_, err := NewSet(p, catalogs)
	assert.True(t, errors.Is(err, errors.ErrInvalidWeights))

	catalogs = DefaultCatalogs()
	catalogs.Funders = []sampler.Category{{Label: "Nobody", Weight: 0}}
	_, err = NewSet(p, catalogs)
	assert.True(t, errors.Is(err, errors.ErrInvalidWeights))
}
