package tier

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rana718/sciseed/internal/errors"
)

func TestWeeksAtBracketEdges(t *testing.T) {
	tests := []struct {
		budget string
		weeks  int
	}{
		{"0", 24},
		{"499999.99", 24},
		{"500000", 24},
		{"500000.01", 48},
		{"1000000", 48},
		{"1000001", 72},
		{"2000000", 72},
		{"2000000.50", 96},
		{"3000000", 96},
		{"3000001", 110},
		{"4000000", 110},
		{"4000000.01", 140},
		{"4000001", 140},
		{"99000000", 140},
	}
	for _, tt := range tests {
		t.Run(tt.budget, func(t *testing.T) {
			w, err := Weeks(decimal.RequireFromString(tt.budget))
			require.NoError(t, err)
			assert.Equal(t, tt.weeks, w)
		})
	}
}

func TestNegativeBudgetIsRejected(t *testing.T) {
	_, err := Duration(decimal.NewFromInt(-1))
	assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
}

type stubDates struct {
	from, to time.Time
	day      time.Time
	err      error
}

func (s *stubDates) Between(from, to time.Time) (time.Time, error) {
	s.from, s.to = from, to
	return s.day, s.err
}

func TestResolveAddsDurationToStart(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	dates := &stubDates{day: day}
	r := NewResolver(dates, func() time.Time { return now })

	start, end, err := r.Resolve(decimal.NewFromInt(4_000_000))
	require.NoError(t, err)
	assert.Equal(t, day, start)
	assert.Equal(t, 110*7*24*time.Hour, end.Sub(start))
	assert.Equal(t, now.AddDate(-3, 0, 0), dates.from)
	assert.Equal(t, now.AddDate(-1, 0, 0), dates.to)

	start, end, err = r.Resolve(decimal.NewFromInt(4_000_001))
	require.NoError(t, err)
	assert.Equal(t, 140*7*24*time.Hour, end.Sub(start))
}

func TestResolvePropagatesDateErrors(t *testing.T) {
	r := NewResolver(&stubDates{err: errors.InvalidRangef("bad window")}, nil)
	_, _, err := r.Resolve(decimal.NewFromInt(10))
	assert.True(t, errors.Is(err, errors.ErrInvalidRange))
}
