// Package tier maps a funding budget to a fixed duration and derives the
// funding's start and end dates.
package tier

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Rana718/sciseed/internal/errors"
)

// Bracket covers budgets in (previous Upper, Upper]. The last bracket has no
// upper bound and absorbs everything above the previous one.
type Bracket struct {
	Upper    decimal.Decimal
	Open     bool
	Duration time.Duration
}

const week = 7 * 24 * time.Hour

// Brackets are ordered by increasing amount.
var Brackets = []Bracket{
	{Upper: decimal.NewFromInt(500_000), Duration: 24 * week},
	{Upper: decimal.NewFromInt(1_000_000), Duration: 48 * week},
	{Upper: decimal.NewFromInt(2_000_000), Duration: 72 * week},
	{Upper: decimal.NewFromInt(3_000_000), Duration: 96 * week},
	{Upper: decimal.NewFromInt(4_000_000), Duration: 110 * week},
	{Open: true, Duration: 140 * week},
}

// DateSource draws a calendar day between two instants.
type DateSource interface {
	Between(from, to time.Time) (time.Time, error)
}

type Resolver struct {
	dates DateSource
	now   func() time.Time
}

func NewResolver(dates DateSource, now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{dates: dates, now: now}
}

// Duration returns the duration of the bracket budget falls in.
func Duration(budget decimal.Decimal) (time.Duration, error) {
	if budget.IsNegative() {
		return 0, errors.InvalidArgumentf("budget must not be negative, got %s", budget)
	}
	for _, b := range Brackets {
		if b.Open || budget.LessThanOrEqual(b.Upper) {
			return b.Duration, nil
		}
	}
	return 0, errors.AssertionFailedf("no bracket for budget %s", budget)
}

// Weeks is Duration expressed in whole weeks.
func Weeks(budget decimal.Decimal) (int, error) {
	d, err := Duration(budget)
	if err != nil {
		return 0, err
	}
	return int(d / week), nil
}

// Resolve draws a start date between three years and one year ago and adds
// the budget's duration to it.
func (r *Resolver) Resolve(budget decimal.Decimal) (start, end time.Time, err error) {
	d, err := Duration(budget)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	now := r.now()
	start, err = r.dates.Between(now.AddDate(-3, 0, 0), now.AddDate(-1, 0, 0))
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(err, "funding start date")
	}
	return start, start.Add(d), nil
}
