package provider

import (
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/Rana718/sciseed/internal/errors"
)

type AddressProvider struct{ p *Provider }

func (a AddressProvider) Street() (s string) {
	a.p.withFaker(func(f *gofakeit.Faker) { s = f.StreetName() })
	return s
}

func (a AddressProvider) BuildingNumber() (s string) {
	a.p.withFaker(func(f *gofakeit.Faker) { s = f.StreetNumber() })
	return s
}

func (a AddressProvider) City() (s string) {
	a.p.withFaker(func(f *gofakeit.Faker) { s = f.City() })
	return s
}

func (a AddressProvider) Country() (s string) {
	a.p.withFaker(func(f *gofakeit.Faker) { s = f.Country() })
	return s
}

func (a AddressProvider) PostalCode() (s string) {
	a.p.withFaker(func(f *gofakeit.Faker) { s = f.Zip() })
	return s
}

type PersonProvider struct{ p *Provider }

// FullName draws a gender, then a given name for it and a surname.
func (pp PersonProvider) FullName() (name, surname string) {
	pp.p.withFaker(func(f *gofakeit.Faker) {
		if f.Bool() {
			name = maleGivenNames[f.IntRange(0, len(maleGivenNames)-1)]
		} else {
			name = femaleGivenNames[f.IntRange(0, len(femaleGivenNames)-1)]
		}
		surname = f.LastName()
	})
	return name, surname
}

type DateProvider struct{ p *Provider }

// Between returns a calendar day drawn uniformly from [from, to].
func (d DateProvider) Between(from, to time.Time) (time.Time, error) {
	if to.Before(from) {
		return time.Time{}, errors.InvalidRangef("date window ends %s before it starts %s",
			to.Format(time.DateOnly), from.Format(time.DateOnly))
	}
	var t time.Time
	d.p.withFaker(func(f *gofakeit.Faker) { t = f.DateRange(from, to) })
	return truncateDay(t), nil
}

// YearsAgo returns a day between maxYears and minYears before the provider's clock.
func (d DateProvider) YearsAgo(minYears, maxYears int) (time.Time, error) {
	if minYears < 0 || maxYears < minYears {
		return time.Time{}, errors.InvalidRangef("years ago window [%d, %d]", minYears, maxYears)
	}
	now := d.p.now()
	return d.Between(now.AddDate(-maxYears, 0, 0), now.AddDate(-minYears, 0, 0))
}

type TextProvider struct{ p *Provider }

// Sentence returns a sentence of between minWords and maxWords words.
func (tp TextProvider) Sentence(minWords, maxWords int) (string, error) {
	if minWords <= 0 || maxWords < minWords {
		return "", errors.InvalidRangef("sentence words [%d, %d]", minWords, maxWords)
	}
	var s string
	tp.p.withFaker(func(f *gofakeit.Faker) {
		s = f.LoremIpsumSentence(f.IntRange(minWords, maxWords))
	})
	return s, nil
}

// Paragraph returns free text whose length is drawn from [minChars, maxChars]
// and then cut back to the last whole word, so it never exceeds maxChars.
func (tp TextProvider) Paragraph(minChars, maxChars int) (string, error) {
	if minChars <= 0 || maxChars < minChars {
		return "", errors.InvalidRangef("paragraph chars [%d, %d]", minChars, maxChars)
	}
	var out string
	tp.p.withFaker(func(f *gofakeit.Faker) {
		target := f.IntRange(minChars, maxChars)
		var b strings.Builder
		for b.Len() < target {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(f.LoremIpsumSentence(f.IntRange(6, 14)))
		}
		out = clip(b.String(), target)
	})
	return out, nil
}

type NumericProvider struct{ p *Provider }

func (n NumericProvider) IntRange(min, max int) (int, error) {
	if max < min {
		return 0, errors.InvalidRangef("int range [%d, %d]", min, max)
	}
	var v int
	n.p.withFaker(func(f *gofakeit.Faker) { v = f.IntRange(min, max) })
	return v, nil
}

// Money returns an amount with two decimal places drawn from [min, max].
func (n NumericProvider) Money(min, max decimal.Decimal) (decimal.Decimal, error) {
	if max.LessThan(min) {
		return decimal.Zero, errors.InvalidRangef("money range [%s, %s]", min, max)
	}
	lo := min.Shift(2).Ceil().IntPart()
	hi := max.Shift(2).Floor().IntPart()
	if hi < lo {
		return decimal.Zero, errors.InvalidRangef("money range [%s, %s] holds no cent value", min, max)
	}
	var cents int
	n.p.withFaker(func(f *gofakeit.Faker) { cents = f.IntRange(int(lo), int(hi)) })
	return decimal.New(int64(cents), -2), nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// clip cuts s to at most limit bytes on a word boundary and closes it with a period.
func clip(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := s[:limit]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	cut = strings.TrimRight(cut, " ,.")
	if len(cut) >= limit {
		cut = cut[:limit-1]
	}
	return cut + "."
}
