// Package provider wraps generic fake-data primitives behind typed accessors
// grouped by concern (address, person, date, text, numeric).
//
// A Provider is an explicit context object: construct one per generation run,
// pass it to the factories, and call Reset between runs to clear the
// uniqueness ledger. All methods are safe for concurrent use; calls are
// serialized on the provider, so parallel runs that want independent streams
// should construct their own Provider.
package provider

import (
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/Rana718/sciseed/internal/errors"
)

const defaultMaxRetries = 1000

type Provider struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
	now   func() time.Time

	ledgerMu   sync.Mutex
	ledger     map[string]map[string]struct{}
	maxRetries int
}

type Option func(*Provider)

// WithSeed makes the value stream reproducible. Zero means a random seed.
func WithSeed(seed uint64) Option {
	return func(p *Provider) {
		p.faker = gofakeit.New(seed)
	}
}

// WithClock overrides the reference time used by relative date windows.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		if now != nil {
			p.now = now
		}
	}
}

// WithMaxRetries bounds how many draws Unique attempts before giving up.
func WithMaxRetries(n int) Option {
	return func(p *Provider) {
		if n > 0 {
			p.maxRetries = n
		}
	}
}

func New(opts ...Option) *Provider {
	p := &Provider{
		faker:      gofakeit.New(0),
		now:        time.Now,
		ledger:     make(map[string]map[string]struct{}),
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Address() AddressProvider { return AddressProvider{p: p} }
func (p *Provider) Person() PersonProvider   { return PersonProvider{p: p} }
func (p *Provider) Date() DateProvider       { return DateProvider{p: p} }
func (p *Provider) Text() TextProvider       { return TextProvider{p: p} }
func (p *Provider) Numeric() NumericProvider { return NumericProvider{p: p} }

// Now returns the provider's reference time.
func (p *Provider) Now() time.Time {
	return p.now()
}

// Float64 returns a value in [0, 1) from the shared stream. It lets the
// provider act as the random source for the categorical sampler.
func (p *Provider) Float64() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.faker.Float64()
}

// Unique calls gen until it yields a value not yet recorded for field, then
// records it. Values stay reserved until Reset.
func (p *Provider) Unique(field string, gen func() string) (string, error) {
	for attempt := 0; attempt < p.maxRetries; attempt++ {
		value := gen()

		p.ledgerMu.Lock()
		seen, ok := p.ledger[field]
		if !ok {
			seen = make(map[string]struct{})
			p.ledger[field] = seen
		}
		if _, dup := seen[value]; !dup {
			seen[value] = struct{}{}
			p.ledgerMu.Unlock()
			return value, nil
		}
		p.ledgerMu.Unlock()
	}
	return "", errors.WithHint(
		errors.InvalidRangef("unique values for %q exhausted after %d attempts", field, p.maxRetries),
		"call Reset between runs or widen the value domain",
	)
}

// UniqueCount reports how many values are reserved for field.
func (p *Provider) UniqueCount(field string) int {
	p.ledgerMu.Lock()
	defer p.ledgerMu.Unlock()
	return len(p.ledger[field])
}

// Reset clears the uniqueness ledger.
func (p *Provider) Reset() {
	p.ledgerMu.Lock()
	defer p.ledgerMu.Unlock()
	p.ledger = make(map[string]map[string]struct{})
}

func (p *Provider) withFaker(fn func(f *gofakeit.Faker)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(p.faker)
}
