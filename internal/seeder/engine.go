package seeder

import (
	"iter"
	"time"

	"go.uber.org/zap"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/errors"
	"github.com/Rana718/sciseed/internal/factory"
	"github.com/Rana718/sciseed/internal/logger"
	"github.com/Rana718/sciseed/internal/provider"
	"github.com/Rana718/sciseed/internal/stitcher"
)

// Engine turns a Plan into a stitched Dataset. It owns its provider; build
// runs on one engine are sequential.
type Engine struct {
	provider *provider.Provider
	catalogs factory.Catalogs
	log      *zap.SugaredLogger
}

func NewEngine(p *provider.Provider, catalogs factory.Catalogs) *Engine {
	return &Engine{
		provider: p,
		catalogs: catalogs,
		log:      logger.Named("engine"),
	}
}

func (e *Engine) Build(plan Plan) (*Dataset, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	started := time.Now()
	e.provider.Reset()

	set, err := factory.NewSet(e.provider, e.catalogs)
	if err != nil {
		return nil, err
	}
	if plan.Unique {
		if err := checkCatalogSizes(plan, set); err != nil {
			return nil, err
		}
	}

	ds := &Dataset{}

	var facultySeq iter.Seq2[domain.Faculty, error]
	if plan.Unique {
		facultySeq, err = set.Faculty.GenerateUnique(1)
	} else {
		facultySeq, err = set.Faculty.Generate(plan.Faculties, 1)
	}
	if ds.Faculties, err = collect(facultySeq, err, domain.TableFaculty); err != nil {
		return nil, err
	}

	var conferenceSeq iter.Seq2[domain.Conference, error]
	if plan.Unique {
		conferenceSeq, err = set.Conference.GenerateUnique(1)
	} else {
		conferenceSeq, err = set.Conference.Generate(plan.Conferences, 1)
	}
	if ds.Conferences, err = collect(conferenceSeq, err, domain.TableConference); err != nil {
		return nil, err
	}

	addressSeq, err := set.Address.Generate(len(ds.Conferences), 1)
	if ds.Addresses, err = collect(addressSeq, err, domain.TableAddress); err != nil {
		return nil, err
	}

	if err := stitcher.AssignConferences(ds.Conferences, len(ds.Faculties)); err != nil {
		return nil, err
	}

	res, err := stitcher.New(set.Scientist, set.PHD, e.provider).
		StitchFaculties(len(ds.Faculties), plan.ScientistsPerFaculty)
	if err != nil {
		return nil, err
	}
	ds.Scientists = res.Scientists
	ds.Memberships = res.Memberships
	ds.PHDs = res.PHDs

	if plan.Publications > 0 {
		seq, err := set.Publication.Generate(plan.Publications, 1)
		if ds.Publications, err = collect(seq, err, domain.TablePublication); err != nil {
			return nil, err
		}
	}
	if plan.Fundings > 0 {
		seq, err := set.Funding.Generate(plan.Fundings, 1)
		if ds.Fundings, err = collect(seq, err, domain.TableFunding); err != nil {
			return nil, err
		}
	}

	if err := ds.Validate(); err != nil {
		return nil, errors.Wrap(err, "generated dataset is inconsistent")
	}

	e.log.Infow("dataset built",
		"faculties", len(ds.Faculties),
		"scientists", len(ds.Scientists),
		"phds", len(ds.PHDs),
		logger.FieldDuration, time.Since(started).Milliseconds(),
	)
	return ds, nil
}

// checkCatalogSizes rejects a unique plan whose counts disagree with the
// catalogs it enumerates.
func checkCatalogSizes(plan Plan, set *factory.Set) error {
	if n := set.Faculty.UniqueCount(); plan.Faculties != n {
		return errors.WithHintf(
			errors.InvalidArgumentf("unique mode produces %d faculties, plan asks for %d", n, plan.Faculties),
			"set seed.faculties to %d or seed.unique to false", n,
		)
	}
	if n := set.Conference.UniqueCount(); plan.Conferences != n {
		return errors.WithHintf(
			errors.InvalidArgumentf("unique mode produces %d conferences, plan asks for %d", n, plan.Conferences),
			"set seed.conferences to %d or seed.unique to false", n,
		)
	}
	return nil
}

func collect[T any](seq iter.Seq2[T, error], err error, table domain.Table) ([]T, error) {
	if err != nil {
		return nil, errors.Wrapf(err, "generate %s", table)
	}
	out, err := factory.Collect(seq)
	if err != nil {
		return nil, errors.Wrapf(err, "generate %s", table)
	}
	return out, nil
}
