package seeder

import (
	"github.com/Rana718/sciseed/internal/errors"
)

// Plan sizes one generation run. In unique mode faculties and conferences
// come from their catalogs and the two counts must match the catalog sizes.
type Plan struct {
	Faculties            int  `json:"faculties" mapstructure:"faculties"`
	Conferences          int  `json:"conferences" mapstructure:"conferences"`
	ScientistsPerFaculty int  `json:"scientists_per_faculty" mapstructure:"scientists_per_faculty"`
	Publications         int  `json:"publications" mapstructure:"publications"`
	Fundings             int  `json:"fundings" mapstructure:"fundings"`
	Unique               bool `json:"unique" mapstructure:"unique"`
}

func DefaultPlan() Plan {
	return Plan{
		Faculties:            10,
		Conferences:          50,
		ScientistsPerFaculty: 40,
		Publications:         100,
		Fundings:             50,
		Unique:               true,
	}
}

func (p Plan) Validate() error {
	if p.ScientistsPerFaculty <= 0 {
		return errors.InvalidArgumentf("scientists per faculty must be positive, got %d", p.ScientistsPerFaculty)
	}
	if p.Publications < 0 {
		return errors.InvalidArgumentf("publications must not be negative, got %d", p.Publications)
	}
	if p.Fundings < 0 {
		return errors.InvalidArgumentf("fundings must not be negative, got %d", p.Fundings)
	}
	if p.Faculties <= 0 {
		return errors.InvalidArgumentf("faculties must be positive, got %d", p.Faculties)
	}
	if p.Conferences <= 0 {
		return errors.InvalidArgumentf("conferences must be positive, got %d", p.Conferences)
	}
	if p.Conferences%p.Faculties != 0 {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrUnevenDistribution, "%d conferences cannot be split evenly across %d faculties", p.Conferences, p.Faculties),
			"use a conference count that is a multiple of %d", p.Faculties,
		)
	}
	return nil
}
