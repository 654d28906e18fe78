package seeder

import (
	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/errors"
	"github.com/Rana718/sciseed/internal/tier"
)

// Dataset is one fully stitched generation run, held in memory until it is
// handed to a gateway.
type Dataset struct {
	Faculties    []domain.Faculty
	Addresses    []domain.Address
	Conferences  []domain.Conference
	Scientists   []domain.Scientist
	Memberships  []domain.ScientistFaculty
	PHDs         []domain.PHD
	Publications []domain.Publication
	Fundings     []domain.Funding
}

// Batch is the records of one table.
type Batch struct {
	Table   domain.Table
	Records []domain.Record
}

// Records returns the rows of table.
func (d *Dataset) Records(table domain.Table) []domain.Record {
	switch table {
	case domain.TableAddress:
		return domain.Records(d.Addresses)
	case domain.TableFaculty:
		return domain.Records(d.Faculties)
	case domain.TableConference:
		return domain.Records(d.Conferences)
	case domain.TableScientist:
		return domain.Records(d.Scientists)
	case domain.TableScientistFaculty:
		return domain.Records(d.Memberships)
	case domain.TablePHD:
		return domain.Records(d.PHDs)
	case domain.TablePublication:
		return domain.Records(d.Publications)
	case domain.TableFunding:
		return domain.Records(d.Fundings)
	default:
		return nil
	}
}

func (d *Dataset) Counts() map[domain.Table]int {
	return map[domain.Table]int{
		domain.TableAddress:          len(d.Addresses),
		domain.TableFaculty:          len(d.Faculties),
		domain.TableConference:       len(d.Conferences),
		domain.TableScientist:        len(d.Scientists),
		domain.TableScientistFaculty: len(d.Memberships),
		domain.TablePHD:              len(d.PHDs),
		domain.TablePublication:      len(d.Publications),
		domain.TableFunding:          len(d.Fundings),
	}
}

// Batches returns one batch per non-empty table, in dependency order.
func (d *Dataset) Batches() ([]Batch, error) {
	order, err := NewDomainGraph().BuildInsertionOrder()
	if err != nil {
		return nil, err
	}
	batches := make([]Batch, 0, len(order))
	for _, t := range order {
		records := d.Records(t)
		if len(records) == 0 {
			continue
		}
		batches = append(batches, Batch{Table: t, Records: records})
	}
	return batches, nil
}

// Validate re-checks the relational invariants of the dataset.
func (d *Dataset) Validate() error {
	checks := []func() error{
		d.checkDense,
		d.checkConferences,
		d.checkMemberships,
		d.checkPHDs,
		d.checkFundings,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func dense[T any](table domain.Table, items []T, id func(T) int) error {
	for i, item := range items {
		if got := id(item); got != i+1 {
			return errors.AssertionFailedf("%s: id at position %d is %d, want %d", table, i, got, i+1)
		}
	}
	return nil
}

func (d *Dataset) checkDense() error {
	for _, err := range []error{
		dense(domain.TableAddress, d.Addresses, func(a domain.Address) int { return a.ID }),
		dense(domain.TableFaculty, d.Faculties, func(f domain.Faculty) int { return f.ID }),
		dense(domain.TableConference, d.Conferences, func(c domain.Conference) int { return c.ID }),
		dense(domain.TableScientist, d.Scientists, func(s domain.Scientist) int { return s.ID }),
		dense(domain.TablePHD, d.PHDs, func(p domain.PHD) int { return p.ID }),
		dense(domain.TablePublication, d.Publications, func(p domain.Publication) int { return p.ID }),
		dense(domain.TableFunding, d.Fundings, func(f domain.Funding) int { return f.ID }),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *Dataset) checkConferences() error {
	if len(d.Conferences) == 0 {
		return nil
	}
	if len(d.Faculties) == 0 || len(d.Conferences)%len(d.Faculties) != 0 {
		return errors.Wrapf(errors.ErrUnevenDistribution, "%d conferences across %d faculties", len(d.Conferences), len(d.Faculties))
	}
	per := len(d.Conferences) / len(d.Faculties)
	for i, c := range d.Conferences {
		if want := i/per + 1; c.FacultyID != want {
			return errors.AssertionFailedf("conference %d: faculty %d, want %d", c.ID, c.FacultyID, want)
		}
		if c.AddressID < 1 || c.AddressID > len(d.Addresses) {
			return errors.AssertionFailedf("conference %d: address %d does not exist", c.ID, c.AddressID)
		}
		if c.EndDate.Before(c.StartDate) {
			return errors.AssertionFailedf("conference %d ends before it starts", c.ID)
		}
	}
	return nil
}

func (d *Dataset) checkMemberships() error {
	for _, m := range d.Memberships {
		if m.FacultyID < 1 || m.FacultyID > len(d.Faculties) {
			return errors.AssertionFailedf("membership of scientist %d: faculty %d does not exist", m.ScientistID, m.FacultyID)
		}
		if m.ScientistID < 1 || m.ScientistID > len(d.Scientists) {
			return errors.AssertionFailedf("membership in faculty %d: scientist %d does not exist", m.FacultyID, m.ScientistID)
		}
	}
	return nil
}

func (d *Dataset) checkPHDs() error {
	facultyOf := make(map[int]int, len(d.Memberships))
	for _, m := range d.Memberships {
		facultyOf[m.ScientistID] = m.FacultyID
	}
	scientist := func(id int) (domain.Scientist, bool) {
		if id < 1 || id > len(d.Scientists) {
			return domain.Scientist{}, false
		}
		return d.Scientists[id-1], true
	}

	for _, p := range d.PHDs {
		candidate, ok := scientist(p.ScientistID)
		if !ok {
			return errors.AssertionFailedf("phd %d: candidate %d does not exist", p.ID, p.ScientistID)
		}
		supervisor, ok := scientist(p.SupervisorID)
		if !ok {
			return errors.AssertionFailedf("phd %d: supervisor %d does not exist", p.ID, p.SupervisorID)
		}
		if candidate.ID == supervisor.ID {
			return errors.AssertionFailedf("phd %d: scientist %d supervises themselves", p.ID, candidate.ID)
		}
		if !candidate.Title.IsJunior() {
			return errors.AssertionFailedf("phd %d: candidate %d is a %s", p.ID, candidate.ID, candidate.Title)
		}
		if !supervisor.Title.IsSenior() {
			return errors.AssertionFailedf("phd %d: supervisor %d is a %s", p.ID, supervisor.ID, supervisor.Title)
		}
		if facultyOf[candidate.ID] != facultyOf[supervisor.ID] {
			return errors.AssertionFailedf("phd %d: candidate and supervisor work at different faculties", p.ID)
		}
	}
	return nil
}

func (d *Dataset) checkFundings() error {
	for _, f := range d.Fundings {
		want, err := tier.Duration(f.Budget)
		if err != nil {
			return errors.Wrapf(err, "funding %d", f.ID)
		}
		if got := f.EndDate.Sub(f.StartDate); got != want {
			return errors.AssertionFailedf("funding %d: duration %s does not match budget %s", f.ID, got, f.Budget)
		}
	}
	return nil
}
