package domain

// Table names one relation in the target store.
type Table string

const (
	TableAddress          Table = "address"
	TableFaculty          Table = "faculty"
	TableConference       Table = "conference"
	TableScientist        Table = "scientist"
	TableScientistFaculty Table = "scientist_works_at_faculty"
	TablePHD              Table = "phd"
	TablePublication      Table = "publication"
	TableFunding          Table = "funding"
)

// Tables lists every table sciseed writes.
func Tables() []Table {
	return []Table{
		TableAddress,
		TableFaculty,
		TableConference,
		TableScientist,
		TableScientistFaculty,
		TablePHD,
		TablePublication,
		TableFunding,
	}
}

// References returns the tables t holds foreign keys to.
func (t Table) References() []Table {
	switch t {
	case TableConference:
		return []Table{TableFaculty, TableAddress}
	case TableScientistFaculty:
		return []Table{TableFaculty, TableScientist}
	case TablePHD:
		return []Table{TableScientist}
	default:
		return nil
	}
}

// IDColumn returns the generated key column of t. Join tables have none.
func (t Table) IDColumn() (string, bool) {
	if t == TableScientistFaculty {
		return "", false
	}
	return string(t) + "_id", true
}

func (t Table) String() string {
	return string(t)
}

// Record is a single row ready for insertion. Columns and Values are parallel.
type Record interface {
	Table() Table
	Columns() []string
	Values() []interface{}
}

const dateLayout = "2006-01-02"

func (a Address) Table() Table { return TableAddress }
func (a Address) Columns() []string {
	return []string{"address_id", "address_name", "address_number", "city", "country", "postal_code"}
}
func (a Address) Values() []interface{} {
	return []interface{}{a.ID, a.StreetName, a.BuildingNumber, a.City, a.Country, a.PostalCode}
}

func (f Faculty) Table() Table { return TableFaculty }
func (f Faculty) Columns() []string {
	return []string{"faculty_id", "name", "university_name"}
}
func (f Faculty) Values() []interface{} {
	return []interface{}{f.ID, f.Name, f.UniversityName}
}

func (c Conference) Table() Table { return TableConference }
func (c Conference) Columns() []string {
	return []string{"conference_id", "faculty_id", "address_id", "start_date", "end_date", "title"}
}
func (c Conference) Values() []interface{} {
	return []interface{}{c.ID, c.FacultyID, c.AddressID, c.StartDate.Format(dateLayout), c.EndDate.Format(dateLayout), c.Title}
}

func (s Scientist) Table() Table { return TableScientist }
func (s Scientist) Columns() []string {
	return []string{"scientist_id", "title", "name", "surname"}
}
func (s Scientist) Values() []interface{} {
	return []interface{}{s.ID, string(s.Title), s.Name, s.Surname}
}

func (m ScientistFaculty) Table() Table { return TableScientistFaculty }
func (m ScientistFaculty) Columns() []string {
	return []string{"faculty_id", "scientist_id"}
}
func (m ScientistFaculty) Values() []interface{} {
	return []interface{}{m.FacultyID, m.ScientistID}
}

func (p PHD) Table() Table { return TablePHD }
func (p PHD) Columns() []string {
	return []string{"phd_id", "date_received", "description", "supervisor_id", "title", "scientist_id"}
}
func (p PHD) Values() []interface{} {
	return []interface{}{p.ID, p.DateReceived.Format(dateLayout), p.Description, p.SupervisorID, p.Title, p.ScientistID}
}

func (p Publication) Table() Table { return TablePublication }
func (p Publication) Columns() []string {
	return []string{"publication_id", "title", "summary"}
}
func (p Publication) Values() []interface{} {
	return []interface{}{p.ID, p.Title, p.Summary}
}

func (f Funding) Table() Table { return TableFunding }
func (f Funding) Columns() []string {
	return []string{"funding_id", "funder", "budget", "start_date", "end_date"}
}
func (f Funding) Values() []interface{} {
	return []interface{}{f.ID, f.Funder, f.Budget.StringFixed(2), f.StartDate.Format(dateLayout), f.EndDate.Format(dateLayout)}
}

// Records converts a typed slice into the gateway row contract.
func Records[T Record](items []T) []Record {
	out := make([]Record, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
