package domain

// Title is a scientist's rank.
type Title string

const (
	Professor               Title = "Professor"
	AssociateProfessor      Title = "Associate Professor"
	AssistantProfessor      Title = "Assistant Professor"
	Lecturer                Title = "Lecturer"
	Researcher              Title = "Researcher"
	LaboratoryTeachingStaff Title = "Laboratory Teaching Staff"
	PhDCandidate            Title = "PhD Candidate"
)

// Titles lists the whole rank taxonomy in declaration order.
func Titles() []Title {
	return []Title{
		Professor,
		AssociateProfessor,
		AssistantProfessor,
		Lecturer,
		Researcher,
		LaboratoryTeachingStaff,
		PhDCandidate,
	}
}

// SeniorTitles are the ranks allowed to supervise a PhD, in the order their
// holders are concatenated into a faculty's senior set.
func SeniorTitles() []Title {
	return []Title{Professor, AssistantProfessor, AssociateProfessor}
}

// JuniorTitles are the ranks eligible for a PhD, in the order their holders
// are concatenated into a faculty's junior set.
func JuniorTitles() []Title {
	return []Title{Lecturer, Researcher, LaboratoryTeachingStaff, PhDCandidate}
}

func (t Title) IsSenior() bool {
	for _, s := range SeniorTitles() {
		if t == s {
			return true
		}
	}
	return false
}

func (t Title) IsJunior() bool {
	for _, j := range JuniorTitles() {
		if t == j {
			return true
		}
	}
	return false
}

func (t Title) Valid() bool {
	return t.IsSenior() || t.IsJunior()
}

func (t Title) String() string {
	return string(t)
}
