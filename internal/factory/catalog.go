package factory

import (
	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/sampler"
)

// FacultyCatalog is the fixed list of faculty names. Unique mode produces one
// faculty per entry.
var FacultyCatalog = []sampler.Category{
	{Label: "School of Theology", Weight: 0.05},
	{Label: "School of Law", Weight: 0.10},
	{Label: "School of Economics and Political Sciences", Weight: 0.12},
	{Label: "School of Philosophy", Weight: 0.10},
	{Label: "School of Science", Weight: 0.18},
	{Label: "School of Health Sciences", Weight: 0.15},
	{Label: "School of Education", Weight: 0.08},
	{Label: "School of Physical Education and Sport Science", Weight: 0.05},
	{Label: "School of Agricultural Development, Nutrition and Sustainability", Weight: 0.05},
	{Label: "School of Social and Political Sciences", Weight: 0.12},
}

// TitleCatalog weights the rank taxonomy.
var TitleCatalog = []sampler.Category{
	{Label: string(domain.Professor), Weight: 0.14},
	{Label: string(domain.AssociateProfessor), Weight: 0.12},
	{Label: string(domain.AssistantProfessor), Weight: 0.12},
	{Label: string(domain.Lecturer), Weight: 0.14},
	{Label: string(domain.Researcher), Weight: 0.20},
	{Label: string(domain.LaboratoryTeachingStaff), Weight: 0.10},
	{Label: string(domain.PhDCandidate), Weight: 0.18},
}

var FunderCatalog = []sampler.Category{
	{Label: "European Research Council", Weight: 0.20},
	{Label: "Horizon Europe", Weight: 0.25},
	{Label: "Hellenic Foundation for Research and Innovation", Weight: 0.20},
	{Label: "National Strategic Reference Framework", Weight: 0.15},
	{Label: "Stavros Niarchos Foundation", Weight: 0.10},
	{Label: "Industry Partnership", Weight: 0.10},
}

// ConferenceCatalog holds the conference titles enumerated in unique mode.
var ConferenceCatalog = []string{
	"International Conference on Theology and Society",
	"European Symposium on Byzantine Studies",
	"Conference on Orthodox Liturgical Traditions",
	"Workshop on Religion in the Public Sphere",
	"Colloquium on Patristic Texts",
	"International Conference on Constitutional Law",
	"European Forum on Human Rights Law",
	"Symposium on Maritime and Shipping Law",
	"Conference on Criminal Justice Reform",
	"Workshop on European Competition Law",
	"International Conference on Applied Economics",
	"Symposium on Public Finance and Fiscal Policy",
	"European Workshop on Political Economy",
	"Conference on Banking and Financial Stability",
	"Forum on Labour Markets and Inequality",
	"International Congress of Classical Philology",
	"Conference on Modern Greek Literature",
	"Symposium on Ancient Philosophy",
	"Workshop on Archaeology of the Aegean",
	"European Conference on Linguistics",
	"International Conference on Mathematical Analysis",
	"Symposium on Theoretical Physics",
	"European Conference on Computer Systems",
	"Workshop on Computational Chemistry",
	"Conference on Marine Biology and Ecology",
	"International Congress of Clinical Medicine",
	"Symposium on Public Health and Epidemiology",
	"European Conference on Pharmacology",
	"Workshop on Dental Research",
	"Conference on Nursing Practice and Education",
	"International Conference on Early Childhood Education",
	"Symposium on Teacher Training",
	"Workshop on Special Education and Inclusion",
	"Conference on Educational Technology",
	"Forum on Lifelong Learning",
	"International Conference on Sport Science",
	"Symposium on Exercise Physiology",
	"Workshop on Sports Management",
	"Conference on Coaching and Performance",
	"Forum on Physical Activity and Health",
	"International Conference on Sustainable Agriculture",
	"Symposium on Food Science and Nutrition",
	"Workshop on Rural Development",
	"Conference on Water Resources Management",
	"Forum on Climate and Agronomy",
	"International Conference on Political Science",
	"Symposium on Media and Communication",
	"Workshop on Sociology of Migration",
	"Conference on Public Administration",
	"Forum on Turkish and Modern Asian Studies",
}
