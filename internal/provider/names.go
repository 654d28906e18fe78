package provider

// Given names by gender. Surnames come from the faker's own list.
var maleGivenNames = []string{
	"Aaron", "Adam", "Adrian", "Alexander", "Andrew", "Anthony", "Arthur",
	"Benjamin", "Brian", "Charles", "Christopher", "Daniel", "David", "Dimitrios",
	"Edward", "Eric", "Frank", "George", "Gregory", "Henry", "Ioannis",
	"James", "John", "Jonathan", "Joseph", "Kenneth", "Konstantinos", "Lawrence",
	"Mark", "Matthew", "Michael", "Nicholas", "Nikolaos", "Patrick", "Paul",
	"Peter", "Richard", "Robert", "Samuel", "Stephen", "Thomas", "Vasileios",
	"Victor", "Walter", "William",
}

var femaleGivenNames = []string{
	"Alice", "Amanda", "Amy", "Angela", "Anna", "Barbara", "Catherine",
	"Charlotte", "Christina", "Diana", "Eleni", "Elizabeth", "Emily", "Emma",
	"Georgia", "Grace", "Hannah", "Helen", "Isabella", "Jennifer", "Julia",
	"Katerina", "Laura", "Linda", "Margaret", "Maria", "Martha", "Mary",
	"Nicole", "Olivia", "Rachel", "Rebecca", "Sarah", "Sofia", "Sophia",
	"Susan", "Theodora", "Victoria", "Virginia",
}
