package factory

import (
	"iter"
	"strings"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/provider"
)

const conferenceTitleField = "conference.title"

type ConferenceFactory struct {
	p *provider.Provider
}

func NewConferenceFactory(p *provider.Provider) *ConferenceFactory {
	return &ConferenceFactory{p: p}
}

// Generate produces count conferences with unique free-text titles.
// FacultyID and AddressID are left zero for the stitcher.
func (f *ConferenceFactory) Generate(count, startID int) (iter.Seq2[domain.Conference, error], error) {
	if err := validate(count, startID); err != nil {
		return nil, err
	}
	return sequence(count, startID, func(id int) (domain.Conference, error) {
		topic, err := uniqueSentence(f.p, conferenceTitleField, 3, 6)
		if err != nil {
			return domain.Conference{}, err
		}
		title := "Conference on " + strings.TrimSuffix(topic, ".")
		return f.build(id, title)
	}), nil
}

// GenerateUnique yields one conference per catalog title, in catalog order.
func (f *ConferenceFactory) GenerateUnique(startID int) (iter.Seq2[domain.Conference, error], error) {
	if err := validate(len(ConferenceCatalog), startID); err != nil {
		return nil, err
	}
	return sequence(len(ConferenceCatalog), startID, func(id int) (domain.Conference, error) {
		return f.build(id, ConferenceCatalog[id-startID])
	}), nil
}

// UniqueCount is the number of conferences GenerateUnique produces.
func (f *ConferenceFactory) UniqueCount() int {
	return len(ConferenceCatalog)
}

// build dates a conference within the last five years and gives it a
// duration of one to five days.
func (f *ConferenceFactory) build(id int, title string) (domain.Conference, error) {
	start, err := f.p.Date().YearsAgo(0, 5)
	if err != nil {
		return domain.Conference{}, err
	}
	days, err := f.p.Numeric().IntRange(0, 4)
	if err != nil {
		return domain.Conference{}, err
	}
	return domain.Conference{
		ID:        id,
		Title:     title,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, days),
	}, nil
}
