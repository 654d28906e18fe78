package factory

import (
	"iter"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/provider"
)

const phdTitleField = "phd.title"

type PHDFactory struct {
	p *provider.Provider
}

func NewPHDFactory(p *provider.Provider) *PHDFactory {
	return &PHDFactory{p: p}
}

// Generate produces count PhDs awarded ten to thirty years ago. ScientistID
// and SupervisorID are left zero for the stitcher.
func (f *PHDFactory) Generate(count, startID int) (iter.Seq2[domain.PHD, error], error) {
	if err := validate(count, startID); err != nil {
		return nil, err
	}
	return sequence(count, startID, func(id int) (domain.PHD, error) {
		received, err := f.p.Date().YearsAgo(10, 30)
		if err != nil {
			return domain.PHD{}, err
		}
		description, err := f.p.Text().Paragraph(1000, 2000)
		if err != nil {
			return domain.PHD{}, err
		}
		title, err := uniqueSentence(f.p, phdTitleField, 11, 22)
		if err != nil {
			return domain.PHD{}, err
		}
		return domain.PHD{
			ID:           id,
			DateReceived: received,
			Description:  description,
			Title:        title,
		}, nil
	}), nil
}

func uniqueSentence(p *provider.Provider, field string, minWords, maxWords int) (string, error) {
	var sentenceErr error
	s, err := p.Unique(field, func() string {
		s, err := p.Text().Sentence(minWords, maxWords)
		if err != nil {
			sentenceErr = err
		}
		return s
	})
	if sentenceErr != nil {
		return "", sentenceErr
	}
	return s, err
}
