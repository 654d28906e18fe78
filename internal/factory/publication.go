package factory

import (
	"iter"

	"github.com/Rana718/sciseed/internal/domain"
	"github.com/Rana718/sciseed/internal/provider"
)

const publicationTitleField = "publication.title"

type PublicationFactory struct {
	p *provider.Provider
}

func NewPublicationFactory(p *provider.Provider) *PublicationFactory {
	return &PublicationFactory{p: p}
}

func (f *PublicationFactory) Generate(count, startID int) (iter.Seq2[domain.Publication, error], error) {
	if err := validate(count, startID); err != nil {
		return nil, err
	}
	return sequence(count, startID, func(id int) (domain.Publication, error) {
		title, err := uniqueSentence(f.p, publicationTitleField, 6, 14)
		if err != nil {
			return domain.Publication{}, err
		}
		summary, err := f.p.Text().Paragraph(200, 600)
		if err != nil {
			return domain.Publication{}, err
		}
		return domain.Publication{ID: id, Title: title, Summary: summary}, nil
	}), nil
}
