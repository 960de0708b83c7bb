// Package catalog holds the static dataset behind the site: service
// offerings, journal articles and customer reviews. It is compiled in,
// loaded once and never mutated at runtime.
package catalog

import "detailwave.be/booking-api/pkg/models"

// Offerings returns every offering in display order.
func Offerings() []models.Offering {
	return offerings
}

// OfferingByID returns the offering with the given id, or nil.
func OfferingByID(id string) *models.Offering {
	for i := range offerings {
		if offerings[i].ID == id {
			o := offerings[i]
			return &o
		}
	}
	return nil
}

func Articles() []models.JournalArticle {
	return articles
}

func ArticleByID(id int) *models.JournalArticle {
	for i := range articles {
		if articles[i].ID == id {
			a := articles[i]
			return &a
		}
	}
	return nil
}

func Reviews() []models.Review {
	return reviews
}
