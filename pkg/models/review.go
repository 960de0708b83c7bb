package models

// Review is a customer testimonial shown on the reviews page. Like the
// catalog it ships with the binary and is read-only.
type Review struct {
	ID         int      `json:"id"`
	Author     string   `json:"author"`
	City       string   `json:"city"`
	Rating     int      `json:"rating" validate:"gte=1,lte=5"`
	Comment    string   `json:"comment"`
	OfferingID string   `json:"offeringId,omitempty"`
	Date       string   `json:"date"`
	Category   Category `json:"category,omitempty"`
}

// IsPositive reports a 4-5 star review.
func (r *Review) IsPositive() bool {
	return r.Rating >= 4
}
