package models

import "strings"

// BookingRequest is the checkout payload submitted by the site. It lives for
// exactly one notification attempt and is never stored.
//
// Only Phone is enforced at this boundary; the form marks more fields as
// required but the business can act on any booking it can call back.
type BookingRequest struct {
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Phone         string     `json:"phone" binding:"required"`
	Email         string     `json:"email"`
	Address       string     `json:"address"`
	PostalCode    string     `json:"postalCode"`
	City          string     `json:"city"`
	Note          string     `json:"note"`
	PreferredDate string     `json:"preferredDate"`
	PreferredTime string     `json:"preferredTime"`
	Total         string     `json:"total"`
	Items         []LineItem `json:"items"`
	Photos        []string   `json:"photos"`

	// Sent by the form for older templates; the handler does not read them.
	CartSummary string `json:"cartSummary,omitempty"`
	ItemsCount  int    `json:"itemsCount,omitempty"`
}

func (b *BookingRequest) FullName() string {
	return strings.TrimSpace(b.FirstName + " " + b.LastName)
}

// Attachment is a decoded booking photo, ready to hand to the delivery
// provider.
type Attachment struct {
	Filename string
	Content  []byte
}

// MaxPhotos is the per-booking photo cap, enforced by the form before
// submission. The server tolerates any count and simply decodes what it gets.
const MaxPhotos = 8
