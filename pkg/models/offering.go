package models

// Category is the fixed set of service families shown on the site.
type Category string

const (
	CategoryTextile      Category = "Textile"
	CategoryAuto         Category = "Auto"
	CategoryDisinfection Category = "Désinfection"
)

func Categories() []Category {
	return []Category{CategoryTextile, CategoryAuto, CategoryDisinfection}
}

// PricingOption is a named tier on an offering's price list.
type PricingOption struct {
	Label string `json:"label" validate:"required"`
	Price int    `json:"price" validate:"required,gt=0"`
}

// Offering is a sellable service from the static catalog. Price is the
// starting price; PriceList, when present, holds the tiers actually billed.
type Offering struct {
	ID              string          `json:"id" validate:"required"`
	Name            string          `json:"name" validate:"required,min=2,max=200"`
	Tagline         string          `json:"tagline"`
	Description     string          `json:"description" validate:"max=2000"`
	LongDescription string          `json:"longDescription,omitempty"`
	Price           int             `json:"price" validate:"required,gt=0"`
	PriceList       []PricingOption `json:"priceList,omitempty" validate:"dive"`
	Category        Category        `json:"category" validate:"required,oneof=Textile Auto Désinfection"`
	ImageURL        string          `json:"imageUrl"`
	Gallery         []string        `json:"gallery,omitempty"`
	Features        []string        `json:"features"`
}

// HasTiers reports whether the offering bills by named tier instead of the
// base price.
func (o *Offering) HasTiers() bool {
	return len(o.PriceList) > 0
}

// DefaultOption returns the tier pre-selected when the offering is opened:
// the first entry of the price list, or nil for flat-priced offerings.
func (o *Offering) DefaultOption() *PricingOption {
	if !o.HasTiers() {
		return nil
	}
	opt := o.PriceList[0]
	return &opt
}

// FindOption looks a tier up by its label.
func (o *Offering) FindOption(label string) *PricingOption {
	for i := range o.PriceList {
		if o.PriceList[i].Label == label {
			opt := o.PriceList[i]
			return &opt
		}
	}
	return nil
}
