package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sofaOffering() Offering {
	return Offering{
		ID:    "s1",
		Name:  "Nettoyage Canapé",
		Price: 40,
		PriceList: []PricingOption{
			{Label: "Fauteuil", Price: 40},
			{Label: "Canapé 2/3 places", Price: 60},
		},
		Category: CategoryTextile,
	}
}

func carOffering() Offering {
	return Offering{
		ID:       "s3",
		Name:     "Lavage Auto (Intérieur)",
		Price:    50,
		Category: CategoryAuto,
	}
}

func TestEffectivePrice(t *testing.T) {
	sofa := sofaOffering()

	withTier := LineItem{Offering: sofa, SelectedOption: &PricingOption{Label: "Canapé 2/3 places", Price: 60}}
	assert.Equal(t, 60, withTier.EffectivePrice())

	withoutTier := LineItem{Offering: carOffering()}
	assert.Equal(t, 50, withoutTier.EffectivePrice())
}

func TestCartTotalRecomputesAfterEveryMutation(t *testing.T) {
	c := NewCart("sess-1")
	assert.Equal(t, 0, c.Total())

	c.Add(sofaOffering(), &PricingOption{Label: "Fauteuil", Price: 40})
	assert.Equal(t, 40, c.Total())

	c.Add(carOffering(), nil)
	assert.Equal(t, 90, c.Total())

	require.NoError(t, c.Remove(0))
	assert.Equal(t, 50, c.Total())

	c.Clear()
	assert.Equal(t, 0, c.Total())
	assert.Equal(t, 0, c.Len())
}

func TestDuplicateOfferingsWithDifferentTiersAreIndependent(t *testing.T) {
	c := NewCart("sess-2")
	c.Add(sofaOffering(), &PricingOption{Label: "Fauteuil", Price: 40})
	c.Add(sofaOffering(), &PricingOption{Label: "Canapé 2/3 places", Price: 60})

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 100, c.Total())

	require.NoError(t, c.Remove(0))
	assert.Equal(t, 60, c.Total())
	assert.Equal(t, "Canapé 2/3 places", c.Items[0].SelectedOption.Label)
}

func TestRemoveOutOfRangeLeavesCartUntouched(t *testing.T) {
	c := NewCart("sess-3")
	c.Add(carOffering(), nil)

	assert.Error(t, c.Remove(-1))
	assert.Error(t, c.Remove(1))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 50, c.Total())
}

func TestDefaultOption(t *testing.T) {
	sofa := sofaOffering()
	opt := sofa.DefaultOption()
	require.NotNil(t, opt)
	assert.Equal(t, "Fauteuil", opt.Label)

	car := carOffering()
	assert.Nil(t, car.DefaultOption())
}

func TestFindOption(t *testing.T) {
	sofa := sofaOffering()

	opt := sofa.FindOption("Canapé 2/3 places")
	require.NotNil(t, opt)
	assert.Equal(t, 60, opt.Price)

	assert.Nil(t, sofa.FindOption("Canapé volant"))
}
