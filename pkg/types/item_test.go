package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCategory(t *testing.T) {
	for _, c := range []string{CategoryElectronics, CategoryBooks, CategorySports, CategoryMisc} {
		assert.True(t, ValidCategory(c), c)
	}

	// CategoryAll is a query selector, never a storable category.
	assert.False(t, ValidCategory(CategoryAll))
	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("electronics"))
}

func TestValidListingType(t *testing.T) {
	assert.True(t, ValidListingType(ListingRent))
	assert.True(t, ValidListingType(ListingSell))
	assert.False(t, ValidListingType("Buy"))
	assert.False(t, ValidListingType(""))
}

func TestValidRequestType(t *testing.T) {
	assert.True(t, ValidRequestType(RequestBuy))
	assert.True(t, ValidRequestType(RequestRent))
	assert.False(t, ValidRequestType(ListingSell))
	assert.False(t, ValidRequestType(""))
}
