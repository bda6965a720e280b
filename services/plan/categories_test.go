package plan

import (
	"testing"

	"festivo/models"

	"github.com/stretchr/testify/assert"
)

func TestCategoryKeyFor(t *testing.T) {
	tests := []struct {
		display string
		want    string
	}{
		{"Venues", models.CategoryVenue},
		{"venue", models.CategoryVenue},
		{"Party Bags", models.CategoryPartyBags},
		{"  party bags  ", models.CategoryPartyBags},
		{"Entertainment", models.CategoryEntertainment},
		{"Entertainers", models.CategoryEntertainment},
		{"Face Painting", models.CategoryFacePainting},
		{"partyBags", models.CategoryPartyBags}, // already a key
		{"Soft Play", "soft play"},              // unknown passes through lowercased
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, CategoryKeyFor(tc.display), tc.display)
	}
}

func TestIsMainCategory(t *testing.T) {
	assert.True(t, IsMainCategory(models.CategoryVenue))
	assert.True(t, IsMainCategory(models.CategoryPartyBags))
	assert.False(t, IsMainCategory("soft play"))
	assert.False(t, IsMainCategory(""))
}

func TestRequiresAddonChoice(t *testing.T) {
	assert.True(t, RequiresAddonChoice(models.CategoryEntertainment))
	assert.True(t, RequiresAddonChoice(models.CategoryActivities))
	assert.True(t, RequiresAddonChoice(models.CategoryFacePainting))
	assert.False(t, RequiresAddonChoice(models.CategoryVenue))
	assert.False(t, RequiresAddonChoice(models.CategoryPartyBags))
}
