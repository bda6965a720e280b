package plan

import (
	"strings"

	"festivo/models"
)

// categoryKeys maps supplier display categories to plan slot keys. This
// table is the single owner of the mapping; nothing else re-implements it.
var categoryKeys = map[string]string{
	"venues":        models.CategoryVenue,
	"venue":         models.CategoryVenue,
	"entertainment": models.CategoryEntertainment,
	"entertainers":  models.CategoryEntertainment,
	"catering":      models.CategoryCatering,
	"cakes":         models.CategoryCakes,
	"face painting": models.CategoryFacePainting,
	"activities":    models.CategoryActivities,
	"party bags":    models.CategoryPartyBags,
	"decorations":   models.CategoryDecorations,
	"balloons":      models.CategoryBalloons,
}

// mainCategories are the keys the plan allows one occupant for. Anything
// outside this set is treated as an add-on category.
var mainCategories = map[string]bool{
	models.CategoryVenue:         true,
	models.CategoryEntertainment: true,
	models.CategoryCatering:      true,
	models.CategoryCakes:         true,
	models.CategoryFacePainting:  true,
	models.CategoryActivities:    true,
	models.CategoryPartyBags:     true,
	models.CategoryDecorations:   true,
	models.CategoryBalloons:      true,
}

// addonChoiceCategories are the "entertainment-like" categories whose
// suppliers offer selectable add-ons at booking time.
var addonChoiceCategories = map[string]bool{
	models.CategoryEntertainment: true,
	models.CategoryActivities:    true,
	models.CategoryFacePainting:  true,
}

// CategoryKeyFor normalizes a supplier display category ("Party Bags") to
// its plan slot key ("partyBags"). Inputs already in key form pass through.
func CategoryKeyFor(displayCategory string) string {
	normalized := strings.ToLower(strings.TrimSpace(displayCategory))
	if key, ok := categoryKeys[normalized]; ok {
		return key
	}
	for _, key := range categoryKeys {
		if key == displayCategory {
			return key
		}
	}
	return normalized
}

// IsMainCategory reports whether key is one of the fixed purchase slots.
func IsMainCategory(key string) bool {
	return mainCategories[key]
}

// RequiresAddonChoice reports whether suppliers in this category must have
// their add-on selection confirmed before a commit.
func RequiresAddonChoice(key string) bool {
	return addonChoiceCategories[key]
}
