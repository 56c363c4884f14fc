package planner

import (
	"time"

	"github.com/jengzang/itinerary-planner-go/internal/models"
)

// Scoring weights
const (
	weightInterest      = 0.40
	weightPopularity    = 0.25
	weightAccessibility = 0.15
	weightFamily        = 0.10

	neutralInterest       = 0.5
	defaultCategoryWeight = 0.5
	defaultAccessibility  = 0.8
	defaultFamilyFit      = 0.8
	unfriendlyFamilyFit   = 0.3
	inSeasonBonus         = 0.10
	offSeasonBonus        = 0.05
)

// categoryWeights ranks how strongly a matching tag counts toward interest
var categoryWeights = map[string]float64{
	"nature":     1.0,
	"culture":    1.0,
	"history":    0.9,
	"adventure":  0.8,
	"temple":     0.9,
	"wildlife":   0.8,
	"waterfall":  0.7,
	"viewpoint":  0.6,
	"pilgrimage": 0.9,
	"unesco":     1.0,
}

// InterestScore measures how well a POI's tags match the requested interests
func InterestScore(poi models.POI, interests []string) float64 {
	if len(interests) == 0 {
		return neutralInterest
	}

	requested := make(map[string]bool, len(interests))
	for _, i := range interests {
		requested[i] = true
	}

	score := 0.0
	seen := make(map[string]bool, len(poi.Categories))
	for _, c := range poi.Categories {
		if !requested[c] || seen[c] {
			continue
		}
		seen[c] = true
		w, ok := categoryWeights[c]
		if !ok {
			w = defaultCategoryWeight
		}
		score += w
	}

	return min(1.0, score/float64(len(interests)))
}

// PersonalizationScore blends interest, popularity, accessibility, family fit
// and seasonality into a value in [0,1]
func PersonalizationScore(poi models.POI, prefs models.Preferences, month time.Month) float64 {
	score := weightInterest * InterestScore(poi, prefs.Interests)
	score += weightPopularity * (poi.Popularity + poi.Rating/5.0) / 2.0

	if prefs.AccessibilityNeeds {
		score += weightAccessibility * poi.AccessibilityScore
	} else {
		score += weightAccessibility * defaultAccessibility
	}

	switch {
	case prefs.FamilyTrip && poi.FamilyFriendly:
		score += weightFamily * 1.0
	case prefs.FamilyTrip:
		score += weightFamily * unfriendlyFamilyFit
	default:
		score += weightFamily * defaultFamilyFit
	}

	if poi.GoodInMonth(month) {
		score += inSeasonBonus
	} else {
		score += offSeasonBonus
	}

	return min(1.0, score)
}
