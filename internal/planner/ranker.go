package planner

import (
	"sort"
	"time"

	"github.com/jengzang/itinerary-planner-go/internal/models"
	"github.com/jengzang/itinerary-planner-go/internal/spatial"
)

// Ranking thresholds, as fractions of the budget
const (
	maxCostShare      = 0.40
	expensiveShare    = 0.30
	midCostShare      = 0.15
	expensiveScore    = 0.3
	midCostScore      = 0.7
	affordableScore   = 1.0
	distanceDecayKm   = 100.0
	weightPersonal    = 0.6
	weightProximity   = 0.2
	weightBudgetScore = 0.2
)

// ScoredPOI is a candidate that survived filtering
type ScoredPOI struct {
	POI             models.POI
	Score           float64
	Personalization float64
	DistanceKm      float64
}

// PassesFilters applies the hard cost and duration caps
func PassesFilters(poi models.POI, prefs models.Preferences) bool {
	if !poi.Schedulable() {
		return false
	}
	if prefs.Budget > 0 && poi.Cost > prefs.Budget*maxCostShare {
		return false
	}
	return poi.Duration <= prefs.Pace.DailyMinutes()/2
}

// BudgetScore tiers a POI by its share of the budget
func BudgetScore(cost, budget float64) float64 {
	if budget <= 0 {
		return affordableScore
	}
	switch {
	case cost > budget*expensiveShare:
		return expensiveScore
	case cost > budget*midCostShare:
		return midCostScore
	default:
		return affordableScore
	}
}

// DistanceDecay favors POIs close to the origin
func DistanceDecay(km float64) float64 {
	return 1.0 / (1.0 + km/distanceDecayKm)
}

// RankCandidates filters pois and sorts the survivors by composite score,
// highest first. Ties keep catalog order.
func RankCandidates(pois []models.POI, prefs models.Preferences, month time.Month, distances *spatial.DistanceCache) []ScoredPOI {
	ranked := make([]ScoredPOI, 0, len(pois))
	for _, poi := range pois {
		if !PassesFilters(poi, prefs) {
			continue
		}

		personal := PersonalizationScore(poi, prefs, month)
		km := distances.Distance(prefs.Origin, poi.Location())
		score := weightPersonal*personal +
			weightProximity*DistanceDecay(km) +
			weightBudgetScore*BudgetScore(poi.Cost, prefs.Budget)

		ranked = append(ranked, ScoredPOI{
			POI:             poi,
			Score:           score,
			Personalization: personal,
			DistanceKm:      km,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// SelectCandidates keeps the best numDays*target POIs. Must-visit POIs that
// survived filtering are always kept and lead the selection; the remaining
// slots go to the best ranked others. Both groups keep rank order.
func SelectCandidates(ranked []ScoredPOI, prefs models.Preferences) []models.POI {
	limit := prefs.NumDays * prefs.Pace.TargetPOIsPerDay()

	var must, others []models.POI
	for _, c := range ranked {
		if prefs.IsMustVisit(c.POI.ID) {
			must = append(must, c.POI)
		} else {
			others = append(others, c.POI)
		}
	}

	room := max(0, limit-len(must))
	if len(others) > room {
		others = others[:room]
	}
	return append(must, others...)
}
