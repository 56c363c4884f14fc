package planner

import (
	"math"

	"github.com/jengzang/itinerary-planner-go/internal/models"
)

// DayCaps bounds what a single day may hold. MaxPOIs of zero means no
// count limit.
type DayCaps struct {
	Minutes int
	Cost    float64
	MaxPOIs int
}

// CapsFor derives per-day caps from the pace and an even budget split
func CapsFor(prefs models.Preferences) DayCaps {
	days := prefs.NumDays
	if days < 1 {
		days = 1
	}
	return DayCaps{
		Minutes: prefs.Pace.DailyMinutes(),
		Cost:    prefs.Budget / float64(days),
		MaxPOIs: prefs.Pace.TargetPOIsPerDay(),
	}
}

type dayLoad struct {
	count   int
	minutes int
	cost    float64
}

func (l dayLoad) fits(poi models.POI, caps DayCaps) bool {
	if caps.MaxPOIs > 0 && l.count >= caps.MaxPOIs {
		return false
	}
	return l.minutes+poi.Duration <= caps.Minutes && l.cost+poi.Cost <= caps.Cost
}

func (l dayLoad) combined(caps DayCaps) float64 {
	var t, c float64
	if caps.Minutes > 0 {
		t = float64(l.minutes) / float64(caps.Minutes)
	}
	if caps.Cost > 0 {
		c = l.cost / caps.Cost
	}
	return (t + c) / 2
}

// AssignDays spreads ranked POIs across numDays under caps. Must-visit POIs
// go first, round robin in input order; one that does not fit its turn's
// day is dropped. The rest go to the least loaded day that can take them,
// lowest index on ties. It returns the per-day buckets and the drop count.
func AssignDays(pois []models.POI, numDays int, caps DayCaps, mustVisit func(id string) bool) ([][]models.POI, int) {
	if numDays < 1 {
		return nil, len(pois)
	}

	days := make([][]models.POI, numDays)
	loads := make([]dayLoad, numDays)
	dropped := 0

	place := func(d int, poi models.POI) {
		days[d] = append(days[d], poi)
		loads[d].count++
		loads[d].minutes += poi.Duration
		loads[d].cost += poi.Cost
	}

	var regular []models.POI
	priority := 0
	for _, poi := range pois {
		if mustVisit == nil || !mustVisit(poi.ID) {
			regular = append(regular, poi)
			continue
		}
		d := priority % numDays
		priority++
		if loads[d].fits(poi, caps) {
			place(d, poi)
		} else {
			dropped++
		}
	}

	for _, poi := range regular {
		best := -1
		bestLoad := math.Inf(1)
		for d := range loads {
			if !loads[d].fits(poi, caps) {
				continue
			}
			if l := loads[d].combined(caps); l < bestLoad {
				best, bestLoad = d, l
			}
		}
		if best < 0 {
			dropped++
			continue
		}
		place(best, poi)
	}

	return days, dropped
}
