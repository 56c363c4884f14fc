package planner

import (
	"sort"

	"github.com/jengzang/itinerary-planner-go/internal/models"
)

type visitRef struct {
	day   int
	entry int
	cost  float64
}

// PruneToBudget removes the costliest visits (visit + travel cost) until the
// removed amount covers the overspend. It never reroutes the remaining
// entries. Returns the number of visits removed.
func PruneToBudget(days []models.ItineraryDay, budget float64) int {
	total := 0.0
	for _, d := range days {
		total += d.TotalCost
	}
	if total <= budget {
		return 0
	}

	var refs []visitRef
	for di, d := range days {
		for ei, e := range d.Entries {
			if e.IsVisit() {
				refs = append(refs, visitRef{day: di, entry: ei, cost: e.Cost()})
			}
		}
	}
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].cost > refs[j].cost
	})

	excess := total - budget
	removed := make(map[int]map[int]bool)
	removedCost := 0.0
	count := 0
	for _, r := range refs {
		if removedCost >= excess {
			break
		}
		e := days[r.day].Entries[r.entry]
		days[r.day].TotalCost -= r.cost
		days[r.day].TotalVisitTime -= e.POI.Duration
		days[r.day].TotalTravelTime -= e.TravelTime

		if removed[r.day] == nil {
			removed[r.day] = make(map[int]bool)
		}
		removed[r.day][r.entry] = true
		removedCost += r.cost
		count++
	}

	for di, marks := range removed {
		kept := make([]models.ScheduleEntry, 0, len(days[di].Entries)-len(marks))
		for ei, e := range days[di].Entries {
			if !marks[ei] {
				kept = append(kept, e)
			}
		}
		days[di].Entries = kept
	}

	return count
}
