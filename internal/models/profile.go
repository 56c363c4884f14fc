package models

// TransportMode is how the traveler moves between places
type TransportMode string

// Transport modes
const (
	ModeCar   TransportMode = "car"
	ModeBus   TransportMode = "bus"
	ModeTrain TransportMode = "train"
	ModeBike  TransportMode = "bike"
	ModeAuto  TransportMode = "auto"
)

// TransportProfile holds the road speed and per-km cost of a mode
type TransportProfile struct {
	SpeedKmh float64 `json:"speed_kmh"`
	CostKm   float64 `json:"cost_km"`
}

// TransportProfiles maps every known mode to its profile
var TransportProfiles = map[TransportMode]TransportProfile{
	ModeCar:   {SpeedKmh: 50, CostKm: 8},
	ModeBus:   {SpeedKmh: 35, CostKm: 3},
	ModeTrain: {SpeedKmh: 70, CostKm: 2},
	ModeBike:  {SpeedKmh: 25, CostKm: 2},
	ModeAuto:  {SpeedKmh: 30, CostKm: 12},
}

// TransportModes lists modes in display order
var TransportModes = []TransportMode{ModeCar, ModeBus, ModeTrain, ModeBike, ModeAuto}

// Valid reports whether m is a known mode
func (m TransportMode) Valid() bool {
	_, ok := TransportProfiles[m]
	return ok
}

// Profile returns the mode's profile, falling back to car for unknown modes
func (m TransportMode) Profile() TransportProfile {
	if p, ok := TransportProfiles[m]; ok {
		return p
	}
	return TransportProfiles[ModeCar]
}

// PermitsRail reports whether journeys in this mode may use scheduled trains
func (m TransportMode) PermitsRail() bool {
	return m == ModeTrain
}

// Pace controls the daily time budget
type Pace string

// Paces
const (
	PaceRelaxed  Pace = "relaxed"
	PaceModerate Pace = "moderate"
	PaceFast     Pace = "fast"
)

// POIs-per-day bounds
const (
	MaxPOIsPerDay = 6
	MinPOIsPerDay = 2
)

// PaceProfile describes the daily budget of a pace
type PaceProfile struct {
	DailyHours     int `json:"daily_hours"`
	MaxTravelHours int `json:"max_travel_hours"`
	RestBuffer     int `json:"rest_buffer"` // Minutes
}

// PaceProfiles maps every known pace to its profile
var PaceProfiles = map[Pace]PaceProfile{
	PaceRelaxed:  {DailyHours: 6, MaxTravelHours: 2, RestBuffer: 60},
	PaceModerate: {DailyHours: 8, MaxTravelHours: 3, RestBuffer: 45},
	PaceFast:     {DailyHours: 10, MaxTravelHours: 4, RestBuffer: 30},
}

// Paces lists paces in display order
var Paces = []Pace{PaceRelaxed, PaceModerate, PaceFast}

// Valid reports whether p is a known pace
func (p Pace) Valid() bool {
	_, ok := PaceProfiles[p]
	return ok
}

// Profile returns the pace's profile, falling back to moderate
func (p Pace) Profile() PaceProfile {
	if pp, ok := PaceProfiles[p]; ok {
		return pp
	}
	return PaceProfiles[PaceModerate]
}

// DailyMinutes is the per-day visit time cap
func (p Pace) DailyMinutes() int {
	return p.Profile().DailyHours * 60
}

// TargetPOIsPerDay is how many POIs a day aims for at this pace
func (p Pace) TargetPOIsPerDay() int {
	t := p.Profile().DailyHours / 2
	if t < MinPOIsPerDay {
		t = MinPOIsPerDay
	}
	if t > MaxPOIsPerDay {
		t = MaxPOIsPerDay
	}
	return t
}

// Categories are the interest tags a traveler may request
var Categories = []string{
	"nature", "culture", "history", "adventure", "temple",
	"wildlife", "waterfall", "viewpoint", "pilgrimage", "unesco",
}
