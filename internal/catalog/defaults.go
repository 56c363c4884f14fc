package catalog

import (
	"github.com/jengzang/itinerary-planner-go/internal/models"
	"github.com/jengzang/itinerary-planner-go/internal/timeofday"
)

// Default builds the catalog from the built-in dataset
func Default() *Catalog {
	return New(DefaultPOIs(), DefaultStations(), DefaultServices())
}

func hm(s string) int {
	return timeofday.MustParse(s)
}

// DefaultPOIs returns the built-in attractions of Jharkhand and Bihar
func DefaultPOIs() []models.POI {
	return []models.POI{
		{ID: "betla_np", Name: "Betla National Park", City: "Latehar", Lat: 23.8500, Lon: 84.2100,
			Categories: []string{"nature", "wildlife", "adventure"}, Duration: 240, Popularity: 0.9,
			OpenTime: hm("06:00"), CloseTime: hm("17:30"), Cost: 1500,
			Description: "Famous tiger reserve with diverse wildlife", Rating: 4.3, ReviewCount: 1250,
			AccessibilityScore: 0.7, FamilyFriendly: true, StationID: "DTO",
			BestMonths: []string{"Oct", "Nov", "Dec", "Jan", "Feb"}},
		{ID: "netarhat", Name: "Netarhat Hills", City: "Latehar", Lat: 23.4800, Lon: 84.2700,
			Categories: []string{"nature", "viewpoint", "hill_station"}, Duration: 180, Popularity: 0.85,
			OpenTime: hm("05:30"), CloseTime: hm("19:00"), Cost: 800,
			Description: "Queen of Chotanagpur with stunning sunrise views", Rating: 4.1, ReviewCount: 890,
			AccessibilityScore: 0.8, FamilyFriendly: true,
			BestMonths: []string{"Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}},
		{ID: "hundru_falls", Name: "Hundru Falls", City: "Ranchi", Lat: 23.5100, Lon: 85.4200,
			Categories: []string{"nature", "waterfall", "adventure"}, Duration: 120, Popularity: 0.75,
			OpenTime: hm("06:00"), CloseTime: hm("18:00"), Cost: 200,
			Description: "98m high waterfall, spectacular during monsoons", Rating: 4.0, ReviewCount: 2100,
			AccessibilityScore: 0.6, FamilyFriendly: true, StationID: "RNC",
			BestMonths: []string{"Jul", "Aug", "Sep", "Oct"}},
		{ID: "jonha_falls", Name: "Jonha Falls", City: "Ranchi", Lat: 23.3600, Lon: 85.2500,
			Categories: []string{"nature", "waterfall"}, Duration: 100, Popularity: 0.7,
			OpenTime: hm("07:00"), CloseTime: hm("17:00"), Cost: 150,
			Description: "Beautiful waterfall with natural pool", Rating: 3.8, ReviewCount: 1500,
			AccessibilityScore: 0.7, FamilyFriendly: true, StationID: "HTE",
			BestMonths: []string{"Jul", "Aug", "Sep", "Oct"}},
		{ID: "patratu_valley", Name: "Patratu Valley", City: "Ranchi", Lat: 23.6300, Lon: 85.2700,
			Categories: []string{"nature", "scenic_drive", "lake"}, Duration: 90, Popularity: 0.65,
			OpenTime: hm("06:00"), CloseTime: hm("19:00"), Cost: 100,
			Description: "Scenic valley with beautiful lake views", Rating: 3.9, ReviewCount: 950,
			AccessibilityScore: 0.8, FamilyFriendly: true, StationID: "RNC"},
		{ID: "deoghar_temple", Name: "Baidyanath Temple Deoghar", City: "Deoghar", Lat: 24.4800, Lon: 86.7000,
			Categories: []string{"culture", "temple", "pilgrimage"}, Duration: 150, Popularity: 0.9,
			OpenTime: hm("04:00"), CloseTime: hm("22:00"), Cost: 50,
			Description: "One of 12 Jyotirlingas, major pilgrimage site", Rating: 4.5, ReviewCount: 5000,
			AccessibilityScore: 0.5, FamilyFriendly: true, StationID: "JSME"},
		{ID: "rajrappa_temple", Name: "Rajrappa Temple & Falls", City: "Ramgarh", Lat: 23.6300, Lon: 85.6000,
			Categories: []string{"culture", "waterfall", "temple"}, Duration: 120, Popularity: 0.72,
			OpenTime: hm("06:00"), CloseTime: hm("20:00"), Cost: 100,
			Description: "Temple with scenic waterfall", Rating: 4.0, ReviewCount: 800,
			AccessibilityScore: 0.6, FamilyFriendly: true, StationID: "BRKA"},
		{ID: "palamu_fort", Name: "Palamu Fort", City: "Latehar", Lat: 24.1200, Lon: 83.5200,
			Categories: []string{"history", "fort", "architecture"}, Duration: 150, Popularity: 0.6,
			OpenTime: hm("09:00"), CloseTime: hm("17:00"), Cost: 200,
			Description: "Historic fort with Mughal architecture", Rating: 3.7, ReviewCount: 400,
			AccessibilityScore: 0.5, FamilyFriendly: true, StationID: "DTO",
			BestMonths: []string{"Oct", "Nov", "Dec", "Jan", "Feb"}},
		{ID: "hazaribagh_np", Name: "Hazaribagh National Park", City: "Hazaribagh", Lat: 23.9800, Lon: 85.3600,
			Categories: []string{"nature", "wildlife"}, Duration: 180, Popularity: 0.75,
			OpenTime: hm("06:00"), CloseTime: hm("17:00"), Cost: 1200,
			Description: "Wildlife sanctuary with tigers and leopards", Rating: 4.0, ReviewCount: 600,
			AccessibilityScore: 0.6, FamilyFriendly: true, StationID: "HZBN",
			BestMonths: []string{"Nov", "Dec", "Jan", "Feb", "Mar"}},
		{ID: "mccluskieganj", Name: "McCluskieganj", City: "Ranchi", Lat: 23.6167, Lon: 84.9333,
			Categories: []string{"history", "culture", "heritage"}, Duration: 120, Popularity: 0.55,
			OpenTime: hm("08:00"), CloseTime: hm("18:00"), Cost: 300,
			Description: "Anglo-Indian heritage town", Rating: 3.5, ReviewCount: 200,
			AccessibilityScore: 0.7, FamilyFriendly: true},
		{ID: "bodh_gaya", Name: "Bodh Gaya", City: "Gaya", Lat: 24.6958, Lon: 84.9914,
			Categories: []string{"culture", "temple", "pilgrimage", "unesco"}, Duration: 240, Popularity: 0.95,
			OpenTime: hm("05:00"), CloseTime: hm("20:00"), Cost: 200,
			Description: "UNESCO World Heritage Site, place of Buddha's enlightenment", Rating: 4.7, ReviewCount: 8000,
			AccessibilityScore: 0.8, FamilyFriendly: true, StationID: "GAYA"},
		{ID: "nalanda_ruins", Name: "Nalanda University Ruins", City: "Nalanda", Lat: 25.1358, Lon: 85.4436,
			Categories: []string{"history", "unesco", "education"}, Duration: 180, Popularity: 0.8,
			OpenTime: hm("08:00"), CloseTime: hm("17:00"), Cost: 300,
			Description: "Ancient university ruins, UNESCO World Heritage Site", Rating: 4.2, ReviewCount: 1200,
			AccessibilityScore: 0.7, FamilyFriendly: true, StationID: "NLD"},
		{ID: "vaishali", Name: "Vaishali", City: "Vaishali", Lat: 25.9981, Lon: 85.1356,
			Categories: []string{"history", "culture", "buddhist"}, Duration: 150, Popularity: 0.65,
			OpenTime: hm("08:00"), CloseTime: hm("17:00"), Cost: 150,
			Description: "Ancient city, birthplace of democracy", Rating: 3.8, ReviewCount: 400,
			AccessibilityScore: 0.8, FamilyFriendly: true, StationID: "HJP"},
		{ID: "rajgir", Name: "Rajgir", City: "Rajgir", Lat: 25.0258, Lon: 85.4203,
			Categories: []string{"history", "culture", "hot_springs", "buddhist"}, Duration: 200, Popularity: 0.8,
			OpenTime: hm("06:00"), CloseTime: hm("19:00"), Cost: 400,
			Description: "Ancient capital with hot springs and Buddhist sites", Rating: 4.1, ReviewCount: 1500,
			AccessibilityScore: 0.6, FamilyFriendly: true, StationID: "RGD"},
	}
}

// DefaultStations returns the built-in station registry
func DefaultStations() []models.Station {
	return []models.Station{
		{ID: "RNC", Name: "Ranchi Junction", City: "Ranchi", Lat: 23.3441, Lon: 85.3096},
		{ID: "HTE", Name: "Hatia", City: "Ranchi", Lat: 23.3000, Lon: 85.2800},
		{ID: "BRKA", Name: "Barkakana Junction", City: "Ramgarh", Lat: 23.6280, Lon: 85.4600},
		{ID: "HZBN", Name: "Hazaribagh Town", City: "Hazaribagh", Lat: 23.9960, Lon: 85.3600},
		{ID: "DTO", Name: "Daltonganj", City: "Latehar", Lat: 24.0390, Lon: 84.0660},
		{ID: "JSME", Name: "Jasidih Junction", City: "Deoghar", Lat: 24.5130, Lon: 86.6460},
		{ID: "GAYA", Name: "Gaya Junction", City: "Gaya", Lat: 24.8030, Lon: 84.9990},
		{ID: "PNBE", Name: "Patna Junction", City: "Patna", Lat: 25.6030, Lon: 85.1370},
		{ID: "RGD", Name: "Rajgir", City: "Rajgir", Lat: 25.0290, Lon: 85.4200},
		{ID: "NLD", Name: "Nalanda", City: "Nalanda", Lat: 25.1360, Lon: 85.4430},
		{ID: "HJP", Name: "Hajipur Junction", City: "Vaishali", Lat: 25.6890, Lon: 85.2090},
	}
}

// stop builds a TrainStop; empty times mean the stop has no arrival or departure
func stop(station, arrival, departure string, day int) models.TrainStop {
	s := models.TrainStop{StationID: station, Arrival: models.NoTime, Departure: models.NoTime, Day: day}
	if arrival != "" {
		s.Arrival = hm(arrival)
	}
	if departure != "" {
		s.Departure = hm(departure)
	}
	return s
}

// DefaultServices returns the built-in synthetic train schedule
func DefaultServices() []models.TrainService {
	return []models.TrainService{
		{Number: "12366", Name: "Ranchi Patna Jan Shatabdi", Stops: []models.TrainStop{
			stop("RNC", "", "14:05", 0),
			stop("BRKA", "15:30", "15:35", 0),
			stop("HZBN", "16:50", "16:55", 0),
			stop("GAYA", "20:40", "20:50", 0),
			stop("PNBE", "23:30", "", 0),
		}},
		{Number: "12365", Name: "Patna Ranchi Jan Shatabdi", Stops: []models.TrainStop{
			stop("PNBE", "", "06:00", 0),
			stop("GAYA", "08:35", "08:45", 0),
			stop("HZBN", "12:25", "12:30", 0),
			stop("BRKA", "13:45", "13:50", 0),
			stop("RNC", "15:20", "", 0),
		}},
		{Number: "18623", Name: "Hatia Jasidih Express", Stops: []models.TrainStop{
			stop("HTE", "", "21:30", 0),
			stop("RNC", "21:50", "22:00", 0),
			stop("JSME", "04:40", "", 1),
		}},
		{Number: "18624", Name: "Jasidih Hatia Express", Stops: []models.TrainStop{
			stop("JSME", "", "19:00", 0),
			stop("RNC", "02:30", "02:40", 1),
			stop("HTE", "03:00", "", 1),
		}},
		{Number: "13348", Name: "Palamu Express", Stops: []models.TrainStop{
			stop("DTO", "", "05:30", 0),
			stop("BRKA", "09:40", "09:45", 0),
			stop("RNC", "11:15", "", 0),
		}},
		{Number: "13347", Name: "Palamu Express", Stops: []models.TrainStop{
			stop("RNC", "", "17:00", 0),
			stop("BRKA", "18:25", "18:30", 0),
			stop("DTO", "22:30", "", 0),
		}},
		{Number: "13233", Name: "Gaya Rajgir Passenger", Stops: []models.TrainStop{
			stop("GAYA", "", "07:00", 0),
			stop("RGD", "09:40", "09:50", 0),
			stop("NLD", "10:05", "", 0),
		}},
		{Number: "13234", Name: "Rajgir Gaya Passenger", Stops: []models.TrainStop{
			stop("NLD", "", "16:00", 0),
			stop("RGD", "16:15", "16:25", 0),
			stop("GAYA", "19:05", "", 0),
		}},
		{Number: "12391", Name: "Shramjeevi Express", Stops: []models.TrainStop{
			stop("RGD", "", "06:30", 0),
			stop("NLD", "06:45", "06:47", 0),
			stop("PNBE", "09:15", "", 0),
		}},
		{Number: "12392", Name: "Shramjeevi Express", Stops: []models.TrainStop{
			stop("PNBE", "", "17:00", 0),
			stop("NLD", "19:20", "19:22", 0),
			stop("RGD", "19:40", "", 0),
		}},
		{Number: "63211", Name: "Patna Hajipur MEMU", Stops: []models.TrainStop{
			stop("PNBE", "", "07:10", 0),
			stop("HJP", "07:45", "", 0),
		}},
		{Number: "63212", Name: "Hajipur Patna MEMU", Stops: []models.TrainStop{
			stop("HJP", "", "18:00", 0),
			stop("PNBE", "18:35", "", 0),
		}},
		{Number: "15027", Name: "Maurya Express", Stops: []models.TrainStop{
			stop("HJP", "", "20:00", 0),
			stop("PNBE", "20:45", "20:55", 0),
			stop("GAYA", "23:50", "23:58", 0),
			stop("DTO", "05:30", "05:40", 1),
			stop("BRKA", "14:20", "14:30", 1),
			stop("RNC", "21:10", "", 1),
		}},
	}
}
