package domain

import "time"

// Activity types within a day plan.
const (
	ActivityAttraction    = "attraction"
	ActivityMeal          = "meal"
	ActivityTransport     = "transport"
	ActivityAccommodation = "accommodation"
)

// Itinerary is a travel plan owned by the current user.
type Itinerary struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Title       string     `json:"title"`
	Destination string     `json:"destination"`
	Departure   string     `json:"departure,omitempty"`
	Days        int        `json:"days"`
	Budget      float64    `json:"budget,omitempty"`
	TravelStyle string     `json:"travel_style,omitempty"`
	Status      string     `json:"status,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	Highlights  []string   `json:"highlights,omitempty"`
	BestSeason  string     `json:"best_season,omitempty"`
	Weather     string     `json:"weather,omitempty"`
	ActualCost  float64    `json:"actual_cost,omitempty"`
	DaysDetail  []DayPlan  `json:"days_detail,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// DayPlan is one day of a generated itinerary.
type DayPlan struct {
	DayNumber  int        `json:"day_number"`
	Title      string     `json:"title"`
	Date       string     `json:"date,omitempty"`
	Summary    string     `json:"summary,omitempty"`
	Activities []Activity `json:"activities,omitempty"`
	TotalCost  float64    `json:"total_cost,omitempty"`
}

// Activity is a single scheduled item within a day plan.
type Activity struct {
	Title       string       `json:"title"`
	Type        string       `json:"type"`
	Description string       `json:"description"`
	Time        string       `json:"time"`
	Duration    string       `json:"duration"`
	AverageCost float64      `json:"average_cost"`
	Location    string       `json:"location,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Tips        []string     `json:"tips,omitempty"`
}

// Coordinates is a longitude/latitude pair.
type Coordinates struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// ItineraryCreateRequest carries the fields needed to create an itinerary.
type ItineraryCreateRequest struct {
	Title       string  `json:"title"`
	Destination string  `json:"destination"`
	Departure   string  `json:"departure,omitempty"`
	Days        int     `json:"days"`
	Budget      float64 `json:"budget,omitempty"`
	TravelStyle string  `json:"travel_style,omitempty"`
}

// ItineraryUpdate is a partial itinerary mutation. Nil fields are left as-is.
type ItineraryUpdate struct {
	Title       *string  `json:"title,omitempty"`
	Destination *string  `json:"destination,omitempty"`
	Departure   *string  `json:"departure,omitempty"`
	Days        *int     `json:"days,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	TravelStyle *string  `json:"travel_style,omitempty"`
}

// PlanPreferences steers itinerary generation.
type PlanPreferences struct {
	Days      int      `json:"days"`
	Interests []string `json:"interests,omitempty"`
	Pace      string   `json:"pace,omitempty"`
}
