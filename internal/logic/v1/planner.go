package v1

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/domain"
)

// Planner is the itinerary store: an ordered collection of itineraries, a
// current-selection pointer, and locally generated day plans. The backend
// endpoints for itineraries are not wired yet; mutations apply to the local
// collection and generation synthesizes deterministic placeholder content.
type Planner struct {
	logger zerolog.Logger

	mu          sync.Mutex
	itineraries []domain.Itinerary
	current     *domain.Itinerary
	generated   map[int64][]domain.DayPlan
	loading     bool
	nextID      int64
}

// NewPlanner creates an empty itinerary store.
func NewPlanner(logger zerolog.Logger) *Planner {
	return &Planner{
		logger:    logger,
		generated: make(map[int64][]domain.DayPlan),
		nextID:    1,
	}
}

// FetchItineraries adopts the backend's itinerary list. With the endpoint
// unwired the mock result is empty, so the local collection resets.
func (p *Planner) FetchItineraries(ctx context.Context) ([]domain.Itinerary, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = true
	defer func() { p.loading = false }()

	p.itineraries = nil
	return nil, nil
}

// Create adds a new itinerary at the front of the collection and selects it.
func (p *Planner) Create(ctx context.Context, req domain.ItineraryCreateRequest) (*domain.Itinerary, error) {
	now := time.Now()

	p.mu.Lock()
	defer p.mu.Unlock()

	it := domain.Itinerary{
		ID:          p.nextID,
		Title:       req.Title,
		Destination: req.Destination,
		Departure:   req.Departure,
		Days:        req.Days,
		Budget:      req.Budget,
		TravelStyle: req.TravelStyle,
		Status:      "draft",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	p.nextID++

	p.itineraries = append([]domain.Itinerary{it}, p.itineraries...)
	p.current = &p.itineraries[0]

	p.logger.Debug().Int64("itinerary_id", it.ID).Str("destination", it.Destination).Msg("Itinerary created")
	out := it
	return &out, nil
}

// Update applies a partial mutation to the itinerary with the given id and
// keeps the current selection in sync.
func (p *Planner) Update(ctx context.Context, id int64, upd domain.ItineraryUpdate) (*domain.Itinerary, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := -1
	for i := range p.itineraries {
		if p.itineraries[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("update itinerary %d: %w", id, ErrItineraryNotFound)
	}

	it := &p.itineraries[idx]
	if upd.Title != nil {
		it.Title = *upd.Title
	}
	if upd.Destination != nil {
		it.Destination = *upd.Destination
	}
	if upd.Departure != nil {
		it.Departure = *upd.Departure
	}
	if upd.Days != nil {
		it.Days = *upd.Days
	}
	if upd.Budget != nil {
		it.Budget = *upd.Budget
	}
	if upd.TravelStyle != nil {
		it.TravelStyle = *upd.TravelStyle
	}
	it.UpdatedAt = time.Now()

	if p.current != nil && p.current.ID == id {
		p.current = it
	}

	out := *it
	return &out, nil
}

// Delete removes the itinerary with the given id. Deleting an id that is
// not in the collection is not an error. The current selection is cleared
// when it points at the deleted itinerary.
func (p *Planner) Delete(ctx context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	kept := p.itineraries[:0]
	for _, it := range p.itineraries {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	p.itineraries = kept

	if p.current != nil && p.current.ID == id {
		p.current = nil
	}
	delete(p.generated, id)
	return nil
}

// GeneratePlan synthesizes a deterministic placeholder day-by-day plan for
// the itinerary and remembers it. Real AI generation is not wired; the
// output depends only on the requested day count.
func (p *Planner) GeneratePlan(ctx context.Context, id int64, prefs domain.PlanPreferences) ([]domain.DayPlan, error) {
	days := prefs.Days
	if days <= 0 {
		days = 3
	}

	plans := make([]domain.DayPlan, 0, days)
	for day := 1; day <= days; day++ {
		plans = append(plans, domain.DayPlan{
			DayNumber: day,
			Title:     fmt.Sprintf("Day %d", day),
			Activities: []domain.Activity{
				{
					Time:        "09:00",
					Title:       "Breakfast",
					Type:        domain.ActivityMeal,
					Description: "Local specialty breakfast",
					Location:    "Near the hotel",
					Duration:    "1 hour",
				},
				{
					Time:        "10:00",
					Title:       "Sightseeing",
					Type:        domain.ActivityAttraction,
					Description: "Visit the famous landmarks",
					Location:    "City center",
					Duration:    "3 hours",
				},
			},
		})
	}

	p.mu.Lock()
	p.loading = true
	p.generated[id] = plans
	p.loading = false
	p.mu.Unlock()

	p.logger.Debug().Int64("itinerary_id", id).Int("days", days).Msg("Placeholder plan generated")

	out := make([]domain.DayPlan, len(plans))
	copy(out, plans)
	return out, nil
}

// GeneratedPlans returns the generated plan for the itinerary, or an empty
// slice when none exists.
func (p *Planner) GeneratedPlans(id int64) []domain.DayPlan {
	p.mu.Lock()
	defer p.mu.Unlock()
	plans := p.generated[id]
	out := make([]domain.DayPlan, len(plans))
	copy(out, plans)
	return out
}

// Itineraries returns a snapshot of the collection in order.
func (p *Planner) Itineraries() []domain.Itinerary {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.Itinerary, len(p.itineraries))
	copy(out, p.itineraries)
	return out
}

// Current returns a copy of the selected itinerary, or nil.
func (p *Planner) Current() *domain.Itinerary {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil
	}
	out := *p.current
	return &out
}

// IsLoading reports whether an operation is in flight.
func (p *Planner) IsLoading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}
