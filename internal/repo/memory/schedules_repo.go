package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/astrolaunch/launchpad/internal/domain/schedule"
)

type SchedulesRepo struct {
	mu    sync.RWMutex
	items map[string]schedule.Schedule
}

func NewSchedulesRepo() *SchedulesRepo {
	return &SchedulesRepo{
		items: make(map[string]schedule.Schedule),
	}
}

func (r *SchedulesRepo) Create(_ context.Context, req schedule.CreateScheduleRequest) (schedule.Schedule, error) {
	s := schedule.NewFromCreateRequest(req)

	r.mu.Lock()
	r.items[s.ID] = s
	r.mu.Unlock()

	return s, nil
}

func (r *SchedulesRepo) List(_ context.Context) ([]schedule.Schedule, error) {
	r.mu.RLock()

	out := make([]schedule.Schedule, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s)
	}

	r.mu.RUnlock()

	// soonest launch first
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LaunchDate.Before(out[j].LaunchDate)
	})

	return out, nil
}

func (r *SchedulesRepo) SeedIfEmpty(_ context.Context, records []schedule.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) > 0 {
		return nil
	}

	for _, s := range records {
		r.items[s.ID] = s
	}

	return nil
}
