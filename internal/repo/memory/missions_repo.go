package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/astrolaunch/launchpad/internal/domain/mission"
)

type MissionsRepo struct {
	mu    sync.RWMutex
	items map[string]mission.Mission
}

func NewMissionsRepo() *MissionsRepo {
	return &MissionsRepo{
		items: make(map[string]mission.Mission),
	}
}

func (r *MissionsRepo) Create(_ context.Context, req mission.CreateMissionRequest) (mission.Mission, error) {
	m := mission.NewFromCreateRequest(req)

	r.mu.Lock()
	r.items[m.ID] = m
	r.mu.Unlock()

	return m, nil
}

func (r *MissionsRepo) List(_ context.Context) ([]mission.Mission, error) {
	r.mu.RLock()

	out := make([]mission.Mission, 0, len(r.items))
	for _, m := range r.items {
		out = append(out, m)
	}

	r.mu.RUnlock()

	// newest first
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *MissionsRepo) SeedIfEmpty(_ context.Context, records []mission.Mission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) > 0 {
		return nil
	}

	for _, m := range records {
		r.items[m.ID] = m
	}

	return nil
}
