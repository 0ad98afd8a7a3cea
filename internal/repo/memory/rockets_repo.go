package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/astrolaunch/launchpad/internal/domain/rocket"
)

type RocketsRepo struct {
	mu    sync.RWMutex
	items map[string]rocket.Rocket
}

func NewRocketsRepo() *RocketsRepo {
	return &RocketsRepo{
		items: make(map[string]rocket.Rocket),
	}
}

func (r *RocketsRepo) Create(_ context.Context, req rocket.CreateRocketRequest) (rocket.Rocket, error) {
	rk := rocket.NewFromCreateRequest(req)

	r.mu.Lock()
	r.items[rk.ID] = rk
	r.mu.Unlock()

	return rk, nil
}

func (r *RocketsRepo) List(_ context.Context) ([]rocket.Rocket, error) {
	r.mu.RLock()

	out := make([]rocket.Rocket, 0, len(r.items))
	for _, rk := range r.items {
		out = append(out, rk)
	}

	r.mu.RUnlock()

	// newest first
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *RocketsRepo) SeedIfEmpty(_ context.Context, records []rocket.Rocket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) > 0 {
		return nil
	}

	for _, rk := range records {
		r.items[rk.ID] = rk
	}

	return nil
}
