package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/astrolaunch/launchpad/internal/domain/team"
)

type TeamsRepo struct {
	mu    sync.RWMutex
	items map[string]team.Member
}

func NewTeamsRepo() *TeamsRepo {
	return &TeamsRepo{
		items: make(map[string]team.Member),
	}
}

func (r *TeamsRepo) Create(_ context.Context, req team.CreateMemberRequest) (team.Member, error) {
	m := team.NewFromCreateRequest(req)

	r.mu.Lock()
	r.items[m.ID] = m
	r.mu.Unlock()

	return m, nil
}

func (r *TeamsRepo) List(_ context.Context) ([]team.Member, error) {
	r.mu.RLock()

	out := make([]team.Member, 0, len(r.items))
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

func (r *TeamsRepo) SeedIfEmpty(_ context.Context, records []team.Member) error {
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
