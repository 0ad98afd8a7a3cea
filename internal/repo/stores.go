package repo

import (
	"context"

	"github.com/astrolaunch/launchpad/internal/domain/mission"
	"github.com/astrolaunch/launchpad/internal/domain/rocket"
	"github.com/astrolaunch/launchpad/internal/domain/schedule"
	"github.com/astrolaunch/launchpad/internal/domain/team"
	"github.com/astrolaunch/launchpad/internal/domain/user"
)

// Store contracts shared by the postgres and memory backends. Behavior is
// identical apart from durability; callers must not care which one is wired.

type UsersStore interface {
	// Create returns user.ErrEmailTaken when the email is already registered.
	// The check is atomic in both backends.
	Create(ctx context.Context, u user.User) error
	GetByEmail(ctx context.Context, email string) (user.User, error)
	GetByID(ctx context.Context, id string) (user.User, error)
}

type RocketsStore interface {
	// List returns rockets newest-first.
	List(ctx context.Context) ([]rocket.Rocket, error)
	Create(ctx context.Context, req rocket.CreateRocketRequest) (rocket.Rocket, error)
	SeedIfEmpty(ctx context.Context, records []rocket.Rocket) error
}

type MissionsStore interface {
	// List returns missions newest-first.
	List(ctx context.Context) ([]mission.Mission, error)
	Create(ctx context.Context, req mission.CreateMissionRequest) (mission.Mission, error)
	SeedIfEmpty(ctx context.Context, records []mission.Mission) error
}

type TeamsStore interface {
	// List returns team members newest-first.
	List(ctx context.Context) ([]team.Member, error)
	Create(ctx context.Context, req team.CreateMemberRequest) (team.Member, error)
	SeedIfEmpty(ctx context.Context, records []team.Member) error
}

type SchedulesStore interface {
	// List returns schedules soonest-launch-first.
	List(ctx context.Context) ([]schedule.Schedule, error)
	Create(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.Schedule, error)
	SeedIfEmpty(ctx context.Context, records []schedule.Schedule) error
}

// Stores bundles one backend's repositories for wiring into the router.
type Stores struct {
	Users     UsersStore
	Rockets   RocketsStore
	Missions  MissionsStore
	Teams     TeamsStore
	Schedules SchedulesStore
}
