package seed

import (
	"context"
	"time"

	"github.com/astrolaunch/launchpad/internal/domain/mission"
	"github.com/astrolaunch/launchpad/internal/domain/rocket"
	"github.com/astrolaunch/launchpad/internal/domain/schedule"
	"github.com/astrolaunch/launchpad/internal/domain/team"
	"github.com/astrolaunch/launchpad/internal/repo"
	"github.com/google/uuid"
)

// Default content so a fresh deployment never renders an empty site.

func Rockets() []rocket.Rocket {
	now := time.Now().UTC()

	return []rocket.Rocket{
		{
			ID:   uuid.NewString(),
			Name: "Falcon Heavy",
			Type: "Heavy-lift launch vehicle",
			Specifications: rocket.Specifications{
				Height:       "70 m",
				Diameter:     "12.2 m",
				Mass:         "1,420,788 kg",
				PayloadToLEO: "63,800 kg",
			},
			Status:    "active",
			CreatedAt: now,
		},
		{
			ID:   uuid.NewString(),
			Name: "Starship",
			Type: "Super heavy-lift launch vehicle",
			Specifications: rocket.Specifications{
				Height:       "120 m",
				Diameter:     "9 m",
				Mass:         "5,000,000 kg",
				PayloadToLEO: "150,000 kg",
			},
			Status:    "development",
			CreatedAt: now,
		},
		{
			ID:   uuid.NewString(),
			Name: "Dragon Capsule",
			Type: "Crew and cargo spacecraft",
			Specifications: rocket.Specifications{
				Height:       "8.1 m",
				Diameter:     "4 m",
				Mass:         "12,200 kg",
				PayloadToLEO: "6,000 kg",
			},
			Status:    "active",
			CreatedAt: now,
		},
	}
}

func Missions() []mission.Mission {
	now := time.Now().UTC()

	return []mission.Mission{
		{
			ID:          uuid.NewString(),
			Name:        "Artemis Moon Mission",
			Description: "Return humans to the Moon and establish a sustainable lunar presence",
			Status:      "planned",
			LaunchDate:  time.Date(2024, 12, 15, 0, 0, 0, 0, time.UTC),
			Payload:     "Orion Spacecraft",
			Orbit:       "Lunar orbit",
			Customer:    "NASA",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Mars Sample Return",
			Description: "Retrieve samples from Mars surface and return them to Earth",
			Status:      "success",
			LaunchDate:  time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			Payload:     "Sample Return Vehicle",
			Orbit:       "Mars transfer orbit",
			Customer:    "ESA",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Starlink Constellation",
			Description: "Deploy next-generation internet satellites",
			Status:      "success",
			LaunchDate:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			Payload:     "60 Starlink satellites",
			Orbit:       "Low Earth orbit",
			Customer:    "SpaceX",
			CreatedAt:   now,
		},
	}
}

func Teams() []team.Member {
	now := time.Now().UTC()

	return []team.Member{
		{
			ID:         uuid.NewString(),
			Name:       "Dr. Sarah Chen",
			Position:   "Chief Technology Officer",
			Department: "Engineering",
			Bio:        "Leading rocket propulsion expert with 15 years of experience in aerospace engineering.",
			Experience: "15 years",
			CreatedAt:  now,
		},
		{
			ID:         uuid.NewString(),
			Name:       "Marcus Rodriguez",
			Position:   "Mission Director",
			Department: "Operations",
			Bio:        "Veteran mission commander with expertise in complex space operations.",
			Experience: "12 years",
			CreatedAt:  now,
		},
		{
			ID:         uuid.NewString(),
			Name:       "Dr. Emily Watson",
			Position:   "Lead Systems Engineer",
			Department: "Engineering",
			Bio:        "Spacecraft systems specialist focusing on reliability and safety.",
			Experience: "10 years",
			CreatedAt:  now,
		},
		{
			ID:         uuid.NewString(),
			Name:       "James Thompson",
			Position:   "Flight Operations Manager",
			Department: "Operations",
			Bio:        "Expert in launch operations and mission control systems.",
			Experience: "8 years",
			CreatedAt:  now,
		},
	}
}

func Schedules() []schedule.Schedule {
	now := time.Now().UTC()

	return []schedule.Schedule{
		{
			ID:          uuid.NewString(),
			MissionName: "Jupiter Probe Launch",
			Description: "Scientific mission to study Jupiter and its moons",
			LaunchDate:  time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			LaunchTime:  "14:30 UTC",
			Rocket:      "Falcon Heavy",
			LaunchSite:  "Kennedy Space Center",
			Customer:    "NASA",
			Payload:     "Jupiter Probe",
			Status:      "scheduled",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			MissionName: "Commercial Satellite Deploy",
			Description: "Deploy commercial communication satellites",
			LaunchDate:  time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
			LaunchTime:  "09:15 UTC",
			Rocket:      "Starship",
			LaunchSite:  "Starbase",
			Customer:    "Telecom Corp",
			Payload:     "ComSat-5",
			Status:      "scheduled",
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			MissionName: "ISS Resupply Mission",
			Description: "Cargo resupply mission to International Space Station",
			LaunchDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			LaunchTime:  "11:45 UTC",
			Rocket:      "Dragon Capsule",
			LaunchSite:  "Kennedy Space Center",
			Customer:    "NASA",
			Payload:     "Cargo Dragon",
			Status:      "scheduled",
			CreatedAt:   now,
		},
	}
}

// Content seeds every collection that is still empty. Each SeedIfEmpty is
// idempotent on its own, so calling this any number of times changes nothing
// after the first run.
func Content(ctx context.Context, stores repo.Stores) error {
	if err := stores.Rockets.SeedIfEmpty(ctx, Rockets()); err != nil {
		return err
	}

	if err := stores.Missions.SeedIfEmpty(ctx, Missions()); err != nil {
		return err
	}

	if err := stores.Teams.SeedIfEmpty(ctx, Teams()); err != nil {
		return err
	}

	return stores.Schedules.SeedIfEmpty(ctx, Schedules())
}
