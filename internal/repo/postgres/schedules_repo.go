package postgres

import (
	"context"

	"github.com/astrolaunch/launchpad/internal/domain/schedule"
	"github.com/astrolaunch/launchpad/internal/observability"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SchedulesRepo struct {
	repoBase
}

func NewSchedulesRepo(pool *pgxpool.Pool, prom *observability.Prom) *SchedulesRepo {
	return &SchedulesRepo{repoBase{pool: pool, prom: prom}}
}

func (r *SchedulesRepo) Create(ctx context.Context, req schedule.CreateScheduleRequest) (schedule.Schedule, error) {
	s := schedule.NewFromCreateRequest(req)

	err := r.observe("schedules.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO schedules(id, mission_name, description, launch_date, launch_time, rocket, launch_site, customer, payload, status, created_at)
			 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
			s.ID, s.MissionName, s.Description, s.LaunchDate, s.LaunchTime, s.Rocket, s.LaunchSite, s.Customer, s.Payload, s.Status, s.CreatedAt,
		)
		return err
	})

	if err != nil {
		return schedule.Schedule{}, err
	}

	return s, nil
}

func (r *SchedulesRepo) List(ctx context.Context) ([]schedule.Schedule, error) {
	out := []schedule.Schedule{}

	err := r.observe("schedules.list", func() error {
		rows, err := r.pool.Query(ctx,
			`SELECT id, mission_name, description, launch_date, launch_time, rocket, launch_site, customer, payload, status, created_at
			 FROM schedules
			 ORDER BY launch_date ASC`,
		)

		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var s schedule.Schedule

			err = rows.Scan(&s.ID, &s.MissionName, &s.Description, &s.LaunchDate, &s.LaunchTime, &s.Rocket, &s.LaunchSite, &s.Customer, &s.Payload, &s.Status, &s.CreatedAt)

			if err != nil {
				return err
			}

			out = append(out, s)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *SchedulesRepo) SeedIfEmpty(ctx context.Context, records []schedule.Schedule) error {
	return r.observe("schedules.seed", func() error {
		var count int

		err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM schedules`).Scan(&count)

		if err != nil {
			return err
		}

		if count > 0 {
			return nil
		}

		for _, s := range records {
			_, err = r.pool.Exec(ctx,
				`INSERT INTO schedules(id, mission_name, description, launch_date, launch_time, rocket, launch_site, customer, payload, status, created_at)
				 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
				s.ID, s.MissionName, s.Description, s.LaunchDate, s.LaunchTime, s.Rocket, s.LaunchSite, s.Customer, s.Payload, s.Status, s.CreatedAt,
			)

			if err != nil {
				return err
			}
		}

		return nil
	})
}
