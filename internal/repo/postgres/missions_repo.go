package postgres

import (
	"context"

	"github.com/astrolaunch/launchpad/internal/domain/mission"
	"github.com/astrolaunch/launchpad/internal/observability"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MissionsRepo struct {
	repoBase
}

func NewMissionsRepo(pool *pgxpool.Pool, prom *observability.Prom) *MissionsRepo {
	return &MissionsRepo{repoBase{pool: pool, prom: prom}}
}

func (r *MissionsRepo) Create(ctx context.Context, req mission.CreateMissionRequest) (mission.Mission, error) {
	m := mission.NewFromCreateRequest(req)

	err := r.observe("missions.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO missions(id, name, description, status, launch_date, payload, orbit, customer, created_at)
			 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
			m.ID, m.Name, m.Description, m.Status, m.LaunchDate, m.Payload, m.Orbit, m.Customer, m.CreatedAt,
		)
		return err
	})

	if err != nil {
		return mission.Mission{}, err
	}

	return m, nil
}

func (r *MissionsRepo) List(ctx context.Context) ([]mission.Mission, error) {
	out := []mission.Mission{}

	err := r.observe("missions.list", func() error {
		rows, err := r.pool.Query(ctx,
			`SELECT id, name, description, status, launch_date, payload, orbit, customer, created_at
			 FROM missions
			 ORDER BY created_at DESC`,
		)

		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var m mission.Mission

			err = rows.Scan(&m.ID, &m.Name, &m.Description, &m.Status, &m.LaunchDate, &m.Payload, &m.Orbit, &m.Customer, &m.CreatedAt)

			if err != nil {
				return err
			}

			out = append(out, m)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *MissionsRepo) SeedIfEmpty(ctx context.Context, records []mission.Mission) error {
	return r.observe("missions.seed", func() error {
		var count int

		err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM missions`).Scan(&count)

		if err != nil {
			return err
		}

		if count > 0 {
			return nil
		}

		for _, m := range records {
			_, err = r.pool.Exec(ctx,
				`INSERT INTO missions(id, name, description, status, launch_date, payload, orbit, customer, created_at)
				 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
				m.ID, m.Name, m.Description, m.Status, m.LaunchDate, m.Payload, m.Orbit, m.Customer, m.CreatedAt,
			)

			if err != nil {
				return err
			}
		}

		return nil
	})
}
