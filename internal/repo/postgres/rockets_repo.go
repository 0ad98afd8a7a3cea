package postgres

import (
	"context"

	"github.com/astrolaunch/launchpad/internal/domain/rocket"
	"github.com/astrolaunch/launchpad/internal/observability"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RocketsRepo struct {
	repoBase
}

func NewRocketsRepo(pool *pgxpool.Pool, prom *observability.Prom) *RocketsRepo {
	return &RocketsRepo{repoBase{pool: pool, prom: prom}}
}

func (r *RocketsRepo) Create(ctx context.Context, req rocket.CreateRocketRequest) (rocket.Rocket, error) {
	rk := rocket.NewFromCreateRequest(req)

	err := r.observe("rockets.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO rockets(id, name, type, specifications, status, created_at)
			 VALUES($1,$2,$3,$4,$5,$6)`,
			rk.ID, rk.Name, rk.Type, rk.Specifications, rk.Status, rk.CreatedAt,
		)
		return err
	})

	if err != nil {
		return rocket.Rocket{}, err
	}

	return rk, nil
}

func (r *RocketsRepo) List(ctx context.Context) ([]rocket.Rocket, error) {
	out := []rocket.Rocket{}

	err := r.observe("rockets.list", func() error {
		rows, err := r.pool.Query(ctx,
			`SELECT id, name, type, specifications, status, created_at
			 FROM rockets
			 ORDER BY created_at DESC`,
		)

		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var rk rocket.Rocket

			err = rows.Scan(&rk.ID, &rk.Name, &rk.Type, &rk.Specifications, &rk.Status, &rk.CreatedAt)

			if err != nil {
				return err
			}

			out = append(out, rk)
		}

		return rows.Err()
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *RocketsRepo) SeedIfEmpty(ctx context.Context, records []rocket.Rocket) error {
	return r.observe("rockets.seed", func() error {
		var count int

		err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM rockets`).Scan(&count)

		if err != nil {
			return err
		}

		if count > 0 {
			return nil
		}

		for _, rk := range records {
			_, err = r.pool.Exec(ctx,
				`INSERT INTO rockets(id, name, type, specifications, status, created_at)
				 VALUES($1,$2,$3,$4,$5,$6)`,
				rk.ID, rk.Name, rk.Type, rk.Specifications, rk.Status, rk.CreatedAt,
			)

			if err != nil {
				return err
			}
		}

		return nil
	})
}
