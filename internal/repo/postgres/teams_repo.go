package postgres

import (
	"context"

	"github.com/astrolaunch/launchpad/internal/domain/team"
	"github.com/astrolaunch/launchpad/internal/observability"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TeamsRepo struct {
	repoBase
}

func NewTeamsRepo(pool *pgxpool.Pool, prom *observability.Prom) *TeamsRepo {
	return &TeamsRepo{repoBase{pool: pool, prom: prom}}
}

func (r *TeamsRepo) Create(ctx context.Context, req team.CreateMemberRequest) (team.Member, error) {
	m := team.NewFromCreateRequest(req)

	err := r.observe("teams.create", func() error {
		_, err := r.pool.Exec(ctx,
			`INSERT INTO team_members(id, name, position, department, bio, experience, created_at)
			 VALUES($1,$2,$3,$4,$5,$6,$7)`,
			m.ID, m.Name, m.Position, m.Department, m.Bio, m.Experience, m.CreatedAt,
		)
		return err
	})

	if err != nil {
		return team.Member{}, err
	}

	return m, nil
}

func (r *TeamsRepo) List(ctx context.Context) ([]team.Member, error) {
	out := []team.Member{}

	err := r.observe("teams.list", func() error {
		rows, err := r.pool.Query(ctx,
			`SELECT id, name, position, department, bio, experience, created_at
			 FROM team_members
			 ORDER BY created_at DESC`,
		)

		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var m team.Member

			err = rows.Scan(&m.ID, &m.Name, &m.Position, &m.Department, &m.Bio, &m.Experience, &m.CreatedAt)

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

func (r *TeamsRepo) SeedIfEmpty(ctx context.Context, records []team.Member) error {
	return r.observe("teams.seed", func() error {
		var count int

		err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM team_members`).Scan(&count)

		if err != nil {
			return err
		}

		if count > 0 {
			return nil
		}

		for _, m := range records {
			_, err = r.pool.Exec(ctx,
				`INSERT INTO team_members(id, name, position, department, bio, experience, created_at)
				 VALUES($1,$2,$3,$4,$5,$6,$7)`,
				m.ID, m.Name, m.Position, m.Department, m.Bio, m.Experience, m.CreatedAt,
			)

			if err != nil {
				return err
			}
		}

		return nil
	})
}
