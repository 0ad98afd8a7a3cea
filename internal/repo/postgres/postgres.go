package postgres

import (
	"github.com/astrolaunch/launchpad/internal/observability"
	"github.com/jackc/pgx/v5/pgxpool"
)

// shared plumbing for every repo in this package

type repoBase struct {
	pool *pgxpool.Pool
	prom *observability.Prom
}

func (b repoBase) observe(op string, fn func() error) error {
	if b.prom == nil {
		return fn()
	}

	return b.prom.ObserveStore(op, fn)
}
