// database/source.go
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/ViniZap4/groupboard/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const groupsQuery = `
	SELECT name, description, url, tags
	FROM community_groups
	ORDER BY position, id`

// Source reads groups from Postgres. Like the JSON file source it queries
// on every call.
type Source struct {
	pool *pgxpool.Pool
}

// Open connects to the database at url.
func Open(ctx context.Context, url string) (*Source, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &Source{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Source) Close() {
	s.pool.Close()
}

// Ping checks that the database is reachable.
func (s *Source) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	return nil
}

func (s *Source) Groups(ctx context.Context) ([]domain.Group, error) {
	rows, err := s.pool.Query(ctx, groupsQuery)
	if err != nil {
		return nil, classify(err)
	}

	groups, err := pgx.CollectRows(rows, scanGroup)
	if err != nil {
		return nil, classify(err)
	}
	return groups, nil
}

func scanGroup(row pgx.CollectableRow) (domain.Group, error) {
	var g domain.Group
	err := row.Scan(&g.Name, &g.Description, &g.URL, &g.Tags)
	if err == nil && g.Tags == nil {
		g.Tags = []string{}
	}
	return g, err
}

// classify maps a query error onto the domain error taxonomy: errors about
// the shape of the data become ErrSchema, everything else ErrIO.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgerrcode.UndefinedTable,
			pgErr.Code == pgerrcode.UndefinedColumn,
			pgErr.Code == pgerrcode.DatatypeMismatch,
			pgerrcode.IsDataException(pgErr.Code):
			return fmt.Errorf("%w: %w", domain.ErrSchema, err)
		}
		return fmt.Errorf("%w: %w", domain.ErrIO, err)
	}

	var scanErr pgx.ScanArgError
	if errors.As(err, &scanErr) {
		return fmt.Errorf("%w: %w", domain.ErrSchema, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrIO, err)
}
