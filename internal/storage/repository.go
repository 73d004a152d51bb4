package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neexbeast/tripsaver/internal/destination"
)

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository provides database access for destination records.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

const selectColumns = `id, state, categories, best_months, avoid_months, climate, budget, booking_slug`

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDestination(s scanner) (destination.Destination, error) {
	var (
		d          destination.Destination
		categories []string
		climate    string
		budget     string
	)
	if err := s.Scan(
		&d.ID,
		&d.State,
		&categories,
		&d.BestMonths,
		&d.AvoidMonths,
		&climate,
		&budget,
		&d.BookingSlug,
	); err != nil {
		return destination.Destination{}, err
	}

	d.Categories = make([]destination.Category, len(categories))
	for i, c := range categories {
		d.Categories[i] = destination.Category(c)
	}
	d.Climate = destination.Climate(climate)
	d.Budget = destination.BudgetTier(budget)
	return d, nil
}

// GetDestination retrieves a destination by id.
// Returns nil, nil when the id is not found.
func (r *Repository) GetDestination(ctx context.Context, id string) (*destination.Destination, error) {
	const q = `SELECT ` + selectColumns + ` FROM destinations WHERE id = $1`

	d, err := scanDestination(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying destination %s: %w", id, err)
	}
	return &d, nil
}

// ListDestinations returns every stored destination ordered by id.
func (r *Repository) ListDestinations(ctx context.Context) ([]destination.Destination, error) {
	const q = `SELECT ` + selectColumns + ` FROM destinations ORDER BY id`

	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying destinations: %w", err)
	}
	defer rows.Close()

	var results []destination.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning destination row: %w", err)
		}
		results = append(results, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating destination rows: %w", err)
	}

	return results, nil
}

// Destinations implements destination.Source. Failures wrap
// destination.ErrCatalogUnavailable.
func (r *Repository) Destinations(ctx context.Context) ([]destination.Destination, error) {
	records, err := r.ListDestinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("postgres catalog: %w: %w", destination.ErrCatalogUnavailable, err)
	}
	return records, nil
}

// UpsertDestination inserts or updates a destination record keyed by id.
func (r *Repository) UpsertDestination(ctx context.Context, d destination.Destination) error {
	if d.ID == "" {
		return errors.New("upserting destination: empty id")
	}

	categories := make([]string, len(d.Categories))
	for i, c := range d.Categories {
		categories[i] = string(c)
	}
	best, avoid := d.BestMonths, d.AvoidMonths
	if best == nil {
		best = []int{}
	}
	if avoid == nil {
		avoid = []int{}
	}

	const q = `
		INSERT INTO destinations (id, state, categories, best_months, avoid_months, climate, budget, booking_slug, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (id) DO UPDATE
		SET state        = EXCLUDED.state,
		    categories   = EXCLUDED.categories,
		    best_months  = EXCLUDED.best_months,
		    avoid_months = EXCLUDED.avoid_months,
		    climate      = EXCLUDED.climate,
		    budget       = EXCLUDED.budget,
		    booking_slug = EXCLUDED.booking_slug,
		    updated_at   = EXCLUDED.updated_at
	`

	if _, err := r.q.Exec(ctx, q, d.ID, d.State, categories, best, avoid,
		string(d.Climate), string(d.Budget), d.BookingSlug); err != nil {
		return fmt.Errorf("upserting destination %s: %w", d.ID, err)
	}

	return nil
}

// Seed upserts every record and returns how many were written.
// It stops at the first failure.
func (r *Repository) Seed(ctx context.Context, records []destination.Destination) (int, error) {
	for i, d := range records {
		if err := r.UpsertDestination(ctx, d); err != nil {
			return i, fmt.Errorf("seeding: %w", err)
		}
	}
	return len(records), nil
}
