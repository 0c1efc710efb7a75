// Package founders persists the people records attached to companies.
package founders

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Founder is a person linked to a company.
type Founder struct {
	ID          string  `json:"id"`
	CompanyID   string  `json:"company_id"`
	Name        string  `json:"name"`
	Role        *string `json:"role"`
	Bio         *string `json:"bio"`
	ImageURL    *string `json:"image_url"`
	LinkedinURL *string `json:"linkedin_url"`
}

// CreateParams carries the fields for a new founder row.
type CreateParams struct {
	CompanyID   string
	Name        string
	Role        *string
	Bio         *string
	ImageURL    *string
	LinkedinURL *string
}

// PgxPool is the pgx surface the repository needs.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository defines founder persistence.
type Repository interface {
	Create(ctx context.Context, params CreateParams) (*Founder, error)
	ListByCompany(ctx context.Context, companyID string) ([]Founder, error)
}

// PostgresRepository stores founders in Postgres.
type PostgresRepository struct {
	pool PgxPool
}

// NewPostgresRepository creates a pgx-backed repository.
func NewPostgresRepository(pool PgxPool) *PostgresRepository {
	if pool == nil {
		panic("founders: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

// Create inserts a founder row.
func (r *PostgresRepository) Create(ctx context.Context, params CreateParams) (*Founder, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO founders (id, company_id, name, role, bio, image_url, linkedin_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, params.CompanyID, params.Name, params.Role, params.Bio, params.ImageURL, params.LinkedinURL)
	if err != nil {
		return nil, fmt.Errorf("founders: insert failed: %w", err)
	}
	return &Founder{
		ID:          id,
		CompanyID:   params.CompanyID,
		Name:        params.Name,
		Role:        params.Role,
		Bio:         params.Bio,
		ImageURL:    params.ImageURL,
		LinkedinURL: params.LinkedinURL,
	}, nil
}

// ListByCompany returns the founders attached to a company.
func (r *PostgresRepository) ListByCompany(ctx context.Context, companyID string) ([]Founder, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, company_id, name, role, bio, image_url, linkedin_url
		FROM founders
		WHERE company_id = $1
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("founders: list failed: %w", err)
	}
	defer rows.Close()

	var out []Founder
	for rows.Next() {
		var f Founder
		if err := rows.Scan(&f.ID, &f.CompanyID, &f.Name, &f.Role, &f.Bio, &f.ImageURL, &f.LinkedinURL); err != nil {
			return nil, fmt.Errorf("founders: scan failed: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("founders: rows: %w", err)
	}
	return out, nil
}
