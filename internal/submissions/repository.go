package submissions

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the pgx surface the repository needs.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InsertParams carries the fields for a new submission row.
type InsertParams struct {
	CompanyName  string
	Description  string
	Website      *string
	Location     *string
	Industry     *string
	Founded      *int
	TeamSize     *int
	FounderName  *string
	FounderEmail *string
	FounderRole  *string
	LogoURL      *string
}

// Repository defines submission persistence.
type Repository interface {
	Insert(ctx context.Context, params InsertParams) (*Submission, error)
	List(ctx context.Context, status string) ([]Submission, error)
	ListIdentities(ctx context.Context) ([]Identity, error)
}

// PostgresRepository stores submissions in Postgres.
type PostgresRepository struct {
	pool PgxPool
}

// NewPostgresRepository creates a pgx-backed repository.
func NewPostgresRepository(pool PgxPool) *PostgresRepository {
	if pool == nil {
		panic("submissions: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

const submissionColumns = `id, company_name, description, website, location, industry, founded, team_size, founder_name, founder_email, founder_role, logo_url, status, submitted_at`

// Insert creates a pending submission row.
func (r *PostgresRepository) Insert(ctx context.Context, params InsertParams) (*Submission, error) {
	id := uuid.NewString()
	sub := Submission{
		ID:           id,
		CompanyName:  params.CompanyName,
		Description:  params.Description,
		Website:      params.Website,
		Location:     params.Location,
		Industry:     params.Industry,
		Founded:      params.Founded,
		TeamSize:     params.TeamSize,
		FounderName:  params.FounderName,
		FounderEmail: params.FounderEmail,
		FounderRole:  params.FounderRole,
		LogoURL:      params.LogoURL,
		Status:       "pending",
	}
	query := `
		INSERT INTO submissions (id, company_name, description, website, location, industry, founded, team_size, founder_name, founder_email, founder_role, logo_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'pending')
		RETURNING submitted_at
	`
	if err := r.pool.QueryRow(ctx, query,
		id,
		params.CompanyName,
		params.Description,
		params.Website,
		params.Location,
		params.Industry,
		params.Founded,
		params.TeamSize,
		params.FounderName,
		params.FounderEmail,
		params.FounderRole,
		params.LogoURL,
	).Scan(&sub.SubmittedAt); err != nil {
		return nil, fmt.Errorf("submissions: insert failed: %w", err)
	}
	return &sub, nil
}

// List returns submissions, optionally filtered by status, newest first.
func (r *PostgresRepository) List(ctx context.Context, status string) ([]Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions`
	var args []any
	if s := strings.TrimSpace(status); s != "" {
		query += ` WHERE status = $1`
		args = append(args, s)
	}
	query += ` ORDER BY submitted_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("submissions: list failed: %w", err)
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		var s Submission
		if err := rows.Scan(
			&s.ID,
			&s.CompanyName,
			&s.Description,
			&s.Website,
			&s.Location,
			&s.Industry,
			&s.Founded,
			&s.TeamSize,
			&s.FounderName,
			&s.FounderEmail,
			&s.FounderRole,
			&s.LogoURL,
			&s.Status,
			&s.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("submissions: scan failed: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("submissions: rows: %w", err)
	}
	return out, nil
}

// ListIdentities returns the slim name/website projection for duplicate scans.
func (r *PostgresRepository) ListIdentities(ctx context.Context) ([]Identity, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, company_name, COALESCE(website, '') FROM submissions`)
	if err != nil {
		return nil, fmt.Errorf("submissions: list identities failed: %w", err)
	}
	defer rows.Close()

	var out []Identity
	for rows.Next() {
		var ident Identity
		if err := rows.Scan(&ident.ID, &ident.CompanyName, &ident.Website); err != nil {
			return nil, fmt.Errorf("submissions: scan identity: %w", err)
		}
		out = append(out, ident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("submissions: identity rows: %w", err)
	}
	return out, nil
}
