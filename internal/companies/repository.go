package companies

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxPool is the pgx surface the repository needs; pgxpool.Pool and pgxmock
// pools both satisfy it.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository defines company persistence.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Company, error)
	GetByID(ctx context.Context, id string) (*Company, error)
	Create(ctx context.Context, params CreateParams) (*Company, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ListIdentities(ctx context.Context) ([]Identity, error)
}

// PostgresRepository stores companies in Postgres.
type PostgresRepository struct {
	pool PgxPool
}

// NewPostgresRepository creates a pgx-backed repository.
func NewPostgresRepository(pool PgxPool) *PostgresRepository {
	if pool == nil {
		panic("companies: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

const companyColumns = `id, name, website, description, location, industry, founded, team_size, logo_url, logo_fallback, status, is_top, hiring, created_at`

// List returns companies matching the filter, newest first.
func (r *PostgresRepository) List(ctx context.Context, filter Filter) ([]Company, error) {
	var clauses []string
	var args []any

	if filter.Industry != "" && filter.Industry != "All" {
		args = append(args, filter.Industry)
		clauses = append(clauses, fmt.Sprintf("industry = $%d", len(args)))
	}
	if filter.IsTop {
		clauses = append(clauses, "is_top = TRUE")
	}
	if filter.Hiring {
		clauses = append(clauses, "hiring = TRUE")
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	query := `SELECT ` + companyColumns + ` FROM companies`
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("companies: list failed: %w", err)
	}
	defer rows.Close()

	var out []Company
	for rows.Next() {
		var c Company
		if err := scanCompany(rows, &c); err != nil {
			return nil, fmt.Errorf("companies: scan failed: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("companies: list rows: %w", err)
	}
	return out, nil
}

// GetByID fetches one company.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Company, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	var c Company
	if err := scanCompany(row, &c); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("companies: select failed: %w", err)
	}
	return &c, nil
}

// Create inserts a company row and returns it.
func (r *PostgresRepository) Create(ctx context.Context, params CreateParams) (*Company, error) {
	id := uuid.NewString()
	query := `
		INSERT INTO companies (id, name, website, description, location, industry, founded, team_size, logo_url, logo_fallback, status, is_top, hiring)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at
	`
	c := Company{
		ID:           id,
		Name:         params.Name,
		Website:      params.Website,
		Description:  params.Description,
		Location:     params.Location,
		Industry:     params.Industry,
		Founded:      params.Founded,
		TeamSize:     params.TeamSize,
		LogoURL:      params.LogoURL,
		LogoFallback: params.LogoFallback,
		Status:       params.Status,
		IsTop:        params.IsTop,
		Hiring:       params.Hiring,
	}
	if err := r.pool.QueryRow(ctx, query,
		id,
		params.Name,
		params.Website,
		params.Description,
		params.Location,
		params.Industry,
		params.Founded,
		params.TeamSize,
		params.LogoURL,
		params.LogoFallback,
		params.Status,
		params.IsTop,
		params.Hiring,
	).Scan(&c.CreatedAt); err != nil {
		return nil, fmt.Errorf("companies: insert failed: %w", err)
	}
	return &c, nil
}

// ExistsByName reports whether a company with this name exists, matched
// case-insensitively. Used as the narrow pre-insert duplicate check.
func (r *PostgresRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM companies WHERE name ILIKE $1)`, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("companies: exists check failed: %w", err)
	}
	return exists, nil
}

// ListIdentities returns the slim name/website projection for duplicate scans.
func (r *PostgresRepository) ListIdentities(ctx context.Context) ([]Identity, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, COALESCE(website, '') FROM companies`)
	if err != nil {
		return nil, fmt.Errorf("companies: list identities failed: %w", err)
	}
	defer rows.Close()

	var out []Identity
	for rows.Next() {
		var ident Identity
		if err := rows.Scan(&ident.ID, &ident.Name, &ident.Website); err != nil {
			return nil, fmt.Errorf("companies: scan identity: %w", err)
		}
		out = append(out, ident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("companies: identity rows: %w", err)
	}
	return out, nil
}

func scanCompany(row pgx.Row, c *Company) error {
	return row.Scan(
		&c.ID,
		&c.Name,
		&c.Website,
		&c.Description,
		&c.Location,
		&c.Industry,
		&c.Founded,
		&c.TeamSize,
		&c.LogoURL,
		&c.LogoFallback,
		&c.Status,
		&c.IsTop,
		&c.Hiring,
		&c.CreatedAt,
	)
}
