package submissions

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
)

func TestInsertSetsPendingStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	website := "https://acme.io"
	submitted := time.Now()

	mock.ExpectQuery("INSERT INTO submissions").
		WithArgs(pgxmock.AnyArg(), "Acme", "Rockets", &website, (*string)(nil), (*string)(nil),
			(*int)(nil), (*int)(nil), (*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"submitted_at"}).AddRow(submitted))

	sub, err := repo.Insert(context.Background(), InsertParams{
		CompanyName: "Acme",
		Description: "Rockets",
		Website:     &website,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if sub.Status != "pending" {
		t.Fatalf("status = %q, want pending", sub.Status)
	}
	if sub.ID == "" {
		t.Fatal("expected generated id")
	}
	if !sub.SubmittedAt.Equal(submitted) {
		t.Fatalf("submitted_at = %v, want insert timestamp", sub.SubmittedAt)
	}
}

func submissionRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "company_name", "description", "website", "location", "industry",
		"founded", "team_size", "founder_name", "founder_email", "founder_role",
		"logo_url", "status", "submitted_at",
	}).AddRow(
		"sub-1", "Acme", "Rockets", (*string)(nil), (*string)(nil), (*string)(nil),
		(*int)(nil), (*int)(nil), (*string)(nil), (*string)(nil), (*string)(nil),
		(*string)(nil), "pending", time.Now(),
	)
}

func TestListWithoutStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	mock.ExpectQuery("FROM submissions ORDER BY submitted_at DESC").
		WillReturnRows(submissionRows())

	out, err := repo.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 || out[0].CompanyName != "Acme" {
		t.Fatalf("unexpected result %+v", out)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	mock.ExpectQuery(`WHERE status = \$1`).
		WithArgs("pending").
		WillReturnRows(submissionRows())

	if _, err := repo.List(context.Background(), " pending "); err != nil {
		t.Fatalf("list: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestListIdentities(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	mock.ExpectQuery(`SELECT id, company_name, COALESCE\(website, ''\) FROM submissions`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "company_name", "website"}).
			AddRow("sub-1", "Acme", "https://acme.io"))

	out, err := repo.ListIdentities(context.Background())
	if err != nil {
		t.Fatalf("list identities: %v", err)
	}
	if len(out) != 1 || out[0].CompanyName != "Acme" || out[0].Website != "https://acme.io" {
		t.Fatalf("unexpected identities %+v", out)
	}
}
