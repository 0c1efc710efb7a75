package submissions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/launchlist/launchlist/internal/companies"
	"github.com/launchlist/launchlist/internal/founders"
)

type stubRepo struct {
	inserted   []InsertParams
	insertErr  error
	list       []Submission
	listErr    error
	lastStatus string
	identities []Identity
}

func (s *stubRepo) Insert(_ context.Context, params InsertParams) (*Submission, error) {
	if s.insertErr != nil {
		return nil, s.insertErr
	}
	s.inserted = append(s.inserted, params)
	return &Submission{
		ID:          "sub-1",
		CompanyName: params.CompanyName,
		Description: params.Description,
		Website:     params.Website,
		Location:    params.Location,
		Industry:    params.Industry,
		Founded:     params.Founded,
		TeamSize:    params.TeamSize,
		LogoURL:     params.LogoURL,
		Status:      "pending",
		SubmittedAt: time.Now(),
	}, nil
}

func (s *stubRepo) List(_ context.Context, status string) ([]Submission, error) {
	s.lastStatus = status
	return s.list, s.listErr
}

func (s *stubRepo) ListIdentities(context.Context) ([]Identity, error) {
	return s.identities, nil
}

type stubCompanies struct {
	created    []companies.CreateParams
	createErr  error
	exists     bool
	existsErr  error
	identities []companies.Identity
}

func (s *stubCompanies) List(context.Context, companies.Filter) ([]companies.Company, error) {
	return nil, errors.New("not implemented")
}

func (s *stubCompanies) GetByID(context.Context, string) (*companies.Company, error) {
	return nil, errors.New("not implemented")
}

func (s *stubCompanies) Create(_ context.Context, params companies.CreateParams) (*companies.Company, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, params)
	return &companies.Company{ID: "comp-1", Name: params.Name, Status: params.Status}, nil
}

func (s *stubCompanies) ExistsByName(context.Context, string) (bool, error) {
	return s.exists, s.existsErr
}

func (s *stubCompanies) ListIdentities(context.Context) ([]companies.Identity, error) {
	return s.identities, nil
}

type stubFounders struct {
	created []founders.CreateParams
	err     error
}

func (s *stubFounders) Create(_ context.Context, params founders.CreateParams) (*founders.Founder, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = append(s.created, params)
	return &founders.Founder{ID: "f-1", CompanyID: params.CompanyID, Name: params.Name}, nil
}

func (s *stubFounders) ListByCompany(context.Context, string) ([]founders.Founder, error) {
	return nil, nil
}

func newTestService(repo *stubRepo, comps *stubCompanies, people *stubFounders) *Service {
	guard := NewGuard(repo, comps, nil)
	var foundersRepo founders.Repository
	if people != nil {
		foundersRepo = people
	}
	return NewService(repo, comps, foundersRepo, guard, nil)
}

func validDraft() Draft {
	return Draft{
		CompanyName: "Acme",
		Description: "Rockets",
		Website:     "https://acme.io",
		Founded:     "2020",
		TeamSize:    "12",
		FounderName: "Jo",
		FounderRole: "CEO",
	}
}

func TestCreateHappyPath(t *testing.T) {
	repo := &stubRepo{}
	comps := &stubCompanies{}
	people := &stubFounders{}
	svc := newTestService(repo, comps, people)

	sub, err := svc.Create(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sub.Status != "pending" {
		t.Fatalf("status = %q, want pending", sub.Status)
	}

	if len(repo.inserted) != 1 {
		t.Fatalf("expected one submission insert, got %d", len(repo.inserted))
	}
	ins := repo.inserted[0]
	if ins.Founded == nil || *ins.Founded != 2020 {
		t.Fatalf("founded = %v, want 2020", ins.Founded)
	}
	if ins.TeamSize == nil || *ins.TeamSize != 12 {
		t.Fatalf("team size = %v, want 12", ins.TeamSize)
	}

	if len(comps.created) != 1 {
		t.Fatalf("expected one company insert, got %d", len(comps.created))
	}
	comp := comps.created[0]
	if comp.Status != "Active" || comp.IsTop || comp.Hiring {
		t.Fatalf("unexpected company defaults %+v", comp)
	}
	if comp.LogoFallback == nil || *comp.LogoFallback != "A" {
		t.Fatalf("logo fallback = %v, want A", comp.LogoFallback)
	}

	if len(people.created) != 1 || people.created[0].CompanyID != "comp-1" {
		t.Fatalf("expected founder attached to new company, got %+v", people.created)
	}
}

func TestCreateValidationFailsBeforeAnyWrite(t *testing.T) {
	repo := &stubRepo{}
	comps := &stubCompanies{}
	svc := newTestService(repo, comps, nil)

	_, err := svc.Create(context.Background(), Draft{Description: "no name"})
	if !errors.Is(err, ErrMissingCompanyName) {
		t.Fatalf("expected ErrMissingCompanyName, got %v", err)
	}
	if len(repo.inserted) != 0 || len(comps.created) != 0 {
		t.Fatal("expected no writes on validation failure")
	}
}

func TestCreateRejectsDuplicate(t *testing.T) {
	repo := &stubRepo{identities: []Identity{{CompanyName: "Acme"}}}
	comps := &stubCompanies{}
	svc := newTestService(repo, comps, nil)

	_, err := svc.Create(context.Background(), validDraft())
	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}
	if dup.Kind != KindSubmission {
		t.Fatalf("kind = %q, want submission", dup.Kind)
	}
	if len(repo.inserted) != 0 {
		t.Fatal("expected no insert after duplicate decision")
	}
}

func TestCreateSkipsCompanyWhenAlreadyListed(t *testing.T) {
	repo := &stubRepo{}
	comps := &stubCompanies{exists: true}
	svc := newTestService(repo, comps, nil)

	sub, err := svc.Create(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sub == nil {
		t.Fatal("expected submission back")
	}
	if len(comps.created) != 0 {
		t.Fatal("expected company insert to be skipped")
	}
}

func TestCreateExistenceCheckFailsOpen(t *testing.T) {
	repo := &stubRepo{}
	comps := &stubCompanies{existsErr: errors.New("db down")}
	svc := newTestService(repo, comps, nil)

	if _, err := svc.Create(context.Background(), validDraft()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(comps.created) != 1 {
		t.Fatal("expected company insert despite failed existence check")
	}
}

func TestCreateCompanyFailureIsFatal(t *testing.T) {
	repo := &stubRepo{}
	comps := &stubCompanies{createErr: errors.New("insert failed")}
	svc := newTestService(repo, comps, nil)

	if _, err := svc.Create(context.Background(), validDraft()); err == nil {
		t.Fatal("expected error from company insert failure")
	}
}

func TestCreateFounderFailureIsSwallowed(t *testing.T) {
	repo := &stubRepo{}
	comps := &stubCompanies{}
	people := &stubFounders{err: errors.New("insert failed")}
	svc := newTestService(repo, comps, people)

	sub, err := svc.Create(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sub == nil {
		t.Fatal("expected submission despite founder failure")
	}
}

func TestCreateInvalidNumericFieldsBecomeNull(t *testing.T) {
	repo := &stubRepo{}
	comps := &stubCompanies{}
	svc := newTestService(repo, comps, nil)

	draft := validDraft()
	draft.Founded = "twenty twenty"
	draft.TeamSize = ""

	if _, err := svc.Create(context.Background(), draft); err != nil {
		t.Fatalf("create: %v", err)
	}
	ins := repo.inserted[0]
	if ins.Founded != nil || ins.TeamSize != nil {
		t.Fatalf("expected nil numerics, got founded=%v team=%v", ins.Founded, ins.TeamSize)
	}
}

func TestListByStatusDelegates(t *testing.T) {
	repo := &stubRepo{list: []Submission{{ID: "sub-1"}}}
	svc := newTestService(repo, &stubCompanies{}, nil)

	out, err := svc.ListByStatus(context.Background(), "pending")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 1 || repo.lastStatus != "pending" {
		t.Fatalf("unexpected list result %v status %q", out, repo.lastStatus)
	}
}

func TestDraftValidate(t *testing.T) {
	cases := []struct {
		name  string
		draft Draft
		want  error
	}{
		{"valid", validDraft(), nil},
		{"missing name", Draft{Description: "x"}, ErrMissingCompanyName},
		{"missing description", Draft{CompanyName: "Acme"}, ErrMissingDescription},
		{"bad email", Draft{CompanyName: "Acme", Description: "x", FounderEmail: "not-an-email"}, ErrInvalidEmail},
		{"bad website", Draft{CompanyName: "Acme", Description: "x", Website: "acme.io"}, ErrInvalidWebsite},
		{"http website ok", Draft{CompanyName: "Acme", Description: "x", Website: "http://acme.io"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.draft.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}
