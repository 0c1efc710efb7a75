package submissions

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/launchlist/launchlist/internal/companies"
)

type stubSubmissionIndex struct {
	identities []Identity
	err        error
}

func (s *stubSubmissionIndex) ListIdentities(context.Context) ([]Identity, error) {
	return s.identities, s.err
}

type stubCompanyIndex struct {
	identities []companies.Identity
	err        error
}

func (s *stubCompanyIndex) ListIdentities(context.Context) ([]companies.Identity, error) {
	return s.identities, s.err
}

func TestGuardNoMatch(t *testing.T) {
	g := NewGuard(
		&stubSubmissionIndex{identities: []Identity{{CompanyName: "Other Co"}}},
		&stubCompanyIndex{identities: []companies.Identity{{Name: "Another Co"}}},
		nil,
	)

	d := g.Check(context.Background(), "Acme", "https://acme.io")
	if d.Exists {
		t.Fatalf("expected no duplicate, got %+v", d)
	}
}

func TestGuardNameMatchIsCaseInsensitive(t *testing.T) {
	g := NewGuard(
		&stubSubmissionIndex{identities: []Identity{{CompanyName: "  ACME  "}}},
		&stubCompanyIndex{},
		nil,
	)

	d := g.Check(context.Background(), "acme", "")
	if !d.Exists || d.Kind != KindSubmission {
		t.Fatalf("expected submission match, got %+v", d)
	}
	if !strings.Contains(d.Message, "already exists") {
		t.Fatalf("unexpected message %q", d.Message)
	}
}

func TestGuardSubmissionMatchWinsOverCompany(t *testing.T) {
	g := NewGuard(
		&stubSubmissionIndex{identities: []Identity{{CompanyName: "Acme"}}},
		&stubCompanyIndex{identities: []companies.Identity{{Name: "Acme"}}},
		nil,
	)

	d := g.Check(context.Background(), "Acme", "")
	if d.Kind != KindSubmission {
		t.Fatalf("expected submission to win, got %+v", d)
	}
}

func TestGuardCompanyNameMatch(t *testing.T) {
	g := NewGuard(
		&stubSubmissionIndex{},
		&stubCompanyIndex{identities: []companies.Identity{{Name: "Acme"}}},
		nil,
	)

	d := g.Check(context.Background(), "Acme", "")
	if !d.Exists || d.Kind != KindCompany {
		t.Fatalf("expected company match, got %+v", d)
	}
	if !strings.Contains(d.Message, "already listed in the directory") {
		t.Fatalf("unexpected message %q", d.Message)
	}
}

func TestGuardWebsiteMatchIgnoresTrailingSlash(t *testing.T) {
	g := NewGuard(
		&stubSubmissionIndex{},
		&stubCompanyIndex{identities: []companies.Identity{{Name: "Other", Website: "https://acme.io/"}}},
		nil,
	)

	d := g.Check(context.Background(), "Acme", "https://acme.io")
	if !d.Exists || d.Kind != KindCompany {
		t.Fatalf("expected website match, got %+v", d)
	}
	if !strings.Contains(d.Message, "This website") {
		t.Fatalf("unexpected message %q", d.Message)
	}
}

func TestGuardSkipsWebsitePassWhenEmpty(t *testing.T) {
	g := NewGuard(
		&stubSubmissionIndex{identities: []Identity{{CompanyName: "Other", Website: ""}}},
		&stubCompanyIndex{},
		nil,
	)

	d := g.Check(context.Background(), "Acme", "")
	if d.Exists {
		t.Fatalf("expected no duplicate, got %+v", d)
	}
}

func TestGuardFailsOpenOnReadErrors(t *testing.T) {
	g := NewGuard(
		&stubSubmissionIndex{err: errors.New("db down")},
		&stubCompanyIndex{err: errors.New("db down")},
		nil,
	)

	d := g.Check(context.Background(), "Acme", "https://acme.io")
	if d.Exists {
		t.Fatalf("expected fail-open decision, got %+v", d)
	}
}

func TestGuardIgnoresBlankStoredNames(t *testing.T) {
	g := NewGuard(
		&stubSubmissionIndex{identities: []Identity{{CompanyName: ""}}},
		&stubCompanyIndex{identities: []companies.Identity{{Name: ""}}},
		nil,
	)

	// a blank stored name must not match a blank-normalizing input
	d := g.Check(context.Background(), "   ", "")
	if d.Exists {
		t.Fatalf("expected no match on blank names, got %+v", d)
	}
}
