package submissions

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/launchlist/launchlist/internal/companies"
	"github.com/launchlist/launchlist/internal/founders"
	"github.com/launchlist/launchlist/pkg/logging"
)

// Service orchestrates submission creation: validation, the duplicate guard,
// the submission insert, the derived company insert, and the best-effort
// founder insert.
type Service struct {
	repo      Repository
	companies companies.Repository
	founders  founders.Repository
	guard     *Guard
	logger    *logging.Logger
}

// NewService creates the submission service.
func NewService(repo Repository, companiesRepo companies.Repository, foundersRepo founders.Repository, guard *Guard, logger *logging.Logger) *Service {
	if repo == nil || companiesRepo == nil || guard == nil {
		panic("submissions: repo, companies repo and guard are required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		repo:      repo,
		companies: companiesRepo,
		founders:  foundersRepo,
		guard:     guard,
		logger:    logger,
	}
}

// CheckDuplicate exposes the guard for form-layer pre-checks.
func (s *Service) CheckDuplicate(ctx context.Context, companyName, website string) Decision {
	return s.guard.Check(ctx, companyName, website)
}

// Create validates the draft, runs the duplicate guard, inserts the
// submission, then creates the derived company record (unless one already
// exists by name) and, best-effort, its founder. A failed company insert is
// surfaced; a failed founder insert is logged and swallowed
// (BestEffortDependent policy).
func (s *Service) Create(ctx context.Context, draft Draft) (*Submission, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	if decision := s.guard.Check(ctx, draft.CompanyName, draft.Website); decision.Exists {
		return nil, &DuplicateError{Kind: decision.Kind, Message: decision.Message}
	}

	founded := parseOptionalInt(draft.Founded)
	teamSize := parseOptionalInt(draft.TeamSize)

	sub, err := s.repo.Insert(ctx, InsertParams{
		CompanyName:  strings.TrimSpace(draft.CompanyName),
		Description:  strings.TrimSpace(draft.Description),
		Website:      optionalString(draft.Website),
		Location:     optionalString(draft.Location),
		Industry:     optionalString(draft.Industry),
		Founded:      founded,
		TeamSize:     teamSize,
		FounderName:  optionalString(draft.FounderName),
		FounderEmail: optionalString(draft.FounderEmail),
		FounderRole:  optionalString(draft.FounderRole),
		LogoURL:      optionalString(draft.LogoURL),
	})
	if err != nil {
		return nil, fmt.Errorf("submissions: create submission: %w", err)
	}
	s.logger.Info("submission created", "id", sub.ID, "company_name", sub.CompanyName)

	// Narrow second check before the company insert. Reads can fail open
	// here too: skipping the check is better than failing the submission.
	exists, err := s.companies.ExistsByName(ctx, sub.CompanyName)
	if err != nil {
		s.logger.Warn("pre-insert existence check failed, proceeding", "error", err)
		exists = false
	}
	if exists {
		s.logger.Info("company already listed, skipping create", "company_name", sub.CompanyName)
		return sub, nil
	}

	company, err := s.companies.Create(ctx, companies.CreateParams{
		Name:         sub.CompanyName,
		Description:  sub.Description,
		Website:      sub.Website,
		Location:     sub.Location,
		Industry:     sub.Industry,
		Founded:      founded,
		TeamSize:     teamSize,
		LogoURL:      sub.LogoURL,
		LogoFallback: logoFallback(sub.CompanyName),
		Status:       "Active",
		IsTop:        false,
		Hiring:       false,
	})
	if err != nil {
		// a real persistence problem: the caller must know
		return nil, fmt.Errorf("submissions: create company: %w", err)
	}
	s.logger.Info("company created from submission", "company_id", company.ID)

	if s.founders != nil && strings.TrimSpace(draft.FounderName) != "" {
		if _, err := s.founders.Create(ctx, founders.CreateParams{
			CompanyID: company.ID,
			Name:      strings.TrimSpace(draft.FounderName),
			Role:      optionalString(draft.FounderRole),
		}); err != nil {
			s.logger.Error("founder create failed, submission unaffected", "error", err, "company_id", company.ID)
		}
	}

	return sub, nil
}

// ListByStatus returns stored submissions for the admin view.
func (s *Service) ListByStatus(ctx context.Context, status string) ([]Submission, error) {
	return s.repo.List(ctx, status)
}

func optionalString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func parseOptionalInt(s string) *int {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil
	}
	return &n
}

func logoFallback(name string) *string {
	runes := []rune(strings.TrimSpace(name))
	if len(runes) == 0 {
		return nil
	}
	fallback := strings.ToUpper(string(runes[0]))
	return &fallback
}
