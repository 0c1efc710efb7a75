package submissions

import (
	"context"
	"fmt"

	"github.com/launchlist/launchlist/internal/companies"
	"github.com/launchlist/launchlist/internal/normalize"
	"github.com/launchlist/launchlist/pkg/logging"
)

// Decision is the outcome of one duplicate check. Never persisted.
type Decision struct {
	Exists  bool   `json:"exists"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}

const (
	// KindSubmission means the match was a pending submission.
	KindSubmission = "submission"
	// KindCompany means the match was a published company.
	KindCompany = "company"
)

// submissionIndex and companyIndex are the unfiltered reads the guard scans.
type submissionIndex interface {
	ListIdentities(ctx context.Context) ([]Identity, error)
}

type companyIndex interface {
	ListIdentities(ctx context.Context) ([]companies.Identity, error)
}

// Guard decides whether an equivalent record already exists among pending
// submissions or published companies. Matching is exact after normalization:
// case-insensitive, whitespace-trimmed names; trailing-slash-insensitive
// websites. Lookup failures are swallowed (FailOpen policy): blocking a
// legitimate submission on a transient read error is judged worse than
// occasionally admitting a duplicate.
//
// The check is point-in-time with no locking; concurrent submitters can both
// pass. The creation path runs a second, narrower name check before inserting
// the company, which mitigates but does not eliminate the race.
type Guard struct {
	submissions submissionIndex
	companies   companyIndex
	logger      *logging.Logger
}

// NewGuard creates a duplicate guard over the two identity sources.
func NewGuard(submissions submissionIndex, companies companyIndex, logger *logging.Logger) *Guard {
	if submissions == nil || companies == nil {
		panic("submissions: guard requires both identity sources")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Guard{submissions: submissions, companies: companies, logger: logger}
}

// Check scans pending submissions then published companies for a record with
// the same normalized name, then (when a website is supplied) repeats both
// scans on normalized websites. First match wins. Never fails outward.
func (g *Guard) Check(ctx context.Context, companyName, website string) Decision {
	subs, err := g.submissions.ListIdentities(ctx)
	if err != nil {
		g.logger.Warn("duplicate check: submissions read failed, failing open", "error", err)
		subs = nil
	}
	comps, err := g.companies.ListIdentities(ctx)
	if err != nil {
		g.logger.Warn("duplicate check: companies read failed, failing open", "error", err)
		comps = nil
	}

	name := normalize.Name(companyName)
	for _, sub := range subs {
		if sub.CompanyName != "" && normalize.Name(sub.CompanyName) == name {
			return Decision{
				Exists:  true,
				Kind:    KindSubmission,
				Message: fmt.Sprintf("A submission for %q already exists. Please wait for it to be processed.", companyName),
			}
		}
	}
	for _, comp := range comps {
		if comp.Name != "" && normalize.Name(comp.Name) == name {
			return Decision{
				Exists:  true,
				Kind:    KindCompany,
				Message: fmt.Sprintf("%q is already listed in the directory.", companyName),
			}
		}
	}

	if website != "" {
		site := normalize.Website(website)
		for _, sub := range subs {
			if sub.Website != "" && normalize.Website(sub.Website) == site {
				return Decision{
					Exists:  true,
					Kind:    KindSubmission,
					Message: fmt.Sprintf("A submission for this website (%s) already exists.", website),
				}
			}
		}
		for _, comp := range comps {
			if comp.Website != "" && normalize.Website(comp.Website) == site {
				return Decision{
					Exists:  true,
					Kind:    KindCompany,
					Message: fmt.Sprintf("This website (%s) is already listed in the directory.", website),
				}
			}
		}
	}

	return Decision{Exists: false}
}
