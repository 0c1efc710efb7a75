package submissions

import (
	"regexp"
	"strings"
	"time"
)

// Draft is the caller-held form state for a submission. Everything is a
// string because that is what the form produces; numeric fields are parsed
// to integers at submit time.
type Draft struct {
	CompanyName  string `json:"company_name"`
	Description  string `json:"description"`
	Website      string `json:"website"`
	Location     string `json:"location"`
	Industry     string `json:"industry"`
	Founded      string `json:"founded"`
	TeamSize     string `json:"team_size"`
	FounderName  string `json:"founder_name"`
	FounderEmail string `json:"founder_email"`
	FounderRole  string `json:"founder_role"`
	LogoURL      string `json:"logo_url"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks required fields and the shape of email/website values.
// It never touches the network.
func (d *Draft) Validate() error {
	if strings.TrimSpace(d.CompanyName) == "" {
		return ErrMissingCompanyName
	}
	if strings.TrimSpace(d.Description) == "" {
		return ErrMissingDescription
	}
	if email := strings.TrimSpace(d.FounderEmail); email != "" && !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	if website := strings.TrimSpace(d.Website); website != "" {
		if !strings.HasPrefix(website, "http://") && !strings.HasPrefix(website, "https://") {
			return ErrInvalidWebsite
		}
	}
	return nil
}

// Submission is a stored submission record.
type Submission struct {
	ID           string    `json:"id"`
	CompanyName  string    `json:"company_name"`
	Description  string    `json:"description"`
	Website      *string   `json:"website"`
	Location     *string   `json:"location"`
	Industry     *string   `json:"industry"`
	Founded      *int      `json:"founded"`
	TeamSize     *int      `json:"team_size"`
	FounderName  *string   `json:"founder_name"`
	FounderEmail *string   `json:"founder_email"`
	FounderRole  *string   `json:"founder_role"`
	LogoURL      *string   `json:"logo_url"`
	Status       string    `json:"status"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// Identity is the slim projection the duplicate guard scans.
type Identity struct {
	ID          string
	CompanyName string
	Website     string
}
