package companies

import "time"

// Company is a published directory entry.
type Company struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Website      *string   `json:"website"`
	Description  string    `json:"description"`
	Location     *string   `json:"location"`
	Industry     *string   `json:"industry"`
	Founded      *int      `json:"founded"`
	TeamSize     *int      `json:"team_size"`
	LogoURL      *string   `json:"logo_url"`
	LogoFallback *string   `json:"logo_fallback"`
	Status       string    `json:"status"`
	IsTop        bool      `json:"is_top"`
	Hiring       bool      `json:"hiring"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the slim projection the duplicate guard scans.
type Identity struct {
	ID      string
	Name    string
	Website string
}

// Filter narrows the directory listing. Zero values mean "no filter".
type Filter struct {
	Industry string
	IsTop    bool
	Hiring   bool
	Search   string
}

// CreateParams carries the fields for a new company row. Nullable columns use
// pointers so absent values land as SQL NULL, not empty strings.
type CreateParams struct {
	Name         string
	Description  string
	Website      *string
	Location     *string
	Industry     *string
	Founded      *int
	TeamSize     *int
	LogoURL      *string
	LogoFallback *string
	Status       string
	IsTop        bool
	Hiring       bool
}
