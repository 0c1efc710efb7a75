package submissions

import "errors"

var (
	// ErrMissingCompanyName is returned when the draft has no company name.
	ErrMissingCompanyName = errors.New("company name is required")

	// ErrMissingDescription is returned when the draft has no description.
	ErrMissingDescription = errors.New("description is required")

	// ErrInvalidEmail is returned when the founder email is present but not
	// of the form local@domain.tld.
	ErrInvalidEmail = errors.New("founder email is not a valid email address")

	// ErrInvalidWebsite is returned when the website is present but does not
	// start with http:// or https://.
	ErrInvalidWebsite = errors.New("website must start with http:// or https://")
)

// DuplicateError reports that the duplicate guard matched an existing record.
// Message is user-facing; Kind says which table matched.
type DuplicateError struct {
	Kind    string
	Message string
}

func (e *DuplicateError) Error() string {
	return e.Message
}
