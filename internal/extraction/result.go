package extraction

import (
	"strconv"
	"strings"

	"github.com/launchlist/launchlist/internal/normalize"
)

// Result is the normalized fragment the pipeline produces. All fields are
// strings: numeric values are rendered as decimal strings and re-parsed to
// integers at submit time. Callers merge a Result into their draft by
// overwriting every field, empty strings included.
type Result struct {
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
}

// resultFromFields maps a decoded JSON object onto a normalized Result.
func resultFromFields(fields map[string]any) *Result {
	r := &Result{
		CompanyName:  stringField(fields, "company_name"),
		Description:  stringField(fields, "description"),
		Website:      stringField(fields, "website"),
		Location:     stringField(fields, "location"),
		Industry:     stringField(fields, "industry"),
		Founded:      numberField(fields, "founded"),
		TeamSize:     numberField(fields, "team_size"),
		FounderName:  stringField(fields, "founder_name"),
		FounderEmail: stringField(fields, "founder_email"),
		FounderRole:  stringField(fields, "founder_role"),
	}
	r.Website = normalize.EnsureScheme(r.Website)
	return r
}

func stringField(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// numberField renders a numeric value as its decimal string, or "" when the
// field is null, absent, zero, or not a number. Models occasionally return
// numbers as quoted strings; those are accepted if they parse cleanly.
func numberField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case float64:
		if v != 0 {
			return strconv.FormatInt(int64(v), 10)
		}
	case string:
		trimmed := strings.TrimSpace(v)
		if n, err := strconv.Atoi(trimmed); err == nil && n != 0 {
			return strconv.Itoa(n)
		}
	}
	return ""
}
