package ticket

import "strings"

// Validation limits for ticket fields.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

// ValidateFields checks candidate ticket fields and returns a map of field
// name to human-readable message. An empty map means the fields are valid.
//
// The repository itself accepts whatever it is handed; callers are
// expected to run this gate before Add and Update.
func ValidateFields(fields Fields) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(fields.Title) == "" {
		errs["title"] = "Title is required"
	} else if len(fields.Title) > MaxTitleLength {
		errs["title"] = "Title must be less than 200 characters"
	}

	if err := fields.Status.Validate(); err != nil {
		errs["status"] = "Invalid status"
	}

	if fields.Description != "" && len(fields.Description) > MaxDescriptionLength {
		errs["description"] = "Description too long"
	}

	return errs
}
