package core

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates field errors so callers can abort an
// action while still reporting every failure.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// AsValidationError unwraps err into a *ValidationError if possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// uuidV4Pattern matches the 8-4-4-4-12 hex form with version nibble 4
// and variant nibble 8/9/a/b.
var uuidV4Pattern = regexp.MustCompile(
	`^(?i)[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// IsValidUUID reports whether value is a valid UUID v4 string.
func IsValidUUID(value string) bool {
	return uuidV4Pattern.MatchString(value)
}

// Validate checks the record against the registry's field constraints.
// Every rule runs independently; the returned slice holds one entry per
// failing field and is empty for a valid record.
func Validate(r *Record) []FieldError {
	var errs []FieldError

	if n := len(r.Core.AssetName); n > 100 {
		errs = append(errs, FieldError{"name", fmt.Sprintf("Name too long (%d/100 characters)", n)})
	}

	if n := len(r.Core.Description); n > 500 {
		errs = append(errs, FieldError{"description", fmt.Sprintf("Description too long (%d/500 characters)", n)})
	}

	if err := validateTags(r.Core.Tags); err != "" {
		errs = append(errs, FieldError{"tags", err})
	}

	if id := r.Lineage.LineageID; id != "" && !IsValidUUID(id) {
		errs = append(errs, FieldError{"lineageId", "Lineage ID must be a valid UUID v4"})
	}

	return errs
}

func validateTags(tags string) string {
	entries := SplitList(tags)
	if len(entries) > 20 {
		return fmt.Sprintf("Too many tags (%d/20)", len(entries))
	}
	for _, tag := range entries {
		if len(tag) > 50 {
			return fmt.Sprintf("Tag %q too long (%d/50 chars)", truncate(tag, 20), len(tag))
		}
	}
	return ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
