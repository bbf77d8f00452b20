package service

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"blogapi/internal/model"
)

// Field limits mirrored by the web UI; the server side is authoritative.
const (
	MaxNameLen        = 200
	MaxDescriptionLen = 1000
	MaxImageLen       = 5000000
)

// ValidationError reports per-field input violations for create/update.
// A request that produces one is never partially persisted.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// validateInput checks a write DTO against the field constraints.
// name and description must be non-empty after trimming and within their
// length caps; image is only bounded by the overall size ceiling. Image
// content is not verified, only that a value was supplied.
func validateInput(in model.PostInput) *ValidationError {
	fields := map[string]string{}

	// Caps count characters, not bytes, matching the char_length CHECKs
	// on the posts table.
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "Name is required"
	} else if utf8.RuneCountInString(in.Name) > MaxNameLen {
		fields["name"] = fmt.Sprintf("Name cannot exceed %d characters", MaxNameLen)
	}

	if strings.TrimSpace(in.Description) == "" {
		fields["description"] = "Description is required"
	} else if utf8.RuneCountInString(in.Description) > MaxDescriptionLen {
		fields["description"] = fmt.Sprintf("Description cannot exceed %d characters", MaxDescriptionLen)
	}

	if in.Image != nil && utf8.RuneCountInString(*in.Image) > MaxImageLen {
		fields["image"] = "Image data is too large"
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
