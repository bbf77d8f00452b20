package model

import "time"

// Post is the sole domain entity: a named, described, optionally
// illustrated content item. This is a pure domain model with no
// database-specific dependencies or tags; it can be used across layers
// (HTTP, service, repository) without coupling to persistence.
//
// Image is nil when no image was supplied; a non-nil value holds either
// an external URL or a data-URI embedded payload. The two cases are kept
// distinct from the empty string so absence serializes as JSON null.
type Post struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PostInput is the wire-facing write shape for create and update.
// ID and timestamps are server-managed and never client-supplied.
type PostInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       *string `json:"image,omitempty"`
}
