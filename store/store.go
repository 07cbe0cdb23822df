// Package store holds the repositories backing the REST surface. Each
// repository wraps the shared *gorm.DB handle; reads that find nothing return
// nil rather than an error, matching the API's empty-body-on-absent
// convention.
package store

import "errors"

var (
	// ErrAlreadyExists reports a create against an existing unique key.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotPending reports an accept or cancel with no pending request
	// between the two users.
	ErrNotPending = errors.New("no pending request between users")
)
