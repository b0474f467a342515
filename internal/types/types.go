// Package types holds the shared data structures used across the
// application. Handlers, serializer, and storage all import types
// without depending on each other, which keeps the import graph
// cycle-free.
package types

// Student is the persisted record and, via its json tags, the wire
// representation exchanged over HTTP.
//
// ID is generated by the store on insert and never changes afterwards.
// Name is the only required field; Email and Age are optional and are
// omitted from the JSON encoding when unset, so a minimal record
// round-trips as {"id": 1, "name": "Ada"}.
type Student struct {
	ID    int64  `json:"id"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Age   int    `json:"age,omitempty" validate:"omitempty,gte=0"`
}
