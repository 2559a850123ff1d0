// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

import "time"

// User represents a registered account that owns exercise activities.
//
// The JSON field for the identifier is "_id" (not "id") because that is the
// shape API clients expect — it is part of the wire contract, so changing the
// tag would break every consumer even though "_id" looks unusual for Go.
//
// Usernames are NOT unique. Two users may register the same name and each
// gets their own ID; callers must always address users by ID.
type User struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"-"` // stored for bookkeeping, never serialized
}
