// Package model defines the data structures used throughout the application.
package model

import "time"

// InvalidDuration is stored when a duration could not be coerced to a number.
// Malformed durations are kept rather than rejected, so a recognisable
// sentinel stands in for "not a number" (JSON has no NaN for integers).
const InvalidDuration = -1

// Activity is a single logged exercise entry owned by exactly one User.
//
// Date is stored as the normalized date string (e.g. "Wed May 01 2024"),
// never as a raw timestamp — both storage and range filtering work on this
// rendering. Username is a frozen copy of the owner's name at creation time;
// since usernames are immutable that copy can never drift.
type Activity struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        string    `json:"date"`
	Username    string    `json:"username"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"-"`
}

// ExerciseResult is the response shape for adding an exercise.
//
// Note that _id echoes the OWNING USER's identifier, not the activity's.
// Clients treat the response as "the user, with the new exercise fields
// attached", so the user ID is what they expect back.
type ExerciseResult struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	UserID      string `json:"_id"`
}

// LogEntry is one activity as it appears inside a log response.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogView is the response shape for a user's filtered activity log.
type LogView struct {
	UserID   string     `json:"_id"`
	Username string     `json:"username"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}
