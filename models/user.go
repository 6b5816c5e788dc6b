package models

import "time"

// User is the owner entity a note belongs to. Users are bootstrapped lazily
// from the opaque caller id supplied on every request: the first request
// bearing a new id creates the row, later requests leave it untouched.
//
// Email is a placeholder derived from the caller id at creation time and is
// never read by the application afterwards.
type User struct {
	UserID    string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
