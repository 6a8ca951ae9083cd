package model

import "time"

// User is an authentication account. Profile data lives separately in
// UserProfile, keyed by the user id.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Hash      string    `json:"-"`
	CreatedOn time.Time `json:"created_on"`
}
