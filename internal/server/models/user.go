package models

import "time"

// User is a stored credential record. PasswordHash holds a bcrypt hash,
// never the raw password. Level is kept for callers but not enforced.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Level        string
	CreatedAt    time.Time
}

// Profile is the public view of a User; it has no password field.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Level string `json:"level"`
}

func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email, Level: u.Level}
}
