package models

import "time"

// User is an authenticated operator of the console (agent or admin).
type User struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	FullName  string     `json:"full_name"`
	IsActive  bool       `json:"is_active"`
	Groups    []string   `json:"groups"`
	LastLogin *time.Time `json:"last_login"`
}

// DisplayName prefers the full name and falls back to the username.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Data LoginData `json:"data"`
}

type LoginData struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
