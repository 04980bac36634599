package client

import (
	"context"
)

// RegisterRequest is the registration form sent to the server.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
	Level           string `json:"level"`
}

// Profile is the public view of a user as returned by the server.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Level string `json:"level"`
}

type Client interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, name, password string) (string, error)
	Profile(ctx context.Context, token, id string) (*Profile, error)
}
