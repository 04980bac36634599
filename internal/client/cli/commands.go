package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

var errNotLoggedIn = errors.New("please login first")

func (a *App) Register(ctx context.Context) error {
	var req client.RegisterRequest
	var err error

	if req.Name, err = GetSimpleText(a.reader, "Enter user name", a.out); err != nil {
		return a.fail(err)
	}
	if req.Email, err = GetSimpleText(a.reader, "Enter email", a.out); err != nil {
		return a.fail(err)
	}

	password, err := GetPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return a.fail(err)
	}
	defer common.WipeByteArray(password)

	confirm, err := GetPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return a.fail(err)
	}
	defer common.WipeByteArray(confirm)

	if req.Level, err = GetSimpleText(a.reader, "Enter level", a.out); err != nil {
		return a.fail(err)
	}

	req.Password = string(password)
	req.ConfirmPassword = string(confirm)

	if err := a.api.Register(ctx, req); err != nil {
		return a.fail(err)
	}

	a.printf("User %s registered", req.Name)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return a.fail(err)
	}

	password, err := GetPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return a.fail(err)
	}
	defer common.WipeByteArray(password)

	token, err := a.api.Login(ctx, userName, string(password))
	if err != nil {
		return a.fail(err)
	}

	userID, err := tokenUserID(token)
	if err != nil {
		return a.fail(err)
	}

	a.token, a.userID, a.userName = token, userID, userName
	a.printf("Login successful, user id %s", userID)
	return nil
}

// Profile shows the profile of a user id entered at the prompt, or of the
// logged-in user when the prompt is left empty.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		return a.fail(errNotLoggedIn)
	}

	id, err := GetSimpleText(a.reader, "Enter user id (empty for your own)", a.out)
	if err != nil {
		return a.fail(err)
	}
	if id == "" {
		id = a.userID
	}

	p, err := a.api.Profile(ctx, a.token, id)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.Logout(ctx)
		}
		return a.fail(err)
	}

	a.printf("id:    %s", p.ID)
	a.printf("name:  %s", p.Name)
	a.printf("email: %s", p.Email)
	a.printf("level: %s", p.Level)
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	if err := a.api.Ping(ctx); err != nil {
		return a.fail(err)
	}
	a.printf("Server is up")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.token, a.userID, a.userName = "", "", ""
	a.printf("Logged out")
	return nil
}

func (a *App) fail(err error) error {
	a.printf("error: %v", err)
	return err
}
