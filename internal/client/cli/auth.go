package cli

import (
	"context"
	"fmt"

	"github.com/eventflow-dev/eventflow/internal/client/api"
	"github.com/eventflow-dev/eventflow/internal/client/session"
	"github.com/eventflow-dev/eventflow/internal/common"
)

// getSimpleText, getInt and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getInt        = GetInt
	getPassword   = GetPassword
)

// Register prompts for a profile and creates a new account. The role is
// one of attendee/organizer/admin; an empty answer means attendee.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	role, err := getSimpleText(a.reader, "Enter role (attendee/organizer)", a.out)
	if err != nil {
		return err
	}
	if role == "" {
		role = string(session.RoleAttendee)
	}

	user, err := a.api.Register(ctx, api.NewUser{
		FullName: fullName,
		Email:    email,
		Password: string(password),
		Role:     session.Role(role),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account created for %s. You can now log in.\n", user.Email)
	return nil
}

// Login prompts for credentials, exchanges them for a bearer token and
// resolves the session through the store. Any failure leaves the session
// logged out and is reported to the user.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.api.Login(ctx, api.Credentials{Email: email, Password: string(password)})
	if err != nil {
		a.log.Warn(ctx, "login failed", "error", err)
		return err
	}

	if err := a.session.Login(ctx, token); err != nil {
		a.log.Warn(ctx, "session resolution failed", "error", err)
		a.Notify("Login failed: " + err.Error())
		return err
	}

	snap := a.session.Current()
	fmt.Fprintf(a.out, "Welcome, %s (%s)\n", snap.User.FullName, snap.User.Role)
	return nil
}

// Logout clears the session. It never fails.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.fence.Invalidate()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Whoami prints the current session state.
func (a *App) Whoami(ctx context.Context) error {
	snap := a.session.Current()
	if !snap.IsAuthenticated {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> role=%s id=%d\n", snap.User.FullName, snap.User.Email, snap.User.Role, snap.User.ID)
	return nil
}
