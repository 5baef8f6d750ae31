package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/eventflow-dev/eventflow/internal/client/guard"
	"github.com/eventflow-dev/eventflow/internal/client/session"
)

// commandRoles maps protected commands to their allowed-role sets. An
// entry with an empty set requires any authenticated role; commands absent
// from the map are public.
var commandRoles = map[string][]session.Role{
	"create-event": {session.RoleOrganizer, session.RoleAdmin},
	"edit-event":   {session.RoleOrganizer, session.RoleAdmin},
	"delete-event": {session.RoleOrganizer, session.RoleAdmin},
	"create-venue": {session.RoleOrganizer, session.RoleAdmin},
	"venues":       {session.RoleOrganizer, session.RoleAdmin},
	"myregs":       {session.RoleAttendee, session.RoleOrganizer, session.RoleAdmin},
	"dashboard":    {session.RoleOrganizer},
	"roster":       {session.RoleOrganizer},
	"signup":       {},
}

func (a *App) getStatus() string {
	snap := a.session.Current()
	if !snap.IsAuthenticated {
		return ""
	}
	return fmt.Sprintf("(%s %s)", snap.User.Email, snap.User.Role)
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, "Available commands: events, show <id>, login, register, whoami, exit")
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "  signup <id>, myregs, logout")
		fmt.Fprintln(a.out, "  organizer: create-event, edit-event <id>, delete-event <id>,")
		fmt.Fprintln(a.out, "             create-venue, venues, dashboard, roster <id>")
	}
}

func argID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("an event id is required")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid event id %q", args[0])
	}
	return id, nil
}

// navigate dispatches one command, running the guard first for protected
// ones. A redirect-to-login shows the login view instead of the requested
// one (the destination is not preserved); a redirect-home falls back to
// the events listing.
func (a *App) navigate(ctx context.Context, cmd string, args []string) error {
	if roles, protected := commandRoles[cmd]; protected {
		switch guard.Check(a.session.Current(), roles) {
		case guard.RedirectLogin:
			a.Notify("Please log in to continue.")
			return a.Login(ctx)
		case guard.RedirectHome:
			a.Notify("You do not have access to that view.")
			return a.Events(ctx)
		}
	}

	switch cmd {
	case "events":
		return a.Events(ctx)
	case "show":
		id, err := argID(args)
		if err != nil {
			return err
		}
		return a.Show(ctx, id)
	case "login":
		return a.Login(ctx)
	case "register":
		return a.Register(ctx)
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.Whoami(ctx)
	case "signup":
		id, err := argID(args)
		if err != nil {
			return err
		}
		return a.Signup(ctx, id)
	case "myregs":
		return a.MyRegistrations(ctx)
	case "create-event":
		return a.CreateEvent(ctx)
	case "edit-event":
		id, err := argID(args)
		if err != nil {
			return err
		}
		return a.EditEvent(ctx, id)
	case "delete-event":
		id, err := argID(args)
		if err != nil {
			return err
		}
		return a.DeleteEvent(ctx, id)
	case "create-venue":
		return a.CreateVenue(ctx)
	case "venues":
		return a.Venues(ctx)
	case "dashboard":
		return a.Dashboard(ctx)
	case "roster":
		id, err := argID(args)
		if err != nil {
			return err
		}
		return a.Roster(ctx, id)
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

// Root runs the read–eval–print loop. It exits on EOF or when the user
// types "exit" or "quit". Command errors are reported and the loop keeps
// going; the transport layer has already surfaced its own notices by the
// time an error reaches here.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to eventflow (type 'help' for commands)")
	scanner := bufio.NewScanner(a.reader)

	for {
		fmt.Fprintf(a.out, "ef %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			if err := a.navigate(ctx, cmd, args); err != nil {
				fmt.Fprintln(a.out, "error:", err)
			}
		}
	}
}
