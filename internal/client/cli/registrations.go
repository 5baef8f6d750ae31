package cli

import (
	"context"
	"fmt"
)

// MyRegistrations lists the events the logged-in user signed up for.
func (a *App) MyRegistrations(ctx context.Context) error {
	snap := a.session.Current()
	if snap.User == nil {
		return fmt.Errorf("not logged in")
	}

	regs, err := a.api.ListUserRegistrations(ctx, snap.User.ID)
	if err != nil {
		return err
	}

	if len(regs) == 0 {
		fmt.Fprintln(a.out, "You have no registrations.")
		return nil
	}
	for _, r := range regs {
		fmt.Fprintf(a.out, "#%d %s — %s (registered %s)\n", r.EventID, r.Title, r.EventDate, r.RegisteredAt)
	}
	return nil
}

// Dashboard lists the logged-in organizer's own events.
func (a *App) Dashboard(ctx context.Context) error {
	events, err := a.api.ListOrganizerEvents(ctx)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		fmt.Fprintln(a.out, "You have not created any events.")
		return nil
	}
	for _, e := range events {
		fmt.Fprintln(a.out, formatEvent(e))
	}
	return nil
}

// Roster lists the registrations for one of the organizer's events.
func (a *App) Roster(ctx context.Context, eventID int) error {
	regs, err := a.api.ListEventRegistrations(ctx, eventID)
	if err != nil {
		return err
	}

	if len(regs) == 0 {
		fmt.Fprintln(a.out, "No registrations for this event.")
		return nil
	}
	for _, r := range regs {
		fmt.Fprintf(a.out, "%s <%s> — registered %s\n", r.FullName, r.Email, r.RegisteredAt)
	}
	return nil
}
