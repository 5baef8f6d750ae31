package cli

import (
	"context"
	"fmt"

	"github.com/eventflow-dev/eventflow/internal/client/api"
)

func formatEvent(e api.Event) string {
	s := fmt.Sprintf("#%d %s — %s", e.EventID, e.Title, e.EventDate)
	if e.Venue != nil {
		s += fmt.Sprintf(" @ %s (%s)", e.Venue.Name, e.Venue.Location)
	}
	return s
}

// Events fetches and lists all upcoming events. The fetched list is kept
// as view state for later commands; a result whose generation went stale
// while in flight is discarded instead of applied.
func (a *App) Events(ctx context.Context) error {
	gen := a.fence.Begin()

	events, err := a.api.ListEvents(ctx)
	if err != nil {
		return err
	}

	if !a.fence.Current(gen) {
		a.log.Debug(ctx, "discarding stale events response")
		return nil
	}
	a.cachedEvents = events

	if len(events) == 0 {
		fmt.Fprintln(a.out, "No events yet.")
		return nil
	}
	for _, e := range events {
		fmt.Fprintln(a.out, formatEvent(e))
	}
	return nil
}

// Show displays one event with its full description.
func (a *App) Show(ctx context.Context, id int) error {
	event, err := a.api.GetEvent(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, formatEvent(*event))
	if event.Description != "" {
		fmt.Fprintln(a.out, event.Description)
	}
	if event.Venue != nil {
		fmt.Fprintf(a.out, "Capacity: %d\n", event.Venue.Capacity)
	}
	return nil
}

// CreateEvent prompts for event fields and creates the event. The venue is
// optional; entering 0 leaves the event without one.
func (a *App) CreateEvent(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}

	description, err := getSimpleText(a.reader, "Description", a.out)
	if err != nil {
		return err
	}

	date, err := getSimpleText(a.reader, "Date (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}

	venueID, err := getInt(a.reader, "Venue id (0 for none)", a.out)
	if err != nil {
		return err
	}

	created, err := a.api.CreateEvent(ctx, api.Event{
		Title:       title,
		Description: description,
		EventDate:   date,
		VenueID:     venueID,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created event #%d\n", created.EventID)
	return nil
}

// EditEvent prompts for replacement fields for one of the organizer's
// events. An empty answer keeps the current value.
func (a *App) EditEvent(ctx context.Context, id int) error {
	existing, err := a.api.GetEvent(ctx, id)
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s]", existing.Title), a.out)
	if err != nil {
		return err
	}
	if title == "" {
		title = existing.Title
	}

	description, err := getSimpleText(a.reader, "Description (empty keeps current)", a.out)
	if err != nil {
		return err
	}
	if description == "" {
		description = existing.Description
	}

	date, err := getSimpleText(a.reader, fmt.Sprintf("Date (YYYY-MM-DD) [%s]", existing.EventDate), a.out)
	if err != nil {
		return err
	}
	if date == "" {
		date = existing.EventDate
	}

	updated, err := a.api.UpdateEvent(ctx, id, api.Event{
		Title:       title,
		Description: description,
		EventDate:   date,
		VenueID:     existing.VenueID,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Updated event #%d\n", updated.EventID)
	return nil
}

// DeleteEvent removes one of the organizer's events.
func (a *App) DeleteEvent(ctx context.Context, id int) error {
	if err := a.api.DeleteEvent(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted event #%d\n", id)
	return nil
}

// Signup registers the logged-in user for an event.
func (a *App) Signup(ctx context.Context, eventID int) error {
	snap := a.session.Current()
	if snap.User == nil {
		return fmt.Errorf("not logged in")
	}

	if err := a.api.RegisterForEvent(ctx, eventID, snap.User.ID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered for event #%d\n", eventID)
	return nil
}
