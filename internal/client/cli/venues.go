package cli

import (
	"context"
	"fmt"

	"github.com/eventflow-dev/eventflow/internal/client/api"
)

// Venues lists the venues available for hosting events.
func (a *App) Venues(ctx context.Context) error {
	venues, err := a.api.ListVenues(ctx)
	if err != nil {
		return err
	}

	if len(venues) == 0 {
		fmt.Fprintln(a.out, "No venues yet.")
		return nil
	}
	for _, v := range venues {
		fmt.Fprintf(a.out, "#%d %s — %s (capacity %d)\n", v.VenueID, v.Name, v.Location, v.Capacity)
	}
	return nil
}

// CreateVenue prompts for venue fields and creates the venue.
func (a *App) CreateVenue(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}

	location, err := getSimpleText(a.reader, "Location", a.out)
	if err != nil {
		return err
	}

	capacity, err := getInt(a.reader, "Capacity", a.out)
	if err != nil {
		return err
	}

	created, err := a.api.CreateVenue(ctx, api.Venue{Name: name, Location: location, Capacity: capacity})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created venue #%d\n", created.VenueID)
	return nil
}
