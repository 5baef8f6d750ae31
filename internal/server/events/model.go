package events

import "github.com/eventflow-dev/eventflow/internal/server/venues"

type Event struct {
	ID          int
	Title       string
	Description string
	EventDate   string
	VenueID     int
	CreatedBy   int

	// Venue is populated on reads when the event has one.
	Venue *venues.Venue
}
