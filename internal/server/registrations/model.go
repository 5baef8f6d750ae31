package registrations

import "time"

type Registration struct {
	ID           int
	EventID      int
	UserID       int
	RegisteredAt time.Time
}

// Details is a registration joined with its event and attendee, as
// rosters and personal registration lists present it.
type Details struct {
	RegistrationID int
	EventID        int
	Title          string
	Description    string
	EventDate      string
	UserID         int
	FullName       string
	Email          string
	RegisteredAt   time.Time
}
