package api

import "github.com/eventflow-dev/eventflow/internal/client/session"

// Wire shapes of the eventflow API. Dates travel as "2006-01-02" strings.

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type NewUser struct {
	FullName string       `json:"fullName"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Role     session.Role `json:"role"`
}

type Venue struct {
	VenueID  int    `json:"venueId"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

type Event struct {
	EventID     int    `json:"eventId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"eventDate"`
	VenueID     int    `json:"venueId,omitempty"`
	CreatedBy   int    `json:"createdBy,omitempty"`
	Venue       *Venue `json:"venue,omitempty"`
}

type Registration struct {
	RegID        int    `json:"regId"`
	UserID       int    `json:"userId"`
	EventID      int    `json:"eventId"`
	RegisteredAt string `json:"registeredAt"`
}

// RegistrationDetails is the roster row joined with event and attendee data.
type RegistrationDetails struct {
	RegID        int    `json:"regId"`
	RegisteredAt string `json:"registeredAt"`
	EventID      int    `json:"eventId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	EventDate    string `json:"eventDate"`
	UserID       int    `json:"userId"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
}
