package rest

import (
	"github.com/eventflow-dev/eventflow/internal/server/events"
	"github.com/eventflow-dev/eventflow/internal/server/registrations"
	"github.com/eventflow-dev/eventflow/internal/server/users"
	"github.com/eventflow-dev/eventflow/internal/server/venues"
)

// Wire shapes. Dates travel as "2006-01-02" strings; timestamps as RFC 3339.

type registerRequest struct {
	FullName string `json:"fullName" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=attendee organizer admin"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type userResponse struct {
	UserID   int    `json:"userId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func toUserResponse(u *users.User) userResponse {
	return userResponse{UserID: u.ID, FullName: u.FullName, Email: u.Email, Role: u.Role}
}

type venueRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Location string `json:"location" validate:"required"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
}

type venueResponse struct {
	VenueID  int    `json:"venueId"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

func toVenueResponse(v *venues.Venue) venueResponse {
	return venueResponse{VenueID: v.ID, Name: v.Name, Location: v.Location, Capacity: v.Capacity}
}

type eventRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	EventDate   string `json:"eventDate" validate:"required"`
	VenueID     int    `json:"venueId"`
}

type eventResponse struct {
	EventID     int            `json:"eventId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	EventDate   string         `json:"eventDate"`
	VenueID     int            `json:"venueId,omitempty"`
	CreatedBy   int            `json:"createdBy,omitempty"`
	Venue       *venueResponse `json:"venue,omitempty"`
}

func toEventResponse(e *events.Event) eventResponse {
	resp := eventResponse{
		EventID:     e.ID,
		Title:       e.Title,
		Description: e.Description,
		EventDate:   e.EventDate,
		VenueID:     e.VenueID,
		CreatedBy:   e.CreatedBy,
	}
	if e.Venue != nil {
		v := toVenueResponse(e.Venue)
		resp.Venue = &v
	}
	return resp
}

func toEventResponses(list []events.Event) []eventResponse {
	out := make([]eventResponse, 0, len(list))
	for i := range list {
		out = append(out, toEventResponse(&list[i]))
	}
	return out
}

type signupRequest struct {
	UserID int `json:"userId"`
}

type registrationResponse struct {
	RegID        int    `json:"regId"`
	UserID       int    `json:"userId"`
	EventID      int    `json:"eventId"`
	RegisteredAt string `json:"registeredAt"`
}

type registrationDetailsResponse struct {
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

func toDetailsResponses(list []registrations.Details) []registrationDetailsResponse {
	out := make([]registrationDetailsResponse, 0, len(list))
	for _, d := range list {
		out = append(out, registrationDetailsResponse{
			RegID:        d.RegistrationID,
			RegisteredAt: d.RegisteredAt.Format("2006-01-02T15:04:05Z07:00"),
			EventID:      d.EventID,
			Title:        d.Title,
			Description:  d.Description,
			EventDate:    d.EventDate,
			UserID:       d.UserID,
			FullName:     d.FullName,
			Email:        d.Email,
		})
	}
	return out
}
