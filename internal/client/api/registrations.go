package api

import (
	"context"
	"fmt"
	"net/http"
)

// RegisterForEvent signs the given user up for an event.
func (c *Client) RegisterForEvent(ctx context.Context, eventID, userID int) error {
	body := map[string]int{"userId": userID}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/events/%d/register", eventID), body, nil)
}

// ListUserRegistrations returns the events a user has signed up for.
func (c *Client) ListUserRegistrations(ctx context.Context, userID int) ([]RegistrationDetails, error) {
	var regs []RegistrationDetails
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d/registrations", userID), nil, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

// ListOrganizerEvents returns the events created by the logged-in organizer.
func (c *Client) ListOrganizerEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.do(ctx, http.MethodGet, "/organizer/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// ListEventRegistrations returns the roster for an event the logged-in
// organizer owns.
func (c *Client) ListEventRegistrations(ctx context.Context, eventID int) ([]RegistrationDetails, error) {
	var regs []RegistrationDetails
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/organizer/events/%d/registrations", eventID), nil, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}
