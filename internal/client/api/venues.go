package api

import (
	"context"
	"net/http"
)

func (c *Client) ListVenues(ctx context.Context) ([]Venue, error) {
	var venues []Venue
	if err := c.do(ctx, http.MethodGet, "/venues", nil, &venues); err != nil {
		return nil, err
	}
	return venues, nil
}

func (c *Client) CreateVenue(ctx context.Context, venue Venue) (*Venue, error) {
	var created Venue
	if err := c.do(ctx, http.MethodPost, "/venues", venue, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
