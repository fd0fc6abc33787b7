package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/EltonDagodog/VoteRoyale/logging"
)

// EventInput is the coordinator-facing create/update payload.
type EventInput struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	Status          string `json:"status"`
	Location        string `json:"location"`
	MaxParticipants int    `json:"max_participants"`
}

func (c *Client) Events(ctx context.Context, token string) ([]Event, error) {
	var out []Event
	if err := c.do(ctx, http.MethodGet, "/events/", token, nil, &out); err != nil {
		return nil, err
	}
	events := make([]Event, 0, len(out))
	for _, e := range out {
		e.normalize()
		if err := c.validate.Struct(e); err != nil {
			logging.Log.Warnf("UPSTREAM: skipping malformed event record %q: %v", e.ID, err)
			continue
		}
		events = append(events, e)
	}
	return events, nil
}

func (c *Client) Event(ctx context.Context, token string, id ID) (*Event, error) {
	var out Event
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%s/", id), token, nil, &out); err != nil {
		return nil, err
	}
	out.normalize()
	if err := c.validate.Struct(out); err != nil {
		return nil, &RemoteError{Message: "malformed event record from backend"}
	}
	return &out, nil
}

func (c *Client) CreateEvent(ctx context.Context, token string, in EventInput) (*Event, error) {
	var out Event
	if err := c.do(ctx, http.MethodPost, "/events/", token, in, &out); err != nil {
		return nil, err
	}
	out.normalize()
	return &out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, token string, id ID, in EventInput) (*Event, error) {
	var out Event
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/events/%s/", id), token, in, &out); err != nil {
		return nil, err
	}
	out.normalize()
	return &out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, token string, id ID) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%s/", id), token, nil, nil)
}
