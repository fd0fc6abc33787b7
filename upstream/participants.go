package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/EltonDagodog/VoteRoyale/logging"
)

type ParticipantInput struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	ContestantNumber int    `json:"contestant_number"`
	Origin           string `json:"origin"`
	Entry            string `json:"entry"`
	Gender           string `json:"gender"`
	Image            string `json:"image"`
}

func (c *Client) Participants(ctx context.Context, token string, eventID ID) ([]Participant, error) {
	var out []Participant
	path := fmt.Sprintf("/events/%s/participants/", eventID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	participants := make([]Participant, 0, len(out))
	for _, p := range out {
		p.normalize()
		if err := c.validate.Struct(p); err != nil {
			logging.Log.Warnf("UPSTREAM: skipping malformed participant record %q: %v", p.ID, err)
			continue
		}
		participants = append(participants, p)
	}
	return participants, nil
}

func (c *Client) CreateParticipant(ctx context.Context, token string, eventID ID, in ParticipantInput) (*Participant, error) {
	var out Participant
	path := fmt.Sprintf("/events/%s/participants/", eventID)
	if err := c.do(ctx, http.MethodPost, path, token, in, &out); err != nil {
		return nil, err
	}
	out.normalize()
	return &out, nil
}

func (c *Client) UpdateParticipant(ctx context.Context, token string, eventID, id ID, in ParticipantInput) (*Participant, error) {
	var out Participant
	path := fmt.Sprintf("/events/%s/participants/%s/", eventID, id)
	if err := c.do(ctx, http.MethodPut, path, token, in, &out); err != nil {
		return nil, err
	}
	out.normalize()
	return &out, nil
}

func (c *Client) DeleteParticipant(ctx context.Context, token string, eventID, id ID) error {
	path := fmt.Sprintf("/events/%s/participants/%s/", eventID, id)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}
