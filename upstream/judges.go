package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/EltonDagodog/VoteRoyale/logging"
)

// JudgeInput omits the access code: that credential is generated by the
// backend and only ever read back.
type JudgeInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
	Image          string `json:"image"`
}

func (c *Client) Judges(ctx context.Context, token string, eventID ID) ([]Judge, error) {
	var out []Judge
	path := fmt.Sprintf("/events/%s/judges/", eventID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	judges := make([]Judge, 0, len(out))
	for _, j := range out {
		j.normalize()
		if err := c.validate.Struct(j); err != nil {
			logging.Log.Warnf("UPSTREAM: skipping malformed judge record %q: %v", j.ID, err)
			continue
		}
		judges = append(judges, j)
	}
	return judges, nil
}

func (c *Client) CreateJudge(ctx context.Context, token string, eventID ID, in JudgeInput) (*Judge, error) {
	var out Judge
	path := fmt.Sprintf("/events/%s/judges/", eventID)
	if err := c.do(ctx, http.MethodPost, path, token, in, &out); err != nil {
		return nil, err
	}
	out.normalize()
	return &out, nil
}

func (c *Client) UpdateJudge(ctx context.Context, token string, eventID, id ID, in JudgeInput) (*Judge, error) {
	var out Judge
	path := fmt.Sprintf("/events/%s/judges/%s/", eventID, id)
	if err := c.do(ctx, http.MethodPut, path, token, in, &out); err != nil {
		return nil, err
	}
	out.normalize()
	return &out, nil
}

func (c *Client) DeleteJudge(ctx context.Context, token string, eventID, id ID) error {
	path := fmt.Sprintf("/events/%s/judges/%s/", eventID, id)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}
