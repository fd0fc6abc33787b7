package upstream

import (
	"context"
	"fmt"
	"net/http"
)

// SubmitVotesResponse echoes the accepted batch back for the confirmation
// view.
type SubmitVotesResponse struct {
	Category string `json:"category"`
	Votes    []Vote `json:"votes"`
}

// EventVotes lists every vote of an event. Coordinator tokens only.
func (c *Client) EventVotes(ctx context.Context, token string, eventID ID) ([]Vote, error) {
	var out []Vote
	path := fmt.Sprintf("/events/coordinator/%s/votes/", eventID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// JudgeDashboard returns the participants of the judge's assigned event plus
// that judge's own vote history. Judge tokens only.
func (c *Client) JudgeDashboard(ctx context.Context, token string) (*JudgeDashboard, error) {
	var out JudgeDashboard
	if err := c.do(ctx, http.MethodGet, "/events/judges/dashboard/", token, nil, &out); err != nil {
		return nil, err
	}
	for i := range out.Participants {
		out.Participants[i].normalize()
	}
	return &out, nil
}

// SubmitVotes posts a complete category scoring batch. The backend rejects
// re-submission for a (judge, category) pair, so callers check history first.
func (c *Client) SubmitVotes(ctx context.Context, token string, eventID, categoryID ID, votes []VoteSubmission) (*SubmitVotesResponse, error) {
	var out SubmitVotesResponse
	path := fmt.Sprintf("/events/%s/categories/%s/vote/", eventID, categoryID)
	body := map[string][]VoteSubmission{"votes": votes}
	if err := c.do(ctx, http.MethodPost, path, token, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
