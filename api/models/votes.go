package models

import (
	"time"

	"github.com/EltonDagodog/VoteRoyale/upstream"
)

type VoteRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VoteResponse is one submitted vote as the coordinator votes tab shows it.
// Score stays at full precision; this is the record of what a judge
// submitted, not a derived average.
type VoteResponse struct {
	ID          string          `json:"id"`
	Judge       VoteRefResponse `json:"judge"`
	Participant VoteRefResponse `json:"participant"`
	Category    VoteRefResponse `json:"category"`
	Score       float64         `json:"score"`
	Comments    string          `json:"comments"`
	SubmittedAt string          `json:"submittedAt"`
}

func TransformVoteFromUpstream(v *upstream.Vote) VoteResponse {
	submitted := ""
	if !v.SubmittedAt.IsZero() {
		submitted = v.SubmittedAt.Format(time.RFC3339)
	}
	return VoteResponse{
		ID:          v.ID.String(),
		Judge:       VoteRefResponse{ID: v.Judge.ID.String(), Name: v.Judge.Name},
		Participant: VoteRefResponse{ID: v.Participant.ID.String(), Name: v.Participant.Name},
		Category:    VoteRefResponse{ID: v.Category.ID.String(), Name: v.Category.Name},
		Score:       v.Score,
		Comments:    v.Comments,
		SubmittedAt: submitted,
	}
}

func TransformVotesFromUpstream(votes []upstream.Vote) []VoteResponse {
	out := make([]VoteResponse, 0, len(votes))
	for _, v := range votes {
		v := v
		out = append(out, TransformVoteFromUpstream(&v))
	}
	return out
}
