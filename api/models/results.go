package models

import "github.com/EltonDagodog/VoteRoyale/scoring"

type ParticipantResultResponse struct {
	Participant  ParticipantResponse `json:"participant"`
	TotalScore   float64             `json:"totalScore"`
	AverageScore float64             `json:"averageScore"`
	VoteCount    int                 `json:"voteCount"`
	Rank         int                 `json:"rank"`
}

type CategoryStandingResponse struct {
	Category   CategoryResponse            `json:"category"`
	Results    []ParticipantResultResponse `json:"results"`
	TotalVotes int                         `json:"totalVotes"`
}

type CategoryScoreResponse struct {
	Category      string  `json:"category"`
	AverageScore  float64 `json:"averageScore"`
	WeightedScore float64 `json:"weightedScore"`
	VoteCount     int     `json:"voteCount"`
}

type OverallResultResponse struct {
	Participant    ParticipantResponse     `json:"participant"`
	OverallAverage float64                 `json:"overallAverage"`
	TotalVotes     int                     `json:"totalVotes"`
	CategoryScores []CategoryScoreResponse `json:"categoryScores"`
	Rank           int                     `json:"rank"`
}

type EventStatsResponse struct {
	Participants          int `json:"participants"`
	Judges                int `json:"judges"`
	Categories            int `json:"categories"`
	Votes                 int `json:"votes"`
	ParticipantsWithVotes int `json:"participantsWithVotes"`
}

type EventResultsResponse struct {
	Event      EventResponse              `json:"event"`
	Stats      EventStatsResponse         `json:"stats"`
	Overall    []OverallResultResponse    `json:"overall"`
	Categories []CategoryStandingResponse `json:"categories"`
}

// Transforms below round scores to one decimal. Ranks were assigned on full
// precision already, so rounding here cannot flip an order.

func TransformCategoryStanding(standing scoring.CategoryStanding) CategoryStandingResponse {
	results := make([]ParticipantResultResponse, 0, len(standing.Results))
	for _, r := range standing.Results {
		p := r.Participant
		results = append(results, ParticipantResultResponse{
			Participant:  TransformParticipantFromUpstream(&p),
			TotalScore:   Round1(r.TotalScore),
			AverageScore: Round1(r.AverageScore),
			VoteCount:    r.VoteCount,
			Rank:         r.Rank,
		})
	}
	cat := standing.Category
	return CategoryStandingResponse{
		Category:   TransformCategoryFromUpstream(&cat),
		Results:    results,
		TotalVotes: standing.TotalVotes,
	}
}

func TransformOverallResults(results []scoring.OverallResult) []OverallResultResponse {
	out := make([]OverallResultResponse, 0, len(results))
	for _, r := range results {
		scores := make([]CategoryScoreResponse, 0, len(r.CategoryScores))
		for _, cs := range r.CategoryScores {
			scores = append(scores, CategoryScoreResponse{
				Category:      cs.Category,
				AverageScore:  Round1(cs.AverageScore),
				WeightedScore: Round1(cs.WeightedScore),
				VoteCount:     cs.VoteCount,
			})
		}
		p := r.Participant
		out = append(out, OverallResultResponse{
			Participant:    TransformParticipantFromUpstream(&p),
			OverallAverage: Round1(r.OverallAverage),
			TotalVotes:     r.TotalVotes,
			CategoryScores: scores,
			Rank:           r.Rank,
		})
	}
	return out
}
