// Package scoring computes category and overall rankings from raw vote
// records. It is pure: no I/O, no clock, no storage. Votes referencing
// unknown participants or categories simply never match a filter, which
// keeps aggregation safe against transiently inconsistent fetches.
package scoring

import (
	"sort"

	"github.com/EltonDagodog/VoteRoyale/upstream"
)

// ParticipantResult is one ranked row within a category.
type ParticipantResult struct {
	Participant  upstream.Participant
	TotalScore   float64
	AverageScore float64
	VoteCount    int
	Rank         int
}

// CategoryStanding is the full ranked result of one category. TotalVotes
// counts every matching vote, independent of per-participant exclusion.
type CategoryStanding struct {
	Category   upstream.Category
	Results    []ParticipantResult
	TotalVotes int
}

// CategoryScore is one category's contribution to an overall result.
type CategoryScore struct {
	Category      string
	AverageScore  float64
	WeightedScore float64
	VoteCount     int
}

// OverallResult is one ranked row of the cross-category weighted ranking.
type OverallResult struct {
	Participant    upstream.Participant
	OverallAverage float64
	TotalVotes     int
	CategoryScores []CategoryScore
	Rank           int
}

// CategoryResults ranks participants within a single category by average
// score. Participants without a vote in the category are excluded rather
// than carried at zero, so an unscored contestant never drags the standings.
// Ties keep input order; ranks are dense sequential integers from 1.
func CategoryResults(category upstream.Category, votes []upstream.Vote, participants []upstream.Participant) CategoryStanding {
	var categoryVotes []upstream.Vote
	for _, v := range votes {
		if v.Category.ID == category.ID {
			categoryVotes = append(categoryVotes, v)
		}
	}

	results := make([]ParticipantResult, 0, len(participants))
	for _, p := range participants {
		var total float64
		count := 0
		for _, v := range categoryVotes {
			if v.Participant.ID == p.ID {
				total += v.Score
				count++
			}
		}
		if count == 0 {
			continue
		}
		results = append(results, ParticipantResult{
			Participant:  p,
			TotalScore:   total,
			AverageScore: total / float64(count),
			VoteCount:    count,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AverageScore > results[j].AverageScore
	})
	for i := range results {
		results[i].Rank = i + 1
	}

	return CategoryStanding{
		Category:   category,
		Results:    results,
		TotalVotes: len(categoryVotes),
	}
}

// OverallResults ranks participants across all categories using each
// category's weight as a multiplier on its average score. Categories where a
// participant has no votes contribute nothing, and participants with no
// contributing category at all are excluded entirely. Accumulation keeps
// full float precision; rounding belongs to the presentation layer.
func OverallResults(categories []upstream.Category, votes []upstream.Vote, participants []upstream.Participant) []OverallResult {
	out := make([]OverallResult, 0, len(participants))
	for _, p := range participants {
		var totalWeightedScore, totalWeight float64
		totalVotes := 0
		scores := make([]CategoryScore, 0, len(categories))

		for _, cat := range categories {
			var sum float64
			count := 0
			for _, v := range votes {
				if v.Category.ID == cat.ID && v.Participant.ID == p.ID {
					sum += v.Score
					count++
				}
			}
			if count == 0 {
				continue
			}
			avg := sum / float64(count)
			weighted := avg * cat.Weight
			totalWeightedScore += weighted
			totalWeight += cat.Weight
			totalVotes += count
			scores = append(scores, CategoryScore{
				Category:      cat.Name,
				AverageScore:  avg,
				WeightedScore: weighted,
				VoteCount:     count,
			})
		}

		if totalVotes == 0 {
			continue
		}
		overall := 0.0
		if totalWeight > 0 {
			overall = totalWeightedScore / totalWeight
		}
		out = append(out, OverallResult{
			Participant:    p,
			OverallAverage: overall,
			TotalVotes:     totalVotes,
			CategoryScores: scores,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OverallAverage > out[j].OverallAverage
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
