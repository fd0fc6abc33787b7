package models

import (
	"time"

	"github.com/EltonDagodog/VoteRoyale/voting"
)

type OpenSessionRequest struct {
	CategoryID string `json:"categoryId" binding:"required"`
}

// ScoreRequest carries the raw input value as a string on purpose: the
// clamp rule in the scoring session decides what non-numeric input means.
type ScoreRequest struct {
	ParticipantID string `json:"participantId" binding:"required"`
	CriterionID   int    `json:"criterionId" binding:"required"`
	Value         string `json:"value"`
}

type ScoreResponse struct {
	ParticipantID string  `json:"participantId"`
	CriterionID   int     `json:"criterionId"`
	Score         int     `json:"score"`
	WeightedScore float64 `json:"weightedScore"`
}

type SessionParticipantResponse struct {
	Participant   ParticipantResponse `json:"participant"`
	Scores        map[int]int         `json:"scores"`
	WeightedScore float64             `json:"weightedScore"`
}

type SessionResponse struct {
	ID           string                       `json:"id"`
	Event        EventResponse                `json:"event"`
	Category     CategoryResponse             `json:"category"`
	Participants []SessionParticipantResponse `json:"participants"`
	OpenedAt     time.Time                    `json:"openedAt"`
}

type SubmitResponse struct {
	Category string `json:"category"`
	Votes    int    `json:"votes"`
}

func TransformSession(s *voting.Session) SessionResponse {
	participants := make([]SessionParticipantResponse, 0, len(s.Participants))
	for _, p := range s.Participants {
		p := p
		scores := make(map[int]int, len(s.Category.Criteria))
		for _, cr := range s.Category.Criteria {
			scores[cr.ID] = s.Score(p.ID, cr.ID)
		}
		participants = append(participants, SessionParticipantResponse{
			Participant:   TransformParticipantFromUpstream(&p),
			Scores:        scores,
			WeightedScore: Round1(s.WeightedScore(p.ID)),
		})
	}
	event := s.Event
	category := s.Category
	return SessionResponse{
		ID:           s.ID,
		Event:        TransformEventFromUpstream(&event),
		Category:     TransformCategoryFromUpstream(&category),
		Participants: participants,
		OpenedAt:     s.OpenedAt,
	}
}

// ValidationErrorDetail exposes the offending pair so the portal can focus
// the right input.
type ValidationErrorDetail struct {
	Error         string `json:"error"`
	ParticipantID string `json:"participantId"`
	Criterion     string `json:"criterion"`
}

func TransformValidationErrorDetail(err *voting.ValidationError) ValidationErrorDetail {
	return ValidationErrorDetail{
		Error:         err.Error(),
		ParticipantID: string(err.ParticipantID),
		Criterion:     err.Criterion,
	}
}
