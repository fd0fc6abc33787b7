package models

import "github.com/EltonDagodog/VoteRoyale/upstream"

type ParticipantCreateRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email"`
	ContestantNumber int    `json:"contestant_number" binding:"required,gt=0"`
	Origin           string `json:"origin"`
	Entry            string `json:"entry"`
	Gender           string `json:"gender"`
	Image            string `json:"image"`
}

type ParticipantResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	ContestantNumber int    `json:"contestant_number"`
	Origin           string `json:"origin"`
	Entry            string `json:"entry"`
	Gender           string `json:"gender"`
	Image            string `json:"image"`
}

func TransformParticipantFromUpstream(p *upstream.Participant) ParticipantResponse {
	return ParticipantResponse{
		ID:               p.ID.String(),
		Name:             p.Name,
		Email:            p.Email,
		ContestantNumber: p.ContestantNumber,
		Origin:           p.Origin,
		Entry:            p.Entry,
		Gender:           p.Gender,
		Image:            p.Image,
	}
}

func (r ParticipantCreateRequest) ToUpstream() upstream.ParticipantInput {
	return upstream.ParticipantInput{
		Name:             r.Name,
		Email:            r.Email,
		ContestantNumber: r.ContestantNumber,
		Origin:           r.Origin,
		Entry:            r.Entry,
		Gender:           r.Gender,
		Image:            r.Image,
	}
}
