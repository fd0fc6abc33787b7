package models

import "github.com/EltonDagodog/VoteRoyale/upstream"

type JudgeCreateRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Specialization string `json:"specialization"`
	Image          string `json:"image"`
}

type JudgeResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
	Image          string `json:"image"`
	AccessCode     string `json:"access_code"`
}

func TransformJudgeFromUpstream(j *upstream.Judge) JudgeResponse {
	return JudgeResponse{
		ID:             j.ID.String(),
		Name:           j.Name,
		Email:          j.Email,
		Specialization: j.Specialization,
		Image:          j.Image,
		AccessCode:     j.AccessCode,
	}
}

func (r JudgeCreateRequest) ToUpstream() upstream.JudgeInput {
	return upstream.JudgeInput{
		Name:           r.Name,
		Email:          r.Email,
		Specialization: r.Specialization,
		Image:          r.Image,
	}
}
