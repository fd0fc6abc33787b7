package models

import (
	"time"

	"github.com/EltonDagodog/VoteRoyale/upstream"
)

type EventCreateRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	Date            string `json:"date" binding:"required"`
	Status          string `json:"status"`
	Location        string `json:"location"`
	MaxParticipants int    `json:"max_participants"`
}

type EventUpdateRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	Status          string `json:"status"`
	Location        string `json:"location"`
	MaxParticipants int    `json:"max_participants"`
}

type EventResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	Status          string `json:"status"`
	Location        string `json:"location"`
	MaxParticipants int    `json:"max_participants"`
}

func TransformEventFromUpstream(e *upstream.Event) EventResponse {
	date := ""
	if !e.Date.IsZero() {
		date = e.Date.Format(time.RFC3339)
	}
	return EventResponse{
		ID:              e.ID.String(),
		Title:           e.Title,
		Description:     e.Description,
		Date:            date,
		Status:          e.Status,
		Location:        e.Location,
		MaxParticipants: e.MaxParticipants,
	}
}

func (r EventCreateRequest) ToUpstream() upstream.EventInput {
	return upstream.EventInput{
		Title:           r.Title,
		Description:     r.Description,
		Date:            r.Date,
		Status:          r.Status,
		Location:        r.Location,
		MaxParticipants: r.MaxParticipants,
	}
}

func (r EventUpdateRequest) ToUpstream() upstream.EventInput {
	return upstream.EventInput{
		Title:           r.Title,
		Description:     r.Description,
		Date:            r.Date,
		Status:          r.Status,
		Location:        r.Location,
		MaxParticipants: r.MaxParticipants,
	}
}
