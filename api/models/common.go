package models

import "math"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Round1 rounds to one decimal for display. Rankings are computed on full
// precision before this is ever applied.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
