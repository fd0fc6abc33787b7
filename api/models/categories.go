package models

import "github.com/EltonDagodog/VoteRoyale/upstream"

type CriterionRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Percentage  float64 `json:"percentage" binding:"required,gt=0,lte=100"`
}

type CategoryCreateRequest struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	MaxScore    float64            `json:"max_score" binding:"required,gt=0"`
	Weight      float64            `json:"weight" binding:"required,gt=0"`
	Status      string             `json:"status" binding:"omitempty,oneof=open closed"`
	Gender      string             `json:"gender" binding:"omitempty,oneof=male female everyone"`
	AwardType   string             `json:"award_type" binding:"omitempty,oneof=major minor"`
	Criteria    []CriterionRequest `json:"criteria" binding:"required,min=1,dive"`
}

type CriterionResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Percentage  float64 `json:"percentage"`
}

type CategoryResponse struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	MaxScore      float64             `json:"max_score"`
	Weight        float64             `json:"weight"`
	Status        string              `json:"status"`
	Gender        string              `json:"gender"`
	AwardType     string              `json:"award_type"`
	Criteria      []CriterionResponse `json:"criteria"`
	CriteriaValid bool                `json:"criteria_valid"`
}

func TransformCategoryFromUpstream(c *upstream.Category) CategoryResponse {
	criteria := make([]CriterionResponse, 0, len(c.Criteria))
	for _, cr := range c.Criteria {
		criteria = append(criteria, CriterionResponse{
			ID:          cr.ID,
			Name:        cr.Name,
			Description: cr.Description,
			Percentage:  cr.Percentage,
		})
	}
	return CategoryResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Description:   c.Description,
		MaxScore:      c.MaxScore,
		Weight:        c.Weight,
		Status:        c.Status,
		Gender:        c.Gender,
		AwardType:     c.AwardType,
		Criteria:      criteria,
		CriteriaValid: c.CriteriaValid(),
	}
}

func (r CategoryCreateRequest) ToUpstream() upstream.CategoryInput {
	criteria := make([]upstream.CriterionInput, 0, len(r.Criteria))
	for _, cr := range r.Criteria {
		criteria = append(criteria, upstream.CriterionInput{
			Name:        cr.Name,
			Description: cr.Description,
			Percentage:  cr.Percentage,
		})
	}
	return upstream.CategoryInput{
		Name:        r.Name,
		Description: r.Description,
		MaxScore:    r.MaxScore,
		Weight:      r.Weight,
		Status:      r.Status,
		Gender:      r.Gender,
		AwardType:   r.AwardType,
		Criteria:    criteria,
	}
}

// TotalCriteriaPercentage sums the request's criterion percentages; a
// category is only usable for scoring when this is exactly 100.
func (r CategoryCreateRequest) TotalCriteriaPercentage() float64 {
	var sum float64
	for _, cr := range r.Criteria {
		sum += cr.Percentage
	}
	return sum
}
