package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/EltonDagodog/VoteRoyale/logging"
)

type CriterionInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Percentage  float64 `json:"percentage"`
}

type CategoryInput struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	MaxScore    float64          `json:"max_score"`
	Weight      float64          `json:"weight"`
	Status      string           `json:"status"`
	Gender      string           `json:"gender"`
	AwardType   string           `json:"award_type"`
	Criteria    []CriterionInput `json:"criteria"`
}

func (c *Client) Categories(ctx context.Context, token string, eventID ID) ([]Category, error) {
	var out []Category
	path := fmt.Sprintf("/events/%s/categories/", eventID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	categories := make([]Category, 0, len(out))
	for _, cat := range out {
		cat.normalize()
		if err := c.validate.Struct(cat); err != nil {
			logging.Log.Warnf("UPSTREAM: skipping malformed category record %q: %v", cat.ID, err)
			continue
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func (c *Client) Category(ctx context.Context, token string, eventID, id ID) (*Category, error) {
	var out Category
	path := fmt.Sprintf("/events/%s/categories/%s/", eventID, id)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out); err != nil {
		return nil, err
	}
	out.normalize()
	if err := c.validate.Struct(out); err != nil {
		return nil, &RemoteError{Message: "malformed category record from backend"}
	}
	return &out, nil
}

func (c *Client) CreateCategory(ctx context.Context, token string, eventID ID, in CategoryInput) (*Category, error) {
	var out Category
	path := fmt.Sprintf("/events/%s/categories/", eventID)
	if err := c.do(ctx, http.MethodPost, path, token, in, &out); err != nil {
		return nil, err
	}
	out.normalize()
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, token string, eventID, id ID, in CategoryInput) (*Category, error) {
	var out Category
	path := fmt.Sprintf("/events/%s/categories/%s/", eventID, id)
	if err := c.do(ctx, http.MethodPut, path, token, in, &out); err != nil {
		return nil, err
	}
	out.normalize()
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, token string, eventID, id ID) error {
	path := fmt.Sprintf("/events/%s/categories/%s/", eventID, id)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}
