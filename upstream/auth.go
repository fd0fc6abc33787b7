package upstream

import (
	"context"
	"net/http"
	"strings"
)

// coordinatorDepartment is what the console registers every coordinator
// under; the backend has no other department in use.
const coordinatorDepartment = "Event Management"

// CoordinatorRegister creates a coordinator account. Registration does not
// log the coordinator in; they sign in afterwards.
func (c *Client) CoordinatorRegister(ctx context.Context, name, email, password string) error {
	body := map[string]string{
		"name":       name,
		"email":      email,
		"department": coordinatorDepartment,
		"password":   password,
	}
	return c.do(ctx, http.MethodPost, "/coordinators/register/", "", body, nil)
}

// CoordinatorLoginRequest exchanges email/password for bearer tokens.
func (c *Client) CoordinatorLoginRequest(ctx context.Context, email, password string) (*CoordinatorLogin, error) {
	body := map[string]string{"email": email, "password": password}
	var out CoordinatorLogin
	if err := c.do(ctx, http.MethodPost, "/coordinators/login/", "", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// JudgeLoginRequest exchanges an access code for bearer tokens plus the
// judge profile. Codes are stored upper-case upstream.
func (c *Client) JudgeLoginRequest(ctx context.Context, accessCode string) (*JudgeLogin, error) {
	body := map[string]string{"access_code": strings.ToUpper(strings.TrimSpace(accessCode))}
	var out JudgeLogin
	if err := c.do(ctx, http.MethodPost, "/events/judges/login/", "", body, &out); err != nil {
		return nil, err
	}
	out.Judge.normalize()
	return &out, nil
}
