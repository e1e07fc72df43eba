// internal/upstream/auth.go
package upstream

import (
	"context"
	"net/http"

	"jobportal-gateway/internal/models"
)

// LoginRequest is the credentials payload for POST /api/user/login.
type LoginRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// SignupRequest is the payload for POST /api/user/signup.
type SignupRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (string, error) {
	body, err := c.doJSON(ctx, http.MethodPost, "/api/user/login", "", req)
	if err != nil {
		return "", err
	}
	env, err := decodeStatus(body)
	if err != nil {
		return "", err
	}
	return env.Token, nil
}

// Signup registers a new account. The portal does not log the account in;
// the browser is sent back to the login page afterwards.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	body, err := c.doJSON(ctx, http.MethodPost, "/api/user/signup", "", req)
	if err != nil {
		return err
	}
	_, err = decodeStatus(body)
	return err
}

// ForgotPassword asks the portal to email an OTP to the account owner.
func (c *Client) ForgotPassword(ctx context.Context, email string, role models.Role) error {
	payload := map[string]interface{}{"email": email, "role": role}
	body, err := c.doJSON(ctx, http.MethodPost, "/api/user/forgot-password", "", payload)
	if err != nil {
		return err
	}
	_, err = decodeStatus(body)
	return err
}

// ResetPassword redeems an OTP for a new password.
func (c *Client) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	payload := map[string]interface{}{
		"email":       email,
		"otp":         otp,
		"newPassword": newPassword,
	}
	body, err := c.doJSON(ctx, http.MethodPost, "/api/user/reset-password", "", payload)
	if err != nil {
		return err
	}
	_, err = decodeStatus(body)
	return err
}
