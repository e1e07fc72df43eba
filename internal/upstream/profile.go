// internal/upstream/profile.go
package upstream

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"jobportal-gateway/internal/models"
)

// GetProfile fetches the authenticated account's profile.
func (c *Client) GetProfile(ctx context.Context, token string) (*models.Profile, error) {
	body, err := c.doJSON(ctx, http.MethodGet, "/api/user/profile", token, nil)
	if err != nil {
		return nil, err
	}

	var profile models.Profile
	if err := decodeSuccess(body, &profile); err != nil {
		return nil, err
	}
	profile.Normalize()
	return &profile, nil
}

// ProfileUpdate carries the editable profile fields plus an optional new
// profile image. Only fields present in Fields are sent.
type ProfileUpdate struct {
	Fields    map[string]string
	ImageName string
	Image     io.Reader
}

// UpdateProfile sends a multipart PUT to /api/user/profile.
func (c *Client) UpdateProfile(ctx context.Context, token string, update ProfileUpdate) error {
	body, err := c.doMultipart(ctx, http.MethodPut, "/api/user/profile", token, func(w *multipart.Writer) error {
		for key, val := range update.Fields {
			if err := w.WriteField(key, val); err != nil {
				return fmt.Errorf("write field %s: %w", key, err)
			}
		}
		if update.Image != nil {
			part, err := w.CreateFormFile("profileImage", update.ImageName)
			if err != nil {
				return err
			}
			if _, err := io.Copy(part, update.Image); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	return decodeSuccess(body, nil)
}
