// internal/upstream/applications.go
package upstream

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"jobportal-gateway/internal/models"
)

// ApplyWithFile submits an application with a freshly uploaded resume.
// The resume must already have passed the PDF gate at the handler.
func (c *Client) ApplyWithFile(ctx context.Context, token, jobID, filename string, resume io.Reader) error {
	path := "/api/application/apply/" + jobID
	body, err := c.doMultipart(ctx, http.MethodPost, path, token, func(w *multipart.Writer) error {
		part, err := w.CreateFormFile("resume", filename)
		if err != nil {
			return err
		}
		_, err = io.Copy(part, resume)
		return err
	})
	if err != nil {
		return err
	}
	return decodeSuccess(body, nil)
}

// ApplyWithSavedResume submits an application reusing a stored resume URL.
func (c *Client) ApplyWithSavedResume(ctx context.Context, token, jobID, resumeURL string) error {
	path := "/api/application/apply/" + jobID
	payload := map[string]string{"resumeUrl": resumeURL}
	body, err := c.doJSON(ctx, http.MethodPost, path, token, payload)
	if err != nil {
		return err
	}
	return decodeSuccess(body, nil)
}

// ListResumes fetches the seeker's saved resumes.
func (c *Client) ListResumes(ctx context.Context, token string) ([]models.Resume, error) {
	body, err := c.doJSON(ctx, http.MethodGet, "/api/application/resume", token, nil)
	if err != nil {
		return nil, err
	}

	var resumes []models.Resume
	if err := decodeSuccess(body, &resumes); err != nil {
		return nil, err
	}
	return resumes, nil
}

// DeleteResume removes a saved resume by id.
func (c *Client) DeleteResume(ctx context.Context, token, resumeID string) error {
	body, err := c.doJSON(ctx, http.MethodDelete, "/api/application/delete/"+resumeID, token, nil)
	if err != nil {
		return err
	}
	return decodeSuccess(body, nil)
}

// JobApplications lists the applications received for one posting
// (recruiter view).
func (c *Client) JobApplications(ctx context.Context, token, jobID string) ([]models.Application, error) {
	body, err := c.doJSON(ctx, http.MethodGet, "/api/application/applications/"+jobID, token, nil)
	if err != nil {
		return nil, err
	}

	var apps []models.Application
	if err := decodeSuccess(body, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// UserApplications lists one applicant's applications (recruiter view).
func (c *Client) UserApplications(ctx context.Context, token, userID string) ([]models.Application, error) {
	body, err := c.doJSON(ctx, http.MethodGet, "/api/application/user/"+userID, token, nil)
	if err != nil {
		return nil, err
	}

	var apps []models.Application
	if err := decodeSuccess(body, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}
