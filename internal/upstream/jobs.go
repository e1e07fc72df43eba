// internal/upstream/jobs.go
package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	apperrors "jobportal-gateway/internal/common/errors"
	"jobportal-gateway/internal/models"
)

// JobQuery carries the optional server-side filters the portal API accepts on
// the jobs listing. Empty fields are omitted from the query string.
type JobQuery struct {
	Location     string
	Type         string
	Experience   string
	Requirements string
}

func (q JobQuery) encode() string {
	params := url.Values{}
	if q.Location != "" {
		params.Set("location", q.Location)
	}
	if q.Type != "" {
		params.Set("type", q.Type)
	}
	if q.Experience != "" {
		params.Set("experience", q.Experience)
	}
	if q.Requirements != "" {
		params.Set("requirements", q.Requirements)
	}
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}

// ListJobs fetches the full postings list, optionally narrowed upstream.
func (c *Client) ListJobs(ctx context.Context, token string, query JobQuery) ([]models.JobPosting, error) {
	body, err := c.doJSON(ctx, http.MethodGet, "/api/job/jobs"+query.encode(), token, nil)
	if err != nil {
		return nil, err
	}

	// The jobs listing wraps its payload as {data:[...]} without a success
	// flag; a missing data key means an upstream-reported failure.
	var env struct {
		Data    []models.JobPosting `json:"data"`
		Message string              `json:"message"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, apperrors.NewUpstreamDecodeError(err)
	}
	if env.Data == nil && env.Message != "" {
		return nil, apperrors.NewUpstreamRejectedError(env.Message)
	}
	return env.Data, nil
}

// GetJob fetches a single posting by id.
func (c *Client) GetJob(ctx context.Context, token, jobID string) (*models.JobPosting, error) {
	body, err := c.doJSON(ctx, http.MethodGet, "/api/job/jobs/"+jobID, token, nil)
	if err != nil {
		return nil, err
	}

	var job models.JobPosting
	if err := decodeSuccess(body, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// CreateJob posts a new opening on behalf of a recruiter.
func (c *Client) CreateJob(ctx context.Context, token string, job models.NewJobPosting) error {
	body, err := c.doJSON(ctx, http.MethodPost, "/api/job/jobs", token, job)
	if err != nil {
		return err
	}
	return decodeSuccess(body, nil)
}

// DeleteJob removes a posting. Authorization is enforced upstream.
func (c *Client) DeleteJob(ctx context.Context, token, jobID string) error {
	body, err := c.doJSON(ctx, http.MethodDelete, "/api/job/jobs/"+jobID, token, nil)
	if err != nil {
		return err
	}
	return decodeSuccess(body, nil)
}
