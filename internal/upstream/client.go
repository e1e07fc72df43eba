// Package upstream is the typed client for the remote job portal REST API.
// Every authenticated call attaches "Authorization: Bearer <token>"; every
// response carries a success/status discriminator that is checked before any
// data is trusted.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"jobportal-gateway/internal/common/config"
	apperrors "jobportal-gateway/internal/common/errors"
	"jobportal-gateway/internal/common/logger"
	"jobportal-gateway/internal/common/metrics"
	"jobportal-gateway/internal/common/observability"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logger.Logger
	obs        *observability.Observability
}

func NewClient(cfg config.UpstreamConfig, log logger.Logger, obs *observability.Observability) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Millisecond,
		},
		log: log.WithFields(map[string]interface{}{"component": "upstream"}),
		obs: obs,
	}
}

// statusEnvelope is the {status,message,token} shape used by the user endpoints.
type statusEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

func (e *statusEnvelope) ok() bool { return e.Status == "success" }

// successEnvelope is the {success,message,data} shape used by profile, job and
// application endpoints. Data stays raw until the caller knows its type.
type successEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// doJSON issues a JSON request and returns the raw response body. A non-nil
// token is attached as a bearer credential. Transport failures map to
// UPSTREAM_UNAVAILABLE; HTTP error statuses surface the body for context.
func (c *Client) doJSON(ctx context.Context, method, path, token string, payload interface{}) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.execute(ctx, req, path)
}

// doMultipart issues a multipart/form-data request built by build.
func (c *Client) doMultipart(ctx context.Context, method, path, token string, build func(*multipart.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := build(w); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.execute(ctx, req, path)
}

func (c *Client) execute(ctx context.Context, req *http.Request, endpoint string) ([]byte, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)

	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
	if c.obs != nil {
		c.obs.RecordUpstreamDuration(ctx, elapsed, endpoint)
	}

	if err != nil {
		if c.obs != nil {
			c.obs.RecordUpstreamCall(ctx, endpoint, "transport_error")
		}
		return nil, apperrors.NewUpstreamUnavailableError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewUpstreamUnavailableError(err)
	}

	if c.obs != nil {
		c.obs.RecordUpstreamCall(ctx, endpoint, http.StatusText(resp.StatusCode))
	}

	// The portal API reports failures in the body discriminator, usually with
	// a 200. Anything 5xx is a transport-grade failure regardless of body.
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, apperrors.NewUpstreamUnavailableError(
			fmt.Errorf("upstream status %d: %s", resp.StatusCode, string(respBody)))
	}

	return respBody, nil
}

// decodeStatus parses a {status,message} body and converts status!="success"
// into an UPSTREAM_REJECTED error carrying the upstream message.
func decodeStatus(body []byte) (*statusEnvelope, error) {
	var env statusEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, apperrors.NewUpstreamDecodeError(err)
	}
	if !env.ok() {
		return nil, apperrors.NewUpstreamRejectedError(env.Message)
	}
	return &env, nil
}

// decodeSuccess parses a {success,data} body and unmarshals data into out
// when out is non-nil.
func decodeSuccess(body []byte, out interface{}) error {
	var env successEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return apperrors.NewUpstreamDecodeError(err)
	}
	if !env.Success {
		return apperrors.NewUpstreamRejectedError(env.Message)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return apperrors.NewUpstreamDecodeError(err)
		}
	}
	return nil
}
