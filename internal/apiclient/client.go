// Package apiclient is a thin typed client for the job-deck REST API.
// Each method maps to exactly one endpoint; responses are decoded and
// returned as-is, non-success responses become a RequestError.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jobdeck/job-deck/internal/dtos"
	"github.com/jobdeck/job-deck/internal/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL, e.g. "http://localhost:4000".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ListJobs fetches every job belonging to the authenticated user.
func (c *Client) ListJobs(ctx context.Context, token string) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.do(ctx, http.MethodGet, "/api/jobs", nil, token, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob fetches a single job by id.
func (c *Client) GetJob(ctx context.Context, id, token string) (models.Job, error) {
	var job models.Job
	err := c.do(ctx, http.MethodGet, "/api/jobs/"+id, nil, token, &job)
	return job, err
}

// CreateJob creates a job and returns the record the server stored,
// including its assigned id and timestamps.
func (c *Client) CreateJob(ctx context.Context, payload dtos.CreateJobRequest, token string) (models.Job, error) {
	var job models.Job
	err := c.do(ctx, http.MethodPost, "/api/jobs", payload, token, &job)
	return job, err
}

// UpdateJob applies a partial update and returns the updated record.
func (c *Client) UpdateJob(ctx context.Context, id string, changes dtos.UpdateJobRequest, token string) (models.Job, error) {
	var job models.Job
	err := c.do(ctx, http.MethodPut, "/api/jobs/"+id, changes, token, &job)
	return job, err
}

// DeleteJob deletes a job. The server cascade-deletes its activities.
func (c *Client) DeleteJob(ctx context.Context, id, token string) error {
	return c.do(ctx, http.MethodDelete, "/api/jobs/"+id, nil, token, nil)
}

// ListActivities fetches the activities recorded for one job.
func (c *Client) ListActivities(ctx context.Context, jobID, token string) ([]models.Activity, error) {
	var activities []models.Activity
	if err := c.do(ctx, http.MethodGet, "/api/jobs/"+jobID+"/activities", nil, token, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// CreateActivity appends an activity to a job.
func (c *Client) CreateActivity(ctx context.Context, jobID string, payload dtos.CreateActivityRequest, token string) (models.Activity, error) {
	var activity models.Activity
	err := c.do(ctx, http.MethodPost, "/api/jobs/"+jobID+"/activities", payload, token, &activity)
	return activity, err
}

// DeleteActivity deletes a single activity by its own id.
func (c *Client) DeleteActivity(ctx context.Context, activityID, token string) error {
	return c.do(ctx, http.MethodDelete, "/api/activities/"+activityID, nil, token, nil)
}

// do issues one request and decodes the response into out when out is
// non-nil. Any status outside 2xx becomes a RequestError carrying the
// response body text, or the status line if the body was empty.
func (c *Client) do(ctx context.Context, method, path string, body any, token string, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(resp.Body)
		message := strings.TrimSpace(string(text))
		if message == "" {
			message = resp.Status
		}
		return &RequestError{StatusCode: resp.StatusCode, Message: message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
