package dtos

import "time"

// CreateJobRequest is the POST /api/jobs body. The handler enforces that
// title and status are present; the client store defaults status to "saved"
// before the request ever leaves the process.
type CreateJobRequest struct {
	Title   string `json:"title"`
	Company string `json:"company,omitempty"`
	Status  string `json:"status"`

	// Optional Fields
	Location string `json:"location,omitempty"`
	Source   string `json:"source,omitempty"`
	URL      string `json:"url,omitempty"`
}

// UpdateJobRequest is the PUT /api/jobs/:id body. Pointer fields so that
// only the fields the caller actually changed are sent and applied.
type UpdateJobRequest struct {
	Title    *string `json:"title,omitempty"`
	Company  *string `json:"company,omitempty"`
	Status   *string `json:"status,omitempty"`
	Location *string `json:"location,omitempty"`
	Source   *string `json:"source,omitempty"`
	URL      *string `json:"url,omitempty"`
}

// CreateActivityRequest is the POST /api/jobs/:id/activities body.
type CreateActivityRequest struct {
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// DeleteResponse is returned by the delete endpoints.
type DeleteResponse struct {
	OK bool `json:"ok"`
}
