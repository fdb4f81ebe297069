package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pipeline statuses a job moves through.
const (
	StatusSaved      = "saved"
	StatusApplied    = "applied"
	StatusAssessment = "assessment"
	StatusInterview  = "interview"
	StatusOffer      = "offer"
	StatusRejected   = "rejected"
)

// Statuses lists every pipeline status in board order.
var Statuses = []string{
	StatusSaved,
	StatusApplied,
	StatusAssessment,
	StatusInterview,
	StatusOffer,
	StatusRejected,
}

// Activity types.
const (
	ActivityApplied   = "applied"
	ActivityFollowUp  = "follow_up"
	ActivityInterview = "interview"
	ActivityOffer     = "offer"
	ActivityNote      = "note"
)

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// Job is a tracked job application owned by a single user.
type Job struct {
	ID     string `gorm:"primaryKey" json:"id"`
	UserID string `gorm:"index;not null" json:"userId"`

	Title   string `gorm:"not null" json:"title"`
	Company string `json:"company,omitempty"`
	Status  string `gorm:"default:'saved'" json:"status"`

	Location string `json:"location,omitempty"`
	Source   string `json:"source,omitempty"`
	URL      string `json:"url,omitempty"`

	// Tags are client-display only; the backend does not persist them.
	Tags []string `gorm:"-" json:"tags,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (j *Job) BeforeCreate(_ *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	if j.Status == "" {
		j.Status = StatusSaved
	}
	return nil
}

// Activity is a dated event or note attached to a job. Activities are
// owned by their job and deleted along with it.
type Activity struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	JobID       string    `gorm:"index;not null" json:"jobId"`
	Type        string    `gorm:"not null" json:"type"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Date        time.Time `json:"date"`
}

func (a *Activity) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Date.IsZero() {
		a.Date = time.Now()
	}
	return nil
}
