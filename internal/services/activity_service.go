package services

import (
	"gorm.io/gorm"

	"github.com/jobdeck/job-deck/internal/dtos"
	"github.com/jobdeck/job-deck/internal/models"
)

// ActivityService owns activity reads and writes. Ownership is checked
// through the parent job, since activities carry no user id of their own.
type ActivityService struct {
	DB *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{
		DB: db,
	}
}

// ListForJob returns the activities for one of the user's jobs, oldest
// first. A job the user does not own (or that was deleted) yields an empty
// list, matching what the client sees after a cascade delete.
func (s *ActivityService) ListForJob(userID, jobID string) ([]models.Activity, error) {
	var activities []models.Activity
	err := s.DB.
		Select("activities.*").
		Joins("JOIN jobs ON jobs.id = activities.job_id").
		Where("activities.job_id = ? AND jobs.user_id = ?", jobID, userID).
		Order("activities.date ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// Create appends an activity to one of the user's jobs. The job must exist
// and belong to the user, otherwise gorm.ErrRecordNotFound comes back.
func (s *ActivityService) Create(userID, jobID string, req *dtos.CreateActivityRequest) (*models.Activity, error) {
	var job models.Job
	if err := s.DB.Where("id = ? AND user_id = ?", jobID, userID).First(&job).Error; err != nil {
		return nil, err
	}

	activity := &models.Activity{
		JobID:       jobID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Date != nil {
		activity.Date = *req.Date
	}
	if err := s.DB.Create(activity).Error; err != nil {
		return nil, err
	}
	return activity, nil
}

// Delete removes a single activity, checking ownership through its job.
func (s *ActivityService) Delete(userID, activityID string) error {
	var activity models.Activity
	err := s.DB.
		Select("activities.*").
		Joins("JOIN jobs ON jobs.id = activities.job_id").
		Where("activities.id = ? AND jobs.user_id = ?", activityID, userID).
		First(&activity).Error
	if err != nil {
		return err
	}
	return s.DB.Delete(&activity).Error
}
