package services

import (
	"gorm.io/gorm"

	"github.com/jobdeck/job-deck/internal/dtos"
	"github.com/jobdeck/job-deck/internal/models"
)

// JobService owns all job reads and writes. Every query is scoped to the
// owning user, so one user can never see or touch another user's jobs.
type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

// ensureUser creates the user row on first contact so job inserts always
// have an owner to reference.
func (s *JobService) ensureUser(userID string) error {
	return s.DB.Where(models.User{ID: userID}).FirstOrCreate(&models.User{ID: userID}).Error
}

// ListJobs returns the user's jobs, newest first.
func (s *JobService) ListJobs(userID string) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJob returns one job, or gorm.ErrRecordNotFound when the id does not
// exist or belongs to someone else.
func (s *JobService) GetJob(userID, id string) (*models.Job, error) {
	var job models.Job
	err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// CreateJob inserts a new job for the user.
func (s *JobService) CreateJob(userID string, req *dtos.CreateJobRequest) (*models.Job, error) {
	if err := s.ensureUser(userID); err != nil {
		return nil, err
	}
	job := &models.Job{
		UserID:   userID,
		Title:    req.Title,
		Company:  req.Company,
		Status:   req.Status,
		Location: req.Location,
		Source:   req.Source,
		URL:      req.URL,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// UpdateJob applies only the fields present in the request, leaving the
// rest untouched, and returns the updated record.
func (s *JobService) UpdateJob(userID, id string, req *dtos.UpdateJobRequest) (*models.Job, error) {
	job, err := s.GetJob(userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Source != nil {
		job.Source = *req.Source
	}
	if req.URL != nil {
		job.URL = *req.URL
	}

	if err := s.DB.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes the job and all of its activities in one transaction.
func (s *JobService) DeleteJob(userID, id string) error {
	job, err := s.GetJob(userID, id)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", job.ID).Delete(&models.Activity{}).Error; err != nil {
			return err
		}
		return tx.Delete(job).Error
	})
}
