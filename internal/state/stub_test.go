package state

import (
	"context"
	"time"

	"github.com/jobdeck/job-deck/internal/dtos"
	"github.com/jobdeck/job-deck/internal/models"
)

// stubAPI is a scriptable backend for store tests. Create and update
// return whatever record the test staged, so duplicate responses and
// races can be simulated directly.
type stubAPI struct {
	jobs    []models.Job
	listErr error

	createResult models.Job
	createErr    error
	createCalls  int
	lastCreate   dtos.CreateJobRequest

	updateResult models.Job
	updateErr    error

	deleteErr error

	activitiesByJob map[string][]models.Activity
	listActErr      map[string]error
	createActResult models.Activity
	createActErr    error
	createActCalls  int
	deleteActErr    error
}

func newStubAPI() *stubAPI {
	return &stubAPI{
		activitiesByJob: map[string][]models.Activity{},
		listActErr:      map[string]error{},
	}
}

func (s *stubAPI) ListJobs(_ context.Context, _ string) ([]models.Job, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.jobs, nil
}

func (s *stubAPI) CreateJob(_ context.Context, payload dtos.CreateJobRequest, _ string) (models.Job, error) {
	s.createCalls++
	s.lastCreate = payload
	if s.createErr != nil {
		return models.Job{}, s.createErr
	}
	return s.createResult, nil
}

func (s *stubAPI) UpdateJob(_ context.Context, _ string, _ dtos.UpdateJobRequest, _ string) (models.Job, error) {
	if s.updateErr != nil {
		return models.Job{}, s.updateErr
	}
	return s.updateResult, nil
}

func (s *stubAPI) DeleteJob(_ context.Context, _ string, _ string) error {
	return s.deleteErr
}

func (s *stubAPI) ListActivities(_ context.Context, jobID, _ string) ([]models.Activity, error) {
	if err := s.listActErr[jobID]; err != nil {
		return nil, err
	}
	return s.activitiesByJob[jobID], nil
}

func (s *stubAPI) CreateActivity(_ context.Context, _ string, _ dtos.CreateActivityRequest, _ string) (models.Activity, error) {
	s.createActCalls++
	if s.createActErr != nil {
		return models.Activity{}, s.createActErr
	}
	return s.createActResult, nil
}

func (s *stubAPI) DeleteActivity(_ context.Context, _ string, _ string) error {
	return s.deleteActErr
}

func createPayload(title string) dtos.CreateJobRequest {
	return dtos.CreateJobRequest{Title: title}
}

func job(id, title, status string) models.Job {
	return models.Job{
		ID:        id,
		UserID:    "demo-user-1",
		Title:     title,
		Status:    status,
		CreatedAt: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
	}
}
