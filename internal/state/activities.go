package state

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jobdeck/job-deck/internal/dtos"
	"github.com/jobdeck/job-deck/internal/models"
)

// ActivitiesAPI is the slice of the backend client the activity store needs.
type ActivitiesAPI interface {
	ListActivities(ctx context.Context, jobID, token string) ([]models.Activity, error)
	CreateActivity(ctx context.Context, jobID string, payload dtos.CreateActivityRequest, token string) (models.Activity, error)
	DeleteActivity(ctx context.Context, activityID, token string) error
}

// ActivitiesState is the serializable shape of the activity store.
type ActivitiesState struct {
	ByJobID     map[string][]models.Activity `json:"byJobId"`
	StatusByJob map[string]FetchStatus       `json:"statusByJobId,omitempty"`
	ErrByJob    map[string]string            `json:"errorByJobId,omitempty"`
}

// ActivityStore caches activity records grouped by their owning job. Each
// job's list keeps its own order and its own fetch status, so loading one
// job's activities never disturbs another's.
type ActivityStore struct {
	mu          sync.RWMutex
	api         ActivitiesAPI // nil in local-only mode
	token       string
	byJobID     map[string][]models.Activity
	statusByJob map[string]FetchStatus
	errByJob    map[string]string
	notify      func()
}

// NewActivityStore creates a store backed by the given API client.
func NewActivityStore(api ActivitiesAPI, token string) *ActivityStore {
	return &ActivityStore{
		api:         api,
		token:       token,
		byJobID:     map[string][]models.Activity{},
		statusByJob: map[string]FetchStatus{},
		errByJob:    map[string]string{},
	}
}

// NewLocalActivityStore creates a store with no backend.
func NewLocalActivityStore() *ActivityStore {
	return NewActivityStore(nil, "")
}

// OnChange registers fn to run after every successful cache mutation.
func (s *ActivityStore) OnChange(fn func()) {
	s.notify = fn
}

func (s *ActivityStore) changed() {
	if s.notify != nil {
		s.notify()
	}
}

// FetchForJob loads the activities for one job and replaces that job's list
// wholesale. Fetch status and error are tracked per job.
func (s *ActivityStore) FetchForJob(ctx context.Context, jobID string) error {
	if s.api == nil {
		s.mu.Lock()
		s.statusByJob[jobID] = FetchSucceeded
		delete(s.errByJob, jobID)
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	s.statusByJob[jobID] = FetchLoading
	delete(s.errByJob, jobID)
	s.mu.Unlock()

	activities, err := s.api.ListActivities(ctx, jobID, s.token)

	s.mu.Lock()
	if err != nil {
		s.statusByJob[jobID] = FetchFailed
		s.errByJob[jobID] = err.Error()
		s.mu.Unlock()
		return err
	}
	s.byJobID[jobID] = activities
	s.statusByJob[jobID] = FetchSucceeded
	s.mu.Unlock()

	s.changed()
	return nil
}

// Add validates the payload, creates the activity through the backend and
// appends the confirmed record to the job's list, creating the list when
// the job had none cached. Missing type or title fails with a
// ValidationError before any network call.
func (s *ActivityStore) Add(ctx context.Context, jobID string, payload dtos.CreateActivityRequest) (models.Activity, error) {
	if strings.TrimSpace(payload.Type) == "" {
		return models.Activity{}, &ValidationError{Field: "type"}
	}
	if strings.TrimSpace(payload.Title) == "" {
		return models.Activity{}, &ValidationError{Field: "title"}
	}

	var activity models.Activity
	if s.api == nil {
		activity = models.Activity{
			ID:          uuid.NewString(),
			JobID:       jobID,
			Type:        payload.Type,
			Title:       payload.Title,
			Description: payload.Description,
			Date:        time.Now(),
		}
		if payload.Date != nil {
			activity.Date = *payload.Date
		}
	} else {
		var err error
		activity, err = s.api.CreateActivity(ctx, jobID, payload, s.token)
		if err != nil {
			return models.Activity{}, err
		}
	}

	s.mu.Lock()
	s.byJobID[jobID] = append(s.byJobID[jobID], activity)
	s.mu.Unlock()

	s.changed()
	return activity, nil
}

// Remove deletes the activity through the backend and filters it out of the
// job's cached list. A job with no cached list is left alone.
func (s *ActivityStore) Remove(ctx context.Context, jobID, activityID string) error {
	if s.api != nil {
		if err := s.api.DeleteActivity(ctx, activityID, s.token); err != nil {
			return err
		}
	}

	s.mu.Lock()
	if list, ok := s.byJobID[jobID]; ok {
		filtered := list[:0]
		for _, activity := range list {
			if activity.ID != activityID {
				filtered = append(filtered, activity)
			}
		}
		s.byJobID[jobID] = filtered
	}
	s.mu.Unlock()

	s.changed()
	return nil
}

// ClearForJob evicts everything cached for a job without any network call.
// Invoked after a confirmed job delete so no orphaned activities remain.
func (s *ActivityStore) ClearForJob(jobID string) {
	s.mu.Lock()
	delete(s.byJobID, jobID)
	delete(s.statusByJob, jobID)
	delete(s.errByJob, jobID)
	s.mu.Unlock()

	s.changed()
}

// ForJob returns the cached activities for a job, empty when none.
func (s *ActivityStore) ForJob(jobID string) []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.byJobID[jobID]
	out := make([]models.Activity, len(list))
	copy(out, list)
	return out
}

// StatusForJob reports the fetch status for one job's list.
func (s *ActivityStore) StatusForJob(jobID string) FetchStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if status, ok := s.statusByJob[jobID]; ok {
		return status
	}
	return FetchIdle
}

// ErrForJob returns the last fetch error recorded for one job's list.
func (s *ActivityStore) ErrForJob(jobID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errByJob[jobID]
}

// All returns every cached activity across all jobs, concatenated per job.
// Order across jobs is unspecified; within a job the list order holds.
func (s *ActivityStore) All() []models.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Activity
	for _, list := range s.byJobID {
		out = append(out, list...)
	}
	return out
}

// State copies the store into its serializable form.
func (s *ActivityStore) State() ActivitiesState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byJobID := make(map[string][]models.Activity, len(s.byJobID))
	for jobID, list := range s.byJobID {
		copied := make([]models.Activity, len(list))
		copy(copied, list)
		byJobID[jobID] = copied
	}
	statusByJob := make(map[string]FetchStatus, len(s.statusByJob))
	for jobID, status := range s.statusByJob {
		statusByJob[jobID] = status
	}
	errByJob := make(map[string]string, len(s.errByJob))
	for jobID, msg := range s.errByJob {
		errByJob[jobID] = msg
	}
	return ActivitiesState{ByJobID: byJobID, StatusByJob: statusByJob, ErrByJob: errByJob}
}

// Restore replaces the store contents with a previously captured state.
func (s *ActivityStore) Restore(st ActivitiesState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byJobID = make(map[string][]models.Activity, len(st.ByJobID))
	for jobID, list := range st.ByJobID {
		copied := make([]models.Activity, len(list))
		copy(copied, list)
		s.byJobID[jobID] = copied
	}
	s.statusByJob = make(map[string]FetchStatus, len(st.StatusByJob))
	for jobID, status := range st.StatusByJob {
		s.statusByJob[jobID] = status
	}
	s.errByJob = make(map[string]string, len(st.ErrByJob))
	for jobID, msg := range st.ErrByJob {
		s.errByJob[jobID] = msg
	}
}
