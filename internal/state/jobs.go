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

// JobsAPI is the slice of the backend client the job store needs.
type JobsAPI interface {
	ListJobs(ctx context.Context, token string) ([]models.Job, error)
	CreateJob(ctx context.Context, payload dtos.CreateJobRequest, token string) (models.Job, error)
	UpdateJob(ctx context.Context, id string, changes dtos.UpdateJobRequest, token string) (models.Job, error)
	DeleteJob(ctx context.Context, id, token string) error
}

// JobsState is the serializable shape of the job store, used by the
// snapshot bridge. Order holds ids newest-first.
type JobsState struct {
	ByID   map[string]models.Job `json:"byId"`
	Order  []string              `json:"allIds"`
	Status FetchStatus           `json:"status"`
	Err    string                `json:"error,omitempty"`
}

// JobStore is a normalized cache of job records: a map keyed by id plus an
// explicit ordered id list governing display order. Mutations go through
// the API client and only land in the cache once confirmed.
type JobStore struct {
	mu     sync.RWMutex
	api    JobsAPI // nil in local-only mode
	token  string
	byID   map[string]models.Job
	order  []string
	status FetchStatus
	err    string
	notify func()
}

// NewJobStore creates a store backed by the given API client. The token is
// threaded through every call; pass "" when the backend resolves identity
// some other way.
func NewJobStore(api JobsAPI, token string) *JobStore {
	return &JobStore{
		api:    api,
		token:  token,
		byID:   map[string]models.Job{},
		status: FetchIdle,
	}
}

// NewLocalJobStore creates a store with no backend. Create, Update and
// Remove resolve synchronously with client-generated ids.
func NewLocalJobStore() *JobStore {
	return NewJobStore(nil, "")
}

// OnChange registers fn to run after every successful cache mutation.
func (s *JobStore) OnChange(fn func()) {
	s.notify = fn
}

func (s *JobStore) changed() {
	if s.notify != nil {
		s.notify()
	}
}

// FetchAll loads every job from the backend and replaces the cache with the
// normalized result. Local-only entries not present in the response are
// dropped. On failure the previous cache is kept and the error is recorded
// in store state. If two fetches overlap, the later completion wins.
func (s *JobStore) FetchAll(ctx context.Context) error {
	if s.api == nil {
		s.mu.Lock()
		s.status = FetchSucceeded
		s.err = ""
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	s.status = FetchLoading
	s.err = ""
	s.mu.Unlock()

	jobs, err := s.api.ListJobs(ctx, s.token)

	s.mu.Lock()
	if err != nil {
		s.status = FetchFailed
		s.err = err.Error()
		s.mu.Unlock()
		return err
	}
	byID := make(map[string]models.Job, len(jobs))
	order := make([]string, 0, len(jobs))
	for _, job := range jobs {
		byID[job.ID] = job
		order = append(order, job.ID)
	}
	s.byID = byID
	s.order = order
	s.status = FetchSucceeded
	s.mu.Unlock()

	s.changed()
	return nil
}

// Create validates the payload, creates the job through the backend and
// inserts the confirmed record at the top of the list. A missing title
// fails with a ValidationError before any network call; a missing status
// defaults to "saved".
func (s *JobStore) Create(ctx context.Context, payload dtos.CreateJobRequest) (models.Job, error) {
	if strings.TrimSpace(payload.Title) == "" {
		return models.Job{}, &ValidationError{Field: "title"}
	}
	if payload.Status == "" {
		payload.Status = models.StatusSaved
	}

	var job models.Job
	if s.api == nil {
		now := time.Now()
		job = models.Job{
			ID:        uuid.NewString(),
			Title:     payload.Title,
			Company:   payload.Company,
			Status:    payload.Status,
			Location:  payload.Location,
			Source:    payload.Source,
			URL:       payload.URL,
			CreatedAt: now,
			UpdatedAt: now,
		}
	} else {
		var err error
		job, err = s.api.CreateJob(ctx, payload, s.token)
		if err != nil {
			return models.Job{}, err
		}
	}

	s.upsert(job)
	s.changed()
	return job, nil
}

// Update sends the changed fields to the backend and upserts the confirmed
// record. If the id is somehow missing from the cache (a create response
// racing a concurrent full fetch) the record is inserted and prepended,
// same as Create; an id already present keeps its position.
func (s *JobStore) Update(ctx context.Context, id string, changes dtos.UpdateJobRequest) (models.Job, error) {
	if s.api == nil {
		s.mu.Lock()
		existing, ok := s.byID[id]
		if !ok {
			s.mu.Unlock()
			return models.Job{}, ErrNotFound
		}
		applyChanges(&existing, changes)
		existing.UpdatedAt = time.Now()
		s.byID[id] = existing
		s.mu.Unlock()
		s.changed()
		return existing, nil
	}

	job, err := s.api.UpdateJob(ctx, id, changes, s.token)
	if err != nil {
		return models.Job{}, err
	}
	s.upsert(job)
	s.changed()
	return job, nil
}

// Remove deletes the job through the backend, then drops it from the cache.
// The cache is untouched when the delete fails. Callers that also cache
// activities for the job must evict them afterwards; Tracker.DeleteJob does
// both in order.
func (s *JobStore) Remove(ctx context.Context, id string) error {
	if s.api != nil {
		if err := s.api.DeleteJob(ctx, id, s.token); err != nil {
			return err
		}
	}

	s.mu.Lock()
	delete(s.byID, id)
	order := s.order[:0]
	for _, existing := range s.order {
		if existing != id {
			order = append(order, existing)
		}
	}
	s.order = order
	s.mu.Unlock()

	s.changed()
	return nil
}

// upsert stores the record and prepends its id when absent from the order
// list. Re-inserting an existing id is a no-op for ordering, which makes a
// duplicated create response harmless.
func (s *JobStore) upsert(job models.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inOrder(job.ID) {
		s.order = append([]string{job.ID}, s.order...)
	}
	s.byID[job.ID] = job
}

func (s *JobStore) inOrder(id string) bool {
	for _, existing := range s.order {
		if existing == id {
			return true
		}
	}
	return false
}

// All returns every cached job in display order (newest first).
func (s *JobStore) All() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	jobs := make([]models.Job, 0, len(s.order))
	for _, id := range s.order {
		if job, ok := s.byID[id]; ok {
			jobs = append(jobs, job)
		}
	}
	return jobs
}

// Get returns one job by id.
func (s *JobStore) Get(id string) (models.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.byID[id]
	return job, ok
}

// Status reports the state of the most recent FetchAll.
func (s *JobStore) Status() FetchStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Err returns the message recorded by the last failed FetchAll.
func (s *JobStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// State copies the store into its serializable form.
func (s *JobStore) State() JobsState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byID := make(map[string]models.Job, len(s.byID))
	for id, job := range s.byID {
		byID[id] = job
	}
	order := make([]string, len(s.order))
	copy(order, s.order)
	return JobsState{ByID: byID, Order: order, Status: s.status, Err: s.err}
}

// Restore replaces the store contents with a previously captured state.
// Used by the snapshot bridge before any network fetch has completed.
func (s *JobStore) Restore(st JobsState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = make(map[string]models.Job, len(st.ByID))
	for id, job := range st.ByID {
		s.byID[id] = job
	}
	s.order = make([]string, len(st.Order))
	copy(s.order, st.Order)
	if st.Status != "" {
		s.status = st.Status
	}
	s.err = st.Err
}

func applyChanges(job *models.Job, changes dtos.UpdateJobRequest) {
	if changes.Title != nil {
		job.Title = *changes.Title
	}
	if changes.Company != nil {
		job.Company = *changes.Company
	}
	if changes.Status != nil {
		job.Status = *changes.Status
	}
	if changes.Location != nil {
		job.Location = *changes.Location
	}
	if changes.Source != nil {
		job.Source = *changes.Source
	}
	if changes.URL != nil {
		job.URL = *changes.URL
	}
}
