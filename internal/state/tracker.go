package state

import "context"

// Tracker owns the two stores and carries out the operations that span
// both. The stores never reach into each other; cross-store coordination
// lives here.
type Tracker struct {
	Jobs       *JobStore
	Activities *ActivityStore
}

// NewTracker wraps existing stores.
func NewTracker(jobs *JobStore, activities *ActivityStore) *Tracker {
	return &Tracker{Jobs: jobs, Activities: activities}
}

// API is the full backend surface, jobs plus activities. apiclient.Client
// satisfies it.
type API interface {
	JobsAPI
	ActivitiesAPI
}

// New builds a tracker with both stores backed by the same API client.
func New(api API, token string) *Tracker {
	return NewTracker(NewJobStore(api, token), NewActivityStore(api, token))
}

// NewLocal builds a tracker with no backend; mutations resolve locally.
func NewLocal() *Tracker {
	return NewTracker(NewLocalJobStore(), NewLocalActivityStore())
}

// DeleteJob removes the job and then evicts its cached activities, so the
// cascade invariant holds in the client cache as well as on the server.
// Two sequential calls, not a transaction: if the process dies between
// them, the next FetchForJob on the deleted id finds nothing server-side.
func (t *Tracker) DeleteJob(ctx context.Context, id string) error {
	if err := t.Jobs.Remove(ctx, id); err != nil {
		return err
	}
	t.Activities.ClearForJob(id)
	return nil
}

// OnChange registers fn on both stores.
func (t *Tracker) OnChange(fn func()) {
	t.Jobs.OnChange(fn)
	t.Activities.OnChange(fn)
}
