package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jobdeck/job-deck/internal/dtos"
	"github.com/jobdeck/job-deck/internal/models"
)

func activity(id, jobID, typ, title string, date time.Time) models.Activity {
	return models.Activity{ID: id, JobID: jobID, Type: typ, Title: title, Date: date}
}

func TestFetchForJobIsIndependentPerJob(t *testing.T) {
	api := newStubAPI()
	api.activitiesByJob["j1"] = []models.Activity{
		activity("a1", "j1", models.ActivityNote, "Researched team", time.Now()),
	}
	api.listActErr["j2"] = errors.New("boom")

	store := NewActivityStore(api, "tok")
	if err := store.FetchForJob(context.Background(), "j1"); err != nil {
		t.Fatalf("FetchForJob(j1): %v", err)
	}
	if err := store.FetchForJob(context.Background(), "j2"); err == nil {
		t.Fatal("expected fetch error for j2")
	}

	if got := store.StatusForJob("j1"); got != FetchSucceeded {
		t.Fatalf("j1 status = %q", got)
	}
	if got := store.StatusForJob("j2"); got != FetchFailed {
		t.Fatalf("j2 status = %q", got)
	}
	if store.ErrForJob("j2") == "" {
		t.Fatal("expected error recorded for j2")
	}
	if store.ErrForJob("j1") != "" {
		t.Fatal("j1 must be unaffected by j2's failure")
	}
	if len(store.ForJob("j1")) != 1 {
		t.Fatal("j1 activities missing")
	}
}

func TestFetchForJobReplacesWholesale(t *testing.T) {
	api := newStubAPI()
	store := NewActivityStore(api, "")

	api.activitiesByJob["j1"] = []models.Activity{
		activity("a1", "j1", models.ActivityNote, "One", time.Now()),
		activity("a2", "j1", models.ActivityNote, "Two", time.Now()),
	}
	if err := store.FetchForJob(context.Background(), "j1"); err != nil {
		t.Fatalf("FetchForJob: %v", err)
	}

	api.activitiesByJob["j1"] = []models.Activity{
		activity("a3", "j1", models.ActivityNote, "Three", time.Now()),
	}
	if err := store.FetchForJob(context.Background(), "j1"); err != nil {
		t.Fatalf("FetchForJob: %v", err)
	}

	got := store.ForJob("j1")
	if len(got) != 1 || got[0].ID != "a3" {
		t.Fatalf("list not replaced wholesale: %+v", got)
	}
}

func TestAddRequiresTypeAndTitle(t *testing.T) {
	api := newStubAPI()
	store := NewActivityStore(api, "")

	cases := []dtos.CreateActivityRequest{
		{Title: "No type"},
		{Type: models.ActivityNote},
	}
	for _, payload := range cases {
		_, err := store.Add(context.Background(), "j1", payload)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("payload %+v: expected ValidationError, got %v", payload, err)
		}
	}
	if api.createActCalls != 0 {
		t.Fatal("validation must fail before any network call")
	}
}

func TestAddAppendsCreatingListIfAbsent(t *testing.T) {
	api := newStubAPI()
	api.createActResult = activity("a1", "j1", models.ActivityFollowUp, "Sent follow-up email", time.Now())

	store := NewActivityStore(api, "")
	added, err := store.Add(context.Background(), "j1", dtos.CreateActivityRequest{
		Type:  models.ActivityFollowUp,
		Title: "Sent follow-up email",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.ID != "a1" {
		t.Fatalf("added id = %q", added.ID)
	}

	api.createActResult = activity("a2", "j1", models.ActivityNote, "Second", time.Now())
	if _, err := store.Add(context.Background(), "j1", dtos.CreateActivityRequest{Type: models.ActivityNote, Title: "Second"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got := store.ForJob("j1")
	if len(got) != 2 || got[0].ID != "a1" || got[1].ID != "a2" {
		t.Fatalf("append order wrong: %+v", got)
	}
}

func TestAddFailureLeavesCacheUntouched(t *testing.T) {
	api := newStubAPI()
	api.createActErr = errors.New("boom")

	store := NewActivityStore(api, "")
	if _, err := store.Add(context.Background(), "j1", dtos.CreateActivityRequest{Type: models.ActivityNote, Title: "X"}); err == nil {
		t.Fatal("expected add error")
	}
	if len(store.ForJob("j1")) != 0 {
		t.Fatal("cache changed on a failed add")
	}
}

func TestRemoveFiltersActivity(t *testing.T) {
	api := newStubAPI()
	api.activitiesByJob["j1"] = []models.Activity{
		activity("a1", "j1", models.ActivityNote, "One", time.Now()),
		activity("a2", "j1", models.ActivityNote, "Two", time.Now()),
	}

	store := NewActivityStore(api, "")
	if err := store.FetchForJob(context.Background(), "j1"); err != nil {
		t.Fatalf("FetchForJob: %v", err)
	}
	if err := store.Remove(context.Background(), "j1", "a1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	got := store.ForJob("j1")
	if len(got) != 1 || got[0].ID != "a2" {
		t.Fatalf("unexpected list after remove: %+v", got)
	}
}

func TestRemoveIsNoopForUncachedJob(t *testing.T) {
	api := newStubAPI()
	store := NewActivityStore(api, "")
	if err := store.Remove(context.Background(), "never-fetched", "a1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if len(store.ForJob("never-fetched")) != 0 {
		t.Fatal("phantom list appeared")
	}
}

func TestClearForJob(t *testing.T) {
	api := newStubAPI()
	api.activitiesByJob["j1"] = []models.Activity{
		activity("a1", "j1", models.ActivityNote, "One", time.Now()),
	}

	store := NewActivityStore(api, "")
	if err := store.FetchForJob(context.Background(), "j1"); err != nil {
		t.Fatalf("FetchForJob: %v", err)
	}

	store.ClearForJob("j1")
	if len(store.ForJob("j1")) != 0 {
		t.Fatal("activities survived ClearForJob")
	}
	if got := store.StatusForJob("j1"); got != FetchIdle {
		t.Fatalf("status after clear = %q, want idle", got)
	}
}

func TestAllFlattensAcrossJobs(t *testing.T) {
	api := newStubAPI()
	api.activitiesByJob["j1"] = []models.Activity{
		activity("a1", "j1", models.ActivityNote, "One", time.Now()),
		activity("a2", "j1", models.ActivityNote, "Two", time.Now()),
	}
	api.activitiesByJob["j2"] = []models.Activity{
		activity("b1", "j2", models.ActivityInterview, "Phone screen", time.Now()),
	}

	store := NewActivityStore(api, "")
	for _, jobID := range []string{"j1", "j2"} {
		if err := store.FetchForJob(context.Background(), jobID); err != nil {
			t.Fatalf("FetchForJob(%s): %v", jobID, err)
		}
	}

	all := store.All()
	if len(all) != 3 {
		t.Fatalf("flattened %d activities, want 3", len(all))
	}
	// Within one job the list order must hold.
	var j1 []string
	for _, a := range all {
		if a.JobID == "j1" {
			j1 = append(j1, a.ID)
		}
	}
	if len(j1) != 2 || j1[0] != "a1" || j1[1] != "a2" {
		t.Fatalf("per-job order lost: %v", j1)
	}
}

func TestLocalModeAdd(t *testing.T) {
	store := NewLocalActivityStore()
	added, err := store.Add(context.Background(), "j1", dtos.CreateActivityRequest{Type: models.ActivityNote, Title: "Note"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.ID == "" {
		t.Fatal("local mode must assign an id")
	}
	if added.Date.IsZero() {
		t.Fatal("local mode must default the date")
	}
	if added.JobID != "j1" {
		t.Fatalf("jobId = %q", added.JobID)
	}
}
