// Package persist mirrors the job and activity caches to a durable file so
// state survives restarts without a round trip to the backend. Persistence
// is best-effort: read and write failures are logged and swallowed, never
// surfaced to store operations.
package persist

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/jobdeck/job-deck/internal/state"
)

// Snapshot is the persisted record: exactly the two stores' state and
// nothing else.
type Snapshot struct {
	Jobs       state.JobsState       `json:"jobs"`
	Activities state.ActivitiesState `json:"activities"`
}

// File reads and writes snapshots at a fixed path.
type File struct {
	path string
}

// NewFile creates a bridge storing its snapshot at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Load returns the stored snapshot, or ok=false when there is none. A
// missing file is normal startup; an unreadable or corrupt one is logged
// and treated the same way.
func (f *File) Load() (Snapshot, bool) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logrus.WithError(err).WithField("path", f.path).Warn("failed to read snapshot")
		}
		return Snapshot{}, false
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logrus.WithError(err).WithField("path", f.path).Warn("discarding corrupt snapshot")
		return Snapshot{}, false
	}
	return snap, true
}

// Save writes the snapshot, replacing any previous one. Failures are
// logged and swallowed so a full disk never breaks a store operation.
func (f *File) Save(snap Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		logrus.WithError(err).Warn("failed to encode snapshot")
		return
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logrus.WithError(err).WithField("path", f.path).Warn("failed to create snapshot directory")
			return
		}
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		logrus.WithError(err).WithField("path", f.path).Warn("failed to write snapshot")
	}
}

// Attach restores the tracker's stores from the stored snapshot, if any,
// then re-saves after every store mutation.
func Attach(f *File, t *state.Tracker) {
	if snap, ok := f.Load(); ok {
		t.Jobs.Restore(snap.Jobs)
		t.Activities.Restore(snap.Activities)
	}
	t.OnChange(func() {
		f.Save(Snapshot{
			Jobs:       t.Jobs.State(),
			Activities: t.Activities.State(),
		})
	})
}
