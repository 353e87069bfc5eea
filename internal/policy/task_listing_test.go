package policy

import (
	"testing"
	"time"

	model "taskhub.com/taskhub/internal/models"
)

func TestInOrderOfStarredPrecedesUnstarred(t *testing.T) {
	now := time.Now()
	tasks := []model.Task{
		{ID: "a", Progress: model.ProgressPending, Status: model.StatusStarred, UpdatedAt: now.Add(-72 * time.Hour)},
		{ID: "b", Progress: model.ProgressPending, Status: model.StatusUnstarred, UpdatedAt: now.Add(-time.Hour)},
	}

	got := InOrderOf(tasks, model.ProgressPending)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("starred task should precede unstarred despite older timestamp, got order %v", ids(got))
	}
}

func TestInOrderOfSortsEachGroupByUpdatedAtDesc(t *testing.T) {
	now := time.Now()
	tasks := []model.Task{
		{ID: "old-starred", Progress: model.ProgressPending, Status: model.StatusStarred, UpdatedAt: now.Add(-2 * time.Hour)},
		{ID: "new-unstarred", Progress: model.ProgressPending, Status: model.StatusUnstarred, UpdatedAt: now},
		{ID: "new-starred", Progress: model.ProgressPending, Status: model.StatusStarred, UpdatedAt: now.Add(-time.Hour)},
		{ID: "old-unstarred", Progress: model.ProgressPending, Status: model.StatusUnstarred, UpdatedAt: now.Add(-3 * time.Hour)},
	}

	got := ids(InOrderOf(tasks, model.ProgressPending))
	want := []string{"new-starred", "old-starred", "new-unstarred", "old-unstarred"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch: got %v, want %v", got, want)
		}
	}
}

func TestInOrderOfFiltersProgress(t *testing.T) {
	tasks := []model.Task{
		{ID: "p", Progress: model.ProgressPending, Status: model.StatusUnstarred},
		{ID: "c", Progress: model.ProgressCompleted, Status: model.StatusUnstarred},
	}

	pending := InOrderOf(tasks, model.ProgressPending)
	if len(pending) != 1 || pending[0].ID != "p" {
		t.Errorf("pending listing = %v, want only p", ids(pending))
	}

	completed := InOrderOf(tasks, model.ProgressCompleted)
	if len(completed) != 1 || completed[0].ID != "c" {
		t.Errorf("completed listing = %v, want only c", ids(completed))
	}
}

func TestInOrderOfKeepsInputOrderOnTies(t *testing.T) {
	ts := time.Now()
	tasks := []model.Task{
		{ID: "first", Progress: model.ProgressPending, Status: model.StatusUnstarred, UpdatedAt: ts},
		{ID: "second", Progress: model.ProgressPending, Status: model.StatusUnstarred, UpdatedAt: ts},
	}

	got := ids(InOrderOf(tasks, model.ProgressPending))
	if got[0] != "first" || got[1] != "second" {
		t.Errorf("ties should keep input order, got %v", got)
	}
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
