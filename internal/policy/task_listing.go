package policy

import (
	"sort"

	model "taskhub.com/taskhub/internal/models"
)

// InOrderOf returns the tasks matching the given progress, starred ones
// first, each group ordered most-recently-updated first. The groups are
// concatenated, never merged: a starred task precedes every unstarred task
// no matter how stale it is. Ties on updated_at keep the input order.
func InOrderOf(tasks []model.Task, progress model.TaskProgress) []model.Task {
	var starred, unstarred []model.Task
	for _, t := range tasks {
		if t.Progress != progress {
			continue
		}
		if t.Status == model.StatusStarred {
			starred = append(starred, t)
		} else {
			unstarred = append(unstarred, t)
		}
	}

	byUpdatedDesc := func(group []model.Task) {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].UpdatedAt.After(group[j].UpdatedAt)
		})
	}
	byUpdatedDesc(starred)
	byUpdatedDesc(unstarred)

	return append(starred, unstarred...)
}
