// Package policy holds the pure decision functions for task access: who may
// change which fields, who may destroy, who may see, and how listings are
// ordered. Nothing here touches storage.
package policy

import (
	model "taskhub.com/taskhub/internal/models"
)

// Role is the actor's relationship to a task.
type Role int

const (
	RoleNone Role = iota
	RoleAssignee
	RoleCreator
)

// updatableFields is the (role, field) -> allowed table. The creator may set
// anything; the assignee only progress and starred status. Fields absent
// from a role's row are denied for that role.
var updatableFields = map[Role]map[string]bool{
	RoleCreator: {
		"title":    true,
		"user_id":  true,
		"progress": true,
		"status":   true,
	},
	RoleAssignee: {
		"progress": true,
		"status":   true,
	},
}

// RoleFor resolves the actor's role on a task. A user who both created the
// task and is assigned to it counts as the creator.
func RoleFor(task *model.Task, actorID string) Role {
	switch {
	case task.CreatorID == actorID:
		return RoleCreator
	case task.UserID == actorID:
		return RoleAssignee
	default:
		return RoleNone
	}
}

// CanUpdate reports whether an actor with the given role may set every field
// in the request. It must be evaluated before any write.
func CanUpdate(role Role, fields []string) bool {
	allowed := updatableFields[role]
	for _, f := range fields {
		if !allowed[f] {
			return false
		}
	}
	return true
}

// CanDestroy reports whether the actor may destroy the task. Only the
// creator may, regardless of which fields a request carries.
func CanDestroy(role Role) bool {
	return role == RoleCreator
}

// CanView reports whether the actor may read the task.
func CanView(role Role) bool {
	return role != RoleNone
}

// RestrictedRequested reports whether the field set touches a restricted
// attribute (title or assignee).
func RestrictedRequested(fields []string) bool {
	for _, f := range fields {
		for _, r := range model.RestrictedTaskFields {
			if f == r {
				return true
			}
		}
	}
	return false
}
