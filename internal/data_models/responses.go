package dto

import model "taskhub.com/taskhub/internal/models"

// UserSummary is the id/name pair embedded in task listings and pickers.
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewUserSummary(u *model.User) UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name}
}

// TaskWithAssignee is a task entry with its assigned user embedded.
type TaskWithAssignee struct {
	model.Task
	User UserSummary `json:"user"`
}

// TaskListingResponse is the listing payload: pending and completed tasks,
// each already in presentation order.
type TaskListingResponse struct {
	Tasks TaskListing `json:"tasks"`
}

type TaskListing struct {
	Pending   []TaskWithAssignee `json:"pending"`
	Completed []model.Task       `json:"completed"`
}

// TaskDetailResponse is the show payload.
type TaskDetailResponse struct {
	Task         *model.Task     `json:"task"`
	AssignedUser UserSummary     `json:"assigned_user"`
	TaskCreator  string          `json:"task_creator"`
	Comments     []model.Comment `json:"comments"`
}

// AuthResponse is returned on login.
type AuthResponse struct {
	AuthToken string      `json:"auth_token"`
	User      UserSummary `json:"user"`
}
