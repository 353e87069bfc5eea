package dto

// Request payloads mirror the API's nested JSON shapes, e.g.
// {"task": {"title": "...", "user_id": "..."}}.

type CreateUserRequest struct {
	User UserParams `json:"user"`
}

type UserParams struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type LoginRequest struct {
	Login LoginParams `json:"login"`
}

type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateTaskRequest struct {
	Task TaskParams `json:"task"`
}

type UpdateTaskRequest struct {
	Task TaskParams `json:"task"`
}

// TaskParams uses pointers so a field that is absent from the payload can be
// told apart from one set to its zero value; the set of non-nil fields is
// what the authorization rule is evaluated against.
type TaskParams struct {
	Title    *string `json:"title"`
	UserID   *string `json:"user_id"`
	Progress *string `json:"progress"`
	Status   *string `json:"status"`
	Slug     *string `json:"slug"`
}

// FieldNames returns the names of the updatable fields present in the
// payload. Slug is excluded: it is immutable for every role and handled by
// validation, not authorization.
func (p TaskParams) FieldNames() []string {
	var fields []string
	if p.Title != nil {
		fields = append(fields, "title")
	}
	if p.UserID != nil {
		fields = append(fields, "user_id")
	}
	if p.Progress != nil {
		fields = append(fields, "progress")
	}
	if p.Status != nil {
		fields = append(fields, "status")
	}
	return fields
}

type CreateCommentRequest struct {
	Comment CommentParams `json:"comment"`
}

type CommentParams struct {
	Content string `json:"content"`
	TaskID  string `json:"task_id"`
}

type UpdatePreferenceRequest struct {
	Preference PreferenceParams `json:"preference"`
}

type PreferenceParams struct {
	NotificationDeliveryHour int `json:"notification_delivery_hour"`
}
