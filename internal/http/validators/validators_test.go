package validators

import (
	"errors"
	"strings"
	"testing"

	dto "taskhub.com/taskhub/internal/data_models"
	apperrors "taskhub.com/taskhub/internal/errors"
)

func validUserRequest() *dto.CreateUserRequest {
	return &dto.CreateUserRequest{
		User: dto.UserParams{
			Name:                 "Sam",
			Email:                "sam@example.com",
			Password:             "welcome123",
			PasswordConfirmation: "welcome123",
		},
	}
}

func validationMessages(t *testing.T, err error) string {
	t.Helper()
	var validation *apperrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	return validation.Sentence()
}

func TestValidateCreateUserRequestAcceptsValidEmails(t *testing.T) {
	valid := []string{
		"user@example.com",
		"USER@example.COM",
		"US-ER@example.org",
		"first.last@example.in",
		"user+one@example.ac.in",
	}

	for _, email := range valid {
		req := validUserRequest()
		req.User.Email = email
		if err := ValidateCreateUserRequest(req); err != nil {
			t.Errorf("email %q should be valid: %v", email, err)
		}
	}
}

func TestValidateCreateUserRequestRejectsInvalidEmails(t *testing.T) {
	invalid := []string{
		"user@example,com",
		"user_at_example.org",
		"user.name@example.",
		"@sam-sam.com",
		"sam@sam+exam.com",
		"fishy+#.com",
	}

	for _, email := range invalid {
		req := validUserRequest()
		req.User.Email = email
		err := ValidateCreateUserRequest(req)
		if !strings.Contains(validationMessages(t, err), "Email is invalid") {
			t.Errorf("email %q should be rejected as invalid", email)
		}
	}
}

func TestValidateCreateUserRequestFieldRules(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*dto.CreateUserRequest)
		message string
	}{
		{"blank name", func(r *dto.CreateUserRequest) { r.User.Name = "" }, "Name can't be blank"},
		{"long name", func(r *dto.CreateUserRequest) { r.User.Name = strings.Repeat("a", 51) }, "Name is too long"},
		{"blank email", func(r *dto.CreateUserRequest) { r.User.Email = "" }, "Email can't be blank"},
		{"long email", func(r *dto.CreateUserRequest) { r.User.Email = strings.Repeat("a", 50) + "@test.com" }, "Email is too long"},
		{"blank password", func(r *dto.CreateUserRequest) { r.User.Password = "" }, "Password can't be blank"},
		{"short password", func(r *dto.CreateUserRequest) {
			r.User.Password = "abc"
			r.User.PasswordConfirmation = "abc"
		}, "Password is too short"},
		{"blank confirmation", func(r *dto.CreateUserRequest) { r.User.PasswordConfirmation = "" }, "Password confirmation can't be blank"},
		{"mismatched confirmation", func(r *dto.CreateUserRequest) { r.User.PasswordConfirmation = "different" }, "Password confirmation doesn't match Password"},
	}

	for _, c := range cases {
		req := validUserRequest()
		c.mutate(req)
		err := ValidateCreateUserRequest(req)
		if !strings.Contains(validationMessages(t, err), c.message) {
			t.Errorf("%s: expected message containing %q, got %q", c.name, c.message, err)
		}
	}
}

func TestValidateLoginRequest(t *testing.T) {
	ok := &dto.LoginRequest{Login: dto.LoginParams{Email: "sam@example.com", Password: "welcome123"}}
	if err := ValidateLoginRequest(ok); err != nil {
		t.Errorf("valid login request rejected: %v", err)
	}

	missing := &dto.LoginRequest{}
	err := ValidateLoginRequest(missing)
	msgs := validationMessages(t, err)
	if !strings.Contains(msgs, "Email can't be blank") || !strings.Contains(msgs, "Password can't be blank") {
		t.Errorf("expected both blank messages, got %q", msgs)
	}
}

func TestValidateCreateCommentRequest(t *testing.T) {
	ok := &dto.CreateCommentRequest{Comment: dto.CommentParams{Content: "hi", TaskID: "task-1"}}
	if err := ValidateCreateCommentRequest(ok); err != nil {
		t.Errorf("valid comment request rejected: %v", err)
	}

	blank := &dto.CreateCommentRequest{Comment: dto.CommentParams{TaskID: "task-1"}}
	if !strings.Contains(validationMessages(t, ValidateCreateCommentRequest(blank)), "Content can't be blank") {
		t.Error("blank content should be rejected")
	}
}
