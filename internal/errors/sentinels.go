package errors

import "net/http"

var ErrTaskNotFound = &Exception{
	Message:    "task not found",
	StatusCode: http.StatusNotFound,
}

var ErrUserNotFound = &Exception{
	Message:    "user not found",
	StatusCode: http.StatusNotFound,
}

// ErrPermissionDenied is returned when a non-creator tries to destroy a task
// or a stranger touches a task they are no party to.
var ErrPermissionDenied = &Exception{
	Message:    "Permission Denied",
	StatusCode: http.StatusForbidden,
}

// ErrRestrictedAttributes is returned when a non-creator tries to set a
// restricted task attribute.
var ErrRestrictedAttributes = &Exception{
	Message:    "unauthorized",
	StatusCode: http.StatusForbidden,
}

var ErrIncorrectCredentials = &Exception{
	Message:    "Incorrect credentials, try again.",
	StatusCode: http.StatusUnauthorized,
}

var ErrUnauthenticated = &Exception{
	Message:    "Could not authenticate with the provided credentials",
	StatusCode: http.StatusUnauthorized,
}
