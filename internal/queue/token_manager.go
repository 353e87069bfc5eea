package queue

import (
	"context"
	"errors"
)

// TokenManager bounds how many notification jobs may be in flight across
// all instances of the service. A token is taken per enqueued job and
// returned once a worker has written the notification.
type TokenManager interface {
	AcquireToken(ctx context.Context) error

	ReleaseToken(ctx context.Context) error

	InitializeTokens(ctx context.Context, count int) error
}

var ErrNoTokenAvailable = errors.New("no notification token available")
