package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"taskhub.com/taskhub/internal/queue"
	repository "taskhub.com/taskhub/internal/repositories"
)

// notificationJob is one pending notification write.
type notificationJob struct {
	recipientID string
	taskID      string
	event       string
}

// NotifierService writes task-event notifications in the background. A
// redis-backed token pool bounds the jobs in flight across instances;
// delivery is best-effort, so a full queue never fails the request that
// produced the event.
type NotifierService struct {
	jobs          chan notificationJob
	wg            sync.WaitGroup
	notifications *repository.NotificationRepository
	tokenManager  queue.TokenManager
}

func NewNotifierService(
	tokenManager queue.TokenManager,
	notifications *repository.NotificationRepository,
	workers int,
	queueSize int,
) *NotifierService {
	n := &NotifierService{
		jobs:          make(chan notificationJob, queueSize),
		notifications: notifications,
		tokenManager:  tokenManager,
	}

	for i := 1; i <= workers; i++ {
		n.wg.Add(1)
		go n.worker(i)
	}

	return n
}

// Notify enqueues a notification for the recipient. Returns false when the
// token pool or the local queue is exhausted; the caller proceeds either
// way.
func (n *NotifierService) Notify(ctx context.Context, recipientID, taskID, event string) bool {
	if err := n.tokenManager.AcquireToken(ctx); err != nil {
		if !errors.Is(err, queue.ErrNoTokenAvailable) {
			log.Printf("notifier: failed to acquire token: %v", err)
		}
		return false
	}

	select {
	case n.jobs <- notificationJob{recipientID: recipientID, taskID: taskID, event: event}:
		return true
	default:
		n.releaseToken(ctx)
		return false
	}
}

func (n *NotifierService) worker(workerID int) {
	defer n.wg.Done()

	for job := range n.jobs {
		n.handleJob(workerID, job)
	}
}

func (n *NotifierService) handleJob(workerID int, job notificationJob) {
	ctx := context.Background()
	defer n.releaseToken(ctx)

	if _, err := n.notifications.Create(ctx, job.recipientID, job.taskID, job.event); err != nil {
		log.Printf("notifier worker %d: failed to write notification for user %s: %v", workerID, job.recipientID, err)
		return
	}

	log.Printf("notifier worker %d: notified user %s about task %s", workerID, job.recipientID, job.taskID)
}

func (n *NotifierService) releaseToken(ctx context.Context) {
	if err := n.tokenManager.ReleaseToken(ctx); err != nil {
		log.Printf("notifier: failed to release token: %v", err)
	}
}

// Shutdown drains the queue and waits for the workers, up to the context
// deadline.
func (n *NotifierService) Shutdown(ctx context.Context) {
	close(n.jobs)

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("notifier shut down cleanly")
	case <-ctx.Done():
		log.Println("notifier shutdown timed out")
	}
}
