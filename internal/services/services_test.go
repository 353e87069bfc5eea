package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "taskhub.com/taskhub/internal/models"
	"taskhub.com/taskhub/internal/queue"
	repository "taskhub.com/taskhub/internal/repositories"
)

// mockTokenManager is a simple in-memory token manager for testing
type mockTokenManager struct {
	mu     sync.Mutex
	tokens int
}

func newMockTokenManager(capacity int) *mockTokenManager {
	return &mockTokenManager{tokens: capacity}
}

func (m *mockTokenManager) AcquireToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tokens <= 0 {
		return queue.ErrNoTokenAvailable
	}
	m.tokens--
	return nil
}

func (m *mockTokenManager) ReleaseToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens++
	return nil
}

func (m *mockTokenManager) InitializeTokens(ctx context.Context, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens = count
	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.Comment{},
		&model.Preference{},
		&model.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

var userSeq int

func createTestUser(t *testing.T, users *UserService, name string) *model.User {
	t.Helper()

	userSeq++
	email := fmt.Sprintf("%s-%d@example.com", name, userSeq)
	user, err := users.Signup(context.Background(), name, email, "welcome123")
	if err != nil {
		t.Fatalf("failed to create user %s: %v", name, err)
	}
	return user
}

// newTaskService wires a task service over a fresh database, returning the
// collaborators tests need to seed and inspect state.
func newTaskService(t *testing.T) (*TaskService, *UserService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	notifier := NewNotifierService(newMockTokenManager(100), notificationRepo, 1, 100)
	t.Cleanup(func() { notifier.Shutdown(context.Background()) })

	taskService := NewTaskService(taskRepo, userRepo, commentRepo, notifier)
	userService := NewUserService(userRepo)
	return taskService, userService, db
}

func strPtr(s string) *string {
	return &s
}
