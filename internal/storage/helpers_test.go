package storage

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/weather-blog/internal/migrations"
	"github.com/magabrotheeeer/weather-blog/internal/models"
)

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя и возвращает его ID
func (f *TestDataFactory) CreateUser(t *testing.T, username, email string, role models.Role) int64 {
	t.Helper()
	var id int64
	err := f.storage.DB.QueryRow(`INSERT INTO users (username, email, password_hash, role)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		username, email, "hashedpassword", string(role)).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreatePost создает тестовый пост и возвращает его ID
func (f *TestDataFactory) CreatePost(t *testing.T, authorID int64, title string, status models.PostStatus) int64 {
	t.Helper()
	var id int64
	err := f.storage.DB.QueryRow(`INSERT INTO posts (author_id, title, content, status)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		authorID, title, "content of "+title, string(status)).Scan(&id)
	require.NoError(t, err)
	return id
}

// CountRows возвращает количество строк в таблице
func (f *TestDataFactory) CountRows(t *testing.T, table string) int {
	t.Helper()
	var count int
	err := f.storage.DB.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
	require.NoError(t, err)
	return count
}

// setupTestDatabase создает тестовую БД с контейнером PostgreSQL и применяет миграции
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err, "failed to start container")

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(connStr)
	require.NoError(t, err, "failed to create storage")

	migrationsPath, err := filepath.Abs("../../migrations")
	require.NoError(t, err)
	err = migrations.Run(storage.DB, migrationsPath, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err, "failed to apply migrations")

	cleanup := func() {
		_ = storage.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return storage, cleanup
}
