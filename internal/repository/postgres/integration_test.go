//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/users-server/internal/model"
	repo "github.com/dtroode/users-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "users_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/users_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func connect(t *testing.T) *repo.Connection {
	t.Helper()

	conn, err := repo.NewConnection(context.Background(), dsn, repo.PoolConfig{MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	_, err = conn.Exec(context.Background(), "TRUNCATE users")
	require.NoError(t, err)

	return conn
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	ur := repo.NewUserRepository(connect(t))

	u := model.User{
		Username:       "jdoe",
		FirstName:      "John",
		LastName:       "Doe",
		Email:          "jdoe@example.com",
		DocumentType:   model.DocumentTypeDNI,
		DocumentNumber: "12345678",
		Status:         model.UserStatusActive,
		BirthDate:      time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	saved, err := ur.Create(ctx, u, "hash")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, saved.ID)
	assert.Equal(t, "12345678", saved.DocumentNumber)
	assert.Empty(t, saved.Phone)

	byID, err := ur.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, byID)

	withPassword, err := ur.FindByIDWithPassword(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash", withPassword.PasswordHash)

	updated, err := ur.Update(ctx, saved.WithStatus(model.UserStatusDeleted), "new-hash")
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusDeleted, updated.Status)

	withPassword, err = ur.FindByIDWithPassword(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", withPassword.PasswordHash)

	_, err = ur.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = ur.Update(ctx, model.User{ID: uuid.New(), Username: "ghost", Status: model.UserStatusActive}, "hash")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_Exists(t *testing.T) {
	ctx := context.Background()
	ur := repo.NewUserRepository(connect(t))

	_, err := ur.Create(ctx, model.User{Username: "jdoe", FirstName: "J", LastName: "D", Email: "j@example.com", DocumentNumber: "1234", Status: model.UserStatusActive}, "hash")
	require.NoError(t, err)

	ok, err := ur.ExistsByUsername(ctx, "jdoe")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ur.ExistsByEmail(ctx, "j@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ur.ExistsByDocumentNumber(ctx, "4321")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepository_UniqueConstraint(t *testing.T) {
	ctx := context.Background()
	ur := repo.NewUserRepository(connect(t))

	_, err := ur.Create(ctx, model.User{Username: "jdoe", FirstName: "J", LastName: "D", Status: model.UserStatusActive}, "hash")
	require.NoError(t, err)

	_, err = ur.Create(ctx, model.User{Username: "jdoe", FirstName: "J", LastName: "D", Status: model.UserStatusActive}, "hash")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Contains(t, err.Error(), "username")

	_, err = ur.Create(ctx, model.User{Username: "nodoc1", FirstName: "N", LastName: "D", Status: model.UserStatusActive}, "hash")
	require.NoError(t, err)
	_, err = ur.Create(ctx, model.User{Username: "nodoc2", FirstName: "N", LastName: "D", Status: model.UserStatusActive}, "hash")
	require.NoError(t, err)
}

func TestUserRepository_Search(t *testing.T) {
	ctx := context.Background()
	ur := repo.NewUserRepository(connect(t))

	for i := 0; i < 12; i++ {
		_, err := ur.Create(ctx, model.User{
			Username:       fmt.Sprintf("user%02d", i),
			FirstName:      "First",
			LastName:       fmt.Sprintf("McDoe%02d", i),
			DocumentType:   model.DocumentTypeCE,
			DocumentNumber: fmt.Sprintf("99%02d", i),
			Status:         model.UserStatusActive,
			BirthDate:      time.Date(1980+i, 6, 1, 0, 0, 0, 0, time.UTC),
		}, "hash")
		require.NoError(t, err)
	}
	_, err := ur.Create(ctx, model.User{Username: "inactive", FirstName: "I", LastName: "Doe_Inactive", Status: model.UserStatusInactive}, "hash")
	require.NoError(t, err)
	_, err = ur.Create(ctx, model.User{Username: "percent", FirstName: "P", LastName: "100%Smith", Status: model.UserStatusActive}, "hash")
	require.NoError(t, err)

	active := model.UserStatusActive
	doe := "DOE"
	page, err := ur.Search(ctx, model.UserSearchFilter{LastName: &doe, Status: &active},
		model.PageRequest{Page: 1, Size: 5, Sort: model.SortFieldLastName, Direction: model.SortDesc})
	require.NoError(t, err)
	assert.Equal(t, int64(12), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Content, 5)
	assert.Equal(t, "McDoe06", page.Content[0].LastName)

	from := time.Date(1985, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(1987, 6, 1, 0, 0, 0, 0, time.UTC)
	ranged, err := ur.Search(ctx, model.UserSearchFilter{BirthDateFrom: &from, BirthDateTo: &to},
		model.PageRequest{Size: 10, Sort: model.SortFieldBirthDate, Direction: model.SortAsc})
	require.NoError(t, err)
	require.Len(t, ranged.Content, 3)
	assert.Equal(t, "McDoe05", ranged.Content[0].LastName)

	anyDoe := "doe"
	for dir, at := range map[model.SortDirection]int{model.SortAsc: 12, model.SortDesc: 0} {
		byBirth, err := ur.Search(ctx, model.UserSearchFilter{LastName: &anyDoe},
			model.PageRequest{Size: 20, Sort: model.SortFieldBirthDate, Direction: dir})
		require.NoError(t, err)
		require.Len(t, byBirth.Content, 13)
		assert.Equal(t, "inactive", byBirth.Content[at].Username, dir)
	}

	percent := "%"
	literal, err := ur.Search(ctx, model.UserSearchFilter{LastName: &percent},
		model.PageRequest{Size: 10, Sort: model.SortFieldID, Direction: model.SortAsc})
	require.NoError(t, err)
	require.Len(t, literal.Content, 1)
	assert.Equal(t, "percent", literal.Content[0].Username)

	docs := "990"
	byDoc, err := ur.Search(ctx, model.UserSearchFilter{DocumentNumber: &docs},
		model.PageRequest{Size: 100, Sort: model.SortFieldDocumentNumber, Direction: model.SortAsc})
	require.NoError(t, err)
	assert.Equal(t, int64(10), byDoc.TotalElements)
}
