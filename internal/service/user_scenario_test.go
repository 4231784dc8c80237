package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/users-server/internal/model"
	"github.com/dtroode/users-server/internal/password"
	"github.com/dtroode/users-server/internal/repository/memory"
	"github.com/dtroode/users-server/internal/testutil"
)

func newScenarioService() (*User, *memory.UserRepository) {
	store := memory.NewUserRepository()
	s := NewUser(store, password.NewBcrypt(bcrypt.MinCost), testutil.MakeNoopLogger())
	s.now = func() time.Time { return fixedNow }
	return s, store
}

func TestUser_Lifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newScenarioService()

	a, err := s.Create(ctx, model.User{
		Username:       "jdoe",
		FirstName:      "John",
		LastName:       "Doe",
		DocumentType:   model.DocumentTypeDNI,
		DocumentNumber: "12345678",
		BirthDate:      time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}, "initialpass")
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusActive, a.Status)

	_, err = s.Create(ctx, model.User{Username: "jdoe", FirstName: "Jane", LastName: "Doe"}, "otherpass")
	assert.ErrorIs(t, err, model.ErrValidation)

	deactivated, err := s.Deactivate(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusInactive, deactivated.Status)

	page, err := s.Search(ctx, model.UserSearchFilter{}, model.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, page.Content)

	inactive := model.UserStatusInactive
	page, err = s.Search(ctx, model.UserSearchFilter{Status: &inactive}, model.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, a.ID, page.Content[0].ID)
}

func TestUser_ChangePassword_Rotation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, store := newScenarioService()
	hasher := password.NewBcrypt(bcrypt.MinCost)

	u, err := s.Create(ctx, model.User{Username: "rotate", FirstName: "R", LastName: "Otate"}, "firstpass")
	require.NoError(t, err)

	_, err = s.ChangePassword(ctx, u.ID, "wrongpass", "secondpass", "secondpass")
	assert.ErrorIs(t, err, model.ErrInvalidPassword)

	stored, err := store.FindByIDWithPassword(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, hasher.Verify("firstpass", stored.PasswordHash))

	_, err = s.ChangePassword(ctx, u.ID, "firstpass", "secondpass", "secondpass")
	require.NoError(t, err)

	stored, err = store.FindByIDWithPassword(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, hasher.Verify("firstpass", stored.PasswordHash))
	assert.True(t, hasher.Verify("secondpass", stored.PasswordHash))
}

func TestUser_SoftDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newScenarioService()

	u, err := s.Create(ctx, model.User{Username: "leaving", FirstName: "L", LastName: "Eaving"}, "password1")
	require.NoError(t, err)
	admin, err := s.Create(ctx, model.User{Username: model.ReservedUsername, FirstName: "A", LastName: "Dmin"}, "password1")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, u.ID))
	got, err := s.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusDeleted, got.Status)

	assert.ErrorIs(t, s.Delete(ctx, admin.ID), model.ErrValidation)
	got, err = s.GetByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusActive, got.Status)

	reactivated, err := s.Activate(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusActive, reactivated.Status)
}

func TestUser_Search_PastLastPage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newScenarioService()

	_, err := s.Create(ctx, model.User{Username: "only", FirstName: "O", LastName: "Nly"}, "password1")
	require.NoError(t, err)

	page, err := s.Search(ctx, model.UserSearchFilter{}, model.PageRequest{Page: math.MaxInt / 50, Size: 100})
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, model.MaxPage, page.Page)
	assert.Equal(t, int64(1), page.TotalElements)
}

func TestUser_SearchByLastName_CaseInsensitive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newScenarioService()

	for _, u := range []model.User{
		{Username: "u1", FirstName: "A", LastName: "DOE"},
		{Username: "u2", FirstName: "B", LastName: "McDoel"},
		{Username: "u3", FirstName: "C", LastName: "Roe"},
		{Username: "u4", FirstName: "D", LastName: "doerr"},
	} {
		_, err := s.Create(ctx, u, "password1")
		require.NoError(t, err)
	}

	page, err := s.SearchByLastName(ctx, "doe", "", model.PageRequest{Size: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, page.Size)
	assert.Equal(t, int64(3), page.TotalElements)
	require.Len(t, page.Content, 3)
	assert.Equal(t, "DOE", page.Content[0].LastName)
	assert.Equal(t, "McDoel", page.Content[1].LastName)
	assert.Equal(t, "doerr", page.Content[2].LastName)
}
