//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/MGTheTrain/travel-marketplace/internal/domain/users"
	"github.com/MGTheTrain/travel-marketplace/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/travel-marketplace/internal/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	user := CreateTestUser(t)
	require.NoError(t, tc.Users.Create(ctx, user))

	var model models.UserModel
	require.NoError(t, tc.DB.First(&model, "id = ?", user.ID).Error)
	assert.Equal(t, user.Email, model.Email)

	byEmail, err := tc.Users.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := tc.Users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, users.RoleUser, byID.Role)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	user := CreateTestUser(t)
	require.NoError(t, tc.Users.Create(ctx, user))

	dup := CreateTestUser(t)
	dup.Email = user.Email
	assert.ErrorIs(t, tc.Users.Create(ctx, dup), apperr.ErrConflict)
}

func TestUserRepository_Errors(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	err := tc.Users.Create(ctx, &users.User{})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = tc.Users.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	user := CreateTestUser(t)
	assert.ErrorIs(t, tc.Users.UpdateByID(ctx, user), apperr.ErrNotFound)
}

func TestUserRepository_ListAndUpdate(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	admin := CreateTestUser(t)
	admin.Role = users.RoleAdmin
	customer := CreateTestUser(t)
	require.NoError(t, tc.Users.Create(ctx, admin))
	require.NoError(t, tc.Users.Create(ctx, customer))

	query := users.NewUserQuery()
	query.Role = users.RoleAdmin
	admins, err := tc.Users.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, admin.ID, admins[0].ID)

	customer.Phone = "+971500000000"
	require.NoError(t, tc.Users.UpdateByID(ctx, customer))
	updated, err := tc.Users.GetByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "+971500000000", updated.Phone)

	query = users.NewUserQuery()
	query.Email = "_"
	matched, err := tc.Users.List(ctx, query)
	require.NoError(t, err)
	assert.Empty(t, matched)

	query.Email = "@example.com"
	matched, err = tc.Users.List(ctx, query)
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	query = users.NewUserQuery()
	query.SortBy = "email; DROP TABLE users"
	_, err = tc.Users.List(ctx, query)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
